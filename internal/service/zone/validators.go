package zone

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
	"storefront/internal/entities"
)

const (
	maxNameLength = 100
	amountScale   = 3
)

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && utf8.RuneCountInString(name) <= maxNameLength
}

func isValidCoordinates(coordinates [][2]float64) bool {
	if len(coordinates) < minPolygonVertices {
		return false
	}
	for _, pair := range coordinates {
		if !isValidPoint(entities.GeoPoint{Lat: pair[0], Lng: pair[1]}) {
			return false
		}
	}
	return true
}

func isValidPoint(point entities.GeoPoint) bool {
	if math.IsNaN(point.Lat) || math.IsNaN(point.Lng) {
		return false
	}
	return point.Lat >= -90 && point.Lat <= 90 && point.Lng >= -180 && point.Lng <= 180
}

func isValidAmount(amount decimal.Decimal) bool {
	return !amount.IsNeg() && amount.Trim(0).Scale() <= amountScale
}

func isValidStatus(status string) bool {
	switch status {
	case "active", "inactive":
		return true
	default:
		return false
	}
}
