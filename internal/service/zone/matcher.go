package zone

import (
	"fmt"

	"storefront/internal/entities"
)

const (
	minPolygonVertices = 3

	msgDeliveryTo     = "Delivery to %s"
	msgOutsideOfZones = "Sorry, we do not deliver to this area. Please choose a location within our delivery zones."
)

// MatchZone ищет активную зону, содержащую точку.
//
//   - нет ни одной активной зоны: доставка разрешена везде (зоны ещё не настроены);
//   - зоны проверяются в порядке входного слайса, при пересечении побеждает первая;
//   - зоны с числом вершин меньше 3 пропускаются и попадают в Skipped.
func MatchZone(point entities.GeoPoint, zones []entities.DeliveryZone) entities.MatchResult {
	var (
		result entities.MatchResult
		active int
	)

	for i := range zones {
		zone := &zones[i]
		if zone.Status != entities.ZoneActive {
			continue
		}
		active++

		if len(zone.Coordinates) < minPolygonVertices {
			result.Skipped = append(result.Skipped, zone.ID)
			continue
		}

		if containsPoint(zone.Coordinates, point) {
			matched := *zone
			result.Valid = true
			result.Zone = &matched
			result.Message = fmt.Sprintf(msgDeliveryTo, zone.Name)
			return result
		}
	}

	if active == 0 {
		result.Valid = true
		return result
	}

	result.Valid = false
	result.Message = msgOutsideOfZones
	return result
}

// containsPoint ray casting: луч из точки вдоль lng, считаем пересечения рёбер.
// Последняя вершина соединяется с первой, даже если кольцо не замкнуто в данных.
func containsPoint(polygon [][2]float64, point entities.GeoPoint) bool {
	x, y := point.Lat, point.Lng
	inside := false

	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		xi, yi := polygon[i][0], polygon[i][1]
		xj, yj := polygon[j][0], polygon[j][1]

		// yi != yj гарантировано первым условием, деления на ноль нет
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}
