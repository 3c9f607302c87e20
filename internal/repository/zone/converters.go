package zone

import (
	"encoding/json"
	"fmt"

	"github.com/govalues/decimal"
	"storefront/internal/entities"
)

func ToDomain(z *ZoneDB) (*entities.DeliveryZone, error) {
	if z == nil {
		return nil, nil
	}

	fee, err := parseAmount(z.DeliveryFee)
	if err != nil {
		return nil, fmt.Errorf("zone %s delivery_fee: %w", z.ID, err)
	}
	minOrder, err := parseAmount(z.MinOrderAmount)
	if err != nil {
		return nil, fmt.Errorf("zone %s min_order_amount: %w", z.ID, err)
	}

	return &entities.DeliveryZone{
		ID:             z.ID,
		BranchID:       z.BranchID,
		Name:           z.Name,
		Coordinates:    DecodeCoordinates(z.Coordinates),
		DeliveryFee:    fee,
		MinOrderAmount: minOrder,
		Status:         entities.ZoneStatusType(z.Status),
		CreatedAt:      z.CreatedAt,
		UpdatedAt:      z.UpdatedAt,
	}, nil
}

func ToDomainList(zonesDB []ZoneDB) ([]entities.DeliveryZone, error) {
	result := make([]entities.DeliveryZone, 0, len(zonesDB))
	for i := range zonesDB {
		zone, err := ToDomain(&zonesDB[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *zone)
	}
	return result, nil
}

func FromDomainModify(zoneModify *entities.ZoneModify) (*ZoneModifyDB, error) {
	if zoneModify == nil {
		return nil, nil
	}
	zoneDB := &ZoneModifyDB{
		ID:   zoneModify.ID,
		Name: zoneModify.Name,
	}

	if zoneModify.Coordinates != nil {
		raw, err := EncodeCoordinates(*zoneModify.Coordinates)
		if err != nil {
			return nil, err
		}
		zoneDB.Coordinates = raw
	}
	if zoneModify.DeliveryFee != nil {
		fee := zoneModify.DeliveryFee.String()
		zoneDB.DeliveryFee = &fee
	}
	if zoneModify.MinOrderAmount != nil {
		minOrder := zoneModify.MinOrderAmount.String()
		zoneDB.MinOrderAmount = &minOrder
	}
	if zoneModify.Status != nil {
		status := zoneModify.Status.String()
		zoneDB.Status = &status
	}

	return zoneDB, nil
}

// DecodeCoordinates jsonb [[lat, lng], ...]. Пары не из двух чисел
// отбрасываются, нечитаемый документ даёт пустой полигон (матчер его пропустит).
func DecodeCoordinates(raw []byte) [][2]float64 {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return [][2]float64{}
	}

	coordinates := make([][2]float64, 0, len(items))
	for _, item := range items {
		var pair []float64
		if err := json.Unmarshal(item, &pair); err != nil || len(pair) != 2 {
			continue
		}
		coordinates = append(coordinates, [2]float64{pair[0], pair[1]})
	}
	return coordinates
}

func EncodeCoordinates(coordinates [][2]float64) ([]byte, error) {
	if coordinates == nil {
		coordinates = [][2]float64{}
	}
	raw, err := json.Marshal(coordinates)
	if err != nil {
		return nil, fmt.Errorf("encode coordinates: %w", err)
	}
	return raw, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.Parse(s)
}
