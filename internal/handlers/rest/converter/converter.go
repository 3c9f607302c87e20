// Package converter переводит сгенерированные DTO в сущности и обратно.
package converter

import (
	"github.com/govalues/decimal"
	"storefront/internal/entities"
	"storefront/internal/generated/dto"
	"storefront/internal/pkg/money"
)

func ToGeoPoint(p *entities.GeoPoint) *dto.GeoPoint {
	if p == nil {
		return nil
	}
	return &dto.GeoPoint{Lat: p.Lat, Lng: p.Lng}
}

func GeoPointToEntity(p dto.GeoPoint) entities.GeoPoint {
	return entities.GeoPoint{Lat: p.Lat, Lng: p.Lng}
}

func ToAddress(a entities.StructuredAddress) dto.Address {
	return dto.Address{
		Area:     a.Area,
		Block:    a.Block,
		Street:   a.Street,
		Building: a.Building,
	}
}

func AddressToEntity(a *dto.Address) entities.StructuredAddress {
	if a == nil {
		return entities.StructuredAddress{}
	}
	return entities.StructuredAddress{
		Area:     a.Area,
		Block:    a.Block,
		Street:   a.Street,
		Building: a.Building,
	}
}

func ToZoneSummary(z *entities.DeliveryZone) *dto.ZoneSummary {
	if z == nil {
		return nil
	}
	return &dto.ZoneSummary{
		ID:             z.ID,
		Name:           z.Name,
		DeliveryFee:    money.New(z.DeliveryFee),
		MinOrderAmount: money.New(z.MinOrderAmount),
	}
}

func ToZone(z entities.DeliveryZone) dto.Zone {
	coordinates := z.Coordinates
	if coordinates == nil {
		coordinates = [][2]float64{}
	}
	return dto.Zone{
		ID:             z.ID,
		BranchID:       z.BranchID,
		Name:           z.Name,
		Coordinates:    coordinates,
		DeliveryFee:    money.New(z.DeliveryFee),
		MinOrderAmount: money.New(z.MinOrderAmount),
		Status:         z.Status.String(),
		CreatedAt:      z.CreatedAt,
		UpdatedAt:      z.UpdatedAt,
	}
}

func ToZoneList(zones []entities.DeliveryZone) []dto.Zone {
	result := make([]dto.Zone, len(zones))
	for i, z := range zones {
		result[i] = ToZone(z)
	}
	return result
}

// ZoneModifyToEntity общий для POST и PUT: ZoneUpdate алиас ZoneCreate.
func ZoneModifyToEntity(z dto.ZoneCreate) entities.ZoneModify {
	modify := entities.ZoneModify{
		Name:        z.Name,
		Coordinates: z.Coordinates,
	}
	if z.DeliveryFee != nil {
		modify.DeliveryFee = &z.DeliveryFee.Decimal
	}
	if z.MinOrderAmount != nil {
		modify.MinOrderAmount = &z.MinOrderAmount.Decimal
	}
	if z.Status != nil {
		status := entities.ZoneStatusType(*z.Status)
		modify.Status = &status
	}
	return modify
}

func ToOpenStatus(s entities.OpenStatus) dto.OpenStatus {
	return dto.OpenStatus{
		IsOpen:    s.IsOpen,
		Message:   s.Message,
		LocalTime: s.LocalTime,
	}
}

func ToSchedule(schedule *entities.WeeklyOperatingHours) map[string]dto.DaySchedule {
	if schedule == nil {
		return nil
	}
	result := make(map[string]dto.DaySchedule, len(*schedule))
	for day, s := range *schedule {
		result[day.String()] = dto.DaySchedule{Open: s.Open, Close: s.Close, IsOpen: s.IsOpen}
	}
	return result
}

func ToCoupon(c *entities.CouponDiscount) *dto.Coupon {
	if c == nil {
		return nil
	}
	return &dto.Coupon{
		CouponID:       c.CouponID,
		Code:           c.Code,
		DiscountType:   string(c.DiscountType),
		DiscountValue:  c.DiscountValue.String(),
		DiscountAmount: money.New(c.DiscountAmount),
		Description:    c.Description,
	}
}

func ToCheckoutQuote(q *entities.CheckoutQuote) dto.CheckoutQuoteResponse {
	return dto.CheckoutQuoteResponse{
		Accepted:       q.Accepted,
		Reason:         q.Reason,
		Zone:           ToZoneSummary(q.Zone),
		Point:          ToGeoPoint(q.Point),
		Subtotal:       money.New(q.Subtotal),
		Discount:       money.New(q.Discount),
		DeliveryFee:    money.New(q.DeliveryFee),
		Total:          money.New(q.Total),
		Coupon:         ToCoupon(q.Coupon),
		Hours:          ToOpenStatus(q.Hours),
		SkippedZoneIDs: q.SkippedZoneIDs,
	}
}

func ToTracking(s *entities.TrackingSnapshot) dto.TrackingResponse {
	return dto.TrackingResponse{
		OrderID:             s.OrderID,
		Status:              s.Display.String(),
		AuthoritativeStatus: s.AuthoritativeRaw,
		Authoritative:       s.Authoritative.String(),
		SeededAt:            s.SeededAt,
		NextTransitionAt:    s.NextTransitionAt,
		Terminal:            s.Terminal,
	}
}

func ToTrackingEvent(orderID string, status entities.OrderStatusType) dto.TrackingEvent {
	return dto.TrackingEvent{
		OrderID: orderID,
		Status:  status.String(),
	}
}

// ToDeliveryValidate ответ проверки точки; fee проставляется только для валидной точки.
func ToDeliveryValidate(result *entities.MatchResult, fee decimal.Decimal) dto.DeliveryValidateResponse {
	response := dto.DeliveryValidateResponse{
		Valid:   result.Valid,
		Message: result.Message,
		Zone:    ToZoneSummary(result.Zone),
		Point:   ToGeoPoint(result.Point),
	}
	if result.Valid {
		amount := money.New(fee)
		response.DeliveryFee = &amount
	}
	return response
}
