package entities

import "github.com/govalues/decimal"

type CheckoutRequest struct {
	OrderType  OrderType
	Address    StructuredAddress
	Point      *GeoPoint
	Subtotal   decimal.Decimal
	CouponCode string
}

type CheckoutQuote struct {
	Accepted    bool
	Reason      string
	Zone        *DeliveryZone
	Point       *GeoPoint
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	Coupon      *CouponDiscount
	Hours       OpenStatus
	// SkippedZoneIDs зоны с вырожденной геометрией, пропущенные при проверке адреса
	SkippedZoneIDs []string
}
