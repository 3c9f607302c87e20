package entities

import "github.com/govalues/decimal"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type CouponDiscount struct {
	Valid          bool
	CouponID       int64
	Code           string
	DiscountType   DiscountType
	DiscountValue  decimal.Decimal
	DiscountAmount decimal.Decimal
	Description    string
}
