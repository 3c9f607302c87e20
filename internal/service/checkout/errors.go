package checkout

import "errors"

var (
	ErrInvalidOrderType = errors.New("invalid order type")
	ErrInvalidSubtotal  = errors.New("invalid subtotal")
	ErrInvalidCoupon    = errors.New("invalid coupon code")

	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponRejected = errors.New("coupon rejected")
)

// CouponError отказ бэкенда по купону, Detail показывается клиенту как есть.
type CouponError struct {
	Detail string
	Err    error
}

func (e *CouponError) Error() string {
	return e.Err.Error() + ": " + e.Detail
}

func (e *CouponError) Unwrap() error {
	return e.Err
}
