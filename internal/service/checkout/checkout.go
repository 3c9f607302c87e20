package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
	"storefront/internal/entities"
	"storefront/internal/service/zone"
)

const (
	amountScale = 3

	msgAddressNotFound = "Could not find address. Please check details."
	msgMinimumOrder    = "Minimum order for %s is %s KWD"
	msgCouponNotFound  = "Coupon not found"
)

// DefaultDeliveryFee применяется, только когда у филиала нет ни одной активной зоны.
var DefaultDeliveryFee = decimal.MustParse("0.500")

type Service struct {
	hours   HoursService
	zones   ZoneService
	coupons CouponGateway
	clock   Clock
}

func New(hours HoursService, zones ZoneService, coupons CouponGateway, clock Clock) *Service {
	return &Service{
		hours:   hours,
		zones:   zones,
		coupons: coupons,
		clock:   clock,
	}
}

// Preflight проверяет заказ перед оформлением и считает итог.
// Бизнес-отказ (закрыто, вне зоны, купон отклонён) возвращается как quote.Accepted = false,
// ошибка только для невалидного запроса и сбоев инфраструктуры.
func (s *Service) Preflight(ctx context.Context, req entities.CheckoutRequest) (*entities.CheckoutQuote, error) {
	if req.OrderType != entities.OrderTypeDelivery && req.OrderType != entities.OrderTypePickup {
		return nil, ErrInvalidOrderType
	}
	if !isValidAmount(req.Subtotal) {
		return nil, ErrInvalidSubtotal
	}

	quote := &entities.CheckoutQuote{
		Subtotal:    req.Subtotal,
		Discount:    decimal.Zero,
		DeliveryFee: decimal.Zero,
		Total:       req.Subtotal,
		Hours:       s.hours.Status(s.clock.Now()),
	}

	if !quote.Hours.IsOpen {
		return reject(quote, quote.Hours.Message), nil
	}

	if req.OrderType == entities.OrderTypeDelivery {
		rejected, err := s.resolveDelivery(ctx, req, quote)
		if err != nil {
			return nil, err
		}
		if rejected {
			return quote, nil
		}
	}

	if code := strings.TrimSpace(req.CouponCode); code != "" {
		coupon, err := s.ValidateCoupon(ctx, code, req.Subtotal)
		if err != nil {
			var couponErr *CouponError
			switch {
			case errors.As(err, &couponErr):
				return reject(quote, couponErr.Detail), nil
			case errors.Is(err, ErrCouponNotFound):
				return reject(quote, msgCouponNotFound), nil
			default:
				return nil, err
			}
		}

		quote.Coupon = coupon
		quote.Discount = coupon.DiscountAmount
		if quote.Discount.Cmp(req.Subtotal) > 0 {
			quote.Discount = req.Subtotal
		}
	}

	total, err := computeTotal(quote.Subtotal, quote.Discount, quote.DeliveryFee)
	if err != nil {
		return nil, err
	}
	quote.Total = total
	quote.Accepted = true

	return quote, nil
}

// ValidateCoupon прокси к order API с проверкой входа.
func (s *Service) ValidateCoupon(ctx context.Context, code string, subtotal decimal.Decimal) (*entities.CouponDiscount, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrInvalidCoupon
	}
	if !isValidAmount(subtotal) {
		return nil, ErrInvalidSubtotal
	}

	coupon, err := s.coupons.ValidateCoupon(ctx, code, subtotal)
	if err != nil {
		return nil, fmt.Errorf("validate coupon: %w", err)
	}
	return coupon, nil
}

func (s *Service) resolveDelivery(ctx context.Context, req entities.CheckoutRequest, quote *entities.CheckoutQuote) (bool, error) {
	var (
		result *entities.MatchResult
		err    error
	)
	if req.Point != nil {
		result, err = s.zones.ValidateLocation(ctx, *req.Point)
	} else {
		result, err = s.zones.ValidateAddress(ctx, req.Address)
	}
	if err != nil {
		if zone.IsNotResolved(err) {
			reject(quote, msgAddressNotFound)
			return true, nil
		}
		return false, fmt.Errorf("validate delivery location: %w", err)
	}

	quote.Point = result.Point
	quote.SkippedZoneIDs = result.Skipped
	if !result.Valid {
		reject(quote, result.Message)
		return true, nil
	}

	if result.Zone == nil {
		quote.DeliveryFee = DefaultDeliveryFee
		return false, nil
	}

	quote.Zone = result.Zone
	quote.DeliveryFee = result.Zone.DeliveryFee
	if req.Subtotal.Cmp(result.Zone.MinOrderAmount) < 0 {
		reject(quote, fmt.Sprintf(msgMinimumOrder, result.Zone.Name, FormatKWD(result.Zone.MinOrderAmount)))
		return true, nil
	}

	return false, nil
}

func computeTotal(subtotal, discount, fee decimal.Decimal) (decimal.Decimal, error) {
	afterDiscount, err := subtotal.Sub(discount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("apply discount: %w", err)
	}
	total, err := afterDiscount.Add(fee)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("add delivery fee: %w", err)
	}
	return total.Round(amountScale), nil
}

func reject(quote *entities.CheckoutQuote, reason string) *entities.CheckoutQuote {
	quote.Accepted = false
	quote.Reason = reason
	return quote
}

func isValidAmount(amount decimal.Decimal) bool {
	return !amount.IsNeg() && amount.Trim(0).Scale() <= amountScale
}

// FormatKWD "5" -> "5.000"
func FormatKWD(amount decimal.Decimal) string {
	return amount.Round(amountScale).Pad(amountScale).String()
}
