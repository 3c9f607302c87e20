package orderapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"storefront/internal/entities"
	"storefront/internal/gateway"
	"storefront/internal/service/checkout"
	"storefront/internal/service/tracking"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "orderapi"

	maxBodyBytes = 1 << 20

	defaultCouponRejection = "Invalid coupon code"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Gateway struct {
	baseURL string
	client  *http.Client
	retrier retrierconfig.Retrier
}

func New(cfg Config) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		retrier: backoff_adapter.New(retrierconfig.Request(gateway.IsRetryable)),
	}
}

func (g *Gateway) GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error) {
	endpoint := g.baseURL + "/api/orders/" + url.PathEscape(orderID)

	var resp orderResponse
	err := g.do(ctx, "GetOrderByID", http.MethodGet, endpoint, &resp)
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, tracking.ErrOrderNotFound
		}
		return nil, fmt.Errorf("gateway orderapi, get order %s: %w", orderID, err)
	}

	total, err := resp.Total.decimal()
	if err != nil {
		return nil, fmt.Errorf("gateway orderapi, parse total %q: %w", resp.Total, err)
	}

	order := &entities.Order{
		ID:        string(resp.ID),
		Status:    resp.Status,
		OrderType: entities.OrderType(resp.OrderType),
		Total:     total,
	}
	if order.ID == "" {
		order.ID = orderID
	}
	if resp.CreatedAt != nil {
		order.CreatedAt = *resp.CreatedAt
	}

	return order, nil
}

func (g *Gateway) ValidateCoupon(ctx context.Context, code string, subtotal decimal.Decimal) (*entities.CouponDiscount, error) {
	params := url.Values{}
	params.Set("code", code)
	params.Set("subtotal", subtotal.String())
	endpoint := g.baseURL + "/api/coupons/validate?" + params.Encode()

	var resp couponResponse
	err := g.do(ctx, "ValidateCoupon", http.MethodPost, endpoint, &resp)
	if err != nil {
		var statusErr *gateway.StatusError
		if errors.As(err, &statusErr) {
			switch statusErr.Code {
			case http.StatusNotFound:
				return nil, checkout.ErrCouponNotFound
			case http.StatusBadRequest:
				return nil, &checkout.CouponError{
					Detail: rejectionDetail(statusErr.Body),
					Err:    checkout.ErrCouponRejected,
				}
			}
		}
		return nil, fmt.Errorf("gateway orderapi, validate coupon %q: %w", code, err)
	}

	if !resp.Valid {
		detail := resp.Description
		if detail == "" {
			detail = defaultCouponRejection
		}
		return nil, &checkout.CouponError{Detail: detail, Err: checkout.ErrCouponRejected}
	}

	value, err := resp.DiscountValue.decimal()
	if err != nil {
		return nil, fmt.Errorf("gateway orderapi, parse discount value %q: %w", resp.DiscountValue, err)
	}
	amount, err := resp.DiscountAmount.decimal()
	if err != nil {
		return nil, fmt.Errorf("gateway orderapi, parse discount amount %q: %w", resp.DiscountAmount, err)
	}

	return &entities.CouponDiscount{
		Valid:          true,
		CouponID:       resp.CouponID,
		Code:           resp.Code,
		DiscountType:   entities.DiscountType(resp.DiscountType),
		DiscountValue:  value,
		DiscountAmount: amount,
		Description:    resp.Description,
	}, nil
}

func (g *Gateway) do(ctx context.Context, method, httpMethod, endpoint string, out any) error {
	return gateway.ExecuteWithMetrics(ctx, g.retrier, serviceName, method, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, httpMethod, endpoint, http.NoBody)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &gateway.StatusError{Code: resp.StatusCode, Body: string(body)}
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode body: %w", err)
		}
		return nil
	})
}

func statusCode(err error) int {
	var statusErr *gateway.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}

func rejectionDetail(body string) string {
	var resp errorResponse
	if err := json.Unmarshal([]byte(body), &resp); err == nil && resp.Detail != "" {
		return resp.Detail
	}
	return defaultCouponRejection
}
