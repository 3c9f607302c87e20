package orderapi

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/govalues/decimal"
)

// flexValue принимает и число, и строку: бэкенд отдаёт id и суммы по-разному.
type flexValue string

func (v *flexValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = flexValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = flexValue(n.String())
	return nil
}

func (v flexValue) decimal() (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	return decimal.Parse(string(v))
}

type orderResponse struct {
	ID        flexValue  `json:"id"`
	Status    string     `json:"status"`
	OrderType string     `json:"order_type"`
	Total     flexValue  `json:"total"`
	CreatedAt *time.Time `json:"created_at"`
}

type couponResponse struct {
	Valid          bool      `json:"valid"`
	CouponID       int64     `json:"coupon_id"`
	Code           string    `json:"code"`
	DiscountType   string    `json:"discount_type"`
	DiscountValue  flexValue `json:"discount_value"`
	DiscountAmount flexValue `json:"discount_amount"`
	Description    string    `json:"description"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
