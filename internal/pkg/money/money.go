package money

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/govalues/decimal"
)

const scale = 3

// Amount сумма в KWD. В ответах всегда строка с тремя знаками ("0.500"),
// во входе принимается и строка, и число.
type Amount struct {
	decimal.Decimal
}

func New(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Round(scale).Pad(scale).String())
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	d, err := decimal.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	a.Decimal = d
	return nil
}
