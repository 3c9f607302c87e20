package order_status_changed

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type statusChangedEvent struct {
	OrderID orderID `json:"order_id"`
	Status  string  `json:"status"`
}

// orderID бэкенд отдаёт id то числом, то строкой
type orderID string

func (id *orderID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = orderID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return err
	}
	*id = orderID(n.String())
	return nil
}
