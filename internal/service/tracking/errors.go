package tracking

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrOrderNotTracked = errors.New("order is not tracked")
	ErrTrackerClosed   = errors.New("tracker closed")
)

var ErrOrderNotFound = errors.New("order not found")
