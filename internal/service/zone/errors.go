package zone

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidZoneID         = errors.New("invalid zone id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPoint          = errors.New("invalid point")
	ErrEmptyAddress          = errors.New("empty address")

	ErrAddressNotResolved = errors.New("address not resolved")
	ErrZoneNotFound       = errors.New("zone not found")
	ErrConflict           = errors.New("resource already exists")
)
