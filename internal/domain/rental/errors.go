package rental

import "errors"

var (
	ErrCarNotAvailable       = errors.New("car not available")
	ErrInvalidRentalDuration = errors.New("invalid rental duration")
	ErrCarNotFound           = errors.New("car not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrRentalNotFound        = errors.New("rental not found")
)
