package restaurant

import "errors"

var (
	ErrDishNotFound       = errors.New("dish not found")
	ErrInvalidOrder       = errors.New("invalid order")
	ErrCategoryMismatch   = errors.New("dish does not belong on this menu")
	ErrPriceLimitExceeded = errors.New("price exceeds the menu limit")
	ErrDuplicateDish      = errors.New("dish already on the menu")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrOrderNotFound      = errors.New("order not found")
)
