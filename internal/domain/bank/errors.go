package bank

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrUnauthorized       = errors.New("actor is not authorized for this account")
	ErrInvalidTransaction = errors.New("invalid transaction amount")
	ErrSameAccount        = errors.New("source and target account are the same")
	ErrNoOwners           = errors.New("joint account needs at least one owner")
)
