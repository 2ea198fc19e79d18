package rental

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"dailyapps/internal/util"
)

// Rental is implemented only by StandardRental.
type Rental interface {
	ID() string
	Car() *Car
	Customer() *Customer
	Days() int
	Rent() error
	Return() error
	Price() decimal.Decimal
	Active() bool
	RentedAt() time.Time
	ReturnedAt() time.Time
	isRental()
}

type StandardRental struct {
	id         string
	customer   *Customer
	car        *Car
	days       int
	rentedAt   time.Time
	returnedAt time.Time
}

func NewStandardRental(customer *Customer, car *Car, days int) (*StandardRental, error) {
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	if days <= 0 {
		return nil, fmt.Errorf("%d days: %w", days, ErrInvalidRentalDuration)
	}
	return &StandardRental{
		id:       util.GenerateUUID(),
		customer: customer,
		car:      car,
		days:     days,
	}, nil
}

func (r *StandardRental) isRental() {}

func (r *StandardRental) ID() string            { return r.id }
func (r *StandardRental) Car() *Car             { return r.car }
func (r *StandardRental) Customer() *Customer   { return r.customer }
func (r *StandardRental) Days() int             { return r.days }
func (r *StandardRental) RentedAt() time.Time   { return r.rentedAt }
func (r *StandardRental) ReturnedAt() time.Time { return r.returnedAt }

func (r *StandardRental) Active() bool {
	return !r.rentedAt.IsZero() && r.returnedAt.IsZero()
}

// Rent takes the car and appends the rental to the customer's history.
func (r *StandardRental) Rent() error {
	if !r.rentedAt.IsZero() {
		return fmt.Errorf("rental %s already started: %w", r.id, ErrCarNotAvailable)
	}
	if err := r.car.markRented(); err != nil {
		return fmt.Errorf("rent %s %s: %w", r.car.Make, r.car.Model, err)
	}
	r.rentedAt = time.Now()
	r.customer.history = append(r.customer.history, r)
	return nil
}

// Return hands the car back. The rental stays in the customer's history.
func (r *StandardRental) Return() error {
	if !r.Active() {
		return fmt.Errorf("rental %s is not active: %w", r.id, ErrCarNotAvailable)
	}
	if err := r.car.markAvailable(); err != nil {
		return fmt.Errorf("return %s %s, car is not rented: %w", r.car.Make, r.car.Model, err)
	}
	r.returnedAt = time.Now()
	return nil
}

func (r *StandardRental) Price() decimal.Decimal {
	sum := r.car.PricePerDay.Mul(decimal.NewFromInt(int64(r.days)))
	return sum.Add(r.car.surcharge())
}
