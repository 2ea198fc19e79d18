package rental

import (
	"fmt"

	"github.com/shopspring/decimal"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

type Customer struct {
	ID          string
	Name        string
	ContactInfo string
	history     []Rental
}

func NewCustomer(name, contactInfo string) (*Customer, error) {
	n, err := validate.Check(validate.TagHumanName, name)
	if err != nil {
		return nil, err
	}
	c, err := validate.Check(validate.TagContactInfo, contactInfo)
	if err != nil {
		return nil, err
	}
	return &Customer{ID: util.GenerateUUID(), Name: n, ContactInfo: c}, nil
}

func (c *Customer) RentalHistory() []Rental {
	out := make([]Rental, len(c.history))
	copy(out, c.history)
	return out
}

// SearchHistory finds past rentals whose car matches the criteria.
func (c *Customer) SearchHistory(carMake, model string, maxPrice decimal.Decimal) ([]Rental, error) {
	var found []Rental
	for _, r := range c.history {
		if r.Car().Matches(carMake, model, maxPrice) {
			found = append(found, r)
		}
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no rented car matches %q %q: %w", carMake, model, ErrCarNotAvailable)
	}
	return found, nil
}
