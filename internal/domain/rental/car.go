package rental

import (
	"github.com/shopspring/decimal"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

type Class string

const (
	ClassEconomy Class = "economy"
	ClassLuxury  Class = "luxury"
)

// Car is a rentable vehicle. Luxury cars carry flat surcharges that are
// added once per rental.
type Car struct {
	ID             string
	Make           string
	Model          string
	PricePerDay    decimal.Decimal
	Class          Class
	Insurance      decimal.Decimal
	PremiumService decimal.Decimal
	available      bool
}

func newCar(carMake, model string, pricePerDay decimal.Decimal, class Class) (*Car, error) {
	mk, err := validate.Check(validate.TagCarMake, carMake)
	if err != nil {
		return nil, err
	}
	md, err := validate.Check(validate.TagModelName, model)
	if err != nil {
		return nil, err
	}
	price, err := validate.NonNegative(validate.TagPrice, pricePerDay)
	if err != nil {
		return nil, err
	}
	return &Car{
		ID:          util.GenerateUUID(),
		Make:        mk,
		Model:       md,
		PricePerDay: price,
		Class:       class,
		available:   true,
	}, nil
}

func NewEconomyCar(carMake, model string, pricePerDay decimal.Decimal) (*Car, error) {
	return newCar(carMake, model, pricePerDay, ClassEconomy)
}

func NewLuxuryCar(carMake, model string, pricePerDay, insurance, premiumService decimal.Decimal) (*Car, error) {
	car, err := newCar(carMake, model, pricePerDay, ClassLuxury)
	if err != nil {
		return nil, err
	}
	if car.Insurance, err = validate.NonNegative(validate.TagPrice, insurance); err != nil {
		return nil, err
	}
	if car.PremiumService, err = validate.NonNegative(validate.TagPrice, premiumService); err != nil {
		return nil, err
	}
	return car, nil
}

func (c *Car) Available() bool {
	return c.available
}

// surcharge is the flat per-rental amount on top of the daily price.
func (c *Car) surcharge() decimal.Decimal {
	if c.Class != ClassLuxury {
		return decimal.Zero
	}
	return c.Insurance.Add(c.PremiumService)
}

func (c *Car) markRented() error {
	if !c.available {
		return ErrCarNotAvailable
	}
	c.available = false
	return nil
}

func (c *Car) markAvailable() error {
	if c.available {
		return ErrCarNotAvailable
	}
	c.available = true
	return nil
}

// Matches reports whether the car fits the optional search criteria. Empty
// strings and a zero maxPrice match anything.
func (c *Car) Matches(carMake, model string, maxPrice decimal.Decimal) bool {
	if carMake != "" && c.Make != carMake {
		return false
	}
	if model != "" && c.Model != model {
		return false
	}
	if !maxPrice.IsZero() && c.PricePerDay.GreaterThan(maxPrice) {
		return false
	}
	return true
}
