package restaurant

import (
	"fmt"
	"slices"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

type Customer struct {
	ID          string
	Name        string
	ContactInfo string
	orders      []*Order
}

func NewCustomer(name, contactInfo string) (*Customer, error) {
	n, err := validate.Check(validate.TagName, name)
	if err != nil {
		return nil, err
	}
	c, err := validate.Check(validate.TagContactInfo, contactInfo)
	if err != nil {
		return nil, err
	}
	return &Customer{ID: util.GenerateUUID(), Name: n, ContactInfo: c}, nil
}

func (c *Customer) PlaceOrder(o *Order) error {
	if o == nil || o.Empty() {
		return fmt.Errorf("customer %s: %w", c.ID, ErrInvalidOrder)
	}
	c.orders = append(c.orders, o)
	return nil
}

func (c *Customer) OrderHistory() []*Order {
	return slices.Clone(c.orders)
}
