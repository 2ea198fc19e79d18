package restaurant

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"dailyapps/internal/util"
)

// Line is a dish as it was priced when added to an order.
type Line struct {
	Name     string          `json:"name"`
	Category Category        `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

type Order struct {
	ID         string
	CustomerID string
	CreatedAt  time.Time
	lines      []Line
	total      decimal.Decimal
}

func NewOrder(customerID string) *Order {
	return &Order{ID: util.GenerateUUID(), CustomerID: customerID, CreatedAt: time.Now()}
}

// AddDish looks name up in menus, in order, and adds the first match at its
// current price. A miss on an empty order is an invalid order.
func (o *Order) AddDish(name string, menus ...Menu) error {
	for _, m := range menus {
		line, ok := m.lookup(name)
		if !ok {
			continue
		}
		o.lines = append(o.lines, line)
		o.total = o.total.Add(line.Price)
		return nil
	}
	if len(o.lines) == 0 {
		return fmt.Errorf("order %s, dish %q: %w", o.ID, name, ErrInvalidOrder)
	}
	return fmt.Errorf("order %s, dish %q: %w", o.ID, name, ErrDishNotFound)
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

func (o *Order) Empty() bool {
	return len(o.lines) == 0
}
