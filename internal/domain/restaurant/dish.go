package restaurant

import (
	"time"

	"github.com/shopspring/decimal"

	"dailyapps/internal/validate"
)

type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryEntree    Category = "entree"
	CategoryDessert   Category = "dessert"
)

// Dish has a fixed name and category; its price moves with menu pricing.
type Dish struct {
	Name     string
	Category Category
	Vegan    bool
	PrepTime time.Duration
	price    decimal.Decimal
}

func newDish(name string, price decimal.Decimal, category Category) (*Dish, error) {
	n, err := validate.Check(validate.TagName, name)
	if err != nil {
		return nil, err
	}
	p, err := validate.Positive(validate.TagPrice, price)
	if err != nil {
		return nil, err
	}
	return &Dish{Name: n, Category: category, price: p}, nil
}

func NewAppetizer(name string, price decimal.Decimal, vegan bool) (*Dish, error) {
	d, err := newDish(name, price, CategoryAppetizer)
	if err != nil {
		return nil, err
	}
	d.Vegan = vegan
	return d, nil
}

func NewEntree(name string, price decimal.Decimal, prepTime time.Duration) (*Dish, error) {
	d, err := newDish(name, price, CategoryEntree)
	if err != nil {
		return nil, err
	}
	if prepTime < 0 {
		prepTime = 0
	}
	d.PrepTime = prepTime
	return d, nil
}

func NewDessert(name string, price decimal.Decimal) (*Dish, error) {
	return newDish(name, price, CategoryDessert)
}

func (d *Dish) Price() decimal.Decimal {
	return d.price
}
