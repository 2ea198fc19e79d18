package restaurant

import (
	"errors"

	"github.com/shopspring/decimal"
)

var popularDishes = []string{"Caesar Salad", "Cheeseburger", "Chocolate Cake"}

var demandSurcharge = map[Category]decimal.Decimal{
	CategoryAppetizer: decimal.NewFromInt(10),
	CategoryEntree:    decimal.NewFromInt(15),
	CategoryDessert:   decimal.NewFromInt(5),
}

func PopularDishes() []string {
	return append([]string(nil), popularDishes...)
}

// ApplyDemandPricing raises the price of each popular dish found on menus by
// its category's surcharge. Applying it again compounds the increase. It
// returns the names of the dishes it repriced.
func ApplyDemandPricing(menus ...Menu) ([]string, error) {
	var repriced []string
	for _, m := range menus {
		pct, ok := demandSurcharge[m.Category()]
		if !ok {
			continue
		}
		for _, name := range popularDishes {
			err := m.IncreasePrice(name, pct)
			if errors.Is(err, ErrDishNotFound) {
				continue
			}
			if err != nil {
				return repriced, err
			}
			repriced = append(repriced, name)
		}
	}
	return repriced, nil
}
