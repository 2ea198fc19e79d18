package bank

import (
	"fmt"

	"dailyapps/internal/util"
	"dailyapps/internal/validate"
)

type Customer struct {
	ID          string
	Name        string
	ContactInfo string
	accounts    []Account
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

// Actor is the identity the customer acts under when moving money.
func (c *Customer) Actor() Actor {
	return Actor{ID: c.ID}
}

func (c *Customer) AddAccount(a Account) {
	c.accounts = append(c.accounts, a)
}

func (c *Customer) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Customer) TransactionHistory(accountNumber string) ([]Transaction, error) {
	for _, a := range c.accounts {
		if a.Number() == accountNumber {
			return a.Transactions(), nil
		}
	}
	return nil, fmt.Errorf("customer %s, account %s: %w", c.ID, accountNumber, ErrAccountNotFound)
}
