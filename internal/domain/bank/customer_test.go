package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyapps/internal/validate"
)

func TestNewCustomerValidation(t *testing.T) {
	_, err := NewCustomer("", "anna@example.com")
	assert.ErrorIs(t, err, validate.ErrValidation)

	_, err = NewCustomer("Anna", "not-a-contact")
	var vErr *validate.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, validate.TagContactInfo, vErr.Tag)

	c, err := NewCustomer("Anna", "5550101")
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, c.ID, c.Actor().ID)
}

func TestCustomerTransactionHistory(t *testing.T) {
	c, err := NewCustomer("Anna", "anna@example.com")
	require.NoError(t, err)
	acc, err := NewIndividualAccount("1234567890", c.ID)
	require.NoError(t, err)
	c.AddAccount(acc)
	require.NoError(t, acc.Deposit(dec(10)))

	history, err := c.TransactionHistory("1234567890")
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = c.TransactionHistory("0000000000")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Len(t, c.Accounts(), 1)
}
