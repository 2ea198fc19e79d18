package bank

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "dailyapps/internal/domain/bank"
	"dailyapps/internal/validate"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newService(t *testing.T) (BankService, CustomerInfo, CustomerInfo) {
	t.Helper()
	s := NewBankService(0, zaptest.NewLogger(t))
	ctx := context.Background()
	anna, err := s.CreateCustomer(ctx, "Anna", "anna@example.com")
	require.NoError(t, err)
	ben, err := s.CreateCustomer(ctx, "Ben", "5551234")
	require.NoError(t, err)
	return s, anna, ben
}

func TestOpenAccount(t *testing.T) {
	s, anna, ben := newService(t)
	ctx := context.Background()

	acc, err := s.OpenAccount(ctx, domain.KindIndividual, "1234567890", []string{anna.ID})
	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero())

	_, err = s.OpenAccount(ctx, domain.KindIndividual, "1234567890", []string{anna.ID})
	assert.ErrorIs(t, err, domain.ErrAccountExists)
	_, err = s.OpenAccount(ctx, domain.KindJoint, "2222222222", []string{anna.ID, "nobody"})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	_, err = s.OpenAccount(ctx, domain.KindIndividual, "3333333333", []string{anna.ID, ben.ID})
	assert.ErrorIs(t, err, domain.ErrNoOwners)
	_, err = s.OpenAccount(ctx, "savings", "4444444444", []string{anna.ID})
	assert.ErrorIs(t, err, validate.ErrValidation)
	_, err = s.OpenAccount(ctx, domain.KindIndividual, "12345", []string{anna.ID})
	assert.ErrorIs(t, err, validate.ErrValidation)

	joint, err := s.OpenAccount(ctx, domain.KindJoint, "5555555555", []string{anna.ID, ben.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{anna.ID, ben.ID}, joint.Owners)

	info, err := s.GetCustomer(ctx, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"5555555555"}, info.AccountNumbers)
}

func TestOpenAccountRepeatedOwners(t *testing.T) {
	s, anna, ben := newService(t)
	ctx := context.Background()

	joint, err := s.OpenAccount(ctx, domain.KindJoint, "6666666666", []string{anna.ID, ben.ID, anna.ID, anna.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{anna.ID, ben.ID}, joint.Owners)

	info, err := s.GetCustomer(ctx, anna.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"6666666666"}, info.AccountNumbers)

	single, err := s.OpenAccount(ctx, domain.KindIndividual, "7777777777", []string{ben.ID, ben.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{ben.ID}, single.Owners)
}

func TestMoneyMovement(t *testing.T) {
	s, anna, ben := newService(t)
	ctx := context.Background()
	_, err := s.OpenAccount(ctx, domain.KindIndividual, "1111111111", []string{anna.ID})
	require.NoError(t, err)
	_, err = s.OpenAccount(ctx, domain.KindIndividual, "2222222222", []string{ben.ID})
	require.NoError(t, err)

	acc, err := s.Deposit(ctx, "1111111111", dec(100))
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(dec(100)))

	_, err = s.Withdraw(ctx, "1111111111", ben.ID, dec(10))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = s.Withdraw(ctx, "1111111111", anna.ID, dec(500))
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	acc, err = s.Transfer(ctx, "1111111111", "2222222222", anna.ID, dec(40))
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(dec(60)))

	dst, err := s.GetAccount(ctx, "2222222222")
	require.NoError(t, err)
	assert.True(t, dst.Balance.Equal(dec(40)))

	_, err = s.Transfer(ctx, "1111111111", "9999999999", anna.ID, dec(1))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	txs, err := s.Transactions(ctx, "1111111111")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, domain.TransactionTransfer, txs[1].Type)

	summary, err := s.TransactionSummary(ctx, "1111111111", 1)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, domain.TransactionTransfer, summary[0].Type)

	hist, err := s.CustomerHistory(ctx, ben.ID, "2222222222")
	require.NoError(t, err)
	assert.Len(t, hist, 1)
	_, err = s.CustomerHistory(ctx, ben.ID, "1111111111")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
