package rental

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "dailyapps/internal/domain/rental"
	"dailyapps/internal/validate"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestRentAndReturn(t *testing.T) {
	s := NewRentalService(zaptest.NewLogger(t))
	ctx := context.Background()

	car, err := s.AddCar(ctx, CarInput{Make: "Audi", Model: "A8", PricePerDay: dec(100), Class: domain.ClassLuxury, Insurance: dec(30), PremiumService: dec(20)})
	require.NoError(t, err)
	cust, err := s.CreateCustomer(ctx, "Anna", "anna@example.com")
	require.NoError(t, err)

	r, err := s.Rent(ctx, cust.ID, car.ID, 2)
	require.NoError(t, err)
	assert.True(t, r.Price.Equal(dec(250)), "price=%s", r.Price)
	assert.True(t, r.Active)
	assert.Nil(t, r.ReturnedAt)

	_, err = s.Rent(ctx, cust.ID, car.ID, 1)
	assert.ErrorIs(t, err, domain.ErrCarNotAvailable)
	available, err := s.ListCars(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, available)

	done, err := s.Return(ctx, r.ID)
	require.NoError(t, err)
	assert.False(t, done.Active)
	assert.NotNil(t, done.ReturnedAt)
	_, err = s.Return(ctx, r.ID)
	assert.ErrorIs(t, err, domain.ErrCarNotAvailable)

	got, err := s.GetCar(ctx, car.ID)
	require.NoError(t, err)
	assert.True(t, got.Available)

	hist, err := s.History(ctx, cust.ID)
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}

func TestRentalServiceErrors(t *testing.T) {
	s := NewRentalService(zaptest.NewLogger(t))
	ctx := context.Background()

	_, err := s.AddCar(ctx, CarInput{Make: "Audi", Model: "A8", PricePerDay: dec(100), Class: "sports"})
	assert.ErrorIs(t, err, validate.ErrValidation)
	car, err := s.AddCar(ctx, CarInput{Make: "Fiat", Model: "Panda", PricePerDay: dec(30)})
	require.NoError(t, err)
	assert.Equal(t, domain.ClassEconomy, car.Class)

	cust, _ := s.CreateCustomer(ctx, "Ben", "ben@example.com")
	_, err = s.Rent(ctx, "missing", car.ID, 1)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
	_, err = s.Rent(ctx, cust.ID, "missing", 1)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)
	_, err = s.Rent(ctx, cust.ID, car.ID, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidRentalDuration)
	_, err = s.Return(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRentalNotFound)

	_, err = s.SearchHistory(ctx, cust.ID, "Fiat", "", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrCarNotAvailable)
	_, err = s.Rent(ctx, cust.ID, car.ID, 3)
	require.NoError(t, err)
	found, err := s.SearchHistory(ctx, cust.ID, "Fiat", "Panda", dec(30))
	require.NoError(t, err)
	assert.Len(t, found, 1)
}
