package rental

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailyapps/internal/validate"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func fixture(t *testing.T) (*Customer, *Car) {
	t.Helper()
	cust, err := NewCustomer("Anna", "anna@example.com")
	require.NoError(t, err)
	car, err := NewEconomyCar("Toyota", "Corolla", dec(40))
	require.NoError(t, err)
	return cust, car
}

func TestCarValidation(t *testing.T) {
	_, err := NewEconomyCar("Rolls-Royce", "Ghost", dec(100))
	assert.ErrorIs(t, err, validate.ErrValidation)

	_, err = NewEconomyCar("Tesla", "Model S", dec(100))
	assert.ErrorIs(t, err, validate.ErrValidation)

	_, err = NewLuxuryCar("Bentley", "Bentayga", dec(300), dec(-1), dec(10))
	assert.ErrorIs(t, err, validate.ErrValidation)

	car, err := NewLuxuryCar("Bentley", "Bentayga", dec(300), dec(50), dec(20))
	require.NoError(t, err)
	assert.True(t, car.Available())
	assert.Equal(t, ClassLuxury, car.Class)
}

func TestCannotRentTwiceWithoutReturn(t *testing.T) {
	cust, car := fixture(t)
	first, err := NewStandardRental(cust, car, 3)
	require.NoError(t, err)
	require.NoError(t, first.Rent())
	assert.False(t, car.Available())

	second, err := NewStandardRental(cust, car, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, second.Rent(), ErrCarNotAvailable)

	require.NoError(t, first.Return())
	assert.True(t, car.Available())
	require.NoError(t, second.Rent())
}

func TestReturnRequiresActiveRental(t *testing.T) {
	cust, car := fixture(t)
	r, err := NewStandardRental(cust, car, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, r.Return(), ErrCarNotAvailable)

	require.NoError(t, r.Rent())
	require.NoError(t, r.Return())
	assert.ErrorIs(t, r.Return(), ErrCarNotAvailable)
	assert.ErrorIs(t, r.Rent(), ErrCarNotAvailable)
	assert.False(t, r.Active())
	assert.False(t, r.ReturnedAt().IsZero())
}

func TestRentalHistoryIsAppendOnly(t *testing.T) {
	cust, car := fixture(t)
	r, _ := NewStandardRental(cust, car, 2)
	require.NoError(t, r.Rent())
	require.NoError(t, r.Return())

	history := cust.RentalHistory()
	require.Len(t, history, 1)
	assert.Equal(t, r.ID(), history[0].ID())
}

func TestInvalidDuration(t *testing.T) {
	cust, car := fixture(t)
	for _, days := range []int{0, -2} {
		_, err := NewStandardRental(cust, car, days)
		assert.ErrorIs(t, err, ErrInvalidRentalDuration)
	}
	_, err := NewStandardRental(nil, car, 1)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
	_, err = NewStandardRental(cust, nil, 1)
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestPrice(t *testing.T) {
	cust, car := fixture(t)
	r, _ := NewStandardRental(cust, car, 3)
	assert.True(t, r.Price().Equal(dec(120)), "price=%s", r.Price())

	lux, err := NewLuxuryCar("Bentley", "Bentayga", dec(300), dec(50), dec(20))
	require.NoError(t, err)
	lr, _ := NewStandardRental(cust, lux, 2)
	assert.True(t, lr.Price().Equal(dec(670)), "price=%s", lr.Price())
}

func TestSearchHistory(t *testing.T) {
	cust, car := fixture(t)
	_, err := cust.SearchHistory("", "", decimal.Zero)
	assert.ErrorIs(t, err, ErrCarNotAvailable)

	r, _ := NewStandardRental(cust, car, 1)
	require.NoError(t, r.Rent())

	found, err := cust.SearchHistory("Toyota", "", dec(50))
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = cust.SearchHistory("Toyota", "", dec(30))
	assert.ErrorIs(t, err, ErrCarNotAvailable)

	_, err = cust.SearchHistory("Honda", "", decimal.Zero)
	assert.ErrorIs(t, err, ErrCarNotAvailable)
}

func TestCustomerNameMustBeLetters(t *testing.T) {
	_, err := NewCustomer("Anna2", "anna@example.com")
	assert.ErrorIs(t, err, validate.ErrValidation)
}
