package validate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAccountNumberAcceptsTenDigits(t *testing.T) {
	for _, n := range []int64{0, 1, 42, 1234567890, 9999999999} {
		v := fmt.Sprintf("%010d", n)
		got, err := Check(TagAccountNumber, v)
		require.NoError(t, err, v)
		assert.Equal(t, v, got)
	}
}

func TestCheckAccountNumberRejects(t *testing.T) {
	for _, v := range []string{"", "123456789", "12345678901", "12345abcde", " 1234567890", "١٢٣٤٥٦٧٨٩٠", "12345-7890"} {
		_, err := Check(TagAccountNumber, v)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, v)
		assert.Equal(t, TagAccountNumber, vErr.Tag)
		assert.True(t, errors.Is(err, ErrValidation))
	}
}

func TestCheckContactInfo(t *testing.T) {
	for _, v := range []string{"anna@example.com", "a.b+c@mail.co", "5551234"} {
		_, err := Check(TagContactInfo, v)
		assert.NoError(t, err, v)
	}
	for _, v := range []string{"", "anna@", "555-1234", "anna@example"} {
		_, err := Check(TagContactInfo, v)
		assert.ErrorIs(t, err, ErrValidation, v)
	}
}

func TestCheckNames(t *testing.T) {
	cases := []struct {
		tag   Tag
		value string
		ok    bool
	}{
		{TagName, "Cafe 21", true},
		{TagName, "   ", false},
		{TagHumanName, "Anna", true},
		{TagHumanName, "Anna1", false},
		{TagCarMake, "Toyota", true},
		{TagCarMake, "Rolls-Royce", false},
		{TagModelName, "Corolla2020", true},
		{TagModelName, "Model S", false},
		{TagUsername, "neo42", true},
		{TagUsername, "neo_42", false},
		{TagCompanyName, "Acme inc.", true},
		{TagCompanyName, "1Acme", false},
		{Tag("unknown"), "whatever", false},
	}
	for _, tc := range cases {
		_, err := Check(tc.tag, tc.value)
		if tc.ok {
			assert.NoError(t, err, "%s=%q", tc.tag, tc.value)
		} else {
			assert.ErrorIs(t, err, ErrValidation, "%s=%q", tc.tag, tc.value)
		}
	}
}

func TestMessageTrims(t *testing.T) {
	got, err := Message("  hello  ", 1)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = Message("   ", 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = Message("hi", 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAmounts(t *testing.T) {
	_, err := Positive(TagAmount, decimal.Zero)
	assert.ErrorIs(t, err, ErrValidation)

	got, err := Positive(TagAmount, decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(3)))

	_, err = NonNegative(TagPrice, decimal.Zero)
	assert.NoError(t, err)

	_, err = NonNegative(TagPrice, decimal.NewFromInt(-1))
	assert.EqualError(t, err, "invalid price")
}
