package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-05")
	assert.True(t, ok)

	for _, bad := range []string{"2024-3-5", "05-03-2024", "2024-13-01", "not a date"} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	for _, good := range []string{"09:00", "23:59", "09:30:15"} {
		_, ok := IsValidTimeOfDay(good)
		assert.True(t, ok, good)
	}

	for _, bad := range []string{"9am", "25:00", ""} {
		_, ok := IsValidTimeOfDay(bad)
		assert.False(t, ok, bad)
	}
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15T10:30:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-01-15 10:30:00")
	assert.False(t, ok)
}

func TestIsValidYearAndMonth(t *testing.T) {
	assert.True(t, IsValidYear(2024))
	assert.False(t, IsValidYear(1999))
	assert.False(t, IsValidYear(2101))

	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))
}

func TestIsValidAmount(t *testing.T) {
	d, ok := IsValidAmount("100.50")
	assert.True(t, ok)
	assert.Equal(t, "100.5", d.String())

	_, ok = IsValidAmount("-1")
	assert.False(t, ok)

	_, ok = IsValidAmount("abc")
	assert.False(t, ok)
}

func TestIsValidSignedAmount(t *testing.T) {
	d, ok := IsValidSignedAmount("-250")
	assert.True(t, ok)
	assert.Equal(t, "-250", d.String())

	_, ok = IsValidSignedAmount("")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "year", Message: "year is out of range"},
		{Field: "month", Message: "month must be between 1 and 12"},
	}

	assert.Contains(t, errs.Error(), "year: year is out of range")
	assert.Equal(t, map[string]string{
		"year":  "year is out of range",
		"month": "month must be between 1 and 12",
	}, errs.ToMap())
}
