package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2024-01-31")
	assert.True(t, ok)

	for _, bad := range []string{"", "2024-1-5", "31-01-2024", "2024/01/31", "2024-13-01", "yesterday"} {
		_, ok := IsValidDate(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	d, ok := ParseAmount("123.45")
	assert.True(t, ok)
	assert.Equal(t, "123.45", d.String())

	d, ok = ParseAmount("  -10 ")
	assert.True(t, ok)
	assert.Equal(t, "-10", d.String())

	for _, bad := range []string{"", "abc", "12,5", "1e", "₹500"} {
		_, ok := ParseAmount(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "amount", Message: "must be numeric"},
		{Field: "startDate", Message: "must be YYYY-MM-DD"},
	}

	assert.Equal(t, "amount: must be numeric; startDate: must be YYYY-MM-DD", errs.Error())
	assert.Equal(t, map[string]string{
		"amount":    "must be numeric",
		"startDate": "must be YYYY-MM-DD",
	}, errs.ToMap())
}
