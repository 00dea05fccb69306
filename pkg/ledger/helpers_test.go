package ledger_test

import (
	"testing"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// date parses a YYYY-MM-DD string and panics on failure.
func date(s string) types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// month parses a YYYY-MM string and panics on failure.
func month(s string) types.Month {
	m, err := types.ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return m
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func tx(id, day, value, category string) ledger.Transaction {
	return ledger.Transaction{
		ID:       id,
		Date:     date(day),
		Amount:   amount(value),
		Category: category,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, amount(expected).Equal(actual), "expected %s, got %s", expected, actual)
}
