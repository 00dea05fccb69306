// Package ledger derives the budget calendar views from raw records.
//
// Every function in this package is pure. Callers pass the collections
// they want evaluated together with the date that counts as "today";
// nothing is read from storage or from the wall clock.
package ledger

import (
	"time"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Transaction is a dated, signed amount. Positive amounts are income,
// negative amounts are expenses.
type Transaction struct {
	ID          string          `json:"id"`
	Date        types.Date      `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	BudgetID    string          `json:"budgetId,omitempty"`
	Recurring   bool            `json:"recurring,omitempty"` // Materialized from a Rule, never stored
}

// Frequency is the kind of schedule a Rule fires on.
type Frequency string

const (
	FrequencyMonthly  Frequency = "monthly"
	FrequencyBiweekly Frequency = "biweekly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyMonthly || f == FrequencyBiweekly
}

// Rule is a template for a repeating transaction.
type Rule struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   Frequency       `json:"type"`
	DayOfMonth  int             `json:"dayOfMonth,omitempty"` // 1-31, monthly rules only
	DayOfWeek   time.Weekday    `json:"dayOfWeek"`            // 0 (Sunday) to 6, biweekly rules only
	Start       types.Date      `json:"startDate"`
	End         types.Date      `json:"endDate"` // Zero means "end of the current year"
	Category    string          `json:"category,omitempty"`
	BudgetID    string          `json:"budgetId,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Goal struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
	Notes  string          `json:"notes,omitempty"`
}

// Collections are the records owned by one profile.
type Collections struct {
	Transactions []Transaction `json:"transactions"`
	Rules        []Rule        `json:"recurrings"`
	Categories   []Category    `json:"categories"`
	Budgets      []Budget      `json:"budgets"`
}

// categoryNames maps category IDs to names.
func (c Collections) categoryNames() map[string]string {
	names := make(map[string]string, len(c.Categories))
	for _, category := range c.Categories {
		names[category.ID] = category.Name
	}
	return names
}

// sum adds up the amounts of all transactions.
func sum(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total
}
