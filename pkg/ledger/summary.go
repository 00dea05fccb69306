package ledger

import (
	"strings"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Uncategorized labels expenses without a category.
const Uncategorized = "Uncategorized"

// MonthSummary contrasts what happened in a month with what was budgeted.
type MonthSummary struct {
	Month               types.Month     `json:"month"`
	Income              decimal.Decimal `json:"income"`
	Expense             decimal.Decimal `json:"expense"` // Negative or zero
	Budgeted            decimal.Decimal `json:"budgeted"`
	BalanceBeforeBudget decimal.Decimal `json:"balanceBeforeBudget"`
	BalanceAfterBudget  decimal.Decimal `json:"balanceAfterBudget"`
}

// Summarize builds the summary of month from the timeline and the budgets.
func Summarize(timeline []Transaction, budgets []Budget, month types.Month) MonthSummary {
	s := MonthSummary{
		Month:    month,
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		Budgeted: decimal.Zero,
	}

	for _, t := range InMonth(timeline, month) {
		if t.Amount.IsPositive() {
			s.Income = s.Income.Add(t.Amount)
		} else if t.Amount.IsNegative() {
			s.Expense = s.Expense.Add(t.Amount)
		}
	}

	for _, b := range ActiveBudgets(budgets, month) {
		s.Budgeted = s.Budgeted.Add(b.Amount)
	}

	s.BalanceBeforeBudget = s.Income.Add(s.Expense)
	s.BalanceAfterBudget = s.BalanceBeforeBudget.Sub(s.Budgeted)

	return s
}

// CategorySpending is the total of all expenses in one category.
type CategorySpending struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"` // Positive
}

// SpendingByCategory totals the expenses dated in [from, to] per category.
// Zero bounds are open. The result is ordered by amount, largest first,
// and by category name for equal amounts.
func SpendingByCategory(timeline []Transaction, from, to types.Date) []CategorySpending {
	totals := make(map[string]decimal.Decimal)
	for _, t := range Between(timeline, from, to) {
		if !t.Amount.IsNegative() {
			continue
		}

		category := t.Category
		if category == "" {
			category = Uncategorized
		}
		totals[category] = totals[category].Add(t.Amount.Abs())
	}

	categories := maps.Keys(totals)
	slices.SortFunc(categories, func(a, b string) int {
		if c := totals[b].Cmp(totals[a]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	spending := make([]CategorySpending, 0, len(categories))
	for _, category := range categories {
		spending = append(spending, CategorySpending{Category: category, Amount: totals[category]})
	}

	return spending
}
