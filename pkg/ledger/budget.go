package ledger

import (
	"encoding/json"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Recurrence decides for which months a budget applies. It is one of
// SingleMonth, Recurring or Range.
type Recurrence interface {
	ActiveIn(month types.Month) bool
	shape() (month, endMonth *types.Month, recurring bool)
}

// SingleMonth applies to exactly one month.
type SingleMonth struct {
	Month types.Month
}

func (r SingleMonth) ActiveIn(month types.Month) bool {
	return r.Month.Equal(month)
}

func (r SingleMonth) shape() (*types.Month, *types.Month, bool) {
	return &r.Month, nil, false
}

// Recurring applies to every month from From on. A zero From applies to
// all months.
type Recurring struct {
	From types.Month
}

func (r Recurring) ActiveIn(month types.Month) bool {
	return r.From.IsZero() || !r.From.After(month)
}

func (r Recurring) shape() (*types.Month, *types.Month, bool) {
	if r.From.IsZero() {
		return nil, nil, true
	}
	return &r.From, nil, true
}

// Range applies to the months from Start to End, both inclusive. The start
// month always applies, even when End precedes it.
type Range struct {
	Start types.Month
	End   types.Month
}

func (r Range) ActiveIn(month types.Month) bool {
	return month.Equal(r.Start) || (!month.Before(r.Start) && !month.After(r.End))
}

func (r Range) shape() (*types.Month, *types.Month, bool) {
	return &r.Start, &r.End, false
}

// RecurrenceOf converts the stored representation of a budget schedule.
//
// A recurring budget ignores endMonth. A month together with an endMonth
// is a range, a month alone is a single month. Without any of them the
// result is nil and the budget is never active.
func RecurrenceOf(month, endMonth *types.Month, recurring bool) Recurrence {
	switch {
	case recurring:
		if month == nil {
			return Recurring{}
		}
		return Recurring{From: *month}
	case month != nil && endMonth != nil:
		return Range{Start: *month, End: *endMonth}
	case month != nil:
		return SingleMonth{Month: *month}
	default:
		return nil
	}
}

// Budget is a monthly spending allowance for a category.
type Budget struct {
	ID         string
	CategoryID string
	Amount     decimal.Decimal
	Recurrence Recurrence
}

// ActiveIn reports whether the budget applies to month.
func (b Budget) ActiveIn(month types.Month) bool {
	return b.Recurrence != nil && b.Recurrence.ActiveIn(month)
}

// Shape returns the stored representation of the budget's schedule.
func (b Budget) Shape() (month, endMonth *types.Month, recurring bool) {
	if b.Recurrence == nil {
		return nil, nil, false
	}
	return b.Recurrence.shape()
}

type budgetJSON struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Month      *types.Month    `json:"month,omitempty"`
	EndMonth   *types.Month    `json:"endMonth,omitempty"`
	Recurring  bool            `json:"recurring,omitempty"`
}

// MarshalJSON encodes the budget in its stored representation.
func (b Budget) MarshalJSON() ([]byte, error) {
	month, endMonth, recurring := b.Shape()

	return json.Marshal(budgetJSON{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Month:      month,
		EndMonth:   endMonth,
		Recurring:  recurring,
	})
}

// UnmarshalJSON decodes the stored representation of a budget.
func (b *Budget) UnmarshalJSON(data []byte) error {
	var raw budgetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Budget{
		ID:         raw.ID,
		CategoryID: raw.CategoryID,
		Amount:     raw.Amount,
		Recurrence: RecurrenceOf(raw.Month, raw.EndMonth, raw.Recurring),
	}
	return nil
}

// ActiveBudgets returns the budgets that apply to month.
func ActiveBudgets(budgets []Budget, month types.Month) []Budget {
	var active []Budget
	for _, b := range budgets {
		if b.ActiveIn(month) {
			active = append(active, b)
		}
	}
	return active
}

// BudgetStatus is the consumption of one budget in one month.
type BudgetStatus struct {
	Budget    Budget          `json:"budget"`
	Category  string          `json:"category"` // Name of the linked category, empty if it does not exist
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Over      bool            `json:"over"`
}

// Consumption is the consumption of all budgets active in a month.
type Consumption struct {
	Month    types.Month    `json:"month"`
	Statuses []BudgetStatus `json:"budgets"`
}

// TotalRemaining sums amount minus spent over the active budgets. Overspent
// budgets reduce the total.
func (c Consumption) TotalRemaining() decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Statuses {
		total = total.Add(s.Remaining)
	}
	return total
}

// TotalBudgeted sums the amounts of the active budgets.
func (c Consumption) TotalBudgeted() decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Statuses {
		total = total.Add(s.Budget.Amount)
	}
	return total
}

// Consume computes the consumption of the budgets in c that are active in
// month, using the given timeline.
//
// An expense counts towards a budget when it references the budget or
// when its category equals the name of the budget's category.
func Consume(c Collections, timeline []Transaction, month types.Month) Consumption {
	names := c.categoryNames()
	expenses := InMonth(timeline, month)

	result := Consumption{Month: month, Statuses: []BudgetStatus{}}
	for _, b := range ActiveBudgets(c.Budgets, month) {
		name := names[b.CategoryID]

		spent := decimal.Zero
		for _, t := range expenses {
			if !t.Amount.IsNegative() {
				continue
			}

			if (b.ID != "" && t.BudgetID == b.ID) || (name != "" && t.Category == name) {
				spent = spent.Add(t.Amount.Abs())
			}
		}

		remaining := b.Amount.Sub(spent)
		result.Statuses = append(result.Statuses, BudgetStatus{
			Budget:    b,
			Category:  name,
			Spent:     spent,
			Remaining: remaining,
			Over:      remaining.IsNegative(),
		})
	}

	return result
}
