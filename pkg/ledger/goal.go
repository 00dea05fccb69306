package ledger

import (
	"time"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
)

// maxProjectionMonths caps projections. Savings rates that need longer
// than this report insufficient data.
const maxProjectionMonths = 12 * 1000

// Outcome is the result of projecting a goal.
type Outcome string

const (
	OutcomeReached          Outcome = "reached"
	OutcomeProjected        Outcome = "projected"
	OutcomeInsufficientData Outcome = "insufficient_data"
)

// Projection is a goal completion estimate. Date is set for OutcomeProjected only.
type Projection struct {
	Outcome Outcome     `json:"outcome"`
	Date    *types.Date `json:"date"`
	Months  int         `json:"months"` // Months from today until Date
}

// GoalProjection holds both estimates for one goal.
type GoalProjection struct {
	Goal         Goal       `json:"goal"`
	Optimistic   Projection `json:"optimistic"`
	Conservative Projection `json:"conservative"`
}

// ProjectionInputs are the figures every goal is projected from.
type ProjectionInputs struct {
	Balance             decimal.Decimal `json:"balance"`             // Balance up to today
	AverageMonthlyNet   decimal.Decimal `json:"averageMonthlyNet"`   // Over months with data
	RemainingBudget     decimal.Decimal `json:"remainingBudget"`     // Remaining across budgets active this month
	MonthsLeft          int             `json:"monthsLeft"`          // In the current year, at least 1
	ConservativeBalance decimal.Decimal `json:"conservativeBalance"` // Balance minus remaining budget
	ConservativeNet     decimal.Decimal `json:"conservativeNet"`     // Net minus remaining budget spread over MonthsLeft
}

// AverageMonthlyNet averages the net amount of all months that contain
// at least one transaction. Without transactions it is zero.
func AverageMonthlyNet(timeline []Transaction) decimal.Decimal {
	perMonth := make(map[string]decimal.Decimal)
	for _, t := range timeline {
		key := t.Date.Month().String()
		perMonth[key] = perMonth[key].Add(t.Amount)
	}

	if len(perMonth) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, net := range maps.Values(perMonth) {
		total = total.Add(net)
	}

	return total.Div(decimal.NewFromInt(int64(len(perMonth))))
}

// MonthsLeftInYear counts the months from today's month through December.
func MonthsLeftInYear(today types.Date) int {
	return max(13-int(time.Time(today).Month()), 1)
}

// NewProjectionInputs derives the projection figures from the timeline and
// the total remaining budget of today's month.
func NewProjectionInputs(timeline []Transaction, remainingBudget decimal.Decimal, today types.Date) ProjectionInputs {
	in := ProjectionInputs{
		Balance:           BalanceAt(timeline, today),
		AverageMonthlyNet: AverageMonthlyNet(timeline),
		RemainingBudget:   remainingBudget,
		MonthsLeft:        MonthsLeftInYear(today),
	}

	in.ConservativeBalance = in.Balance.Sub(remainingBudget)
	in.ConservativeNet = in.AverageMonthlyNet.Sub(remainingBudget.Div(decimal.NewFromInt(int64(in.MonthsLeft))))

	return in
}

// Project estimates when target is reached, starting at balance and
// growing by net per month.
func Project(target, balance, net decimal.Decimal, today types.Date) Projection {
	if !target.GreaterThan(balance) {
		return Projection{Outcome: OutcomeReached}
	}

	if !net.IsPositive() {
		return Projection{Outcome: OutcomeInsufficientData}
	}

	// Rounding first keeps division residue from adding a month
	months := target.Sub(balance).Div(net).Round(8).Ceil()
	if months.GreaterThan(decimal.NewFromInt(maxProjectionMonths)) {
		return Projection{Outcome: OutcomeInsufficientData}
	}

	n := int(months.IntPart())
	date := today.AddMonths(n)

	return Projection{Outcome: OutcomeProjected, Date: &date, Months: n}
}

// ProjectGoals projects every goal optimistically and conservatively.
func ProjectGoals(goals []Goal, in ProjectionInputs, today types.Date) []GoalProjection {
	projections := make([]GoalProjection, 0, len(goals))
	for _, g := range goals {
		projections = append(projections, GoalProjection{
			Goal:         g,
			Optimistic:   Project(g.Target, in.Balance, in.AverageMonthlyNet, today),
			Conservative: Project(g.Target, in.ConservativeBalance, in.ConservativeNet, today),
		})
	}
	return projections
}
