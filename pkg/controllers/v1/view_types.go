package v1

import (
	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/shopspring/decimal"
)

type TimelineResponse struct {
	Data  []ledger.Transaction `json:"data"`                                                          // Transactions and recurring instances, ordered by date
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// Day is everything that happens on one calendar day.
type Day struct {
	Date         types.Date           `json:"date" example:"2024-03-15"` // The day
	Transactions []ledger.Transaction `json:"transactions"`              // Transactions and recurring instances on the day
	Net          decimal.Decimal      `json:"net" example:"-104.50"`     // Sum of the amounts on the day
	Balance      decimal.Decimal      `json:"balance" example:"2315.50"` // Balance at the end of the day
}

type DayResponse struct {
	Data  *Day    `json:"data"`                                                                        // Data for the day
	Error *string `json:"error" example:"invalid date: \"2024-13-01\" is not formatted as YYYY-MM-DD"` // The error, if any occurred
}

// BalanceOverview contains the cumulative balances at all horizons.
type BalanceOverview struct {
	Today               types.Date      `json:"today" example:"2024-03-15"`            // The date used as today
	Horizons            ledger.Horizon  `json:"horizons"`                              // The cutoff dates
	Balances            ledger.Balances `json:"balances"`                              // Balance up to each cutoff date
	ProjectedEndOfMonth decimal.Decimal `json:"projectedEndOfMonth" example:"1804.20"` // Balance on the last day of the current month
}

type BalancesResponse struct {
	Data  *BalanceOverview `json:"data"`                                                          // The balances
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type DailyBalancesResponse struct {
	Data  []ledger.DayBalance `json:"data"`                                                          // One entry per day of the month
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// BudgetConsumption is the consumption of all budgets active in a month.
type BudgetConsumption struct {
	ledger.Consumption
	TotalBudgeted  decimal.Decimal `json:"totalBudgeted" example:"400"` // Sum of the amounts of all active budgets
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"89"` // Sum of the remaining amounts. Overspent budgets reduce it.
}

type BudgetConsumptionResponse struct {
	Data  *BudgetConsumption `json:"data"`                                                          // The consumption
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MonthSummaryResponse struct {
	Data  *ledger.MonthSummary `json:"data"`                                                          // The summary
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SpendingResponse struct {
	Data  []ledger.CategorySpending `json:"data"`                                                          // Expenses per category, largest first
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// GoalProjections contains the projections of all goals and the
// figures they are based on.
type GoalProjections struct {
	Inputs ledger.ProjectionInputs `json:"inputs"` // Figures the projections are based on
	Goals  []ledger.GoalProjection `json:"goals"`  // One projection per goal
}

type GoalProjectionsResponse struct {
	Data  *GoalProjections `json:"data"`                                                          // The projections
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
