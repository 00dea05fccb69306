package ledger

import (
	"github.com/budget-calendar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Horizon is a cutoff date for cumulative balances.
type Horizon struct {
	Today types.Date `json:"today"`
	Week  types.Date `json:"week"`  // Sunday closing the ISO week
	Month types.Date `json:"month"` // Last day of the month
	Year  types.Date `json:"year"`  // December 31st
}

// Horizons returns the horizons relative to today.
func Horizons(today types.Date) Horizon {
	return Horizon{
		Today: today,
		Week:  today.EndOfISOWeek(),
		Month: today.Month().LastDay(),
		Year:  today.EndOfYear(),
	}
}

// Balances are cumulative sums up to each horizon. They are not totals of
// the isolated period: everything since the first transaction counts.
type Balances struct {
	Today decimal.Decimal `json:"today"`
	Week  decimal.Decimal `json:"week"`
	Month decimal.Decimal `json:"month"`
	Year  decimal.Decimal `json:"year"`
}

// BalanceAt sums the amounts of all transactions dated on or before horizon.
func BalanceAt(transactions []Transaction, horizon types.Date) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if !t.Date.After(horizon) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// ComputeBalances returns the balances at all horizons relative to today.
func ComputeBalances(transactions []Transaction, today types.Date) Balances {
	h := Horizons(today)

	return Balances{
		Today: BalanceAt(transactions, h.Today),
		Week:  BalanceAt(transactions, h.Week),
		Month: BalanceAt(transactions, h.Month),
		Year:  BalanceAt(transactions, h.Year),
	}
}

// ProjectedEndOfMonth is the balance on the last day of today's month.
func ProjectedEndOfMonth(transactions []Transaction, today types.Date) decimal.Decimal {
	return BalanceAt(transactions, today.Month().LastDay())
}

// DayBalance is the running balance around one day.
type DayBalance struct {
	Date         types.Date      `json:"date"`
	Begin        decimal.Decimal `json:"begin"` // Before the day's transactions apply
	End          decimal.Decimal `json:"end"`   // After the day's transactions apply
	Net          decimal.Decimal `json:"net"`
	Transactions int             `json:"transactions"`
}

// DailyBalances returns one entry per day of month.
//
// Everything dated before the month opens the running total, so a day's
// End always equals BalanceAt for that day.
func DailyBalances(transactions []Transaction, month types.Month) []DayBalance {
	start, end := month.FirstDay(), month.LastDay()
	running := BalanceAt(transactions, start.AddDays(-1))

	perDay := make(map[string][]Transaction)
	for _, t := range SortByDate(Between(transactions, start, end)) {
		perDay[t.Date.String()] = append(perDay[t.Date.String()], t)
	}

	days := make([]DayBalance, 0, month.Days())
	for day := start; !day.After(end); day = day.AddDays(1) {
		applied := perDay[day.String()]
		net := sum(applied)

		days = append(days, DayBalance{
			Date:         day,
			Begin:        running,
			End:          running.Add(net),
			Net:          net,
			Transactions: len(applied),
		})

		running = running.Add(net)
	}

	return days
}
