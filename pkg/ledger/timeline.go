package ledger

import (
	"github.com/budget-calendar/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Merge concatenates the stored transactions with the instances of every
// rule. Stored transactions come first, instances follow rule by rule.
// The result is not sorted.
func Merge(transactions []Transaction, rules []Rule, today types.Date) []Transaction {
	merged := make([]Transaction, 0, len(transactions))
	merged = append(merged, transactions...)

	for _, rule := range rules {
		merged = append(merged, Expand(rule, today)...)
	}

	return merged
}

// SortByDate returns a copy of the transactions ordered by date.
// Transactions on the same day keep their relative order.
func SortByDate(transactions []Transaction) []Transaction {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)

	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case b.Date.Before(a.Date):
			return 1
		}
		return 0
	})

	return sorted
}

// Between returns the transactions dated in [from, to]. A zero bound is open.
func Between(transactions []Transaction, from, to types.Date) []Transaction {
	var result []Transaction
	for _, t := range transactions {
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		result = append(result, t)
	}
	return result
}

// OnDay returns the transactions dated on day.
func OnDay(transactions []Transaction, day types.Date) []Transaction {
	return Between(transactions, day, day)
}

// InMonth returns the transactions dated in month.
func InMonth(transactions []Transaction, month types.Month) []Transaction {
	return Between(transactions, month.FirstDay(), month.LastDay())
}

// DayNet sums the amounts per day, keyed by YYYY-MM-DD. Days without
// transactions are absent.
func DayNet(transactions []Transaction) map[string]decimal.Decimal {
	net := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		key := t.Date.String()
		net[key] = net[key].Add(t.Amount)
	}
	return net
}
