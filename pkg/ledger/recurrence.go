package ledger

import (
	"fmt"

	"github.com/budget-calendar/backend/internal/types"
)

// InstanceID returns the identifier of the instance of the rule that
// fires on date. Expanding a rule again yields the same identifiers.
func InstanceID(ruleID string, date types.Date) string {
	return fmt.Sprintf("recurring-%s-%s", ruleID, date)
}

// UpperBound returns the last day a rule can fire on: its end date if set,
// otherwise the last day of today's year.
func UpperBound(rule Rule, today types.Date) types.Date {
	if !rule.End.IsZero() {
		return rule.End
	}
	return today.EndOfYear()
}

// Occurrences returns the dates in [rule.Start, until] on which the rule
// fires, in chronological order.
//
// A monthly rule whose day does not exist in a month fires on the last
// day of that month. Rules with missing or out of range parameters never
// fire.
func Occurrences(rule Rule, until types.Date) []types.Date {
	if rule.Start.IsZero() || until.Before(rule.Start) {
		return nil
	}

	switch rule.Frequency {
	case FrequencyMonthly:
		return monthlyOccurrences(rule, until)
	case FrequencyBiweekly:
		return biweeklyOccurrences(rule, until)
	default:
		return nil
	}
}

func monthlyOccurrences(rule Rule, until types.Date) []types.Date {
	if rule.DayOfMonth < 1 || rule.DayOfMonth > 31 {
		return nil
	}

	var dates []types.Date
	for month := rule.Start.Month(); !month.After(until.Month()); month = month.AddDate(0, 1) {
		day := min(rule.DayOfMonth, month.Days())
		date := month.FirstDay().AddDays(day - 1)

		if date.Before(rule.Start) || date.After(until) {
			continue
		}
		dates = append(dates, date)
	}

	return dates
}

func biweeklyOccurrences(rule Rule, until types.Date) []types.Date {
	if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
		return nil
	}

	offset := (int(rule.DayOfWeek) - int(rule.Start.Weekday()) + 7) % 7

	var dates []types.Date
	for date := rule.Start.AddDays(offset); !date.After(until); date = date.AddDays(14) {
		dates = append(dates, date)
	}

	return dates
}

// Expand materializes the instances of a rule up to its upper bound.
func Expand(rule Rule, today types.Date) []Transaction {
	dates := Occurrences(rule, UpperBound(rule, today))

	instances := make([]Transaction, 0, len(dates))
	for _, date := range dates {
		instances = append(instances, Transaction{
			ID:          InstanceID(rule.ID, date),
			Date:        date,
			Description: rule.Description,
			Amount:      rule.Amount,
			Category:    rule.Category,
			BudgetID:    rule.BudgetID,
			Recurring:   true,
		})
	}

	return instances
}
