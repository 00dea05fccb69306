package models

import (
	"time"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecurringTransaction is a rule that produces a transaction on a
// monthly or biweekly schedule.
type RecurringTransaction struct {
	DefaultModel
	ProfileID   uuid.UUID
	Profile     Profile `gorm:"constraint:OnDelete:CASCADE"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Frequency   ledger.Frequency
	DayOfMonth  int          // Monthly rules only
	DayOfWeek   time.Weekday // Biweekly rules only
	StartDate   types.Date
	EndDate     *types.Date // Defaults to the end of the current year
	Category    string
	BudgetID    *uuid.UUID
}

func (r RecurringTransaction) Self() string {
	return "Recurring Transaction"
}

func (r *RecurringTransaction) BeforeSave(_ *gorm.DB) error {
	r.Description = clean(r.Description)
	r.Category = clean(r.Category)

	if r.EndDate != nil && r.EndDate.IsZero() {
		r.EndDate = nil
	}

	if r.BudgetID != nil && *r.BudgetID == uuid.Nil {
		r.BudgetID = nil
	}

	return nil
}

// AfterSave rejects rules that can never produce a transaction.
func (r *RecurringTransaction) AfterSave(_ *gorm.DB) error {
	if !r.Frequency.Valid() {
		return ErrRecurringFrequencyInvalid
	}

	if r.Frequency == ledger.FrequencyMonthly && (r.DayOfMonth < 1 || r.DayOfMonth > 31) {
		return ErrRecurringDayOfMonth
	}

	if r.Frequency == ledger.FrequencyBiweekly && (r.DayOfWeek < time.Sunday || r.DayOfWeek > time.Saturday) {
		return ErrRecurringDayOfWeek
	}

	if r.StartDate.IsZero() {
		return ErrRecurringStartEmpty
	}

	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return ErrRecurringEndBeforeStart
	}

	return nil
}

// Ledger returns the engine representation of the rule.
func (r RecurringTransaction) Ledger() ledger.Rule {
	rule := ledger.Rule{
		ID:          r.ID.String(),
		Description: r.Description,
		Amount:      r.Amount,
		Frequency:   r.Frequency,
		DayOfMonth:  r.DayOfMonth,
		DayOfWeek:   r.DayOfWeek,
		Start:       r.StartDate,
		Category:    r.Category,
		BudgetID:    idString(r.BudgetID),
	}

	if r.EndDate != nil {
		rule.End = *r.EndDate
	}

	return rule
}
