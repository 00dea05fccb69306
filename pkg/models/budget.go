package models

import (
	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a monthly allowance for a category.
//
// Month, EndMonth and Recurring are the stored shape of the schedule,
// see ledger.RecurrenceOf for how they are interpreted.
type Budget struct {
	DefaultModel
	ProfileID  uuid.UUID
	Profile    Profile `gorm:"constraint:OnDelete:CASCADE"`
	CategoryID uuid.UUID
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Month      *types.Month
	EndMonth   *types.Month
	Recurring  bool
}

func (b Budget) Self() string {
	return "Budget"
}

// BeforeSave normalizes the schedule. Recurring budgets never end.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Month != nil && b.Month.IsZero() {
		b.Month = nil
	}

	if b.EndMonth != nil && (b.EndMonth.IsZero() || b.Recurring) {
		b.EndMonth = nil
	}

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.EndMonth == nil {
		return nil
	}

	if b.Month == nil {
		return ErrBudgetMonthMissing
	}

	if b.EndMonth.Before(*b.Month) {
		return ErrBudgetEndBeforeStart
	}

	return nil
}

// Ledger returns the engine representation of the budget.
func (b Budget) Ledger() ledger.Budget {
	categoryID := ""
	if b.CategoryID != uuid.Nil {
		categoryID = b.CategoryID.String()
	}

	return ledger.Budget{
		ID:         b.ID.String(),
		CategoryID: categoryID,
		Amount:     b.Amount,
		Recurrence: ledger.RecurrenceOf(b.Month, b.EndMonth, b.Recurring),
	}
}
