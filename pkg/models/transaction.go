package models

import (
	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a one-off income or expense of a profile.
type Transaction struct {
	DefaultModel
	ProfileID   uuid.UUID
	Profile     Profile `gorm:"constraint:OnDelete:CASCADE"`
	Date        types.Date
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Positive for income, negative for expenses
	Category    string          // Free text category label
	BudgetID    *uuid.UUID      // Budget the expense is explicitly linked to
}

func (t Transaction) Self() string {
	return "Transaction"
}

// BeforeSave trims whitespace and normalizes the category label.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = clean(t.Description)
	t.Category = clean(t.Category)

	if t.BudgetID != nil && *t.BudgetID == uuid.Nil {
		t.BudgetID = nil
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		return ErrTransactionDateEmpty
	}
	return nil
}

// Ledger returns the engine representation of the transaction.
func (t Transaction) Ledger() ledger.Transaction {
	return ledger.Transaction{
		ID:          t.ID.String(),
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
		BudgetID:    idString(t.BudgetID),
	}
}

// idString returns the string form of an optional ID, "" for none.
func idString(id *uuid.UUID) string {
	if id == nil || *id == uuid.Nil {
		return ""
	}
	return id.String()
}
