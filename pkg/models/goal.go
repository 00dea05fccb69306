package models

import (
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings target. Goals are shared by all profiles.
type Goal struct {
	DefaultModel
	Name   string
	Target decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Notes  string
}

func (g Goal) Self() string {
	return "Goal"
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = clean(g.Name)
	g.Notes = clean(g.Notes)

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.Target.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	return nil
}

func (g Goal) Ledger() ledger.Goal {
	return ledger.Goal{
		ID:     g.ID.String(),
		Name:   g.Name,
		Target: g.Target,
		Notes:  g.Notes,
	}
}
