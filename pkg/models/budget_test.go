package models_test

import (
	"testing"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetAfterSave() {
	tests := []struct {
		name     string
		month    *types.Month
		endMonth *types.Month
		err      error
	}{
		{"No schedule", nil, nil, nil},
		{"Single month", month("2024-02"), nil, nil},
		{"Range", month("2024-02"), month("2024-04"), nil},
		{"Range of one month", month("2024-02"), month("2024-02"), nil},
		{"End without start", nil, month("2024-04"), models.ErrBudgetMonthMissing},
		{"End before start", month("2024-04"), month("2024-02"), models.ErrBudgetEndBeforeStart},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			b := models.Budget{Month: tt.month, EndMonth: tt.endMonth}
			suite.Assert().Equal(tt.err, b.AfterSave(&gorm.DB{}))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetRecurringDropsEndMonth() {
	profile := suite.createTestProfile("Household")
	budget := suite.createTestBudget(models.Budget{
		ProfileID: profile.ID,
		Amount:    amount("100"),
		Month:     month("2024-03"),
		EndMonth:  month("2024-01"),
		Recurring: true,
	})

	suite.Assert().Nil(budget.EndMonth)
	suite.Assert().Equal(ledger.Recurring{From: *month("2024-03")}, budget.Ledger().Recurrence)
}

func (suite *TestSuiteStandard) TestBudgetLedger() {
	profile := suite.createTestProfile("Household")
	budget := suite.createTestBudget(models.Budget{ProfileID: profile.ID, Amount: amount("100"), Month: month("2024-03")})

	l := budget.Ledger()
	suite.Assert().Equal(budget.ID.String(), l.ID)
	suite.Assert().Equal("", l.CategoryID)
	suite.Assert().Equal(ledger.SingleMonth{Month: *month("2024-03")}, l.Recurrence)
}
