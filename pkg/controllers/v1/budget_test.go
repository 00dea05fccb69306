package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-calendar/backend/pkg/controllers/v1"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/budget-calendar/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	createTestProfile(suite.T(), "")
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})

	// Recurring budgets never end
	budget := createTestBudget(suite.T(), v1.BudgetEditable{
		CategoryID: category.Data.ID,
		Amount:     amount("300"),
		Month:      month("2024-04"),
		EndMonth:   month("2024-06"),
		Recurring:  true,
	})
	suite.Assert().Nil(budget.Data.EndMonth)
	suite.Assert().Equal("2024-04", budget.Data.Month.String())
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), budget.Data.Links.Category)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	createTestProfile(suite.T(), "")
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name string
		body string
		err  string
	}{
		{"End without start", fmt.Sprintf(`[{"categoryId": "%s", "endMonth": "2024-06"}]`, category.Data.ID), models.ErrBudgetMonthMissing.Error()},
		{"End before start", fmt.Sprintf(`[{"categoryId": "%s", "month": "2024-06", "endMonth": "2024-05"}]`, category.Data.ID), models.ErrBudgetEndBeforeStart.Error()},
		{"Nonexistent profile", fmt.Sprintf(`[{"categoryId": "%s", "month": "2024-06", "profileId": "%s"}]`, category.Data.ID, uuid.New()), models.ErrReferenceMissing.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.BudgetCreateResponse
			create(t, "budgets", tt.body, &response, http.StatusBadRequest)
			assert.Equal(t, tt.err, *response.Data[0].Error)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", `[{"month": "2024-13"}]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestBudgetsGetMonth verifies that the month filter returns exactly the
// budgets that apply in a month.
func (suite *TestSuiteStandard) TestBudgetsGetMonth() {
	createTestProfile(suite.T(), "")
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	always := createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Amount: amount("1"), Recurring: true})
	fromMay := createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Amount: amount("2"), Recurring: true, Month: month("2024-05")})
	aprilToJune := createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Amount: amount("3"), Month: month("2024-04"), EndMonth: month("2024-06")})
	april := createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Amount: amount("4"), Month: month("2024-04")})

	tests := []struct {
		query    string
		expected []uuid.UUID
	}{
		{"month=2024-03", []uuid.UUID{always.Data.ID}},
		{"month=2024-04", []uuid.UUID{always.Data.ID, aprilToJune.Data.ID, april.Data.ID}},
		{"month=2024-05", []uuid.UUID{always.Data.ID, aprilToJune.Data.ID, fromMay.Data.ID}},
		{"month=2024-07", []uuid.UUID{always.Data.ID, fromMay.Data.ID}},
		{"recurring=true", []uuid.UUID{always.Data.ID, fromMay.Data.ID}},
		{"recurring=false", []uuid.UUID{aprilToJune.Data.ID, april.Data.ID}},
		{fmt.Sprintf("category=%s", category.Data.ID), []uuid.UUID{always.Data.ID, aprilToJune.Data.ID, april.Data.ID, fromMay.Data.ID}},
		{fmt.Sprintf("category=%s", uuid.New()), []uuid.UUID{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)

			ids := make([]uuid.UUID, 0, len(response.Data))
			for _, b := range response.Data {
				ids = append(ids, b.ID)
			}
			assert.ElementsMatch(t, tt.expected, ids)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=April", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?category=Food", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	createTestProfile(suite.T(), "")
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: amount("100"), Month: month("2024-04")})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, `{"endMonth": "2024-08", "amount": "120"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("2024-04", response.Data.Month.String())
	suite.Assert().Equal("2024-08", response.Data.EndMonth.String())
	suite.Assert().True(amount("120").Equal(response.Data.Amount))
	suite.Assert().Equal(budget.Data.CategoryID, response.Data.CategoryID)

	r = test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, `{"endMonth": "2024-01"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetsReplace() {
	createTestProfile(suite.T(), "")
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	old := createTestBudget(suite.T(), v1.BudgetEditable{CategoryID: category.Data.ID, Amount: amount("1")})

	items := []ledger.Budget{
		{ID: "b1", CategoryID: category.Data.ID.String(), Amount: amount("300"), Recurrence: ledger.Recurring{}},
		{ID: "b2", CategoryID: category.Data.ID.String(), Amount: amount("50"), Recurrence: ledger.SingleMonth{Month: *month("2024-04")}},
	}

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/budgets", items)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)

	r = test.Request(suite.T(), http.MethodGet, old.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	createTestProfile(suite.T(), "")
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: amount("1")})

	r := test.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The category is kept
	r = test.Request(suite.T(), http.MethodGet, budget.Data.Links.Category, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
