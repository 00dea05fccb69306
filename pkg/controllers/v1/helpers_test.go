package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/budget-calendar/backend/internal/types"
	v1 "github.com/budget-calendar/backend/pkg/controllers/v1"
	"github.com/budget-calendar/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(s string) types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func month(s string) *types.Month {
	m, err := types.ParseMonth(s)
	if err != nil {
		panic(err)
	}
	return &m
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// create posts a list with one resource to the collection endpoint and
// decodes the response into target.
func create(t *testing.T, path string, body any, target any, expectedStatus ...int) int {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/%s", path), body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)
	test.DecodeResponse(t, &r, target)

	return r.Code
}

func createTestProfile(t *testing.T, name string, expectedStatus ...int) v1.ProfileResponse {
	if name == "" {
		name = uuid.NewString()
	}

	var response v1.ProfileCreateResponse
	if create(t, "profiles", []map[string]string{{"name": name}}, &response, expectedStatus...) == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ProfileResponse{}
}

func createTestTransaction(t *testing.T, c v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if c.Date.IsZero() {
		c.Date = date("2024-03-15")
	}

	var response v1.TransactionCreateResponse
	if create(t, "transactions", []v1.TransactionEditable{c}, &response, expectedStatus...) == http.StatusCreated {
		return response.Data[0]
	}

	return v1.TransactionResponse{}
}

func createTestRecurringTransaction(t *testing.T, c v1.RecurringTransactionEditable, expectedStatus ...int) v1.RecurringTransactionResponse {
	if c.Frequency == "" {
		c.Frequency = "monthly"
		c.DayOfMonth = 1
	}

	if c.StartDate.IsZero() {
		c.StartDate = date("2024-01-01")
	}

	var response v1.RecurringTransactionCreateResponse
	if create(t, "recurring-transactions", []v1.RecurringTransactionEditable{c}, &response, expectedStatus...) == http.StatusCreated {
		return response.Data[0]
	}

	return v1.RecurringTransactionResponse{}
}

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	var response v1.CategoryCreateResponse
	if create(t, "categories", []v1.CategoryEditable{c}, &response, expectedStatus...) == http.StatusCreated {
		return response.Data[0]
	}

	return v1.CategoryResponse{}
}

func createTestBudget(t *testing.T, c v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if c.CategoryID == uuid.Nil {
		c.CategoryID = createTestCategory(t, v1.CategoryEditable{ProfileID: c.ProfileID}).Data.ID
	}

	var response v1.BudgetCreateResponse
	if create(t, "budgets", []v1.BudgetEditable{c}, &response, expectedStatus...) == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BudgetResponse{}
}

func createTestMatchRule(t *testing.T, c v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	if c.Match == "" {
		c.Match = "*"
	}

	if c.Category == "" {
		c.Category = "Misc"
	}

	var response v1.MatchRuleCreateResponse
	if create(t, "match-rules", []v1.MatchRuleEditable{c}, &response, expectedStatus...) == http.StatusCreated {
		return response.Data[0]
	}

	return v1.MatchRuleResponse{}
}

func createTestGoal(t *testing.T, c v1.GoalEditable, expectedStatus ...int) v1.GoalResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if c.Target.IsZero() {
		c.Target = amount("100")
	}

	var response v1.GoalCreateResponse
	if create(t, "goals", []v1.GoalEditable{c}, &response, expectedStatus...) == http.StatusCreated {
		return response.Data[0]
	}

	return v1.GoalResponse{}
}
