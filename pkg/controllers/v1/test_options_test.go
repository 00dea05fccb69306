package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-calendar/backend/pkg/controllers/v1"
	"github.com/budget-calendar/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestOptionsCollections verifies the allow header for all endpoints
// that do not address a single resource.
func (suite *TestSuiteStandard) TestOptionsCollections() {
	tests := []struct {
		path  string
		allow string
	}{
		{"", "OPTIONS, GET, DELETE"},
		{"/profiles", "OPTIONS, GET, POST"},
		{"/active-profile", "OPTIONS, GET, PUT"},
		{"/transactions", "OPTIONS, GET, POST, PUT"},
		{"/recurring-transactions", "OPTIONS, GET, POST, PUT"},
		{"/categories", "OPTIONS, GET, POST, PUT"},
		{"/budgets", "OPTIONS, GET, POST, PUT"},
		{"/match-rules", "OPTIONS, GET, POST, PUT"},
		{"/goals", "OPTIONS, GET, POST"},
		{"/timeline", "OPTIONS, GET"},
		{"/days/2024-03-15", "OPTIONS, GET"},
		{"/balances", "OPTIONS, GET"},
		{"/months/2024-03/days", "OPTIONS, GET"},
		{"/months/2024-03/budgets", "OPTIONS, GET"},
		{"/months/2024-03/summary", "OPTIONS, GET"},
		{"/spending", "OPTIONS, GET"},
		{"/goal-projections", "OPTIONS, GET"},
		{"/export", "OPTIONS, GET"},
		{"/import", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestOptionsDetail verifies that the allow header is only sent for
// resources that exist.
func (suite *TestSuiteStandard) TestOptionsDetail() {
	profile := createTestProfile(suite.T(), "")

	resources := map[string]uuid.UUID{
		"profiles":               profile.Data.ID,
		"transactions":           createTestTransaction(suite.T(), v1.TransactionEditable{}).Data.ID,
		"recurring-transactions": createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{}).Data.ID,
		"categories":             createTestCategory(suite.T(), v1.CategoryEditable{}).Data.ID,
		"budgets":                createTestBudget(suite.T(), v1.BudgetEditable{Amount: amount("1")}).Data.ID,
		"match-rules":            createTestMatchRule(suite.T(), v1.MatchRuleEditable{}).Data.ID,
		"goals":                  createTestGoal(suite.T(), v1.GoalEditable{}).Data.ID,
	}

	for collection, id := range resources {
		suite.T().Run(collection, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/%s/%s", collection, id), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

			r = test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/%s/%s", collection, uuid.New()), "")
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)

			r = test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/%s/NotParseableAsUUID", collection), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
