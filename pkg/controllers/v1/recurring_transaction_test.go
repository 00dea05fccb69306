package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/budget-calendar/backend/pkg/controllers/v1"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/budget-calendar/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRecurringTransactionsCreate() {
	createTestProfile(suite.T(), "")

	end := date("2024-12-31")
	monthly := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		Description: " Rent ",
		Amount:      amount("-900"),
		Frequency:   ledger.FrequencyMonthly,
		DayOfMonth:  31,
		StartDate:   date("2024-01-01"),
		EndDate:     &end,
	})
	suite.Assert().Equal("Rent", monthly.Data.Description)
	suite.Assert().Equal(31, monthly.Data.DayOfMonth)
	suite.Assert().Equal(end, *monthly.Data.EndDate)

	biweekly := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{
		Description: "Pay day",
		Amount:      amount("1400"),
		Frequency:   ledger.FrequencyBiweekly,
		DayOfWeek:   time.Friday,
		StartDate:   date("2024-01-05"),
	})
	suite.Assert().Equal(time.Friday, biweekly.Data.DayOfWeek)
	suite.Assert().Nil(biweekly.Data.EndDate)
}

// TestRecurringTransactionsCreateInvalid verifies that rules that can never
// produce a transaction are rejected.
func (suite *TestSuiteStandard) TestRecurringTransactionsCreateInvalid() {
	createTestProfile(suite.T(), "")

	tests := []struct {
		name string
		body string
		err  error
	}{
		{"Unknown frequency", `[{"type": "weekly", "startDate": "2024-01-01"}]`, models.ErrRecurringFrequencyInvalid},
		{"Missing frequency", `[{"startDate": "2024-01-01"}]`, models.ErrRecurringFrequencyInvalid},
		{"Day of month 0", `[{"type": "monthly", "dayOfMonth": 0, "startDate": "2024-01-01"}]`, models.ErrRecurringDayOfMonth},
		{"Day of month 32", `[{"type": "monthly", "dayOfMonth": 32, "startDate": "2024-01-01"}]`, models.ErrRecurringDayOfMonth},
		{"Day of week 7", `[{"type": "biweekly", "dayOfWeek": 7, "startDate": "2024-01-01"}]`, models.ErrRecurringDayOfWeek},
		{"Day of week -1", `[{"type": "biweekly", "dayOfWeek": -1, "startDate": "2024-01-01"}]`, models.ErrRecurringDayOfWeek},
		{"Missing start date", `[{"type": "monthly", "dayOfMonth": 1}]`, models.ErrRecurringStartEmpty},
		{"End before start", `[{"type": "monthly", "dayOfMonth": 1, "startDate": "2024-02-01", "endDate": "2024-01-31"}]`, models.ErrRecurringEndBeforeStart},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.RecurringTransactionCreateResponse
			create(t, "recurring-transactions", tt.body, &response, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringTransactionsGetFilter() {
	createTestProfile(suite.T(), "")
	createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Frequency: ledger.FrequencyMonthly, DayOfMonth: 1, Category: "Housing"})
	createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Frequency: ledger.FrequencyBiweekly, DayOfWeek: time.Friday, Category: "Income"})
	createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Frequency: ledger.FrequencyMonthly, DayOfMonth: 15})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Monthly", "type=monthly", 2},
		{"Biweekly", "type=biweekly", 1},
		{"Category", "category=Housing", 1},
		{"No category", "category=", 1},
		{"Limit", "limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/recurring-transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.RecurringTransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestRecurringTransactionsUpdate() {
	createTestProfile(suite.T(), "")
	rule := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Description: "Gym", Amount: amount("-30")})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{"type": "biweekly", "dayOfWeek": 1}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringTransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(ledger.FrequencyBiweekly, response.Data.Frequency)
	suite.Assert().Equal(time.Monday, response.Data.DayOfWeek)
	suite.Assert().Equal("Gym", response.Data.Description)

	// The change is rejected as a whole
	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{"description": "Climbing", "endDate": "2023-12-31"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Gym", response.Data.Description)
}

func (suite *TestSuiteStandard) TestRecurringTransactionsReplace() {
	createTestProfile(suite.T(), "")
	old := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{Description: "Old"})

	items := []ledger.Rule{
		{ID: "r1", Description: "Rent", Amount: amount("-900"), Frequency: ledger.FrequencyMonthly, DayOfMonth: 1, Start: date("2024-01-01")},
	}

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/recurring-transactions", items)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecurringTransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Rent", response.Data[0].Description)

	r = test.Request(suite.T(), http.MethodGet, old.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRecurringTransactionsGetSingle() {
	createTestProfile(suite.T(), "")
	rule := createTestRecurringTransaction(suite.T(), v1.RecurringTransactionEditable{})

	tests := []struct {
		name   string
		method string
		id     string
		status int
	}{
		{"Existing", http.MethodGet, rule.Data.ID.String(), http.StatusOK},
		{"Missing", http.MethodGet, uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", http.MethodGet, "rent", http.StatusBadRequest},
		{"Delete existing", http.MethodDelete, rule.Data.ID.String(), http.StatusNoContent},
		{"Delete again", http.MethodDelete, rule.Data.ID.String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/recurring-transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
