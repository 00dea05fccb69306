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

// TestTransactionsCreateWithoutProfile verifies that transactions cannot
// be created before a profile exists.
func (suite *TestSuiteStandard) TestTransactionsCreateWithoutProfile() {
	var response v1.TransactionCreateResponse
	create(suite.T(), "transactions", []v1.TransactionEditable{{Date: date("2024-03-15"), Amount: amount("-10")}}, &response, http.StatusBadRequest)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.ErrNoProfile.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	p := createTestProfile(suite.T(), "")
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: amount("100"), Recurring: true})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"Minimal", `[{"date": "2024-03-15"}]`, http.StatusCreated},
		{"Linked to budget", fmt.Sprintf(`[{"date": "2024-03-15", "amount": -12.5, "budgetId": "%s"}]`, budget.Data.ID), http.StatusCreated},
		{"Explicit profile", fmt.Sprintf(`[{"date": "2024-03-15", "profileId": "%s"}]`, p.Data.ID), http.StatusCreated},
		{"Missing date", `[{"description": "Dateless"}]`, http.StatusBadRequest},
		{"Broken date", `[{"date": "2024-02-30"}]`, http.StatusBadRequest},
		{"Nonexistent profile", fmt.Sprintf(`[{"date": "2024-03-15", "profileId": "%s"}]`, uuid.New()), http.StatusBadRequest},
		{"Amount as string of letters", `[{"date": "2024-03-15", "amount": "lots"}]`, http.StatusBadRequest},
		{"Mixed", `[{"date": "2024-03-15"}, {"description": "Dateless"}]`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsCreateAppliesMatchRules verifies that the first matching
// rule by priority sets the category of uncategorized transactions.
func (suite *TestSuiteStandard) TestTransactionsCreateAppliesMatchRules() {
	createTestProfile(suite.T(), "")
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "*", Category: "Misc"})
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Bakery*", Category: "Food"})

	tests := []struct {
		description string
		category    string
		expected    string
	}{
		{"Bakery Miller", "", "Food"},
		{"Bookstore", "", "Misc"},
		{"Bakery Miller", "Gifts", "Gifts"},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s/%s", tt.description, tt.category), func(t *testing.T) {
			transaction := createTestTransaction(t, v1.TransactionEditable{Description: tt.description, Category: tt.category, Amount: amount("-3")})
			assert.Equal(t, tt.expected, transaction.Data.Category)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	createTestProfile(suite.T(), "")
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Coffee", Amount: amount("-3.40")})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", transaction.Data.ID.String(), http.StatusOK},
		{"Nil ID", uuid.Nil.String(), http.StatusBadRequest},
		{"Missing", uuid.New().String(), http.StatusNotFound},
		{"Not a UUID", "coffee", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Coffee", response.Data.Description)
	suite.Assert().True(amount("-3.40").Equal(response.Data.Amount))
	suite.Assert().Equal(date("2024-03-15"), response.Data.Date)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	first := createTestProfile(suite.T(), "")
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Amount: amount("100"), Recurring: true})

	createTestTransaction(suite.T(), v1.TransactionEditable{Date: date("2024-01-10"), Description: "Groceries at the market", Amount: amount("-40"), Category: "Food"})
	createTestTransaction(suite.T(), v1.TransactionEditable{Date: date("2024-02-10"), Description: "Salary", Amount: amount("2000"), Category: "Income"})
	createTestTransaction(suite.T(), v1.TransactionEditable{Date: date("2024-03-10"), Description: "Groceries online", Amount: amount("-60"), Category: "Food", BudgetID: &budget.Data.ID})

	// Transactions of another profile are never listed
	second := createTestProfile(suite.T(), "")
	createTestTransaction(suite.T(), v1.TransactionEditable{Date: date("2024-02-10"), Description: "Groceries elsewhere", Category: "Food"})

	base := fmt.Sprintf("http://example.com/v1/transactions?profile=%s", first.Data.ID)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"From date", "&fromDate=2024-02-10", 2},
		{"Until date", "&untilDate=2024-02-09", 1},
		{"Date range", "&fromDate=2024-02-01&untilDate=2024-02-29", 1},
		{"Description", "&description=Groceries", 2},
		{"Category", "&category=Food", 2},
		{"Empty category", "&category=", 0},
		{"Budget", fmt.Sprintf("&budget=%s", budget.Data.ID), 1},
		{"No budget", "&budget=", 2},
		{"Limit", "&limit=1", 1},
		{"Offset", "&offset=2", 1},
		{"Limit 0", "&limit=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, base+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}

	// Without the profile parameter, the active profile is used
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(second.Data.ID, response.Data[0].ProfileID)
}

func (suite *TestSuiteStandard) TestTransactionsGetPagination() {
	createTestProfile(suite.T(), "")
	for i := 1; i <= 5; i++ {
		createTestTransaction(suite.T(), v1.TransactionEditable{Date: date(fmt.Sprintf("2024-03-0%d", i))})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?offset=1&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(date("2024-03-02"), response.Data[0].Date)
	suite.Assert().Equal(v1.Pagination{Count: 2, Offset: 1, Limit: 2, Total: 5}, *response.Pagination)

	// The default limit applies when no limit is set
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(50, response.Pagination.Limit)
	suite.Assert().Equal(int64(5), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterErrors() {
	createTestProfile(suite.T(), "")

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Broken date", "fromDate=2024-13-01", http.StatusBadRequest},
		{"Broken budget ID", "budget=NotABudget", http.StatusBadRequest},
		{"Broken profile ID", "profile=NotAProfile", http.StatusBadRequest},
		{"Missing profile", fmt.Sprintf("profile=%s", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

// TestTransactionsGetWithoutProfile verifies that listing works before any
// profile exists and returns nothing.
func (suite *TestSuiteStandard) TestTransactionsGetWithoutProfile() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().NotNil(response.Data)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsReplace() {
	createTestProfile(suite.T(), "")
	old := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Old"})

	keep := uuid.New()
	items := []ledger.Transaction{
		{ID: keep.String(), Date: date("2024-05-01"), Description: "Kept ID", Amount: amount("-1")},
		{ID: "1711000000000", Date: date("2024-04-01"), Description: "Remapped ID", Amount: amount("2")},
	}

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/transactions", items)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Remapped ID", response.Data[0].Description)
	suite.Assert().NotEqual(uuid.Nil, response.Data[0].ID)
	suite.Assert().Equal(keep, response.Data[1].ID)

	r = test.Request(suite.T(), http.MethodGet, old.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsReplaceInvalid verifies that nothing is replaced when
// one of the items is invalid.
func (suite *TestSuiteStandard) TestTransactionsReplaceInvalid() {
	createTestProfile(suite.T(), "")
	old := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Old"})

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/transactions", `[{"id": "a", "date": "2024-05-01"}, {"id": "b"}]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, old.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/transactions", `{"id": "a"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsReplaceWithoutProfile() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/transactions", `[]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrNoProfile.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	createTestProfile(suite.T(), "")
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Description: "Cinema",
		Amount:      amount("-24"),
		Category:    "Fun",
	})

	r := test.Request(suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"description": "Cinema with friends",
		"amount":      "-36",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Cinema with friends", response.Data.Description)
	suite.Assert().True(amount("-36").Equal(response.Data.Amount))
	suite.Assert().Equal("Fun", response.Data.Category, "Category was changed even though it was not sent")
	suite.Assert().Equal(date("2024-03-15"), response.Data.Date, "Date was changed even though it was not sent")
	suite.Assert().Equal(transaction.Data.ProfileID, response.Data.ProfileID)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFail() {
	createTestProfile(suite.T(), "")
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Cinema"})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Invalid type", transaction.Data.ID.String(), `{"description": 2}`, http.StatusBadRequest},
		{"Broken body", transaction.Data.ID.String(), `{"description": "Cinema`, http.StatusBadRequest},
		{"Invalid date", transaction.Data.ID.String(), `{"date": "yesterday"}`, http.StatusBadRequest},
		{"Missing transaction", uuid.New().String(), `{"description": "Nothing"}`, http.StatusNotFound},
		{"Invalid ID", "cinema", `{"description": "Nothing"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	createTestProfile(suite.T(), "")
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	createTestProfile(suite.T(), "")
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", `[{"date": "2024-03-15"}]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
