package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-calendar/backend/pkg/controllers/v1"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/budget-calendar/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRulesCreate() {
	createTestProfile(suite.T(), "")

	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 3, Match: " Bank* ", Category: "Fees"})
	suite.Assert().Equal("Bank*", rule.Data.Match)
	suite.Assert().Equal(uint(3), rule.Data.Priority)

	tests := []struct {
		name string
		body string
	}{
		{"No match", `[{"category": "Fees"}]`},
		{"No category", `[{"match": "Bank*"}]`},
		{"Negative priority", `[{"match": "Bank*", "category": "Fees", "priority": -1}]`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesGetFilter() {
	createTestProfile(suite.T(), "")
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "Bakery*", Category: "Food"})
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Bank*", Category: "Fees"})
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "*Market*", Category: "Food"})

	tests := []struct {
		query   string
		matches []string
	}{
		{"", []string{"Bank*", "Bakery*", "*Market*"}},
		{"priority=2", []string{"Bakery*", "*Market*"}},
		{"category=Food", []string{"Bakery*", "*Market*"}},
		{"match=Ba", []string{"Bank*", "Bakery*"}},
		{"limit=1", []string{"Bank*"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MatchRuleListResponse
			test.DecodeResponse(t, &r, &response)

			matches := make([]string, 0, len(response.Data))
			for _, rule := range response.Data {
				matches = append(matches, rule.Match)
			}
			assert.Equal(t, tt.matches, matches)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesReplace() {
	createTestProfile(suite.T(), "")
	old := createTestMatchRule(suite.T(), v1.MatchRuleEditable{})

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/match-rules", []v1.MatchRuleEditable{
		{Priority: 5, Match: "Rent*", Category: "Housing"},
		{Priority: 1, Match: "Pay*", Category: "Income"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Pay*", response.Data[0].Match)
	suite.Assert().Equal("Rent*", response.Data[1].Match)

	r = test.Request(suite.T(), http.MethodGet, old.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// An invalid rule keeps the current rules
	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/match-rules", []v1.MatchRuleEditable{{Match: "Only a match"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var errResponse v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &errResponse)
	suite.Assert().Equal(models.ErrMatchRuleEmpty.Error(), *errResponse.Error)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)

	// An empty list removes all rules
	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/match-rules", `[]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	createTestProfile(suite.T(), "")
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Bank*", Category: "Fees"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{"category": "Bank fees"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Bank fees", response.Data.Category)
	suite.Assert().Equal("Bank*", response.Data.Match)
	suite.Assert().Equal(uint(1), response.Data.Priority)

	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{"match": ""}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
