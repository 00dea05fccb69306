package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/budget-calendar/backend/pkg/controllers/v1"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/budget-calendar/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestGoalsWithoutProfile verifies that goals do not belong to a profile.
func (suite *TestSuiteStandard) TestGoalsWithoutProfile() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "New TV", Target: amount("789"), Notes: "Soon-ish"})
	suite.Assert().Equal("New TV", goal.Data.Name)
	suite.Assert().True(amount("789").Equal(goal.Data.Target))

	createTestProfile(suite.T(), "")
	createTestProfile(suite.T(), "")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(goal.Data.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestGoalsCreateInvalid() {
	tests := []struct {
		name   string
		target string
	}{
		{"Zero", "0"},
		{"Negative", "-10"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var response v1.GoalCreateResponse
			create(t, "goals", fmt.Sprintf(`[{"name": "Car", "target": %s}]`, tt.target), &response, http.StatusBadRequest)
			assert.Equal(t, models.ErrGoalTargetNotPositive.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetFilter() {
	createTestGoal(suite.T(), v1.GoalEditable{Name: "Car", Notes: "A used one is fine"})
	createTestGoal(suite.T(), v1.GoalEditable{Name: "Holiday"})
	createTestGoal(suite.T(), v1.GoalEditable{Name: "New TV", Notes: "For the holiday season"})

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{"name=Car", 1},
		{"notes=", 1},
		{"search=holiday", 2},
		{"offset=2", 1},
		{"limit=2", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Car", Target: amount("5000")})

	r := test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, `{"target": "6000"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Car", response.Data.Name)
	suite.Assert().True(amount("6000").Equal(response.Data.Target))

	r = test.Request(suite.T(), http.MethodPatch, goal.Data.Links.Self, `{"target": "-1"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsGetSingle() {
	goal := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		method string
		id     string
		status int
	}{
		{"Existing", http.MethodGet, goal.Data.ID.String(), http.StatusOK},
		{"Missing", http.MethodGet, uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", http.MethodGet, "car", http.StatusBadRequest},
		{"Delete", http.MethodDelete, goal.Data.ID.String(), http.StatusNoContent},
		{"Deleted", http.MethodGet, goal.Data.ID.String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/goals/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
