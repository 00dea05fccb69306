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

// TestProfilesCreate verifies that created profiles become active.
func (suite *TestSuiteStandard) TestProfilesCreate() {
	first := createTestProfile(suite.T(), "Household")
	suite.Assert().Equal("Household", first.Data.Name)
	suite.Assert().True(first.Data.Active)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/transactions?profile=%s", first.Data.ID), first.Data.Links.Transactions)

	second := createTestProfile(suite.T(), "Holiday")
	suite.Assert().True(second.Data.Active)

	r := test.Request(suite.T(), http.MethodGet, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.Active)
}

func (suite *TestSuiteStandard) TestProfilesCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty name", `[{"name": "  "}]`, http.StatusBadRequest},
		{"Not a list", `{"name": "Household"}`, http.StatusBadRequest},
		{"Broken JSON", `[{"name": "Household"`, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestProfilesCreateMixed verifies that the status of a list creation is
// the highest status of all items.
func (suite *TestSuiteStandard) TestProfilesCreateMixed() {
	var response v1.ProfileCreateResponse
	create(suite.T(), "profiles", []map[string]string{{"name": "Valid"}, {"name": ""}}, &response, http.StatusBadRequest)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Nil(response.Data[0].Error)
	suite.Assert().Equal("Valid", response.Data[0].Data.Name)
	suite.Assert().Equal(models.ErrProfileNameEmpty.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestProfilesGetList() {
	createTestProfile(suite.T(), "First")
	createTestProfile(suite.T(), "Second")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("First", response.Data[0].Name)
	suite.Assert().False(response.Data[0].Active)
	suite.Assert().Equal("Second", response.Data[1].Name)
	suite.Assert().True(response.Data[1].Active)
}

// TestProfilesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestProfilesGetSingle() {
	p := createTestProfile(suite.T(), "")

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Profile", p.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusBadRequest, http.MethodGet},
		{"GET No Profile with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"PATCH No Profile with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No Profile with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/profiles/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProfilesUpdate() {
	p := createTestProfile(suite.T(), "Old name")

	r := test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]string{"name": " New name "})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("New name", response.Data.Name)
	suite.Assert().Equal(p.Data.ID, response.Data.ID)

	r = test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]string{"name": ""})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, `{"name": 2}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestProfilesDelete verifies that deleting the active profile activates
// the oldest remaining one and removes the profile's data.
func (suite *TestSuiteStandard) TestProfilesDelete() {
	first := createTestProfile(suite.T(), "First")
	second := createTestProfile(suite.T(), "Second")
	third := createTestProfile(suite.T(), "Third")

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Description: "Doomed", Amount: amount("-5")})
	suite.Assert().Equal(third.Data.ID, transaction.Data.ProfileID)

	r := test.Request(suite.T(), http.MethodDelete, third.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/active-profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var active v1.ActiveProfileResponse
	test.DecodeResponse(suite.T(), &r, &active)
	suite.Require().NotNil(active.Data.ID)
	suite.Assert().Equal(first.Data.ID, *active.Data.ID)

	// Deleting an inactive profile keeps the active one
	r = test.Request(suite.T(), http.MethodDelete, second.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/active-profile", "")
	test.DecodeResponse(suite.T(), &r, &active)
	suite.Assert().Equal(first.Data.ID, *active.Data.ID)

	// Without profiles, none is active
	r = test.Request(suite.T(), http.MethodDelete, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/active-profile", "")
	active = v1.ActiveProfileResponse{}
	test.DecodeResponse(suite.T(), &r, &active)
	suite.Assert().Nil(active.Data.ID)
}

func (suite *TestSuiteStandard) TestActiveProfileSet() {
	first := createTestProfile(suite.T(), "First")
	createTestProfile(suite.T(), "Second")

	tests := []struct {
		name   string
		body   string
		status int
		active *uuid.UUID
	}{
		{"Existing profile", fmt.Sprintf(`{"id": "%s"}`, first.Data.ID), http.StatusOK, &first.Data.ID},
		{"Missing profile", fmt.Sprintf(`{"id": "%s"}`, uuid.New()), http.StatusNotFound, &first.Data.ID},
		{"Invalid ID", `{"id": "notaUUID"}`, http.StatusBadRequest, &first.Data.ID},
		{"Clear", `{"id": null}`, http.StatusOK, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, "http://example.com/v1/active-profile", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			r = test.Request(t, http.MethodGet, "http://example.com/v1/active-profile", "")
			var response v1.ActiveProfileResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.active, response.Data.ID)
		})
	}
}

// TestProfilesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProfilesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, models.ErrGeneral.Error())
}
