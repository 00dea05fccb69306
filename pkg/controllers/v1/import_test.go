package v1_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/budget-calendar/backend/internal/httperror"
	v1 "github.com/budget-calendar/backend/pkg/controllers/v1"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/budget-calendar/backend/test"
	"github.com/google/uuid"
)

// importFile uploads a file from the testdata directory to the import
// endpoint.
func (suite *TestSuiteStandard) importFile(file, query string, expectedStatus int) v1.ImportResponse {
	body, headers := test.LoadTestFile(suite.T(), file)

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import%s", query), body, headers)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	return response
}

func (suite *TestSuiteStandard) export(profile uuid.UUID) models.Bundle {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/export?profile=%s", profile), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var bundle models.Bundle
	test.DecodeResponse(suite.T(), &r, &bundle)
	return bundle
}

func (suite *TestSuiteStandard) TestImportFile() {
	p := createTestProfile(suite.T(), "")

	response := suite.importFile("backup.json", "", http.StatusOK)
	suite.Assert().Equal(p.Data.ID, response.Data.Profile.ID)
	suite.Assert().Equal(3, response.Data.Counts.Transactions)
	suite.Assert().Equal(2, response.Data.Counts.Recurrings)
	suite.Assert().Equal(2, response.Data.Counts.Categories)
	suite.Assert().Equal(2, response.Data.Counts.Budgets)

	bundle := suite.export(p.Data.ID)

	// IDs that are not UUIDs are replaced together with their references
	categories := make(map[string]string)
	for _, c := range *bundle.Categories {
		suite.Assert().NotEqual(uuid.Nil, uuid.MustParse(c.ID))
		categories[c.Name] = c.ID
	}

	var funBudget string
	for _, b := range *bundle.Budgets {
		if b.Amount.Equal(amount("100")) {
			funBudget = b.ID
			suite.Assert().Equal(categories["Fun"], b.CategoryID)
		} else {
			suite.Assert().Equal(categories["Food"], b.CategoryID)
		}
	}
	suite.Require().NotEmpty(funBudget)

	for _, t := range *bundle.Transactions {
		if t.Description == "Cinema" {
			suite.Assert().Equal(funBudget, t.BudgetID)
		} else {
			suite.Assert().Empty(t.BudgetID)
		}
	}
}

// TestImportKeepsMissingCollections verifies that only collections
// present in the backup are replaced.
func (suite *TestSuiteStandard) TestImportKeepsMissingCollections() {
	createTestProfile(suite.T(), "")
	suite.importFile("backup.json", "", http.StatusOK)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", `{"categories": [{"id": "x", "name": "Travel"}]}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(3, response.Data.Counts.Transactions)
	suite.Assert().Equal(2, response.Data.Counts.Recurrings)
	suite.Assert().Equal(1, response.Data.Counts.Categories)
	suite.Assert().Equal(2, response.Data.Counts.Budgets)

	// An empty list clears a collection
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", `{"transactions": []}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(0, response.Data.Counts.Transactions)
	suite.Assert().Equal(1, response.Data.Counts.Categories)
}

// TestImportInvalid verifies that invalid backups are rejected without
// changing anything.
func (suite *TestSuiteStandard) TestImportInvalid() {
	p := createTestProfile(suite.T(), "")
	suite.importFile("backup.json", "", http.StatusOK)

	tests := []struct {
		name string
		body string
	}{
		{"Transaction without date", `{"categories": [], "transactions": [{"id": "a", "date": "2024-01-01"}, {"id": "b"}]}`},
		{"Invalid recurrence", `{"recurrings": [{"id": "r", "type": "weekly", "startDate": "2024-01-01"}]}`},
		{"Wrong type", `{"transactions": "none"}`},
		{"Broken JSON", `{"transactions": [`},
		{"Empty body", ""},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", tt.body)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

			bundle := suite.export(p.Data.ID)
			suite.Assert().Len(*bundle.Transactions, 3)
			suite.Assert().Len(*bundle.Recurrings, 2)
			suite.Assert().Len(*bundle.Categories, 2)
			suite.Assert().Len(*bundle.Budgets, 2)
		})
	}
}

func (suite *TestSuiteStandard) TestImportFileErrors() {
	createTestProfile(suite.T(), "")

	tests := []struct {
		file  string
		error string
	}{
		{"backup.csv", "this endpoint only supports .json files"},
		{"broken.json", "the uploaded file is not a valid backup"},
	}

	for _, tt := range tests {
		suite.Run(tt.file, func() {
			response := suite.importFile(tt.file, "", http.StatusBadRequest)
			suite.Require().NotNil(response.Error)
			suite.Assert().True(strings.HasPrefix(*response.Error, tt.error), "Error is %q", *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	createTestProfile(suite.T(), "")

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)
	suite.Require().Nil(mw.WriteField("profile", "ignored"))
	mw.Close()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, map[string]string{"Content-Type": mw.FormDataContentType()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("you must send a file to this endpoint", *response.Error)
}

func (suite *TestSuiteStandard) TestImportWithoutProfile() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", `{"categories": []}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrNoProfile.Error(), *response.Error)

	r = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import?profile=%s", uuid.New()), `{"categories": []}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestImportNewProfile verifies that a profile created for an import
// only exists when the import succeeds.
func (suite *TestSuiteStandard) TestImportNewProfile() {
	existing := createTestProfile(suite.T(), "Existing")

	response := suite.importFile("backup.json", "?profileName=Imported", http.StatusOK)
	suite.Assert().Equal("Imported", response.Data.Profile.Name)
	suite.Assert().True(response.Data.Profile.Active)
	suite.Assert().NotEqual(existing.Data.ID, response.Data.Profile.ID)
	suite.Assert().Equal(3, response.Data.Counts.Transactions)

	// The existing profile is untouched
	suite.Assert().Len(*suite.export(existing.Data.ID).Transactions, 0)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import?profileName=Broken", `{"transactions": [{"id": "b"}]}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profiles", "")
	var profiles v1.ProfileListResponse
	test.DecodeResponse(suite.T(), &r, &profiles)
	suite.Require().Len(profiles.Data, 2)
	suite.Assert().True(profiles.Data[1].Active, "The failed import changed the active profile")
}

// TestExportRoundTrip verifies that an export imported into a new profile
// exports the same records again.
func (suite *TestSuiteStandard) TestExportRoundTrip() {
	original := createTestProfile(suite.T(), "Original")
	suite.importFile("backup.json", "", http.StatusOK)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Header().Get("Content-Disposition"), "attachment; filename=\"budget-calendar-")

	exported := r.Body.String()
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import?profileName=Copy", exported)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	a := suite.export(original.Data.ID)
	b := suite.export(response.Data.Profile.ID)

	suite.Require().Len(*b.Transactions, len(*a.Transactions))
	for i, t := range *a.Transactions {
		copied := (*b.Transactions)[i]
		suite.Assert().NotEqual(t.ID, copied.ID, "IDs of another profile must not be reused")
		suite.Assert().Equal(t.Date, copied.Date)
		suite.Assert().Equal(t.Description, copied.Description)
		suite.Assert().True(t.Amount.Equal(copied.Amount))
		suite.Assert().Equal(t.Category, copied.Category)
		suite.Assert().Equal(t.BudgetID != "", copied.BudgetID != "")
	}

	suite.Assert().Len(*b.Recurrings, len(*a.Recurrings))
	suite.Assert().Len(*b.Categories, len(*a.Categories))
	suite.Assert().Len(*b.Budgets, len(*a.Budgets))
}

func (suite *TestSuiteStandard) TestImportDBClosed() {
	suite.CloseDB()

	for _, query := range []string{"?profileName=Copy", "?profile=" + uuid.New().String()} {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import"+query, `{"transactions": []}`)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

		var response httperror.Error
		test.DecodeResponse(suite.T(), &r, &response)
		suite.Assert().Equal(models.ErrGeneral.Error(), response.Message, query)
	}
}
