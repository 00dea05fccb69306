package models_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/budget-calendar/backend/pkg/models"
	"github.com/budget-calendar/backend/test"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestMigrateWithExistingDB() {
	testDB := test.TmpFile(suite.T())

	// Migrate the database once
	suite.Require().Nil(models.Connect(testDB))

	sqlDB, err := models.DB.DB()
	suite.Require().Nil(err)
	sqlDB.Close()

	// Migrate it again
	suite.Require().Nil(models.Connect(testDB))
}

func (suite *TestSuiteStandard) TestQueryCallbackNotFound() {
	tests := []struct {
		model any
		name  string
	}{
		{&models.Transaction{}, "transaction"},
		{&models.RecurringTransaction{}, "recurring transaction"},
		{&models.Category{}, "category"},
		{&models.Profile{}, "profile"},
		{&models.MatchRule{}, "match rule"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.First(tt.model, uuid.New()).Error
			suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
			suite.Assert().Equal("there is no "+tt.name+" matching your query", err.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestMissingReference() {
	err := models.DB.Create(&models.Category{ProfileID: uuid.New(), Name: "Orphan"}).Error
	suite.Assert().ErrorIs(err, models.ErrReferenceMissing)
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	suite.CloseDB()

	err := models.DB.First(&models.Profile{}, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
	suite.Assert().False(strings.Contains(err.Error(), "sql:"), "internal error details must not be exposed")
}

func (suite *TestSuiteStandard) TestClosedDatabaseTransactions() {
	profile := suite.createTestProfile("Household")
	category := suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "Food"})
	suite.CloseDB()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"CreateProfile", func() error {
			_, err := models.CreateProfile(models.DB, models.ProfileEditable{Name: "Other"})
			return err
		}},
		{"DeleteProfile", func() error { return models.DeleteProfile(models.DB, profile.ID) }},
		{"DeleteCategory", func() error { return models.DeleteCategory(models.DB, category) }},
		{"ReplaceMatchRules", func() error { return models.ReplaceMatchRules(models.DB, profile.ID, nil) }},
		{"Import", func() error { return models.Import(models.DB, profile.ID, models.Bundle{}) }},
		{"DeleteAll", func() error { return models.DeleteAll(models.DB) }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			suite.Assert().ErrorIs(err, models.ErrGeneral)
			suite.Assert().False(strings.Contains(err.Error(), "sql:"), "internal error details must not be exposed")
		})
	}
}

func (suite *TestSuiteStandard) TestInTransactionKeepsOtherErrors() {
	errRollback := errors.New("rollback")

	err := models.InTransaction(models.DB, func(_ *gorm.DB) error {
		return errRollback
	})
	suite.Assert().Equal(errRollback, err)
}
