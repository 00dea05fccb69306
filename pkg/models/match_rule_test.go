package models_test

import (
	"testing"

	"github.com/budget-calendar/backend/pkg/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestApplyMatchRules() {
	profile := suite.createTestProfile("Household")
	other := suite.createTestProfile("Other")

	rules := []models.MatchRule{
		{ProfileID: profile.ID, Priority: 2, Match: "*Market*", Category: "Groceries"},
		{ProfileID: profile.ID, Priority: 1, Match: "Super*", Category: "Food"},
		{ProfileID: profile.ID, Priority: 3, Match: "Netflix", Category: "Fun"},
		{ProfileID: other.ID, Priority: 0, Match: "*", Category: "Other profile"},
	}
	for i := range rules {
		suite.Require().Nil(models.DB.Create(&rules[i]).Error)
	}

	tests := []struct {
		description string
		category    string
		want        string
	}{
		{"Supermarket", "", "Food"},
		{"Farmers Market", "", "Groceries"},
		{"Netflix", "", "Fun"},
		{"Netflix subscription", "", ""},
		{"Supermarket", "Household", "Household"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.description, func(t *testing.T) {
			transaction := models.Transaction{ProfileID: profile.ID, Description: tt.description, Category: tt.category}
			suite.Require().Nil(models.ApplyMatchRules(models.DB, &transaction))
			suite.Assert().Equal(tt.want, transaction.Category)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRuleAfterSave() {
	profile := suite.createTestProfile("Household")

	err := models.DB.Create(&models.MatchRule{ProfileID: profile.ID, Match: "", Category: "Food"}).Error
	suite.Assert().ErrorIs(err, models.ErrMatchRuleEmpty)

	err = models.DB.Create(&models.MatchRule{ProfileID: profile.ID, Match: "Shop*", Category: " "}).Error
	suite.Assert().ErrorIs(err, models.ErrMatchRuleEmpty)
}

func (suite *TestSuiteStandard) TestReplaceMatchRules() {
	profile := suite.createTestProfile("Household")
	other := suite.createTestProfile("Other")

	suite.Require().Nil(models.DB.Create(&models.MatchRule{ProfileID: profile.ID, Match: "Old*", Category: "Old"}).Error)
	suite.Require().Nil(models.DB.Create(&models.MatchRule{ProfileID: other.ID, Match: "Keep*", Category: "Keep"}).Error)

	err := models.ReplaceMatchRules(models.DB, profile.ID, []models.MatchRule{
		{Priority: 1, Match: "New*", Category: "New"},
		{ProfileID: other.ID, Priority: 2, Match: "Moved*", Category: "Moved"},
	})
	suite.Require().Nil(err)

	var rules []models.MatchRule
	suite.Require().Nil(models.DB.Where("profile_id = ?", profile.ID).Order("priority asc").Find(&rules).Error)
	suite.Require().Len(rules, 2)
	suite.Assert().Equal("New*", rules[0].Match)
	suite.Assert().Equal("Moved*", rules[1].Match)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.MatchRule{}).Where("profile_id = ?", other.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestReplaceMatchRulesRollsBack() {
	profile := suite.createTestProfile("Household")
	suite.Require().Nil(models.DB.Create(&models.MatchRule{ProfileID: profile.ID, Match: "Old*", Category: "Old"}).Error)

	err := models.ReplaceMatchRules(models.DB, profile.ID, []models.MatchRule{{Match: "", Category: "Broken"}})
	suite.Assert().ErrorIs(err, models.ErrMatchRuleEmpty)

	var rules []models.MatchRule
	suite.Require().Nil(models.DB.Where("profile_id = ?", profile.ID).Find(&rules).Error)
	suite.Require().Len(rules, 1)
	suite.Assert().Equal("Old*", rules[0].Match)

	suite.Assert().ErrorIs(models.ReplaceMatchRules(models.DB, uuid.Nil, nil), models.ErrNoProfile)
}
