package models_test

import (
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestCategoryNameNormalized() {
	profile := suite.createTestProfile("Household")

	// "Café" with a combining accent is stored precomposed
	category := suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "  Cafe\u0301 "})
	suite.Assert().Equal("Caf\u00e9", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	profile := suite.createTestProfile("Household")

	err := models.DB.Create(&models.Category{ProfileID: profile.ID, Name: "\t"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestDeleteCategoryDeletesBudgets() {
	profile := suite.createTestProfile("Household")
	food := suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "Food"})
	fun := suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "Fun"})

	suite.createTestBudget(models.Budget{ProfileID: profile.ID, CategoryID: food.ID, Amount: amount("200"), Recurring: true})
	suite.createTestBudget(models.Budget{ProfileID: profile.ID, CategoryID: food.ID, Amount: amount("50"), Month: month("2024-04")})
	kept := suite.createTestBudget(models.Budget{ProfileID: profile.ID, CategoryID: fun.ID, Amount: amount("100"), Recurring: true})

	suite.Require().Nil(models.DeleteCategory(models.DB, food))

	budgets, err := models.LoadBudgets(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal(kept.ID.String(), budgets[0].ID)

	categories, err := models.LoadCategories(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal([]ledger.Category{fun.Ledger()}, categories)
}

func (suite *TestSuiteStandard) TestSaveCategoriesKeepsBudgets() {
	profile := suite.createTestProfile("Household")
	food := suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "Food"})
	suite.createTestBudget(models.Budget{ProfileID: profile.ID, CategoryID: food.ID, Amount: amount("200"), Recurring: true})

	suite.Require().Nil(models.SaveCategories(models.DB, profile.ID, []ledger.Category{}))

	budgets, err := models.LoadBudgets(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 1)
}
