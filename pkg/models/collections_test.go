package models_test

import (
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestLoadWithoutProfile() {
	c, err := models.LoadCollections(models.DB, uuid.Nil)
	suite.Require().Nil(err)

	suite.Assert().NotNil(c.Transactions)
	suite.Assert().Empty(c.Transactions)
	suite.Assert().Empty(c.Rules)
	suite.Assert().Empty(c.Categories)
	suite.Assert().Empty(c.Budgets)
}

func (suite *TestSuiteStandard) TestSaveAndLoadTransactions() {
	profile := suite.createTestProfile("Household")
	budgetID := uuid.New()

	items := []ledger.Transaction{
		{ID: uuid.New().String(), Date: date("2024-04-20"), Description: "Later but first", Amount: amount("-10.5")},
		{ID: uuid.New().String(), Date: date("2024-04-01"), Description: "Salary", Amount: amount("2500"), Category: "Income"},
		{ID: uuid.New().String(), Date: date("2024-04-02"), Description: "Cinema", Amount: amount("-24"), BudgetID: budgetID.String()},
	}

	suite.Require().Nil(models.SaveTransactions(models.DB, profile.ID, items))

	loaded, err := models.LoadTransactions(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Require().Len(loaded, 3)

	// Stored order is kept
	for i := range items {
		suite.Assert().Equal(items[i].ID, loaded[i].ID)
		suite.Assert().Equal(items[i].Date, loaded[i].Date)
		suite.Assert().True(items[i].Amount.Equal(loaded[i].Amount))
		suite.Assert().Equal(items[i].Category, loaded[i].Category)
		suite.Assert().Equal(items[i].BudgetID, loaded[i].BudgetID)
	}

	// Saving again replaces the collection
	suite.Require().Nil(models.SaveTransactions(models.DB, profile.ID, items[:1]))
	loaded, err = models.LoadTransactions(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(loaded, 1)

	suite.Require().Nil(models.SaveTransactions(models.DB, profile.ID, []ledger.Transaction{}))
	loaded, err = models.LoadTransactions(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(loaded)
}

func (suite *TestSuiteStandard) TestSaveAndLoadRecurrings() {
	profile := suite.createTestProfile("Household")

	items := []ledger.Rule{
		{ID: uuid.New().String(), Description: "Rent", Amount: amount("-900"), Frequency: ledger.FrequencyMonthly, DayOfMonth: 31, Start: date("2024-01-01")},
		{ID: uuid.New().String(), Description: "Pay", Amount: amount("1200"), Frequency: ledger.FrequencyBiweekly, DayOfWeek: 5, Start: date("2024-01-05"), End: date("2024-06-30")},
	}

	suite.Require().Nil(models.SaveRecurrings(models.DB, profile.ID, items))

	loaded, err := models.LoadRecurrings(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Require().Len(loaded, 2)

	suite.Assert().Equal(31, loaded[0].DayOfMonth)
	suite.Assert().True(loaded[0].End.IsZero())
	suite.Assert().Equal(ledger.FrequencyBiweekly, loaded[1].Frequency)
	suite.Assert().Equal(items[1].DayOfWeek, loaded[1].DayOfWeek)
	suite.Assert().Equal(date("2024-06-30"), loaded[1].End)
}

func (suite *TestSuiteStandard) TestSaveAndLoadBudgets() {
	profile := suite.createTestProfile("Household")
	categoryID := uuid.New().String()

	items := []ledger.Budget{
		{ID: uuid.New().String(), CategoryID: categoryID, Amount: amount("200"), Recurrence: ledger.Recurring{}},
		{ID: uuid.New().String(), CategoryID: categoryID, Amount: amount("50"), Recurrence: ledger.Range{Start: *month("2024-03"), End: *month("2024-05")}},
		{ID: uuid.New().String(), CategoryID: categoryID, Amount: amount("10"), Recurrence: ledger.SingleMonth{Month: *month("2024-07")}},
	}

	suite.Require().Nil(models.SaveBudgets(models.DB, profile.ID, items))

	loaded, err := models.LoadBudgets(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Require().Len(loaded, 3)

	for i := range items {
		suite.Assert().Equal(items[i].Recurrence, loaded[i].Recurrence)
		suite.Assert().Equal(categoryID, loaded[i].CategoryID)
	}
}

func (suite *TestSuiteStandard) TestSaveRejectsInvalidItems() {
	profile := suite.createTestProfile("Household")

	valid := []ledger.Category{{ID: uuid.New().String(), Name: "Food"}}
	suite.Require().Nil(models.SaveCategories(models.DB, profile.ID, valid))

	err := models.SaveCategories(models.DB, profile.ID, []ledger.Category{{Name: "Fun"}, {Name: " "}})
	suite.Assert().ErrorIs(err, models.ErrCategoryNameEmpty)

	// Nothing was written
	loaded, err := models.LoadCategories(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Require().Len(loaded, 1)
	suite.Assert().Equal("Food", loaded[0].Name)
}

func (suite *TestSuiteStandard) TestSaveWithoutProfile() {
	err := models.SaveCategories(models.DB, uuid.Nil, []ledger.Category{{Name: "Food"}})
	suite.Assert().ErrorIs(err, models.ErrNoProfile)

	err = models.SaveCategories(models.DB, uuid.New(), []ledger.Category{{Name: "Food"}})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestLoadMalformedRows() {
	profile := suite.createTestProfile("Household")
	suite.createTestTransaction(models.Transaction{ProfileID: profile.ID, Date: date("2024-04-01"), Amount: amount("10")})
	suite.createTestTransaction(models.Transaction{ProfileID: profile.ID, Date: date("2024-04-02"), Description: "broken", Amount: amount("20")})

	suite.Require().Nil(models.DB.Exec("UPDATE transactions SET date = 'not a date' WHERE description = 'broken'").Error)

	loaded, err := models.LoadTransactions(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Assert().NotNil(loaded)
	suite.Assert().Empty(loaded)

	// Other collections are not affected
	suite.createTestCategory(models.Category{ProfileID: profile.ID, Name: "Food"})
	c, err := models.LoadCollections(models.DB, profile.ID)
	suite.Require().Nil(err)
	suite.Assert().Empty(c.Transactions)
	suite.Assert().Len(c.Categories, 1)
}

func (suite *TestSuiteStandard) TestLoadClosedDatabase() {
	profile := suite.createTestProfile("Household")
	suite.CloseDB()

	_, err := models.LoadCollections(models.DB, profile.ID)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestCollectionsAreScopedToProfiles() {
	a := suite.createTestProfile("A")
	b := suite.createTestProfile("B")

	suite.Require().Nil(models.SaveCategories(models.DB, a.ID, []ledger.Category{{Name: "Food"}}))
	suite.Require().Nil(models.SaveCategories(models.DB, b.ID, []ledger.Category{{Name: "Rent"}, {Name: "Fun"}}))

	loadedA, err := models.LoadCategories(models.DB, a.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(loadedA, 1)

	loadedB, err := models.LoadCategories(models.DB, b.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(loadedB, 2)
}
