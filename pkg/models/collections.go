package models

import (
	"errors"

	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ledgerModel is implemented by every per-profile record that the engine evaluates.
type ledgerModel[L any] interface {
	Transaction | RecurringTransaction | Category | Budget
	Ledger() L
}

// load reads all rows of one collection of a profile in the order they
// were stored.
//
// Rows that cannot be decoded degrade the collection to an empty one.
// Only database failures are returned as errors.
func load[M ledgerModel[L], L any](db *gorm.DB, profile uuid.UUID, name string) ([]L, error) {
	items := make([]L, 0)
	if profile == uuid.Nil {
		return items, nil
	}

	var rows []M
	err := db.Where("profile_id = ?", profile).Order("rowid asc").Find(&rows).Error
	if errors.Is(err, ErrGeneral) {
		return items, err
	} else if err != nil {
		log.Warn().Err(err).Str("profile", profile.String()).Str("collection", name).Msg("stored collection could not be read, using an empty one")
		return items, nil
	}

	for _, row := range rows {
		items = append(items, row.Ledger())
	}

	return items, nil
}

func LoadTransactions(db *gorm.DB, profile uuid.UUID) ([]ledger.Transaction, error) {
	return load[Transaction, ledger.Transaction](db, profile, "transactions")
}

func LoadRecurrings(db *gorm.DB, profile uuid.UUID) ([]ledger.Rule, error) {
	return load[RecurringTransaction, ledger.Rule](db, profile, "recurrings")
}

func LoadCategories(db *gorm.DB, profile uuid.UUID) ([]ledger.Category, error) {
	return load[Category, ledger.Category](db, profile, "categories")
}

func LoadBudgets(db *gorm.DB, profile uuid.UUID) ([]ledger.Budget, error) {
	return load[Budget, ledger.Budget](db, profile, "budgets")
}

// LoadCollections loads all four collections of a profile.
func LoadCollections(db *gorm.DB, profile uuid.UUID) (c ledger.Collections, err error) {
	if c.Transactions, err = LoadTransactions(db, profile); err != nil {
		return
	}

	if c.Rules, err = LoadRecurrings(db, profile); err != nil {
		return
	}

	if c.Categories, err = LoadCategories(db, profile); err != nil {
		return
	}

	c.Budgets, err = LoadBudgets(db, profile)
	return
}

// SaveTransactions replaces all transactions of the profile.
func SaveTransactions(db *gorm.DB, profile uuid.UUID, items []ledger.Transaction) error {
	return Import(db, profile, Bundle{Transactions: &items})
}

// SaveRecurrings replaces all recurring transactions of the profile.
func SaveRecurrings(db *gorm.DB, profile uuid.UUID, items []ledger.Rule) error {
	return Import(db, profile, Bundle{Recurrings: &items})
}

// SaveCategories replaces all categories of the profile.
//
// Budgets set for categories that are removed this way are kept.
func SaveCategories(db *gorm.DB, profile uuid.UUID, items []ledger.Category) error {
	return Import(db, profile, Bundle{Categories: &items})
}

// SaveBudgets replaces all budgets of the profile.
func SaveBudgets(db *gorm.DB, profile uuid.UUID, items []ledger.Budget) error {
	return Import(db, profile, Bundle{Budgets: &items})
}
