package models

import (
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bundle is the backup format of one profile.
//
// When importing, only collections that are present replace the stored
// ones. A missing or null key leaves the stored collection untouched.
type Bundle struct {
	Transactions *[]ledger.Transaction `json:"transactions"`
	Recurrings   *[]ledger.Rule        `json:"recurrings"`
	Categories   *[]ledger.Category    `json:"categories"`
	Budgets      *[]ledger.Budget      `json:"budgets"`
}

// Export returns all collections of a profile.
func Export(db *gorm.DB, profile uuid.UUID) (Bundle, error) {
	c, err := LoadCollections(db, profile)
	if err != nil {
		return Bundle{}, err
	}

	return Bundle{
		Transactions: &c.Transactions,
		Recurrings:   &c.Rules,
		Categories:   &c.Categories,
		Budgets:      &c.Budgets,
	}, nil
}

// Import replaces the collections present in the bundle. Either all of
// them are replaced or, on error, none.
//
// IDs that are not UUIDs, are duplicated or belong to a record of another
// profile are replaced with new ones. References to replaced category and
// budget IDs are updated accordingly.
func Import(db *gorm.DB, profile uuid.UUID, bundle Bundle) error {
	if profile == uuid.Nil {
		return ErrNoProfile
	}

	return InTransaction(db, func(tx *gorm.DB) error {
		if err := tx.First(&Profile{}, profile).Error; err != nil {
			return err
		}

		imp := importer{
			tx:         tx,
			profile:    profile,
			categories: make(map[string]uuid.UUID),
			budgets:    make(map[string]uuid.UUID),
			used:       make(map[uuid.UUID]bool),
		}

		// Categories and budgets go first so that references to them can be remapped
		if bundle.Categories != nil {
			if err := imp.categoryList(*bundle.Categories); err != nil {
				return err
			}
		}

		if bundle.Budgets != nil {
			if err := imp.budgetList(*bundle.Budgets); err != nil {
				return err
			}
		}

		if bundle.Transactions != nil {
			if err := imp.transactionList(*bundle.Transactions); err != nil {
				return err
			}
		}

		if bundle.Recurrings != nil {
			if err := imp.recurringList(*bundle.Recurrings); err != nil {
				return err
			}
		}

		return nil
	})
}

type importer struct {
	tx         *gorm.DB
	profile    uuid.UUID
	categories map[string]uuid.UUID // imported category ID to stored ID
	budgets    map[string]uuid.UUID // imported budget ID to stored ID
	used       map[uuid.UUID]bool
}

// clear removes all rows of model that belong to the profile.
func (i *importer) clear(model any) error {
	return i.tx.Where("profile_id = ?", i.profile).Delete(model).Error
}

// id returns the ID to store a record under.
func (i *importer) id(model any, raw string, mapping map[string]uuid.UUID) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil || i.used[id] {
		id = uuid.New()
	} else {
		// The profile's own rows are already deleted, so any match belongs to another profile
		var count int64
		if err := i.tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
			return uuid.Nil, err
		}

		if count > 0 {
			id = uuid.New()
		}
	}

	if mapping != nil && raw != "" {
		mapping[raw] = id
	}
	i.used[id] = true

	return id, nil
}

// reference resolves a reference to a category or budget. References
// that are neither imported nor UUIDs resolve to uuid.Nil.
func reference(raw string, mapping map[string]uuid.UUID) uuid.UUID {
	if id, ok := mapping[raw]; ok {
		return id
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func optionalReference(raw string, mapping map[string]uuid.UUID) *uuid.UUID {
	id := reference(raw, mapping)
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func (i *importer) categoryList(items []ledger.Category) error {
	if err := i.clear(&Category{}); err != nil {
		return err
	}

	for _, item := range items {
		id, err := i.id(&Category{}, item.ID, i.categories)
		if err != nil {
			return err
		}

		category := Category{
			DefaultModel: DefaultModel{ID: id},
			ProfileID:    i.profile,
			Name:         item.Name,
		}

		if err := i.tx.Create(&category).Error; err != nil {
			return err
		}
	}

	return nil
}

func (i *importer) budgetList(items []ledger.Budget) error {
	if err := i.clear(&Budget{}); err != nil {
		return err
	}

	for _, item := range items {
		id, err := i.id(&Budget{}, item.ID, i.budgets)
		if err != nil {
			return err
		}

		month, endMonth, recurring := item.Shape()
		budget := Budget{
			DefaultModel: DefaultModel{ID: id},
			ProfileID:    i.profile,
			CategoryID:   reference(item.CategoryID, i.categories),
			Amount:       item.Amount,
			Month:        month,
			EndMonth:     endMonth,
			Recurring:    recurring,
		}

		if err := i.tx.Create(&budget).Error; err != nil {
			return err
		}
	}

	return nil
}

func (i *importer) transactionList(items []ledger.Transaction) error {
	if err := i.clear(&Transaction{}); err != nil {
		return err
	}

	for _, item := range items {
		id, err := i.id(&Transaction{}, item.ID, nil)
		if err != nil {
			return err
		}

		transaction := Transaction{
			DefaultModel: DefaultModel{ID: id},
			ProfileID:    i.profile,
			Date:         item.Date,
			Description:  item.Description,
			Amount:       item.Amount,
			Category:     item.Category,
			BudgetID:     optionalReference(item.BudgetID, i.budgets),
		}

		if err := i.tx.Create(&transaction).Error; err != nil {
			return err
		}
	}

	return nil
}

func (i *importer) recurringList(items []ledger.Rule) error {
	if err := i.clear(&RecurringTransaction{}); err != nil {
		return err
	}

	for _, item := range items {
		id, err := i.id(&RecurringTransaction{}, item.ID, nil)
		if err != nil {
			return err
		}

		rule := RecurringTransaction{
			DefaultModel: DefaultModel{ID: id},
			ProfileID:    i.profile,
			Description:  item.Description,
			Amount:       item.Amount,
			Frequency:    item.Frequency,
			DayOfMonth:   item.DayOfMonth,
			DayOfWeek:    item.DayOfWeek,
			StartDate:    item.Start,
			Category:     item.Category,
			BudgetID:     optionalReference(item.BudgetID, i.budgets),
		}

		if !item.End.IsZero() {
			end := item.End
			rule.EndDate = &end
		}

		if err := i.tx.Create(&rule).Error; err != nil {
			return err
		}
	}

	return nil
}

// DeleteAll permanently deletes all data, including profiles and goals.
func DeleteAll(db *gorm.DB) error {
	// Rows referencing profiles go first
	resources := []any{
		&MatchRule{},
		&Transaction{},
		&RecurringTransaction{},
		&Budget{},
		&Category{},
		&Goal{},
		&Profile{},
		&Setting{},
	}

	return InTransaction(db, func(tx *gorm.DB) error {
		for _, model := range resources {
			if err := tx.Where("true").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
