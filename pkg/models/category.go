package models

import (
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named spending category that budgets are set for.
type Category struct {
	DefaultModel
	ProfileID uuid.UUID
	Profile   Profile `gorm:"constraint:OnDelete:CASCADE"`
	Name      string
}

func (c Category) Self() string {
	return "Category"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = clean(c.Name)
	return nil
}

func (c *Category) AfterSave(_ *gorm.DB) error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}
	return nil
}

func (c Category) Ledger() ledger.Category {
	return ledger.Category{
		ID:   c.ID.String(),
		Name: c.Name,
	}
}

// DeleteCategory deletes a category and all budgets set for it.
func DeleteCategory(db *gorm.DB, category Category) error {
	return InTransaction(db, func(tx *gorm.DB) error {
		err := tx.Where("profile_id = ? AND category_id = ?", category.ProfileID, category.ID).Delete(&Budget{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
}
