package models

import (
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to new transactions whose description
// matches a glob pattern.
type MatchRule struct {
	DefaultModel
	ProfileID uuid.UUID
	Profile   Profile `gorm:"constraint:OnDelete:CASCADE"`
	Priority  uint
	Match     string
	Category  string
}

func (r MatchRule) Self() string {
	return "Match Rule"
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = clean(r.Match)
	r.Category = clean(r.Category)

	return nil
}

func (r *MatchRule) AfterSave(_ *gorm.DB) error {
	if r.Match == "" || r.Category == "" {
		return ErrMatchRuleEmpty
	}
	return nil
}

// ApplyMatchRules sets the category of t from the first match rule of its
// profile, ordered by priority, whose pattern matches the description.
//
// Transactions that already have a category are not changed.
func ApplyMatchRules(db *gorm.DB, t *Transaction) error {
	if t.Category != "" {
		return nil
	}

	var rules []MatchRule
	err := db.Where(&MatchRule{ProfileID: t.ProfileID}).Order("priority asc, rowid asc").Find(&rules).Error
	if err != nil {
		return err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, t.Description) {
			t.Category = rule.Category
			return nil
		}
	}

	return nil
}

// ReplaceMatchRules replaces all match rules of a profile.
func ReplaceMatchRules(db *gorm.DB, profile uuid.UUID, rules []MatchRule) error {
	if profile == uuid.Nil {
		return ErrNoProfile
	}

	return InTransaction(db, func(tx *gorm.DB) error {
		err := tx.Where("profile_id = ?", profile).Delete(&MatchRule{}).Error
		if err != nil {
			return err
		}

		for _, rule := range rules {
			rule.DefaultModel = DefaultModel{}
			rule.ProfileID = profile

			err := tx.Create(&rule).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
