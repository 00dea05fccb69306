package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Profile is an independent data set with its own transactions,
// recurring transactions, categories and budgets.
type Profile struct {
	DefaultModel
	ProfileEditable
}

type ProfileEditable struct {
	Name string `json:"name" example:"Household"` // Name of the profile
}

func (Profile) Self() string {
	return "Profile"
}

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = clean(p.Name)
	return nil
}

func (p *Profile) AfterSave(_ *gorm.DB) error {
	if p.Name == "" {
		return ErrProfileNameEmpty
	}
	return nil
}

// Setting is a key/value pair for application state that is not
// owned by a profile.
type Setting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const settingActiveProfile = "active_profile"

// ActiveProfileID returns the ID of the active profile.
//
// uuid.Nil is returned when no profile is active.
func ActiveProfileID(db *gorm.DB) (uuid.UUID, error) {
	var setting Setting
	err := db.Where(&Setting{Key: settingActiveProfile}).Limit(1).Find(&setting).Error
	if err != nil {
		return uuid.Nil, err
	}

	if setting.Value == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(setting.Value)
	if err != nil {
		// A broken pointer is treated like no active profile
		return uuid.Nil, nil
	}

	return id, nil
}

// SetActiveProfile points the active profile to id. uuid.Nil clears
// the pointer.
func SetActiveProfile(db *gorm.DB, id uuid.UUID) error {
	if id != uuid.Nil {
		if err := db.First(&Profile{}, id).Error; err != nil {
			return err
		}
	}

	value := ""
	if id != uuid.Nil {
		value = id.String()
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Setting{Key: settingActiveProfile, Value: value}).Error
}

// CreateProfile creates a profile and makes it the active one.
func CreateProfile(db *gorm.DB, editable ProfileEditable) (Profile, error) {
	profile := Profile{ProfileEditable: editable}

	err := InTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		return SetActiveProfile(tx, profile.ID)
	})

	return profile, err
}

// DeleteProfile deletes a profile together with all of its data.
//
// If the deleted profile was the active one, the oldest remaining profile
// becomes active. Without remaining profiles, no profile is active.
func DeleteProfile(db *gorm.DB, id uuid.UUID) error {
	return InTransaction(db, func(tx *gorm.DB) error {
		var profile Profile
		if err := tx.First(&profile, id).Error; err != nil {
			return err
		}

		active, err := ActiveProfileID(tx)
		if err != nil {
			return err
		}

		// Rows referencing the profile are removed by ON DELETE CASCADE
		if err := tx.Delete(&profile).Error; err != nil {
			return err
		}

		if active != id {
			return nil
		}

		var next Profile
		err = tx.Order("created_at asc, rowid asc").First(&next).Error
		if errors.Is(err, ErrResourceNotFound) {
			return SetActiveProfile(tx, uuid.Nil)
		} else if err != nil {
			return err
		}

		return SetActiveProfile(tx, next.ID)
	})
}
