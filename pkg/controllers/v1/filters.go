package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters filters goals by name, notes and a search string matched
// against both. A name or notes parameter that is set but empty matches
// the empty string.
func stringFilters(db, query *gorm.DB, setFields []string, name, notes, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if notes != "" {
		query = query.Where("notes LIKE ?", fmt.Sprintf("%%%s%%", notes))
	} else if slices.Contains(setFields, "Notes") {
		query = query.Where("notes = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("notes LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
