package v1

import (
	"fmt"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// defaultLimit is the number of resources returned by list endpoints
// when no limit is requested.
const defaultLimit = 50

var engine = ledger.NewEngine(64)

// SetCacheSize replaces the timeline cache with one that holds size
// timelines.
func SetCacheSize(size int) {
	engine = ledger.NewEngine(size)
}

// getModelByID gets a resources of a specified type by its ID.
//
// If the resources does not exist or the ID is the zero UUID, an appropriate error is returned.
func getModelByID[T models.Model](id uuid.UUID) (resource T, err error) {
	if id == uuid.Nil {
		return resource, fmt.Errorf("no %s ID specified", resource.Self())
	}

	err = models.DB.First(&resource, "id = ?", id).Error
	return resource, err
}

// profileID returns the profile a request is for.
//
// This is the profile passed in, usually from the "profile" query parameter,
// or the active profile if none is passed. uuid.Nil means that there is no profile.
func profileID(raw string) (uuid.UUID, error) {
	id, err := httputil.UUIDFromString(raw)
	if err != nil {
		return uuid.Nil, err
	}

	if id == uuid.Nil {
		return models.ActiveProfileID(models.DB)
	}

	profile, err := getModelByID[models.Profile](id)
	return profile.ID, err
}

// requireProfile is profileID for writing requests, which need a profile.
func requireProfile(raw string) (uuid.UUID, error) {
	id, err := profileID(raw)
	if err != nil {
		return uuid.Nil, err
	}

	if id == uuid.Nil {
		return uuid.Nil, models.ErrNoProfile
	}

	return id, nil
}

// view is the evaluated state of one profile.
type view struct {
	Today       types.Date
	Collections ledger.Collections
	Timeline    []ledger.Transaction // Shared, must not be modified
}

// evaluate loads the collections of the requested profile and merges
// them into the timeline for the requested day.
func evaluate(query ViewQuery) (view, error) {
	profile, err := profileID(query.Profile)
	if err != nil {
		return view{}, err
	}

	collections, err := models.LoadCollections(models.DB, profile)
	if err != nil {
		return view{}, err
	}

	today := query.Today
	if today.IsZero() {
		today = types.Today()
	}

	return view{
		Today:       today,
		Collections: collections,
		Timeline:    engine.Timeline(collections, today),
	}, nil
}

// paginate applies offset and limit to a list query. The limit defaults
// to defaultLimit unless it is set in the query.
func paginate(q *gorm.DB, setFields []string, offset uint, requested int) (*gorm.DB, int) {
	limit := defaultLimit
	if slices.Contains(setFields, "Limit") {
		limit = requested
	}

	return q.Offset(int(offset)).Limit(limit), limit
}

// ownerProfile returns the profile a created resource belongs to.
// An explicit profile ID in the body wins over the request profile.
func ownerProfile(explicit, fallback uuid.UUID) (uuid.UUID, error) {
	if explicit != uuid.Nil {
		return explicit, nil
	}

	if fallback == uuid.Nil {
		return uuid.Nil, models.ErrNoProfile
	}

	return fallback, nil
}
