package v1

import (
	"fmt"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileLinks struct {
	Self                  string `json:"self" example:"https://example.com/api/v1/profiles/d430d7c3-d14c-4712-9336-ee56965a6673"`                                        // The profile itself
	Transactions          string `json:"transactions" example:"https://example.com/api/v1/transactions?profile=d430d7c3-d14c-4712-9336-ee56965a6673"`                    // Transactions of the profile
	RecurringTransactions string `json:"recurringTransactions" example:"https://example.com/api/v1/recurring-transactions?profile=d430d7c3-d14c-4712-9336-ee56965a6673"` // Recurring transactions of the profile
	Categories            string `json:"categories" example:"https://example.com/api/v1/categories?profile=d430d7c3-d14c-4712-9336-ee56965a6673"`                        // Categories of the profile
	Budgets               string `json:"budgets" example:"https://example.com/api/v1/budgets?profile=d430d7c3-d14c-4712-9336-ee56965a6673"`                              // Budgets of the profile
	Export                string `json:"export" example:"https://example.com/api/v1/export?profile=d430d7c3-d14c-4712-9336-ee56965a6673"`                                // Backup of the profile
}

// Profile is the API representation of a Profile.
type Profile struct {
	models.DefaultModel
	models.ProfileEditable
	Active bool         `json:"active" example:"true"` // Is this the active profile?
	Links  ProfileLinks `json:"links"`
}

func newProfile(c *gin.Context, model models.Profile, active uuid.UUID) Profile {
	url := c.GetString(string(models.DBContextURL))
	query := fmt.Sprintf("?profile=%s", model.ID)

	return Profile{
		DefaultModel:    model.DefaultModel,
		ProfileEditable: model.ProfileEditable,
		Active:          model.ID == active,
		Links: ProfileLinks{
			Self:                  fmt.Sprintf("%s/v1/profiles/%s", url, model.ID),
			Transactions:          url + "/v1/transactions" + query,
			RecurringTransactions: url + "/v1/recurring-transactions" + query,
			Categories:            url + "/v1/categories" + query,
			Budgets:               url + "/v1/budgets" + query,
			Export:                url + "/v1/export" + query,
		},
	}
}

type ProfileListResponse struct {
	Data  []Profile `json:"data"`                                                          // List of profiles
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                                          // Data for the profile
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProfileCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProfileResponse `json:"data"`                                                          // List of created profiles
}

func (r *ProfileCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ProfileResponse{Error: &s})

	return max(currentStatus, httperror.Status(err))
}

type ActiveProfile struct {
	ID *uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the active profile, null if there is none
}

type ActiveProfileResponse struct {
	Data  *ActiveProfile `json:"data"`                                                          // The active profile
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
