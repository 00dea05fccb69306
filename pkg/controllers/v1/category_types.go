package v1

import (
	"fmt"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoryEditable struct {
	ProfileID uuid.UUID `json:"profileId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the profile. Only used on creation, defaults to the requested profile.
	Name      string    `json:"name" example:"Food"`                                      // Name of the category. Transactions are matched to budgets by this name.
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		ProfileID: editable.ProfileID,
		Name:      editable.Name,
	}
}

func categoryEditable(model models.Category) CategoryEditable {
	return CategoryEditable{
		ProfileID: model.ProfileID,
		Name:      model.Name,
	}
}

type CategoryLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`          // The category itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/65392deb-5e92-4268-b114-297faad6cdce"`         // The profile the category belongs to
	Budgets string `json:"budgets" example:"https://example.com/api/v1/budgets?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Budgets set for the category
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel:     model.DefaultModel,
		CategoryEditable: categoryEditable(model),
		Links: CategoryLinks{
			Self:    fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
			Budgets: fmt.Sprintf("%s/v1/budgets?profile=%s&category=%s", url, model.ProfileID, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created categories
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	return max(currentStatus, httperror.Status(err))
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                                          // The category data, if creation was successful
}

type CategoryQueryFilter struct {
	Profile string `form:"profile" filterField:"false"` // ID of the profile
	Name    string `form:"name"`                        // Exact name
	Search  string `form:"search" filterField:"false"`  // Name contains this string
	Offset  uint   `form:"offset" filterField:"false"`  // The offset of the first category returned. Defaults to 0.
	Limit   int    `form:"limit" filterField:"false"`   // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Name: f.Name,
	}
}
