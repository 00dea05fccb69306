package v1

import (
	"fmt"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable contains the editable fields of a budget.
//
// The schedule is set by Month, EndMonth and Recurring:
// a recurring budget applies from Month on, or always if Month is null.
// A budget with Month and EndMonth applies in every month of that range,
// and one with only Month applies in that month.
type BudgetEditable struct {
	ProfileID  uuid.UUID       `json:"profileId" example:"65392deb-5e92-4268-b114-297faad6cdce"`  // ID of the profile. Only used on creation, defaults to the requested profile.
	CategoryID uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category the budget is set for
	Amount     decimal.Decimal `json:"amount" example:"300" multipleOf:"0.00000001"`              // Amount available per month
	Month      *types.Month    `json:"month" example:"2024-04"`                                   // First month the budget applies to
	EndMonth   *types.Month    `json:"endMonth" example:"2024-06"`                                // Last month the budget applies to. Ignored for recurring budgets.
	Recurring  bool            `json:"recurring" example:"false" default:"false"`                 // Does the budget apply every month?
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		ProfileID:  editable.ProfileID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Month:      editable.Month,
		EndMonth:   editable.EndMonth,
		Recurring:  editable.Recurring,
	}
}

func budgetEditable(model models.Budget) BudgetEditable {
	return BudgetEditable{
		ProfileID:  model.ProfileID,
		CategoryID: model.CategoryID,
		Amount:     model.Amount,
		Month:      model.Month,
		EndMonth:   model.EndMonth,
		Recurring:  model.Recurring,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/55eecbd8-7c46-4b06-ada9-f287802fb05e"`        // The budget itself
	Profile  string `json:"profile" example:"https://example.com/api/v1/profiles/65392deb-5e92-4268-b114-297faad6cdce"`    // The profile the budget belongs to
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category the budget is set for
}

// Budget is the API representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel:   model.DefaultModel,
		BudgetEditable: budgetEditable(model),
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Profile:  fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                          // List of created budgets
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	return max(currentStatus, httperror.Status(err))
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`                                                          // The budget data, if creation was successful
}

type BudgetQueryFilter struct {
	Profile    string      `form:"profile" filterField:"false"`  // ID of the profile
	CategoryID string      `form:"category" filterField:"false"` // ID of the category
	Recurring  bool        `form:"recurring"`                    // Is the budget recurring?
	Month      types.Month `form:"month" filterField:"false"`    // Only budgets that apply in this month
	Offset     uint        `form:"offset" filterField:"false"`   // The offset of the first budget returned. Defaults to 0.
	Limit      int         `form:"limit" filterField:"false"`    // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Recurring: f.Recurring,
	}
}
