package v1

import (
	"fmt"
	"time"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecurringTransactionEditable struct {
	ProfileID   uuid.UUID        `json:"profileId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the profile. Only used on creation, defaults to the requested profile.
	Description string           `json:"description" example:"Rent" default:""`                    // Description of the generated transactions
	Amount      decimal.Decimal  `json:"amount" example:"-900" multipleOf:"0.00000001"`            // Amount of every generated transaction
	Frequency   ledger.Frequency `json:"type" example:"monthly" enums:"monthly,biweekly"`          // The schedule
	DayOfMonth  int              `json:"dayOfMonth" example:"1" minimum:"1" maximum:"31"`          // Day of the month, monthly schedules only. Clamped to the last day of shorter months.
	DayOfWeek   time.Weekday     `json:"dayOfWeek" example:"5" minimum:"0" maximum:"6"`            // Day of the week from 0 (Sunday) to 6, biweekly schedules only
	StartDate   types.Date       `json:"startDate" example:"2024-01-01"`                           // First date a transaction can be generated for
	EndDate     *types.Date      `json:"endDate" example:"2024-12-31"`                             // Last date a transaction can be generated for. Defaults to the end of the current year.
	Category    string           `json:"category" example:"Housing" default:""`                    // Category label of the generated transactions
	BudgetID    *uuid.UUID       `json:"budgetId" example:"55eecbd8-7c46-4b06-ada9-f287802fb05e"`  // ID of the budget the generated transactions are linked to
}

// model returns the database resource for the API representation of the editable fields
func (editable RecurringTransactionEditable) model() models.RecurringTransaction {
	return models.RecurringTransaction{
		ProfileID:   editable.ProfileID,
		Description: editable.Description,
		Amount:      editable.Amount,
		Frequency:   editable.Frequency,
		DayOfMonth:  editable.DayOfMonth,
		DayOfWeek:   editable.DayOfWeek,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
		Category:    editable.Category,
		BudgetID:    editable.BudgetID,
	}
}

func recurringTransactionEditable(model models.RecurringTransaction) RecurringTransactionEditable {
	return RecurringTransactionEditable{
		ProfileID:   model.ProfileID,
		Description: model.Description,
		Amount:      model.Amount,
		Frequency:   model.Frequency,
		DayOfMonth:  model.DayOfMonth,
		DayOfWeek:   model.DayOfWeek,
		StartDate:   model.StartDate,
		EndDate:     model.EndDate,
		Category:    model.Category,
		BudgetID:    model.BudgetID,
	}
}

type RecurringTransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/recurring-transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The recurring transaction itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/65392deb-5e92-4268-b114-297faad6cdce"`            // The profile the recurring transaction belongs to
}

// RecurringTransaction is the API representation of a RecurringTransaction.
type RecurringTransaction struct {
	models.DefaultModel
	RecurringTransactionEditable
	Links RecurringTransactionLinks `json:"links"`
}

func newRecurringTransaction(c *gin.Context, model models.RecurringTransaction) RecurringTransaction {
	url := c.GetString(string(models.DBContextURL))

	return RecurringTransaction{
		DefaultModel:                 model.DefaultModel,
		RecurringTransactionEditable: recurringTransactionEditable(model),
		Links: RecurringTransactionLinks{
			Self:    fmt.Sprintf("%s/v1/recurring-transactions/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
	}
}

type RecurringTransactionListResponse struct {
	Data       []RecurringTransaction `json:"data"`                                                          // List of recurring transactions
	Error      *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination            `json:"pagination"`                                                    // Pagination information
}

type RecurringTransactionCreateResponse struct {
	Error *string                        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RecurringTransactionResponse `json:"data"`                                                          // List of created recurring transactions
}

func (r *RecurringTransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RecurringTransactionResponse{Error: &s})

	return max(currentStatus, httperror.Status(err))
}

type RecurringTransactionResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this recurring transaction
	Data  *RecurringTransaction `json:"data"`                                                          // The recurring transaction data, if creation was successful
}

type RecurringTransactionQueryFilter struct {
	Profile   string           `form:"profile" filterField:"false"` // ID of the profile
	Frequency ledger.Frequency `form:"type"`                        // The schedule
	Category  string           `form:"category"`                    // Exact category label
	Offset    uint             `form:"offset" filterField:"false"`  // The offset of the first recurring transaction returned. Defaults to 0.
	Limit     int              `form:"limit" filterField:"false"`   // Maximum number of recurring transactions to return. Defaults to 50.
}

func (f RecurringTransactionQueryFilter) model() models.RecurringTransaction {
	return models.RecurringTransaction{
		Frequency: f.Frequency,
		Category:  f.Category,
	}
}
