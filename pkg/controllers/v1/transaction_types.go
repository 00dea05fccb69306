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

type TransactionEditable struct {
	ProfileID   uuid.UUID  `json:"profileId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the profile. Only used on creation, defaults to the requested profile.
	Date        types.Date `json:"date" example:"2024-03-15"`                                // Date of the transaction
	Description string     `json:"description" example:"Supermarket" default:""`             // Description of the transaction

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"-80.50" minimum:"-999999999999.99999999" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Positive for income, negative for expenses

	Category string     `json:"category" example:"Food" default:""`                      // Category label. If empty on creation, match rules are applied.
	BudgetID *uuid.UUID `json:"budgetId" example:"55eecbd8-7c46-4b06-ada9-f287802fb05e"` // ID of the budget the expense is linked to
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		ProfileID:   editable.ProfileID,
		Date:        editable.Date,
		Description: editable.Description,
		Amount:      editable.Amount,
		Category:    editable.Category,
		BudgetID:    editable.BudgetID,
	}
}

func transactionEditable(model models.Transaction) TransactionEditable {
	return TransactionEditable{
		ProfileID:   model.ProfileID,
		Date:        model.Date,
		Description: model.Description,
		Amount:      model.Amount,
		Category:    model.Category,
		BudgetID:    model.BudgetID,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/65392deb-5e92-4268-b114-297faad6cdce"`  // The profile the transaction belongs to
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel:        model.DefaultModel,
		TransactionEditable: transactionEditable(model),
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	return max(currentStatus, httperror.Status(err))
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Profile     string     `form:"profile" filterField:"false"`     // ID of the profile
	FromDate    types.Date `form:"fromDate" filterField:"false"`    // From this date
	UntilDate   types.Date `form:"untilDate" filterField:"false"`   // Until this date
	Description string     `form:"description" filterField:"false"` // Description contains this string
	Category    string     `form:"category"`                        // Exact category label
	BudgetID    string     `form:"budget" filterField:"false"`      // ID of the linked budget
	Offset      uint       `form:"offset" filterField:"false"`      // The offset of the first transaction returned. Defaults to 0.
	Limit       int        `form:"limit" filterField:"false"`       // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Category: f.Category,
	}
}
