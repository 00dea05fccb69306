package v1

import (
	"fmt"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name   string          `json:"name" example:"New TV" default:""`                                      // Name of the goal
	Target decimal.Decimal `json:"target" example:"789" minimum:"0.00000001" multipleOf:"0.00000001"`     // Balance to reach
	Notes  string          `json:"notes" example:"We want to replace the old CRT TV soon-ish" default:""` // Notes about the goal
}

func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Name:   editable.Name,
		Target: editable.Target,
		Notes:  editable.Notes,
	}
}

func goalEditable(model models.Goal) GoalEditable {
	return GoalEditable{
		Name:   model.Name,
		Target: model.Target,
		Notes:  model.Notes,
	}
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-47fe-9d3d-d1dd3cf6b5a7"` // The goal itself
}

// Goal is the API representation of a Goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: goalEditable(model),
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                                          // List of created goals
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	return max(currentStatus, httperror.Status(err))
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this goal
	Data  *Goal   `json:"data"`                                                          // The goal data, if creation was successful
}

type GoalQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Notes  string `form:"notes" filterField:"false"`  // By notes
	Search string `form:"search" filterField:"false"` // By string in name or notes
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}
