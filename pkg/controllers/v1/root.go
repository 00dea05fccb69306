package v1

import (
	"net/http"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	RegisterRootRoutes(r)
	RegisterProfileRoutes(r.Group("/profiles"))
	RegisterActiveProfileRoutes(r.Group("/active-profile"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterRecurringTransactionRoutes(r.Group("/recurring-transactions"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterBudgetRoutes(r.Group("/budgets"))
	RegisterMatchRuleRoutes(r.Group("/match-rules"))
	RegisterGoalRoutes(r.Group("/goals"))
	RegisterViewRoutes(r)
	RegisterExportRoutes(r.Group("/export"))
	RegisterImportRoutes(r.Group("/import"))
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Profiles              string `json:"profiles" example:"https://example.com/api/v1/profiles"`                           // URL of Profile collection endpoint
	ActiveProfile         string `json:"activeProfile" example:"https://example.com/api/v1/active-profile"`                // URL of the active profile endpoint
	Transactions          string `json:"transactions" example:"https://example.com/api/v1/transactions"`                   // URL of Transaction collection endpoint
	RecurringTransactions string `json:"recurringTransactions" example:"https://example.com/api/v1/recurring-transactions"` // URL of Recurring Transaction collection endpoint
	Categories            string `json:"categories" example:"https://example.com/api/v1/categories"`                       // URL of Category collection endpoint
	Budgets               string `json:"budgets" example:"https://example.com/api/v1/budgets"`                             // URL of Budget collection endpoint
	MatchRules            string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`                      // URL of Match Rule collection endpoint
	Goals                 string `json:"goals" example:"https://example.com/api/v1/goals"`                                 // URL of Goal collection endpoint
	Timeline              string `json:"timeline" example:"https://example.com/api/v1/timeline"`                           // URL of the timeline
	Balances              string `json:"balances" example:"https://example.com/api/v1/balances"`                           // URL of the balance overview
	Spending              string `json:"spending" example:"https://example.com/api/v1/spending"`                           // URL of the spending by category
	GoalProjections       string `json:"goalProjections" example:"https://example.com/api/v1/goal-projections"`            // URL of the goal projections
	Export                string `json:"export" example:"https://example.com/api/v1/export"`                               // URL of the export endpoint
	Import                string `json:"import" example:"https://example.com/api/v1/import"`                               // URL of the import endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Profiles:              url + "/profiles",
			ActiveProfile:         url + "/active-profile",
			Transactions:          url + "/transactions",
			RecurringTransactions: url + "/recurring-transactions",
			Categories:            url + "/categories",
			Budgets:               url + "/budgets",
			MatchRules:            url + "/match-rules",
			Goals:                 url + "/goals",
			Timeline:              url + "/timeline",
			Balances:              url + "/balances",
			Spending:              url + "/spending",
			GoalProjections:       url + "/goal-projections",
			Export:                url + "/export",
			Import:                url + "/import",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all profiles, their data and all goals
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httperror.New(errCleanupConfirmation))
		return
	}

	err = models.DeleteAll(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
