package v1

import (
	"net/http"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterViewRoutes registers the routes for the views derived from the
// collections of a profile with the RouterGroup that is passed.
func RegisterViewRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/timeline", OptionsView)
	r.GET("/timeline", GetTimeline)

	r.OPTIONS("/days/:date", OptionsView)
	r.GET("/days/:date", GetDay)

	r.OPTIONS("/balances", OptionsView)
	r.GET("/balances", GetBalances)

	r.OPTIONS("/months/:month/days", OptionsView)
	r.GET("/months/:month/days", GetDailyBalances)

	r.OPTIONS("/months/:month/budgets", OptionsView)
	r.GET("/months/:month/budgets", GetBudgetConsumption)

	r.OPTIONS("/months/:month/summary", OptionsView)
	r.GET("/months/:month/summary", GetMonthSummary)

	r.OPTIONS("/spending", OptionsView)
	r.GET("/spending", GetSpending)

	r.OPTIONS("/goal-projections", OptionsView)
	r.GET("/goal-projections", GetGoalProjections)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Views
// @Success		204
// @Router			/v1/timeline [options]
// @Router			/v1/days/{date} [options]
// @Router			/v1/balances [options]
// @Router			/v1/months/{month}/days [options]
// @Router			/v1/months/{month}/budgets [options]
// @Router			/v1/months/{month}/summary [options]
// @Router			/v1/spending [options]
// @Router			/v1/goal-projections [options]
func OptionsView(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get timeline
// @Description	Returns the one-off transactions of a profile together with the instances of its recurring transactions, ordered by date
// @Tags			Views
// @Produce		json
// @Success		200		{object}	TimelineResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Param			today	query		string	false	"The date used as today, formatted YYYY-MM-DD. Defaults to the current date."
// @Param			from	query		string	false	"First date to include, formatted YYYY-MM-DD"
// @Param			to		query		string	false	"Last date to include, formatted YYYY-MM-DD"
// @Router			/v1/timeline [get]
func GetTimeline(c *gin.Context) {
	var query RangeQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	if !query.From.IsZero() && !query.To.IsZero() && query.From.After(query.To) {
		c.JSON(http.StatusBadRequest, httperror.New(errFromAfterTo))
		return
	}

	v, err := evaluate(query.ViewQuery)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]ledger.Transaction, 0)
	data = append(data, ledger.SortByDate(ledger.Between(v.Timeline, query.From, query.To))...)

	c.JSON(http.StatusOK, TimelineResponse{Data: data})
}

// @Summary		Get day
// @Description	Returns the transactions and recurring instances on a day with the balance at its end
// @Tags			Views
// @Produce		json
// @Success		200		{object}	DayResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			date	path		string	true	"The day, formatted YYYY-MM-DD"
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Param			today	query		string	false	"The date used as today, formatted YYYY-MM-DD. Defaults to the current date."
// @Router			/v1/days/{date} [get]
func GetDay(c *gin.Context) {
	var uri URIDate
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var query ViewQuery
	err = c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	v, err := evaluate(query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	transactions := make([]ledger.Transaction, 0)
	transactions = append(transactions, ledger.SortByDate(ledger.OnDay(v.Timeline, uri.Date))...)

	c.JSON(http.StatusOK, DayResponse{Data: &Day{
		Date:         uri.Date,
		Transactions: transactions,
		Net:          ledger.DayNet(transactions)[uri.Date.String()],
		Balance:      ledger.BalanceAt(v.Timeline, uri.Date),
	}})
}

// @Summary		Get balances
// @Description	Returns the cumulative balances up to today and the ends of the current week, month and year
// @Tags			Views
// @Produce		json
// @Success		200		{object}	BalancesResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Param			today	query		string	false	"The date used as today, formatted YYYY-MM-DD. Defaults to the current date."
// @Router			/v1/balances [get]
func GetBalances(c *gin.Context) {
	var query ViewQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	v, err := evaluate(query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, BalancesResponse{Data: &BalanceOverview{
		Today:               v.Today,
		Horizons:            ledger.Horizons(v.Today),
		Balances:            ledger.ComputeBalances(v.Timeline, v.Today),
		ProjectedEndOfMonth: ledger.ProjectedEndOfMonth(v.Timeline, v.Today),
	}})
}

// @Summary		Get daily balances
// @Description	Returns the running balance for every day of a month
// @Tags			Views
// @Produce		json
// @Success		200		{object}	DailyBalancesResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	path		string	true	"The month, formatted YYYY-MM"
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Param			today	query		string	false	"The date used as today, formatted YYYY-MM-DD. Defaults to the current date."
// @Router			/v1/months/{month}/days [get]
func GetDailyBalances(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var query ViewQuery
	err = c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	v, err := evaluate(query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, DailyBalancesResponse{Data: ledger.DailyBalances(v.Timeline, uri.Month)})
}

// @Summary		Get budget consumption
// @Description	Returns how much of every budget active in a month has been spent
// @Tags			Views
// @Produce		json
// @Success		200		{object}	BudgetConsumptionResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	path		string	true	"The month, formatted YYYY-MM"
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Param			today	query		string	false	"The date used as today, formatted YYYY-MM-DD. Defaults to the current date."
// @Router			/v1/months/{month}/budgets [get]
func GetBudgetConsumption(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var query ViewQuery
	err = c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	v, err := evaluate(query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	consumption := ledger.Consume(v.Collections, v.Timeline, uri.Month)
	c.JSON(http.StatusOK, BudgetConsumptionResponse{Data: &BudgetConsumption{
		Consumption:    consumption,
		TotalBudgeted:  consumption.TotalBudgeted(),
		TotalRemaining: consumption.TotalRemaining(),
	}})
}

// @Summary		Get month summary
// @Description	Returns income, expenses and budgeted amounts of a month
// @Tags			Views
// @Produce		json
// @Success		200		{object}	MonthSummaryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			month	path		string	true	"The month, formatted YYYY-MM"
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Param			today	query		string	false	"The date used as today, formatted YYYY-MM-DD. Defaults to the current date."
// @Router			/v1/months/{month}/summary [get]
func GetMonthSummary(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var query ViewQuery
	err = c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	v, err := evaluate(query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	summary := ledger.Summarize(v.Timeline, v.Collections.Budgets, uri.Month)
	c.JSON(http.StatusOK, MonthSummaryResponse{Data: &summary})
}

// @Summary		Get spending by category
// @Description	Returns the expenses per category, largest first. Expenses without a category are reported as "Uncategorized".
// @Tags			Views
// @Produce		json
// @Success		200		{object}	SpendingResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Param			today	query		string	false	"The date used as today, formatted YYYY-MM-DD. Defaults to the current date."
// @Param			from	query		string	false	"First date to include, formatted YYYY-MM-DD"
// @Param			to		query		string	false	"Last date to include, formatted YYYY-MM-DD"
// @Router			/v1/spending [get]
func GetSpending(c *gin.Context) {
	var query RangeQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	if !query.From.IsZero() && !query.To.IsZero() && query.From.After(query.To) {
		c.JSON(http.StatusBadRequest, httperror.New(errFromAfterTo))
		return
	}

	v, err := evaluate(query.ViewQuery)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, SpendingResponse{Data: ledger.SpendingByCategory(v.Timeline, query.From, query.To)})
}

// @Summary		Get goal projections
// @Description	Projects when every goal is reached, once from the current balance and average savings and once after reserving what is left of this month's budgets
// @Tags			Views
// @Produce		json
// @Success		200		{object}	GoalProjectionsResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Param			today	query		string	false	"The date used as today, formatted YYYY-MM-DD. Defaults to the current date."
// @Router			/v1/goal-projections [get]
func GetGoalProjections(c *gin.Context) {
	var query ViewQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	v, err := evaluate(query)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var goals []models.Goal
	err = models.DB.Order("created_at ASC, rowid ASC").Find(&goals).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	ledgerGoals := make([]ledger.Goal, 0, len(goals))
	for _, goal := range goals {
		ledgerGoals = append(ledgerGoals, goal.Ledger())
	}

	remaining := ledger.Consume(v.Collections, v.Timeline, v.Today.Month()).TotalRemaining()
	inputs := ledger.NewProjectionInputs(v.Timeline, remaining, v.Today)

	c.JSON(http.StatusOK, GoalProjectionsResponse{Data: &GoalProjections{
		Inputs: inputs,
		Goals:  ledger.ProjectGoals(ledgerGoals, inputs, v.Today),
	}})
}
