package v1

import (
	"fmt"
	"net/http"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", CreateBudgets)
		r.PUT("", ReplaceBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.GET("/:id", GetBudget)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPostPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	_, err = getModelByID[models.Budget](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	budget, err := getModelByID[models.Budget](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Get budgets
// @Description	Returns a list of the budgets of a profile
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		404	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			profile		query	string	false	"ID of the profile. Defaults to the active profile."
// @Param			category	query	string	false	"Filter by category ID"
// @Param			recurring	query	bool	false	"Filter by recurrence"
// @Param			month		query	string	false	"Only budgets that apply in this month, formatted YYYY-MM"
// @Param			offset		query	uint	false	"The offset of the first Budget returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Budgets to return. Defaults to 50."
func GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{Error: &s})
		return
	}

	profile, err := profileID(filter.Profile)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), BudgetListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("month ASC, rowid ASC").
		Where("profile_id = ?", profile).
		Where(filter.model(), queryFields...)

	if filter.CategoryID != "" {
		categoryID, err := httputil.UUIDFromString(filter.CategoryID)
		if err != nil {
			s := fmt.Sprintf("Error parsing category ID for filtering: %s", err.Error())
			c.JSON(httperror.Status(err), BudgetListResponse{Error: &s})
			return
		}
		q = q.Where("category_id = ?", categoryID)
	}

	// Same rules as ledger.Budget.ActiveIn. Ranges are never stored
	// with the end before the start.
	if !filter.Month.IsZero() {
		month := filter.Month.String()
		q = q.Where(models.DB.
			Where("recurring AND (month IS NULL OR month <= ?)", month).
			Or("NOT recurring AND end_month IS NOT NULL AND month <= ? AND end_month >= ?", month, month).
			Or("NOT recurring AND end_month IS NULL AND month = ?", month))
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var budgets []models.Budget
	err = q.Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), BudgetListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), BudgetListResponse{Error: &s})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create budgets
// @Description	Creates budgets from the list of submitted budget data. The response code is the highest response code number that a single budget creation would have caused. If it is not equal to 201, at least one budget has an error.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201				{object}	BudgetCreateResponse
// @Failure		400				{object}	BudgetCreateResponse
// @Failure		404				{object}	BudgetCreateResponse
// @Failure		500				{object}	BudgetCreateResponse
// @Param			profile			query		string					false	"ID of the profile. Defaults to the active profile."
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	fallback, err := profileID(c.Query("profile"))
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model()

		budget.ProfileID, err = ownerProfile(editable.ProfileID, fallback)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&budget).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(c, budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Replace budgets
// @Description	Replaces all budgets of a profile with the submitted list. IDs that are not UUIDs are replaced. Category IDs are not checked.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200				{object}	BudgetListResponse
// @Failure		400				{object}	httperror.Error
// @Failure		404				{object}	httperror.Error
// @Failure		500				{object}	httperror.Error
// @Param			profile			query		string					false	"ID of the profile. Defaults to the active profile."
// @Param			budgets	body		[]ledger.Budget	true	"Budgets"
// @Router			/v1/budgets [put]
func ReplaceBudgets(c *gin.Context) {
	profile, err := requireProfile(c.Query("profile"))
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var items []ledger.Budget
	err = httputil.BindData(c, &items)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.SaveBudgets(models.DB, profile, items)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var budgets []models.Budget
	err = models.DB.Where("profile_id = ?", profile).Order("month ASC, rowid ASC").Find(&budgets).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Total: int64(len(data)),
			Limit: len(data),
		},
	})
}

// @Summary		Update budget
// @Description	Updates an existing budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	budget, err := getModelByID[models.Budget](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	// Fields not in the body keep their current value
	editable := budgetEditable(budget)
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	update := editable.model()
	update.DefaultModel = budget.DefaultModel
	update.ProfileID = budget.ProfileID

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newBudget(c, update)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	budget, err := getModelByID[models.Budget](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&budget).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
