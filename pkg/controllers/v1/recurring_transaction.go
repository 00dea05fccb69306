package v1

import (
	"net/http"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/ledger"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterRecurringTransactionRoutes registers the routes for recurring transactions with
// the RouterGroup that is passed.
func RegisterRecurringTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRecurringTransactions)
		r.GET("", GetRecurringTransactions)
		r.POST("", CreateRecurringTransactions)
		r.PUT("", ReplaceRecurringTransactions)
	}

	// RecurringTransaction with ID
	{
		r.OPTIONS("/:id", OptionsRecurringTransactionDetail)
		r.GET("/:id", GetRecurringTransaction)
		r.PATCH("/:id", UpdateRecurringTransaction)
		r.DELETE("/:id", DeleteRecurringTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Transactions
// @Success		204
// @Router			/v1/recurring-transactions [options]
func OptionsRecurringTransactions(c *gin.Context) {
	httputil.OptionsGetPostPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-transactions/{id} [options]
func OptionsRecurringTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	_, err = getModelByID[models.RecurringTransaction](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get recurring transaction
// @Description	Returns a specific recurring transaction
// @Tags			Recurring Transactions
// @Produce		json
// @Success		200	{object}	RecurringTransactionResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-transactions/{id} [get]
func GetRecurringTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	recurringTransaction, err := getModelByID[models.RecurringTransaction](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newRecurringTransaction(c, recurringTransaction)
	c.JSON(http.StatusOK, RecurringTransactionResponse{Data: &data})
}

// @Summary		Get recurring transactions
// @Description	Returns a list of the recurring transactions of a profile
// @Tags			Recurring Transactions
// @Produce		json
// @Success		200	{object}	RecurringTransactionListResponse
// @Failure		400	{object}	RecurringTransactionListResponse
// @Failure		404	{object}	RecurringTransactionListResponse
// @Failure		500	{object}	RecurringTransactionListResponse
// @Router			/v1/recurring-transactions [get]
// @Param			profile		query	string	false	"ID of the profile. Defaults to the active profile."
// @Param			type		query	string	false	"Filter by schedule"
// @Param			category	query	string	false	"Filter by category"
// @Param			offset		query	uint	false	"The offset of the first Recurring Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Recurring Transactions to return. Defaults to 50."
func GetRecurringTransactions(c *gin.Context) {
	var filter RecurringTransactionQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RecurringTransactionListResponse{Error: &s})
		return
	}

	profile, err := profileID(filter.Profile)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), RecurringTransactionListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("start_date ASC, rowid ASC").
		Where("profile_id = ?", profile).
		Where(filter.model(), queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var recurringTransactions []models.RecurringTransaction
	err = q.Find(&recurringTransactions).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), RecurringTransactionListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), RecurringTransactionListResponse{Error: &s})
		return
	}

	data := make([]RecurringTransaction, 0, len(recurringTransactions))
	for _, recurringTransaction := range recurringTransactions {
		data = append(data, newRecurringTransaction(c, recurringTransaction))
	}

	c.JSON(http.StatusOK, RecurringTransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create recurring transactions
// @Description	Creates recurring transactions from the list of submitted recurring transaction data. The response code is the highest response code number that a single recurring transaction creation would have caused. If it is not equal to 201, at least one recurring transaction has an error.
// @Tags			Recurring Transactions
// @Accept			json
// @Produce		json
// @Success		201				{object}	RecurringTransactionCreateResponse
// @Failure		400				{object}	RecurringTransactionCreateResponse
// @Failure		404				{object}	RecurringTransactionCreateResponse
// @Failure		500				{object}	RecurringTransactionCreateResponse
// @Param			profile			query		string					false	"ID of the profile. Defaults to the active profile."
// @Param			recurringTransactions	body		[]RecurringTransactionEditable	true	"RecurringTransactions"
// @Router			/v1/recurring-transactions [post]
func CreateRecurringTransactions(c *gin.Context) {
	var editables []RecurringTransactionEditable

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
	r := RecurringTransactionCreateResponse{}

	for _, editable := range editables {
		recurringTransaction := editable.model()

		recurringTransaction.ProfileID, err = ownerProfile(editable.ProfileID, fallback)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&recurringTransaction).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newRecurringTransaction(c, recurringTransaction)
		r.Data = append(r.Data, RecurringTransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Replace recurring transactions
// @Description	Replaces all recurring transactions of a profile with the submitted list. IDs that are not UUIDs are replaced.
// @Tags			Recurring Transactions
// @Accept			json
// @Produce		json
// @Success		200				{object}	RecurringTransactionListResponse
// @Failure		400				{object}	httperror.Error
// @Failure		404				{object}	httperror.Error
// @Failure		500				{object}	httperror.Error
// @Param			profile			query		string					false	"ID of the profile. Defaults to the active profile."
// @Param			recurringTransactions	body		[]ledger.Rule	true	"RecurringTransactions"
// @Router			/v1/recurring-transactions [put]
func ReplaceRecurringTransactions(c *gin.Context) {
	profile, err := requireProfile(c.Query("profile"))
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var items []ledger.Rule
	err = httputil.BindData(c, &items)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.SaveRecurrings(models.DB, profile, items)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var recurringTransactions []models.RecurringTransaction
	err = models.DB.Where("profile_id = ?", profile).Order("start_date ASC, rowid ASC").Find(&recurringTransactions).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]RecurringTransaction, 0, len(recurringTransactions))
	for _, recurringTransaction := range recurringTransactions {
		data = append(data, newRecurringTransaction(c, recurringTransaction))
	}

	c.JSON(http.StatusOK, RecurringTransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Total: int64(len(data)),
			Limit: len(data),
		},
	})
}

// @Summary		Update recurring transaction
// @Description	Updates an existing recurring transaction. Only values to be updated need to be specified.
// @Tags			Recurring Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	RecurringTransactionResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			recurringTransaction	body		RecurringTransactionEditable	true	"RecurringTransaction"
// @Router			/v1/recurring-transactions/{id} [patch]
func UpdateRecurringTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	recurringTransaction, err := getModelByID[models.RecurringTransaction](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	// Fields not in the body keep their current value
	editable := recurringTransactionEditable(recurringTransaction)
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	update := editable.model()
	update.DefaultModel = recurringTransaction.DefaultModel
	update.ProfileID = recurringTransaction.ProfileID

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newRecurringTransaction(c, update)
	c.JSON(http.StatusOK, RecurringTransactionResponse{Data: &data})
}

// @Summary		Delete recurring transaction
// @Description	Deletes a recurring transaction
// @Tags			Recurring Transactions
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-transactions/{id} [delete]
func DeleteRecurringTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	recurringTransaction, err := getModelByID[models.RecurringTransaction](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&recurringTransaction).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
