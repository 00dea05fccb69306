package v1

import (
	"fmt"
	"net/http"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterMatchRuleRoutes registers the routes for match rules with
// the RouterGroup that is passed.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMatchRules)
		r.GET("", GetMatchRules)
		r.POST("", CreateMatchRules)
		r.PUT("", ReplaceMatchRules)
	}

	// MatchRule with ID
	{
		r.OPTIONS("/:id", OptionsMatchRuleDetail)
		r.GET("/:id", GetMatchRule)
		r.PATCH("/:id", UpdateMatchRule)
		r.DELETE("/:id", DeleteMatchRule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Match Rules
// @Success		204
// @Router			/v1/match-rules [options]
func OptionsMatchRules(c *gin.Context) {
	httputil.OptionsGetPostPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Match Rules
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [options]
func OptionsMatchRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	_, err = getModelByID[models.MatchRule](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get match rule
// @Description	Returns a specific match rule
// @Tags			Match Rules
// @Produce		json
// @Success		200	{object}	MatchRuleResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [get]
func GetMatchRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	matchRule, err := getModelByID[models.MatchRule](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newMatchRule(c, matchRule)
	c.JSON(http.StatusOK, MatchRuleResponse{Data: &data})
}

// @Summary		Get match rules
// @Description	Returns a list of the match rules of a profile in the order they are applied
// @Tags			Match Rules
// @Produce		json
// @Success		200	{object}	MatchRuleListResponse
// @Failure		400	{object}	MatchRuleListResponse
// @Failure		404	{object}	MatchRuleListResponse
// @Failure		500	{object}	MatchRuleListResponse
// @Router			/v1/match-rules [get]
// @Param			profile		query	string	false	"ID of the profile. Defaults to the active profile."
// @Param			priority	query	uint	false	"Filter by priority"
// @Param			match		query	string	false	"Filter by match"
// @Param			category	query	string	false	"Filter by category"
// @Param			offset		query	uint	false	"The offset of the first Match Rule returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Match Rules to return. Defaults to 50."
func GetMatchRules(c *gin.Context) {
	var filter MatchRuleQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MatchRuleListResponse{Error: &s})
		return
	}

	profile, err := profileID(filter.Profile)
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), MatchRuleListResponse{Error: &s})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("priority ASC, rowid ASC").
		Where("profile_id = ?", profile).
		Where(filter.model(), queryFields...)

	if filter.Match != "" {
		q = q.Where("`match` LIKE ?", fmt.Sprintf("%%%s%%", filter.Match))
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var matchRules []models.MatchRule
	err = q.Find(&matchRules).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), MatchRuleListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(httperror.Status(err), MatchRuleListResponse{Error: &s})
		return
	}

	data := make([]MatchRule, 0, len(matchRules))
	for _, matchRule := range matchRules {
		data = append(data, newMatchRule(c, matchRule))
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create match rules
// @Description	Creates match rules from the list of submitted match rule data. The response code is the highest response code number that a single match rule creation would have caused. If it is not equal to 201, at least one match rule has an error.
// @Tags			Match Rules
// @Accept			json
// @Produce		json
// @Success		201				{object}	MatchRuleCreateResponse
// @Failure		400				{object}	MatchRuleCreateResponse
// @Failure		404				{object}	MatchRuleCreateResponse
// @Failure		500				{object}	MatchRuleCreateResponse
// @Param			profile			query		string					false	"ID of the profile. Defaults to the active profile."
// @Param			matchRules	body		[]MatchRuleEditable	true	"MatchRules"
// @Router			/v1/match-rules [post]
func CreateMatchRules(c *gin.Context) {
	var editables []MatchRuleEditable

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
	r := MatchRuleCreateResponse{}

	for _, editable := range editables {
		matchRule := editable.model()

		matchRule.ProfileID, err = ownerProfile(editable.ProfileID, fallback)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&matchRule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newMatchRule(c, matchRule)
		r.Data = append(r.Data, MatchRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Replace match rules
// @Description	Replaces all match rules of a profile with the submitted list.
// @Tags			Match Rules
// @Accept			json
// @Produce		json
// @Success		200				{object}	MatchRuleListResponse
// @Failure		400				{object}	httperror.Error
// @Failure		404				{object}	httperror.Error
// @Failure		500				{object}	httperror.Error
// @Param			profile			query		string					false	"ID of the profile. Defaults to the active profile."
// @Param			matchRules	body		[]MatchRuleEditable	true	"MatchRules"
// @Router			/v1/match-rules [put]
func ReplaceMatchRules(c *gin.Context) {
	profile, err := requireProfile(c.Query("profile"))
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var editables []MatchRuleEditable
	err = httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	rules := make([]models.MatchRule, 0, len(editables))
	for _, editable := range editables {
		rules = append(rules, editable.model())
	}

	err = models.ReplaceMatchRules(models.DB, profile, rules)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var matchRules []models.MatchRule
	err = models.DB.Where("profile_id = ?", profile).Order("priority ASC, rowid ASC").Find(&matchRules).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]MatchRule, 0, len(matchRules))
	for _, matchRule := range matchRules {
		data = append(data, newMatchRule(c, matchRule))
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{
		Data: data,
		Pagination: &Pagination{
			Count: len(data),
			Total: int64(len(data)),
			Limit: len(data),
		},
	})
}

// @Summary		Update match rule
// @Description	Updates an existing match rule. Only values to be updated need to be specified.
// @Tags			Match Rules
// @Accept			json
// @Produce		json
// @Success		200			{object}	MatchRuleResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			matchRule	body		MatchRuleEditable	true	"MatchRule"
// @Router			/v1/match-rules/{id} [patch]
func UpdateMatchRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	matchRule, err := getModelByID[models.MatchRule](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	// Fields not in the body keep their current value
	editable := matchRuleEditable(matchRule)
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	update := editable.model()
	update.DefaultModel = matchRule.DefaultModel
	update.ProfileID = matchRule.ProfileID

	err = models.DB.Save(&update).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newMatchRule(c, update)
	c.JSON(http.StatusOK, MatchRuleResponse{Data: &data})
}

// @Summary		Delete match rule
// @Description	Deletes a match rule
// @Tags			Match Rules
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/match-rules/{id} [delete]
func DeleteMatchRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	matchRule, err := getModelByID[models.MatchRule](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&matchRule).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
