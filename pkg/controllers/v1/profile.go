package v1

import (
	"net/http"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterProfileRoutes registers the routes for profiles with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProfileList)
		r.GET("", GetProfiles)
		r.POST("", CreateProfiles)
	}

	// Profile with ID
	{
		r.OPTIONS("/:id", OptionsProfileDetail)
		r.GET("/:id", GetProfile)
		r.PATCH("/:id", UpdateProfile)
		r.DELETE("/:id", DeleteProfile)
	}
}

// RegisterActiveProfileRoutes registers the routes for the active profile
// with the RouterGroup that is passed.
func RegisterActiveProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsActiveProfile)
	r.GET("", GetActiveProfile)
	r.PUT("", SetActiveProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles [options]
func OptionsProfileList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [options]
func OptionsProfileDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	_, err = getModelByID[models.Profile](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create profiles
// @Description	Creates profiles. The last profile created becomes the active one.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		201			{object}	ProfileCreateResponse
// @Failure		400			{object}	ProfileCreateResponse
// @Failure		500			{object}	ProfileCreateResponse
// @Param			profiles	body		[]models.ProfileEditable	true	"Profiles"
// @Router			/v1/profiles [post]
func CreateProfiles(c *gin.Context) {
	var editables []models.ProfileEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ProfileCreateResponse{}

	var created []models.Profile
	for _, editable := range editables {
		profile, err := models.CreateProfile(models.DB, editable)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		created = append(created, profile)
		r.Data = append(r.Data, ProfileResponse{})
	}

	// Render after all profiles are created so that "active" is correct
	active, err := models.ActiveProfileID(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	i := 0
	for j := range r.Data {
		if r.Data[j].Error != nil {
			continue
		}
		data := newProfile(c, created[i], active)
		r.Data[j].Data = &data
		i++
	}

	c.JSON(status, r)
}

// @Summary		List profiles
// @Description	Returns all profiles, oldest first
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileListResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/profiles [get]
func GetProfiles(c *gin.Context) {
	var profiles []models.Profile
	err := models.DB.Order("created_at asc, rowid asc").Find(&profiles).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	active, err := models.ActiveProfileID(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := make([]Profile, 0, len(profiles))
	for _, profile := range profiles {
		data = append(data, newProfile(c, profile, active))
	}

	c.JSON(http.StatusOK, ProfileListResponse{Data: data})
}

// @Summary		Get profile
// @Description	Returns a specific profile
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [get]
func GetProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	profile, err := getModelByID[models.Profile](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	active, err := models.ActiveProfileID(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newProfile(c, profile, active)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Update an existing profile. Only values to be updated need to be specified.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			profile	body		models.ProfileEditable	true	"Profile"
// @Router			/v1/profiles/{id} [patch]
func UpdateProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	profile, err := getModelByID[models.Profile](uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = httputil.BindData(c, &profile.ProfileEditable)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DB.Save(&profile).Error
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	active, err := models.ActiveProfileID(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	data := newProfile(c, profile, active)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Delete profile
// @Description	Deletes a profile with all of its transactions, recurring transactions, categories, budgets and match rules. If it was the active profile, the oldest remaining profile becomes active.
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [delete]
func DeleteProfile(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	err = models.DeleteProfile(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/active-profile [options]
func OptionsActiveProfile(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get active profile
// @Description	Returns the ID of the active profile. Requests without a profile parameter use this profile.
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ActiveProfileResponse
// @Failure		500	{object}	httperror.Error
// @Router			/v1/active-profile [get]
func GetActiveProfile(c *gin.Context) {
	active, err := models.ActiveProfileID(models.DB)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	var data ActiveProfile
	if active != uuid.Nil {
		data.ID = &active
	}

	c.JSON(http.StatusOK, ActiveProfileResponse{Data: &data})
}

// @Summary		Switch profile
// @Description	Sets the active profile. Send null as ID to clear it.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ActiveProfileResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			profile	body		ActiveProfile	true	"Active profile"
// @Router			/v1/active-profile [put]
func SetActiveProfile(c *gin.Context) {
	var data ActiveProfile
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	id := uuid.Nil
	if data.ID != nil {
		id = *data.ID
	}

	err = models.SetActiveProfile(models.DB, id)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, ActiveProfileResponse{Data: &data})
}
