package v1

import (
	"fmt"
	"net/http"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import/Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports the transactions, recurring transactions, categories and budgets of a profile. The result can be imported again.
// @Tags			Import/Export
// @Produce		json
// @Success		200		{object}	models.Bundle
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			profile	query		string	false	"ID of the profile. Defaults to the active profile."
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	profile, err := profileID(c.Query("profile"))
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	bundle, err := models.Export(models.DB, profile)
	if err != nil {
		c.JSON(httperror.Status(err), httperror.New(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"budget-calendar-%s.json\"", types.Today()))
	c.JSON(http.StatusOK, bundle)
}
