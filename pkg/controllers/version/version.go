package version

import (
	"net/http"

	"github.com/budget-calendar/backend/internal/types"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// apiVersion is replaced by the router with the version the binary was built as.
var apiVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"` // Version information
}

type Object struct {
	Version string     `json:"version" example:"1.1.0"`  // Version of the budget calendar backend
	Today   types.Date `json:"today" example:"2024-03-15"` // Date the views use when no date is requested
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	apiVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the version of the backend and the date it uses as today
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version: apiVersion,
			Today:   types.Today(),
		},
	})
}
