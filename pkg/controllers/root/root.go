// Package root serves the entrypoint of the API.
package root

import (
	"net/http"

	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"` // Where to go from here
}

type Links struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Interactive API documentation
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`      // Answers 204 while the calendar database is reachable
	Version string `json:"version" example:"https://example.com/api/version"`      // Backend version and the date used as today
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Request and timeline cache metrics in Prometheus format
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // Profiles, transactions, budgets, goals and calendar views
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the budget calendar API, linking to the documentation, health, version, metrics and the v1 API
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
