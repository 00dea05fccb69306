// Package healthz reports whether the backend can serve requests.
package healthz

import (
	"errors"
	"net/http"

	"github.com/budget-calendar/backend/internal/httperror"
	"github.com/budget-calendar/backend/pkg/httputil"
	"github.com/budget-calendar/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var ErrDatabaseUnreachable = errors.New("the calendar database is not reachable")

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns 204 when the calendar database answers, 500 otherwise
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		log.Error().Err(err).Msg("Health check failed")
		c.JSON(http.StatusInternalServerError, httperror.New(ErrDatabaseUnreachable))
		return
	}

	c.Status(http.StatusNoContent)
}
