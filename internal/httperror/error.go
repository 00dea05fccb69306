// Package httperror renders errors as API responses.
package httperror

import (
	"errors"
	"net/http"

	"github.com/budget-calendar/backend/pkg/models"
)

type Error struct {
	Message string `json:"error" example:"there is no transaction matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

// Status returns the HTTP status for an error.
//
// Database failures are server errors, missing resources are not found
// and everything else is a problem with the request.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
