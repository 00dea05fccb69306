package httputil

import "errors"

// Errors for requests that are rejected before any record is touched.
var (
	ErrInvalidBody      = errors.New("the request body could not be read as the expected JSON, nothing was changed")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
)
