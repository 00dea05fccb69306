package v1

import (
	"errors"
)

var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
	errNoFilePost          = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix     = errors.New("this endpoint only supports .json files")
	errInvalidBundle       = errors.New("the uploaded file is not a valid backup")
	errFromAfterTo         = errors.New("the from date must not be after the to date")
)
