package v1

import (
	"github.com/budget-calendar/backend/internal/types"
	bc_uuid "github.com/budget-calendar/backend/internal/uuid"
)

type URIID struct {
	ID bc_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIDate struct {
	Date types.Date `uri:"date" binding:"required" example:"2024-03-15"` // Date in YYYY-MM-DD format
}

type URIMonth struct {
	Month types.Month `uri:"month" binding:"required" example:"2024-03"` // Year and month in YYYY-MM format
}

// ViewQuery contains the parameters every derived view accepts.
type ViewQuery struct {
	Profile string     `form:"profile" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the profile. Defaults to the active profile.
	Today   types.Date `form:"today" example:"2024-03-15"`                             // The date used as today. Defaults to the current date in UTC.
}

// RangeQuery contains the parameters for views that can be limited to a date range.
type RangeQuery struct {
	ViewQuery
	From types.Date `form:"from" example:"2024-03-01"` // First date to include
	To   types.Date `form:"to" example:"2024-03-31"`   // Last date to include
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
