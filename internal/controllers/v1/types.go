package v1

import (
	"github.com/poupix/backend/internal/types"
	ez_uuid "github.com/poupix/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month string `form:"month" example:"2026-10"` // Year and month in YYYY-MM format
}

// month returns the month of the query. If it is not set, the current month is returned.
func (q QueryMonth) month(current types.Month) (types.Month, error) {
	if q.Month == "" {
		return current, nil
	}

	m, err := types.ParseMonth(q.Month)
	if err != nil {
		return types.Month{}, errMonthNotParseable
	}

	return m, nil
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
