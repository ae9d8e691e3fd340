package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params holds the page size requested by the client
type Params struct {
	Limit int
}

// Meta holds pagination metadata for response
type Meta struct {
	Limit   int  `json:"limit"`
	Count   int  `json:"count"`
	HasMore bool `json:"has_more"`
}

// NewMeta reports a full page as possibly having more rows behind it
func NewMeta(params Params, count int) Meta {
	return Meta{
		Limit:   params.Limit,
		Count:   count,
		HasMore: count >= params.Limit,
	}
}

// DefaultParams returns pagination params with defaults applied
// defaultLimit: default items per page, maxLimit: maximum allowed limit
func DefaultParams(limit, defaultLimit, maxLimit int) Params {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Params{Limit: limit}
}

// FromQuery reads ?limit=; unparseable values fall back to the default
func FromQuery(c *gin.Context, defaultLimit, maxLimit int) Params {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0
	}
	return DefaultParams(limit, defaultLimit, maxLimit)
}
