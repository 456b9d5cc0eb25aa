package pagination

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params holds page-number pagination parameters from request
type Params struct {
	Page     int
	PageSize int
}

// Offset returns the number of items before the requested page
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// FromQuery reads page and page_size (or pageSize) from the query string.
// absent values take the defaults; present values must be integers.
func FromQuery(c *gin.Context) (Params, error) {
	page, err := intQuery(c, DefaultPage, "page")
	if err != nil {
		return Params{}, err
	}

	pageSize, err := intQuery(c, DefaultPageSize, "page_size", "pageSize")
	if err != nil {
		return Params{}, err
	}

	return DefaultParams(page, pageSize), nil
}

// DefaultParams returns pagination params with defaults applied
func DefaultParams(page, pageSize int) Params {
	if page < 1 {
		page = DefaultPage
	}

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return Params{
		Page:     page,
		PageSize: pageSize,
	}
}

// first present key wins
func intQuery(c *gin.Context, fallback int, keys ...string) (int, error) {
	for _, key := range keys {
		raw, ok := c.GetQuery(key)
		if !ok {
			continue
		}

		value, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer", key)
		}

		return value, nil
	}

	return fallback, nil
}
