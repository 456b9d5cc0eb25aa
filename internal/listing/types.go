package listing

import (
	"fmt"
	"net/http"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// reads the product catalog through Data API Builder's REST endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Page struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Products []any `json:"products"`
}

// DAB list envelope; only value is used
type dabEnvelope struct {
	Value    []any  `json:"value"`
	NextLink string `json:"nextLink,omitempty"`
}

// the upstream could not be reached at all
type UnavailableError struct {
	Dependency string
	Address    string
	Port       string
	Err        error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("error connecting to %s at %s: %v", e.Dependency, e.Address, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// client-facing text naming the dependency and where it is expected
func (e *UnavailableError) Message() string {
	return fmt.Sprintf("Error connecting to %s. Make sure %s is running on port %s.", e.Dependency, e.Dependency, e.Port)
}
