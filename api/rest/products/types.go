package products

import (
	"context"

	"codeberg.org/sqlai/server/internal/agent"
	"codeberg.org/sqlai/server/internal/listing"
)

// pages through the catalog held by the upstream data API
type Lister interface {
	ListProducts(ctx context.Context, page, pageSize int) (*listing.Page, error)
}

// runs the vector-similarity search
type Searcher interface {
	SearchProducts(ctx context.Context, query string) (*agent.SearchResponse, error)
}
