// Package ebay provides the eBay Browse API collaborators (OAuth token
// provider and catalog search client) behind interfaces for testability.
package ebay

import (
	"context"
)

// SearchRequest defines the parameters for a single Browse API search.
type SearchRequest struct {
	Query       string
	Filter      string // comma-joined Browse API filter expression
	CategoryIDs string // comma-joined category IDs, empty for no restriction
	Limit       int
}

// SearchResponse holds the raw results of a Browse API search.
type SearchResponse struct {
	Items []ItemSummary
	Total int
}

// CatalogClient executes catalog searches against the marketplace.
type CatalogClient interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// TokenProvider supplies OAuth2 bearer tokens on demand.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
