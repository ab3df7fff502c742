package client

import (
	"context"

	"github.com/mgoodall/listing-finder/internal/search"
)

// SearchParams defines the body of a search request.
type SearchParams struct {
	Query       string  `json:"query"`
	Category    string  `json:"category,omitempty"`
	MaxPrice    float64 `json:"max_price"`
	ListingType string  `json:"listing_type,omitempty"`
	Limit       int     `json:"limit,omitempty"`
}

// SearchResponse wraps a search response.
type SearchResponse struct {
	Results   []search.Listing `json:"results"`
	Count     int              `json:"count"`
	NoMatches bool             `json:"no_matches"`
}

// Search runs a catalog search with the given criteria.
func (c *Client) Search(ctx context.Context, params *SearchParams) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.post(ctx, "/api/v1/search", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Category is one catalog category entry.
type Category struct {
	Name string   `json:"name"`
	IDs  []string `json:"ids,omitempty"`
}

// Categories returns the supported search categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp struct {
		Categories []Category `json:"categories"`
	}
	if err := c.get(ctx, "/api/v1/categories", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}
