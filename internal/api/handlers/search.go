package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mgoodall/listing-finder/internal/search"
)

// Searcher runs one catalog search end to end.
type Searcher interface {
	Search(ctx context.Context, c search.Criteria) ([]search.Listing, error)
}

// SearchHandler handles catalog search requests.
type SearchHandler struct {
	searcher Searcher
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(s Searcher) *SearchHandler {
	return &SearchHandler{searcher: s}
}

// SearchInput is the request body for the search endpoint.
type SearchInput struct {
	Body struct {
		Query       string  `json:"query"                  minLength:"1" doc:"Search term"                                               example:"iphone 12"`
		Category    string  `json:"category,omitempty"                   doc:"Catalog category name; empty means all categories"          example:"Cell Phones & Smartphones"`
		MaxPrice    float64 `json:"max_price"              minimum:"1"   maximum:"10000" doc:"Inclusive ceiling on item price plus shipping, in USD" example:"150"`
		ListingType string  `json:"listing_type,omitempty"               doc:"auction, fixed_price, best_offer, or any"                   example:"auction"`
		Limit       int     `json:"limit,omitempty"        minimum:"1"   maximum:"100"   doc:"Maximum listings to fetch (default 25)"               example:"25"`
	}
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		Results   []search.Listing `json:"results" doc:"Matching listings, cheapest total first"`
		Count     int              `json:"count" doc:"Number of matching listings"`
		NoMatches bool             `json:"no_matches" doc:"True when the search completed but nothing matched"`
	}
}

// Search runs one catalog search and returns the ranked results.
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	lt, err := search.ParseListingType(input.Body.ListingType)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid listing_type: " + err.Error())
	}

	results, err := h.searcher.Search(ctx, search.Criteria{
		Category:    input.Body.Category,
		Term:        input.Body.Query,
		MaxPrice:    input.Body.MaxPrice,
		ListingType: lt,
		Limit:       input.Body.Limit,
	})
	if err != nil {
		if errors.Is(err, search.ErrUnknownCategory) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error502BadGateway("marketplace error: " + err.Error())
	}

	if results == nil {
		results = []search.Listing{}
	}

	out := &SearchOutput{}
	out.Body.Results = results
	out.Body.Count = len(results)
	out.Body.NoMatches = len(results) == 0
	return out, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Summary:     "Search catalog listings",
		Description: "Builds a marketplace query from the given criteria, fetches matching " +
			"listings, and returns them normalized and ranked by total cost.",
		Tags:   []string{"search"},
		Errors: []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Search)
}
