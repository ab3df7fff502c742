// Package search implements the catalog search pipeline: building the
// marketplace query and filter expression from user criteria, normalizing
// the raw item records that come back, and filtering and ranking them
// into the final result set.
package search

import (
	"fmt"
	"strings"
)

// ListingType selects which transaction mode to restrict a search to.
// The zero value means no restriction.
type ListingType string

// Listing type constants. Non-empty values match the Browse API
// buyingOptions vocabulary.
const (
	ListingAny        ListingType = ""
	ListingAuction    ListingType = "AUCTION"
	ListingFixedPrice ListingType = "FIXED_PRICE"
	ListingBestOffer  ListingType = "BEST_OFFER"
)

// ParseListingType maps a user-facing listing type name to a ListingType.
func ParseListingType(s string) (ListingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "all":
		return ListingAny, nil
	case "auction":
		return ListingAuction, nil
	case "fixed_price", "fixed-price", "fixed price":
		return ListingFixedPrice, nil
	case "best_offer", "best-offer", "best offer":
		return ListingBestOffer, nil
	default:
		return ListingAny, fmt.Errorf("unknown listing type %q", s)
	}
}

// Criteria bounds. Mirrors the limits the search form exposes.
const (
	MinPrice = 1.0
	MaxPrice = 10000.0
	MinLimit = 1
	MaxLimit = 100

	defaultLimit = 25
)

// Criteria is one user search: immutable once the pipeline runs.
type Criteria struct {
	Category    string
	Term        string
	MaxPrice    float64 // inclusive total-cost ceiling
	ListingType ListingType
	Limit       int
}

// Clamped returns a copy with MaxPrice and Limit forced into their
// allowed ranges. A zero Limit becomes the default.
func (c Criteria) Clamped() Criteria {
	if c.MaxPrice < MinPrice {
		c.MaxPrice = MinPrice
	}
	if c.MaxPrice > MaxPrice {
		c.MaxPrice = MaxPrice
	}
	if c.Limit == 0 {
		c.Limit = defaultLimit
	}
	if c.Limit < MinLimit {
		c.Limit = MinLimit
	}
	if c.Limit > MaxLimit {
		c.Limit = MaxLimit
	}
	return c
}
