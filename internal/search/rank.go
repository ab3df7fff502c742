package search

import (
	"slices"
	"sort"
)

// Select filters normalized listings against the criteria and ranks the
// survivors by total cost ascending. It drops listings whose buying
// options do not include the requested listing type, listings whose
// total exceeds the price ceiling (re-validated locally even though the
// server-side filter already constrains it), and duplicate listings
// pointing at the same item URL. The sort is stable: equal totals keep
// their original relative order. An empty result is a normal outcome.
func Select(listings []Listing, c Criteria) []Listing {
	out := make([]Listing, 0, len(listings))
	seen := make(map[string]struct{}, len(listings))

	for i := range listings {
		l := listings[i]

		if c.ListingType != ListingAny &&
			!slices.Contains(l.BuyingOptions, string(c.ListingType)) {
			continue
		}

		if l.Total > c.MaxPrice {
			continue
		}

		if l.ItemURL != "" {
			if _, dup := seen[l.ItemURL]; dup {
				continue
			}
			seen[l.ItemURL] = struct{}{}
		}

		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total < out[j].Total
	})

	return out
}
