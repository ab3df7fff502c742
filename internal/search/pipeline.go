package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgoodall/listing-finder/internal/ebay"
	"github.com/mgoodall/listing-finder/internal/metrics"
)

// ErrUnknownCategory is returned when the criteria name a category that
// is not in the catalog. This is an input error, not a pipeline failure.
var ErrUnknownCategory = fmt.Errorf("unknown category")

// Searcher runs the full pipeline: query build, catalog fetch,
// normalization, filtering, and ranking. One run per user search; no
// state crosses runs.
type Searcher struct {
	catalog    ebay.CatalogClient
	builder    *QueryBuilder
	normalizer *Normalizer
	log        *slog.Logger
}

// SearcherOption configures the Searcher.
type SearcherOption func(*Searcher)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) SearcherOption {
	return func(s *Searcher) {
		s.log = l
	}
}

// WithPriceFloor sets the server-side price floor policy constant.
func WithPriceFloor(floor int) SearcherOption {
	return func(s *Searcher) {
		s.builder = NewQueryBuilder(floor)
	}
}

// WithLocation sets the display timezone for auction end times.
func WithLocation(loc *time.Location) SearcherOption {
	return func(s *Searcher) {
		s.normalizer = NewNormalizer(loc)
	}
}

// NewSearcher creates a Searcher backed by the given catalog client.
func NewSearcher(catalog ebay.CatalogClient, opts ...SearcherOption) *Searcher {
	s := &Searcher{
		catalog:    catalog,
		builder:    NewQueryBuilder(1),
		normalizer: NewNormalizer(nil),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search executes one pipeline run. An empty result set means the search
// found nothing and is not an error; only collaborator failures (token
// fetch, transport, non-success response) return an error, with no
// partial results. Per-record problems never abort the run.
func (s *Searcher) Search(ctx context.Context, c Criteria) ([]Listing, error) {
	start := time.Now()
	metrics.SearchesTotal.Inc()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	c = c.Clamped()

	cat, ok := LookupCategory(c.Category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c.Category)
	}

	query, filter := s.builder.Build(c)

	resp, err := s.catalog.Search(ctx, ebay.SearchRequest{
		Query:       query,
		Filter:      filter,
		CategoryIDs: cat.CategoryIDs(),
		Limit:       c.Limit,
	})
	if err != nil {
		metrics.SearchFailuresTotal.Inc()
		return nil, fmt.Errorf("marketplace search: %w", err)
	}

	normalized := make([]Listing, 0, len(resp.Items))
	var rejected int
	for i := range resp.Items {
		l, ok := s.normalizer.Normalize(&resp.Items[i])
		if !ok {
			rejected++
			continue
		}
		normalized = append(normalized, l)
	}
	if rejected > 0 {
		metrics.ListingsRejectedTotal.Add(float64(rejected))
	}

	results := Select(normalized, c)
	metrics.SearchResultsReturned.Observe(float64(len(results)))

	s.log.Info("search completed",
		"term", c.Term,
		"category", cat.Name,
		"fetched", len(resp.Items),
		"rejected", rejected,
		"returned", len(results),
	)

	return results, nil
}
