package search_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgoodall/listing-finder/internal/ebay"
	"github.com/mgoodall/listing-finder/internal/search"
)

// fakeCatalog implements ebay.CatalogClient for tests.
type fakeCatalog struct {
	lastReq ebay.SearchRequest
	resp    *ebay.SearchResponse
	err     error
}

func (f *fakeCatalog) Search(
	_ context.Context,
	req ebay.SearchRequest,
) (*ebay.SearchResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestSearcher_Search_EndToEnd(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		resp: &ebay.SearchResponse{
			Items: []ebay.ItemSummary{
				{
					Title:         "iPhone 12",
					Price:         ebay.ItemPrice{Value: "100.00", Currency: "USD"},
					ConditionID:   "1000",
					BuyingOptions: []string{"FIXED_PRICE"},
					ShippingOptions: []ebay.ShippingOption{
						{ShippingCost: &ebay.ItemPrice{Value: "10.00", Currency: "USD"}},
					},
					ItemWebURL: "https://www.ebay.com/itm/1",
				},
				{
					Title:         "iPhone 12 for parts",
					Price:         ebay.ItemPrice{Value: "20.00", Currency: "USD"},
					ConditionID:   "7000",
					BuyingOptions: []string{"FIXED_PRICE"},
					ItemWebURL:    "https://www.ebay.com/itm/2",
				},
				{
					Title:         "iPhone 12 cheap",
					Price:         ebay.ItemPrice{Value: "80.00", Currency: "USD"},
					ConditionID:   "3000",
					BuyingOptions: []string{"FIXED_PRICE"},
					ItemWebURL:    "https://www.ebay.com/itm/3",
				},
				{
					Title:         "iPhone 12 too expensive",
					Price:         ebay.ItemPrice{Value: "200.00", Currency: "USD"},
					ConditionID:   "3000",
					BuyingOptions: []string{"FIXED_PRICE"},
					ItemWebURL:    "https://www.ebay.com/itm/4",
				},
			},
			Total: 4,
		},
	}

	s := search.NewSearcher(catalog)
	results, err := s.Search(context.Background(), search.Criteria{
		Category: "Cell Phones & Smartphones",
		Term:     "iPhone",
		MaxPrice: 150,
		Limit:    25,
	})
	require.NoError(t, err)

	// For-parts and over-ceiling listings dropped, rest sorted by total.
	require.Len(t, results, 2)
	assert.Equal(t, "iPhone 12 cheap", results[0].Title)
	assert.InDelta(t, 80.00, results[0].Total, 0.001)
	assert.Equal(t, "iPhone 12", results[1].Title)
	assert.InDelta(t, 110.00, results[1].Total, 0.001)

	// The request carried the built query, filter, and category IDs.
	assert.Contains(t, catalog.lastReq.Query, `"iPhone"`)
	assert.Contains(t, catalog.lastReq.Query, "-(case,cover")
	assert.Contains(t, catalog.lastReq.Filter, "price:[1..150]")
	assert.Contains(t, catalog.lastReq.Filter, "priceCurrency:USD")
	assert.Equal(t, "9355", catalog.lastReq.CategoryIDs)
	assert.Equal(t, 25, catalog.lastReq.Limit)
}

func TestSearcher_Search_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{resp: &ebay.SearchResponse{Items: nil, Total: 0}}

	s := search.NewSearcher(catalog)
	results, err := s.Search(context.Background(), search.Criteria{
		Category: search.AllCategories,
		Term:     "nonexistent",
		MaxPrice: 150,
	})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearcher_Search_CollaboratorFailureAborts(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{err: errors.New("connection refused")}

	s := search.NewSearcher(catalog)
	results, err := s.Search(context.Background(), search.Criteria{
		Category: search.AllCategories,
		Term:     "iPhone",
		MaxPrice: 150,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "marketplace search")
	assert.Nil(t, results)
}

func TestSearcher_Search_UnknownCategory(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{resp: &ebay.SearchResponse{}}

	s := search.NewSearcher(catalog)
	_, err := s.Search(context.Background(), search.Criteria{
		Category: "Garden Gnomes",
		Term:     "gnome",
		MaxPrice: 150,
	})

	require.ErrorIs(t, err, search.ErrUnknownCategory)
}

func TestSearcher_Search_ClampsCriteria(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{resp: &ebay.SearchResponse{}}

	s := search.NewSearcher(catalog)
	_, err := s.Search(context.Background(), search.Criteria{
		Category: search.AllCategories,
		Term:     "iPhone",
		MaxPrice: 99999,
		Limit:    500,
	})
	require.NoError(t, err)

	assert.Equal(t, 100, catalog.lastReq.Limit)
	assert.Contains(t, catalog.lastReq.Filter, "price:[1..10000]")
}

func TestSearcher_Search_PriceFloorOption(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{resp: &ebay.SearchResponse{}}

	s := search.NewSearcher(catalog, search.WithPriceFloor(50))
	_, err := s.Search(context.Background(), search.Criteria{
		Category: search.AllCategories,
		Term:     "iPhone",
		MaxPrice: 500,
	})
	require.NoError(t, err)

	assert.Contains(t, catalog.lastReq.Filter, "price:[50..500]")
}

func TestSearcher_Search_MalformedEndDateStillIncluded(t *testing.T) {
	t.Parallel()

	catalog := &fakeCatalog{
		resp: &ebay.SearchResponse{
			Items: []ebay.ItemSummary{
				{
					Title:         "Auction with bad end date",
					Price:         ebay.ItemPrice{Value: "40.00", Currency: "USD"},
					ConditionID:   "3000",
					BuyingOptions: []string{"AUCTION"},
					ItemEndDate:   "garbage",
					ItemWebURL:    "https://www.ebay.com/itm/5",
				},
			},
			Total: 1,
		},
	}

	s := search.NewSearcher(catalog)
	results, err := s.Search(context.Background(), search.Criteria{
		Category: search.AllCategories,
		Term:     "thing",
		MaxPrice: 150,
	})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, search.EndTimeInvalid, results[0].AuctionEndTime)
}
