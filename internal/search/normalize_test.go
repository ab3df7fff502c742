package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgoodall/listing-finder/internal/ebay"
	"github.com/mgoodall/listing-finder/internal/search"
)

func nyc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func intPtr(i int) *int {
	return &i
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		item   ebay.ItemSummary
		wantOK bool
		check  func(t *testing.T, l search.Listing)
	}{
		{
			name: "complete fixed price item",
			item: ebay.ItemSummary{
				Title:       "iPhone 12",
				Price:       ebay.ItemPrice{Value: "100.00", Currency: "USD"},
				ConditionID: "1000",
				Condition:   "New",
				BuyingOptions: []string{
					"FIXED_PRICE",
				},
				ShippingOptions: []ebay.ShippingOption{
					{ShippingCost: &ebay.ItemPrice{Value: "10.00", Currency: "USD"}},
				},
				Seller: &ebay.ItemSeller{
					Username:           "phone_deals",
					FeedbackScore:      1234,
					FeedbackPercentage: "99.5",
				},
				ItemWebURL: "https://www.ebay.com/itm/1",
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				assert.Equal(t, "iPhone 12", l.Title)
				assert.Equal(t, "New", l.Condition)
				assert.InDelta(t, 100.00, l.Price, 0.001)
				assert.InDelta(t, 10.00, l.Shipping, 0.001)
				assert.InDelta(t, 110.00, l.Total, 0.001)
				assert.Equal(t, []string{"FIXED_PRICE"}, l.BuyingOptions)
				assert.Nil(t, l.BidCount)
				assert.Equal(t, search.EndTimeNotApplicable, l.AuctionEndTime)
				assert.Equal(t, "phone_deals", l.Seller)
				assert.Equal(t, 1234, l.SellerFeedbackScore)
				assert.InDelta(t, 99.5, l.SellerFeedbackPct, 0.001)
				assert.Equal(t, "https://www.ebay.com/itm/1", l.ItemURL)
			},
		},
		{
			name: "for parts condition rejected",
			item: ebay.ItemSummary{
				Title:         "Broken iPhone",
				Price:         ebay.ItemPrice{Value: "5.00", Currency: "USD"},
				ConditionID:   "7000",
				BuyingOptions: []string{"FIXED_PRICE"},
			},
			wantOK: false,
		},
		{
			name: "missing price defaults to zero",
			item: ebay.ItemSummary{
				Title:         "Mystery Item",
				BuyingOptions: []string{"FIXED_PRICE"},
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				assert.InDelta(t, 0.0, l.Price, 0.001)
				assert.InDelta(t, 0.0, l.Total, 0.001)
			},
		},
		{
			name: "unparseable price defaults to zero",
			item: ebay.ItemSummary{
				Title:         "Bad Price",
				Price:         ebay.ItemPrice{Value: "not-a-number", Currency: "USD"},
				BuyingOptions: []string{"FIXED_PRICE"},
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				assert.InDelta(t, 0.0, l.Price, 0.001)
			},
		},
		{
			name: "no shipping options means zero shipping",
			item: ebay.ItemSummary{
				Title:         "Free Ship",
				Price:         ebay.ItemPrice{Value: "20.00", Currency: "USD"},
				BuyingOptions: []string{"FIXED_PRICE"},
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				assert.InDelta(t, 0.0, l.Shipping, 0.001)
				assert.InDelta(t, 20.00, l.Total, 0.001)
			},
		},
		{
			name: "auction end time localized",
			item: ebay.ItemSummary{
				Title:         "Auction Item",
				Price:         ebay.ItemPrice{Value: "50.00", Currency: "USD"},
				BuyingOptions: []string{"AUCTION"},
				BidCount:      intPtr(3),
				ItemEndDate:   "2025-06-01T12:00:00.000Z",
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				// Noon UTC on June 1 is 8 AM in New York (EDT).
				assert.Equal(t, "2025-06-01 08:00 AM EDT", l.AuctionEndTime)
				require.NotNil(t, l.BidCount)
				assert.Equal(t, 3, *l.BidCount)
			},
		},
		{
			name: "malformed auction end time becomes sentinel",
			item: ebay.ItemSummary{
				Title:         "Auction Item",
				Price:         ebay.ItemPrice{Value: "50.00", Currency: "USD"},
				BuyingOptions: []string{"AUCTION"},
				ItemEndDate:   "June 1st, sometime",
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				assert.Equal(t, search.EndTimeInvalid, l.AuctionEndTime)
			},
		},
		{
			name: "auction without end date keeps not-applicable sentinel",
			item: ebay.ItemSummary{
				Title:         "Auction Item",
				Price:         ebay.ItemPrice{Value: "50.00", Currency: "USD"},
				BuyingOptions: []string{"AUCTION"},
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				assert.Equal(t, search.EndTimeNotApplicable, l.AuctionEndTime)
			},
		},
		{
			name: "bid count ignored for non-auction listings",
			item: ebay.ItemSummary{
				Title:         "Fixed Price",
				Price:         ebay.ItemPrice{Value: "50.00", Currency: "USD"},
				BuyingOptions: []string{"FIXED_PRICE"},
				BidCount:      intPtr(9),
				ItemEndDate:   "2025-06-01T12:00:00.000Z",
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				assert.Nil(t, l.BidCount)
				assert.Equal(t, search.EndTimeNotApplicable, l.AuctionEndTime)
			},
		},
		{
			name: "unparseable seller feedback percentage defaults to zero",
			item: ebay.ItemSummary{
				Title:         "Odd Seller",
				Price:         ebay.ItemPrice{Value: "50.00", Currency: "USD"},
				BuyingOptions: []string{"FIXED_PRICE"},
				Seller: &ebay.ItemSeller{
					Username:           "odd",
					FeedbackPercentage: "n/a",
				},
			},
			wantOK: true,
			check: func(t *testing.T, l search.Listing) {
				t.Helper()
				assert.Equal(t, "odd", l.Seller)
				assert.InDelta(t, 0.0, l.SellerFeedbackPct, 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := search.NewNormalizer(nyc(t))
			l, ok := n.Normalize(&tt.item)

			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}

			// Invariant: total is always the sum of its components.
			assert.InDelta(t, l.Price+l.Shipping, l.Total, 0.001)

			if tt.check != nil {
				tt.check(t, l)
			}
		})
	}
}

func TestNormalizer_NilLocationUsesLocal(t *testing.T) {
	t.Parallel()

	n := search.NewNormalizer(nil)
	l, ok := n.Normalize(&ebay.ItemSummary{
		Title:         "Auction",
		Price:         ebay.ItemPrice{Value: "1.00", Currency: "USD"},
		BuyingOptions: []string{"AUCTION"},
		ItemEndDate:   "2025-06-01T12:00:00.000Z",
	})
	require.True(t, ok)
	assert.NotEqual(t, search.EndTimeInvalid, l.AuctionEndTime)
	assert.NotEqual(t, search.EndTimeNotApplicable, l.AuctionEndTime)
}
