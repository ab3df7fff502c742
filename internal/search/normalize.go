package search

import (
	"slices"
	"strconv"
	"time"

	"github.com/mgoodall/listing-finder/internal/ebay"
)

// Auction end time sentinels.
const (
	// EndTimeNotApplicable marks listings that are not auctions or carry
	// no end timestamp.
	EndTimeNotApplicable = "N/A"
	// EndTimeInvalid marks auctions whose end timestamp failed to parse.
	EndTimeInvalid = "Invalid date"
)

// forPartsConditionID is the marketplace's "for parts or not working"
// condition identifier. Records with it never reach the result set.
const forPartsConditionID = "7000"

const endTimeLayout = "2006-01-02 03:04 PM MST"

// Listing is a normalized catalog listing, the core-owned output record.
type Listing struct {
	Title         string   `json:"title"`
	Condition     string   `json:"condition,omitempty"`
	Price         float64  `json:"price"`
	Shipping      float64  `json:"shipping"`
	Total         float64  `json:"total"`
	BuyingOptions []string `json:"buying_options"`

	// BidCount is set only when BuyingOptions contains AUCTION.
	BidCount *int `json:"bid_count,omitempty"`
	// AuctionEndTime is a localized display string, or a sentinel.
	AuctionEndTime string `json:"auction_end_time"`

	Seller              string  `json:"seller,omitempty"`
	SellerFeedbackPct   float64 `json:"seller_feedback_pct,omitempty"`
	SellerFeedbackScore int     `json:"seller_feedback_score,omitempty"`

	ItemURL string `json:"link"`
}

// IsAuction reports whether the listing supports the auction buying option.
func (l *Listing) IsAuction() bool {
	return slices.Contains(l.BuyingOptions, string(ListingAuction))
}

// Normalizer maps raw item records into Listings, rejecting for-parts
// records. Pure given its display timezone.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer creates a Normalizer rendering auction end times in loc.
// A nil loc means the process-local timezone.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Normalize converts one raw item record into a Listing. The second
// return value is false when the record is rejected (for-parts
// condition). Missing or unparseable numeric fields become 0; a bad
// auction timestamp becomes the EndTimeInvalid sentinel. Neither ever
// fails the run.
func (n *Normalizer) Normalize(item *ebay.ItemSummary) (Listing, bool) {
	if item.ConditionID == forPartsConditionID {
		return Listing{}, false
	}

	l := Listing{
		Title:          item.Title,
		Condition:      item.Condition,
		Price:          parseAmount(item.Price.Value),
		BuyingOptions:  item.BuyingOptions,
		AuctionEndTime: EndTimeNotApplicable,
		ItemURL:        item.ItemWebURL,
	}
	if l.BuyingOptions == nil {
		l.BuyingOptions = []string{}
	}

	if len(item.ShippingOptions) > 0 {
		if sc := item.ShippingOptions[0].ShippingCost; sc != nil {
			l.Shipping = parseAmount(sc.Value)
		}
	}
	l.Total = l.Price + l.Shipping

	if l.IsAuction() {
		l.BidCount = item.BidCount
		if item.ItemEndDate != "" {
			l.AuctionEndTime = n.formatEndTime(item.ItemEndDate)
		}
	}

	if item.Seller != nil {
		l.Seller = item.Seller.Username
		l.SellerFeedbackScore = item.Seller.FeedbackScore
		l.SellerFeedbackPct = parseAmount(item.Seller.FeedbackPercentage)
	}

	return l, true
}

func (n *Normalizer) formatEndTime(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return EndTimeInvalid
	}
	return t.In(n.loc).Format(endTimeLayout)
}

// parseAmount parses a currency amount string, treating the empty string
// and garbage as zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
