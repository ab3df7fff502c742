package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	apiclient "github.com/mgoodall/listing-finder/internal/api/client"
	"github.com/mgoodall/listing-finder/internal/search"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(listings []search.Listing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TITLE\tCONDITION\tPRICE\tSHIPPING\tTOTAL\tTYPE\tBIDS\tENDS\tSELLER\n")
	for i := range listings {
		l := &listings[i]

		bids := "-"
		if l.BidCount != nil {
			bids = fmt.Sprintf("%d", *l.BidCount)
		}

		seller := l.Seller
		if seller != "" && l.SellerFeedbackPct > 0 {
			seller = fmt.Sprintf("%s (%.1f%%)", seller, l.SellerFeedbackPct)
		}

		tw.writef("%s\t%s\t$%.2f\t$%.2f\t$%.2f\t%s\t%s\t%s\t%s\n",
			truncate(l.Title, 50),
			l.Condition,
			l.Price,
			l.Shipping,
			l.Total,
			strings.Join(l.BuyingOptions, "/"),
			bids,
			l.AuctionEndTime,
			seller,
		)
	}
	return tw.finish()
}

func printCategoriesTable(cats []apiclient.Category) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("NAME\tIDS\n")
	for i := range cats {
		ids := strings.Join(cats[i].IDs, ",")
		if ids == "" {
			ids = "-"
		}
		tw.writef("%s\t%s\n", cats[i].Name, ids)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
