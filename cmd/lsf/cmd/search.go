package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/mgoodall/listing-finder/internal/api/client"
)

func searchCmd() *cobra.Command {
	var (
		category    string
		maxPrice    float64
		listingType string
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search eBay listings by total cost",
		Long: "Searches eBay listings matching the query, keeps those whose price plus\n" +
			"shipping stays under the ceiling, and prints them cheapest first.",
		Example: `  lsf search "iphone 12" --category "Cell Phones & Smartphones" --max-price 150
  lsf search "kindle paperwhite" --max-price 80 --type auction --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, &apiclient.SearchParams{
				Query:       args[0],
				Category:    category,
				MaxPrice:    maxPrice,
				ListingType: listingType,
				Limit:       limit,
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category name (see 'lsf categories')")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "ceiling on price plus shipping, in USD")
	cmd.Flags().StringVar(&listingType, "type", "", "listing type (auction, fixed_price, best_offer)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of listings to fetch")
	cobra.CheckErr(cmd.MarkFlagRequired("max-price"))

	return cmd
}

func runSearch(cmd *cobra.Command, params *apiclient.SearchParams) error {
	resp, err := newClient().Search(cmd.Context(), params)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return outputJSON(resp)
	}

	if resp.NoMatches {
		fmt.Println("No listings found under that price.")
		return nil
	}

	return printListingsTable(resp.Results)
}
