package cmd

import (
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the supported search categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := newClient().Categories(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cats)
			}

			return printCategoriesTable(cats)
		},
	}
}
