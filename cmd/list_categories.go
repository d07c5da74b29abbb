package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"about-me/pkg/models"
	"about-me/pkg/services"
)

// newListCategoriesCmd creates a new command for listing categories
func newListCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-categories",
		Short: "List all catalog categories",
		Long:  `List all catalog categories with the number of entries in each, in catalog order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, _, err := setup(); err != nil {
				return err
			}
			categories, err := services.GetCategories(cmd.Context())
			if err != nil {
				return err
			}
			printCategories(cmd.OutOrStdout(), categories)
			return nil
		},
	}
}

// printCategories displays all categories and their entries
func printCategories(w io.Writer, categories []models.Category) {
	fmt.Fprintln(w, "Catalog Categories:")
	fmt.Fprintln(w, "===================")

	for _, category := range categories {
		fmt.Fprintf(w, "%s\n", category.Name)
		fmt.Fprintf(w, "  Entries: %d\n", len(category.Entries))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total: %d categories\n", len(categories))
}
