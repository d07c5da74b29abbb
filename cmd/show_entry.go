package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"about-me/pkg/models"
	"about-me/pkg/services"
)

// newShowEntryCmd creates a new command for showing entry details
func newShowEntryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-entry [id]",
		Short: "Show the images of a catalog entry",
		Long:  `Show detailed information about the images of a catalog entry identified by its id.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, _, err := setup(); err != nil {
				return err
			}
			entry, err := services.GetEntry(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

// printEntry displays details about a specific entry
func printEntry(w io.Writer, entry models.CatalogEntry) {
	fmt.Fprintf(w, "Entry: %s\n", entry.ID)
	fmt.Fprintf(w, "Category: %s\n", entry.Category)
	fmt.Fprintf(w, "Type: %s\n", entry.Type)
	fmt.Fprintf(w, "Route: /%s\n", entry.Route)
	if entry.ExternalLink != "" {
		fmt.Fprintf(w, "Link: %s\n", entry.ExternalLink)
	}
	fmt.Fprintf(w, "Images: %d\n", len(entry.Media))
	fmt.Fprintln(w, "================")

	for i, item := range entry.Media {
		fmt.Fprintf(w, "%d. %s\n", i+1, item.Title)
		fmt.Fprintf(w, "   Src: %s\n", item.Src)
		if item.Description != "" {
			fmt.Fprintf(w, "   %s\n", item.Description)
		}
		if item.Content != "" {
			fmt.Fprintf(w, "   %s\n", item.Content)
		}
		fmt.Fprintln(w)
	}
}
