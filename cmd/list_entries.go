package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"about-me/pkg/filter"
	"about-me/pkg/models"
	"about-me/pkg/services"
)

// listRequest describes the work page interactions to replay. Nil fields were not given.
type listRequest struct {
	Query    string
	Category *string
	Search   *string
	Page     *int
}

// newListEntriesCmd creates a new command for listing entries the way the work page shows them
func newListEntriesCmd() *cobra.Command {
	var (
		query    string
		category string
		search   string
		page     int
	)

	cmd := &cobra.Command{
		Use:   "list-entries",
		Short: "List catalog entries",
		Long: `List catalog entries filtered by category and search term, one page at a time,
exactly as the work page shows them. --query starts from a work page query string;
--category, --search and --page are then applied like clicks on that page.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, _, err := setup(); err != nil {
				return err
			}
			entries, err := services.GetEntries(cmd.Context())
			if err != nil {
				return err
			}

			req := listRequest{Query: query}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}
			if cmd.Flags().Changed("search") {
				req.Search = &search
			}
			if cmd.Flags().Changed("page") {
				req.Page = &page
			}

			ctrl := browseEntries(entries, req, func(q string) {
				fmt.Fprintf(cmd.ErrOrStderr(), "navigate: ?%s\n", q)
			})
			printEntries(cmd.OutOrStdout(), ctrl.State(), ctrl.Result())
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Work page query string to start from, e.g. \"category=Games&page=2\"")
	cmd.Flags().StringVar(&category, "category", filter.AllCategories, "Category to show (case-sensitive, \"all\" for every category)")
	cmd.Flags().StringVar(&search, "search", "", "Search term matched against ids, types and captions")
	cmd.Flags().IntVar(&page, "page", 1, "Page number, 4 entries per page")
	return cmd
}

// browseEntries drives a filter controller the way a visitor drives the work page:
// the query is loaded first, then category, search and page are committed in that order.
func browseEntries(entries []models.CatalogEntry, req listRequest, navigated func(query string)) *filter.Controller {
	var ctrl *filter.Controller
	ctrl = filter.NewController(entries, func(query string) {
		if navigated != nil {
			navigated(query)
		}
		ctrl.SyncRaw(query)
	})
	ctrl.SyncRaw(req.Query)

	if req.Category != nil {
		ctrl.SelectCategory(*req.Category)
	}
	if req.Search != nil {
		ctrl.SetSearchInput(*req.Search)
		ctrl.SubmitSearch()
	}
	if req.Page != nil {
		ctrl.SelectPage(*req.Page)
	}
	return ctrl
}

// printEntries displays one page of entries with paging information
func printEntries(w io.Writer, state filter.State, result filter.Result) {
	fmt.Fprintln(w, "Catalog Entries:")
	fmt.Fprintln(w, "================")
	if query := state.Encode(); query != "" {
		fmt.Fprintf(w, "Query: ?%s\n", query)
	}
	fmt.Fprintln(w)

	if result.Empty() {
		fmt.Fprintln(w, "No projects found for the current filters.")
	}
	for _, entry := range result.Entries {
		fmt.Fprintf(w, "- %s (%s / %s)\n", entry.ID, entry.Category, entry.Type)
		fmt.Fprintf(w, "    Route: /%s\n", entry.Route)
		fmt.Fprintf(w, "    Images: %d\n", len(entry.Media))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Page %d of %d (%d matching entries)\n", result.Page, result.TotalPages, result.Total)
}
