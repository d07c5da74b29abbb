package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"about-me/pkg/services"
)

// newCheckMediaCmd creates a new command for verifying catalog images
func newCheckMediaCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check-media",
		Short: "Verify every catalog image",
		Long: `Verify that every image referenced by the catalog exists and decodes as a real picture.
Images are read from the bucket when BUCKET_NAME is set, from PUBLIC_DIR otherwise, and
over HTTP for absolute URLs. Solid-color images are reported as broken.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, _, err := setup(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			progress := func(step string, percent int) {
				if !asJSON {
					fmt.Fprintf(cmd.ErrOrStderr(), "\r[%3d%%] %-60.60s", percent, step)
				}
			}
			reports, err := services.CheckMedia(cmd.Context(), progress)
			if !asJSON {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}
			if failed := printMediaReports(out, reports); failed > 0 {
				return fmt.Errorf("%d of %d images failed", failed, len(reports))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reports as JSON")
	return cmd
}

// printMediaReports lists failing images and a summary, returning the number of failures
func printMediaReports(w io.Writer, reports []services.MediaReport) int {
	failed := 0
	for _, report := range reports {
		if report.OK() {
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL %s %s\n", report.EntryID, report.Src)
		fmt.Fprintf(w, "     %s: %s\n", report.Location, report.Error)
	}
	fmt.Fprintf(w, "Checked %d images: %d ok, %d failed\n", len(reports), len(reports)-failed, failed)
	return failed
}
