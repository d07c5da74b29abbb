package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"about-me/pkg/models"
	"about-me/pkg/services"
)

// newExportCmd creates a new command for exporting catalog data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export catalog data",
		Long: `Export all catalog entries in the specified format. Supported formats: json, yaml.
The yaml output can be used as a CATALOG_PATH file or uploaded under CATALOG_PREFIX.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"json", "yaml"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, _, err := setup(); err != nil {
				return err
			}

			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			entries, err := services.GetEntries(cmd.Context())
			if err != nil {
				return err
			}
			return exportEntries(cmd.OutOrStdout(), format, entries)
		},
	}
}

// exportEntries writes the entries in the specified format
func exportEntries(w io.Writer, format string, entries []models.CatalogEntry) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling data: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("error marshaling data: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported export format: %s (supported formats: json, yaml)", format)
	}
}
