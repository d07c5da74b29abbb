package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"about-me/pkg/config"
	"about-me/pkg/logging"
	"about-me/pkg/services"
)

// Configuration flags
var (
	secretKey   string
	bucketName  string
	portNumber  string
	catalogPath string
	baseURL     string
	logLevel    string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "about-me",
		Short: "About Me is a personal portfolio site with a searchable work catalog",
		Long: `About Me serves a personal portfolio: an about page and a catalog of games and
collections that can be filtered by category, searched and paginated, each entry with
an image carousel. The catalog is read from the embedded default, a YAML file or a
Google Cloud Storage bucket.`,
		SilenceUsage: true,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&secretKey, "secret-key", "s", "", "Set the SECRET_KEY (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&bucketName, "bucket", "b", "", "Set the BUCKET_NAME (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&portNumber, "port", "p", "", "Set the PORT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Set the CATALOG_PATH (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Set the BASE_URL (overrides environment variable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set the LOG_LEVEL (overrides environment variable)")

	// Add commands to root
	rootCmd.AddCommand(newListCategoriesCmd())
	rootCmd.AddCommand(newListEntriesCmd())
	rootCmd.AddCommand(newShowEntryCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCheckMediaCmd())
	rootCmd.AddCommand(newSlideshowCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	overrides := map[string]string{
		"SECRET_KEY":   secretKey,
		"BUCKET_NAME":  bucketName,
		"PORT":         portNumber,
		"CATALOG_PATH": catalogPath,
		"BASE_URL":     baseURL,
		"LOG_LEVEL":    logLevel,
	}
	for key, value := range overrides {
		if value != "" {
			os.Setenv(key, value)
		}
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}

// setup loads the configuration, installs the global logger and initializes the catalog service
func setup() (*config.Config, *zap.Logger, *services.Service, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	zap.ReplaceGlobals(logger)

	return cfg, logger, services.InitService(cfg), nil
}
