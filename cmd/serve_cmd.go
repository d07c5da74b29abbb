package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"about-me/pkg/config"
	"about-me/pkg/handlers"
	"about-me/pkg/services"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates a new command for serving the web application
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long:  `Start the web server to serve the portfolio pages and the catalog API via HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, svc, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return Serve(ctx, cfg, svc, logger)
		},
	}
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// Serve runs the web server until ctx is cancelled, then shuts it down gracefully
func Serve(ctx context.Context, cfg *config.Config, svc *services.Service, logger *zap.Logger) error {
	if _, err := svc.GetEntriesInternal(ctx); err != nil {
		logger.Warn("catalog not available at startup", zap.Error(err))
	}

	views := handlers.NewRenderer(cfg.ViewsDir, cfg.DevMode)
	router := handlers.NewRouter(handlers.NewHandler(svc, views, logger))

	srv := &http.Server{
		Addr:              cfg.ServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("base_url", cfg.BaseURL),
			zap.String("catalog", cfg.CatalogSourceName()),
			zap.Bool("admin", cfg.AdminEnabled()),
			zap.Bool("dev", cfg.DevMode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
