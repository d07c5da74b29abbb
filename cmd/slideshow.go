package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"about-me/pkg/carousel"
	"about-me/pkg/models"
	"about-me/pkg/services"
)

// newSlideshowCmd creates a new command that plays an entry's carousel in the terminal
func newSlideshowCmd() *cobra.Command {
	var (
		interval time.Duration
		count    int
	)

	cmd := &cobra.Command{
		Use:   "slideshow [id]",
		Short: "Play the image carousel of an entry",
		Long: `Play the image carousel of an entry in the terminal, moving to the next image every
interval with the same hide and reveal transition the site uses. Stops after count slides,
or on interrupt when count is 0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, svc, err := setup()
			if err != nil {
				return err
			}
			entry, err := services.GetEntry(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return runSlideshow(ctx, cmd.OutOrStdout(), entry, slideshowOptions{
				Interval:  interval,
				Count:     count,
				Scheduler: carousel.TimerScheduler{},
				Preloader: svc.Preloader(),
				Logger:    logger,
			})
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 3*time.Second, "Time each image stays on screen")
	cmd.Flags().IntVar(&count, "count", 0, "Number of transitions before stopping (0 plays until interrupted)")
	return cmd
}

type slideshowOptions struct {
	Interval  time.Duration
	Count     int
	Scheduler carousel.Scheduler
	Preloader carousel.Preloader
	Logger    *zap.Logger
	// tick replaces the interval ticker in tests
	tick <-chan time.Time
}

// runSlideshow owns the active index and lets the carousel controller move it
func runSlideshow(ctx context.Context, w io.Writer, entry models.CatalogEntry, opts slideshowOptions) error {
	if len(entry.Media) == 0 {
		return fmt.Errorf("entry %s has no images", entry.ID)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	images := make([]string, 0, len(entry.Media))
	for _, item := range entry.Media {
		images = append(images, item.Src)
	}

	done := make(chan struct{})
	// unbuffered so the transition stays in flight until the loop has taken the new index
	changes := make(chan int)

	ctrl := carousel.NewController(carousel.Options{
		Images: images,
		OnIndexChange: func(index int) {
			select {
			case changes <- index:
			case <-done:
			}
		},
		OnPhaseChange: func(phase carousel.Phase) {
			logger.Debug("carousel phase", zap.String("entry", entry.ID), zap.Stringer("phase", phase))
		},
		Scheduler: opts.Scheduler,
		Preloader: opts.Preloader,
	})
	defer ctrl.Close()
	// runs before Close so a callback blocked on changes can return
	defer close(done)
	ctrl.Mount()

	active := 0
	printSlide(w, entry, active)
	if len(images) < 2 {
		return nil
	}

	tick := opts.tick
	if tick == nil {
		interval := opts.Interval
		if interval <= 0 {
			interval = 3 * time.Second
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	shown := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			ctrl.Next(active)
		case index := <-changes:
			active = index
			printSlide(w, entry, active)
			shown++
			if opts.Count > 0 && shown >= opts.Count {
				return nil
			}
		}
	}
}

func printSlide(w io.Writer, entry models.CatalogEntry, index int) {
	item := entry.Media[index]
	fmt.Fprintf(w, "[%d/%d] %s\n", index+1, len(entry.Media), item.Title)
	fmt.Fprintf(w, "      %s\n", item.Src)
	if item.Description != "" {
		fmt.Fprintf(w, "      %s\n", item.Description)
	}
}
