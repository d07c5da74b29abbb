package services

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"about-me/pkg/carousel"
	"about-me/pkg/models"
)

const (
	// colorDifferenceThreshold defines the minimum difference between color components
	// to consider two pixels as different colors (accounts for compression artifacts)
	colorDifferenceThreshold = 256

	mediaFetchTimeout = 15 * time.Second
)

// ErrSolidImage is returned for images that are a single flat color
var ErrSolidImage = errors.New("image appears to be a solid color")

// ProgressCallback is a function that receives progress updates
type ProgressCallback func(step string, progress int)

// MediaReport is the result of checking one media item
type MediaReport struct {
	EntryID  string `json:"entryId"`
	Src      string `json:"src"`
	Location string `json:"location"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// OK reports whether the media item was found and decoded
func (r MediaReport) OK() bool {
	return r.Error == ""
}

// mediaOpener opens the bytes behind a media src
type mediaOpener func(ctx context.Context, src string) (io.ReadCloser, string, error)

// CheckMedia verifies that every media item of the catalog resolves to a decodable image
func CheckMedia(ctx context.Context, progressCb ProgressCallback) ([]MediaReport, error) {
	return defaultService.CheckMedia(ctx, progressCb)
}

// CheckMedia verifies that every media item of the catalog resolves to a decodable image.
// Remote srcs are fetched over HTTP, others are read from the bucket when one is configured
// and from the public directory otherwise.
func (s *Service) CheckMedia(ctx context.Context, progressCb ProgressCallback) ([]MediaReport, error) {
	sendProgress := func(step string, progress int) {
		if progressCb != nil {
			progressCb(step, progress)
		}
	}

	sendProgress("Loading catalog", 0)
	entries, err := s.GetEntriesInternal(ctx)
	if err != nil {
		return nil, err
	}

	open := s.localOpener()
	if s.config.BucketName != "" {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		defer client.Close()
		open = bucketOpener(client.Bucket(s.config.BucketName))
	}

	total := 0
	for _, entry := range entries {
		total += len(entry.Media)
	}

	reports := make([]MediaReport, 0, total)
	done := 0
	for _, entry := range entries {
		for _, item := range entry.Media {
			if err := ctx.Err(); err != nil {
				return reports, err
			}
			report := s.checkOne(ctx, open, entry, item)
			reports = append(reports, report)
			done++
			sendProgress(item.Src, done*100/max(total, 1))
		}
	}
	return reports, nil
}

func (s *Service) checkOne(ctx context.Context, open mediaOpener, entry models.CatalogEntry, item models.MediaItem) MediaReport {
	report := MediaReport{EntryID: entry.ID, Src: item.Src}

	if isRemote(item.Src) {
		open = httpOpener
	}
	rc, location, err := open(ctx, item.Src)
	report.Location = location
	if err != nil {
		report.Error = err.Error()
		s.logger.Warn("media missing", zap.String("entry", entry.ID), zap.String("src", item.Src), zap.Error(err))
		return report
	}
	defer rc.Close()

	width, height, err := validateImage(rc)
	report.Width, report.Height = width, height
	if err != nil {
		report.Error = err.Error()
		s.logger.Warn("media invalid", zap.String("entry", entry.ID), zap.String("src", item.Src), zap.Error(err))
	}
	return report
}

// Preloader returns a fire-and-forget preloader for the carousel. Failures are only logged.
func (s *Service) Preloader() carousel.Preloader {
	open := s.localOpener()
	return carousel.PreloaderFunc(func(src string) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), mediaFetchTimeout)
			defer cancel()

			opener := open
			if isRemote(src) {
				opener = httpOpener
			}
			rc, _, err := opener(ctx, src)
			if err != nil {
				s.logger.Debug("preload failed", zap.String("src", src), zap.Error(err))
				return
			}
			_, _ = io.Copy(io.Discard, rc)
			rc.Close()
		}()
	})
}

func (s *Service) localOpener() mediaOpener {
	root := s.config.PublicDir
	return func(_ context.Context, src string) (io.ReadCloser, string, error) {
		path := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(src, "/")))
		f, err := os.Open(path)
		if err != nil {
			return nil, path, err
		}
		return f, path, nil
	}
}

func bucketOpener(bucket *storage.BucketHandle) mediaOpener {
	return func(ctx context.Context, src string) (io.ReadCloser, string, error) {
		name := strings.TrimPrefix(src, "/")
		location := fmt.Sprintf("gs://%s/%s", bucket.BucketName(), name)
		r, err := bucket.Object(name).NewReader(ctx)
		if err != nil {
			return nil, location, err
		}
		return r, location, nil
	}
}

func httpOpener(ctx context.Context, src string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, src, err
	}
	client := &http.Client{Timeout: mediaFetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, src, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, src, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return resp.Body, src, nil
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// validateImage decodes the image and rejects flat single-color images
func validateImage(r io.Reader) (int, int, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	sampleSize := 10
	stepX := max(width/sampleSize, 1)
	stepY := max(height/sampleSize, 1)

	r1, g1, b1, a1 := img.At(bounds.Min.X, bounds.Min.Y).RGBA()

	differentPixels := 0
	totalSamples := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			totalSamples++
			r2, g2, b2, a2 := img.At(x, y).RGBA()
			if differs(r1, r2) || differs(g1, g2) || differs(b1, b2) || differs(a1, a2) {
				differentPixels++
			}
		}
	}

	if totalSamples > 1 && float64(differentPixels)/float64(totalSamples) < 0.01 {
		return width, height, fmt.Errorf("%w (only %d/%d sampled pixels differ)", ErrSolidImage, differentPixels, totalSamples)
	}
	return width, height, nil
}

func differs(a, b uint32) bool {
	d := int64(a) - int64(b)
	if d < 0 {
		d = -d
	}
	return d > colorDifferenceThreshold
}
