package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"about-me/pkg/config"
	"about-me/pkg/models"
)

func encodePNG(t *testing.T, solid bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
			if !solid {
				c = color.RGBA{R: uint8(x * 6), G: uint8(y * 6), B: 128, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidateImage(t *testing.T) {
	t.Parallel()

	w, h, err := validateImage(bytes.NewReader(encodePNG(t, false)))
	require.NoError(t, err)
	require.Equal(t, 40, w)
	require.Equal(t, 40, h)

	_, _, err = validateImage(bytes.NewReader(encodePNG(t, true)))
	require.True(t, errors.Is(err, ErrSolidImage))

	_, _, err = validateImage(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
}

func TestCheckMediaLocal(t *testing.T) {
	t.Parallel()

	public := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(public, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(public, "images", "ok.png"), encodePNG(t, false), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "images", "flat.png"), encodePNG(t, true), 0o644))

	entries := []models.CatalogEntry{{
		ID:       "cards",
		Category: "Collections",
		Media: []models.MediaItem{
			{Src: "/images/ok.png"},
			{Src: "/images/flat.png"},
			{Src: "/images/missing.png"},
		},
	}}
	cfg := &config.Config{PublicDir: public}
	svc := NewService(cfg, &countingSource{entries: entries}, zap.NewNop())

	var steps []int
	reports, err := svc.CheckMedia(context.Background(), func(_ string, progress int) {
		steps = append(steps, progress)
	})
	require.NoError(t, err)
	require.Len(t, reports, 3)
	require.True(t, reports[0].OK())
	require.Equal(t, 40, reports[0].Width)
	require.False(t, reports[1].OK())
	require.False(t, reports[2].OK())
	require.Equal(t, filepath.Join(public, "images", "missing.png"), reports[2].Location)
	require.Equal(t, []int{0, 33, 66, 100}, steps)
}

func TestCheckMediaRemote(t *testing.T) {
	t.Parallel()

	body := encodePNG(t, false)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cover.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	entries := []models.CatalogEntry{{
		ID:    "remote",
		Media: []models.MediaItem{{Src: srv.URL + "/cover.png"}, {Src: srv.URL + "/gone.png"}},
	}}
	svc := NewService(&config.Config{PublicDir: t.TempDir()}, &countingSource{entries: entries}, zap.NewNop())

	reports, err := svc.CheckMedia(context.Background(), nil)
	require.NoError(t, err)
	require.True(t, reports[0].OK())
	require.Contains(t, reports[1].Error, "404")
}
