// Package catalog loads the read-only list of catalog entries from the embedded default,
// a local YAML file, or YAML objects stored in a Cloud Storage bucket.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"about-me/pkg/models"
)

//go:embed data/work.yaml
var defaultCatalog []byte

// ErrDuplicateID is returned when two entries share an id
var ErrDuplicateID = errors.New("duplicate catalog entry id")

// ErrMissingID is returned when an entry has no id
var ErrMissingID = errors.New("catalog entry without id")

// Source supplies the catalog entries in display order
type Source interface {
	Load(ctx context.Context) ([]models.CatalogEntry, error)
	Name() string
}

// Decode parses a YAML sequence of entries. An empty document yields no entries.
func Decode(r io.Reader) ([]models.CatalogEntry, error) {
	var entries []models.CatalogEntry
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range entries {
		normalize(&entries[i])
	}
	return entries, nil
}

// Validate checks the id invariant of the catalog
func Validate(entries []models.CatalogEntry) error {
	seen := make(map[string]int, len(entries))
	for i, entry := range entries {
		if entry.ID == "" {
			return fmt.Errorf("%w at position %d", ErrMissingID, i)
		}
		if prev, ok := seen[entry.ID]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, entry.ID, prev, i)
		}
		seen[entry.ID] = i
	}
	return nil
}

// normalize fills the route from the id when it is omitted
func normalize(entry *models.CatalogEntry) {
	entry.ID = strings.TrimSpace(entry.ID)
	entry.Category = strings.TrimSpace(entry.Category)
	entry.Route = strings.Trim(strings.TrimSpace(entry.Route), "/")
	if entry.Route == "" && entry.ID != "" {
		entry.Route = "work/" + entry.ID
	}
}

// EmbeddedSource serves the catalog compiled into the binary
type EmbeddedSource struct{}

// Load decodes the embedded catalog
func (EmbeddedSource) Load(_ context.Context) ([]models.CatalogEntry, error) {
	entries, err := Decode(bytes.NewReader(defaultCatalog))
	if err != nil {
		return nil, err
	}
	return entries, Validate(entries)
}

// Name identifies the source in logs
func (EmbeddedSource) Name() string {
	return "embedded"
}

// FileSource reads the catalog from a YAML file on disk
type FileSource struct {
	Path string
}

// Load reads and decodes the file
func (s FileSource) Load(_ context.Context) ([]models.CatalogEntry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return entries, Validate(entries)
}

// Name identifies the source in logs
func (s FileSource) Name() string {
	return s.Path
}
