package catalog

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"about-me/pkg/models"
)

// BucketSource reads every YAML object under Prefix in a Cloud Storage bucket. Objects are
// concatenated in natural name order, so "catalog/2-games.yaml" precedes "catalog/10-collections.yaml".
type BucketSource struct {
	Bucket string
	Prefix string
	// Timeout bounds the whole listing and download; zero means 30 seconds
	Timeout time.Duration
}

// Load lists and decodes the catalog objects
func (s BucketSource) Load(ctx context.Context) ([]models.CatalogEntry, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	defer client.Close()

	bucket := client.Bucket(s.Bucket)
	names, err := ObjectNames(ctx, bucket, s.Prefix, IsCatalogObject)
	if err != nil {
		return nil, err
	}

	var entries []models.CatalogEntry
	for _, name := range names {
		r, err := bucket.Object(name).NewReader(ctx)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		part, err := Decode(r)
		r.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		entries = append(entries, part...)
	}
	return entries, Validate(entries)
}

// Name identifies the source in logs
func (s BucketSource) Name() string {
	return fmt.Sprintf("gs://%s/%s", s.Bucket, s.Prefix)
}

// ObjectNames lists the names of objects under prefix accepted by keep, in natural name order
func ObjectNames(ctx context.Context, bucket *storage.BucketHandle, prefix string, keep func(string) bool) ([]string, error) {
	var names []string
	it := bucket.Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating objects: %w", err)
		}
		if keep == nil || keep(attrs.Name) {
			names = append(names, attrs.Name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return naturalLess(names[i], names[j])
	})
	return names, nil
}

// IsCatalogObject reports whether an object name holds catalog YAML
func IsCatalogObject(name string) bool {
	if strings.HasSuffix(name, "/") {
		return false
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
