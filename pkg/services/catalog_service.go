package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"about-me/pkg/catalog"
	"about-me/pkg/config"
	"about-me/pkg/filter"
	"about-me/pkg/models"
)

// ErrEntryNotFound is returned when no catalog entry has the requested id
var ErrEntryNotFound = errors.New("catalog entry not found")

const (
	entriesKey  = "entries"
	loadTimeout = 30 * time.Second
)

// Service handles operations related to the catalog and its media
type Service struct {
	config       *config.Config
	source       catalog.Source
	logger       *zap.Logger
	catalogCache *cache.Cache
	mu           sync.RWMutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// SourceFor picks the catalog source described by the configuration
func SourceFor(cfg *config.Config) catalog.Source {
	switch {
	case cfg.BucketName != "":
		return catalog.BucketSource{Bucket: cfg.BucketName, Prefix: cfg.CatalogPrefix}
	case cfg.CatalogPath != "":
		return catalog.FileSource{Path: cfg.CatalogPath}
	default:
		return catalog.EmbeddedSource{}
	}
}

// NewService creates a service reading entries from source. A nil logger uses the global zap logger.
func NewService(cfg *config.Config, source catalog.Source, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.L()
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{
		config:       cfg,
		source:       source,
		logger:       logger.Named("catalog"),
		catalogCache: cache.New(ttl, 2*ttl),
	}
}

// InitService initializes the service with the given configuration
func InitService(cfg *config.Config) *Service {
	once.Do(func() {
		defaultService = NewService(cfg, SourceFor(cfg), zap.L())
	})
	return defaultService
}

// GetEntries returns every catalog entry in display order
func GetEntries(ctx context.Context) ([]models.CatalogEntry, error) {
	return defaultService.GetEntriesInternal(ctx)
}

// GetEntry returns an entry by its id
func GetEntry(ctx context.Context, id string) (models.CatalogEntry, error) {
	return defaultService.GetEntryInternal(ctx, id)
}

// GetCategories returns the entries grouped by category
func GetCategories(ctx context.Context) ([]models.Category, error) {
	return defaultService.GetCategoriesInternal(ctx)
}

// Reload drops everything cached so the next read goes back to the source
func Reload() {
	defaultService.Reload()
}

// Config returns the configuration the service was built with
func (s *Service) Config() *config.Config {
	return s.config
}

// SourceName describes where entries are read from
func (s *Service) SourceName() string {
	return s.source.Name()
}

// GetEntriesInternal returns every catalog entry, loading and caching them on first use
func (s *Service) GetEntriesInternal(ctx context.Context) ([]models.CatalogEntry, error) {
	s.mu.RLock()
	if cached, found := s.catalogCache.Get(entriesKey); found {
		s.mu.RUnlock()
		s.logger.Debug("using cached catalog")
		return cached.([]models.CatalogEntry), nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if cached, found := s.catalogCache.Get(entriesKey); found {
		return cached.([]models.CatalogEntry), nil
	}

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	start := time.Now()
	entries, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load catalog", zap.String("source", s.source.Name()), zap.Error(err))
		return nil, fmt.Errorf("load catalog from %s: %w", s.source.Name(), err)
	}
	if entries == nil {
		entries = []models.CatalogEntry{}
	}
	s.logger.Info("catalog loaded",
		zap.String("source", s.source.Name()),
		zap.Int("entries", len(entries)),
		zap.Duration("took", time.Since(start)),
	)

	s.catalogCache.Set(entriesKey, entries, cache.DefaultExpiration)
	return entries, nil
}

// GetEntryInternal returns an entry by its id
func (s *Service) GetEntryInternal(ctx context.Context, id string) (models.CatalogEntry, error) {
	entries, err := s.GetEntriesInternal(ctx)
	if err != nil {
		return models.CatalogEntry{}, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return models.CatalogEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
}

// GetCategoriesInternal groups entries by category in first-seen order
func (s *Service) GetCategoriesInternal(ctx context.Context) ([]models.Category, error) {
	entries, err := s.GetEntriesInternal(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	categories := make([]models.Category, 0)
	for _, entry := range entries {
		if i, exists := index[entry.Category]; exists {
			categories[i].Entries = append(categories[i].Entries, entry)
			continue
		}
		index[entry.Category] = len(categories)
		categories = append(categories, models.Category{
			Name:    entry.Category,
			Entries: []models.CatalogEntry{entry},
		})
	}
	return categories, nil
}

// CategoryNames returns the category filter options, "All" first
func (s *Service) CategoryNames(ctx context.Context) ([]string, error) {
	entries, err := s.GetEntriesInternal(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Categories(entries), nil
}

// BrowseInternal applies the filter state to the cached catalog
func (s *Service) BrowseInternal(ctx context.Context, state filter.State) (filter.Result, error) {
	entries, err := s.GetEntriesInternal(ctx)
	if err != nil {
		return filter.Result{}, err
	}
	return filter.Apply(entries, state), nil
}

// Reload drops the cached catalog
func (s *Service) Reload() {
	s.mu.Lock()
	s.catalogCache.Flush()
	s.mu.Unlock()
	s.logger.Info("catalog cache flushed", zap.String("source", s.source.Name()))
}
