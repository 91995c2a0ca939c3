package itemcache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gw2inventory/internal/failures"
	"gw2inventory/internal/fileutil"
	"gw2inventory/internal/gw2"
	"gw2inventory/internal/logging"
)

// BatchSize is the number of ids requested per metadata call.
const BatchSize = gw2.MaxBatchSize

// ErrNotPopulated is returned by Lookup before Populate has succeeded.
var ErrNotPopulated = errors.New("item cache used before population")

// Catalog is the subset of the remote API needed to build the cache.
type Catalog interface {
	ItemIDs(ctx context.Context) ([]int64, error)
	Items(ctx context.Context, ids []int64) ([]gw2.Item, error)
}

// Source records where the in-memory catalog came from.
type Source string

const (
	SourceNone     Source = ""
	SourceSnapshot Source = "snapshot"
	SourceRemote   Source = "remote"
)

// MissError reports an id absent from a populated cache.
type MissError struct {
	ID int64
}

func (e *MissError) Error() string {
	return fmt.Sprintf("item %d not present in item cache", e.ID)
}

// Unwrap lets errors.Is(err, failures.ErrNotFound) match.
func (e *MissError) Unwrap() error {
	return failures.ErrNotFound
}

// Cache maps item ids to metadata. It is written once by Populate and only
// read afterwards, so it carries no lock.
type Cache struct {
	path   string
	logger *slog.Logger
	items  map[int64]gw2.Item
	source Source
}

// New creates an empty, unpopulated cache backed by the snapshot at path.
func New(path string, logger *slog.Logger) *Cache {
	return &Cache{
		path:   strings.TrimSpace(path),
		logger: logging.NewComponentLogger(logger, "itemcache"),
	}
}

// Path returns the snapshot location.
func (c *Cache) Path() string {
	return c.path
}

// Populated reports whether Populate has succeeded.
func (c *Cache) Populated() bool {
	return c.source != SourceNone
}

// Source reports where the catalog was loaded from.
func (c *Cache) Source() Source {
	return c.source
}

// Len returns the number of items in the catalog.
func (c *Cache) Len() int {
	return len(c.items)
}

// Populate loads the snapshot when present, otherwise fetches the full
// catalog and persists it. It is a no-op on an already populated cache.
func (c *Cache) Populate(ctx context.Context, catalog Catalog) error {
	if c.Populated() {
		return nil
	}
	if c.path == "" {
		return failures.Wrap(failures.ErrConfiguration, "itemcache", "populate", "snapshot path not configured", nil)
	}

	return fileutil.WithLock(ctx, c.path, func() error {
		exists, err := fileutil.Exists(c.path)
		if err != nil {
			return failures.Wrap(failures.ErrIO, "itemcache", "stat snapshot", c.path, err)
		}
		if exists {
			c.logger.Debug("snapshot found", logging.String("path", c.path))
			items, err := readSnapshot(c.path)
			if err != nil {
				return err
			}
			c.adopt(items, SourceSnapshot)
			return nil
		}

		if catalog == nil {
			return failures.Wrap(failures.ErrNotFound, "itemcache", "populate", "no snapshot at "+c.path, nil)
		}
		c.logger.Debug("snapshot missing; fetching catalog", logging.String("path", c.path))
		items, err := fetchCatalog(ctx, catalog, c.logger)
		if err != nil {
			return err
		}
		if err := writeSnapshot(c.path, items); err != nil {
			return err
		}
		c.logger.Debug("wrote snapshot", logging.String("path", c.path))
		c.adopt(items, SourceRemote)
		return nil
	})
}

// Refresh discards the snapshot and repopulates from the remote catalog.
func (c *Cache) Refresh(ctx context.Context, catalog Catalog) error {
	if err := RemoveSnapshot(c.path); err != nil {
		return err
	}
	c.items = nil
	c.source = SourceNone
	return c.Populate(ctx, catalog)
}

// Lookup returns the metadata stored for id.
func (c *Cache) Lookup(id int64) (gw2.Item, error) {
	if !c.Populated() {
		return gw2.Item{}, ErrNotPopulated
	}
	item, ok := c.items[id]
	if !ok {
		return gw2.Item{}, &MissError{ID: id}
	}
	return item, nil
}

func (c *Cache) adopt(items map[int64]gw2.Item, source Source) {
	c.items = items
	c.source = source
	c.logger.Info("item cache populated",
		logging.String("source", string(source)),
		logging.Int("item_count", len(items)))
}

func fetchCatalog(ctx context.Context, catalog Catalog, logger *slog.Logger) (map[int64]gw2.Item, error) {
	if catalog == nil {
		return nil, failures.Wrap(failures.ErrConfiguration, "itemcache", "fetch catalog", "no remote catalog available", nil)
	}
	ids, err := catalog.ItemIDs(ctx)
	if err != nil {
		return nil, tagNetwork("fetch item ids", err)
	}

	total := (len(ids) + BatchSize - 1) / BatchSize
	items := make(map[int64]gw2.Item, len(ids))
	for start, batch := 0, 1; start < len(ids); start, batch = start+BatchSize, batch+1 {
		end := min(start+BatchSize, len(ids))
		logger.Debug("fetching item batch",
			logging.Int("batch", batch),
			logging.Int("batch_count", total),
			logging.Int("batch_size", end-start))
		segment, err := catalog.Items(ctx, ids[start:end])
		if err != nil {
			return nil, tagNetwork(fmt.Sprintf("fetch item batch %d of %d", batch, total), err)
		}
		if len(segment) < end-start {
			logging.WarnWithContext(logger, "item batch returned fewer items than requested", "item_batch_incomplete",
				logging.Int("batch", batch),
				logging.Int("requested", end-start),
				logging.Int("returned", len(segment)),
				logging.String(logging.FieldErrorHint, "run 'gw2inventory cache refresh' if lookups fail"),
				logging.String(logging.FieldImpact, "omitted ids are absent from the item cache"))
		}
		for _, item := range segment {
			items[item.ID] = item
		}
	}
	return items, nil
}

// tagNetwork keeps an existing marker (e.g. a decode failure) and tags
// anything else as a network failure.
func tagNetwork(operation string, err error) error {
	for _, marker := range []error{failures.ErrNetwork, failures.ErrDeserialization, failures.ErrConfiguration} {
		if errors.Is(err, marker) {
			return fmt.Errorf("itemcache: %s: %w", operation, err)
		}
	}
	return failures.Wrap(failures.ErrNetwork, "itemcache", operation, "", err)
}
