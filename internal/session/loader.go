package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"gw2inventory/internal/failures"
	"gw2inventory/internal/gw2"
	"gw2inventory/internal/inventory"
	"gw2inventory/internal/itemcache"
	"gw2inventory/internal/logging"
)

// ErrNoCharacters is returned when the selection is empty.
var ErrNoCharacters = errors.New("no characters selected")

// Selector chooses which characters to load from the account's list.
type Selector func(ctx context.Context, names []string) ([]string, error)

// SelectAll is the default Selector.
func SelectAll(_ context.Context, names []string) ([]string, error) {
	return names, nil
}

// SelectNamed keeps only the requested characters, in account order. Unknown
// names are an error so typos are not silently dropped.
func SelectNamed(wanted []string) Selector {
	return func(_ context.Context, names []string) ([]string, error) {
		if len(wanted) == 0 {
			return names, nil
		}
		var unknown []string
		for _, name := range wanted {
			if !slices.Contains(names, name) {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			return nil, failures.Wrap(failures.ErrNotFound, "session", "select characters",
				"unknown character(s): "+strings.Join(unknown, ", "), nil)
		}
		var out []string
		for _, name := range names {
			if slices.Contains(wanted, name) {
				out = append(out, name)
			}
		}
		return out, nil
	}
}

// Result is the outcome of a successful load.
type Result struct {
	Characters  []string
	Items       []inventory.Item
	Totals      inventory.Totals
	CacheSource itemcache.Source
}

// Loader wires the remote API and the item cache together.
type Loader struct {
	remote   gw2.Remote
	cache    *itemcache.Cache
	selector Selector
	logger   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithSelector overrides the character selector.
func WithSelector(selector Selector) Option {
	return func(l *Loader) {
		if selector != nil {
			l.selector = selector
		}
	}
}

// WithLogger sets the logger used for progress reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader constructs a Loader.
func NewLoader(remote gw2.Remote, cache *itemcache.Cache, opts ...Option) *Loader {
	l := &Loader{
		remote:   remote,
		cache:    cache,
		selector: SelectAll,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = logging.NewComponentLogger(l.logger, "session")
	return l
}

// Load runs the startup pipeline.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	result, err := l.load(ctx)
	if err != nil && !errors.Is(err, ErrNoCharacters) && !errors.Is(err, context.Canceled) {
		attrs := []logging.Attr{logging.Error(err)}
		if hint := failures.Hint(err); hint != "" {
			attrs = append(attrs, logging.String(logging.FieldErrorHint, hint))
		}
		logging.ErrorWithContext(l.logger, "inventory load failed", "session_load_failed", attrs...)
	}
	return result, err
}

func (l *Loader) load(ctx context.Context) (Result, error) {
	started := time.Now()

	if err := l.cache.Populate(ctx, l.remote); err != nil {
		return Result{}, err
	}

	names, err := l.Characters(ctx)
	if err != nil {
		return Result{}, err
	}

	selected, err := l.selector(ctx, names)
	if err != nil {
		return Result{}, err
	}
	if len(selected) == 0 {
		return Result{}, ErrNoCharacters
	}

	inventories := make([]inventory.CharacterInventory, 0, len(selected))
	for _, name := range selected {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		inv, err := l.remote.Inventory(ctx, name)
		if err != nil {
			return Result{}, fmt.Errorf("load inventory for %s: %w", name, err)
		}
		if inv == nil {
			inv = &gw2.Inventory{}
		}
		l.logger.Debug("inventory fetched",
			logging.String(logging.FieldCharacter, name),
			logging.Int("bags", len(inv.Bags)))
		inventories = append(inventories, inventory.CharacterInventory{Name: name, Inventory: *inv})
	}

	items, err := inventory.Consolidate(inventories, l.cache)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Characters:  selected,
		Items:       items,
		Totals:      inventory.Summary(items),
		CacheSource: l.cache.Source(),
	}
	l.logger.Info("inventory loaded",
		logging.Int("characters", len(selected)),
		logging.Int("distinct_items", result.Totals.Distinct),
		logging.Int("item_count", result.Totals.Count),
		logging.String("cache_source", string(result.CacheSource)),
		logging.Duration("elapsed", time.Since(started)))
	return result, nil
}

// Characters lists the account's character names.
func (l *Loader) Characters(ctx context.Context) ([]string, error) {
	names, err := l.remote.CharacterNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	l.logger.Debug("characters listed", logging.Int("count", len(names)))
	return names, nil
}
