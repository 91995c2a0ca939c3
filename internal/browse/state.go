package browse

import (
	"gw2inventory/internal/inventory"
	"gw2inventory/internal/textutil"
)

// DefaultPageSize is used until the first Resize arrives.
const DefaultPageSize = 10

// State is an immutable snapshot of the view-model.
type State struct {
	items    []inventory.Item
	query    []rune
	page     int
	pageSize int
	scorer   Scorer
	done     bool
}

// Option configures a new State.
type Option func(*State)

// WithScorer replaces the default fuzzy scorer.
func WithScorer(scorer Scorer) Option {
	return func(s *State) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithPageSize sets the initial page size.
func WithPageSize(rows int) Option {
	return func(s *State) {
		s.pageSize = max(rows, 0)
	}
}

// New builds the initial state. items is retained, not copied, and must not
// be modified afterwards.
func New(items []inventory.Item, opts ...Option) State {
	s := State{
		items:    items,
		pageSize: DefaultPageSize,
		scorer:   textutil.FuzzyScore,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s State) Items() []inventory.Item { return s.items }

func (s State) Query() string { return string(s.query) }

func (s State) Page() int { return s.page }

func (s State) PageSize() int { return s.pageSize }

// Done reports whether an Exit event has been applied.
func (s State) Done() bool { return s.done }

// Matches returns the items accepted by the current query.
func (s State) Matches() []inventory.Item {
	return Filter(s.items, s.Query(), s.scorer)
}

// MaxPages returns the page count for the current query and page size.
func (s State) MaxPages() int {
	return MaxPages(len(s.Matches()), s.pageSize)
}

// Visible returns the items on the current page.
func (s State) Visible() []inventory.Item {
	return Paginate(s.Matches(), s.page, s.pageSize)
}

// Rows returns the current page formatted for display.
func (s State) Rows() []string {
	visible := s.Visible()
	rows := make([]string, 0, len(visible))
	for _, item := range visible {
		rows = append(rows, FormatRow(item))
	}
	return rows
}
