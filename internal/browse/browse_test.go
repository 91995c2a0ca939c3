package browse

import (
	"fmt"
	"strings"
	"testing"

	"gw2inventory/internal/inventory"
)

func named(names ...string) []inventory.Item {
	items := make([]inventory.Item, 0, len(names))
	for i, name := range names {
		items = append(items, inventory.Item{ID: int64(i + 1), Name: name, Count: i + 1, Character: "Aria"})
	}
	return items
}

func numbered(n int) []inventory.Item {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Item %02d", i)
	}
	return named(names...)
}

func names(items []inventory.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestFilterFuzzy(t *testing.T) {
	state := New(named("Copper Ore", "Iron Ore", "Copper Wire"))
	got := names(Filter(state.Items(), "cop", state.scorer))
	if strings.Join(got, ",") != "Copper Ore,Copper Wire" {
		t.Fatalf("Filter(cop) = %v", got)
	}
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	items := named("Copper Ore", "Iron Ore")
	got := Filter(items, "", func(string, string) (int, bool) { return 0, false })
	if len(got) != 2 || got[0].Name != "Copper Ore" {
		t.Fatalf("Filter(\"\") = %v", names(got))
	}
}

func TestFilterExactNameMatches(t *testing.T) {
	state := New(named("Glob of Ectoplasm", "Mystic Coin"))
	got := Filter(state.Items(), "Mystic Coin", state.scorer)
	if len(got) != 1 || got[0].Name != "Mystic Coin" {
		t.Fatalf("exact name filter = %v", names(got))
	}
}

func TestFilterKeepsSourceOrderNotScoreOrder(t *testing.T) {
	items := named("a", "b", "c")
	scores := map[string]int{"a": 1, "b": 100, "c": 50}
	got := Filter(items, "x", func(candidate, _ string) (int, bool) { return scores[candidate], true })
	if strings.Join(names(got), "") != "abc" {
		t.Fatalf("expected source order, got %v", names(got))
	}
}

func TestPaginate(t *testing.T) {
	items := numbered(7)
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     int
	}{
		{"first page", 0, 3, 3},
		{"last partial page", 2, 3, 1},
		{"past end", 3, 3, 0},
		{"far past end", 50, 3, 0},
		{"negative page", -1, 3, 0},
		{"zero page size", 0, 0, 0},
		{"page larger than items", 0, 20, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.pageSize)
			if len(got) != tt.want {
				t.Fatalf("Paginate(page=%d,size=%d) returned %d items, want %d", tt.page, tt.pageSize, len(got), tt.want)
			}
		})
	}
	if got := Paginate(items, 2, 3); got[0].Name != "Item 06" {
		t.Fatalf("unexpected last page %v", names(got))
	}
}

func TestMaxPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{7, 3, 3},
		{6, 3, 2},
		{0, 3, 1},
		{1, 3, 1},
		{5, 0, 1},
	}
	for _, tt := range tests {
		if got := MaxPages(tt.count, tt.size); got != tt.want {
			t.Errorf("MaxPages(%d,%d) = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}

func TestFormatRow(t *testing.T) {
	got := FormatRow(inventory.Item{Name: "Copper Ore", Count: 5, Character: "Beo"})
	if got != "Copper Ore (x5) - Beo" {
		t.Fatalf("FormatRow = %q", got)
	}
}

func TestApplyInputResetsPage(t *testing.T) {
	s := New(numbered(7), WithPageSize(3))
	s = Apply(s, PageDown{})
	s = Apply(s, PageDown{})
	if s.Page() != 2 {
		t.Fatalf("expected page 2, got %d", s.Page())
	}
	s = Apply(s, Input{Rune: 'i'})
	if s.Query() != "i" || s.Page() != 0 {
		t.Fatalf("after input query=%q page=%d", s.Query(), s.Page())
	}
	s = Apply(s, PageDown{})
	s = Apply(s, Backspace{})
	if s.Query() != "" || s.Page() != 0 {
		t.Fatalf("after backspace query=%q page=%d", s.Query(), s.Page())
	}
}

func TestApplyBackspaceRemovesLastRune(t *testing.T) {
	s := New(nil)
	for _, r := range "épée" {
		s = Apply(s, Input{Rune: r})
	}
	s = Apply(s, Backspace{})
	if s.Query() != "épé" {
		t.Fatalf("query = %q", s.Query())
	}
	s = Apply(Apply(Apply(Apply(s, Backspace{}), Backspace{}), Backspace{}), Backspace{})
	if s.Query() != "" {
		t.Fatalf("backspace on empty query should stay empty, got %q", s.Query())
	}
}

func TestApplyClear(t *testing.T) {
	s := New(numbered(7), WithPageSize(3))
	s = Apply(Apply(s, Input{Rune: 'x'}), Clear{})
	if s.Query() != "" || s.Page() != 0 {
		t.Fatalf("after clear query=%q page=%d", s.Query(), s.Page())
	}
}

func TestApplyPagingBounds(t *testing.T) {
	s := New(numbered(7), WithPageSize(3))
	s = Apply(s, PageUp{})
	if s.Page() != 0 {
		t.Fatalf("page up on first page moved to %d", s.Page())
	}
	for range 5 {
		s = Apply(s, PageDown{})
	}
	if s.Page() != 2 {
		t.Fatalf("page down should stop at last page, got %d", s.Page())
	}
	if len(s.Rows()) != 1 {
		t.Fatalf("last page should hold 1 row, got %d", len(s.Rows()))
	}
}

func TestApplyResizeKeepsPage(t *testing.T) {
	s := New(numbered(7), WithPageSize(3))
	s = Apply(Apply(s, PageDown{}), PageDown{})
	s = Apply(s, Resize{Rows: 10})
	if s.Page() != 2 || s.PageSize() != 10 {
		t.Fatalf("resize changed page: page=%d size=%d", s.Page(), s.PageSize())
	}
	if rows := s.Rows(); len(rows) != 0 {
		t.Fatalf("out of range page should render empty, got %v", rows)
	}
	s = Apply(s, PageUp{})
	if s.Page() != 1 {
		t.Fatalf("page up from out of range page = %d", s.Page())
	}
	if s = Apply(s, Resize{Rows: -4}); s.PageSize() != 0 || len(s.Rows()) != 0 {
		t.Fatalf("negative resize should clamp to zero rows, size=%d", s.PageSize())
	}
}

func TestApplyTickAndExit(t *testing.T) {
	s := New(numbered(2))
	ticked := Apply(s, Tick{})
	if ticked.Query() != s.Query() || ticked.Page() != s.Page() || ticked.Done() {
		t.Fatal("tick must not change state")
	}
	if !Apply(s, Exit{}).Done() {
		t.Fatal("exit should mark state done")
	}
}

func TestApplyDoesNotMutatePreviousState(t *testing.T) {
	base := Apply(New(nil), Input{Rune: 'a'})
	left := Apply(base, Input{Rune: 'b'})
	right := Apply(base, Input{Rune: 'c'})
	if base.Query() != "a" || left.Query() != "ab" || right.Query() != "ac" {
		t.Fatalf("states share storage: base=%q left=%q right=%q", base.Query(), left.Query(), right.Query())
	}
}

func TestRowsUseCustomScorer(t *testing.T) {
	prefix := func(candidate, query string) (int, bool) {
		return 0, strings.HasPrefix(candidate, query)
	}
	s := New(named("Copper Ore", "Iron Ore", "Copper Wire"), WithScorer(prefix))
	s = Apply(Apply(s, Input{Rune: 'I'}), Input{Rune: 'r'})
	rows := s.Rows()
	if len(rows) != 1 || rows[0] != "Iron Ore (x2) - Aria" {
		t.Fatalf("rows = %v", rows)
	}
}
