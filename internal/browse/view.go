package browse

import (
	"fmt"

	"gw2inventory/internal/inventory"
)

// Scorer rates how well candidate matches query. ok is false when the
// candidate does not match at all.
type Scorer func(candidate, query string) (score int, ok bool)

// Filter returns the items whose name the scorer accepts, in source order.
// An empty query matches everything.
func Filter(items []inventory.Item, query string, scorer Scorer) []inventory.Item {
	if query == "" || scorer == nil {
		return items
	}
	matches := make([]inventory.Item, 0, len(items))
	for _, item := range items {
		if _, ok := scorer(item.Name, query); ok {
			matches = append(matches, item)
		}
	}
	return matches
}

// Paginate returns page (zero-based) of matches. Pages past the end, negative
// pages, and non-positive page sizes yield an empty slice.
func Paginate(matches []inventory.Item, page, pageSize int) []inventory.Item {
	if page < 0 || pageSize <= 0 {
		return nil
	}
	start := page * pageSize
	if start >= len(matches) {
		return nil
	}
	end := min(start+pageSize, len(matches))
	return matches[start:end]
}

// MaxPages returns the number of pages needed for count matches. It is at
// least 1 so an empty result still has a page to show.
func MaxPages(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// FormatRow renders one list line.
func FormatRow(item inventory.Item) string {
	return fmt.Sprintf("%s (x%d) - %s", item.Name, item.Count, item.Character)
}
