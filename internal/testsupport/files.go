package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"gw2inventory/internal/gw2"
)

// WriteSnapshot writes items to path in the item cache snapshot format.
func WriteSnapshot(t testing.TB, path string, items ...gw2.Item) {
	t.Helper()

	byID := make(map[string]gw2.Item, len(items))
	for _, item := range items {
		byID[strconv.FormatInt(item.ID, 10)] = item
	}
	data, err := json.Marshal(byID)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
