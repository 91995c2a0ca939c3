package itemcache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"time"

	"gw2inventory/internal/failures"
	"gw2inventory/internal/fileutil"
	"gw2inventory/internal/gw2"
)

// SnapshotInfo describes the snapshot file on disk.
type SnapshotInfo struct {
	Path      string
	Exists    bool
	SizeBytes int64
	ModTime   time.Time
}

// Stat inspects the snapshot at path without loading it.
func Stat(path string) (SnapshotInfo, error) {
	info := SnapshotInfo{Path: path}
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return info, nil
		}
		return info, failures.Wrap(failures.ErrIO, "itemcache", "stat snapshot", path, err)
	}
	info.Exists = true
	info.SizeBytes = st.Size()
	info.ModTime = st.ModTime()
	return info, nil
}

// RemoveSnapshot deletes the snapshot at path. A missing file is not an error.
func RemoveSnapshot(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return failures.Wrap(failures.ErrIO, "itemcache", "remove snapshot", path, err)
	}
	return nil
}

// readSnapshot decodes the JSON object keyed by item id.
func readSnapshot(path string) (map[int64]gw2.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failures.Wrap(failures.ErrIO, "itemcache", "read snapshot", path, err)
	}
	var items map[int64]gw2.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, failures.Wrap(failures.ErrDeserialization, "itemcache", "parse snapshot", path, err)
	}
	if items == nil {
		return nil, failures.Wrap(failures.ErrDeserialization, "itemcache", "parse snapshot", path+": not a JSON object", nil)
	}
	return items, nil
}

// writeSnapshot replaces the snapshot atomically.
func writeSnapshot(path string, items map[int64]gw2.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return failures.Wrap(failures.ErrIO, "itemcache", "marshal snapshot", "", err)
	}
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return failures.Wrap(failures.ErrIO, "itemcache", "write snapshot", path, err)
	}
	return nil
}
