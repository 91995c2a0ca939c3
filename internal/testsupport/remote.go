package testsupport

import (
	"context"
	"fmt"
	"sync"

	"gw2inventory/internal/failures"
	"gw2inventory/internal/gw2"
)

// FakeRemote is an in-memory gw2.Remote.
type FakeRemote struct {
	mu          sync.Mutex
	Names       []string
	Inventories map[string]gw2.Inventory
	Catalog     []gw2.Item
	// Err, when set, fails every call.
	Err error

	Calls []string
}

var _ gw2.Remote = (*FakeRemote)(nil)

func (f *FakeRemote) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
	return f.Err
}

func (f *FakeRemote) CharacterNames(context.Context) ([]string, error) {
	if err := f.record("characters"); err != nil {
		return nil, err
	}
	return append([]string(nil), f.Names...), nil
}

func (f *FakeRemote) Inventory(_ context.Context, character string) (*gw2.Inventory, error) {
	if err := f.record("inventory:" + character); err != nil {
		return nil, err
	}
	inv, ok := f.Inventories[character]
	if !ok {
		return nil, failures.Wrap(failures.ErrNetwork, "fake", "inventory", fmt.Sprintf("status 404 for %s", character), nil)
	}
	return &inv, nil
}

func (f *FakeRemote) ItemIDs(context.Context) ([]int64, error) {
	if err := f.record("item ids"); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(f.Catalog))
	for _, item := range f.Catalog {
		ids = append(ids, item.ID)
	}
	return ids, nil
}

func (f *FakeRemote) Items(_ context.Context, ids []int64) ([]gw2.Item, error) {
	if err := f.record(fmt.Sprintf("items:%d", len(ids))); err != nil {
		return nil, err
	}
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []gw2.Item
	for _, item := range f.Catalog {
		if wanted[item.ID] {
			out = append(out, item)
		}
	}
	return out, nil
}

// CallCount returns how many recorded calls match call exactly.
func (f *FakeRemote) CallCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == call {
			n++
		}
	}
	return n
}
