package inventory

import (
	"fmt"
	"sort"

	"gw2inventory/internal/gw2"
)

// Lookup resolves item metadata by id. *itemcache.Cache satisfies it.
type Lookup interface {
	Lookup(id int64) (gw2.Item, error)
}

// CharacterInventory pairs a character with its fetched inventory. Slices of
// these keep the order in which characters were selected.
type CharacterInventory struct {
	Name      string
	Inventory gw2.Inventory
}

// Item is one merged stack joined with its metadata.
type Item struct {
	ID          int64
	Count       int
	Name        string
	Description string
	Type        string
	Rarity      string
	Level       int
	Character   string
}

// Consolidate merges each character's stacks, attaches metadata and returns
// every item sorted by name. Items with equal names keep the order in which
// they were produced: character selection order, then first appearance.
func Consolidate(inventories []CharacterInventory, lookup Lookup) ([]Item, error) {
	var out []Item
	for _, character := range inventories {
		for _, slot := range mergeSlots(character.Inventory.Slots()) {
			meta, err := lookup.Lookup(slot.ID)
			if err != nil {
				return nil, fmt.Errorf("consolidate %s: %w", character.Name, err)
			}
			out = append(out, Item{
				ID:          slot.ID,
				Count:       slot.Count,
				Name:        meta.Name,
				Description: meta.DescriptionText(),
				Type:        meta.Type,
				Rarity:      meta.Rarity,
				Level:       meta.Level,
				Character:   character.Name,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// mergeSlots folds stacks that differ only in count. Inventories hold a few
// hundred slots at most, so the pairwise scan is fine.
func mergeSlots(slots []gw2.InventorySlot) []gw2.InventorySlot {
	merged := make([]gw2.InventorySlot, 0, len(slots))
	for _, slot := range slots {
		found := false
		for i := range merged {
			if merged[i].SameItem(slot) {
				merged[i].Count += slot.Count
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, slot)
		}
	}
	return merged
}
