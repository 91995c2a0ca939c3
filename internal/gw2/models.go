package gw2

import "slices"

// InventorySlot is one occupied bag position.
type InventorySlot struct {
	ID        int64   `json:"id"`
	Count     int     `json:"count"`
	Binding   *string `json:"binding,omitempty"`
	BoundTo   *string `json:"bound_to,omitempty"`
	Infusions []int64 `json:"infusions,omitempty"`
	Upgrades  []int64 `json:"upgrades,omitempty"`
	Skin      *int64  `json:"skin,omitempty"`
}

// SameItem reports whether two slots hold the same item in every respect
// except count. Infusions and upgrades compare as multisets.
func (s InventorySlot) SameItem(other InventorySlot) bool {
	return s.ID == other.ID &&
		equalOptional(s.Binding, other.Binding) &&
		equalOptional(s.BoundTo, other.BoundTo) &&
		equalOptional(s.Skin, other.Skin) &&
		sameMultiset(s.Infusions, other.Infusions) &&
		sameMultiset(s.Upgrades, other.Upgrades)
}

// Bag is an equipped bag; nil entries in Inventory are empty positions.
type Bag struct {
	ID        int64            `json:"id"`
	Size      int              `json:"size"`
	Inventory []*InventorySlot `json:"inventory"`
}

// Inventory is the payload of /characters/:name/inventory. Nil bags are
// unequipped bag slots.
type Inventory struct {
	Bags []*Bag `json:"bags"`
}

// Slots flattens every bag into the occupied slots, in bag order.
func (inv Inventory) Slots() []InventorySlot {
	var slots []InventorySlot
	for _, bag := range inv.Bags {
		if bag == nil {
			continue
		}
		for _, slot := range bag.Inventory {
			if slot == nil {
				continue
			}
			slots = append(slots, *slot)
		}
	}
	return slots
}

// Item is the descriptive metadata for an item id. It is immutable once
// fetched and is also the record shape of the local snapshot.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type"`
	Level       int     `json:"level"`
	Rarity      string  `json:"rarity"`
	Icon        *string `json:"icon,omitempty"`
}

// DescriptionText returns the description or an empty string.
func (i Item) DescriptionText() string {
	if i.Description == nil {
		return ""
	}
	return *i.Description
}

func equalOptional[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameMultiset(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	left := slices.Clone(a)
	right := slices.Clone(b)
	slices.Sort(left)
	slices.Sort(right)
	return slices.Equal(left, right)
}

// TokenInfo describes the API key as reported by /tokeninfo.
type TokenInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether the key grants the named scope.
func (t TokenInfo) HasPermission(scope string) bool {
	return slices.Contains(t.Permissions, scope)
}
