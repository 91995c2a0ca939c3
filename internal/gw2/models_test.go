package gw2

import "testing"

func ptr[T any](v T) *T { return &v }

func TestSameItemIgnoresCount(t *testing.T) {
	a := InventorySlot{ID: 10, Count: 3}
	b := InventorySlot{ID: 10, Count: 250}
	if !a.SameItem(b) {
		t.Fatal("slots differing only in count should match")
	}
}

func TestSameItemComparesModifiers(t *testing.T) {
	base := InventorySlot{ID: 10, Count: 1, Binding: ptr("Account"), Infusions: []int64{1, 2}, Upgrades: []int64{7}, Skin: ptr(int64(5))}
	cases := []struct {
		name  string
		other InventorySlot
		want  bool
	}{
		{"identical", InventorySlot{ID: 10, Count: 9, Binding: ptr("Account"), Infusions: []int64{1, 2}, Upgrades: []int64{7}, Skin: ptr(int64(5))}, true},
		{"infusion order", InventorySlot{ID: 10, Binding: ptr("Account"), Infusions: []int64{2, 1}, Upgrades: []int64{7}, Skin: ptr(int64(5))}, true},
		{"different id", InventorySlot{ID: 11, Binding: ptr("Account"), Infusions: []int64{1, 2}, Upgrades: []int64{7}, Skin: ptr(int64(5))}, false},
		{"binding", InventorySlot{ID: 10, Binding: ptr("Character"), Infusions: []int64{1, 2}, Upgrades: []int64{7}, Skin: ptr(int64(5))}, false},
		{"missing binding", InventorySlot{ID: 10, Infusions: []int64{1, 2}, Upgrades: []int64{7}, Skin: ptr(int64(5))}, false},
		{"bound to", InventorySlot{ID: 10, Binding: ptr("Account"), BoundTo: ptr("Aria"), Infusions: []int64{1, 2}, Upgrades: []int64{7}, Skin: ptr(int64(5))}, false},
		{"infusions", InventorySlot{ID: 10, Binding: ptr("Account"), Infusions: []int64{1, 1}, Upgrades: []int64{7}, Skin: ptr(int64(5))}, false},
		{"upgrades", InventorySlot{ID: 10, Binding: ptr("Account"), Infusions: []int64{1, 2}, Skin: ptr(int64(5))}, false},
		{"skin", InventorySlot{ID: 10, Binding: ptr("Account"), Infusions: []int64{1, 2}, Upgrades: []int64{7}, Skin: ptr(int64(6))}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.SameItem(tc.other); got != tc.want {
				t.Fatalf("SameItem = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSameItemTreatsNilAndEmptyListsAlike(t *testing.T) {
	a := InventorySlot{ID: 1, Infusions: nil}
	b := InventorySlot{ID: 1, Infusions: []int64{}}
	if !a.SameItem(b) {
		t.Fatal("nil and empty infusion lists should match")
	}
}

func TestSlotsSkipsEmptyPositionsAndBags(t *testing.T) {
	inv := Inventory{Bags: []*Bag{
		{ID: 1, Size: 3, Inventory: []*InventorySlot{{ID: 1, Count: 1}, nil, {ID: 2, Count: 2}}},
		nil,
		{ID: 2, Size: 1, Inventory: []*InventorySlot{nil}},
	}}
	slots := inv.Slots()
	if len(slots) != 2 || slots[0].ID != 1 || slots[1].ID != 2 {
		t.Fatalf("unexpected slots: %#v", slots)
	}
}
