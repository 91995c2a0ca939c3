// Package inventory merges raw character inventories into the flat,
// name-sorted item list the browser displays.
//
// Stacks merge only within a character, and only when every property
// except the count matches (see gw2.InventorySlot.SameItem). Metadata is
// resolved through a Lookup; a missing id aborts consolidation because it
// means the item cache no longer matches the game.
package inventory
