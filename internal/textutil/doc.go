// Package textutil holds the text helpers behind item filtering: Unicode
// folding for comparisons and the default fuzzy scorer used by the browse
// view-model.
//
// FuzzyScore is deliberately swappable. The browse package only depends on
// its (score, ok) shape, so any scorer with the same signature can replace it.
package textutil
