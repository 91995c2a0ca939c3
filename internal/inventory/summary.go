package inventory

// Totals summarises a consolidated item list.
type Totals struct {
	Distinct    int
	Count       int
	ByCharacter map[string]int
}

// Summary counts stacks and items overall and per character.
func Summary(items []Item) Totals {
	totals := Totals{ByCharacter: make(map[string]int)}
	for _, item := range items {
		totals.Distinct++
		totals.Count += item.Count
		totals.ByCharacter[item.Character] += item.Count
	}
	return totals
}
