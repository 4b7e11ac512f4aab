package knapsack

// Dominates reports whether a dominates b: a is no worse in value and no
// heavier in weight, with at least one strict. Exact ties (equal value and
// weight) collapse onto the earlier-created item, so exactly one of a
// duplicated pair survives filtering.
func Dominates(a, b Item) bool {
	if a.Value > b.Value && a.Weight <= b.Weight {
		return true
	}
	if a.Value >= b.Value && a.Weight < b.Weight {
		return true
	}
	return a.Value == b.Value && a.Weight == b.Weight && a.ID < b.ID
}

// NonDominated filters items to the antichain of non-dominated items,
// preserving input order. The pairwise check is O(n^2), fine for the
// instance sizes the engine supports.
func NonDominated(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for i, item := range items {
		dominated := false
		for j, other := range items {
			if i == j {
				continue
			}
			if Dominates(other, item) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, item)
		}
	}
	return out
}
