package knapsack

import "math/bits"

// Selection is a terminal selection vector encoded as a bitmask over item
// IDs: bit i set means the item with ID i is included.
type Selection uint64

// Contains reports whether the item with the given ID is included.
func (s Selection) Contains(id int) bool {
	return s&(1<<uint(id)) != 0
}

// With returns the selection extended by the item with the given ID.
func (s Selection) With(id int) Selection {
	return s | 1<<uint(id)
}

// Count is the number of included items.
func (s Selection) Count() int {
	return bits.OnesCount64(uint64(s))
}

// Vector renders the selection as a fixed-length 0/1 inclusion vector over n
// items, in ID order.
func (s Selection) Vector(n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		if s.Contains(i) {
			out[i] = 1
		}
	}
	return out
}
