package searcher

import (
	"slices"
	"sync"

	"knapdist/knapsack"
)

// edge is one inclusion choice at a node: the chosen item and the subproblem
// it leads to. Children are arena references, not owned.
type edge struct {
	item  knapsack.Item
	child *Node
}

// Node is a subproblem in the decision tree: remaining capacity plus the
// items still available for inclusion. Available items are always feasible
// (weight within capacity) and dominance-closed, and are kept in ascending ID
// order so the node's key is canonical. Nodes live in the owning Tree's arena
// and are shared across all inclusion orders that reach the same subproblem;
// they carry no path state.
type Node struct {
	key       StateKey
	capacity  float64
	available []knapsack.Item
	master    *Tree // back-reference, never part of identity

	expandOnce sync.Once
	edges      []edge

	bestOnce sync.Once
	best     float64
}

// Key is the node's canonical subproblem identity.
func (n *Node) Key() StateKey {
	return n.key
}

// Fingerprint is a compact cross-run-stable identity for the subproblem.
func (n *Node) Fingerprint() uint64 {
	return n.key.Fingerprint()
}

// Capacity is the budget left to spend at this node.
func (n *Node) Capacity() float64 {
	return n.capacity
}

// Available returns the items still open for inclusion, in ID order.
func (n *Node) Available() []knapsack.Item {
	return slices.Clone(n.available)
}

// Terminal reports whether no available item fits the remaining capacity.
// Available items are feasible by construction, so terminality is simply an
// empty available set.
func (n *Node) Terminal() bool {
	return len(n.available) == 0
}

// expand builds the node's children on first use: one child per available
// item, with the chosen item removed and the remainder re-filtered for
// feasibility and dominance closure. Children are resolved through the tree's
// node cache before being materialized, so subproblems reached via different
// inclusion orders collapse onto a single Node.
func (n *Node) expand() []edge {
	n.expandOnce.Do(func() {
		edges := make([]edge, 0, len(n.available))
		for _, item := range n.available {
			remaining := n.capacity - item.Weight
			next := make([]knapsack.Item, 0, len(n.available)-1)
			for _, other := range n.available {
				if other.ID == item.ID || other.Weight > remaining {
					continue
				}
				next = append(next, other)
			}
			next = knapsack.NonDominated(next)
			edges = append(edges, edge{item: item, child: n.master.node(remaining, next)})
		}
		n.edges = edges
	})
	return n.edges
}

// Best is the maximal additional value attainable from this node, computed by
// backward induction over the pruned tree and memoized. Declining every
// remaining item is always an option, so Best is never negative; for a
// terminal node it is 0.
func (n *Node) Best() float64 {
	n.bestOnce.Do(func() {
		best := 0.0
		for _, e := range n.expand() {
			if v := e.item.Value + e.child.Best(); v > best {
				best = v
			}
		}
		n.best = best
	})
	return n.best
}
