package searcher

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"knapdist/knapsack"
)

// Tree owns a knapsack instance and both memoization tables: the node arena
// (StateKey → Node) and the distribution cache (StateKey × parameters →
// Distribution). The caches belong to the Tree, never to the package, so
// independent instances and tests cannot interfere with each other.
type Tree struct {
	items     []knapsack.Item // master order, including dominated items
	capacity  float64
	scorer    Scorer
	tolerance float64
	root      *Node

	mu    sync.Mutex
	nodes map[StateKey]*Node

	distMu sync.Mutex
	dists  map[distKey]*distEntry
}

// distKey identifies one distribution query: a subproblem plus the parameter
// tuple it was evaluated under.
type distKey struct {
	state  StateKey
	params Params
}

// distEntry is a compute-once cache slot: concurrent queries for the same key
// share a single computation instead of duplicating work or diverging.
type distEntry struct {
	once sync.Once
	dist Distribution
	err  error
}

type Option func(*Tree)

// WithScorer replaces the default attractiveness model.
func WithScorer(s Scorer) Option {
	return func(t *Tree) {
		if s != nil {
			t.scorer = s
		}
	}
}

// WithTolerance replaces the probability-mass drift tolerance.
func WithTolerance(tolerance float64) Option {
	return func(t *Tree) {
		if tolerance > 0 {
			t.tolerance = tolerance
		}
	}
}

// New validates an instance and builds its master node: items filtered to the
// feasible non-dominated antichain, nothing included yet. Item IDs must match
// instance order (use knapsack.ItemsFromPairs).
func New(items []knapsack.Item, capacity float64, options ...Option) (*Tree, error) {
	if capacity < 0 || math.IsNaN(capacity) {
		return nil, fmt.Errorf("%w: capacity %v", knapsack.ErrInfeasibleCapacity, capacity)
	}
	if len(items) > knapsack.MaxItems {
		return nil, fmt.Errorf("%w: %d items, at most %d supported", knapsack.ErrTooManyItems, len(items), knapsack.MaxItems)
	}
	for i, item := range items {
		if !(item.Value > 0) || !(item.Weight > 0) {
			return nil, fmt.Errorf("%w: item %d (v: %v, w: %v)", knapsack.ErrInvalidItem, i, item.Value, item.Weight)
		}
		if item.ID != i {
			return nil, fmt.Errorf("%w: item %d carries ID %d, IDs must match instance order", knapsack.ErrInvalidItem, i, item.ID)
		}
	}

	t := &Tree{
		items:     slices.Clone(items),
		capacity:  capacity,
		scorer:    PowerScorer{},
		tolerance: DefaultTolerance,
		nodes:     make(map[StateKey]*Node),
		dists:     make(map[distKey]*distEntry),
	}
	for _, option := range options {
		option(t)
	}

	feasible := make([]knapsack.Item, 0, len(items))
	for _, item := range t.items {
		if item.Weight <= capacity {
			feasible = append(feasible, item)
		}
	}
	t.root = t.node(capacity, knapsack.NonDominated(feasible))
	return t, nil
}

// node returns the arena node for (capacity, available), creating it on first
// use. On a cache hit the stored node's structure is verified against the
// requested one: a mismatch means two distinct subproblems collided on one
// StateKey, which is a fatal invariant violation.
func (t *Tree) node(capacity float64, available []knapsack.Item) *Node {
	key := stateKey(capacity, available)

	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[key]; ok {
		if n.capacity != capacity || !slices.Equal(n.available, available) {
			panic(fmt.Errorf("%w: key %s maps to distinct subproblems", ErrCacheInconsistency, key))
		}
		return n
	}
	n := &Node{key: key, capacity: capacity, available: available, master: t}
	t.nodes[key] = n
	return n
}

// Root is the master node of the instance.
func (t *Tree) Root() *Node {
	return t.root
}

// Capacity is the instance's weight budget.
func (t *Tree) Capacity() float64 {
	return t.capacity
}

// Items returns the instance's items in input order, including any dominated
// items (they occupy positions in output vectors even though they are never
// branched on).
func (t *Tree) Items() []knapsack.Item {
	return slices.Clone(t.items)
}

// Nodes reports how many distinct subproblems have been materialized so far.
func (t *Tree) Nodes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.nodes)
}

// OptimalValue is the value of the optimal terminal selection reachable from
// the root.
func (t *Tree) OptimalValue() float64 {
	return t.root.Best()
}

// Reachable answers the decision variant's Boolean question: can any terminal
// selection meet the target value.
func (t *Tree) Reachable(target float64) bool {
	return t.root.Best() >= target
}

// Value sums the values of the items in sel, in ascending ID order so the
// accumulated float is reproducible.
func (t *Tree) Value(sel knapsack.Selection) float64 {
	total := 0.0
	for _, item := range t.items {
		if sel.Contains(item.ID) {
			total += item.Value
		}
	}
	return total
}

// Weight sums the weights of the items in sel, in ascending ID order.
func (t *Tree) Weight(sel knapsack.Selection) float64 {
	total := 0.0
	for _, item := range t.items {
		if sel.Contains(item.ID) {
			total += item.Weight
		}
	}
	return total
}

// Vector renders sel as a fixed-length 0/1 inclusion vector over the
// instance's items.
func (t *Tree) Vector(sel knapsack.Selection) []int {
	return sel.Vector(len(t.items))
}

// IsOptimal reports whether sel achieves the optimal value. Ties are
// possible: several selections may all be optimal.
func (t *Tree) IsOptimal(sel knapsack.Selection) bool {
	opt := t.OptimalValue()
	return math.Abs(t.Value(sel)-opt) <= t.tolerance*math.Max(1, opt)
}
