// Package searcher models how a boundedly-rational decision-maker navigates
// the search tree of a knapsack problem instance. It is not a solver: the
// optimal selection falls out as a by-product, but the primary output is a
// probability distribution over every reachable terminal selection.
package searcher

import (
	"errors"

	"knapdist/knapsack"
)

// DefaultTolerance bounds the allowed drift of accumulated probability mass
// from 1. Drift beyond the tolerance is an engine defect and is surfaced,
// never silently renormalized.
const DefaultTolerance = 1e-9

var (
	ErrInvalidParams      = errors.New("searcher: invalid parameters")
	ErrInvalidScore       = errors.New("searcher: invalid score")
	ErrNumericDrift       = errors.New("searcher: distribution mass drifted from 1")
	ErrCacheInconsistency = errors.New("searcher: state key collision")
)

// Params are the four behavioral parameters of the choice model.
//
//	Alpha — search breadth: weight of lookahead value against immediate value
//	Beta  — density preference
//	Gamma — weight aversion
//	Delta — rationality: 0 is a fully random choice, large values are greedy
type Params struct {
	Alpha float64
	Beta  float64
	Gamma float64
	Delta float64
}

// Candidate is one choice offered at a node: either including Item, or the
// stop pseudo-choice (Stop true, Item zero). BestThrough is the maximal total
// additional value attainable by taking this choice, from backward induction.
type Candidate struct {
	Node        *Node
	Item        knapsack.Item
	Stop        bool
	BestThrough float64
}

// Scorer maps a candidate to a non-negative attractiveness weight. Scores
// must depend only on the candidate and the node's state, never on how the
// node was reached: nodes are shared across all inclusion orders that arrive
// at the same subproblem, so any history dependence would corrupt the shared
// caches.
type Scorer interface {
	Score(c Candidate, p Params) (float64, error)
}

// Distribution maps terminal selections to probability mass. A full
// distribution sums to 1 over all terminals reachable from the queried node.
type Distribution map[knapsack.Selection]float64
