package searcher

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/maps"
)

// Distribution returns the probability of ending at each terminal selection
// reachable from node, under the given parameters. Selections are relative to
// the queried node; for the root they cover the whole instance. The returned
// map is a copy, so callers can mutate it without corrupting the cache.
func (t *Tree) Distribution(node *Node, p Params) (Distribution, error) {
	d, err := t.distribution(node, p)
	if err != nil {
		return nil, err
	}
	return maps.Clone(d), nil
}

// distribution resolves a query through the distribution cache with a
// compute-once discipline: a given (StateKey, params) is computed exactly
// once, and every other caller reuses that computation.
func (t *Tree) distribution(n *Node, p Params) (Distribution, error) {
	key := distKey{state: n.key, params: p}

	t.distMu.Lock()
	e, ok := t.dists[key]
	if !ok {
		e = &distEntry{}
		t.dists[key] = e
	}
	t.distMu.Unlock()

	e.once.Do(func() {
		e.dist, e.err = t.compute(n, p)
	})
	return e.dist, e.err
}

// compute expands one node into its terminal distribution. Candidates are
// scored in a fixed order (available items by ID, then the stop pseudo-choice)
// because the accumulation order decides the exact float result and it must
// be reproducible across runs.
func (t *Tree) compute(n *Node, p Params) (Distribution, error) {
	if n.Terminal() {
		return Distribution{0: 1}, nil
	}

	edges := n.expand()
	raws := make([]float64, len(edges)+1)
	total := 0.0
	for i, e := range edges {
		raw, err := t.scorer.Score(Candidate{
			Node:        n,
			Item:        e.item,
			BestThrough: e.item.Value + e.child.Best(),
		}, p)
		if err != nil {
			return nil, err
		}
		if raw < 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
			return nil, fmt.Errorf("%w: item %d scored %v", ErrInvalidScore, e.item.ID, raw)
		}
		raws[i] = raw
		total += raw
	}
	stop, err := t.scorer.Score(Candidate{Node: n, Stop: true}, p)
	if err != nil {
		return nil, err
	}
	if stop < 0 || math.IsNaN(stop) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("%w: stop choice scored %v", ErrInvalidScore, stop)
	}
	raws[len(edges)] = stop
	total += stop
	if total <= 0 {
		return nil, fmt.Errorf("%w: every candidate scored 0 at node %s", ErrInvalidScore, n.key)
	}

	out := make(Distribution)
	for i, e := range edges {
		if raws[i] == 0 {
			continue
		}
		sub, err := t.distribution(e.child, p)
		if err != nil {
			return nil, err
		}
		prob := raws[i] / total
		// Lift the child's relative selections by the chosen item. The same
		// terminal selection can arrive via several children (different
		// inclusion orders), so masses accumulate.
		for sel, mass := range sub {
			out[sel.With(e.item.ID)] += prob * mass
		}
	}
	if stopProb := raws[len(edges)] / total; stopProb > 0 {
		// Stopping makes this node itself the terminal outcome: the empty
		// relative selection. No child edge ever maps there.
		out[0] += stopProb
	}

	sum := 0.0
	for _, mass := range out {
		sum += mass
	}
	if math.Abs(sum-1) > t.tolerance {
		return nil, fmt.Errorf("%w: mass %.17g at node %s", ErrNumericDrift, sum, n.key)
	}
	return out, nil
}

// WitnessMass is the raw probability mass over witness terminals: selections
// whose value meets target. Failure is itself a reportable outcome, so the
// mass is NOT renormalized. Accumulation runs in ascending selection order
// for reproducibility.
func (t *Tree) WitnessMass(d Distribution, target float64) float64 {
	selections := maps.Keys(d)
	slices.Sort(selections)
	total := 0.0
	for _, sel := range selections {
		if t.Value(sel) >= target {
			total += d[sel]
		}
	}
	return total
}

// SolveDecision answers the decision variant at the root: whether target is
// reachable at all, and the probability that the modeled decision-maker
// actually ends at a witness.
func (t *Tree) SolveDecision(p Params, target float64) (reachable bool, witnessMass float64, err error) {
	d, err := t.distribution(t.root, p)
	if err != nil {
		return false, 0, err
	}
	return t.Reachable(target), t.WitnessMass(d, target), nil
}
