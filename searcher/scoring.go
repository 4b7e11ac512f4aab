package searcher

import (
	"fmt"
	"math"
)

// PowerScorer is the default attractiveness model: a power-law blend of the
// candidate's perceived value, density, and weight, sharpened by delta.
//
//	base  = ((1-α)·value + α·bestThrough) · density^(β/(1-β)) · weight^(-γ/(1-γ))
//	score = base^δ
//
// The stop pseudo-choice has base 1. At δ=0 every candidate scores 1, a fully
// random choice; as δ grows, mass concentrates on the candidate with the
// highest base, and with α=1, β=γ=0 that is exactly the edge leading to the
// optimal continuation. Scores depend only on the candidate and the
// subproblem, never on path history.
type PowerScorer struct{}

func (PowerScorer) Score(c Candidate, p Params) (float64, error) {
	if err := validateParams(p); err != nil {
		return 0, err
	}
	if c.Stop {
		return 1, nil
	}

	b := p.Beta / (1 - p.Beta)
	g := p.Gamma / (1 - p.Gamma)
	perceived := (1-p.Alpha)*c.Item.Value + p.Alpha*c.BestThrough
	base := perceived * math.Pow(c.Item.Density(), b) * math.Pow(c.Item.Weight, -g)
	return math.Pow(base, p.Delta), nil
}

func validateParams(p Params) error {
	if !(p.Alpha >= 0 && p.Alpha <= 1) {
		return fmt.Errorf("%w: alpha must be in [0, 1], got %v", ErrInvalidParams, p.Alpha)
	}
	if !(p.Beta >= 0 && p.Beta < 1) {
		return fmt.Errorf("%w: beta must be in [0, 1), got %v", ErrInvalidParams, p.Beta)
	}
	if !(p.Gamma >= 0 && p.Gamma < 1) {
		return fmt.Errorf("%w: gamma must be in [0, 1), got %v", ErrInvalidParams, p.Gamma)
	}
	if !(p.Delta >= 0) || math.IsInf(p.Delta, 1) {
		return fmt.Errorf("%w: delta must be a non-negative finite real, got %v", ErrInvalidParams, p.Delta)
	}
	return nil
}
