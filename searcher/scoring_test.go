package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"knapdist/knapsack"
)

func candidate(t *testing.T, value, weight float64, bestThrough float64) Candidate {
	t.Helper()
	item, err := knapsack.NewItem(value, weight, 0)
	require.NoError(t, err)
	return Candidate{Item: item, BestThrough: bestThrough}
}

func TestPowerScorer(t *testing.T) {
	var scorer PowerScorer

	t.Run("stop always scores one", func(t *testing.T) {
		for _, p := range []Params{
			{},
			{Alpha: 1, Delta: 40},
			{Alpha: 0.7, Beta: 0.6, Gamma: 0.4, Delta: 0.6},
		} {
			score, err := scorer.Score(Candidate{Stop: true}, p)
			require.NoError(t, err)
			require.Equal(t, 1.0, score, "params %+v", p)
		}
	})

	t.Run("delta zero flattens every candidate", func(t *testing.T) {
		p := Params{Alpha: 0.3, Beta: 0.5, Gamma: 0.2, Delta: 0}
		for _, c := range []Candidate{
			candidate(t, 535, 236, 1618),
			candidate(t, 1, 1, 1),
			{Stop: true},
		} {
			score, err := scorer.Score(c, p)
			require.NoError(t, err)
			require.Equal(t, 1.0, score)
		}
	})

	t.Run("pure lookahead reduces to the continuation optimum", func(t *testing.T) {
		p := Params{Alpha: 1, Delta: 1}
		score, err := scorer.Score(candidate(t, 535, 236, 1618), p)
		require.NoError(t, err)
		require.InDelta(t, 1618.0, score, 1e-9, "alpha 1 ignores the item's own value")

		better := candidate(t, 1, 1, 1700)
		worse := candidate(t, 999, 1, 1600)
		sb, err := scorer.Score(better, p)
		require.NoError(t, err)
		sw, err := scorer.Score(worse, p)
		require.NoError(t, err)
		require.Greater(t, sb, sw, "ordering must follow the lookahead, not the item value")
	})

	t.Run("myopic weighting reduces to the item value", func(t *testing.T) {
		score, err := scorer.Score(candidate(t, 535, 236, 1618), Params{Alpha: 0, Delta: 1})
		require.NoError(t, err)
		require.InDelta(t, 535.0, score, 1e-9)
	})

	t.Run("beta rewards density", func(t *testing.T) {
		// beta 0.5 maps to a density exponent of exactly 1.
		p := Params{Alpha: 0, Beta: 0.5, Delta: 1}
		score, err := scorer.Score(candidate(t, 30, 10, 0), p)
		require.NoError(t, err)
		require.InDelta(t, 90.0, score, 1e-9, "value 30 times density 3")
	})

	t.Run("gamma penalizes weight", func(t *testing.T) {
		// gamma 0.5 maps to a weight exponent of exactly -1.
		p := Params{Alpha: 0, Gamma: 0.5, Delta: 1}
		score, err := scorer.Score(candidate(t, 30, 10, 0), p)
		require.NoError(t, err)
		require.InDelta(t, 3.0, score, 1e-9, "value 30 divided by weight 10")
	})

	t.Run("delta sharpens the base", func(t *testing.T) {
		p := Params{Alpha: 0, Delta: 2}
		score, err := scorer.Score(candidate(t, 7, 1, 0), p)
		require.NoError(t, err)
		require.InDelta(t, 49.0, score, 1e-9)
	})
}

func TestValidateParams(t *testing.T) {
	t.Run("valid corners", func(t *testing.T) {
		for _, p := range []Params{
			{},
			{Alpha: 1},
			{Alpha: 0.7, Beta: 0.6, Gamma: 0.4, Delta: 0.6},
			{Beta: 0.999, Gamma: 0.999, Delta: 1e6},
		} {
			require.NoError(t, validateParams(p), "params %+v", p)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, p := range []Params{
			{Alpha: -0.01},
			{Alpha: 1.01},
			{Beta: -0.01},
			{Beta: 1},
			{Gamma: -0.01},
			{Gamma: 1},
			{Delta: -0.01},
			{Delta: math.Inf(1)},
		} {
			require.ErrorIs(t, validateParams(p), ErrInvalidParams, "params %+v", p)
		}
	})

	t.Run("NaN is rejected everywhere", func(t *testing.T) {
		nan := math.NaN()
		for _, p := range []Params{
			{Alpha: nan},
			{Beta: nan},
			{Gamma: nan},
			{Delta: nan},
		} {
			require.ErrorIs(t, validateParams(p), ErrInvalidParams, "params %+v", p)
		}
	})
}
