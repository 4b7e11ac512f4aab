package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"knapdist/knapsack"
	"knapdist/searcher"
)

func fixture(t *testing.T) (*searcher.Tree, searcher.Distribution, searcher.Params) {
	t.Helper()
	items, err := knapsack.ItemsFromPairs([][2]float64{{10, 5}, {10, 6}})
	require.NoError(t, err)
	tree, err := searcher.New(items, 10)
	require.NoError(t, err)

	p := searcher.Params{Alpha: 1, Delta: 1}
	d, err := tree.Distribution(tree.Root(), p)
	require.NoError(t, err)
	return tree, d, p
}

func TestRender(t *testing.T) {
	t.Run("full report", func(t *testing.T) {
		tree, d, p := fixture(t)
		var buf strings.Builder
		require.NoError(t, Render(&buf, tree, d, p, 0))
		out := buf.String()

		require.Contains(t, out, "Parameters: α = 1, β = 0, γ = 0, δ = 1")
		require.Contains(t, out, "Items: (v: 10, w: 5), (v: 10, w: 6)")
		require.Contains(t, out, "Budget: 10")
		require.Contains(t, out, "Terminal Nodes (*** for optimal):")
		require.Contains(t, out, "[1 0] - Σv: 10, Σw: 5 / 10 - 90.909% ***")
		require.Contains(t, out, "[0 0] - Σv: 0, Σw: 0 / 10 - 9.091%")
		require.Contains(t, out, "Total Distribution: 1")
		require.Contains(t, out, "Number of Terminal Nodes: 2")
	})

	t.Run("descending mass order", func(t *testing.T) {
		tree, d, p := fixture(t)
		var buf strings.Builder
		require.NoError(t, Render(&buf, tree, d, p, 0))
		out := buf.String()
		require.Less(t, strings.Index(out, "[1 0]"), strings.Index(out, "[0 0]"),
			"the heavier selection must print first")
	})

	t.Run("threshold hides light selections", func(t *testing.T) {
		tree, d, p := fixture(t)
		var buf strings.Builder
		require.NoError(t, Render(&buf, tree, d, p, 0.5))
		out := buf.String()
		require.Contains(t, out, "[1 0]")
		require.NotContains(t, out, "[0 0]")
		require.Contains(t, out, "Number of Terminal Nodes: 2",
			"the count reflects the distribution, not the filter")
	})

	t.Run("only optimal selections carry the marker", func(t *testing.T) {
		tree, d, p := fixture(t)
		var buf strings.Builder
		require.NoError(t, Render(&buf, tree, d, p, 0))
		require.Equal(t, 1, strings.Count(buf.String(), "% ***"),
			"exactly one of the two selections is optimal")
	})

	t.Run("invalid threshold", func(t *testing.T) {
		tree, d, p := fixture(t)
		var buf strings.Builder
		require.Error(t, Render(&buf, tree, d, p, -0.1))
		require.Error(t, Render(&buf, tree, d, p, 1.1))
	})
}
