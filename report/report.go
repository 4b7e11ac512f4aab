// Package report renders terminal distributions for human consumption. It is
// a consumer of the engine, not part of it: nothing here feeds back into the
// tree or the caches.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"knapdist/knapsack"
	"knapdist/searcher"
)

// Render writes a summary of a terminal distribution: the instance and
// parameters, then every terminal selection with at least threshold mass,
// sorted by descending mass (ties by ascending selection), with its inclusion
// vector, achieved value and weight, percentage, and a *** marker on optimal
// selections.
func Render(w io.Writer, t *searcher.Tree, d searcher.Distribution, p searcher.Params, threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return fmt.Errorf("report: threshold must be in [0, 1], got %v", threshold)
	}

	selections := maps.Keys(d)
	slices.SortFunc(selections, func(a, b knapsack.Selection) int {
		switch {
		case d[a] > d[b]:
			return -1
		case d[a] < d[b]:
			return 1
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})

	items := t.Items()
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.String()
	}

	fmt.Fprintf(w, "Inputs\n\n")
	fmt.Fprintf(w, "Parameters: α = %g, β = %g, γ = %g, δ = %g\n\n", p.Alpha, p.Beta, p.Gamma, p.Delta)
	fmt.Fprintf(w, "Items: %s\n\n", strings.Join(labels, ", "))
	fmt.Fprintf(w, "Budget: %g\n\n", t.Capacity())
	fmt.Fprintf(w, "-------------------------------------\n\n")
	fmt.Fprintf(w, "Output\n\n")
	fmt.Fprintf(w, "Terminal Nodes (*** for optimal):\n")

	for _, sel := range selections {
		mass := d[sel]
		if mass < threshold {
			continue
		}
		marker := ""
		if t.IsOptimal(sel) {
			marker = " ***"
		}
		fmt.Fprintf(w, "%v - Σv: %g, Σw: %g / %g - %.3f%%%s\n",
			t.Vector(sel), t.Value(sel), t.Weight(sel), t.Capacity(), 100*mass, marker)
	}

	// Total mass accumulated in ascending selection order, so the printed
	// figure is reproducible run to run.
	ascending := maps.Keys(d)
	slices.Sort(ascending)
	total := 0.0
	for _, sel := range ascending {
		total += d[sel]
	}
	fmt.Fprintf(w, "\nTotal Distribution: %g\n", total)
	fmt.Fprintf(w, "Number of Terminal Nodes: %d\n", len(d))
	return nil
}
