package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"knapdist/report"
	"knapdist/searcher"
)

var (
	instancePath string
	verbose      bool

	alpha     float64
	beta      float64
	gamma     float64
	delta     float64
	threshold float64
	target    float64
)

func main() {
	root := &cobra.Command{
		Use:           "knapdist",
		Short:         "Choice-distribution model for knapsack problem instances",
		Long:          "knapdist computes the probability distribution over terminal item selections that a boundedly-rational decision-maker reaches in a knapsack problem instance.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().StringVarP(&instancePath, "instance", "i", "", "path to a YAML instance file (required)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Float64Var(&alpha, "alpha", 0.7, "search breadth")
	root.PersistentFlags().Float64Var(&beta, "beta", 0.6, "density preference")
	root.PersistentFlags().Float64Var(&gamma, "gamma", 0.4, "weight aversion")
	root.PersistentFlags().Float64Var(&delta, "delta", 0.6, "rationality")
	_ = root.MarkPersistentFlagRequired("instance")

	dist := &cobra.Command{
		Use:   "dist",
		Short: "Compute and print the full terminal distribution",
		RunE:  runDist,
	}
	dist.Flags().Float64Var(&threshold, "threshold", 0.0001, "only print terminals with at least this mass")

	decide := &cobra.Command{
		Use:   "decide",
		Short: "Solve the decision variant: reachability and witness probability",
		RunE:  runDecide,
	}
	decide.Flags().Float64Var(&target, "target", 0, "target value (falls back to the instance file)")

	root.AddCommand(dist, decide)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func runDist(cmd *cobra.Command, args []string) error {
	spec, items, err := loadInstance(instancePath)
	if err != nil {
		return err
	}
	params := resolveParams(cmd, spec)

	start := time.Now()
	tree, err := searcher.New(items, spec.Capacity)
	if err != nil {
		return err
	}
	d, err := tree.Distribution(tree.Root(), params)
	if err != nil {
		return err
	}
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("nodes", tree.Nodes()).
		Int("terminals", len(d)).
		Msg("distribution computed")

	return report.Render(os.Stdout, tree, d, params, threshold)
}

func runDecide(cmd *cobra.Command, args []string) error {
	spec, items, err := loadInstance(instancePath)
	if err != nil {
		return err
	}
	params := resolveParams(cmd, spec)

	if !cmd.Flags().Changed("target") {
		if spec.Target == nil {
			return fmt.Errorf("no target: pass --target or set target in %s", instancePath)
		}
		target = *spec.Target
	}

	start := time.Now()
	tree, err := searcher.New(items, spec.Capacity)
	if err != nil {
		return err
	}
	reachable, witness, err := tree.SolveDecision(params, target)
	if err != nil {
		return err
	}
	log.Debug().
		Dur("elapsed", time.Since(start)).
		Int("nodes", tree.Nodes()).
		Msg("decision variant solved")

	fmt.Printf("Target: %g\n", target)
	fmt.Printf("Reachable: %t\n", reachable)
	fmt.Printf("Witness probability: %.3f%%\n", 100*witness)
	return nil
}

// resolveParams layers parameter sources: built-in defaults, then the
// instance file, then any explicitly set flags.
func resolveParams(cmd *cobra.Command, spec *instanceFile) searcher.Params {
	p := searcher.Params{Alpha: alpha, Beta: beta, Gamma: gamma, Delta: delta}
	if spec.Params == nil {
		return p
	}
	if !cmd.Flags().Changed("alpha") {
		p.Alpha = spec.Params.Alpha
	}
	if !cmd.Flags().Changed("beta") {
		p.Beta = spec.Params.Beta
	}
	if !cmd.Flags().Changed("gamma") {
		p.Gamma = spec.Params.Gamma
	}
	if !cmd.Flags().Changed("delta") {
		p.Delta = spec.Params.Delta
	}
	return p
}
