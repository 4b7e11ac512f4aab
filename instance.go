package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"knapdist/knapsack"
)

// instanceFile is the YAML layout of a knapsack instance:
//
//	items:
//	  - {value: 535, weight: 236}
//	  - {value: 214, weight: 113}
//	capacity: 957
//	target: 1562          # optional, decision variant
//	params:               # optional defaults, overridable by flags
//	  alpha: 0.7
//	  beta: 0.6
//	  gamma: 0.4
//	  delta: 0.6
type instanceFile struct {
	Items []struct {
		Value  float64 `yaml:"value"`
		Weight float64 `yaml:"weight"`
	} `yaml:"items"`
	Capacity float64     `yaml:"capacity"`
	Target   *float64    `yaml:"target"`
	Params   *paramsFile `yaml:"params"`
}

type paramsFile struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
	Delta float64 `yaml:"delta"`
}

// loadInstance reads and validates a YAML instance file, returning the raw
// file and the constructed items.
func loadInstance(path string) (*instanceFile, []knapsack.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read instance file: %w", err)
	}

	var spec instanceFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, nil, fmt.Errorf("failed to parse instance file: %w", err)
	}
	if len(spec.Items) == 0 {
		return nil, nil, fmt.Errorf("instance file %s declares no items", path)
	}

	pairs := make([][2]float64, len(spec.Items))
	for i, item := range spec.Items {
		pairs[i] = [2]float64{item.Value, item.Weight}
	}
	items, err := knapsack.ItemsFromPairs(pairs)
	if err != nil {
		return nil, nil, err
	}
	return &spec, items, nil
}
