package lib

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EvaluatorRef names a scoring function and its weight.
type EvaluatorRef struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

type Config struct {
	Width      int            `yaml:"width"`
	Cache      string         `yaml:"cache"`
	Evaluators []EvaluatorRef `yaml:"evaluators"`
}

func LoadConfig(path string) (*Config, error) {
	stream, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(stream, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Wire registers the configured scoring functions on the solver, resolving
// names through the given lookup.
func (c *Config) Wire(solver *Solver, lookup func(name string) (EvalFunc, bool)) error {
	for _, ref := range c.Evaluators {
		f, ok := lookup(ref.Name)
		if !ok {
			return fmt.Errorf("unknown evaluator '%s'", ref.Name)
		}
		solver.WithEvaluator(f, ref.Weight)
	}
	return nil
}
