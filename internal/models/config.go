package models

import "fmt"

// Default run parameters
const (
	DefaultBudget         = 24
	DefaultExtendedBudget = 32
	DefaultTopN           = 3
	DefaultSplitDepth     = 6
)

// Config holds the parameters of a full run over a set of blueprints
type Config struct {
	// Budget is the number of steps in the quality pass
	Budget int `json:"budget"`
	// ExtendedBudget is the number of steps in the top-N pass
	ExtendedBudget int `json:"extendedBudget"`
	TopN           int `json:"topN"`
	// Workers bounds concurrent blueprint searches (0 = NumCPU, or 1 with a SplitDepth)
	Workers int `json:"workers"`
	// SplitDepth is the frontier depth for searching one blueprint in parallel (0 = sequential)
	SplitDepth int `json:"splitDepth"`

	GreedyGeode bool `json:"greedyGeode"` // Always build a geode robot when affordable
	Saturation  bool `json:"saturation"`  // Skip robots beyond the max per-step spend
}

// DefaultConfig returns the standard two-pass configuration
func DefaultConfig() Config {
	return Config{
		Budget:         DefaultBudget,
		ExtendedBudget: DefaultExtendedBudget,
		TopN:           DefaultTopN,
		GreedyGeode:    true,
		Saturation:     true,
	}
}

// Validate rejects values the solver cannot run with
func (c *Config) Validate() error {
	if c.Budget < 0 {
		return fmt.Errorf("budget must not be negative, got %d", c.Budget)
	}
	if c.ExtendedBudget < 0 {
		return fmt.Errorf("extended budget must not be negative, got %d", c.ExtendedBudget)
	}
	if c.TopN < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.TopN)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.SplitDepth < 0 {
		return fmt.Errorf("split depth must not be negative, got %d", c.SplitDepth)
	}
	return nil
}
