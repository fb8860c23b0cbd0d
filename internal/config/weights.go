package config

import "github.com/progracyd/capstone-matcher/internal/recommend"

// Weights converts the configuration into engine ranking weights.
func (c *Config) Weights() recommend.Weights {
	w := recommend.Weights{
		Alpha:             c.Alpha,
		Beta:              c.Beta,
		TopK:              c.TopK,
		NormalizeMatch:    true,
		CompressThreshold: c.CompressThreshold,
		CompressOffset:    c.CompressOffset,
	}
	if c.NormalizeMatch != nil {
		w.NormalizeMatch = *c.NormalizeMatch
	}
	return w
}
