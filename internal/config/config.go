// Package config provides YAML-based rules configuration loading for the
// Iota engine.
package config

import (
	"fmt"

	"github.com/vovakirdan/iota/internal/games/iota/core"
)

// RulesConfig contains the configurable parts of the game rules.
type RulesConfig struct {
	// Colors is the color palette in play. Shapes and face values are fixed.
	Colors []string `yaml:"colors"`
}

// Build converts the configuration into core rules.
func (c RulesConfig) Build() (core.Rules, error) {
	if len(c.Colors) == 0 {
		return core.DefaultRules(), nil
	}
	colors := make([]core.Color, 0, len(c.Colors))
	for _, name := range c.Colors {
		color, ok := core.ParseColor(name)
		if !ok {
			return core.Rules{}, fmt.Errorf("config: unknown color %q", name)
		}
		colors = append(colors, color)
	}
	return core.NewRules(colors...)
}
