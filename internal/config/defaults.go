package config

import (
	_ "embed"

	"github.com/vovakirdan/iota/internal/games/iota/core"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

// DefaultRulesConfig returns the default rules configuration: every color.
func DefaultRulesConfig() RulesConfig {
	colors := core.AllColors()
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return RulesConfig{Colors: names}
}
