package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const EnvPrefix = "SECRETWORD_"

// Config controls runtime behavior for the TUI app.
type Config struct {
	// SetPath is a single puzzle set file. When empty, SetsDir/SetID pick a
	// set, and with neither the builtin set is used.
	SetPath string `env:"SET"`
	SetsDir string `env:"SETS_DIR"`
	SetID   string `env:"SET_ID"`

	// Countdown overrides the set's per-row time when positive.
	Countdown time.Duration `env:"COUNTDOWN"`

	LogPath      string `env:"LOG"`
	DebugLayout  bool   `env:"DEBUG_LAYOUT"`
	ASCIIOnly    bool   `env:"ASCII"`
	DemoScenario string `env:"DEMO"`
	UI           UIConfig
}

type UIConfig struct {
	StyleVariant string `env:"THEME"`
}

func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			StyleVariant: "pastel_bakery",
		},
	}
}

// LoadEnv overlays SECRETWORD_* variables onto cfg. A nil environ reads the
// process environment.
func LoadEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Countdown < 0 {
		return fmt.Errorf("invalid countdown %s", c.Countdown)
	}
	if c.SetPath != "" && c.SetsDir != "" {
		return fmt.Errorf("set file and sets directory are mutually exclusive")
	}
	if c.SetID != "" && c.SetsDir == "" {
		return fmt.Errorf("set id %q needs a sets directory", c.SetID)
	}
	switch c.UI.StyleVariant {
	case "", "pastel_bakery", "modern_arcade", "retro_terminal":
	default:
		return fmt.Errorf("invalid ui style variant %q", c.UI.StyleVariant)
	}
	if c.UI.StyleVariant == "" {
		c.UI.StyleVariant = "pastel_bakery"
	}
	c.DemoScenario = strings.TrimSpace(c.DemoScenario)
	return nil
}
