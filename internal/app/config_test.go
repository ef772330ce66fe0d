package app

import (
	"testing"
	"time"
)

func TestLoadEnvOverlaysDefaults(t *testing.T) {
	cfg := DefaultConfig()
	err := LoadEnv(&cfg, map[string]string{
		"SECRETWORD_COUNTDOWN": "20s",
		"SECRETWORD_THEME":     "retro_terminal",
		"SECRETWORD_ASCII":     "true",
		"SECRETWORD_SETS_DIR":  "/srv/sets",
		"SECRETWORD_SET_ID":    "cyber-basics",
		"SECRETWORD_DEMO":      " halfway ",
	})
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Countdown != 20*time.Second {
		t.Fatalf("unexpected countdown %s", cfg.Countdown)
	}
	if cfg.UI.StyleVariant != "retro_terminal" || !cfg.ASCIIOnly {
		t.Fatalf("unexpected ui config %+v ascii=%v", cfg.UI, cfg.ASCIIOnly)
	}
	if cfg.SetsDir != "/srv/sets" || cfg.SetID != "cyber-basics" {
		t.Fatalf("unexpected set selection %q/%q", cfg.SetsDir, cfg.SetID)
	}
	if cfg.DemoScenario != "halfway" {
		t.Fatalf("expected trimmed demo name, got %q", cfg.DemoScenario)
	}
}

func TestLoadEnvKeepsDefaultsWhenUnset(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadEnv(&cfg, map[string]string{}); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if cfg.UI.StyleVariant != "pastel_bakery" || cfg.Countdown != 0 {
		t.Fatalf("defaults changed: %+v", cfg)
	}
}

func TestLoadEnvRejectsBadDuration(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadEnv(&cfg, map[string]string{"SECRETWORD_COUNTDOWN": "soon"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
		ok   bool
	}{
		{name: "defaults", edit: func(*Config) {}, ok: true},
		{name: "empty theme falls back", edit: func(c *Config) { c.UI.StyleVariant = "" }, ok: true},
		{name: "negative countdown", edit: func(c *Config) { c.Countdown = -time.Second }},
		{name: "file and dir", edit: func(c *Config) { c.SetPath, c.SetsDir = "a.yaml", "sets" }},
		{name: "id without dir", edit: func(c *Config) { c.SetID = "cyber-basics" }},
		{name: "unknown theme", edit: func(c *Config) { c.UI.StyleVariant = "neon" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.edit(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected error")
			}
			if tc.ok && cfg.UI.StyleVariant == "" {
				t.Fatalf("expected theme default")
			}
		})
	}
}
