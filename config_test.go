package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Seednode/chickenbanana/games/chickenbanana"
)

func testConfig() *Config {
	return &Config{
		bind:          "127.0.0.1",
		modeName:      "sequential",
		playerTimeout: time.Minute,
		port:          8080,
		tiles:         4,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port too low", func(c *Config) { c.port = 0 }, "invalid port"},
		{"port too high", func(c *Config) { c.port = 70000 }, "invalid port"},
		{"cert without key", func(c *Config) { c.tlsCert = "cert.pem" }, "tls-key"},
		{"odd tiles", func(c *Config) { c.tiles = 35 }, "--tiles"},
		{"no tiles", func(c *Config) { c.tiles = 0 }, "--tiles"},
		{"negative delay", func(c *Config) { c.revealDelay = -time.Second }, "--reveal-delay"},
		{"bad mode", func(c *Config) { c.modeName = "freeforall" }, "--mode"},
	}

	for _, tt := range tests {
		cfg := testConfig()
		tt.modify(cfg)

		err := cfg.validate()
		switch {
		case tt.want == "" && err != nil:
			t.Errorf("%s: unexpected error %v", tt.name, err)
		case tt.want != "" && (err == nil || !strings.Contains(err.Error(), tt.want)):
			t.Errorf("%s: error = %v, want mention of %q", tt.name, err, tt.want)
		}
	}
}

func TestConfigValidateWrapsEngineErrors(t *testing.T) {
	cfg := testConfig()
	cfg.tiles = 3
	if err := cfg.validate(); !errors.Is(err, chickenbanana.ErrInvalidTileCount) {
		t.Errorf("error = %v, want ErrInvalidTileCount", err)
	}

	cfg = testConfig()
	cfg.modeName = "nope"
	if err := cfg.validate(); !errors.Is(err, chickenbanana.ErrUnknownMode) {
		t.Errorf("error = %v, want ErrUnknownMode", err)
	}
}

func TestConfigGameOptions(t *testing.T) {
	cfg := testConfig()
	cfg.modeName = "simultaneous"
	cfg.revealDelay = 500 * time.Millisecond

	if err := cfg.validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	opts := cfg.gameOptions()
	if opts.Tiles != 4 || opts.Mode != chickenbanana.Simultaneous || !opts.DeferReveal {
		t.Errorf("unexpected options %+v", opts)
	}

	cfg.revealDelay = 0
	if cfg.gameOptions().DeferReveal {
		t.Error("zero reveal delay should compare picks at once")
	}
}

func TestNewCmdFlags(t *testing.T) {
	cfg := &Config{}
	cmd := newCmd(cfg)

	if err := cmd.Flags().Parse([]string{"--tiles", "10", "--mode", "simultaneous", "--reveal_delay", "2s"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.tiles != 10 {
		t.Errorf("tiles = %d, want 10", cfg.tiles)
	}
	if cfg.modeName != "simultaneous" {
		t.Errorf("mode = %q", cfg.modeName)
	}
	if cfg.revealDelay != 2*time.Second {
		t.Errorf("reveal delay = %s", cfg.revealDelay)
	}
	if cfg.port != 8080 {
		t.Errorf("port default = %d", cfg.port)
	}
}

func TestNewCmdEnvironment(t *testing.T) {
	t.Setenv("CHICKENBANANA_TILES", "12")
	t.Setenv("CHICKENBANANA_DEBUG", "true")

	cfg := &Config{}
	_ = newCmd(cfg)

	if cfg.tiles != 12 {
		t.Errorf("tiles = %d, want 12 from environment", cfg.tiles)
	}
	if !cfg.debug {
		t.Error("debug not read from environment")
	}
}
