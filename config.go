/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Seednode/chickenbanana/games/chickenbanana"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	debug          bool
	mode           chickenbanana.Mode
	modeName       string
	playerTimeout  time.Duration
	port           int
	prefix         string
	profile        bool
	revealDelay    time.Duration
	sessionTimeout time.Duration
	tiles          int
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.tiles <= 0 || c.tiles%2 != 0 {
		return fmt.Errorf("invalid --tiles: %w: %d", chickenbanana.ErrInvalidTileCount, c.tiles)
	}
	if c.revealDelay < 0 {
		return fmt.Errorf("invalid --reveal-delay (must not be negative): %s", c.revealDelay)
	}

	mode, err := chickenbanana.ParseMode(c.modeName)
	if err != nil {
		return fmt.Errorf("invalid --mode: %w", err)
	}
	c.mode = mode

	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

// gameOptions is what every new game room starts from.
func (c *Config) gameOptions() chickenbanana.Options {
	return chickenbanana.Options{
		Tiles:       c.tiles,
		Mode:        c.mode,
		DeferReveal: c.revealDelay > 0,
	}
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CHICKENBANANA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "chickenbanana",
		Short:         "Chicken vs Banana, a two-player hidden tile party game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: CHICKENBANANA_BIND)")
	fs.BoolVar(&cfg.debug, "debug", false, "allow players to reveal every tile in simultaneous mode (env: CHICKENBANANA_DEBUG)")
	fs.StringVarP(&cfg.modeName, "mode", "m", "sequential", "rules for new games: sequential or simultaneous (env: CHICKENBANANA_MODE)")
	fs.DurationVar(&cfg.playerTimeout, "player-timeout", 10*time.Minute, "time before a disconnected player's seat is freed (env: CHICKENBANANA_PLAYER_TIMEOUT)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: CHICKENBANANA_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: CHICKENBANANA_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: CHICKENBANANA_PROFILE)")
	fs.DurationVar(&cfg.revealDelay, "reveal-delay", time.Second, "pause before comparing simultaneous picks, 0 to compare at once (env: CHICKENBANANA_REVEAL_DELAY)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle games are ended (env: CHICKENBANANA_SESSION_TIMEOUT)")
	fs.IntVarP(&cfg.tiles, "tiles", "t", chickenbanana.DefaultTiles, "number of tiles on the board, must be even (env: CHICKENBANANA_TILES)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: CHICKENBANANA_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: CHICKENBANANA_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: CHICKENBANANA_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: CHICKENBANANA_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("chickenbanana v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
