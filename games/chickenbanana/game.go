/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

import (
	"math/rand/v2"
	"slices"
)

// Options configures a Game.
type Options struct {
	// Tiles is the board size. Zero means DefaultTiles.
	Tiles int

	Mode Mode

	// DeferReveal holds a completed simultaneous round until Settle is
	// called, so the host can show both picks before comparing them.
	DeferReveal bool

	// Rand drives board shuffles. Nil uses the global source.
	Rand *rand.Rand
}

// Game owns every piece of state for one match. It is not safe for
// concurrent use; hosts must serialize calls.
type Game struct {
	opts      Options
	table     *table
	rules     rules
	revealAll bool
}

func New(opts Options) (*Game, error) {
	if opts.Tiles == 0 {
		opts.Tiles = DefaultTiles
	}

	b, err := Generate(opts.Tiles, opts.Rand)
	if err != nil {
		return nil, err
	}

	return newGame(opts, b)
}

// NewWithBoard starts a game on a fixed layout instead of a fresh shuffle.
// Later resets shuffle a new board of the same size.
func NewWithBoard(opts Options, b Board) (*Game, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	opts.Tiles = len(b)

	return newGame(opts, slices.Clone(b))
}

func newGame(opts Options, b Board) (*Game, error) {
	r, err := newRules(opts.Mode, opts.DeferReveal)
	if err != nil {
		return nil, err
	}

	return &Game{
		opts:  opts,
		table: newTable(b),
		rules: r,
	}, nil
}

func (g *Game) Mode() Mode {
	return g.rules.mode()
}

func (g *Game) Tiles() int {
	return g.opts.Tiles
}

// Select claims or picks tile n on behalf of f. It returns false, and
// changes nothing, when the command is not legal right now.
func (g *Game) Select(f Faction, n int) bool {
	return g.rules.handleSelect(g.table, f, n)
}

// Settle compares a deferred simultaneous round. It reports whether there
// was a round waiting.
func (g *Game) Settle() bool {
	return g.rules.settle(g.table)
}

func (g *Game) Settling() bool {
	s, ok := g.rules.(*simultaneous)
	return ok && s.revealing
}

func (g *Game) Terminal() bool {
	return g.rules.isTerminal(g.table)
}

func (g *Game) Result() Result {
	return g.table.result
}

// Turn returns whose click is expected in sequential mode, or NoFaction.
func (g *Game) Turn() Faction {
	if s, ok := g.rules.(*sequential); ok && !g.Terminal() {
		return s.current
	}
	return NoFaction
}

// ToggleRevealAll flips the simultaneous-mode debug view. It never touches
// claims, picks or the result.
func (g *Game) ToggleRevealAll() bool {
	if g.Mode() != Simultaneous {
		return false
	}
	g.revealAll = !g.revealAll
	return true
}

func (g *Game) RevealAll() bool {
	return g.revealAll
}

// Reset replaces the board with a fresh shuffle and discards all other
// state.
func (g *Game) Reset() {
	// the current mode always has rules
	r, _ := newRules(g.rules.mode(), g.opts.DeferReveal)
	g.restart(r)
}

// SetMode switches rule sets and resets the game.
func (g *Game) SetMode(m Mode) error {
	r, err := newRules(m, g.opts.DeferReveal)
	if err != nil {
		return err
	}

	g.opts.Mode = m
	g.restart(r)

	return nil
}

func (g *Game) restart(r rules) {
	g.table = newTable(shuffled(g.opts.Tiles, g.opts.Rand))
	g.rules = r
	g.revealAll = false
}
