package chickenbanana_test

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	cb "github.com/Seednode/chickenbanana/games/chickenbanana"
)

func tile(n int, kind cb.Faction) cb.Tile {
	return cb.Tile{Number: n, Kind: kind}
}

// alternating returns chicken, banana, chicken, ... numbered from 1.
func alternating(n int) cb.Board {
	b := make(cb.Board, n)
	for i := range b {
		kind := cb.Chicken
		if i%2 == 1 {
			kind = cb.Banana
		}
		b[i] = tile(i+1, kind)
	}
	return b
}

func newTestGame(t *testing.T, opts cb.Options) *cb.Game {
	t.Helper()

	g, err := cb.NewWithBoard(opts, alternating(4))
	if err != nil {
		t.Fatalf("NewWithBoard: %v", err)
	}
	return g
}

func TestNewDefaults(t *testing.T) {
	g, err := cb.New(cb.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Tiles() != cb.DefaultTiles {
		t.Errorf("expected %d tiles, got %d", cb.DefaultTiles, g.Tiles())
	}
	if g.Mode() != cb.Sequential {
		t.Errorf("expected sequential mode, got %s", g.Mode())
	}
	if g.Turn() != cb.Chicken {
		t.Errorf("expected chicken to start, got %s", g.Turn())
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := cb.New(cb.Options{Tiles: 7}); !errors.Is(err, cb.ErrInvalidTileCount) {
		t.Errorf("odd tile count error = %v", err)
	}
	if _, err := cb.New(cb.Options{Tiles: -4}); !errors.Is(err, cb.ErrInvalidTileCount) {
		t.Errorf("negative tile count error = %v", err)
	}
	if _, err := cb.New(cb.Options{Mode: cb.Mode(9)}); !errors.Is(err, cb.ErrUnknownMode) {
		t.Errorf("unknown mode error = %v", err)
	}
}

func TestSequentialWrongClickLoses(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Sequential})

	if !g.Select(cb.NoFaction, 1) {
		t.Fatal("chicken claiming tile 1 should be accepted")
	}
	if g.Turn() != cb.Banana {
		t.Fatalf("expected banana's turn, got %s", g.Turn())
	}
	if s := g.Snapshot(); !slices.Equal(s.Claimed, []int{1}) {
		t.Fatalf("claimed = %v, want [1]", s.Claimed)
	}

	if !g.Select(cb.NoFaction, 3) {
		t.Fatal("banana clicking tile 3 should be accepted")
	}

	want := cb.Result{Outcome: cb.Won, Winner: cb.Chicken, Reason: "Banana clicked wrong"}
	if g.Result() != want {
		t.Fatalf("result = %+v, want %+v", g.Result(), want)
	}
	if !g.Terminal() {
		t.Fatal("game should be over")
	}

	s := g.Snapshot()
	if !slices.Equal(s.Wrong, []int{3}) {
		t.Errorf("wrong = %v, want [3]", s.Wrong)
	}
	if s.Turn != cb.NoFaction {
		t.Errorf("finished game should have no turn, got %s", s.Turn)
	}
	if s.Message != "Chicken player wins! Banana clicked wrong" {
		t.Errorf("unexpected message %q", s.Message)
	}

	for n := 1; n <= 4; n++ {
		if g.Select(cb.NoFaction, n) {
			t.Errorf("select %d accepted after game over", n)
		}
	}
	if after := g.Snapshot(); !slices.Equal(after.Claimed, s.Claimed) || !slices.Equal(after.Wrong, s.Wrong) {
		t.Error("state changed after game over")
	}
}

func TestSequentialCompletingSetWins(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Sequential})

	for _, n := range []int{1, 2, 3} {
		if !g.Select(cb.NoFaction, n) {
			t.Fatalf("select %d rejected", n)
		}
	}

	want := cb.Result{Outcome: cb.Won, Winner: cb.Chicken, Reason: cb.ReasonCompletedSet}
	if g.Result() != want {
		t.Fatalf("result = %+v, want %+v", g.Result(), want)
	}
	if g.Select(cb.NoFaction, 4) {
		t.Error("select accepted after win")
	}
}

func TestSequentialIgnoresIllegalClicks(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Sequential})

	tests := []struct {
		name    string
		faction cb.Faction
		tile    int
	}{
		{"out of turn", cb.Banana, 2},
		{"no such tile", cb.NoFaction, 0},
		{"past the end", cb.NoFaction, 5},
	}
	for _, tt := range tests {
		if g.Select(tt.faction, tt.tile) {
			t.Errorf("%s: select accepted", tt.name)
		}
	}

	g.Select(cb.Chicken, 1)

	if g.Select(cb.Banana, 1) {
		t.Error("already claimed tile accepted")
	}
	if g.Turn() != cb.Banana {
		t.Errorf("ignored click changed turn to %s", g.Turn())
	}
	if g.Result().Terminal() {
		t.Error("ignored click ended the game")
	}
}

func TestSimultaneousBothCorrectThenTie(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Simultaneous})

	g.Select(cb.Chicken, 1)
	g.Select(cb.Banana, 2)

	s := g.Snapshot()
	if !slices.Equal(s.Claimed, []int{1, 2}) {
		t.Fatalf("claimed = %v, want [1 2]", s.Claimed)
	}
	if s.Remaining != (cb.Remaining{Chicken: 1, Banana: 1}) {
		t.Fatalf("remaining = %+v", s.Remaining)
	}
	if s.Pending != (cb.Picks{}) {
		t.Fatalf("pending not cleared: %+v", s.Pending)
	}
	if s.Result.Terminal() {
		t.Fatal("game ended after first round")
	}

	g.Select(cb.Chicken, 3)
	g.Select(cb.Banana, 4)

	want := cb.Result{Outcome: cb.Tie, Reason: cb.ReasonBothCompleted}
	if g.Result() != want {
		t.Fatalf("result = %+v, want %+v", g.Result(), want)
	}
}

func TestSimultaneousOneWrong(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Simultaneous})

	g.Select(cb.Chicken, 2)
	g.Select(cb.Banana, 4)

	want := cb.Result{Outcome: cb.Won, Winner: cb.Banana, Reason: cb.ReasonOpponentWrong}
	if g.Result() != want {
		t.Fatalf("result = %+v, want %+v", g.Result(), want)
	}

	s := g.Snapshot()
	if !slices.Equal(s.Wrong, []int{2}) {
		t.Errorf("wrong = %v, want [2]", s.Wrong)
	}
	if len(s.Claimed) != 0 {
		t.Errorf("claimed = %v, want none", s.Claimed)
	}

	if g.Select(cb.Chicken, 1) || g.Select(cb.Banana, 3) {
		t.Error("select accepted after game over")
	}
}

func TestSimultaneousBothWrong(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Simultaneous})

	g.Select(cb.Banana, 1)
	g.Select(cb.Chicken, 2)

	want := cb.Result{Outcome: cb.Tie, Reason: cb.ReasonBothWrong}
	if g.Result() != want {
		t.Fatalf("result = %+v, want %+v", g.Result(), want)
	}
	if s := g.Snapshot(); !slices.Equal(s.Wrong, []int{1, 2}) {
		t.Errorf("wrong = %v, want [1 2]", s.Wrong)
	}
}

func TestSimultaneousRejectsSecondPick(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Simultaneous})

	if !g.Select(cb.Chicken, 1) {
		t.Fatal("first pick rejected")
	}
	if g.Select(cb.Chicken, 3) {
		t.Error("second pick in the same round accepted")
	}
	if g.Select(cb.NoFaction, 2) {
		t.Error("pick without a faction accepted")
	}

	s := g.Snapshot()
	if s.Pending != (cb.Picks{Chicken: 1}) {
		t.Errorf("pending = %+v, want chicken on 1", s.Pending)
	}
	if len(s.Claimed) != 0 || s.Result.Terminal() {
		t.Error("round resolved with only one pick")
	}

	// banana may pick regardless of order
	if !g.Select(cb.Banana, 4) {
		t.Fatal("banana pick rejected")
	}
	if g.Select(cb.Chicken, 1) {
		t.Error("claimed tile accepted in the next round")
	}
}

func TestSimultaneousDeferredReveal(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Simultaneous, DeferReveal: true})

	if g.Settle() {
		t.Fatal("settle with no round waiting")
	}

	g.Select(cb.Chicken, 1)
	g.Select(cb.Banana, 2)

	if !g.Settling() {
		t.Fatal("expected round to be settling")
	}
	s := g.Snapshot()
	if len(s.Claimed) != 0 || s.Pending != (cb.Picks{Chicken: 1, Banana: 2}) {
		t.Fatalf("settling snapshot = %+v", s)
	}
	for _, v := range s.Tiles {
		if v.Kind != cb.NoFaction {
			t.Fatalf("tile %d kind visible before settle", v.Number)
		}
	}
	if g.Select(cb.Chicken, 3) {
		t.Error("select accepted while settling")
	}

	if !g.Settle() {
		t.Fatal("settle rejected")
	}
	if g.Settling() {
		t.Error("still settling")
	}
	if s := g.Snapshot(); !slices.Equal(s.Claimed, []int{1, 2}) {
		t.Errorf("claimed = %v, want [1 2]", s.Claimed)
	}
	if g.Settle() {
		t.Error("second settle accepted")
	}
}

func TestSnapshotHidesUnrevealedKinds(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Sequential})
	g.Select(cb.NoFaction, 1)

	s := g.Snapshot()
	for _, v := range s.Tiles {
		if v.Number == 1 {
			if v.Kind != cb.Chicken || !v.Claimed {
				t.Errorf("claimed tile view = %+v", v)
			}
			continue
		}
		if v.Kind != cb.NoFaction {
			t.Errorf("tile %d leaks kind %s", v.Number, v.Kind)
		}
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Count(string(data), `"kind"`) != 1 {
		t.Errorf("expected exactly one kind in %s", data)
	}
	if !strings.Contains(string(data), `"turn":"banana"`) {
		t.Errorf("expected banana's turn in %s", data)
	}
}

func TestRevealAll(t *testing.T) {
	seq := newTestGame(t, cb.Options{Mode: cb.Sequential})
	if seq.ToggleRevealAll() {
		t.Error("reveal-all accepted in sequential mode")
	}

	g := newTestGame(t, cb.Options{Mode: cb.Simultaneous})
	g.Select(cb.Chicken, 1)

	before := g.Snapshot()

	if !g.ToggleRevealAll() || !g.RevealAll() {
		t.Fatal("reveal-all not enabled")
	}

	s := g.Snapshot()
	for _, v := range s.Tiles {
		if v.Kind != alternating(4)[v.Number-1].Kind {
			t.Errorf("tile %d shows %s", v.Number, v.Kind)
		}
	}
	if s.Pending != before.Pending || !slices.Equal(s.Claimed, before.Claimed) || s.Result != before.Result {
		t.Error("reveal-all changed game state")
	}

	// the pick is still pending and the round still plays out
	if !g.Select(cb.Banana, 2) {
		t.Fatal("banana pick rejected with reveal-all on")
	}
	if s := g.Snapshot(); !slices.Equal(s.Claimed, []int{1, 2}) {
		t.Errorf("claimed = %v", s.Claimed)
	}

	g.ToggleRevealAll()
	if g.RevealAll() {
		t.Error("reveal-all not disabled")
	}
}

func TestReset(t *testing.T) {
	for _, mode := range []cb.Mode{cb.Sequential, cb.Simultaneous} {
		g := newTestGame(t, cb.Options{Mode: mode})

		g.Select(cb.Chicken, 2)
		g.Select(cb.Banana, 1)
		if !g.Terminal() {
			t.Fatalf("%s: expected game over before reset", mode)
		}

		g.Reset()

		s := g.Snapshot()
		if s.Result.Terminal() || len(s.Claimed) != 0 || len(s.Wrong) != 0 || s.Pending != (cb.Picks{}) {
			t.Errorf("%s: state not cleared: %+v", mode, s)
		}
		if s.Mode != mode {
			t.Errorf("%s: mode changed to %s", mode, s.Mode)
		}
		if mode == cb.Sequential && s.Turn != cb.Chicken {
			t.Errorf("expected chicken to start, got %s", s.Turn)
		}
		if len(s.Tiles) != 4 || s.Remaining != (cb.Remaining{Chicken: 2, Banana: 2}) {
			t.Errorf("%s: unexpected board after reset: %+v", mode, s)
		}
	}
}

func TestResetBoardIsValid(t *testing.T) {
	g, err := cb.New(cb.Options{Mode: cb.Simultaneous, Tiles: 36})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for range 10 {
		g.ToggleRevealAll()
		g.Reset()
		if g.RevealAll() {
			t.Fatal("reset kept reveal-all on")
		}

		g.ToggleRevealAll()
		b := make(cb.Board, 0, g.Tiles())
		for _, v := range g.Snapshot().Tiles {
			b = append(b, tile(v.Number, v.Kind))
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("reset produced invalid board: %v", err)
		}
	}
}

func TestSetMode(t *testing.T) {
	g := newTestGame(t, cb.Options{Mode: cb.Sequential})
	g.Select(cb.NoFaction, 1)

	if err := g.SetMode(cb.Simultaneous); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	if g.Mode() != cb.Simultaneous {
		t.Fatalf("mode = %s", g.Mode())
	}
	if s := g.Snapshot(); len(s.Claimed) != 0 || s.Turn != cb.NoFaction {
		t.Errorf("mode switch did not reset: %+v", s)
	}

	if err := g.SetMode(cb.Mode(7)); !errors.Is(err, cb.ErrUnknownMode) {
		t.Errorf("SetMode(7) error = %v", err)
	}
	if g.Mode() != cb.Simultaneous {
		t.Error("failed SetMode changed the mode")
	}
}

func TestParse(t *testing.T) {
	for in, want := range map[string]cb.Faction{"chicken": cb.Chicken, " Banana ": cb.Banana, "": cb.NoFaction} {
		got, err := cb.ParseFaction(in)
		if err != nil || got != want {
			t.Errorf("ParseFaction(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := cb.ParseFaction("duck"); !errors.Is(err, cb.ErrUnknownFaction) {
		t.Errorf("ParseFaction(duck) error = %v", err)
	}

	for in, want := range map[string]cb.Mode{"sequential": cb.Sequential, "B": cb.Simultaneous} {
		got, err := cb.ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %s, %v", in, got, err)
		}
	}
	if _, err := cb.ParseMode("chaos"); !errors.Is(err, cb.ErrUnknownMode) {
		t.Errorf("ParseMode(chaos) error = %v", err)
	}
}
