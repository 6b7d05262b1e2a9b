/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

// TileView is a tile as the players may see it. Kind is only set once the
// tile has been claimed or wrong-marked, or while reveal-all is on.
type TileView struct {
	Number  int     `json:"number"`
	Kind    Faction `json:"kind,omitempty"`
	Claimed bool    `json:"claimed,omitempty"`
	Wrong   bool    `json:"wrong,omitempty"`
}

// Picks holds the pending tile number of each faction, 0 meaning none.
type Picks struct {
	Chicken int `json:"chicken,omitempty"`
	Banana  int `json:"banana,omitempty"`
}

type Remaining struct {
	Chicken int `json:"chicken"`
	Banana  int `json:"banana"`
}

// Snapshot is a read-only copy of what a presentation layer may show.
type Snapshot struct {
	Mode      Mode       `json:"mode"`
	Tiles     []TileView `json:"tiles"`
	Turn      Faction    `json:"turn,omitempty"`
	Pending   Picks      `json:"pending"`
	Claimed   []int      `json:"claimed"`
	Wrong     []int      `json:"wrong"`
	Remaining Remaining  `json:"remaining"`
	Result    Result     `json:"result"`
	Message   string     `json:"message,omitempty"`
	RevealAll bool       `json:"reveal_all"`
	Settling  bool       `json:"settling"`
}

func (g *Game) Snapshot() Snapshot {
	t := g.table

	s := Snapshot{
		Mode:    g.rules.mode(),
		Tiles:   make([]TileView, len(t.board)),
		Claimed: t.claimedNumbers(),
		Wrong:   t.wrongNumbers(),
		Remaining: Remaining{
			Chicken: t.remaining(Chicken),
			Banana:  t.remaining(Banana),
		},
		Result:    t.result,
		RevealAll: g.revealAll,
	}

	for i, tile := range t.board {
		_, claimed := t.claimed[tile.Number]

		v := TileView{
			Number:  tile.Number,
			Claimed: claimed,
			Wrong:   t.wrong[tile.Number],
		}
		if g.revealAll || t.revealed(tile.Number) {
			v.Kind = tile.Kind
		}

		s.Tiles[i] = v
	}

	if t.result.Terminal() {
		s.Message = t.result.String()
	}

	g.rules.describe(&s)

	return s
}
