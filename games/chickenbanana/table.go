/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

import "slices"

// table is the state both rule sets share: the board plus what has been
// disclosed about it and how the game ended.
type table struct {
	board   Board
	kinds   []Faction // indexed by tile number
	total   [3]int    // indexed by Faction
	claimed map[int]Faction
	wrong   map[int]bool
	result  Result
}

func newTable(b Board) *table {
	t := &table{
		board:   b,
		kinds:   make([]Faction, len(b)+1),
		claimed: make(map[int]Faction),
		wrong:   make(map[int]bool),
	}
	for _, tile := range b {
		t.kinds[tile.Number] = tile.Kind
		t.total[tile.Kind]++
	}
	return t
}

func (t *table) kind(n int) Faction {
	if n < 1 || n >= len(t.kinds) {
		return NoFaction
	}
	return t.kinds[n]
}

// open reports the kind of tile n if it exists and is neither claimed nor
// wrong-marked.
func (t *table) open(n int) (Faction, bool) {
	kind := t.kind(n)
	if kind == NoFaction {
		return NoFaction, false
	}
	if _, ok := t.claimed[n]; ok || t.wrong[n] {
		return NoFaction, false
	}
	return kind, true
}

func (t *table) claim(n int) {
	t.claimed[n] = t.kinds[n]
}

func (t *table) markWrong(n int) {
	t.wrong[n] = true
}

func (t *table) remaining(f Faction) int {
	n := t.total[f]
	for _, kind := range t.claimed {
		if kind == f {
			n--
		}
	}
	return n
}

func (t *table) revealed(n int) bool {
	_, ok := t.claimed[n]
	return ok || t.wrong[n]
}

func (t *table) claimedNumbers() []int {
	out := make([]int, 0, len(t.claimed))
	for n := range t.claimed {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

func (t *table) wrongNumbers() []int {
	out := make([]int, 0, len(t.wrong))
	for n := range t.wrong {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
