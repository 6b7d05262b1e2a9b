/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

// sequential alternates turns, starting with Chicken. Each click must land
// on a tile of the clicking faction's own kind.
type sequential struct {
	current Faction
}

func (s *sequential) mode() Mode {
	return Sequential
}

// handleSelect treats NoFaction as "whoever's turn it is".
func (s *sequential) handleSelect(t *table, f Faction, n int) bool {
	if s.isTerminal(t) {
		return false
	}

	if f != NoFaction && f != s.current {
		return false
	}

	kind, ok := t.open(n)
	if !ok {
		return false
	}

	if kind != s.current {
		t.markWrong(n)
		t.result = won(s.current.Other(), clickedWrong(s.current))

		return true
	}

	t.claim(n)

	if t.remaining(s.current) == 0 {
		t.result = won(s.current, ReasonCompletedSet)

		return true
	}

	s.current = s.current.Other()

	return true
}

func (s *sequential) settle(*table) bool {
	return false
}

func (s *sequential) isTerminal(t *table) bool {
	return t.result.Terminal()
}

func (s *sequential) describe(snap *Snapshot) {
	if !snap.Result.Terminal() {
		snap.Turn = s.current
	}
}
