/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

// simultaneous collects one pick per faction each round and compares both
// picks at once.
type simultaneous struct {
	deferReveal bool
	picks       [3]int // indexed by Faction, 0 = none
	revealing   bool
}

func (s *simultaneous) mode() Mode {
	return Simultaneous
}

func (s *simultaneous) handleSelect(t *table, f Faction, n int) bool {
	if s.isTerminal(t) || s.revealing {
		return false
	}

	if !f.Valid() || s.picks[f] != 0 {
		return false
	}

	if _, ok := t.open(n); !ok {
		return false
	}

	s.picks[f] = n

	if s.picks[f.Other()] == 0 {
		return true
	}

	if s.deferReveal {
		s.revealing = true
	} else {
		s.adjudicate(t)
	}

	return true
}

func (s *simultaneous) settle(t *table) bool {
	if !s.revealing {
		return false
	}
	s.revealing = false
	s.adjudicate(t)
	return true
}

func (s *simultaneous) adjudicate(t *table) {
	var wrong []Faction
	for _, f := range Factions {
		if t.kind(s.picks[f]) != f {
			wrong = append(wrong, f)
		}
	}

	switch len(wrong) {
	case 0:
		for _, f := range Factions {
			t.claim(s.picks[f])
		}

		chicken, banana := t.remaining(Chicken), t.remaining(Banana)
		switch {
		case chicken == 0 && banana == 0:
			t.result = tie(ReasonBothCompleted)
		case chicken == 0:
			t.result = won(Chicken, ReasonCompletedSet)
		case banana == 0:
			t.result = won(Banana, ReasonCompletedSet)
		default:
			s.picks = [3]int{}
		}
	case 1:
		loser := wrong[0]
		t.markWrong(s.picks[loser])
		t.result = won(loser.Other(), ReasonOpponentWrong)
	default:
		for _, f := range wrong {
			t.markWrong(s.picks[f])
		}
		t.result = tie(ReasonBothWrong)
	}
}

func (s *simultaneous) isTerminal(t *table) bool {
	return t.result.Terminal()
}

func (s *simultaneous) describe(snap *Snapshot) {
	snap.Pending = Picks{
		Chicken: s.picks[Chicken],
		Banana:  s.picks[Banana],
	}
	snap.Settling = s.revealing
}
