/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

// rules is the part of a game that differs between modes. Everything else
// lives on the shared table.
type rules interface {
	mode() Mode
	handleSelect(t *table, f Faction, n int) bool
	settle(t *table) bool
	isTerminal(t *table) bool
	describe(s *Snapshot)
}

func newRules(m Mode, deferReveal bool) (rules, error) {
	switch m {
	case Sequential:
		return &sequential{current: Chicken}, nil
	case Simultaneous:
		return &simultaneous{deferReveal: deferReveal}, nil
	default:
		return nil, ErrUnknownMode
	}
}
