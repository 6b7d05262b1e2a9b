/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown mode")

// Mode selects the rule set a game is played under.
type Mode uint8

const (
	// Sequential players alternate single clicks; one wrong click loses.
	Sequential Mode = iota
	// Simultaneous players both pick each round before anything is revealed.
	Simultaneous
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Simultaneous:
		return "simultaneous"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential", "a":
		return Sequential, nil
	case "simultaneous", "b":
		return Simultaneous, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
