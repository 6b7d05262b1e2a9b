/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFaction = errors.New("unknown faction")

// Faction is one of the two symmetric tile kinds. The zero value is no
// faction at all.
type Faction uint8

const (
	NoFaction Faction = iota
	Chicken
	Banana
)

// Factions lists both factions in starting order.
var Factions = [2]Faction{Chicken, Banana}

func (f Faction) Other() Faction {
	switch f {
	case Chicken:
		return Banana
	case Banana:
		return Chicken
	default:
		return NoFaction
	}
}

func (f Faction) String() string {
	switch f {
	case Chicken:
		return "Chicken"
	case Banana:
		return "Banana"
	default:
		return ""
	}
}

func (f Faction) Valid() bool {
	return f == Chicken || f == Banana
}

func ParseFaction(s string) (Faction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NoFaction, nil
	case "chicken":
		return Chicken, nil
	case "banana":
		return Banana, nil
	default:
		return NoFaction, fmt.Errorf("%w: %q", ErrUnknownFaction, s)
	}
}

func (f Faction) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(f.String())), nil
}

func (f *Faction) UnmarshalText(text []byte) error {
	v, err := ParseFaction(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
