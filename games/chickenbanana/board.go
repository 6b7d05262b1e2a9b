/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultTiles is the board size used by the original party game.
const DefaultTiles = 36

var (
	ErrInvalidTileCount = errors.New("tile count must be a positive even number")
	ErrInvalidBoard     = errors.New("invalid board")
)

// Tile is immutable once generated.
type Tile struct {
	Number int
	Kind   Faction
}

// Board is the ordered, shuffled tile layout of one game.
type Board []Tile

// Generate returns n tiles numbered 1..n, half of each faction, in a
// uniformly random order. A nil r uses the global source.
func Generate(n int, r *rand.Rand) (Board, error) {
	if n <= 0 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTileCount, n)
	}

	return shuffled(n, r), nil
}

func shuffled(n int, r *rand.Rand) Board {
	half := n / 2

	b := make(Board, n)
	for i := range b {
		kind := Chicken
		if i >= half {
			kind = Banana
		}
		b[i] = Tile{Number: i + 1, Kind: kind}
	}

	swap := func(i, j int) {
		b[i], b[j] = b[j], b[i]
	}

	if r != nil {
		r.Shuffle(len(b), swap)
	} else {
		rand.Shuffle(len(b), swap)
	}

	return b
}

// Count returns the number of tiles of the given kind.
func (b Board) Count(kind Faction) int {
	n := 0
	for _, t := range b {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// Validate reports whether b could have come out of Generate.
func (b Board) Validate() error {
	if len(b) == 0 || len(b)%2 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTileCount, len(b))
	}

	seen := make([]bool, len(b)+1)
	for _, t := range b {
		if t.Number < 1 || t.Number > len(b) {
			return fmt.Errorf("%w: tile number %d out of range", ErrInvalidBoard, t.Number)
		}
		if seen[t.Number] {
			return fmt.Errorf("%w: duplicate tile number %d", ErrInvalidBoard, t.Number)
		}
		seen[t.Number] = true

		if !t.Kind.Valid() {
			return fmt.Errorf("%w: tile %d has no kind", ErrInvalidBoard, t.Number)
		}
	}

	if b.Count(Chicken) != len(b)/2 {
		return fmt.Errorf("%w: unbalanced kinds (%d chicken, %d banana)",
			ErrInvalidBoard, b.Count(Chicken), b.Count(Banana))
	}

	return nil
}
