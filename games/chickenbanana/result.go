/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package chickenbanana

import (
	"fmt"
)

// Outcome is the coarse state of a game's result.
type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Tie
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Tie:
		return "tie"
	default:
		return "in_progress"
	}
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	switch string(text) {
	case "won":
		*o = Won
	case "tie":
		*o = Tie
	default:
		*o = InProgress
	}
	return nil
}

const (
	ReasonCompletedSet  = "completed own set"
	ReasonOpponentWrong = "opponent picked wrong"
	ReasonBothWrong     = "both wrong"
	ReasonBothCompleted = "both sets completed"
)

// Result is InProgress until a game ends, after which only a reset
// may replace it.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Winner  Faction `json:"winner,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

func won(f Faction, reason string) Result {
	return Result{Outcome: Won, Winner: f, Reason: reason}
}

func tie(reason string) Result {
	return Result{Outcome: Tie, Reason: reason}
}

func clickedWrong(f Faction) string {
	return f.String() + " clicked wrong"
}

func (r Result) Terminal() bool {
	return r.Outcome != InProgress
}

func (r Result) String() string {
	switch r.Outcome {
	case Won:
		return fmt.Sprintf("%s player wins! %s", r.Winner, r.Reason)
	case Tie:
		return fmt.Sprintf("It's a tie! %s", r.Reason)
	default:
		return "in progress"
	}
}
