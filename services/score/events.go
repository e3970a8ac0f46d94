package score

import "scoreboard-go/types"

// EventKind tags engine events for publication.
type EventKind uint8

const (
	EventPoint EventKind = iota
	EventWinner
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventPoint:
		return "point"
	case EventWinner:
		return "winner"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event is one engine occurrence plus the match state that resulted from
// it (for EventReset: the state at the moment the hold fired, before
// re-initialisation).
type Event struct {
	Kind   EventKind
	Player types.PlayerID
	State  types.MatchState
	TS     int64
}
