package types

// ---- Players ----

// PlayerID identifies one of the two fixed players.
type PlayerID uint8

const (
	PlayerNone PlayerID = iota
	Player1
	Player2
)

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "p1"
	case Player2:
		return "p2"
	}
	return "none"
}

// ---- Score payloads ----

// ScoreValue is one player's displayed score as its two decimal digits.
// Tens may exceed 9 in theory; the renderer blanks out-of-range digits.
type ScoreValue struct {
	Tens uint8 `json:"tens"`
	Ones uint8 `json:"ones"`
}

// Combined returns the score as a single 0..99 value.
func (s ScoreValue) Combined() uint8 { return s.Tens*10 + s.Ones }

// MatchState is the retained snapshot published at score/state.
// Exactly one of {no winner, p1 winner, p2 winner} holds: Winner is
// PlayerNone iff WinnerFound is false.
type MatchState struct {
	P1          ScoreValue `json:"p1"`
	P2          ScoreValue `json:"p2"`
	WinnerFound bool       `json:"winner_found"`
	Winner      PlayerID   `json:"winner,omitempty"`
	TS          int64      `json:"ts_ms"`
}

// ---- Events (non-retained) ----

// PointEvent is published at score/event/point on each scored point.
type PointEvent struct {
	Player PlayerID   `json:"player"`
	Score  ScoreValue `json:"score"`
	TS     int64      `json:"ts_ms"`
}

// WinnerEvent is published at score/event/winner once per match.
type WinnerEvent struct {
	Winner PlayerID   `json:"winner"`
	Score  ScoreValue `json:"score"`
	TS     int64      `json:"ts_ms"`
}

// ResetEvent is published at score/event/reset each time the reset line
// fires. Firing repeatedly during one continuous hold is expected.
type ResetEvent struct {
	Held PlayerID `json:"held"`
	TS   int64    `json:"ts_ms"`
}

// ButtonValue mirrors the raw logical button level.
type ButtonValue struct {
	Pressed bool `json:"pressed"`
}

// Heartbeat is the retained liveness beacon published at
// system/heartbeat.
type Heartbeat struct {
	Seq      uint32 `json:"seq"`
	UptimeMs int64  `json:"uptime_ms"`
}

// ---- Service lifecycle (retained) ----

type ServiceState struct {
	Level  string `json:"level"`  // "running", "stopped"
	Status string `json:"status"` // freeform short code
	TS     int64  `json:"ts_ms"`
}
