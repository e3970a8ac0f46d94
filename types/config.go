package types

// Game timing/score constants. WinTarget is a build-time decision; the
// struct exists so tests can shrink the timings, not for runtime tuning.
const (
	DefaultWinTarget   uint8  = 21   // play up to, win by 2
	DefaultPressPause  uint32 = 200  // ms; debounce pause after a press edge
	DefaultHoldToReset uint32 = 3000 // ms; continuous hold fires reset
	DefaultBlinkHalf   uint32 = 500  // ms; winner blink half-period
	DefaultTick        uint32 = 5    // ms; control loop poll interval
)

// GameConfig carries the fixed timing and score constants of one match.
type GameConfig struct {
	WinTarget     uint8
	PressPauseMs  uint32
	HoldToResetMs uint32
	BlinkHalfMs   uint32
	TickMs        uint32
}

// DefaultGameConfig returns the values of the physical scoreboard.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		WinTarget:     DefaultWinTarget,
		PressPauseMs:  DefaultPressPause,
		HoldToResetMs: DefaultHoldToReset,
		BlinkHalfMs:   DefaultBlinkHalf,
		TickMs:        DefaultTick,
	}
}
