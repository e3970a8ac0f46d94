// Package score is the scoreboard control loop: two buttons, two two-digit
// displays, first to 21 win by 2, 3 s hold for a full reset.
package score

import (
	"scoreboard-go/errcode"
	"scoreboard-go/hal"
	"scoreboard-go/types"
	"scoreboard-go/x/timex"
)

const eventQueueLen = 16

// PairDisplay is one player's two-digit display, tens then ones.
// Out-of-range values blank their digit.
type PairDisplay interface {
	Show(tens, ones int)
	Blank()
}

// Hardware is the fixed wiring of one scoreboard.
type Hardware struct {
	Btn1, Btn2    hal.GPIOHandle
	InvertButtons bool // true if pressed reads low (pull-up wiring)

	Disp1, Disp2 PairDisplay

	ResetLine       hal.GPIOHandle
	ResetActiveHigh bool // level that triggers the external reset circuit
}

// Engine advances the whole scoreboard one cycle per Step call. All state
// is owned by the single goroutine calling Step; the original's blocking
// delays are modelled as a loop-wide pause deadline, so a Step before the
// deadline does nothing at all (no polling, no line writes).
type Engine struct {
	cfg   types.GameConfig
	clock timex.Clock

	p1, p2 player
	hw     Hardware

	winnerFound bool
	winner      types.PlayerID

	pauseUntil int64 // ms; loop suspended while now < pauseUntil
	blinkShown bool  // winner's score currently shown (next blink blanks)

	out chan Event
}

// NewEngine wires the engine and configures the I/O lines: buttons as
// inputs (biased against the pressed level), reset line as an inactive
// output.
func NewEngine(cfg types.GameConfig, clock timex.Clock, hw Hardware) (*Engine, error) {
	if hw.Btn1 == nil || hw.Btn2 == nil || hw.Disp1 == nil || hw.Disp2 == nil || hw.ResetLine == nil {
		return nil, errcode.InvalidParams
	}
	if cfg.WinTarget == 0 || cfg.TickMs == 0 {
		return nil, errcode.InvalidParams
	}

	pull := hal.PullDown
	if hw.InvertButtons {
		pull = hal.PullUp
	}
	if err := hw.Btn1.ConfigureInput(pull); err != nil {
		return nil, err
	}
	if err := hw.Btn2.ConfigureInput(pull); err != nil {
		return nil, err
	}
	if err := hw.ResetLine.ConfigureOutput(!hw.ResetActiveHigh); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		clock: clock,
		hw:    hw,
		out:   make(chan Event, eventQueueLen),
	}
	e.p1 = player{id: types.Player1, btn: hw.Btn1, disp: hw.Disp1, invert: hw.InvertButtons}
	e.p2 = player{id: types.Player2, btn: hw.Btn2, disp: hw.Disp2, invert: hw.InvertButtons}
	return e, nil
}

// Events delivers point/winner/reset events to the service wrapper.
func (e *Engine) Events() <-chan Event { return e.out }

// Step runs one control-loop cycle: redraw both displays, classify both
// buttons (player 1 strictly first), then evaluate the win condition or,
// once a winner exists, advance the winner blink.
func (e *Engine) Step() {
	now := e.clock.NowMs()
	if now < e.pauseUntil {
		return
	}

	// Level-driven continuous redraw; both players every cycle.
	e.p1.show()
	e.p2.show()

	e.handleButton(&e.p1, now)
	e.handleButton(&e.p2, now)

	if !e.winnerFound {
		e.evaluateWin(now)
	} else {
		e.blink(now)
	}
}

// blink alternates the winner's display between blank and its frozen
// score, each phase holding for the blink half-period. The loser's
// display keeps its frozen score: Step redraws it before each phase.
func (e *Engine) blink(now int64) {
	w := &e.p1
	if e.winner == types.Player2 {
		w = &e.p2
	}
	if e.blinkShown {
		w.disp.Blank()
	} else {
		w.show()
	}
	e.blinkShown = !e.blinkShown
	e.pauseUntil = now + int64(e.cfg.BlinkHalfMs)
}

// fireReset pulses the external reset line and re-initialises all match
// state, the in-process equivalent of the hardware restart. A continued
// hold can only fire again after a fresh full hold period.
func (e *Engine) fireReset(held types.PlayerID, now int64) {
	active := e.hw.ResetActiveHigh
	e.hw.ResetLine.Set(active)
	e.emit(Event{Kind: EventReset, Player: held, State: e.Snapshot(), TS: now})
	e.reinit()
	e.hw.ResetLine.Set(!active)
}

func (e *Engine) reinit() {
	e.p1.reinit()
	e.p2.reinit()
	e.winnerFound = false
	e.winner = types.PlayerNone
	e.pauseUntil = 0
	e.blinkShown = false
}

// Snapshot returns the current match state for publication.
func (e *Engine) Snapshot() types.MatchState {
	return types.MatchState{
		P1:          e.p1.score(),
		P2:          e.p2.score(),
		WinnerFound: e.winnerFound,
		Winner:      e.winner,
		TS:          e.clock.NowMs(),
	}
}

// emit enqueues without blocking; events are telemetry, the match state
// itself never depends on delivery.
func (e *Engine) emit(ev Event) {
	select {
	case e.out <- ev:
	default:
	}
}
