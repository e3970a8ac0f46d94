package score

import (
	"scoreboard-go/hal"
	"scoreboard-go/types"
)

// player is one side of the board: its button, its display, its two score
// digits, and the 1-step button history used for edge detection.
type player struct {
	id   types.PlayerID
	btn  hal.GPIOHandle
	disp PairDisplay

	tens, ones uint8
	holdStart  int64 // ms; valid only while the button is down
	wasPressed bool
	invert     bool
}

func (p *player) score() types.ScoreValue {
	return types.ScoreValue{Tens: p.tens, Ones: p.ones}
}

func (p *player) show() { p.disp.Show(int(p.tens), int(p.ones)) }

func (p *player) reinit() {
	p.tens, p.ones = 0, 0
	p.holdStart = 0
	p.wasPressed = false
}

// increment adds one point: ones wraps 9->0 with a tens carry, in the
// same update. No upper clamp; the win condition freezes scoring first.
func (p *player) increment() {
	p.ones++
	if p.ones >= 10 {
		p.ones = 0
		p.tens++
	}
}

// handleButton classifies one button against its previous state.
//
//	press edge:   record hold start, arm the loop-wide debounce pause
//	held:         past the hold threshold, fire the reset trigger
//	release edge: score a point, unless a winner froze the match
func (e *Engine) handleButton(p *player, now int64) {
	level := p.btn.Get()
	if p.invert {
		level = !level
	}

	switch {
	case level && !p.wasPressed:
		p.holdStart = now
		e.pauseUntil = now + int64(e.cfg.PressPauseMs)
	case level && p.wasPressed:
		if now-p.holdStart >= int64(e.cfg.HoldToResetMs) {
			e.fireReset(p.id, now)
			// State was re-initialised; leave the cleared button
			// history in place so a continued hold classifies as a
			// fresh press next cycle.
			return
		}
	case !level && p.wasPressed:
		if !e.winnerFound {
			p.increment()
			e.emit(Event{Kind: EventPoint, Player: p.id, State: e.Snapshot(), TS: now})
		}
	}

	p.wasPressed = level
}
