package score

import "scoreboard-go/types"

// evaluateWin runs every cycle until a winner is found. A player wins at
// or above the target with a margin of at least 2. Player 1 is evaluated
// first: if both conditions somehow held in one cycle, player 1 takes the
// match (documented tie-break, matching the board's fixed ordering).
func (e *Engine) evaluateWin(now int64) {
	s1 := int(e.p1.tens)*10 + int(e.p1.ones)
	s2 := int(e.p2.tens)*10 + int(e.p2.ones)
	target := int(e.cfg.WinTarget)

	switch {
	case s1 >= target && s1 > s2+1:
		e.declareWinner(types.Player1, now)
	case s2 >= target && s2 > s1+1:
		e.declareWinner(types.Player2, now)
	}
}

// declareWinner freezes the match. The evaluator never runs again and
// release edges stop scoring until reset. The first blink phase is a
// blank, so the transition is visible immediately.
func (e *Engine) declareWinner(p types.PlayerID, now int64) {
	e.winnerFound = true
	e.winner = p
	e.blinkShown = true
	e.emit(Event{Kind: EventWinner, Player: p, State: e.Snapshot(), TS: now})
}
