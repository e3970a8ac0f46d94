package score

import (
	"context"
	"time"

	"scoreboard-go/bus"
	"scoreboard-go/types"
	"scoreboard-go/x/timex"
)

// Service owns the engine goroutine and mirrors its state onto the bus:
// retained score/state and per-player values, non-retained events.
type Service struct {
	conn *bus.Connection
	eng  *Engine
	cfg  types.GameConfig
}

func NewService(conn *bus.Connection, eng *Engine, cfg types.GameConfig) *Service {
	return &Service{conn: conn, eng: eng, cfg: cfg}
}

// Run drives the control loop until ctx is cancelled. Engine steps and
// bus publication happen on this one goroutine.
func (s *Service) Run(ctx context.Context) {
	s.pubServiceState("running", "")
	s.pubState(s.eng.Snapshot())

	tick := time.NewTicker(time.Duration(s.cfg.TickMs) * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			s.pubServiceState("stopped", "context_cancelled")
			return
		case <-tick.C:
			s.eng.Step()
		case ev := <-s.eng.Events():
			s.publishEvent(ev)
		}
	}
}

func (s *Service) publishEvent(ev Event) {
	switch ev.Kind {
	case EventPoint:
		s.conn.Publish(s.conn.NewMessage(topicEvent("point"),
			types.PointEvent{Player: ev.Player, Score: scoreOf(ev.State, ev.Player), TS: ev.TS}, false))
	case EventWinner:
		s.conn.Publish(s.conn.NewMessage(topicEvent("winner"),
			types.WinnerEvent{Winner: ev.Player, Score: scoreOf(ev.State, ev.Player), TS: ev.TS}, false))
	case EventReset:
		s.conn.Publish(s.conn.NewMessage(topicEvent("reset"),
			types.ResetEvent{Held: ev.Player, TS: ev.TS}, false))
		// After a reset the retained state must reflect the fresh match,
		// not the snapshot inside the event.
		s.pubState(s.eng.Snapshot())
		return
	}
	s.pubState(ev.State)
}

func (s *Service) pubState(st types.MatchState) {
	s.conn.Publish(s.conn.NewMessage(topicState(), st, true))
	s.conn.Publish(s.conn.NewMessage(topicValue(types.Player1), st.P1, true))
	s.conn.Publish(s.conn.NewMessage(topicValue(types.Player2), st.P2, true))
}

func (s *Service) pubServiceState(level, status string) {
	s.conn.Publish(s.conn.NewMessage(topicServiceState(),
		types.ServiceState{Level: level, Status: status, TS: timex.NowMs()}, true))
}

func scoreOf(st types.MatchState, p types.PlayerID) types.ScoreValue {
	if p == types.Player2 {
		return st.P2
	}
	return st.P1
}
