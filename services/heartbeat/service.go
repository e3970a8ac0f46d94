// Package heartbeat publishes a periodic liveness beacon on the bus so
// anything watching the serial link can tell a hung board from a quiet
// one.
package heartbeat

import (
	"context"
	"time"

	"scoreboard-go/bus"
	"scoreboard-go/types"
	"scoreboard-go/x/timex"
)

const DefaultInterval = 5 * time.Second

type Service struct {
	conn     *bus.Connection
	clock    timex.Clock
	interval time.Duration
}

func New(conn *bus.Connection, clock timex.Clock, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{conn: conn, clock: clock, interval: interval}
}

// Run beats until ctx is cancelled. The interval can be changed at
// runtime by publishing a millisecond count on config/heartbeat.
func (s *Service) Run(ctx context.Context) {
	cfgSub := s.conn.Subscribe(bus.T("config", "heartbeat"))
	defer s.conn.Unsubscribe(cfgSub)

	start := s.clock.NowMs()
	tick := time.NewTicker(s.interval)
	defer tick.Stop()

	var seq uint32
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			seq++
			s.conn.Publish(s.conn.NewMessage(bus.T("system", "heartbeat"), types.Heartbeat{
				Seq:      seq,
				UptimeMs: s.clock.NowMs() - start,
			}, true))
		case msg := <-cfgSub.Channel():
			if ms, ok := msg.Payload.(uint32); ok && ms > 0 {
				tick.Reset(time.Duration(ms) * time.Millisecond)
			}
		}
	}
}
