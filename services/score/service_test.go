package score

import (
	"context"
	"testing"
	"time"

	"scoreboard-go/bus"
	"scoreboard-go/hal"
	"scoreboard-go/types"
	"scoreboard-go/x/timex"
)

// Shrunk real-time config so the integration tests finish quickly.
func testConfig() types.GameConfig {
	return types.GameConfig{
		WinTarget:     3,
		PressPauseMs:  5,
		HoldToResetMs: 60,
		BlinkHalfMs:   10,
		TickMs:        1,
	}
}

type serviceRig struct {
	b      *bus.Bus
	conn   *bus.Connection
	b1, b2 *hal.FakePin
	cancel context.CancelFunc
}

func startService(t *testing.T) *serviceRig {
	t.Helper()
	r := &serviceRig{
		b:  bus.NewBus(32),
		b1: hal.NewFakePin(10),
		b2: hal.NewFakePin(9),
	}
	r.conn = r.b.NewConnection("test")

	eng, err := NewEngine(testConfig(), timex.Wall{}, Hardware{
		Btn1: r.b1, Btn2: r.b2,
		Disp1: &fakeDisplay{}, Disp2: &fakeDisplay{},
		ResetLine: hal.NewFakePin(11),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	svc := NewService(r.b.NewConnection("score"), eng, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	t.Cleanup(cancel)
	go svc.Run(ctx)
	return r
}

func (r *serviceRig) tap(p *hal.FakePin) {
	p.Set(true)
	time.Sleep(20 * time.Millisecond)
	p.Set(false)
	time.Sleep(20 * time.Millisecond)
}

func waitFor[T any](t *testing.T, sub *bus.Subscription, match func(T) bool) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case m := <-sub.Channel():
			if v, ok := m.Payload.(T); ok && match(v) {
				return v
			}
		case <-deadline:
			var zero T
			t.Fatalf("timeout waiting for %T", zero)
			return zero
		}
	}
}

func TestService_PublishesInitialRetainedState(t *testing.T) {
	r := startService(t)
	time.Sleep(20 * time.Millisecond)

	sub := r.conn.Subscribe(bus.T("score", "state"))
	defer r.conn.Unsubscribe(sub)
	st := waitFor(t, sub, func(types.MatchState) bool { return true })
	if st.WinnerFound || st.P1.Combined() != 0 || st.P2.Combined() != 0 {
		t.Fatalf("unexpected initial state: %+v", st)
	}

	svcSub := r.conn.Subscribe(bus.T("score", "service", "state"))
	defer r.conn.Unsubscribe(svcSub)
	ss := waitFor(t, svcSub, func(types.ServiceState) bool { return true })
	if ss.Level != "running" {
		t.Fatalf("service level %q, want running", ss.Level)
	}
}

func TestService_PointEventAndRetainedValue(t *testing.T) {
	r := startService(t)
	evSub := r.conn.Subscribe(bus.T("score", "event", "point"))
	defer r.conn.Unsubscribe(evSub)

	r.tap(r.b1)

	ev := waitFor(t, evSub, func(p types.PointEvent) bool { return p.Player == types.Player1 })
	if ev.Score.Combined() != 1 {
		t.Fatalf("point event score %d, want 1", ev.Score.Combined())
	}

	valSub := r.conn.Subscribe(bus.T("score", "p1", "value"))
	defer r.conn.Unsubscribe(valSub)
	v := waitFor(t, valSub, func(s types.ScoreValue) bool { return s.Combined() == 1 })
	_ = v
}

func TestService_WinnerEvent(t *testing.T) {
	r := startService(t)
	winSub := r.conn.Subscribe(bus.T("score", "event", "winner"))
	defer r.conn.Unsubscribe(winSub)

	// WinTarget 3, win by 2: three straight p2 points.
	r.tap(r.b2)
	r.tap(r.b2)
	r.tap(r.b2)

	ev := waitFor(t, winSub, func(w types.WinnerEvent) bool { return true })
	if ev.Winner != types.Player2 || ev.Score.Combined() != 3 {
		t.Fatalf("winner event %+v, want p2 at 3", ev)
	}

	stSub := r.conn.Subscribe(bus.T("score", "state"))
	defer r.conn.Unsubscribe(stSub)
	st := waitFor(t, stSub, func(s types.MatchState) bool { return s.WinnerFound })
	if st.Winner != types.Player2 {
		t.Fatalf("retained state winner %v, want p2", st.Winner)
	}
}

func TestService_ResetEventAndFreshState(t *testing.T) {
	r := startService(t)
	rstSub := r.conn.Subscribe(bus.T("score", "event", "reset"))
	defer r.conn.Unsubscribe(rstSub)

	r.tap(r.b1)

	// Hold well past the 60 ms threshold.
	r.b1.Set(true)
	time.Sleep(120 * time.Millisecond)

	ev := waitFor(t, rstSub, func(types.ResetEvent) bool { return true })
	if ev.Held != types.Player1 {
		t.Fatalf("reset held by %v, want p1", ev.Held)
	}

	// Still held: retained state must already show the fresh match.
	stSub := r.conn.Subscribe(bus.T("score", "state"))
	defer r.conn.Unsubscribe(stSub)
	st := waitFor(t, stSub, func(s types.MatchState) bool {
		return !s.WinnerFound && s.P1.Combined() == 0
	})
	_ = st
	r.b1.Set(false)
}
