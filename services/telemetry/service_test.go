package telemetry

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"scoreboard-go/bus"
	"scoreboard-go/types"
)

type lockedBuf struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *lockedBuf) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *lockedBuf) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}

func waitContains(t *testing.T, b *lockedBuf, want string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(b.String(), want) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("output %q never contained %q", b.String(), want)
}

func TestTelemetry_Lines(t *testing.T) {
	b := bus.NewBus(16)
	pub := b.NewConnection("pub")
	var out lockedBuf

	svc := New(b.NewConnection("telemetry"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	pub.Publish(pub.NewMessage(bus.T("score", "state"),
		types.MatchState{P1: types.ScoreValue{Tens: 1, Ones: 2}, P2: types.ScoreValue{Ones: 9}}, false))
	waitContains(t, &out, "score p1=12 p2=9")

	pub.Publish(pub.NewMessage(bus.T("score", "event", "point"),
		types.PointEvent{Player: types.Player2, Score: types.ScoreValue{Tens: 1}}, false))
	waitContains(t, &out, "point p2 -> 10")

	pub.Publish(pub.NewMessage(bus.T("score", "event", "winner"),
		types.WinnerEvent{Winner: types.Player1, Score: types.ScoreValue{Tens: 2, Ones: 1}}, false))
	waitContains(t, &out, "winner p1 at 21")

	pub.Publish(pub.NewMessage(bus.T("score", "event", "reset"),
		types.ResetEvent{Held: types.Player2}, false))
	waitContains(t, &out, "reset held=p2")

	pub.Publish(pub.NewMessage(bus.T("system", "heartbeat"),
		types.Heartbeat{Seq: 3, UptimeMs: 15200}, false))
	waitContains(t, &out, "heartbeat seq=3 up=15s")
}

func TestTelemetry_WinnerInStateLine(t *testing.T) {
	b := bus.NewBus(16)
	pub := b.NewConnection("pub")
	var out lockedBuf

	svc := New(b.NewConnection("telemetry"), &out)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)
	time.Sleep(10 * time.Millisecond)

	pub.Publish(pub.NewMessage(bus.T("score", "state"),
		types.MatchState{
			P1:          types.ScoreValue{Tens: 2, Ones: 1},
			P2:          types.ScoreValue{Tens: 1, Ones: 9},
			WinnerFound: true,
			Winner:      types.Player1,
		}, false))
	waitContains(t, &out, "score p1=21 p2=19 winner=p1")
}
