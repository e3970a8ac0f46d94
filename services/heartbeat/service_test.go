package heartbeat

import (
	"context"
	"testing"
	"time"

	"scoreboard-go/bus"
	"scoreboard-go/types"
	"scoreboard-go/x/timex"
)

func waitBeat(t *testing.T, ch <-chan *bus.Message) types.Heartbeat {
	t.Helper()
	select {
	case m := <-ch:
		hb, ok := m.Payload.(types.Heartbeat)
		if !ok {
			t.Fatalf("payload %T, want Heartbeat", m.Payload)
		}
		return hb
	case <-time.After(time.Second):
		t.Fatal("no heartbeat")
	}
	return types.Heartbeat{}
}

func TestHeartbeat_BeatsAndCounts(t *testing.T) {
	b := bus.NewBus(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go New(b.NewConnection("heartbeat"), timex.Wall{}, 5*time.Millisecond).Run(ctx)

	watcher := b.NewConnection("watcher")
	sub := watcher.Subscribe(bus.T("system", "heartbeat"))
	defer watcher.Unsubscribe(sub)

	first := waitBeat(t, sub.Channel())
	second := waitBeat(t, sub.Channel())
	if second.Seq <= first.Seq {
		t.Errorf("Seq did not advance: %d then %d", first.Seq, second.Seq)
	}
	if second.UptimeMs < first.UptimeMs {
		t.Errorf("uptime went backwards: %d then %d", first.UptimeMs, second.UptimeMs)
	}
}

func TestHeartbeat_RetainedForLateSubscriber(t *testing.T) {
	b := bus.NewBus(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go New(b.NewConnection("heartbeat"), timex.Wall{}, 5*time.Millisecond).Run(ctx)

	// Let at least one beat land before anyone is listening.
	time.Sleep(30 * time.Millisecond)

	late := b.NewConnection("late")
	sub := late.Subscribe(bus.T("system", "heartbeat"))
	defer late.Unsubscribe(sub)

	hb := waitBeat(t, sub.Channel())
	if hb.Seq == 0 {
		t.Error("retained beat has zero Seq")
	}
}

func TestHeartbeat_IntervalReconfigured(t *testing.T) {
	b := bus.NewBus(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start slow so only the reconfigured interval can produce beats in
	// time.
	go New(b.NewConnection("heartbeat"), timex.Wall{}, time.Minute).Run(ctx)

	ctrl := b.NewConnection("ctrl")
	sub := ctrl.Subscribe(bus.T("system", "heartbeat"))
	defer ctrl.Unsubscribe(sub)

	// Give the service a moment to subscribe before reconfiguring.
	time.Sleep(20 * time.Millisecond)
	ctrl.Publish(ctrl.NewMessage(bus.T("config", "heartbeat"), uint32(5), false))

	waitBeat(t, sub.Channel())
}
