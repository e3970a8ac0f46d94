package config

import (
	"context"
	"testing"
	"time"

	"scoreboard-go/bus"
	"scoreboard-go/errcode"
	"scoreboard-go/types"
)

func TestPublish_RetainedForLateSubscriber(t *testing.T) {
	b := bus.NewBus(8)
	pub := b.NewConnection("config")
	if err := Publish(pub, "host"); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	// Subscribe after publishing; retained delivery must cover it.
	late := b.NewConnection("late")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got := AwaitScore(ctx, late)
	if got != embeddedConfigs["host"] {
		t.Errorf("AwaitScore = %+v, want %+v", got, embeddedConfigs["host"])
	}

	sub := late.Subscribe(bus.T("config", "heartbeat"))
	defer late.Unsubscribe(sub)
	select {
	case m := <-sub.Channel():
		if ms, ok := m.Payload.(uint32); !ok || ms != heartbeatIntervals["host"] {
			t.Errorf("heartbeat interval payload = %v", m.Payload)
		}
	case <-time.After(time.Second):
		t.Error("no retained heartbeat interval")
	}
}

func TestPublish_UnknownDevice(t *testing.T) {
	b := bus.NewBus(8)
	err := Publish(b.NewConnection("config"), "unknown-board")
	if errcode.Of(err) != errcode.Unsupported {
		t.Errorf("err = %v, want code %v", err, errcode.Unsupported)
	}
}

func TestAwaitScore_FallsBackToDefaults(t *testing.T) {
	b := bus.NewBus(8)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	got := AwaitScore(ctx, b.NewConnection("late"))
	if got != types.DefaultGameConfig() {
		t.Errorf("AwaitScore without publisher = %+v, want defaults", got)
	}
}

func TestEmbeddedConfigLookup_Override(t *testing.T) {
	old := EmbeddedConfigLookup
	t.Cleanup(func() { EmbeddedConfigLookup = old })

	want := types.GameConfig{WinTarget: 11, PressPauseMs: 100, HoldToResetMs: 2000, BlinkHalfMs: 250, TickMs: 5}
	EmbeddedConfigLookup = func(device string) (types.GameConfig, bool) {
		return want, device == "custom"
	}

	b := bus.NewBus(8)
	conn := b.NewConnection("config")
	if err := Publish(conn, "custom"); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if got := AwaitScore(ctx, conn); got != want {
		t.Errorf("AwaitScore = %+v, want %+v", got, want)
	}
}
