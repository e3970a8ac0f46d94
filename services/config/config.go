// Package config publishes the per-device settings embedded in the
// firmware as retained bus messages, so services can pick up their
// configuration without knowing which board they run on.
package config

import (
	"context"

	"scoreboard-go/bus"
	"scoreboard-go/errcode"
	"scoreboard-go/types"
)

const configPrefix = "config"

// EmbeddedConfigLookup resolves a device ID to its game settings. Tests
// may override it.
var EmbeddedConfigLookup = func(device string) (types.GameConfig, bool) {
	cfg, ok := embeddedConfigs[device]
	return cfg, ok
}

// Publish puts the device's settings on the bus as retained messages:
// the game config at config/score and the heartbeat interval in
// milliseconds at config/heartbeat.
func Publish(conn *bus.Connection, device string) error {
	cfg, ok := EmbeddedConfigLookup(device)
	if !ok {
		return &errcode.E{C: errcode.Unsupported, Op: "config.publish", Msg: "no embedded config for device " + device}
	}
	conn.Publish(conn.NewMessage(bus.T(configPrefix, "score"), cfg, true))
	conn.Publish(conn.NewMessage(bus.T(configPrefix, "heartbeat"), heartbeatIntervals[device], true))
	return nil
}

// AwaitScore returns the retained game config, or the defaults if none
// arrives before ctx expires.
func AwaitScore(ctx context.Context, conn *bus.Connection) types.GameConfig {
	sub := conn.Subscribe(bus.T(configPrefix, "score"))
	defer conn.Unsubscribe(sub)

	select {
	case msg := <-sub.Channel():
		if cfg, ok := msg.Payload.(types.GameConfig); ok {
			return cfg
		}
	case <-ctx.Done():
	}
	return types.DefaultGameConfig()
}
