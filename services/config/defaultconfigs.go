package config

import "scoreboard-go/types"

// Settings baked into the firmware per device ID. Add boards here.
var embeddedConfigs = map[string]types.GameConfig{
	"pico": types.DefaultGameConfig(),
	"host": types.DefaultGameConfig(),
}

// Heartbeat interval per device, in milliseconds.
var heartbeatIntervals = map[string]uint32{
	"pico": 2000,
	"host": 5000,
}
