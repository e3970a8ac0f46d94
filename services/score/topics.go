package score

import (
	"scoreboard-go/bus"
	"scoreboard-go/types"
)

// score/...

func topicState() bus.Topic        { return bus.T("score", "state") }
func topicServiceState() bus.Topic { return bus.T("score", "service", "state") }

func topicValue(p types.PlayerID) bus.Topic {
	return bus.T("score", p.String(), "value")
}

func topicEvent(tag string) bus.Topic {
	return bus.T("score", "event", tag)
}
