package event

import "github.com/elliotchance/orderedmap/v2"

// Event is a signal emitted by a recording or replay session for the host to react to, for
// instance by showing a message or playing a sound.
type Event interface {
	// ID returns a string identifying the type of the event.
	ID() string
	// Data returns the payload of the event, in the order it should be displayed.
	Data() *orderedmap.OrderedMap[string, any]
}

const (
	EventIDRecordingStarted        = "pathrec:recording_started"
	EventIDRecordingStopped        = "pathrec:recording_stopped"
	EventIDReplayStarted           = "pathrec:replay_started"
	EventIDReplayRejectedTooFar    = "pathrec:replay_rejected_too_far"
	EventIDReplayPositionCorrected = "pathrec:replay_position_corrected"
	EventIDReplayCompleted         = "pathrec:replay_completed"
	EventIDReplayStopped           = "pathrec:replay_stopped"
	EventIDReplayAlreadyInProgress = "pathrec:replay_already_in_progress"
)

func newData(kv ...any) *orderedmap.OrderedMap[string, any] {
	data := orderedmap.NewOrderedMap[string, any]()
	for i := 0; i+1 < len(kv); i += 2 {
		data.Set(kv[i].(string), kv[i+1])
	}
	return data
}
