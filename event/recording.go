package event

import "github.com/elliotchance/orderedmap/v2"

// RecordingStartedEvent is emitted when a new recording starts.
type RecordingStartedEvent struct {
	Session string
	Name    string
}

func NewRecordingStartedEvent(session, name string) *RecordingStartedEvent {
	return &RecordingStartedEvent{Session: session, Name: name}
}

func (*RecordingStartedEvent) ID() string {
	return EventIDRecordingStarted
}

func (e *RecordingStartedEvent) Data() *orderedmap.OrderedMap[string, any] {
	return newData("session", e.Session, "name", e.Name)
}

// RecordingStoppedEvent is emitted when a recording is stopped and its record handed off to
// be saved.
type RecordingStoppedEvent struct {
	Session string
	Name    string
	Points  int
}

func NewRecordingStoppedEvent(session, name string, points int) *RecordingStoppedEvent {
	return &RecordingStoppedEvent{Session: session, Name: name, Points: points}
}

func (*RecordingStoppedEvent) ID() string {
	return EventIDRecordingStopped
}

func (e *RecordingStoppedEvent) Data() *orderedmap.OrderedMap[string, any] {
	return newData("session", e.Session, "name", e.Name, "points", e.Points)
}
