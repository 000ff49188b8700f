package event

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// ReplayStartedEvent is emitted when a replay starts, including restarts of a looping replay.
type ReplayStartedEvent struct {
	Session string
	Name    string
	Loop    bool
	// StartIndex is the index of the point in the record the replay started from.
	StartIndex int
}

func NewReplayStartedEvent(session, name string, loop bool, startIndex int) *ReplayStartedEvent {
	return &ReplayStartedEvent{Session: session, Name: name, Loop: loop, StartIndex: startIndex}
}

func (*ReplayStartedEvent) ID() string {
	return EventIDReplayStarted
}

func (e *ReplayStartedEvent) Data() *orderedmap.OrderedMap[string, any] {
	return newData("session", e.Session, "name", e.Name, "loop", e.Loop, "start", e.StartIndex)
}

// ReplayRejectedTooFarEvent is emitted when a replay could not start because the agent was
// too far away from every point of the record.
type ReplayRejectedTooFarEvent struct {
	Name         string
	NearestPoint mgl64.Vec3
	Distance     float64
}

func NewReplayRejectedTooFarEvent(name string, nearest mgl64.Vec3, dist float64) *ReplayRejectedTooFarEvent {
	return &ReplayRejectedTooFarEvent{Name: name, NearestPoint: nearest, Distance: dist}
}

func (*ReplayRejectedTooFarEvent) ID() string {
	return EventIDReplayRejectedTooFar
}

func (e *ReplayRejectedTooFarEvent) Data() *orderedmap.OrderedMap[string, any] {
	return newData(
		"name", e.Name,
		"nearest", fmt.Sprintf("%.2f, %.2f, %.2f", e.NearestPoint.X(), e.NearestPoint.Y(), e.NearestPoint.Z()),
		"distance", fmt.Sprintf("%.2f", e.Distance),
	)
}

// ReplayPositionCorrectedEvent is emitted when a replay is aborted because the agent deviated
// too far from the path.
type ReplayPositionCorrectedEvent struct {
	Session string
	Name    string

	Horizontal, Vertical float64
	// RestartAt is the time in milliseconds at which a looping replay restarts, or zero if
	// the replay will not restart.
	RestartAt int64
}

func NewReplayPositionCorrectedEvent(session, name string, horizontal, vertical float64, restartAt int64) *ReplayPositionCorrectedEvent {
	return &ReplayPositionCorrectedEvent{
		Session:    session,
		Name:       name,
		Horizontal: horizontal,
		Vertical:   vertical,
		RestartAt:  restartAt,
	}
}

func (*ReplayPositionCorrectedEvent) ID() string {
	return EventIDReplayPositionCorrected
}

func (e *ReplayPositionCorrectedEvent) Data() *orderedmap.OrderedMap[string, any] {
	return newData(
		"session", e.Session,
		"name", e.Name,
		"hz", fmt.Sprintf("%.3f", e.Horizontal),
		"vt", fmt.Sprintf("%.3f", e.Vertical),
		"restartAt", e.RestartAt,
	)
}

// ReplayCompletedEvent is emitted when a replay reaches the end of its path.
type ReplayCompletedEvent struct {
	Session string
	Name    string
	Loop    bool
}

func NewReplayCompletedEvent(session, name string, loop bool) *ReplayCompletedEvent {
	return &ReplayCompletedEvent{Session: session, Name: name, Loop: loop}
}

func (*ReplayCompletedEvent) ID() string {
	return EventIDReplayCompleted
}

func (e *ReplayCompletedEvent) Data() *orderedmap.OrderedMap[string, any] {
	return newData("session", e.Session, "name", e.Name, "loop", e.Loop)
}

// ReplayStoppedEvent is emitted when a replay is stopped on request.
type ReplayStoppedEvent struct {
	Session string
	Name    string
}

func NewReplayStoppedEvent(session, name string) *ReplayStoppedEvent {
	return &ReplayStoppedEvent{Session: session, Name: name}
}

func (*ReplayStoppedEvent) ID() string {
	return EventIDReplayStopped
}

func (e *ReplayStoppedEvent) Data() *orderedmap.OrderedMap[string, any] {
	return newData("session", e.Session, "name", e.Name)
}

// ReplayAlreadyInProgressEvent is emitted when a replay is requested while a recording or
// another replay is active.
type ReplayAlreadyInProgressEvent struct {
	Name string
}

func NewReplayAlreadyInProgressEvent(name string) *ReplayAlreadyInProgressEvent {
	return &ReplayAlreadyInProgressEvent{Name: name}
}

func (*ReplayAlreadyInProgressEvent) ID() string {
	return EventIDReplayAlreadyInProgress
}

func (e *ReplayAlreadyInProgressEvent) Data() *orderedmap.OrderedMap[string, any] {
	return newData("name", e.Name)
}
