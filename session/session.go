package session

import (
	"time"

	"github.com/oomph-ac/pathrec/timeline"
)

// State is the state of a Controller.
type State byte

const (
	StateIdle State = iota
	StateRecording
	StateReplaying
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateReplaying:
		return "replaying"
	}
	return "unknown"
}

// Agent is the entity whose path is recorded and replayed.
type Agent interface {
	// Pose returns the current pose of the agent.
	Pose() timeline.Pose
	// SetPose moves the agent to the pose passed, applying its rotation and velocity.
	SetPose(pose timeline.Pose)
}

// Clock provides the current time in milliseconds. The time returned must never decrease.
type Clock interface {
	Now() int64
}

// ClockFunc is a function implementing Clock.
type ClockFunc func() int64

func (f ClockFunc) Now() int64 {
	return f()
}

// SystemClock is a Clock returning the wall clock time as milliseconds since the Unix epoch.
type SystemClock struct{}

func (SystemClock) Now() int64 {
	return time.Now().UnixMilli()
}

// Persister stores records produced by finished recordings.
type Persister interface {
	// SaveAsync stores the record without waiting for it to be written.
	SaveAsync(r timeline.Record)
	// Exists returns true if a record with the name passed is stored.
	Exists(name string) bool
}
