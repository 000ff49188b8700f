package session

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/oomph-ac/pathrec/oerror"
	"github.com/oomph-ac/pathrec/timeline"
)

// Recorder samples the pose of an agent at a fixed interval while recording, and turns the
// samples into a record once stopped.
type Recorder struct {
	interval int64

	active bool
	id     string
	name   string

	startTime      int64
	lastSampleTime int64
	sampled        bool

	points []timeline.Point
}

// NewRecorder creates a recorder that records at most one point every interval milliseconds.
func NewRecorder(interval int64) *Recorder {
	return &Recorder{interval: interval}
}

// Active returns true if the recorder is recording.
func (r *Recorder) Active() bool {
	return r.active
}

// Name returns the name of the record being recorded.
func (r *Recorder) Name() string {
	return r.name
}

// Session returns the identifier of the current recording session.
func (r *Recorder) Session() string {
	return r.id
}

// Start starts recording a new record under the name passed, discarding any points left over
// from a previous recording. The name is expected to have been validated by the caller.
func (r *Recorder) Start(name string, now int64) error {
	if r.active {
		return oerror.ErrBusy
	}

	r.points = r.points[:0]
	r.active = true
	r.id = uuid.NewString()
	r.name = name
	r.startTime = now
	r.sampled = false
	return nil
}

// Sample records the pose passed if recording and at least one interval has passed since the
// last recorded point. The first sample of a recording is always recorded. Sample returns true
// if a point was added.
func (r *Recorder) Sample(pose timeline.Pose, now int64) bool {
	if !r.active {
		return false
	}
	if r.sampled && now-r.lastSampleTime < r.interval {
		return false
	}

	r.points = append(r.points, timeline.NewPoint(pose, now-r.startTime))
	r.lastSampleTime = now
	r.sampled = true
	return true
}

// Stop stops recording and returns the recorded path. ok is false if the recorder was not
// recording. A recording without any points still produces a record.
func (r *Recorder) Stop(now int64) (rec timeline.Record, ok bool) {
	if !r.active {
		return timeline.Record{}, false
	}
	r.active = false

	rec = timeline.Record{
		Name:      r.name,
		CreatedAt: time.UnixMilli(now),
		Points:    make([]timeline.Point, len(r.points)),
	}
	copy(rec.Points, r.points)
	r.points = r.points[:0]
	return rec, true
}

// Len returns the amount of points recorded so far.
func (r *Recorder) Len() int {
	return len(r.points)
}

// Positions returns the positions recorded so far.
func (r *Recorder) Positions() []mgl64.Vec3 {
	positions := make([]mgl64.Vec3, len(r.points))
	for i, p := range r.points {
		positions[i] = p.Position
	}
	return positions
}
