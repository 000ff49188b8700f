package session

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/oomph-ac/pathrec/assert"
	"github.com/oomph-ac/pathrec/event"
	"github.com/oomph-ac/pathrec/game"
	"github.com/oomph-ac/pathrec/oerror"
	"github.com/oomph-ac/pathrec/settings"
	"github.com/oomph-ac/pathrec/timeline"
	"github.com/sirupsen/logrus"
)

// Status describes what happened during a call to Replayer.Tick.
type Status byte

const (
	// StatusIdle is returned when no replay is running.
	StatusIdle Status = iota
	// StatusWaiting is returned when the replay has not reached its first point yet.
	StatusWaiting
	// StatusMoved is returned when the frame holds a target pose for the agent.
	StatusMoved
	// StatusCorrected is returned when the replay was aborted because the agent deviated from
	// the path.
	StatusCorrected
	// StatusCompleted is returned when the replay reached the end of its path.
	StatusCompleted
	// StatusRestarted is returned when a deferred restart was due and attempted.
	StatusRestarted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusWaiting:
		return "waiting"
	case StatusMoved:
		return "moved"
	case StatusCorrected:
		return "corrected"
	case StatusCompleted:
		return "completed"
	case StatusRestarted:
		return "restarted"
	}
	return fmt.Sprintf("Status(%d)", byte(s))
}

// Frame is the result of a single Replayer.Tick call.
type Frame struct {
	Status Status
	// Target is the pose the agent should be moved to. It is only set if Status is StatusMoved.
	Target timeline.Pose
}

// TooFarError is returned when a replay could not start because the agent was too far away
// from every point of the record.
type TooFarError struct {
	Record   string
	Index    int
	Nearest  mgl64.Vec3
	Distance float64
}

func (e *TooFarError) Error() string {
	return fmt.Sprintf("%v: nearest point of %s is %.2f blocks away at (%.2f, %.2f, %.2f)",
		oerror.ErrTooFar, e.Record, e.Distance, e.Nearest.X(), e.Nearest.Y(), e.Nearest.Z())
}

func (e *TooFarError) Unwrap() error {
	return oerror.ErrTooFar
}

// deferredRestart is a restart of a looping replay that is due at a later time.
type deferredRestart struct {
	triggerTime int64
	source      timeline.Record
}

// Replayer moves an agent along a recorded path, interpolating between the recorded points and
// aborting when the agent deviates too far from the path.
type Replayer struct {
	s   settings.Settings
	h   event.Handler
	log *logrus.Logger

	active bool
	loop   bool
	id     string

	// source is the record as it was passed to Start. Loop restarts match against it again
	// so they begin from wherever the agent is at that moment.
	source timeline.Record
	// points is a copy of the points of source starting at the matched point, with
	// timestamps rebased to zero.
	points    []timeline.Point
	startTime int64

	restart *deferredRestart
	guide   Guide
}

// NewReplayer creates a new replayer. Events are passed to the handler h. Zero-valued settings
// are replaced with settings.DefaultSettings().
func NewReplayer(s settings.Settings, h event.Handler, log *logrus.Logger) *Replayer {
	if s == (settings.Settings{}) {
		s = settings.DefaultSettings()
	}
	if h == nil {
		h = event.NopHandler{}
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Replayer{s: s, h: h, log: log, guide: NewGuide(s.Guide.Duration)}
}

// Active returns true if a replay is running.
func (r *Replayer) Active() bool {
	return r.active
}

// Loop returns true if the current replay restarts once finished.
func (r *Replayer) Loop() bool {
	return r.loop
}

// Session returns the identifier of the current replay session.
func (r *Replayer) Session() string {
	return r.id
}

// Record returns the record being replayed.
func (r *Replayer) Record() timeline.Record {
	return r.source
}

// Points returns the points left to replay, with timestamps relative to the start of the replay.
func (r *Replayer) Points() []timeline.Point {
	return r.points
}

// Positions returns the positions of the points being replayed.
func (r *Replayer) Positions() []mgl64.Vec3 {
	positions := make([]mgl64.Vec3, len(r.points))
	for i, p := range r.points {
		positions[i] = p.Position
	}
	return positions
}

// RestartPending returns the time a deferred restart is due at. ok is false if no restart is pending.
func (r *Replayer) RestartPending() (at int64, ok bool) {
	if r.restart == nil {
		return 0, false
	}
	return r.restart.triggerTime, true
}

// DisarmRestart cancels a pending deferred restart, returning true if there was one.
func (r *Replayer) DisarmRestart() bool {
	pending := r.restart != nil
	r.restart = nil
	return pending
}

// Guide returns the guide armed by the last rejected start.
func (r *Replayer) Guide() Guide {
	return r.guide
}

// Start starts replaying rec from the point nearest to the pose passed. It fails with
// oerror.ErrBusy if a replay is already running, oerror.ErrEmptyRecord if rec has no points,
// and a *TooFarError if the nearest point is further away than the maximum start distance,
// in which case the guide is armed. Any pending deferred restart is cancelled.
func (r *Replayer) Start(rec timeline.Record, loop bool, pose timeline.Pose, now int64) error {
	if r.active {
		return oerror.ErrBusy
	}
	r.restart = nil
	return r.start(rec, loop, pose, now)
}

func (r *Replayer) start(rec timeline.Record, loop bool, pose timeline.Pose, now int64) error {
	index, dist, ok := rec.Nearest(pose.Position)
	if !ok {
		return oerror.Wrap(oerror.ErrEmptyRecord, "unable to replay %s", rec.Name)
	}

	nearest := rec.Points[index].Position
	if !game.WithinRange(pose.Position, nearest, r.s.Replay.MaxStartDistance) {
		r.guide.Arm(now, pose.Position, nearest)
		r.h.HandleEvent(event.NewReplayRejectedTooFarEvent(rec.Name, nearest, dist))
		return &TooFarError{Record: rec.Name, Index: index, Nearest: nearest, Distance: dist}
	}

	r.source = rec
	r.points = rec.Rebase(index)
	assert.IsTrue(len(r.points) > 0, "rebase of %s from %d/%d produced no points", rec.Name, index, len(rec.Points))
	r.loop = loop
	r.startTime = now
	r.active = true
	r.id = uuid.NewString()

	r.log.Debugf("replaying %s from point %d/%d (loop=%v)", rec.Name, index, len(rec.Points), loop)
	r.h.HandleEvent(event.NewReplayStartedEvent(r.id, rec.Name, loop, index))
	return nil
}

// Stop stops the running replay and cancels any pending deferred restart. It returns false if
// neither a replay was running nor a restart was pending.
func (r *Replayer) Stop() bool {
	pending := r.DisarmRestart()
	if !r.active && !pending {
		return false
	}
	r.active = false

	r.h.HandleEvent(event.NewReplayStoppedEvent(r.id, r.source.Name))
	return true
}

// Tick advances the replay to the time now for an agent currently at pose. partial is the
// progress between the last and next tick in [0, 1), used to smooth render frames; it is 0
// when called from the tick itself. Tick never modifies the agent: if the returned frame has
// StatusMoved, the caller moves the agent to the frame's target.
func (r *Replayer) Tick(pose timeline.Pose, now int64, partial float64) Frame {
	if r.restart != nil && now >= r.restart.triggerTime {
		source := r.restart.source
		r.restart = nil

		r.log.Debugf("restarting replay of %s after correction", source.Name)
		if err := r.start(source, true, pose, now); err != nil {
			r.log.Debugf("unable to restart replay of %s: %v", source.Name, err)
		}
		return Frame{Status: StatusRestarted}
	}
	if !r.active {
		return Frame{Status: StatusIdle}
	}
	if len(r.points) < 2 {
		return r.complete(pose, now)
	}

	elapsed := now - r.startTime
	i := sort.Search(len(r.points), func(i int) bool {
		return r.points[i].Timestamp > elapsed
	}) - 1
	if i < 0 {
		return Frame{Status: StatusWaiting}
	}
	if i == len(r.points)-1 {
		return r.complete(pose, now)
	}

	cur, next := r.points[i], r.points[i+1]
	progress := 1.0
	if cur.Timestamp != next.Timestamp {
		progress = float64(elapsed-cur.Timestamp) / float64(next.Timestamp-cur.Timestamp)
	}
	progress += partial / r.s.Replay.TicksPerSecond
	progress = max(0, min(1, progress))

	target := timeline.Pose{
		Position: game.Lerp(cur.Position, next.Position, progress),
		Yaw:      game.LerpAngle(cur.Yaw, next.Yaw, progress),
		Pitch:    game.LerpAngle(cur.Pitch, next.Pitch, progress),
		Velocity: game.Lerp(cur.Velocity, next.Velocity, progress),
	}

	hz := game.HorizontalDistance(target.Position, pose.Position)
	vt := game.VerticalDistance(target.Position, pose.Position)
	if hz > r.s.Replay.MaxHorizontalDeviation || vt > r.s.Replay.MaxVerticalDeviation {
		r.active = false

		var restartAt int64
		if r.loop {
			restartAt = now + r.s.Replay.RestartDelay
			r.restart = &deferredRestart{triggerTime: restartAt, source: r.source}
		}
		r.h.HandleEvent(event.NewReplayPositionCorrectedEvent(r.id, r.source.Name, hz, vt, restartAt))
		return Frame{Status: StatusCorrected}
	}
	return Frame{Status: StatusMoved, Target: target}
}

// complete finishes the running replay. Looping replays are restarted straight away from the
// point nearest to the agent.
func (r *Replayer) complete(pose timeline.Pose, now int64) Frame {
	r.active = false
	r.h.HandleEvent(event.NewReplayCompletedEvent(r.id, r.source.Name, r.loop))

	if r.loop {
		if err := r.start(r.source, true, pose, now); err != nil {
			r.log.Debugf("unable to loop replay of %s: %v", r.source.Name, err)
		}
	}
	return Frame{Status: StatusCompleted}
}
