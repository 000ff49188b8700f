package session

import (
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pathrec/event"
	"github.com/oomph-ac/pathrec/oerror"
	"github.com/oomph-ac/pathrec/settings"
	"github.com/oomph-ac/pathrec/timeline"
	"github.com/sirupsen/logrus"
)

// Opts holds the collaborators of a Controller.
type Opts struct {
	Log *logrus.Logger
	// Settings holds the tunables of the controller. Zero-valued settings are replaced with
	// settings.DefaultSettings().
	Settings settings.Settings
	Clock    Clock
	Agent    Agent
	Store    Persister
	Handler  event.Handler
}

// Controller drives the recording and replaying of paths for a single agent. A controller is
// not safe for concurrent use: the host calls its methods from a single sequential timeline,
// with Tick called once per fixed tick and Render once per render frame.
type Controller struct {
	log   *logrus.Logger
	clock Clock
	agent Agent
	store Persister
	h     event.Handler

	recorder *Recorder
	replayer *Replayer
}

// New creates a new controller. Opts.Agent and Opts.Store must be set. A SystemClock is used
// if no clock is set.
func New(opts Opts) *Controller {
	if opts.Settings == (settings.Settings{}) {
		opts.Settings = settings.DefaultSettings()
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
		opts.Log.SetOutput(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Handler == nil {
		opts.Handler = event.NopHandler{}
	}

	return &Controller{
		log:      opts.Log,
		clock:    opts.Clock,
		agent:    opts.Agent,
		store:    opts.Store,
		h:        opts.Handler,
		recorder: NewRecorder(opts.Settings.Recording.SampleInterval),
		replayer: NewReplayer(opts.Settings, opts.Handler, opts.Log),
	}
}

// State returns the current state of the controller.
func (c *Controller) State() State {
	switch {
	case c.recorder.Active():
		return StateRecording
	case c.replayer.Active():
		return StateReplaying
	}
	return StateIdle
}

// Recorder returns the recorder of the controller.
func (c *Controller) Recorder() *Recorder {
	return c.recorder
}

// Replayer returns the replayer of the controller.
func (c *Controller) Replayer() *Replayer {
	return c.replayer
}

// ValidateName checks that name is a valid record name that is not yet used.
func (c *Controller) ValidateName(name string) error {
	if err := timeline.ValidateName(name); err != nil {
		return err
	}
	if c.store.Exists(name) {
		return oerror.Wrap(oerror.ErrNameExists, "name %q", name)
	}
	return nil
}

// StartRecording starts recording a new path under the name passed. It fails with
// oerror.ErrBusy if a recording or replay is running. Pending replay restarts are cancelled.
func (c *Controller) StartRecording(name string) error {
	if c.recorder.Active() || c.replayer.Active() {
		return oerror.ErrBusy
	}
	c.replayer.DisarmRestart()

	if err := c.recorder.Start(name, c.clock.Now()); err != nil {
		return err
	}
	c.log.Infof("started recording %s", name)
	c.h.HandleEvent(event.NewRecordingStartedEvent(c.recorder.Session(), name))
	return nil
}

// StopRecording stops the running recording and hands the record off to the store. It returns
// false if nothing was being recorded.
func (c *Controller) StopRecording() bool {
	rec, ok := c.recorder.Stop(c.clock.Now())
	if !ok {
		return false
	}

	c.store.SaveAsync(rec)
	c.log.Infof("stopped recording %s with %d points", rec.Name, len(rec.Points))
	c.h.HandleEvent(event.NewRecordingStoppedEvent(c.recorder.Session(), rec.Name, len(rec.Points)))
	return true
}

// ToggleRecording stops the running recording, or starts a new one under the name passed if
// nothing is being recorded.
func (c *Controller) ToggleRecording(name string) error {
	if c.StopRecording() {
		return nil
	}
	return c.StartRecording(name)
}

// StartReplay starts replaying rec from the point nearest to the agent. It fails with
// oerror.ErrBusy if a recording or replay is running, and with a *TooFarError if the agent is
// too far from the path, in which case the guide is armed.
func (c *Controller) StartReplay(rec timeline.Record, loop bool) error {
	if c.recorder.Active() || c.replayer.Active() {
		c.h.HandleEvent(event.NewReplayAlreadyInProgressEvent(rec.Name))
		return oerror.ErrBusy
	}
	return c.replayer.Start(rec, loop, c.agent.Pose(), c.clock.Now())
}

// StopReplay stops the running replay, cancelling a pending loop restart as well. It returns
// false if there was nothing to stop.
func (c *Controller) StopReplay() bool {
	return c.replayer.Stop()
}

// ToggleReplay stops the running or pending replay, or starts replaying rec otherwise.
func (c *Controller) ToggleReplay(rec timeline.Record, loop bool) error {
	if c.StopReplay() {
		return nil
	}
	return c.StartReplay(rec, loop)
}

// Tick is called once every fixed tick. It samples the agent if recording and advances the
// replay if replaying.
func (c *Controller) Tick() {
	now, pose := c.clock.Now(), c.agent.Pose()
	c.recorder.Sample(pose, now)
	c.advance(pose, now, 0)
}

// Render is called once every render frame with the progress between the last and next tick.
// It only refines the replay and never records.
func (c *Controller) Render(partial float64) {
	c.advance(c.agent.Pose(), c.clock.Now(), partial)
}

func (c *Controller) advance(pose timeline.Pose, now int64, partial float64) {
	frame := c.replayer.Tick(pose, now, partial)
	if frame.Status == StatusMoved {
		c.agent.SetPose(frame.Target)
	}
}

// PathPositions returns the positions of the path being recorded or replayed, for the host to
// draw. Nil is returned when idle.
func (c *Controller) PathPositions() []mgl64.Vec3 {
	switch c.State() {
	case StateRecording:
		return c.recorder.Positions()
	case StateReplaying:
		return c.replayer.Positions()
	}
	return nil
}

// GuideLine returns the line from the agent to the nearest point of the last record that was
// rejected for being too far away. ok is false once the guide has expired.
func (c *Controller) GuideLine() (origin, target mgl64.Vec3, ok bool) {
	return c.replayer.Guide().Line(c.clock.Now())
}
