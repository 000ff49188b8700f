package session

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pathrec/event"
	"github.com/oomph-ac/pathrec/settings"
	"github.com/oomph-ac/pathrec/timeline"
)

type mockClock struct {
	now int64
}

func (c *mockClock) Now() int64 {
	return c.now
}

type mockAgent struct {
	pose  timeline.Pose
	moves int
}

func (a *mockAgent) Pose() timeline.Pose {
	return a.pose
}

func (a *mockAgent) SetPose(pose timeline.Pose) {
	a.pose = pose
	a.moves++
}

type mockStore struct {
	saved []timeline.Record
	names map[string]bool
}

func (s *mockStore) SaveAsync(r timeline.Record) {
	s.saved = append(s.saved, r)
}

func (s *mockStore) Exists(name string) bool {
	return s.names[name]
}

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) HandleEvent(ev event.Event) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) ids() []string {
	ids := make([]string, len(r.events))
	for i, ev := range r.events {
		ids[i] = ev.ID()
	}
	return ids
}

func (r *eventRecorder) last() event.Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func (r *eventRecorder) reset() {
	r.events = nil
}

func at(x, y, z float64) timeline.Pose {
	return timeline.Pose{Position: mgl64.Vec3{x, y, z}}
}

// straightRecord returns a record moving from (0, 0, 0) to (10, 0, 0) in one second.
func straightRecord() timeline.Record {
	return timeline.Record{
		Name: "straight",
		Points: []timeline.Point{
			{Position: mgl64.Vec3{0, 0, 0}, Timestamp: 0},
			{Position: mgl64.Vec3{10, 0, 0}, Timestamp: 1000},
		},
	}
}

func newTestReplayer() (*Replayer, *eventRecorder) {
	h := &eventRecorder{}
	return NewReplayer(settings.DefaultSettings(), h, nil), h
}
