// Package notify turns session events into feedback shown to the user of the agent: a
// formatted chat message and a sound cue.
package notify

import (
	"github.com/oomph-ac/pathrec/event"
	"github.com/sandertv/gophertunnel/minecraft/text"
)

const (
	SoundPling = "note.pling"
	SoundBit   = "note.bit"
	SoundChime = "note.chime"
	SoundBass  = "note.bass"
)

// Notification is the feedback for a single event. Sound is empty if no sound should play.
type Notification struct {
	Message string
	Sound   string
	Pitch   float32
}

// Sink receives notifications, for example to show them in a chat window.
type Sink interface {
	Notify(n Notification)
}

// SinkFunc is a function implementing Sink.
type SinkFunc func(n Notification)

func (f SinkFunc) Notify(n Notification) {
	f(n)
}

// Handler implements event.Handler and passes the notification for every event it handles
// to its sink. Events without a notification are ignored.
type Handler struct {
	Sink Sink
}

func (h Handler) HandleEvent(ev event.Event) {
	if h.Sink == nil {
		return
	}
	if n, ok := For(ev); ok {
		h.Sink.Notify(n)
	}
}

// For returns the notification for the event passed. ok is false if the event has no
// notification.
func For(ev event.Event) (n Notification, ok bool) {
	switch ev := ev.(type) {
	case *event.RecordingStartedEvent:
		return Notification{
			Message: text.Colourf("<green>Recording path <yellow>%s</yellow>.</green>", ev.Name),
			Sound:   SoundPling,
			Pitch:   1,
		}, true
	case *event.RecordingStoppedEvent:
		return Notification{
			Message: text.Colourf("<green>Saved path <yellow>%s</yellow> with %d points.</green>", ev.Name, ev.Points),
			Sound:   SoundBit,
			Pitch:   0.8,
		}, true
	case *event.ReplayStartedEvent:
		if ev.Loop {
			return Notification{
				Message: text.Colourf("<aqua>Looping path <yellow>%s</yellow>.</aqua>", ev.Name),
				Sound:   SoundChime,
				Pitch:   1,
			}, true
		}
		return Notification{
			Message: text.Colourf("<aqua>Replaying path <yellow>%s</yellow>.</aqua>", ev.Name),
			Sound:   SoundChime,
			Pitch:   1,
		}, true
	case *event.ReplayRejectedTooFarEvent:
		return Notification{
			Message: text.Colourf("<red>Too far from path <yellow>%s</yellow> (%.1f blocks). Follow the guide to its start.</red>", ev.Name, ev.Distance),
			Sound:   SoundBass,
			Pitch:   0.5,
		}, true
	case *event.ReplayPositionCorrectedEvent:
		if ev.RestartAt != 0 {
			return Notification{
				Message: text.Colourf("<red>Left path <yellow>%s</yellow>, restarting shortly.</red>", ev.Name),
			}, true
		}
		return Notification{
			Message: text.Colourf("<red>Left path <yellow>%s</yellow>.</red>", ev.Name),
		}, true
	case *event.ReplayCompletedEvent:
		if ev.Loop {
			return Notification{}, false
		}
		return Notification{
			Message: text.Colourf("<green>Finished path <yellow>%s</yellow>.</green>", ev.Name),
		}, true
	case *event.ReplayStoppedEvent:
		return Notification{
			Message: text.Colourf("<grey>Stopped replaying <yellow>%s</yellow>.</grey>", ev.Name),
			Sound:   SoundBit,
			Pitch:   0.8,
		}, true
	case *event.ReplayAlreadyInProgressEvent:
		return Notification{
			Message: text.Colourf("<red>Stop the running recording or replay before replaying <yellow>%s</yellow>.</red>", ev.Name),
			Sound:   SoundBit,
			Pitch:   0.8,
		}, true
	}
	return Notification{}, false
}
