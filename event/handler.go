package event

import (
	"github.com/oomph-ac/pathrec/utils"
	"github.com/sirupsen/logrus"
)

// Handler handles events emitted by a session.
type Handler interface {
	HandleEvent(ev Event)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandleEvent(Event) {}

// HandlerFunc is a function implementing Handler.
type HandlerFunc func(ev Event)

func (f HandlerFunc) HandleEvent(ev Event) {
	f(ev)
}

// MultiHandler passes every event to each of its handlers in order.
type MultiHandler []Handler

func (m MultiHandler) HandleEvent(ev Event) {
	for _, h := range m {
		h.HandleEvent(ev)
	}
}

// LogHandler logs every event it handles. Events that abort or reject an action are logged
// as warnings.
type LogHandler struct {
	Log *logrus.Logger
}

func (h LogHandler) HandleEvent(ev Event) {
	if h.Log == nil {
		return
	}

	switch ev.(type) {
	case *ReplayRejectedTooFarEvent, *ReplayPositionCorrectedEvent, *ReplayAlreadyInProgressEvent:
		h.Log.Warnf("%s %s", ev.ID(), utils.OrderedMapToString(ev.Data()))
	default:
		h.Log.Infof("%s %s", ev.ID(), utils.OrderedMapToString(ev.Data()))
	}
}
