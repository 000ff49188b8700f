package session

import "github.com/go-gl/mathgl/mgl64"

// Guide is a line from the agent to the nearest point of a record, shown for a limited time
// after a replay was rejected for starting too far away from the path.
type Guide struct {
	duration int64

	armed   bool
	armTime int64
	origin  mgl64.Vec3
	target  mgl64.Vec3
}

// NewGuide returns a guide that stays active for duration milliseconds after being armed.
func NewGuide(duration int64) Guide {
	return Guide{duration: duration}
}

// Arm activates the guide, drawing a line from origin to target starting at now.
func (g *Guide) Arm(now int64, origin, target mgl64.Vec3) {
	g.armed = true
	g.armTime = now
	g.origin, g.target = origin, target
}

// Active returns true if the guide was armed at most its duration ago.
func (g Guide) Active(now int64) bool {
	return g.armed && now-g.armTime <= g.duration
}

// Line returns the origin and target of the guide. ok is false if the guide is not active.
func (g Guide) Line(now int64) (origin, target mgl64.Vec3, ok bool) {
	if !g.Active(now) {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return g.origin, g.target, true
}
