package timeline

import "github.com/go-gl/mathgl/mgl64"

// Pose is the spatial state of an agent at a single moment.
type Pose struct {
	// Position is the position of the agent in world coordinates.
	Position mgl64.Vec3
	// Yaw and Pitch are the rotation of the agent in degrees.
	Yaw, Pitch float32
	// Velocity is the instantaneous velocity of the agent.
	Velocity mgl64.Vec3
}

// Point is a single sample of a recorded path.
type Point struct {
	Position   mgl64.Vec3
	Yaw, Pitch float32
	// Timestamp is the time in milliseconds relative to the first point of the record that owns it.
	Timestamp int64
	Velocity  mgl64.Vec3
}

// NewPoint creates a point from a pose sampled at the timestamp passed.
func NewPoint(pose Pose, timestamp int64) Point {
	return Point{
		Position:  pose.Position,
		Yaw:       pose.Yaw,
		Pitch:     pose.Pitch,
		Timestamp: timestamp,
		Velocity:  pose.Velocity,
	}
}

// Pose returns the pose stored in the point.
func (p Point) Pose() Pose {
	return Pose{Position: p.Position, Yaw: p.Yaw, Pitch: p.Pitch, Velocity: p.Velocity}
}
