package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
)

// Lerp linearly interpolates between two vectors. A progress of 0 returns from and a progress
// of 1 returns to.
func Lerp(from, to mgl64.Vec3, progress float64) mgl64.Vec3 {
	return mgl64.Vec3{
		from[0] + (to[0]-from[0])*progress,
		from[1] + (to[1]-from[1])*progress,
		from[2] + (to[2]-from[2])*progress,
	}
}

// LerpAngle interpolates between two angles in degrees along the shortest arc, so that going
// from 350 to 10 passes through 0 rather than 180. The result is not wrapped.
func LerpAngle(from, to float32, progress float64) float32 {
	delta := WrapYawDelta(to - from)
	return float32(float64(from) + float64(delta)*progress)
}

// WrapYawDelta brings a rotation delta exceeding half a turn back into the (-180, 180] range.
func WrapYawDelta(delta float32) float32 {
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}

// WrapDegrees wraps an angle of any magnitude into [-180, 180).
func WrapDegrees(angle float32) float32 {
	angle = math32.Mod(angle+180, 360)
	if angle < 0 {
		angle += 360
	}
	return angle - 180
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl64.Vec3) float64 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// HorizontalDistance returns the distance between two positions on the horizontal plane,
// ignoring the vertical axis.
func HorizontalDistance(a, b mgl64.Vec3) float64 {
	return math.Sqrt(Vec3HzDistSqr(a.Sub(b)))
}

// VerticalDistance returns the absolute difference between two positions on the vertical axis.
func VerticalDistance(a, b mgl64.Vec3) float64 {
	return math.Abs(a.Y() - b.Y())
}

// WithinRange returns true if the distance between the two positions is at most maxDist.
func WithinRange(a, b mgl64.Vec3, maxDist float64) bool {
	return a.Sub(b).Len() <= maxDist
}

// Round64 will round a float64 to a given precision.
func Round64(val float64, precision int) float64 {
	pwr := math.Pow(10, float64(precision))
	return math.Round(val*pwr) / pwr
}

// RoundVec64 will round a 64-bit vector to a given precision.
func RoundVec64(v mgl64.Vec3, p int) mgl64.Vec3 {
	return mgl64.Vec3{Round64(v.X(), p), Round64(v.Y(), p), Round64(v.Z(), p)}
}
