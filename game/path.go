package game

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// PathLength returns the sum of the distances between consecutive positions.
func PathLength(points []mgl64.Vec3) float64 {
	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += points[i].Sub(points[i+1]).Len()
	}
	return total
}

// InstantSpeed returns the speed between two positions in blocks per tick, given the time
// between them in milliseconds. Zero is returned if no time has passed.
func InstantSpeed(start, end mgl64.Vec3, timeDelta int64) float64 {
	ticks := float64(timeDelta) / float64(TickDuration)
	if ticks <= 0 {
		return 0
	}
	return start.Sub(end).Len() / ticks
}

// Bounds returns the smallest box containing every position. An empty box is returned for
// no positions.
func Bounds(points []mgl64.Vec3) cube.BBox {
	if len(points) == 0 {
		return cube.BBox{}
	}

	min := mgl64.Vec3{math.MaxFloat64, math.MaxFloat64, math.MaxFloat64}
	max := mgl64.Vec3{-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64}
	for _, p := range points {
		for i := 0; i < 3; i++ {
			min[i] = math.Min(min[i], p[i])
			max[i] = math.Max(max[i], p[i])
		}
	}
	return cube.Box(min[0], min[1], min[2], max[0], max[1], max[2])
}
