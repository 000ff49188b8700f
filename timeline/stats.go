package timeline

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/pathrec/game"
)

// Stats is a summary of a record, shown when listing records.
type Stats struct {
	Points int
	// Duration is the time between the first and last point in milliseconds.
	Duration int64
	// Length is the distance travelled along the path in blocks.
	Length float64
	// AverageSpeed and TopSpeed are measured in blocks per tick.
	AverageSpeed, TopSpeed float64
	Bounds                 cube.BBox
}

// Stats computes a summary of the record.
func (r Record) Stats() Stats {
	positions := r.Positions()
	speeds := make([]float64, 0, len(r.Points))
	for i := 0; i < len(r.Points)-1; i++ {
		cur, next := r.Points[i], r.Points[i+1]
		speeds = append(speeds, game.InstantSpeed(cur.Position, next.Position, next.Timestamp-cur.Timestamp))
	}

	return Stats{
		Points:       len(r.Points),
		Duration:     r.Duration(),
		Length:       game.PathLength(positions),
		AverageSpeed: game.Mean(speeds),
		TopSpeed:     game.Max(speeds),
		Bounds:       game.Bounds(positions),
	}
}
