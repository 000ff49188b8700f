package timeline

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pathrec/oerror"
)

// Record is a named, recorded path. Records are produced by a finished recording and are
// read-only afterwards: nothing modifies the points of a record once it exists.
type Record struct {
	Name      string
	CreatedAt time.Time
	Points    []Point
}

// Replayable returns true if the record has enough points to be replayed.
func (r Record) Replayable() bool {
	return len(r.Points) >= 2
}

// Positions returns the positions of every point in the record.
func (r Record) Positions() []mgl64.Vec3 {
	positions := make([]mgl64.Vec3, len(r.Points))
	for i, p := range r.Points {
		positions[i] = p.Position
	}
	return positions
}

// Duration returns the time in milliseconds between the first and last point.
func (r Record) Duration() int64 {
	if len(r.Points) == 0 {
		return 0
	}
	return r.Points[len(r.Points)-1].Timestamp - r.Points[0].Timestamp
}

// Nearest returns the index of the point closest to pos along with its distance. If several
// points are equally close, the first one in the record wins. ok is false if the record has
// no points.
func (r Record) Nearest(pos mgl64.Vec3) (index int, dist float64, ok bool) {
	if len(r.Points) == 0 {
		return 0, 0, false
	}

	dist = math.Inf(1)
	for i, p := range r.Points {
		if d := pos.Sub(p.Position).Len(); d < dist {
			index, dist = i, d
		}
	}
	return index, dist, true
}

// Rebase returns a copy of the points starting at index from, with every timestamp shifted so
// that the first returned point has a timestamp of zero. The record itself is left untouched.
func (r Record) Rebase(from int) []Point {
	if from < 0 || from >= len(r.Points) {
		return nil
	}

	base := r.Points[from].Timestamp
	points := make([]Point, len(r.Points)-from)
	for i, p := range r.Points[from:] {
		p.Timestamp -= base
		points[i] = p
	}
	return points
}

// Validate checks the record name and that the timestamps of the points never decrease.
func (r Record) Validate() error {
	if err := ValidateName(r.Name); err != nil {
		return err
	}
	for i := 1; i < len(r.Points); i++ {
		if r.Points[i].Timestamp < r.Points[i-1].Timestamp {
			return oerror.New("point %d of %s goes back in time (%d < %d)", i, r.Name, r.Points[i].Timestamp, r.Points[i-1].Timestamp)
		}
	}
	return nil
}
