package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pathrec/oerror"
)

func testRecord() Record {
	return Record{
		Name:      "loop_1",
		CreatedAt: time.UnixMilli(1700000000123),
		Points: []Point{
			{Position: mgl64.Vec3{0, 0, 0}, Timestamp: 0},
			{Position: mgl64.Vec3{5, 0, 0}, Timestamp: 50},
			{Position: mgl64.Vec3{10, 0, 0}, Timestamp: 120},
			{Position: mgl64.Vec3{5, 0, 0}, Timestamp: 200},
		},
	}
}

func TestNearestPrefersFirstOccurrence(t *testing.T) {
	r := testRecord()
	index, dist, ok := r.Nearest(mgl64.Vec3{5, 0, 0.5})
	if !ok {
		t.Fatalf("expected a nearest point")
	}
	if index != 1 {
		t.Fatalf("expected the first of two equally close points (1), got %d", index)
	}
	if dist != 0.5 {
		t.Fatalf("expected distance 0.5, got %v", dist)
	}

	if _, _, ok := (Record{Name: "empty"}).Nearest(mgl64.Vec3{}); ok {
		t.Fatalf("expected no nearest point in an empty record")
	}
}

func TestRebase(t *testing.T) {
	r := testRecord()
	points := r.Rebase(1)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i, p := range points {
		if want := r.Points[i+1].Timestamp - r.Points[1].Timestamp; p.Timestamp != want {
			t.Errorf("point %d: expected timestamp %d, got %d", i, want, p.Timestamp)
		}
	}
	if points[0].Timestamp != 0 {
		t.Fatalf("expected the first rebased timestamp to be 0, got %d", points[0].Timestamp)
	}
	if r.Points[1].Timestamp != 50 {
		t.Fatalf("rebasing must not modify the record, got timestamp %d", r.Points[1].Timestamp)
	}
	if r.Rebase(len(r.Points)) != nil {
		t.Fatalf("expected nil for an out of range index")
	}
}

func TestValidate(t *testing.T) {
	r := testRecord()
	if err := r.Validate(); err != nil {
		t.Fatalf("expected record to be valid, got %v", err)
	}

	r.Points = append(r.Points, Point{Timestamp: 10})
	if err := r.Validate(); err == nil {
		t.Fatalf("expected decreasing timestamps to be rejected")
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"a", "Path_01", "my-path", "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"} {
		if err := ValidateName(name); err != nil {
			t.Errorf("expected %q to be valid, got %v", name, err)
		}
	}
	for _, name := range []string{"", "has space", "dots.json", "../escape", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456"} {
		if err := ValidateName(name); !errors.Is(err, oerror.ErrInvalidName) {
			t.Errorf("expected %q to be rejected with ErrInvalidName, got %v", name, err)
		}
	}
}

func TestStats(t *testing.T) {
	r := Record{Name: "stats", Points: []Point{
		{Position: mgl64.Vec3{0, 0, 0}, Timestamp: 0},
		{Position: mgl64.Vec3{3, 0, 4}, Timestamp: 250},
		{Position: mgl64.Vec3{3, 2, 4}, Timestamp: 350},
	}}
	stats := r.Stats()
	if stats.Points != 3 || stats.Duration != 350 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if stats.Length != 7 {
		t.Fatalf("expected length 7, got %v", stats.Length)
	}
	// 5 blocks over 5 ticks, then 2 blocks over 2 ticks.
	if stats.AverageSpeed != 1 || stats.TopSpeed != 1 {
		t.Fatalf("expected speeds of 1 block per tick, got %v/%v", stats.AverageSpeed, stats.TopSpeed)
	}
	if stats.Bounds.Max() != (mgl64.Vec3{3, 2, 4}) {
		t.Fatalf("unexpected bounds %v", stats.Bounds)
	}
	if !r.Replayable() || (Record{Points: r.Points[:1]}).Replayable() {
		t.Fatalf("expected replayable to require two points")
	}
}
