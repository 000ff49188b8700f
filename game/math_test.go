package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLerp(t *testing.T) {
	got := Lerp(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, -4, 2}, 0.5)
	if want := (mgl64.Vec3{5, -2, 1}); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := Lerp(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6}, 0); got != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("expected start position at progress 0, got %v", got)
	}
	if got := Lerp(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{4, 5, 6}, 1); got != (mgl64.Vec3{4, 5, 6}) {
		t.Fatalf("expected end position at progress 1, got %v", got)
	}
}

func TestLerpAngle(t *testing.T) {
	tests := []struct {
		name           string
		from, to       float32
		progress       float64
		wantWrapped    float32
		wantUnwrapped  float32
		checkUnwrapped bool
	}{
		{name: "across wrap boundary", from: 350, to: 10, progress: 0.5, wantWrapped: 0},
		{name: "across wrap boundary backwards", from: 10, to: 350, progress: 0.5, wantWrapped: 0},
		{name: "plain", from: 10, to: 50, progress: 0.25, wantUnwrapped: 20, checkUnwrapped: true},
		{name: "negative", from: -170, to: 170, progress: 0.5, wantWrapped: -180},
		{name: "pitch", from: -45, to: 45, progress: 0.5, wantUnwrapped: 0, checkUnwrapped: true},
	}
	for _, tt := range tests {
		got := LerpAngle(tt.from, tt.to, tt.progress)
		if tt.checkUnwrapped {
			if !Float32ApproxEq(got, tt.wantUnwrapped) {
				t.Errorf("%s: expected %v, got %v", tt.name, tt.wantUnwrapped, got)
			}
			continue
		}
		if wrapped := WrapDegrees(got); !Float32ApproxEq(wrapped, tt.wantWrapped) {
			t.Errorf("%s: expected %v after wrapping, got %v (raw %v)", tt.name, tt.wantWrapped, wrapped, got)
		}
	}
}

func TestWrapYawDelta(t *testing.T) {
	for in, want := range map[float32]float32{
		190:  -170,
		-190: 170,
		180:  180,
		-180: -180,
		45:   45,
	} {
		if got := WrapYawDelta(in); got != want {
			t.Errorf("WrapYawDelta(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestWrapDegrees(t *testing.T) {
	for in, want := range map[float32]float32{
		360:  0,
		720:  0,
		190:  -170,
		-190: 170,
		180:  -180,
		-45:  -45,
	} {
		if got := WrapDegrees(in); !Float32ApproxEq(got, want) {
			t.Errorf("WrapDegrees(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestDeviationDistances(t *testing.T) {
	a, b := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 10, 4}
	if got := HorizontalDistance(a, b); got != 5 {
		t.Fatalf("expected horizontal distance 5, got %v", got)
	}
	if got := VerticalDistance(a, b); got != 10 {
		t.Fatalf("expected vertical distance 10, got %v", got)
	}
}

func TestWithinRange(t *testing.T) {
	origin := mgl64.Vec3{}
	if !WithinRange(origin, mgl64.Vec3{1, 0, 0}, 1) {
		t.Fatalf("expected a distance of exactly 1 to be within range")
	}
	if WithinRange(origin, mgl64.Vec3{1 + 1e-9, 0, 0}, 1) {
		t.Fatalf("expected a distance above 1 to be out of range")
	}
}

func TestRound64(t *testing.T) {
	if got := Round64(1.23456, 2); math.Abs(got-1.23) > 1e-12 {
		t.Fatalf("expected 1.23, got %v", got)
	}
}
