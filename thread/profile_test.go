package thread

import (
	"math"
	"testing"
)

func TestTrapezoidDepth(t *testing.T) {
	// depth*tan(angle) = pitch/4: quarter-period flanks, eighth-period
	// plateaus.
	prof, err := newTrapezoid(1, 0.25, math.Pi/4)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(prof.crest-0.125) > 1e-12 || math.Abs(prof.flank-0.25) > 1e-12 {
		t.Fatalf("profile: got %+v, want crest 0.125 flank 0.25", prof)
	}
	for _, test := range []struct {
		u, want float64
	}{
		{u: 0.5, want: 1},    // crest center
		{u: 0.4, want: 1},    // still on the plateau
		{u: 0.625, want: 1},  // plateau edge
		{u: 0.75, want: 0.5}, // mid flank
		{u: 0.25, want: 0.5}, // mid flank, other side
		{u: 0.875, want: 0},  // root edge
		{u: 0, want: 0},      // root center
		{u: 0.9375, want: 0}, // root plateau
	} {
		if got := prof.depthAt(test.u); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("depthAt(%g): got %g, want %g", test.u, got, test.want)
		}
	}
}

func TestTrapezoidOverlap(t *testing.T) {
	if _, err := newTrapezoid(1, 0.5, math.Pi/4); err == nil {
		t.Error("flanks meeting at the crest: expected error, got nil")
	}
	if _, err := fluteTrapezoid(1, 0.45, math.Pi/4); err == nil {
		t.Error("flute flanks under the crest land: expected error, got nil")
	}
	if _, err := fluteTrapezoid(1, 0.4, math.Pi/4); err != nil {
		t.Errorf("valid flute rejected: %v", err)
	}
}

func TestPhase(t *testing.T) {
	for _, test := range []struct {
		x, want float64
	}{
		{x: 0, want: 0},
		{x: 0.25, want: 0.25},
		{x: 1, want: 0},
		{x: 2.75, want: 0.75},
		{x: -0.25, want: 0.75},
		{x: -3, want: 0},
	} {
		if got := phase(test.x); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("phase(%g): got %g, want %g", test.x, got, test.want)
		}
	}
}

func TestTipScale(t *testing.T) {
	const (
		height    = 10.0
		tipHeight = 2.0
		minFrac   = 0.2
	)
	for _, test := range []struct {
		z      float64
		bottom bool
		want   float64
	}{
		{z: 0, want: 1},
		{z: 5, want: 1},
		{z: 8, want: 1},        // tip region boundary
		{z: 9, want: 0.6},      // halfway down the ramp
		{z: 10, want: minFrac}, // terminal ring
		{z: 0, bottom: true, want: minFrac},
		{z: 1, bottom: true, want: 0.6},
		{z: 5, bottom: true, want: 1},
		{z: 10, bottom: true, want: minFrac},
	} {
		got := tipScale(test.z, height, tipHeight, minFrac, test.bottom)
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("tipScale(z=%g, bottom=%v): got %g, want %g", test.z, test.bottom, got, test.want)
		}
	}
	// Zero tip height disables shaping entirely.
	if got := tipScale(10, height, 0, minFrac, true); got != 1 {
		t.Errorf("tipScale with zero tip height: got %g, want 1", got)
	}
}
