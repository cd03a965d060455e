package thread

import (
	"fmt"
	"math"
)

// trapezoid is the radial tooth profile over one pitch period: a crest
// plateau, two flanks and a root plateau, symmetric about the crest. Real
// thread cross-sections are near-trapezoidal, not sinusoidal.
type trapezoid struct {
	crest float64 // crest plateau half-width as fraction of the period
	flank float64 // flank run as fraction of the period
}

// newTrapezoid sizes the profile from the pitch, the radial tooth depth
// and the flank angle. The leftover period is split equally between the
// crest and root plateaus.
func newTrapezoid(pitch, depth, angle float64) (trapezoid, error) {
	run := depth * math.Tan(angle)
	fl := run / pitch
	if 2*fl >= 1 {
		return trapezoid{}, fmt.Errorf("tooth flanks overlap: flank run %.3g exceeds half pitch %.3g", run, pitch/2)
	}
	return trapezoid{crest: (0.5 - fl) / 2, flank: fl}, nil
}

// fluteTrapezoid sizes an auger flight profile: a narrow fixed crest land
// with the remaining period given to the flute root.
func fluteTrapezoid(pitch, depth, angle float64) (trapezoid, error) {
	const crest = 0.05 // crest land half-width as fraction of the period
	run := depth * math.Tan(angle)
	fl := run / pitch
	if 2*(fl+crest) >= 1 {
		return trapezoid{}, fmt.Errorf("flight flanks leave no flute: flank run %.3g too large for pitch %.3g", run, pitch)
	}
	return trapezoid{crest: crest, flank: fl}, nil
}

// depthAt returns the tooth depth fraction in [0, 1] at phase u in [0, 1),
// with the crest centered at u = 0.5.
func (t trapezoid) depthAt(u float64) float64 {
	d := math.Abs(u - 0.5)
	switch {
	case d <= t.crest:
		return 1
	case d >= t.crest+t.flank:
		return 0
	}
	return 1 - (d-t.crest)/t.flank
}

// phase wraps x to [0, 1).
func phase(x float64) float64 {
	u := math.Mod(x, 1)
	if u < 0 {
		u++
	}
	return u
}

// tipScale is the tooth depth multiplier at height z: 1 through the
// thread body, ramping linearly to minFrac at the terminal ring over the
// last tipHeight of travel. bottom mirrors the ramp at the base.
func tipScale(z, height, tipHeight, minFrac float64, bottom bool) float64 {
	if tipHeight <= 0 {
		return 1
	}
	s := 1.0
	if dz := height - z; dz < tipHeight {
		s = minFrac + (1-minFrac)*dz/tipHeight
	}
	if bottom && z < tipHeight {
		if sb := minFrac + (1-minFrac)*z/tipHeight; sb < s {
			s = sb
		}
	}
	return s
}
