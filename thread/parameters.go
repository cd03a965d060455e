package thread

import (
	"errors"
	"math"
)

// isoToothDepth is the radial tooth depth as a fraction of pitch for the
// ISO 60 degree profile (5H/8 engagement).
const isoToothDepth = 0.6134

// Parameters describes a straight helical thread. All fields are concrete
// values; there are no "compute a default" sentinels. Use Metric to
// resolve standards-derived values for a nominal diameter, then adjust
// fields as needed before generating geometry.
type Parameters struct {
	// OuterDiameter is the nominal major diameter of the thread.
	OuterDiameter float64
	// Pitch is the helix advance per full turn.
	Pitch float64
	// ToothAngle is the flank angle measured from the radial direction
	// [radians], in (0, pi/2).
	ToothAngle float64
	// Tolerance is the radial clearance between mating threads. Half of
	// it is subtracted from an external thread's radii and added to an
	// internal thread's, so a matched pair engages with exactly this
	// clearance.
	Tolerance float64
	// Internal marks the thread as a negative (hole) volume.
	Internal bool
	// ToothHeight is the radial tooth depth, crest to root.
	ToothHeight float64
	// TipHeight is the axial length of the shaped tip region at the top
	// of the thread. Zero disables tip shaping.
	TipHeight float64
	// TipMinFrac is the fraction of ToothHeight retained at the very tip,
	// in [0, 1). It keeps the terminal facets from collapsing to zero
	// area.
	TipMinFrac float64
	// BottomTip mirrors the tip shaping ramp at the base of the thread.
	BottomTip bool
}

// Metric returns thread parameters for a nominal metric outer diameter
// with every standards-derived value resolved: coarse pitch from the
// metric table, 30 degree flanks, 0.4mm clearance and ISO proportioned
// tooth depth.
func Metric(outerDiameter float64) Parameters {
	p := Pitch(outerDiameter)
	return Parameters{
		OuterDiameter: outerDiameter,
		Pitch:         p,
		ToothAngle:    30 * math.Pi / 180,
		Tolerance:     0.4,
		ToothHeight:   isoToothDepth * p,
		TipMinFrac:    0.2,
	}
}

// majorRadius is the crest radius after the tolerance offset.
func (p Parameters) majorRadius() float64 {
	r := p.OuterDiameter / 2
	if p.Internal {
		return r + p.Tolerance/2
	}
	return r - p.Tolerance/2
}

func (p Parameters) validate() (err error) {
	switch {
	case p.OuterDiameter <= 0:
		err = errors.New("outer diameter must be positive")
	case p.Pitch <= 0:
		err = errors.New("pitch must be positive")
	case p.ToothAngle <= 0 || p.ToothAngle >= math.Pi/2:
		err = errors.New("tooth angle must be in (0, pi/2)")
	case p.Tolerance < 0:
		err = errors.New("tolerance < 0")
	case p.majorRadius() <= 0:
		err = errors.New("tolerance leaves no thread material")
	case p.ToothHeight <= 0:
		err = errors.New("tooth height must be positive")
	case p.ToothHeight > p.majorRadius()/2:
		err = errors.New("tooth height exceeds half the thread radius")
	case p.TipHeight < 0:
		err = errors.New("tip height < 0")
	case p.TipMinFrac < 0 || p.TipMinFrac >= 1:
		err = errors.New("tip fraction must be in [0, 1)")
	}
	return err
}
