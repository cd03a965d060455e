package thread

import (
	"errors"
	"math"

	"github.com/threadmesh/threadmesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// AugerParameters describes a flighted auger thread: a narrow flight on
// an independent core diameter, giving a drill-flute cross-section rather
// than a symmetric tooth. The flight depth is (outer-inner)/2.
type AugerParameters struct {
	// OuterDiameter is the flight crest diameter.
	OuterDiameter float64
	// InnerDiameter is the core (flute root) diameter. Must be smaller
	// than OuterDiameter.
	InnerDiameter float64
	// Pitch is the helix advance per full turn. Augers run much coarser
	// than fastener threads, on the order of the outer diameter.
	Pitch float64
	// ToothAngle is the flight flank angle from the radial direction
	// [radians].
	ToothAngle float64
	// Tolerance is the radial clearance, applied as in Parameters.
	Tolerance float64
	// Internal marks the auger as a negative volume.
	Internal bool
	// TipHeight is the axial length of the shaped tip region.
	TipHeight float64
	// TipMinFrac is the flight depth fraction kept at the tip when
	// PointTip is unset.
	TipMinFrac float64
	// PointTip collapses the whole cross-section toward the axis over
	// the tip region so the auger ends in a point instead of a land.
	PointTip bool
}

// MetricAuger returns auger parameters for the given crest and core
// diameters with a single-flight pitch equal to the outer diameter.
func MetricAuger(outerDiameter, innerDiameter float64) AugerParameters {
	return AugerParameters{
		OuterDiameter: outerDiameter,
		InnerDiameter: innerDiameter,
		Pitch:         outerDiameter,
		ToothAngle:    30 * math.Pi / 180,
		Tolerance:     0.4,
		TipMinFrac:    0.2,
	}
}

// offset is the tolerance radius offset shared by crest and core.
func (p AugerParameters) offset() float64 {
	if p.Internal {
		return p.Tolerance / 2
	}
	return -p.Tolerance / 2
}

func (p AugerParameters) validate() (err error) {
	switch {
	case p.OuterDiameter <= 0:
		err = errors.New("outer diameter must be positive")
	case p.InnerDiameter <= 0:
		err = errors.New("inner diameter must be positive")
	case p.InnerDiameter >= p.OuterDiameter:
		err = errors.New("inner diameter must be smaller than outer diameter")
	case p.Pitch <= 0:
		err = errors.New("pitch must be positive")
	case p.ToothAngle <= 0 || p.ToothAngle >= math.Pi/2:
		err = errors.New("tooth angle must be in (0, pi/2)")
	case p.Tolerance < 0:
		err = errors.New("tolerance < 0")
	case p.InnerDiameter/2+p.offset() <= 0:
		err = errors.New("tolerance leaves no core material")
	case p.TipHeight < 0:
		err = errors.New("tip height < 0")
	case p.TipMinFrac < 0 || p.TipMinFrac >= 1:
		err = errors.New("tip fraction must be in [0, 1)")
	}
	return err
}

// AugerRings computes the helical ring stack for an auger of the given
// axial height.
func AugerRings(p AugerParameters, height float64) ([][]r3.Vec, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, errors.New("height must be positive")
	}
	depth := (p.OuterDiameter - p.InnerDiameter) / 2
	prof, err := fluteTrapezoid(p.Pitch, depth, p.ToothAngle)
	if err != nil {
		return nil, err
	}
	rRoot := p.InnerDiameter/2 + p.offset()
	facets := facetCount(p.OuterDiameter / 2)
	n := ringCount(height, p.Pitch, facets)

	// Smallest radius a point-tip collapses to. Keeps terminal lateral
	// facets from degenerating; the end cap seals the residual disc.
	const rMin = resolution / 8

	rings := make([][]r3.Vec, n)
	for j := range rings {
		z := height * float64(j) / float64(n-1)
		d := depth
		if !p.PointTip {
			d *= tipScale(z, height, p.TipHeight, p.TipMinFrac, false)
		}
		ring := make([]r3.Vec, facets)
		for i := range ring {
			u := phase(z/p.Pitch - float64(i)/float64(facets))
			r := rRoot + d*prof.depthAt(u)
			if p.PointTip && p.TipHeight > 0 {
				if dz := height - z; dz < p.TipHeight {
					s := dz / p.TipHeight
					r = rMin + (r-rMin)*s
				}
			}
			a := -2 * math.Pi * float64(i) / float64(facets)
			ring[i] = r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
		}
		rings[j] = ring
	}
	return rings, nil
}

// Auger generates a closed auger solid of the given axial height.
func Auger(p AugerParameters, height float64) (*threadmesh.Mesh, error) {
	rings, err := AugerRings(p, height)
	if err != nil {
		return nil, err
	}
	return threadmesh.ClosePoints(rings)
}
