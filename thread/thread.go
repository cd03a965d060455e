// Package thread generates ring stacks and closed solids for helical
// screw threads.
//
// Threads are built by sampling a trapezoidal tooth profile along a
// helix: one planar ring of points per helical step, each point's radius
// a function of its phase within the tooth period, stitched into a
// closed solid by threadmesh.ClosePoints. Straight and auger threads
// share the stitching contract and differ only in how ring radii are
// computed.
//
// Generation is a pure function of its parameters: no shared state, safe
// to call concurrently across thread instances.
package thread

import (
	"errors"
	"math"

	"github.com/threadmesh/threadmesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// resolution is the circumferential sampling pitch [mm]. It balances
// fabrication-scale smoothness against mesh size.
const resolution = 0.2

// facetCount derives points per revolution from the nominal thread
// radius. Larger threads get more facets.
func facetCount(radius float64) int {
	n := int(math.Ceil(2 * math.Pi * radius / resolution))
	if n < 8 {
		n = 8
	}
	return n
}

// ringCount derives the ring stack size: one ring per helical step, never
// fewer than two rings no matter how short the thread.
func ringCount(height, pitch float64, facets int) int {
	n := int(math.Ceil(height/pitch*float64(facets))) + 1
	if n < 2 {
		n = 2
	}
	return n
}

// Rings computes the helical ring stack for a thread of the given axial
// height. Every ring has the same point count and rings are ordered by
// strictly increasing height, ready for threadmesh.ClosePoints.
func Rings(p Parameters, height float64) ([][]r3.Vec, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, errors.New("height must be positive")
	}
	prof, err := newTrapezoid(p.Pitch, p.ToothHeight, p.ToothAngle)
	if err != nil {
		return nil, err
	}
	rRoot := p.majorRadius() - p.ToothHeight
	facets := facetCount(p.OuterDiameter / 2)
	n := ringCount(height, p.Pitch, facets)

	rings := make([][]r3.Vec, n)
	for j := range rings {
		z := height * float64(j) / float64(n-1)
		depth := p.ToothHeight * tipScale(z, height, p.TipHeight, p.TipMinFrac, p.BottomTip)
		ring := make([]r3.Vec, facets)
		for i := range ring {
			u := phase(z/p.Pitch - float64(i)/float64(facets))
			r := rRoot + depth*prof.depthAt(u)
			// Rings wind clockwise seen from +Z so the stitched faces
			// come out counter-clockwise from outside the solid.
			a := -2 * math.Pi * float64(i) / float64(facets)
			ring[i] = r3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
		}
		rings[j] = ring
	}
	return rings, nil
}

// Screw generates a closed thread solid of the given axial height,
// centered on the Z axis with its base at z = 0. Callers position and
// compose the result; internal threads are used as negative volumes.
func Screw(p Parameters, height float64) (*threadmesh.Mesh, error) {
	rings, err := Rings(p, height)
	if err != nil {
		return nil, err
	}
	return threadmesh.ClosePoints(rings)
}
