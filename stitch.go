package threadmesh

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ClosePoints stitches an ordered stack of point loops into a closed
// triangle mesh. Every ring must hold the same number of points P >= 3
// and rings must be ordered by increasing height along the generation
// axis. For each pair of adjacent rings j, j+1 and point index i two
// lateral triangles are emitted:
//
//	(j,i) (j+1,i) (j+1,(i+1)%P)
//	(j,i) (j+1,(i+1)%P) (j,(i+1)%P)
//
// and the first and last rings are fan-triangulated against their own
// middle (centroid) point, sealing the solid.
//
// Preconditions, not validated here: rings are wound counter-clockwise
// for an observer outside the solid looking up the generation axis,
// segments between same-index points of adjacent rings do not cross
// their neighbors, and the terminal rings are star-shaped with respect
// to their centroids. Rings built by the thread package satisfy all
// three by construction; Mesh.Validate offers a structural audit for
// other producers.
func ClosePoints(rings [][]r3.Vec) (*Mesh, error) {
	if len(rings) < 2 {
		return nil, errors.New("ClosePoints needs at least 2 rings")
	}
	np := len(rings[0])
	if np < 3 {
		return nil, errors.New("ClosePoints needs at least 3 points per ring")
	}
	for j, ring := range rings {
		if len(ring) != np {
			return nil, fmt.Errorf("ring %d has %d points, want %d", j, len(ring), np)
		}
	}

	n := len(rings)
	m := &Mesh{
		Vertices: make([]r3.Vec, 0, n*np+2),
		Faces:    make([][3]int, 0, 2*np*n),
	}
	for _, ring := range rings {
		m.Vertices = append(m.Vertices, ring...)
	}
	cBot := len(m.Vertices)
	m.Vertices = append(m.Vertices, middle(rings[0]))
	cTop := len(m.Vertices)
	m.Vertices = append(m.Vertices, middle(rings[n-1]))

	// Lateral surface: consistent quad split between adjacent rings.
	for j := 0; j < n-1; j++ {
		lo := j * np
		hi := (j + 1) * np
		for i := 0; i < np; i++ {
			i1 := (i + 1) % np
			m.Faces = append(m.Faces,
				[3]int{lo + i, hi + i, hi + i1},
				[3]int{lo + i, hi + i1, lo + i1},
			)
		}
	}

	// End caps: fans about the middle points.
	last := (n - 1) * np
	for i := 0; i < np; i++ {
		i1 := (i + 1) % np
		m.Faces = append(m.Faces,
			[3]int{cBot, i, i1},
			[3]int{cTop, last + i1, last + i},
		)
	}
	return m, nil
}

// middle returns the average of the ring points, the interior point the
// end caps fan out from.
func middle(ring []r3.Vec) r3.Vec {
	var sum r3.Vec
	for _, p := range ring {
		sum = r3.Add(sum, p)
	}
	return r3.Scale(1/float64(len(ring)), sum)
}
