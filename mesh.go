// Package threadmesh builds watertight triangle meshes for helical screw
// threads and exposes the ring-stack stitching primitive used to close
// them into solids.
//
// Solids are described as stacks of closed point loops ("rings") ordered
// by height along the generation axis. ClosePoints triangulates the
// lateral surface between consecutive rings and caps both ends, yielding
// a closed orientable mesh ready for a boolean/rendering kernel.
package threadmesh

import (
	"github.com/threadmesh/threadmesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is an indexed triangle mesh. Faces are triples of vertex indices
// wound counter-clockwise as seen from the mesh exterior. A Mesh owns no
// external resources and is not mutated after construction except by Weld.
type Mesh struct {
	Vertices []r3.Vec
	Faces    [][3]int
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.Vertices) }

// NumTriangles returns the number of triangular faces.
func (m *Mesh) NumTriangles() int { return len(m.Faces) }

// Triangle returns the ith face as a triangle in space.
func (m *Mesh) Triangle(i int) Triangle {
	f := m.Faces[i]
	return Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// Triangles expands the indexed faces into a flat triangle slice.
func (m *Mesh) Triangles() []Triangle {
	t := make([]Triangle, len(m.Faces))
	for i := range m.Faces {
		t[i] = m.Triangle(i)
	}
	return t
}

// Bounds returns the axis aligned bounding box of the mesh vertices.
func (m *Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	set := d3.Set(m.Vertices)
	return r3.Box{Min: set.Min(), Max: set.Max()}
}

// SignedVolume returns the volume enclosed by the mesh via the divergence
// theorem. It is positive when faces are wound counter-clockwise seen
// from outside and the mesh is closed.
func (m *Mesh) SignedVolume() float64 {
	var vol float64
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		vol += r3.Dot(a, r3.Cross(b, c))
	}
	return vol / 6
}

// Triangle is a 3D triangle with vertices wound counter-clockwise as seen
// from outside the solid it bounds.
type Triangle [3]r3.Vec

// Normal returns the unit normal vector of the triangle.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Area returns the triangle area.
func (t Triangle) Area() float64 {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return 0.5 * r3.Norm(r3.Cross(e1, e2))
}

// Centroid returns the triangle centroid.
func (t Triangle) Centroid() r3.Vec {
	return r3.Scale(1./3., r3.Add(r3.Add(t[0], t[1]), t[2]))
}

// Degenerate returns true if any two vertices coincide within tol.
func (t Triangle) Degenerate(tol float64) bool {
	return d3.EqualWithin(t[0], t[1], tol) ||
		d3.EqualWithin(t[1], t[2], tol) ||
		d3.EqualWithin(t[2], t[0], tol)
}
