package threadmesh

import (
	"errors"
	"fmt"
)

// Validate audits the mesh for the closed-manifold property: every face
// references valid distinct vertices and every directed edge appears
// exactly once with its opposite also present, so the surface has no
// boundary edges and consistent orientation. It does not detect geometric
// self-intersection.
func (m *Mesh) Validate() error {
	if len(m.Faces) == 0 {
		return errors.New("mesh has no faces")
	}
	edges := make(map[[2]int]int, 3*len(m.Faces))
	for fi, f := range m.Faces {
		for _, v := range f {
			if v < 0 || v >= len(m.Vertices) {
				return fmt.Errorf("face %d references vertex %d, have %d vertices", fi, v, len(m.Vertices))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("face %d repeats a vertex index", fi)
		}
		edges[[2]int{f[0], f[1]}]++
		edges[[2]int{f[1], f[2]}]++
		edges[[2]int{f[2], f[0]}]++
	}
	for e, count := range edges {
		if count != 1 {
			return fmt.Errorf("directed edge %d->%d used by %d faces, want 1", e[0], e[1], count)
		}
		if edges[[2]int{e[1], e[0]}] != 1 {
			return fmt.Errorf("edge %d->%d has no opposing half edge: mesh is open", e[0], e[1])
		}
	}
	return nil
}
