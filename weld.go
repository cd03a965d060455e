package threadmesh

import (
	"errors"
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// Weld merges vertices that land on the same cell of a float32 grid of
// spacing tol and drops faces collapsed by the merge. Downstream kernels
// re-weld on import; welding here keeps handed-off meshes compact and
// mirrors the float32 interchange those kernels use. If tol is zero it is
// inferred from the shortest face edge. Vertices must be finite in
// float32 range.
func (m *Mesh) Weld(tol float64) error {
	if tol < 0 {
		return errors.New("negative weld tolerance")
	}
	if tol == 0 {
		minEdge := math.Inf(1)
		for _, f := range m.Faces {
			for i := range f {
				d := r3.Norm(r3.Sub(m.Vertices[f[i]], m.Vertices[f[(i+1)%3]]))
				if d > 0 && d < minEdge {
					minEdge = d
				}
			}
		}
		if math.IsInf(minEdge, 1) {
			return errors.New("cannot infer weld tolerance from empty mesh")
		}
		tol = minEdge / 256
	}

	ri := float32(1 / tol)
	cache := make(map[[3]int64]int, len(m.Vertices))
	remap := make([]int, len(m.Vertices))
	verts := make([]r3.Vec, 0, len(m.Vertices))
	for i, v := range m.Vertices {
		x, y, z := float32(v.X), float32(v.Y), float32(v.Z)
		if bad32(x) || bad32(y) || bad32(z) {
			return errors.New("non-finite vertex coordinate")
		}
		key := [3]int64{
			int64(math32.Round(x * ri)),
			int64(math32.Round(y * ri)),
			int64(math32.Round(z * ri)),
		}
		idx, ok := cache[key]
		if !ok {
			idx = len(verts)
			cache[key] = idx
			verts = append(verts, v)
		}
		remap[i] = idx
	}

	faces := m.Faces[:0]
	for _, f := range m.Faces {
		g := [3]int{remap[f[0]], remap[f[1]], remap[f[2]]}
		if g[0] == g[1] || g[1] == g[2] || g[2] == g[0] {
			continue // collapsed by the merge
		}
		faces = append(faces, g)
	}
	m.Vertices = verts
	m.Faces = faces
	return nil
}

func bad32(f float32) bool {
	return math32.IsNaN(f) || math32.IsInf(f, 0)
}
