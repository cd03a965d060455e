package threadmesh_test

import (
	"os"
	"testing"

	"github.com/deadsy/sdfx/obj"
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/threadmesh/threadmesh"
	"github.com/threadmesh/threadmesh/internal/d3"
	"github.com/threadmesh/threadmesh/thread"
	"gonum.org/v1/gonum/spatial/r3"
)

type viewConfig struct {
	// what position (point) to look at
	lookat r3.Vec
	// which way is up (direction)
	up r3.Vec
	// where the camera/eye located at (point)
	eyepos r3.Vec
	far    float64
	near   float64
}

var defaultView = viewConfig{
	up:     r3.Vec{Z: 1},
	eyepos: d3.Elem(3),
	near:   1,
	far:    10,
}

// TestThreadPreviews renders the generated solids through the software
// rasterizer as a smoke test of the full pipeline; the images are removed
// on success and left on disk for inspection on failure.
func TestThreadPreviews(t *testing.T) {
	for _, test := range []struct {
		name string
		gen  func() (*threadmesh.Mesh, error)
	}{
		{
			name: "screw",
			gen: func() (*threadmesh.Mesh, error) {
				return thread.Screw(thread.Metric(6), 10)
			},
		},
		{
			name: "auger",
			gen: func() (*threadmesh.Mesh, error) {
				p := thread.MetricAuger(8, 4)
				p.PointTip = true
				p.TipHeight = 8
				return thread.Auger(p, 24)
			},
		},
	} {
		m, err := test.gen()
		if err != nil {
			t.Fatal(err)
		}
		if err := m.Validate(); err != nil {
			t.Fatalf("%s: %v", test.name, err)
		}
		pngName := "test_" + test.name + ".png"
		meshToPNG(t, m, pngName, defaultView)
		if !t.Failed() {
			os.Remove(pngName)
		}
	}
}

func BenchmarkScrew(b *testing.B) {
	p := thread.Metric(16)
	for i := 0; i < b.N; i++ {
		if _, err := thread.Screw(p, 30); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSDFXScrew(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	const output = "sdfx_screw.stl"
	defer os.Remove(output)
	object, _ := obj.Bolt(&obj.BoltParms{
		Thread:      "M16x2",
		Style:       "hex",
		Tolerance:   0.1,
		TotalLength: 40,
		ShankLength: 10,
	})
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, 300, output, &sdfxrender.MarchingCubesOctree{})
	}
}

func meshToPNG(t testing.TB, m *threadmesh.Mesh, outputname string, view viewConfig) {
	tris := make([]*fauxgl.Triangle, m.NumTriangles())
	for i, tri := range m.Triangles() {
		tris[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(tri[0].X, tri[0].Y, tri[0].Z),
			fauxgl.V(tri[1].X, tri[1].Y, tri[1].Z),
			fauxgl.V(tri[2].X, tri[2].Y, tri[2].Z),
		)
	}
	mesh := fauxgl.NewTriangleMesh(tris)
	const (
		width, height = 1920, 1080 // output width and height in pixels
		scale         = 1          // optional supersampling
		fovy          = 30         // vertical field of view in degrees
	)

	var (
		far    = view.far
		near   = view.near
		eye    = fauxgl.V(view.eyepos.X, view.eyepos.Y, view.eyepos.Z) // camera position
		center = fauxgl.V(view.lookat.X, view.lookat.Y, view.lookat.Z) // view center position
		up     = fauxgl.V(view.up.X, view.up.Y, view.up.Z)             // up vector
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()                  // light direction
		color  = fauxgl.HexColor("#468966")                            // object color
	)

	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	// create a rendering context
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	// create transformation matrix and light direction
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	// use builtin phong shader
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	// render
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	if err := fauxgl.SavePNG(outputname, image); err != nil {
		t.Fatal(err)
	}
}
