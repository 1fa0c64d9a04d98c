package render

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp"
)

// Wireframe projects scene geometry through a camera into a framebuffer.
type Wireframe struct {
	cam *Camera
	fb  *Framebuffer
}

func NewWireframe(cam *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{cam: cam, fb: fb}
}

// DrawLine3D projects a world-space segment and rasterizes it. A segment
// with both endpoints outside the frustum is dropped rather than clipped,
// which is fine for preview purposes.
func (w *Wireframe) DrawLine3D(p1, p2 math32.Vector3, c Color) {
	x1, y1, _, vis1 := w.cam.WorldToScreen(p1, w.fb.Width, w.fb.Height)
	x2, y2, _, vis2 := w.cam.WorldToScreen(p2, w.fb.Width, w.fb.Height)
	if !vis1 && !vis2 {
		return
	}
	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), c)
}

// DrawPoint3D projects a world-space point to a single pixel.
func (w *Wireframe) DrawPoint3D(p math32.Vector3, c Color) {
	x, y, _, vis := w.cam.WorldToScreen(p, w.fb.Width, w.fb.Height)
	if !vis {
		return
	}
	w.fb.SetPixel(int(x), int(y), c)
}

// DrawScene draws every mesh referenced by the node hierarchy, each in its
// node's accumulated world transform. Meshes referenced by no node are not
// drawn, matching how the scene is meant to be instantiated.
func (w *Wireframe) DrawScene(sc *russimp.Scene, c Color) {
	if sc.Root == nil {
		return
	}
	var ident math32.Matrix4
	ident.SetIdentity()
	w.drawNode(sc, sc.Root, &ident, c)
}

func (w *Wireframe) drawNode(sc *russimp.Scene, n *russimp.Node, parent *math32.Matrix4, c Color) {
	var world math32.Matrix4
	world.MulMatrices(parent, &n.Transformation)
	for _, mi := range n.Meshes {
		if int(mi) < len(sc.Meshes) {
			w.DrawMesh(&sc.Meshes[mi], &world, c)
		}
	}
	for _, child := range n.Children {
		w.drawNode(sc, child, &world, c)
	}
}

// DrawMesh draws the edges of every face of one mesh under the given
// world transform. Single-index faces come out as points, two-index faces
// as lines, everything else as a closed ring.
func (w *Wireframe) DrawMesh(m *russimp.Mesh, world *math32.Matrix4, c Color) {
	at := func(i uint32) (math32.Vector3, bool) {
		if int(i) >= len(m.Vertices) {
			return math32.Vector3{}, false
		}
		return m.Vertices[i].MulMatrix4(world), true
	}
	for fi := range m.Faces {
		idx := m.Faces[fi].Indices
		switch len(idx) {
		case 0:
		case 1:
			if p, ok := at(idx[0]); ok {
				w.DrawPoint3D(p, c)
			}
		case 2:
			p1, ok1 := at(idx[0])
			p2, ok2 := at(idx[1])
			if ok1 && ok2 {
				w.DrawLine3D(p1, p2, c)
			}
		default:
			for i := range idx {
				p1, ok1 := at(idx[i])
				p2, ok2 := at(idx[(i+1)%len(idx)])
				if ok1 && ok2 {
					w.DrawLine3D(p1, p2, c)
				}
			}
		}
	}
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawBox draws the 12 edges of an axis-aligned box placed by the given
// world transform.
func (w *Wireframe) DrawBox(box math32.Box3, world *math32.Matrix4, c Color) {
	corners := [8]math32.Vector3{
		{X: box.Min.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Min.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Min.Z},
		{X: box.Min.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Min.Y, Z: box.Max.Z},
		{X: box.Max.X, Y: box.Max.Y, Z: box.Max.Z},
		{X: box.Min.X, Y: box.Max.Y, Z: box.Max.Z},
	}
	for i := range corners {
		corners[i] = corners[i].MulMatrix4(world)
	}
	for _, e := range boxEdges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], c)
	}
}

// DrawAxes draws the world axes from the origin, X red, Y green, Z blue.
func (w *Wireframe) DrawAxes(length float32) {
	origin := math32.Vector3{}
	w.DrawLine3D(origin, math32.Vec3(length, 0, 0), ColorRed)
	w.DrawLine3D(origin, math32.Vec3(0, length, 0), ColorGreen)
	w.DrawLine3D(origin, math32.Vec3(0, 0, length), ColorBlue)
}

// DrawGrid draws a square grid on the XZ plane at y = 0.
func (w *Wireframe) DrawGrid(size, step float32, c Color) {
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math32.Vec3(x, 0, -half), math32.Vec3(x, 0, half), c)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math32.Vec3(-half, 0, z), math32.Vec3(half, 0, z), c)
	}
}

// SceneBounds computes the world-space bounds of everything the node
// hierarchy draws. Mesh bounds come from the imported AABB when the
// importer filled one in and are measured from the vertices otherwise.
func SceneBounds(sc *russimp.Scene) math32.Box3 {
	b := math32.B3Empty()
	if sc.Root == nil {
		return b
	}
	var ident math32.Matrix4
	ident.SetIdentity()
	boundsNode(sc, sc.Root, &ident, &b)
	return b
}

func boundsNode(sc *russimp.Scene, n *russimp.Node, parent *math32.Matrix4, b *math32.Box3) {
	var world math32.Matrix4
	world.MulMatrices(parent, &n.Transformation)
	for _, mi := range n.Meshes {
		if int(mi) >= len(sc.Meshes) {
			continue
		}
		mb := meshBounds(&sc.Meshes[mi])
		if !mb.IsEmpty() {
			b.ExpandByBox(mb.MulMatrix4(&world))
		}
	}
	for _, child := range n.Children {
		boundsNode(sc, child, &world, b)
	}
}

func meshBounds(m *russimp.Mesh) math32.Box3 {
	if m.AABB.Min != m.AABB.Max {
		return math32.Box3{Min: m.AABB.Min, Max: m.AABB.Max}
	}
	b := math32.B3Empty()
	b.ExpandByPoints(m.Vertices)
	return b
}
