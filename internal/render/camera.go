package render

import (
	"cogentcore.org/core/math32"
)

// Camera orbits a target point at a fixed distance, which is the natural
// control scheme for inspecting a single model. Azimuth and Elevation are
// in radians; FOV is the vertical field of view in degrees.
type Camera struct {
	Target    math32.Vector3
	Distance  float32
	Azimuth   float32
	Elevation float32

	FOV    float32
	Aspect float32
	Near   float32
	Far    float32

	view      math32.Matrix4
	proj      math32.Matrix4
	viewProj  math32.Matrix4
	viewDirty bool
	projDirty bool
	vpDirty   bool
}

// NewCamera returns a camera orbiting the origin from 3 units out.
func NewCamera() *Camera {
	return &Camera{
		Distance:  3,
		FOV:       45,
		Aspect:    16.0 / 9.0,
		Near:      0.01,
		Far:       100,
		viewDirty: true,
		projDirty: true,
		vpDirty:   true,
	}
}

// Position computes the camera's world position from its orbit parameters.
func (c *Camera) Position() math32.Vector3 {
	sinAz, cosAz := math32.Sincos(c.Azimuth)
	sinEl, cosEl := math32.Sincos(c.Elevation)
	offset := math32.Vec3(cosEl*sinAz, sinEl, cosEl*cosAz).MulScalar(c.Distance)
	return c.Target.Add(offset)
}

// Orbit rotates the camera around the target. Elevation is clamped short
// of the poles to keep the up vector stable.
func (c *Camera) Orbit(dAzimuth, dElevation float32) {
	const maxElevation = math32.Pi/2 - 0.01
	c.Azimuth += dAzimuth
	c.Elevation = math32.Clamp(c.Elevation+dElevation, -maxElevation, maxElevation)
	c.viewDirty = true
	c.vpDirty = true
}

// Zoom scales the orbit distance; factors below 1 move in.
func (c *Camera) Zoom(factor float32) {
	c.Distance = max(c.Distance*factor, 1e-3)
	c.viewDirty = true
	c.vpDirty = true
}

// SetAspect sets the projection aspect ratio (width over height).
func (c *Camera) SetAspect(aspect float32) {
	if aspect == c.Aspect || aspect <= 0 {
		return
	}
	c.Aspect = aspect
	c.projDirty = true
	c.vpDirty = true
}

// Frame positions the camera so the given bounds fill the view, and
// spreads the clip planes to cover them with headroom.
func (c *Camera) Frame(box math32.Box3) {
	if box.IsEmpty() {
		return
	}
	radius := box.Size().Length() / 2
	if radius == 0 {
		radius = 1
	}
	c.Target = box.Center()
	c.Distance = radius / math32.Tan(math32.DegToRad(c.FOV)/2) * 1.2
	c.Near = c.Distance / 100
	c.Far = c.Distance*4 + radius*4
	c.viewDirty = true
	c.projDirty = true
	c.vpDirty = true
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() *math32.Matrix4 {
	if c.viewDirty {
		c.computeView()
		c.viewDirty = false
	}
	return &c.view
}

// ProjectionMatrix returns the camera-to-clip transform.
func (c *Camera) ProjectionMatrix() *math32.Matrix4 {
	if c.projDirty {
		c.proj.SetPerspective(c.FOV, c.Aspect, c.Near, c.Far)
		c.projDirty = false
	}
	return &c.proj
}

// ViewProjectionMatrix returns projection times view.
func (c *Camera) ViewProjectionMatrix() *math32.Matrix4 {
	if c.vpDirty {
		c.viewProj.MulMatrices(c.ProjectionMatrix(), c.ViewMatrix())
		c.vpDirty = false
	}
	return &c.viewProj
}

func (c *Camera) computeView() {
	pos := c.Position()
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(pos, c.Target, math32.Vec3(0, 1, 0)))
	var placement math32.Matrix4
	placement.SetTransform(pos, lookq, math32.Vec3(1, 1, 1))
	view, err := placement.Inverse()
	if err != nil {
		c.view.SetIdentity()
		return
	}
	c.view = *view
}

// WorldToScreen projects a world-space point into pixel coordinates on a
// screen of the given size. It reports false for points behind the camera
// or outside the frustum.
func (c *Camera) WorldToScreen(p math32.Vector3, width, height int) (x, y, depth float32, visible bool) {
	clip := math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.MulMatrix4(c.ViewProjectionMatrix())
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.PerspDiv()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X + 1) * 0.5 * float32(width)
	y = (1 - ndc.Y) * 0.5 * float32(height)
	return x, y, ndc.Z, true
}
