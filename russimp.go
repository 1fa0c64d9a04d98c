// Package russimp imports 3D asset files through the native Open Asset
// Import Library and converts every structure the importer produces into
// owned Go values: slices of value types, math32 vectors and matrices, and
// a fully linked node hierarchy.
//
// The native importer is loaded dynamically at runtime; see LoadLibrary.
// Import entry points are FromFile, FromFileWithProperties and FromBuffer.
// The raw scene the importer returns is walked exactly once and released
// before the entry point returns, so nothing reachable from a Scene points
// into native memory.
//
// Geometry uses cogentcore.org/core/math32 types. Anything the native
// format leaves absent (a nil array, a missing channel slot) becomes an
// empty or nil value, never an error.
package russimp

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp/sys"
)

// AABB is an axis-aligned bounding box. Min and Max are copied through
// from the native data unvalidated; a degenerate box stays degenerate.
type AABB struct {
	Min math32.Vector3
	Max math32.Vector3
}

// FromRaw fills the box from its native counterpart.
func (b *AABB) FromRaw(r *sys.AiAABB) {
	b.Min = r.MMin.Vec3()
	b.Max = r.MMax.Vec3()
}

// Color3D is an RGB color. Channels are not normalized or clamped.
type Color3D struct {
	R, G, B float32
}

// FromRaw copies the channels from the native color.
func (c *Color3D) FromRaw(r *sys.AiColor3D) {
	c.R, c.G, c.B = r.R, r.G, r.B
}

// Color4D is an RGBA color. Channels are not normalized or clamped.
type Color4D struct {
	R, G, B, A float32
}

// FromRaw copies the channels from the native color.
func (c *Color4D) FromRaw(r *sys.AiColor4D) {
	c.R, c.G, c.B, c.A = r.R, r.G, r.B, r.A
}

// Vector2D is a plain two-component vector.
type Vector2D struct {
	X, Y float32
}

// FromRaw copies the components from the native vector.
func (v *Vector2D) FromRaw(r *sys.AiVector2D) {
	v.X, v.Y = r.X, r.Y
}
