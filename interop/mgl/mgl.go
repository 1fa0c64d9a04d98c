// Package mgl converts native import structures into go-gl/mathgl types,
// for programs already built on that stack. The mappings are the same as
// the primary ones: quaternion components pass through unchanged and
// matrix rows become columns.
package mgl

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/taigrr/russimp/sys"
)

func Vec2(v *sys.AiVector2D) mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

func Vec3(v *sys.AiVector3D) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func Color3(c *sys.AiColor3D) mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

func Color4(c *sys.AiColor4D) mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

func Quat(q *sys.AiQuaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// Mat4 reads the row-major native matrix into mgl's column-major layout.
func Mat4(m *sys.AiMatrix4x4) mgl32.Mat4 {
	return mgl32.Mat4{
		m.A1, m.B1, m.C1, m.D1,
		m.A2, m.B2, m.C2, m.D2,
		m.A3, m.B3, m.C3, m.D3,
		m.A4, m.B4, m.C4, m.D4,
	}
}
