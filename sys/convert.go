package sys

import "cogentcore.org/core/math32"

// Conversions from native structs into math32 types. They live on the
// native types because the math32 side is not ours to extend. All of them
// copy by value; none retain the receiver.

// Vec2 converts to a math32 vector.
func (v *AiVector2D) Vec2() math32.Vector2 {
	return math32.Vec2(v.X, v.Y)
}

// Vec3 converts to a math32 vector.
func (v *AiVector3D) Vec3() math32.Vector3 {
	return math32.Vec3(v.X, v.Y, v.Z)
}

// Quat converts to a math32 quaternion. Component order carries over
// unchanged; only the scalar part moves from first to last position.
func (q *AiQuaternion) Quat() math32.Quat {
	return math32.Quat{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Mat4 converts the row-major native matrix into the column-major math32
// layout. Column i of the result is (Ai, Bi, Ci, Di); getting this remap
// wrong transposes every transform in the scene.
func (m *AiMatrix4x4) Mat4() math32.Matrix4 {
	return math32.Matrix4{
		m.A1, m.B1, m.C1, m.D1,
		m.A2, m.B2, m.C2, m.D2,
		m.A3, m.B3, m.C3, m.D3,
		m.A4, m.B4, m.C4, m.D4,
	}
}
