package sys

import (
	"testing"

	"cogentcore.org/core/math32"
)

// TestVec2 verifies the vector conversion copies both components.
func TestVec2(t *testing.T) {
	v := AiVector2D{X: 1.5, Y: -2.25}
	got := v.Vec2()
	if got != math32.Vec2(1.5, -2.25) {
		t.Errorf("Vec2() = %v, want (1.5, -2.25)", got)
	}
}

// TestVec3 verifies the vector conversion copies all three components.
func TestVec3(t *testing.T) {
	v := AiVector3D{X: 1, Y: 2, Z: 3}
	got := v.Vec3()
	if got != math32.Vec3(1, 2, 3) {
		t.Errorf("Vec3() = %v, want (1, 2, 3)", got)
	}
}

// TestQuat verifies the quaternion conversion. The native struct stores
// the scalar part first; the math32 struct stores it last. The individual
// components must carry over without any sign or order change.
func TestQuat(t *testing.T) {
	q := AiQuaternion{W: 0.5, X: 0.1, Y: 0.2, Z: 0.3}
	got := q.Quat()
	want := math32.Quat{X: 0.1, Y: 0.2, Z: 0.3, W: 0.5}
	if got != want {
		t.Errorf("Quat() = %+v, want %+v", got, want)
	}
}

// TestMat4Identity verifies an identity matrix survives the row-major to
// column-major remap unchanged.
func TestMat4Identity(t *testing.T) {
	m := AiMatrix4x4{A1: 1, B2: 1, C3: 1, D4: 1}
	got := m.Mat4()
	if got != *math32.Identity4() {
		t.Errorf("identity Mat4() = %v", got)
	}
}

// TestMat4ColumnMapping verifies the element-by-element remap. The native
// matrix is filled with 1..16 in row order; the result must hold the same
// values in column order, so column i reads (Ai, Bi, Ci, Di).
func TestMat4ColumnMapping(t *testing.T) {
	m := AiMatrix4x4{
		A1: 1, A2: 2, A3: 3, A4: 4,
		B1: 5, B2: 6, B3: 7, B4: 8,
		C1: 9, C2: 10, C3: 11, C4: 12,
		D1: 13, D2: 14, D3: 15, D4: 16,
	}
	got := m.Mat4()
	want := math32.Matrix4{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}
	if got != want {
		t.Errorf("Mat4() = %v, want %v", got, want)
	}
}

// TestMat4Translation verifies a pure translation lands in the last
// column, where math32 keeps translation terms.
func TestMat4Translation(t *testing.T) {
	m := AiMatrix4x4{
		A1: 1, B2: 1, C3: 1, D4: 1,
		A4: 10, B4: 20, C4: 30,
	}
	got := m.Mat4()
	if got[12] != 10 || got[13] != 20 || got[14] != 30 {
		t.Errorf("translation column = (%v, %v, %v), want (10, 20, 30)", got[12], got[13], got[14])
	}
	pos := math32.Vec3(0, 0, 0).MulMatrix4(&got)
	if pos != math32.Vec3(10, 20, 30) {
		t.Errorf("origin transformed to %v, want (10, 20, 30)", pos)
	}
}
