package russimp

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/taigrr/russimp/sys"
)

func bytesOf[T any](vals []T) (*byte, uint32) {
	size := uint32(unsafe.Sizeof(vals[0]))
	return (*byte)(unsafe.Pointer(&vals[0])), size * uint32(len(vals))
}

// stringPayload serializes s the way material properties store strings: a
// 4-byte length in host order, the bytes, then a NUL.
func stringPayload(s string) []byte {
	buf := make([]byte, 4+len(s)+1)
	*(*uint32)(unsafe.Pointer(&buf[0])) = uint32(len(s))
	copy(buf[4:], s)
	return buf
}

func materialOf(props ...*sys.AiMaterialProperty) *sys.AiMaterial {
	return &sys.AiMaterial{MProperties: &props[0], MNumProperties: uint32(len(props))}
}

// TestMaterialDecode verifies each payload type decodes to its Go
// representation.
func TestMaterialDecode(t *testing.T) {
	floats := []float32{0.8, 0.2, 0.2, 1}
	doubles := []float64{2.5}
	ints := []int32{1, 0}
	name := stringPayload("steel")
	blob := []byte{0xde, 0xad, 0xbe, 0xef}

	fp, fn := bytesOf(floats)
	dp, dn := bytesOf(doubles)
	ip, in := bytesOf(ints)
	sp, sn := bytesOf(name)
	bp, bn := bytesOf(blob)

	m, err := newMaterial(materialOf(
		&sys.AiMaterialProperty{MKey: sys.NewAiString("$clr.diffuse"), MType: sys.PropertyTypeFloat, MData: fp, MDataLength: fn},
		&sys.AiMaterialProperty{MKey: sys.NewAiString("$mat.refracti"), MType: sys.PropertyTypeDouble, MData: dp, MDataLength: dn},
		&sys.AiMaterialProperty{MKey: sys.NewAiString("$mat.twosided"), MType: sys.PropertyTypeInteger, MData: ip, MDataLength: in},
		&sys.AiMaterialProperty{MKey: sys.NewAiString("?mat.name"), MType: sys.PropertyTypeString, MData: sp, MDataLength: sn},
		&sys.AiMaterialProperty{MKey: sys.NewAiString("$raw.blob"), MType: sys.PropertyTypeBuffer, MData: bp, MDataLength: bn},
	))
	if err != nil {
		t.Fatalf("newMaterial: %v", err)
	}
	if len(m.Properties) != 5 {
		t.Fatalf("got %d properties, want 5", len(m.Properties))
	}

	if got, ok := m.Properties[0].Value.([]float32); !ok || len(got) != 4 || got[0] != 0.8 {
		t.Errorf("float property = %#v", m.Properties[0].Value)
	}
	if got, ok := m.Properties[1].Value.([]float64); !ok || len(got) != 1 || got[0] != 2.5 {
		t.Errorf("double property = %#v", m.Properties[1].Value)
	}
	if got, ok := m.Properties[2].Value.([]int32); !ok || len(got) != 2 || got[0] != 1 {
		t.Errorf("integer property = %#v", m.Properties[2].Value)
	}
	if got, ok := m.Properties[3].Value.(string); !ok || got != "steel" {
		t.Errorf("string property = %#v", m.Properties[3].Value)
	}
	if got, ok := m.Properties[4].Value.([]byte); !ok || len(got) != 4 || got[0] != 0xde {
		t.Errorf("buffer property = %#v", m.Properties[4].Value)
	}
}

// TestMaterialLookups verifies Name, TextureCount and TexturePath walk the
// property bag by key, semantic and index.
func TestMaterialLookups(t *testing.T) {
	nameData := stringPayload("steel")
	diffuse0 := stringPayload("albedo.png")
	diffuse1 := stringPayload("detail.png")
	normals0 := stringPayload("*2")

	np, nn := bytesOf(nameData)
	d0p, d0n := bytesOf(diffuse0)
	d1p, d1n := bytesOf(diffuse1)
	n0p, n0n := bytesOf(normals0)

	m, err := newMaterial(materialOf(
		&sys.AiMaterialProperty{MKey: sys.NewAiString(sys.MatKeyName), MType: sys.PropertyTypeString, MData: np, MDataLength: nn},
		&sys.AiMaterialProperty{MKey: sys.NewAiString(sys.MatKeyTextureBase), MSemantic: uint32(sys.TextureTypeDiffuse), MIndex: 0, MType: sys.PropertyTypeString, MData: d0p, MDataLength: d0n},
		&sys.AiMaterialProperty{MKey: sys.NewAiString(sys.MatKeyTextureBase), MSemantic: uint32(sys.TextureTypeDiffuse), MIndex: 1, MType: sys.PropertyTypeString, MData: d1p, MDataLength: d1n},
		&sys.AiMaterialProperty{MKey: sys.NewAiString(sys.MatKeyTextureBase), MSemantic: uint32(sys.TextureTypeNormals), MIndex: 0, MType: sys.PropertyTypeString, MData: n0p, MDataLength: n0n},
	))
	if err != nil {
		t.Fatalf("newMaterial: %v", err)
	}

	if got := m.Name(); got != "steel" {
		t.Errorf("Name() = %q, want \"steel\"", got)
	}
	if got := m.TextureCount(sys.TextureTypeDiffuse); got != 2 {
		t.Errorf("TextureCount(diffuse) = %d, want 2", got)
	}
	if got := m.TextureCount(sys.TextureTypeBaseColor); got != 0 {
		t.Errorf("TextureCount(base color) = %d, want 0", got)
	}
	if path, ok := m.TexturePath(sys.TextureTypeDiffuse, 1); !ok || path != "detail.png" {
		t.Errorf("TexturePath(diffuse, 1) = %q, %v", path, ok)
	}
	if path, ok := m.TexturePath(sys.TextureTypeNormals, 0); !ok || path != "*2" {
		t.Errorf("TexturePath(normals, 0) = %q, %v", path, ok)
	}
	if _, ok := m.TexturePath(sys.TextureTypeDiffuse, 2); ok {
		t.Errorf("TexturePath(diffuse, 2) should miss")
	}
	if _, ok := m.Property("$tex.mapping", sys.TextureTypeDiffuse, 0); ok {
		t.Errorf("Property should miss on unknown key")
	}
}

// TestMaterialMisalignedPayload verifies numeric payloads whose sizes do
// not divide by the element size fail the material.
func TestMaterialMisalignedPayload(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7}
	dp, _ := bytesOf(data)

	tests := []struct {
		name  string
		ptype sys.AiPropertyTypeInfo
		n     uint32
	}{
		{"float", sys.PropertyTypeFloat, 7},
		{"double", sys.PropertyTypeDouble, 4},
		{"integer", sys.PropertyTypeInteger, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newMaterial(materialOf(&sys.AiMaterialProperty{
				MKey: sys.NewAiString("$bad"), MType: tt.ptype, MData: dp, MDataLength: tt.n,
			}))
			var e *Error
			if !errors.As(err, &e) || e.Kind != ErrorMaterial {
				t.Errorf("want a material error, got %#v", err)
			}
		})
	}
}

// TestMaterialStringTooShort verifies a string payload smaller than the
// length header fails.
func TestMaterialStringTooShort(t *testing.T) {
	data := []byte{5, 0, 0}
	dp, dn := bytesOf(data)
	_, err := newMaterial(materialOf(&sys.AiMaterialProperty{
		MKey: sys.NewAiString("?mat.name"), MType: sys.PropertyTypeString, MData: dp, MDataLength: dn,
	}))
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrorMaterial {
		t.Fatalf("want a material error, got %#v", err)
	}
	if e.Message != "string property of 3 bytes is shorter than its length header" {
		t.Errorf("Message = %q", e.Message)
	}
}

// TestMaterialStringOverrun verifies a length header larger than the
// payload fails instead of reading past the end.
func TestMaterialStringOverrun(t *testing.T) {
	data := stringPayload("ab")
	*(*uint32)(unsafe.Pointer(&data[0])) = 10
	dp, dn := bytesOf(data)
	_, err := newMaterial(materialOf(&sys.AiMaterialProperty{
		MKey: sys.NewAiString("?mat.name"), MType: sys.PropertyTypeString, MData: dp, MDataLength: dn,
	}))
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrorMaterial {
		t.Fatalf("want a material error, got %#v", err)
	}
	if e.Message != "string property declares 10 bytes but carries 3" {
		t.Errorf("Message = %q", e.Message)
	}
}

// TestMaterialStringInvalidUTF8 verifies a non-UTF-8 string payload fails
// as a primitive error naming the offending byte.
func TestMaterialStringInvalidUTF8(t *testing.T) {
	data := stringPayload("ab\xffcd")
	dp, dn := bytesOf(data)
	_, err := newMaterial(materialOf(&sys.AiMaterialProperty{
		MKey: sys.NewAiString("?mat.name"), MType: sys.PropertyTypeString, MData: dp, MDataLength: dn,
	}))
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrorPrimitive {
		t.Fatalf("want a primitive error, got %#v", err)
	}
	if e.Message != "invalid UTF-8 sequence at byte 2" {
		t.Errorf("Message = %q", e.Message)
	}
}

// TestMaterialEmpty verifies a material without properties decodes to an
// empty bag.
func TestMaterialEmpty(t *testing.T) {
	m, err := newMaterial(&sys.AiMaterial{})
	if err != nil {
		t.Fatalf("newMaterial: %v", err)
	}
	if len(m.Properties) != 0 {
		t.Errorf("got %d properties, want 0", len(m.Properties))
	}
	if m.Name() != "" {
		t.Errorf("Name() on empty material = %q", m.Name())
	}
}
