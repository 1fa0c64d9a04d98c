package russimp

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/taigrr/russimp/sys"
)

// MaterialProperty is one decoded key/value pair of a material. Value
// holds, depending on Type: []float32, []float64, []int32, string, or
// []byte for opaque buffers. Semantic and Index identify the texture stack
// and stack position for texture-related keys and are zero otherwise.
type MaterialProperty struct {
	Key      string
	Semantic sys.AiTextureType
	Index    uint32
	Type     sys.AiPropertyTypeInfo
	Value    any
}

// Material is a bag of typed properties. Texture references are stored as
// properties too; TexturePath digs them out.
type Material struct {
	Properties []MaterialProperty
}

// newMaterial decodes every property of a native material. One malformed
// property fails the whole material.
func newMaterial(r *sys.AiMaterial) (Material, error) {
	var m Material
	props := refSlice(r.MProperties, r.MNumProperties)
	m.Properties = make([]MaterialProperty, 0, len(props))
	for _, pr := range props {
		p, err := decodeProperty(pr)
		if err != nil {
			return Material{}, err
		}
		m.Properties = append(m.Properties, p)
	}
	return m, nil
}

func decodeProperty(r *sys.AiMaterialProperty) (MaterialProperty, error) {
	p := MaterialProperty{
		Key:      r.MKey.String(),
		Semantic: sys.AiTextureType(r.MSemantic),
		Index:    r.MIndex,
		Type:     r.MType,
	}
	switch r.MType {
	case sys.PropertyTypeFloat:
		if r.MDataLength%4 != 0 {
			return p, materialErrorf("property %q: float payload of %d bytes", p.Key, r.MDataLength)
		}
		p.Value = CloneSlice((*float32)(unsafe.Pointer(r.MData)), r.MDataLength/4)
	case sys.PropertyTypeDouble:
		if r.MDataLength%8 != 0 {
			return p, materialErrorf("property %q: double payload of %d bytes", p.Key, r.MDataLength)
		}
		p.Value = CloneSlice((*float64)(unsafe.Pointer(r.MData)), r.MDataLength/8)
	case sys.PropertyTypeInteger:
		if r.MDataLength%4 != 0 {
			return p, materialErrorf("property %q: integer payload of %d bytes", p.Key, r.MDataLength)
		}
		p.Value = CloneSlice((*int32)(unsafe.Pointer(r.MData)), r.MDataLength/4)
	case sys.PropertyTypeString:
		s, err := decodeMaterialString(CloneSlice(r.MData, r.MDataLength))
		if err != nil {
			return p, err
		}
		p.Value = s
	default:
		// Unknown types are carried as opaque bytes rather than rejected;
		// the header calls this aiPTI_Buffer and uses it for binary blobs.
		p.Value = CloneSlice(r.MData, r.MDataLength)
	}
	return p, nil
}

// decodeMaterialString unpacks the serialized string layout used inside
// material property payloads: a 4-byte length, the bytes, then a NUL.
func decodeMaterialString(data []byte) (string, error) {
	if len(data) < 4 {
		return "", materialErrorf("string property of %d bytes is shorter than its length header", len(data))
	}
	n := *(*uint32)(unsafe.Pointer(&data[0]))
	if uint64(n)+4 > uint64(len(data)) {
		return "", materialErrorf("string property declares %d bytes but carries %d", n, len(data)-4)
	}
	b := data[4 : 4+n]
	if !utf8.Valid(b) {
		return "", PrimitiveError(fmt.Errorf("invalid UTF-8 sequence at byte %d", invalidRuneIndex(b)))
	}
	return string(b), nil
}

func invalidRuneIndex(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Property returns the first property matching key, semantic and index.
func (m *Material) Property(key string, semantic sys.AiTextureType, index uint32) (*MaterialProperty, bool) {
	for i := range m.Properties {
		p := &m.Properties[i]
		if p.Key == key && p.Semantic == semantic && p.Index == index {
			return p, true
		}
	}
	return nil, false
}

// Name returns the material's display name, or the empty string when the
// material has none.
func (m *Material) Name() string {
	p, ok := m.Property(sys.MatKeyName, sys.TextureTypeNone, 0)
	if !ok {
		return ""
	}
	s, _ := p.Value.(string)
	return s
}

// TextureCount reports how many textures are stacked for the given type.
func (m *Material) TextureCount(kind sys.AiTextureType) int {
	n := 0
	for i := range m.Properties {
		if m.Properties[i].Key == sys.MatKeyTextureBase && m.Properties[i].Semantic == kind {
			n++
		}
	}
	return n
}

// TexturePath returns the path of the index-th texture of the given type.
// The path may be an embedded reference of the form "*N"; resolve those
// through Scene.EmbeddedTexture.
func (m *Material) TexturePath(kind sys.AiTextureType, index uint32) (string, bool) {
	p, ok := m.Property(sys.MatKeyTextureBase, kind, index)
	if !ok {
		return "", false
	}
	s, ok := p.Value.(string)
	return s, ok
}
