package russimp

import "github.com/taigrr/russimp/sys"

// Metadata is the key/value table attached to scenes and nodes. Keys and
// Values are parallel slices of the same length.
type Metadata struct {
	Keys   []string
	Values []MetadataEntry
}

// MetadataEntry is one typed metadata value. Value holds, depending on
// Type: bool, int32, uint64, float32, float64, string, math32.Vector3,
// *Metadata, int64 or uint32.
type MetadataEntry struct {
	Type  sys.AiMetadataType
	Value any
}

// newMetadata decodes a native metadata table. Unknown value tags and
// missing payloads make the whole table unreadable.
func newMetadata(r *sys.AiMetadata) (*Metadata, error) {
	md := &Metadata{
		Keys: convertSlice(r.MKeys, r.MNumProperties, (*sys.AiString).String),
	}
	entries := CloneSlice(r.MValues, r.MNumProperties)
	md.Values = make([]MetadataEntry, 0, len(entries))
	for i := range entries {
		v, err := metadataValue(&entries[i])
		if err != nil {
			return nil, err
		}
		md.Values = append(md.Values, MetadataEntry{Type: entries[i].MType, Value: v})
	}
	return md, nil
}

func metadataValue(e *sys.AiMetadataEntry) (any, error) {
	if e.MData == nil {
		return nil, metadataErrorf("metadata entry of type %d has no payload", e.MType)
	}
	switch e.MType {
	case sys.MetadataTypeBool:
		return *(*byte)(e.MData) != 0, nil
	case sys.MetadataTypeInt32:
		return *(*int32)(e.MData), nil
	case sys.MetadataTypeUint64:
		return *(*uint64)(e.MData), nil
	case sys.MetadataTypeFloat:
		return *(*float32)(e.MData), nil
	case sys.MetadataTypeDouble:
		return *(*float64)(e.MData), nil
	case sys.MetadataTypeAiString:
		return (*sys.AiString)(e.MData).String(), nil
	case sys.MetadataTypeAiVector3D:
		return (*sys.AiVector3D)(e.MData).Vec3(), nil
	case sys.MetadataTypeAiMetadata:
		nested, err := newMetadata((*sys.AiMetadata)(e.MData))
		if err != nil {
			return nil, err
		}
		return nested, nil
	case sys.MetadataTypeInt64:
		return *(*int64)(e.MData), nil
	case sys.MetadataTypeUint32:
		return *(*uint32)(e.MData), nil
	}
	return nil, metadataErrorf("unknown metadata type %d", e.MType)
}
