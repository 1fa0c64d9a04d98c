package russimp

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp/sys"
)

// VertexWeight is the influence of a bone on a single vertex.
type VertexWeight struct {
	VertexID uint32
	Weight   float32
}

// FromRaw copies the weight from its native counterpart.
func (w *VertexWeight) FromRaw(r *sys.AiVertexWeight) {
	w.VertexID = r.MVertexId
	w.Weight = r.MWeight
}

// Bone is one bone of a skinned mesh. OffsetMatrix transforms from mesh
// space into the bone's bind-pose space.
type Bone struct {
	Name         string
	Weights      []VertexWeight
	OffsetMatrix math32.Matrix4
}

// FromRaw converts the bone and its weight list.
func (b *Bone) FromRaw(r *sys.AiBone) {
	b.Name = r.MName.String()
	b.Weights = extractSlice[VertexWeight](r.MWeights, r.MNumWeights)
	b.OffsetMatrix = r.MOffsetMatrix.Mat4()
}
