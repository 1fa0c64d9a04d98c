package russimp

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp/sys"
)

// SkeletonBone is one bone of a standalone skeleton. Parent indexes the
// bone's parent within the owning skeleton, -1 for a root bone. Armature
// and Node carry the names of the linked hierarchy nodes; they are empty
// when the importer did not populate armature data.
type SkeletonBone struct {
	Parent       int32
	Armature     string
	Node         string
	Weights      []VertexWeight
	OffsetMatrix math32.Matrix4
	LocalMatrix  math32.Matrix4
}

func (b *SkeletonBone) FromRaw(r *sys.AiSkeletonBone) {
	b.Parent = r.MParent
	if r.MArmature != nil {
		b.Armature = r.MArmature.MName.String()
	}
	if r.MNode != nil {
		b.Node = r.MNode.MName.String()
	}
	b.Weights = extractSlice[VertexWeight](r.MWeights, r.MNumnWeights)
	b.OffsetMatrix = r.MOffsetMatrix.Mat4()
	b.LocalMatrix = r.MLocalMatrix.Mat4()
}

// Skeleton is a named bone hierarchy that exists independently of any
// mesh, as produced by formats with detached rigs.
type Skeleton struct {
	Name  string
	Bones []SkeletonBone
}

func (s *Skeleton) FromRaw(r *sys.AiSkeleton) {
	s.Name = r.MName.String()
	s.Bones = ExtractPtrSlice[SkeletonBone](r.MBones, r.MNumBones)
}
