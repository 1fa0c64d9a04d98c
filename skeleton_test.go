package russimp

import (
	"testing"

	"github.com/taigrr/russimp/sys"
)

// TestSkeletonFromRaw verifies bone conversion resolves armature and node
// links to names instead of keeping native pointers.
func TestSkeletonFromRaw(t *testing.T) {
	armature := nativeNode("Armature")
	joint := nativeNode("hip")
	weights := []sys.AiVertexWeight{{MVertexId: 4, MWeight: 1}}

	rootBone := &sys.AiSkeletonBone{
		MParent:      -1,
		MArmature:    armature,
		MNode:        joint,
		MNumnWeights: 1,
		MWeights:     &weights[0],
		MOffsetMatrix: sys.AiMatrix4x4{
			A1: 1, B2: 1, C3: 1, D4: 1, C4: -2,
		},
		MLocalMatrix: sys.AiMatrix4x4{A1: 1, B2: 1, C3: 1, D4: 1},
	}
	childBone := &sys.AiSkeletonBone{MParent: 0}
	bones := []*sys.AiSkeletonBone{rootBone, childBone}

	raw := sys.AiSkeleton{
		MName:     sys.NewAiString("rig"),
		MNumBones: 2,
		MBones:    &bones[0],
	}

	var sk Skeleton
	sk.FromRaw(&raw)

	if sk.Name != "rig" {
		t.Errorf("Name = %q", sk.Name)
	}
	if len(sk.Bones) != 2 {
		t.Fatalf("got %d bones, want 2", len(sk.Bones))
	}

	root := sk.Bones[0]
	if root.Parent != -1 {
		t.Errorf("root parent = %d, want -1", root.Parent)
	}
	if root.Armature != "Armature" || root.Node != "hip" {
		t.Errorf("links = %q, %q", root.Armature, root.Node)
	}
	if len(root.Weights) != 1 || root.Weights[0] != (VertexWeight{VertexID: 4, Weight: 1}) {
		t.Errorf("weights = %v", root.Weights)
	}
	if root.OffsetMatrix[14] != -2 {
		t.Errorf("offset z translation = %v, want -2", root.OffsetMatrix[14])
	}

	child := sk.Bones[1]
	if child.Parent != 0 {
		t.Errorf("child parent = %d, want 0", child.Parent)
	}
	if child.Armature != "" || child.Node != "" {
		t.Errorf("unlinked bone should have empty names, got %q, %q", child.Armature, child.Node)
	}
	if child.Weights != nil {
		t.Errorf("unweighted bone should have nil weights")
	}
}
