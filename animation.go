package russimp

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp/sys"
)

// VectorKey is a timestamped position or scaling key. Time is in ticks.
type VectorKey struct {
	Time          float64
	Value         math32.Vector3
	Interpolation sys.AiAnimInterpolation
}

func (k *VectorKey) FromRaw(r *sys.AiVectorKey) {
	k.Time = r.MTime
	k.Value = r.MValue.Vec3()
	k.Interpolation = r.MInterpolation
}

// QuatKey is a timestamped rotation key.
type QuatKey struct {
	Time          float64
	Value         math32.Quat
	Interpolation sys.AiAnimInterpolation
}

func (k *QuatKey) FromRaw(r *sys.AiQuatKey) {
	k.Time = r.MTime
	k.Value = r.MValue.Quat()
	k.Interpolation = r.MInterpolation
}

// MeshKey binds a time to an index into the mesh's anim mesh list.
type MeshKey struct {
	Time  float64
	Value uint32
}

func (k *MeshKey) FromRaw(r *sys.AiMeshKey) {
	k.Time = r.MTime
	k.Value = r.MValue
}

// MeshMorphKey weights a set of morph targets at one point in time.
// Values and Weights run in lockstep.
type MeshMorphKey struct {
	Time    float64
	Values  []uint32
	Weights []float64
}

func (k *MeshMorphKey) FromRaw(r *sys.AiMeshMorphKey) {
	k.Time = r.MTime
	k.Values = CloneSlice(r.MValues, r.MNumValuesAndWeights)
	k.Weights = CloneSlice(r.MWeights, r.MNumValuesAndWeights)
}

// NodeAnim animates one named node. The three key tracks are independent;
// missing tracks are empty, and the node's own transformation applies
// while a track has no keys.
type NodeAnim struct {
	NodeName     string
	PositionKeys []VectorKey
	RotationKeys []QuatKey
	ScalingKeys  []VectorKey
	PreState     sys.AiAnimBehaviour
	PostState    sys.AiAnimBehaviour
}

func (a *NodeAnim) FromRaw(r *sys.AiNodeAnim) {
	a.NodeName = r.MNodeName.String()
	a.PositionKeys = extractSlice[VectorKey](r.MPositionKeys, r.MNumPositionKeys)
	a.RotationKeys = extractSlice[QuatKey](r.MRotationKeys, r.MNumRotationKeys)
	a.ScalingKeys = extractSlice[VectorKey](r.MScalingKeys, r.MNumScalingKeys)
	a.PreState = r.MPreState
	a.PostState = r.MPostState
}

// MeshAnim switches a mesh between its anim meshes over time.
type MeshAnim struct {
	Name string
	Keys []MeshKey
}

func (a *MeshAnim) FromRaw(r *sys.AiMeshAnim) {
	a.Name = r.MName.String()
	a.Keys = extractSlice[MeshKey](r.MKeys, r.MNumKeys)
}

// MeshMorphAnim animates morph target weights of a mesh.
type MeshMorphAnim struct {
	Name string
	Keys []MeshMorphKey
}

func (a *MeshMorphAnim) FromRaw(r *sys.AiMeshMorphAnim) {
	a.Name = r.MName.String()
	a.Keys = extractSlice[MeshMorphKey](r.MKeys, r.MNumKeys)
}

// Animation is one named animation clip. Duration is in ticks;
// TicksPerSecond is 0 when the source format does not specify a rate.
type Animation struct {
	Name              string
	Duration          float64
	TicksPerSecond    float64
	Channels          []NodeAnim
	MeshChannels      []MeshAnim
	MorphMeshChannels []MeshMorphAnim
}

func (a *Animation) FromRaw(r *sys.AiAnimation) {
	a.Name = r.MName.String()
	a.Duration = r.MDuration
	a.TicksPerSecond = r.MTicksPerSecond
	a.Channels = ExtractPtrSlice[NodeAnim](r.MChannels, r.MNumChannels)
	a.MeshChannels = ExtractPtrSlice[MeshAnim](r.MMeshChannels, r.MNumMeshChannels)
	a.MorphMeshChannels = ExtractPtrSlice[MeshMorphAnim](r.MMorphMeshChannels, r.MNumMorphMeshChannels)
}
