package russimp

import (
	"cogentcore.org/core/math32"

	"github.com/taigrr/russimp/sys"
)

// Mesh is one geometry batch bound to a single material.
//
// The TextureCoords and Colors channel arrays keep the native format's
// fixed eight slots. A nil slot means the channel is absent; a present
// slot always has exactly as many elements as Vertices. UVComponents
// records, per texture channel, how many of the three stored components
// are meaningful.
type Mesh struct {
	Name           string
	PrimitiveTypes uint32
	Vertices       []math32.Vector3
	Normals        []math32.Vector3
	Tangents       []math32.Vector3
	Bitangents     []math32.Vector3
	TextureCoords  [sys.MaxTextureCoords][]math32.Vector3
	UVComponents   [sys.MaxTextureCoords]uint32
	Colors         [sys.MaxColorSets][]Color4D
	Faces          []Face
	Bones          []Bone
	MaterialIndex  uint32
	AnimMeshes     []AnimMesh
	Method         sys.AiMorphingMethod
	AABB           AABB
}

// FromRaw converts the mesh and everything hanging off it.
func (m *Mesh) FromRaw(r *sys.AiMesh) {
	m.Name = r.MName.String()
	m.PrimitiveTypes = r.MPrimitiveTypes
	m.Vertices = convertSlice(r.MVertices, r.MNumVertices, (*sys.AiVector3D).Vec3)
	m.Normals = convertSlice(r.MNormals, r.MNumVertices, (*sys.AiVector3D).Vec3)
	m.Tangents = convertSlice(r.MTangents, r.MNumVertices, (*sys.AiVector3D).Vec3)
	m.Bitangents = convertSlice(r.MBitangents, r.MNumVertices, (*sys.AiVector3D).Vec3)
	m.TextureCoords = convertChannels(r.MTextureCoords, r.MNumVertices, (*sys.AiVector3D).Vec3)
	m.UVComponents = r.MNumUVComponents
	m.Colors = extractChannels[Color4D](r.MColors, r.MNumVertices)
	m.Faces = extractSlice[Face](r.MFaces, r.MNumFaces)
	m.Bones = ExtractPtrSlice[Bone](r.MBones, r.MNumBones)
	m.MaterialIndex = r.MMaterialIndex
	m.AnimMeshes = ExtractPtrSlice[AnimMesh](r.MAnimMeshes, r.MNumAnimMeshes)
	m.Method = r.MMethod
	m.AABB.FromRaw(&r.MAABB)
}

// AnimMesh is a replacement vertex buffer used for vertex-based animation.
// Per-stream presence mirrors the parent mesh.
type AnimMesh struct {
	Name          string
	Vertices      []math32.Vector3
	Normals       []math32.Vector3
	Tangents      []math32.Vector3
	Bitangents    []math32.Vector3
	TextureCoords [sys.MaxTextureCoords][]math32.Vector3
	Colors        [sys.MaxColorSets][]Color4D
	Weight        float32
}

// FromRaw converts the anim mesh streams.
func (am *AnimMesh) FromRaw(r *sys.AiAnimMesh) {
	am.Name = r.MName.String()
	am.Vertices = convertSlice(r.MVertices, r.MNumVertices, (*sys.AiVector3D).Vec3)
	am.Normals = convertSlice(r.MNormals, r.MNumVertices, (*sys.AiVector3D).Vec3)
	am.Tangents = convertSlice(r.MTangents, r.MNumVertices, (*sys.AiVector3D).Vec3)
	am.Bitangents = convertSlice(r.MBitangents, r.MNumVertices, (*sys.AiVector3D).Vec3)
	am.TextureCoords = convertChannels(r.MTextureCoords, r.MNumVertices, (*sys.AiVector3D).Vec3)
	am.Colors = extractChannels[Color4D](r.MColors, r.MNumVertices)
	am.Weight = r.MWeight
}
