// Package sys mirrors the in-memory struct layouts of the Assimp C API and
// loads the native library at runtime. Field order, field widths, and the
// fixed array sizes below are a binary contract with the C headers; do not
// reorder or resize anything without checking the corresponding header.
//
// Everything in this package points into memory owned by the native
// library. Values read through these structs are only valid until the scene
// they belong to is released.
package sys

import "unsafe"

// Fixed capacities from the C headers.
const (
	// MaxStringLen is the capacity of the AiString data buffer (MAXLEN).
	MaxStringLen = 1024
	// MaxColorSets is the number of vertex color channel slots per mesh.
	MaxColorSets = 8
	// MaxTextureCoords is the number of UV channel slots per mesh.
	MaxTextureCoords = 8
	// HintMaxTextureLen is the capacity of the texture format hint buffer.
	HintMaxTextureLen = 9
)

// AiString is a length-prefixed string with a fixed backing buffer. The
// buffer holds Length bytes of UTF-8 followed by a NUL terminator.
type AiString struct {
	Length uint32
	Data   [MaxStringLen]byte
}

// AiVector2D is a 2-component float vector.
type AiVector2D struct {
	X, Y float32
}

// AiVector3D is a 3-component float vector.
type AiVector3D struct {
	X, Y, Z float32
}

// AiColor3D is an RGB color triple.
type AiColor3D struct {
	R, G, B float32
}

// AiColor4D is an RGBA color quadruple.
type AiColor4D struct {
	R, G, B, A float32
}

// AiQuaternion is a rotation quaternion. The native field order puts the
// scalar part first.
type AiQuaternion struct {
	W, X, Y, Z float32
}

// AiMatrix4x4 is a 4x4 transform stored row-major: fields A1..A4 are the
// first row, B1..B4 the second, and so on.
type AiMatrix4x4 struct {
	A1, A2, A3, A4 float32
	B1, B2, B3, B4 float32
	C1, C2, C3, C4 float32
	D1, D2, D3, D4 float32
}

// AiAABB is an axis-aligned bounding box.
type AiAABB struct {
	MMin AiVector3D
	MMax AiVector3D
}

// AiTexel is one uncompressed texture pixel, stored BGRA.
type AiTexel struct {
	B, G, R, A uint8
}

// AiTexture is an embedded texture. MHeight == 0 means PcData holds MWidth
// bytes of compressed data in the container format named by AchFormatHint;
// otherwise PcData holds MWidth*MHeight texels.
type AiTexture struct {
	MWidth        uint32
	MHeight       uint32
	AchFormatHint [HintMaxTextureLen]byte
	PcData        *AiTexel
	MFilename     AiString
}

// AiFace is one polygon: an index array into the owning mesh's vertex
// streams.
type AiFace struct {
	MNumIndices uint32
	MIndices    *uint32
}

// AiVertexWeight binds a single vertex to a bone with a weight.
type AiVertexWeight struct {
	MVertexId uint32
	MWeight   float32
}

// AiBone is a single bone of a mesh, with its per-vertex influence weights
// and the offset matrix transforming from mesh space to bone space.
type AiBone struct {
	MName         AiString
	MNumWeights   uint32
	MArmature     *AiNode
	MNode         *AiNode
	MWeights      *AiVertexWeight
	MOffsetMatrix AiMatrix4x4
}

// AiAnimMesh is an attachment to a mesh carrying replacement vertex data
// for vertex-based animation.
type AiAnimMesh struct {
	MName          AiString
	MVertices      *AiVector3D
	MNormals       *AiVector3D
	MTangents      *AiVector3D
	MBitangents    *AiVector3D
	MColors        [MaxColorSets]*AiColor4D
	MTextureCoords [MaxTextureCoords]*AiVector3D
	MNumVertices   uint32
	MWeight        float32
}

// Primitive type bits for AiMesh.MPrimitiveTypes.
const (
	PrimitiveTypePoint            = 0x1
	PrimitiveTypeLine             = 0x2
	PrimitiveTypeTriangle         = 0x4
	PrimitiveTypePolygon          = 0x8
	PrimitiveTypeNGONEncodingFlag = 0x10
)

// AiMorphingMethod selects how anim meshes are combined.
type AiMorphingMethod uint32

const (
	MorphingMethodUnknown AiMorphingMethod = iota
	MorphingMethodVertexBlend
	MorphingMethodMorphNormalized
	MorphingMethodMorphRelative
)

// AiMesh is a single geometry batch with one material. The color and
// texture coordinate channel arrays have a fixed number of slots; absent
// channels are nil and present ones share MNumVertices as their length.
type AiMesh struct {
	MPrimitiveTypes     uint32
	MNumVertices        uint32
	MNumFaces           uint32
	MVertices           *AiVector3D
	MNormals            *AiVector3D
	MTangents           *AiVector3D
	MBitangents         *AiVector3D
	MColors             [MaxColorSets]*AiColor4D
	MTextureCoords      [MaxTextureCoords]*AiVector3D
	MNumUVComponents    [MaxTextureCoords]uint32
	MFaces              *AiFace
	MNumBones           uint32
	MBones              **AiBone
	MMaterialIndex      uint32
	MName               AiString
	MNumAnimMeshes      uint32
	MAnimMeshes         **AiAnimMesh
	MMethod             AiMorphingMethod
	MAABB               AiAABB
	MTextureCoordsNames **AiString
}

// AiNode is one node of the scene hierarchy.
type AiNode struct {
	MName           AiString
	MTransformation AiMatrix4x4
	MParent         *AiNode
	MNumChildren    uint32
	MChildren       **AiNode
	MNumMeshes      uint32
	MMeshes         *uint32
	MMetaData       *AiMetadata
}

// AiMetadataType tags the payload of a metadata entry.
type AiMetadataType uint32

const (
	MetadataTypeBool AiMetadataType = iota
	MetadataTypeInt32
	MetadataTypeUint64
	MetadataTypeFloat
	MetadataTypeDouble
	MetadataTypeAiString
	MetadataTypeAiVector3D
	MetadataTypeAiMetadata
	MetadataTypeInt64
	MetadataTypeUint32
	MetadataTypeMax
)

// AiMetadataEntry is one tagged metadata value. MData points at a payload
// whose layout is determined by MType.
type AiMetadataEntry struct {
	MType AiMetadataType
	MData unsafe.Pointer
}

// AiMetadata is a table of key/value pairs attached to nodes and scenes.
// MKeys and MValues are parallel arrays of MNumProperties entries.
type AiMetadata struct {
	MNumProperties uint32
	MKeys          *AiString
	MValues        *AiMetadataEntry
}

// AiPropertyTypeInfo tags the payload of a material property.
type AiPropertyTypeInfo uint32

const (
	PropertyTypeFloat   AiPropertyTypeInfo = 0x1
	PropertyTypeDouble  AiPropertyTypeInfo = 0x2
	PropertyTypeString  AiPropertyTypeInfo = 0x3
	PropertyTypeInteger AiPropertyTypeInfo = 0x4
	PropertyTypeBuffer  AiPropertyTypeInfo = 0x5
)

// AiTextureType distinguishes the texture stacks of a material.
type AiTextureType uint32

const (
	TextureTypeNone AiTextureType = iota
	TextureTypeDiffuse
	TextureTypeSpecular
	TextureTypeAmbient
	TextureTypeEmissive
	TextureTypeHeight
	TextureTypeNormals
	TextureTypeShininess
	TextureTypeOpacity
	TextureTypeDisplacement
	TextureTypeLightmap
	TextureTypeReflection
	TextureTypeBaseColor
	TextureTypeNormalCamera
	TextureTypeEmissionColor
	TextureTypeMetalness
	TextureTypeDiffuseRoughness
	TextureTypeAmbientOcclusion
	TextureTypeUnknown
	TextureTypeSheen
	TextureTypeClearcoat
	TextureTypeTransmission
)

// MatKeyTextureBase is the property key under which texture paths are
// stored; the property's semantic field selects the texture stack.
const MatKeyTextureBase = "$tex.file"

// MatKeyName is the property key of the material display name.
const MatKeyName = "?mat.name"

// AiMaterialProperty is one key/value pair of a material. MData holds
// MDataLength bytes interpreted according to MType.
type AiMaterialProperty struct {
	MKey        AiString
	MSemantic   uint32
	MIndex      uint32
	MDataLength uint32
	MType       AiPropertyTypeInfo
	MData       *byte
}

// AiMaterial is a bag of typed properties.
type AiMaterial struct {
	MProperties    **AiMaterialProperty
	MNumProperties uint32
	MNumAllocated  uint32
}

// AiLightSourceType distinguishes light kinds.
type AiLightSourceType uint32

const (
	LightSourceUndefined AiLightSourceType = iota
	LightSourceDirectional
	LightSourcePoint
	LightSourceSpot
	LightSourceAmbient
	LightSourceArea
)

// AiLight is a light source attached to a named node.
type AiLight struct {
	MName                 AiString
	MType                 AiLightSourceType
	MPosition             AiVector3D
	MDirection            AiVector3D
	MUp                   AiVector3D
	MAttenuationConstant  float32
	MAttenuationLinear    float32
	MAttenuationQuadratic float32
	MColorDiffuse         AiColor3D
	MColorSpecular        AiColor3D
	MColorAmbient         AiColor3D
	MAngleInnerCone       float32
	MAngleOuterCone       float32
	MSize                 AiVector2D
}

// AiCamera is a camera attached to a named node.
type AiCamera struct {
	MName              AiString
	MPosition          AiVector3D
	MUp                AiVector3D
	MLookAt            AiVector3D
	MHorizontalFOV     float32
	MClipPlaneNear     float32
	MClipPlaneFar      float32
	MAspect            float32
	MOrthographicWidth float32
}

// AiAnimInterpolation selects how consecutive animation keys are blended.
type AiAnimInterpolation uint32

const (
	AnimInterpolationStep AiAnimInterpolation = iota
	AnimInterpolationLinear
	AnimInterpolationSphericalLinear
	AnimInterpolationCubicSpline
)

// AiVectorKey is a timestamped vector animation key.
type AiVectorKey struct {
	MTime          float64
	MValue         AiVector3D
	MInterpolation AiAnimInterpolation
}

// AiQuatKey is a timestamped rotation animation key.
type AiQuatKey struct {
	MTime          float64
	MValue         AiQuaternion
	MInterpolation AiAnimInterpolation
}

// AiMeshKey binds a time to an anim mesh index.
type AiMeshKey struct {
	MTime  float64
	MValue uint32
}

// AiMeshMorphKey is a timestamped set of morph target weights.
type AiMeshMorphKey struct {
	MTime                float64
	MValues              *uint32
	MWeights             *float64
	MNumValuesAndWeights uint32
}

// AiAnimBehaviour defines what an animation channel does outside its
// defined time range.
type AiAnimBehaviour uint32

const (
	AnimBehaviourDefault AiAnimBehaviour = iota
	AnimBehaviourConstant
	AnimBehaviourLinear
	AnimBehaviourRepeat
)

// AiNodeAnim animates a single named node with separate position, rotation
// and scaling key tracks.
type AiNodeAnim struct {
	MNodeName        AiString
	MNumPositionKeys uint32
	MPositionKeys    *AiVectorKey
	MNumRotationKeys uint32
	MRotationKeys    *AiQuatKey
	MNumScalingKeys  uint32
	MScalingKeys     *AiVectorKey
	MPreState        AiAnimBehaviour
	MPostState       AiAnimBehaviour
}

// AiMeshAnim animates a mesh by switching between anim meshes over time.
type AiMeshAnim struct {
	MName    AiString
	MNumKeys uint32
	MKeys    *AiMeshKey
}

// AiMeshMorphAnim animates morph target weights of a mesh.
type AiMeshMorphAnim struct {
	MName    AiString
	MNumKeys uint32
	MKeys    *AiMeshMorphKey
}

// AiAnimation is one named animation with node, mesh and morph channels.
type AiAnimation struct {
	MName                 AiString
	MDuration             float64
	MTicksPerSecond       float64
	MNumChannels          uint32
	MChannels             **AiNodeAnim
	MNumMeshChannels      uint32
	MMeshChannels         **AiMeshAnim
	MNumMorphMeshChannels uint32
	MMorphMeshChannels    **AiMeshMorphAnim
}

// AiSkeletonBone is one bone of a standalone skeleton.
type AiSkeletonBone struct {
	MParent       int32
	MArmature     *AiNode
	MNode         *AiNode
	MNumnWeights  uint32
	MMeshId       *AiMesh
	MWeights      *AiVertexWeight
	MOffsetMatrix AiMatrix4x4
	MLocalMatrix  AiMatrix4x4
}

// AiSkeleton is a named bone hierarchy independent of any mesh.
type AiSkeleton struct {
	MName     AiString
	MNumBones uint32
	MBones    **AiSkeletonBone
}

// Scene state bits for AiScene.MFlags.
const (
	SceneFlagsIncomplete        = 0x1
	SceneFlagsValidated         = 0x2
	SceneFlagsValidationWarning = 0x4
	SceneFlagsNonVerboseFormat  = 0x8
	SceneFlagsTerrain           = 0x10
	SceneFlagsAllowShared       = 0x20
)

// AiScene is the root of an imported asset. Every array hangs off a
// count/pointer pair; the node hierarchy starts at MRootNode.
type AiScene struct {
	MFlags         uint32
	MRootNode      *AiNode
	MNumMeshes     uint32
	MMeshes        **AiMesh
	MNumMaterials  uint32
	MMaterials     **AiMaterial
	MNumAnimations uint32
	MAnimations    **AiAnimation
	MNumTextures   uint32
	MTextures      **AiTexture
	MNumLights     uint32
	MLights        **AiLight
	MNumCameras    uint32
	MCameras       **AiCamera
	MMetaData      *AiMetadata
	MName          AiString
	MNumSkeletons  uint32
	MSkeletons     **AiSkeleton
	MPrivate       *byte
}
