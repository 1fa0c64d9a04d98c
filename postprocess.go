package russimp

import "strings"

// PostProcess is a bitmask of processing steps applied to a scene during
// import. Combine steps with bitwise or.
type PostProcess uint32

const (
	CalcTangentSpace PostProcess = 1 << iota
	JoinIdenticalVertices
	MakeLeftHanded
	Triangulate
	RemoveComponent
	GenNormals
	GenSmoothNormals
	SplitLargeMeshes
	PreTransformVertices
	LimitBoneWeights
	ValidateDataStructure
	ImproveCacheLocality
	RemoveRedundantMaterials
	FixInfacingNormals
	PopulateArmatureData
	SortByPrimitiveType
	FindDegenerates
	FindInvalidData
	GenUVCoords
	TransformUVCoords
	FindInstances
	OptimizeMeshes
	OptimizeGraph
	FlipUVs
	FlipWindingOrder
	SplitByBoneCount
	Debone
	GlobalScale
	EmbedTextures
	ForceGenNormals
	DropNormals
	GenBoundingBoxes
)

// Step combinations matching what the native library ships.
const (
	// ConvertToLeftHanded flips the scene into the coordinate and winding
	// conventions of DirectX-style consumers.
	ConvertToLeftHanded = MakeLeftHanded | FlipUVs | FlipWindingOrder

	// TargetRealtimeFast is the cheapest preset producing renderable data.
	TargetRealtimeFast = CalcTangentSpace |
		GenNormals |
		JoinIdenticalVertices |
		Triangulate |
		GenUVCoords |
		SortByPrimitiveType

	// TargetRealtimeQuality trades import time for cleaner geometry.
	TargetRealtimeQuality = CalcTangentSpace |
		GenSmoothNormals |
		JoinIdenticalVertices |
		ImproveCacheLocality |
		LimitBoneWeights |
		RemoveRedundantMaterials |
		SplitLargeMeshes |
		Triangulate |
		GenUVCoords |
		SortByPrimitiveType |
		FindDegenerates |
		FindInvalidData

	// TargetRealtimeMaxQuality runs every step that can improve the scene.
	TargetRealtimeMaxQuality = TargetRealtimeQuality |
		FindInstances |
		ValidateDataStructure |
		OptimizeMeshes
)

var postProcessNames = []struct {
	bit  PostProcess
	name string
}{
	{CalcTangentSpace, "CalcTangentSpace"},
	{JoinIdenticalVertices, "JoinIdenticalVertices"},
	{MakeLeftHanded, "MakeLeftHanded"},
	{Triangulate, "Triangulate"},
	{RemoveComponent, "RemoveComponent"},
	{GenNormals, "GenNormals"},
	{GenSmoothNormals, "GenSmoothNormals"},
	{SplitLargeMeshes, "SplitLargeMeshes"},
	{PreTransformVertices, "PreTransformVertices"},
	{LimitBoneWeights, "LimitBoneWeights"},
	{ValidateDataStructure, "ValidateDataStructure"},
	{ImproveCacheLocality, "ImproveCacheLocality"},
	{RemoveRedundantMaterials, "RemoveRedundantMaterials"},
	{FixInfacingNormals, "FixInfacingNormals"},
	{PopulateArmatureData, "PopulateArmatureData"},
	{SortByPrimitiveType, "SortByPrimitiveType"},
	{FindDegenerates, "FindDegenerates"},
	{FindInvalidData, "FindInvalidData"},
	{GenUVCoords, "GenUVCoords"},
	{TransformUVCoords, "TransformUVCoords"},
	{FindInstances, "FindInstances"},
	{OptimizeMeshes, "OptimizeMeshes"},
	{OptimizeGraph, "OptimizeGraph"},
	{FlipUVs, "FlipUVs"},
	{FlipWindingOrder, "FlipWindingOrder"},
	{SplitByBoneCount, "SplitByBoneCount"},
	{Debone, "Debone"},
	{GlobalScale, "GlobalScale"},
	{EmbedTextures, "EmbedTextures"},
	{ForceGenNormals, "ForceGenNormals"},
	{DropNormals, "DropNormals"},
	{GenBoundingBoxes, "GenBoundingBoxes"},
}

// ParseSteps folds a list of step names into a bitmask. Names match the
// constant names case-insensitively; the preset combinations are accepted
// by name too.
func ParseSteps(names []string) (PostProcess, error) {
	combos := map[string]PostProcess{
		"converttolefthanded":      ConvertToLeftHanded,
		"targetrealtimefast":       TargetRealtimeFast,
		"targetrealtimequality":    TargetRealtimeQuality,
		"targetrealtimemaxquality": TargetRealtimeMaxQuality,
	}
	var p PostProcess
next:
	for _, name := range names {
		if c, ok := combos[strings.ToLower(name)]; ok {
			p |= c
			continue
		}
		for _, e := range postProcessNames {
			if strings.EqualFold(e.name, name) {
				p |= e.bit
				continue next
			}
		}
		return 0, importErrorf("unknown post-processing step %q", name)
	}
	return p, nil
}

// String lists the set steps separated by pipes, "0" when none are set.
func (p PostProcess) String() string {
	if p == 0 {
		return "0"
	}
	var b strings.Builder
	for _, e := range postProcessNames {
		if p&e.bit == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(e.name)
	}
	return b.String()
}
