package russimp

import (
	"strconv"
	"strings"

	"github.com/taigrr/russimp/sys"
)

// Scene is a fully owned copy of an imported asset. Every slice, string
// and nested struct is Go-allocated; the native scene the data came from
// is released before the Scene is returned, so a Scene stays valid for as
// long as the caller keeps it.
type Scene struct {
	Flags      uint32
	Name       string
	Root       *Node
	Meshes     []Mesh
	Materials  []Material
	Animations []Animation
	Textures   []Texture
	Lights     []Light
	Cameras    []Camera
	Skeletons  []Skeleton
	Metadata   *Metadata
}

// Property is one importer configuration entry applied to a single import,
// such as {"GLOBAL_SCALE_FACTOR", 0.01} or {"PP_SBP_REMOVE", 1}. Value
// must be a string, bool, integer or floating point value.
type Property struct {
	Name  string
	Value any
}

// LoadLibrary opens the native import library at the given path, or probes
// the platform default names when path is empty. Calling it is optional;
// the import functions probe the defaults on first use. It exists for
// hosts that ship the library in a non-standard location.
func LoadLibrary(path string) error {
	if err := sys.Load(path); err != nil {
		return importError(err.Error())
	}
	return nil
}

// FromFile imports the asset at path with the given post-processing steps.
func FromFile(path string, steps PostProcess) (*Scene, error) {
	if err := ensureLibrary(); err != nil {
		return nil, err
	}
	raw := sys.ImportFile(path, uint32(steps))
	if raw == nil {
		return nil, importError(sys.ErrorString())
	}
	return newScene(raw)
}

// FromFileWithProperties is FromFile with per-import property overrides.
func FromFileWithProperties(path string, steps PostProcess, props []Property) (*Scene, error) {
	if err := ensureLibrary(); err != nil {
		return nil, err
	}
	store := sys.NewPropertyStore()
	defer store.Release()
	if err := applyProperties(store, props); err != nil {
		return nil, err
	}
	raw := sys.ImportFileWithProperties(path, uint32(steps), store)
	if raw == nil {
		return nil, importError(sys.ErrorString())
	}
	return newScene(raw)
}

// FromBuffer imports an asset held in memory. The hint names the likely
// file format ("obj", "glb", ...) and may be empty for self-identifying
// formats, though some importers need it to even be considered.
func FromBuffer(buf []byte, steps PostProcess, hint string) (*Scene, error) {
	if len(buf) == 0 {
		return nil, importError("empty model buffer")
	}
	if err := ensureLibrary(); err != nil {
		return nil, err
	}
	raw := sys.ImportFileFromMemory(buf, uint32(steps), hint)
	if raw == nil {
		return nil, importError(sys.ErrorString())
	}
	return newScene(raw)
}

func ensureLibrary() error {
	if sys.Loaded() {
		return nil
	}
	return LoadLibrary("")
}

// newScene copies the whole native graph and releases it, whether or not
// the copy succeeds.
func newScene(raw *sys.AiScene) (*Scene, error) {
	defer sys.ReleaseImport(raw)

	s := &Scene{
		Flags:      raw.MFlags,
		Name:       raw.MName.String(),
		Meshes:     ExtractPtrSlice[Mesh](raw.MMeshes, raw.MNumMeshes),
		Animations: ExtractPtrSlice[Animation](raw.MAnimations, raw.MNumAnimations),
		Textures:   ExtractPtrSlice[Texture](raw.MTextures, raw.MNumTextures),
		Lights:     ExtractPtrSlice[Light](raw.MLights, raw.MNumLights),
		Cameras:    ExtractPtrSlice[Camera](raw.MCameras, raw.MNumCameras),
		Skeletons:  ExtractPtrSlice[Skeleton](raw.MSkeletons, raw.MNumSkeletons),
	}

	mats := refSlice(raw.MMaterials, raw.MNumMaterials)
	s.Materials = make([]Material, 0, len(mats))
	for _, m := range mats {
		mat, err := newMaterial(m)
		if err != nil {
			return nil, err
		}
		s.Materials = append(s.Materials, mat)
	}

	if raw.MMetaData != nil {
		md, err := newMetadata(raw.MMetaData)
		if err != nil {
			return nil, err
		}
		s.Metadata = md
	}

	if raw.MRootNode != nil {
		root, err := newNode(raw.MRootNode, nil)
		if err != nil {
			return nil, err
		}
		s.Root = root
	}
	return s, nil
}

func applyProperties(store *sys.PropertyStore, props []Property) error {
	for _, p := range props {
		switch v := p.Value.(type) {
		case string:
			store.SetString(p.Name, v)
		case bool:
			n := int32(0)
			if v {
				n = 1
			}
			store.SetInteger(p.Name, n)
		case int:
			store.SetInteger(p.Name, int32(v))
		case int32:
			store.SetInteger(p.Name, v)
		case int64:
			store.SetInteger(p.Name, int32(v))
		case float32:
			store.SetFloat(p.Name, v)
		case float64:
			store.SetFloat(p.Name, float32(v))
		default:
			return importErrorf("property %q has unsupported type %T", p.Name, p.Value)
		}
	}
	return nil
}

// EmbeddedTexture resolves a material texture path to the embedded texture
// it names. References of the form "*N" index the scene's texture list;
// anything else is matched against texture filenames. The error is
// ErrTextureNotFound when no texture matches.
func (s *Scene) EmbeddedTexture(path string) (*Texture, error) {
	if rest, ok := strings.CutPrefix(path, "*"); ok {
		i, err := strconv.Atoi(rest)
		if err != nil || i < 0 || i >= len(s.Textures) {
			return nil, ErrTextureNotFound
		}
		return &s.Textures[i], nil
	}
	for i := range s.Textures {
		if s.Textures[i].Filename == path {
			return &s.Textures[i], nil
		}
	}
	return nil, ErrTextureNotFound
}

// Complete reports whether the importer considered the scene fully
// populated. Incomplete scenes can still be useful, a material-only file
// for instance imports with no meshes.
func (s *Scene) Complete() bool {
	return s.Flags&sys.SceneFlagsIncomplete == 0
}
