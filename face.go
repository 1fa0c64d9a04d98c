package russimp

import "github.com/taigrr/russimp/sys"

// Face is a single polygon of a mesh, stored as indices into the owning
// mesh's vertex streams. After triangulation every face has three indices.
type Face struct {
	Indices []uint32
}

// FromRaw copies the index buffer out of native memory.
func (f *Face) FromRaw(r *sys.AiFace) {
	f.Indices = CloneSlice(r.MIndices, r.MNumIndices)
}
