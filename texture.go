package russimp

import (
	"bytes"
	"unsafe"

	"github.com/taigrr/russimp/sys"
)

// Texture is an embedded texture. Exactly one of Data and Texels is
// populated: compressed textures (Height == 0) carry their container bytes
// in Data with FormatHint naming the format ("png", "jpg", ...), while
// uncompressed ones carry Width*Height BGRA texels.
type Texture struct {
	Filename   string
	Width      uint32
	Height     uint32
	FormatHint string
	Data       []byte
	Texels     []sys.AiTexel
}

func (t *Texture) FromRaw(r *sys.AiTexture) {
	t.Filename = r.MFilename.String()
	t.Width = r.MWidth
	t.Height = r.MHeight
	hint := r.AchFormatHint[:]
	if i := bytes.IndexByte(hint, 0); i >= 0 {
		hint = hint[:i]
	}
	t.FormatHint = string(hint)
	if r.MHeight == 0 {
		// Compressed: MWidth is the byte count of the container data.
		t.Data = CloneSlice((*byte)(unsafe.Pointer(r.PcData)), r.MWidth)
		return
	}
	t.Texels = CloneSlice(r.PcData, r.MWidth*r.MHeight)
}

// Compressed reports whether the texture carries container-format bytes
// rather than raw texels.
func (t *Texture) Compressed() bool {
	return t.Height == 0
}
