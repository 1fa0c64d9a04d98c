package russimp

import (
	"testing"
	"unsafe"

	"github.com/taigrr/russimp/sys"
)

// TestTextureCompressed verifies the compressed split: height 0 means
// width counts bytes of container data, not texels.
func TestTextureCompressed(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	raw := sys.AiTexture{
		MWidth:    uint32(len(png)),
		MHeight:   0,
		PcData:    (*sys.AiTexel)(unsafe.Pointer(&png[0])),
		MFilename: sys.NewAiString("logo.png"),
	}
	copy(raw.AchFormatHint[:], "png")

	var tex Texture
	tex.FromRaw(&raw)

	if !tex.Compressed() {
		t.Errorf("height 0 should report compressed")
	}
	if tex.Filename != "logo.png" || tex.FormatHint != "png" {
		t.Errorf("header = %q, %q", tex.Filename, tex.FormatHint)
	}
	if len(tex.Data) != len(png) || tex.Data[1] != 'P' {
		t.Errorf("Data = %v", tex.Data)
	}
	if tex.Texels != nil {
		t.Errorf("compressed texture should have no texels")
	}
}

// TestTextureUncompressed verifies the texel path with width*height BGRA
// pixels.
func TestTextureUncompressed(t *testing.T) {
	texels := []sys.AiTexel{
		{B: 1, G: 2, R: 3, A: 4}, {B: 5, G: 6, R: 7, A: 8},
		{B: 9, G: 10, R: 11, A: 12}, {B: 13, G: 14, R: 15, A: 16},
	}
	raw := sys.AiTexture{
		MWidth:  2,
		MHeight: 2,
		PcData:  &texels[0],
	}

	var tex Texture
	tex.FromRaw(&raw)

	if tex.Compressed() {
		t.Errorf("height 2 should not report compressed")
	}
	if len(tex.Texels) != 4 {
		t.Fatalf("got %d texels, want 4", len(tex.Texels))
	}
	if tex.Texels[3] != (sys.AiTexel{B: 13, G: 14, R: 15, A: 16}) {
		t.Errorf("texel 3 = %+v", tex.Texels[3])
	}
	if tex.Data != nil {
		t.Errorf("uncompressed texture should have no container bytes")
	}
	if tex.FormatHint != "" {
		t.Errorf("FormatHint = %q, want empty", tex.FormatHint)
	}
}
