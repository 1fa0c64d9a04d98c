package sys

import (
	"strings"
	"testing"
)

func TestAiStringRoundTrip(t *testing.T) {
	tests := []string{"", "x", "hello.obj", "päth/to/mödel.glb"}
	for _, want := range tests {
		s := NewAiString(want)
		if got := s.String(); got != want {
			t.Errorf("NewAiString(%q).String() = %q", want, got)
		}
	}
}

// TestAiStringClampsLength verifies that a corrupt length field cannot
// make String read past the data array.
func TestAiStringClampsLength(t *testing.T) {
	var s AiString
	s.Length = MaxStringLen + 500
	for i := range s.Data {
		s.Data[i] = 'a'
	}
	if got := len(s.String()); got != MaxStringLen {
		t.Errorf("String() length = %d, want clamp to %d", got, MaxStringLen)
	}
}

func TestNewAiStringTruncates(t *testing.T) {
	long := strings.Repeat("y", MaxStringLen+100)
	s := NewAiString(long)
	if s.Length != MaxStringLen-1 {
		t.Errorf("Length = %d, want %d", s.Length, MaxStringLen-1)
	}
	if s.Data[MaxStringLen-1] != 0 {
		t.Error("truncated string is not NUL terminated")
	}
	if got := s.String(); got != long[:MaxStringLen-1] {
		t.Error("truncated content mismatch")
	}
}

func TestCString(t *testing.T) {
	buf := []byte("native log line\x00trailing junk")
	if got := cstring(&buf[0]); got != "native log line" {
		t.Errorf("cstring = %q", got)
	}

	empty := []byte{0}
	if got := cstring(&empty[0]); got != "" {
		t.Errorf("cstring on empty = %q", got)
	}

	if got := cstring(nil); got != "" {
		t.Errorf("cstring(nil) = %q", got)
	}
}
