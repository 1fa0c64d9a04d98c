package sys

import "unsafe"

// String copies the string contents out of the fixed buffer. A length
// beyond the buffer capacity is clamped so a corrupt native value cannot
// read past the end.
func (s *AiString) String() string {
	n := min(s.Length, MaxStringLen)
	return string(s.Data[:n])
}

// NewAiString builds an AiString from a Go string, truncating it to the
// buffer capacity minus the NUL terminator.
func NewAiString(v string) AiString {
	var s AiString
	n := min(len(v), MaxStringLen-1)
	copy(s.Data[:n], v[:n])
	s.Length = uint32(n)
	return s
}

// cstring copies a NUL-terminated C string into a Go string.
func cstring(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
