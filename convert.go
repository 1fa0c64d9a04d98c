package russimp

import "unsafe"

// The functions in this file reinterpret native pointer/length pairs as Go
// slices and copy their contents into owned values. A nil pointer or a
// zero length, in any combination, yields an empty result; the native
// importer emits both shapes for absent data and neither is an error.
//
// The length itself is trusted. Nothing here can verify that n elements
// really live behind ptr; that contract is the native producer's to keep,
// and a wrong length causes undefined behavior. This file is the only
// place in the package where that trust is taken, so every raw array in
// the scene flows through one of these routines.

// RawValue constrains a pointer to an owned type T that can populate
// itself from the native struct R. It is the constructor direction of the
// two conversion capabilities; the opposite direction, producing types
// owned by the math library, lives as methods on the sys structs and is
// passed into convertSlice and convertChannels as a method expression.
type RawValue[R, T any] interface {
	*T
	FromRaw(*R)
}

// extractSlice converts a native value array into owned elements.
func extractSlice[T, R any, PT RawValue[R, T]](ptr *R, n uint32) []T {
	if ptr == nil || n == 0 {
		return nil
	}
	raws := unsafe.Slice(ptr, n)
	out := make([]T, n)
	for i := range raws {
		PT(&out[i]).FromRaw(&raws[i])
	}
	return out
}

// convertSlice converts a native value array through conv. It serves the
// element types that belong to the math library and therefore cannot
// carry a FromRaw method of their own.
func convertSlice[R, T any](ptr *R, n uint32, conv func(*R) T) []T {
	if ptr == nil || n == 0 {
		return nil
	}
	raws := unsafe.Slice(ptr, n)
	out := make([]T, n)
	for i := range raws {
		out[i] = conv(&raws[i])
	}
	return out
}

// ExtractPtrSlice converts a native array of struct pointers by
// dereferencing and converting each element. The importer never stores nil
// entries in these arrays, and this routine does not mask one: a nil entry
// is a broken scene and panics rather than silently shifting indices.
func ExtractPtrSlice[T, R any, PT RawValue[R, T]](ptr **R, n uint32) []T {
	if ptr == nil || n == 0 {
		return nil
	}
	raws := unsafe.Slice(ptr, n)
	out := make([]T, n)
	for i, r := range raws {
		PT(&out[i]).FromRaw(r)
	}
	return out
}

// extractChannels converts the fixed 8-slot channel arrays used for
// per-vertex attributes. Slots are independent: a nil slot stays nil, a
// present slot is converted using the one shared length (the native format
// has no per-channel length). A present slot with length zero yields an
// empty non-nil slice, so presence survives extraction.
func extractChannels[T, R any, PT RawValue[R, T]](channels [8]*R, n uint32) [8][]T {
	var out [8][]T
	for i, head := range channels {
		if head == nil {
			continue
		}
		raws := unsafe.Slice(head, n)
		vals := make([]T, n)
		for j := range raws {
			PT(&vals[j]).FromRaw(&raws[j])
		}
		out[i] = vals
	}
	return out
}

// convertChannels is extractChannels for math-library element types,
// converting through conv.
func convertChannels[R, T any](channels [8]*R, n uint32, conv func(*R) T) [8][]T {
	var out [8][]T
	for i, head := range channels {
		if head == nil {
			continue
		}
		raws := unsafe.Slice(head, n)
		vals := make([]T, n)
		for j := range raws {
			vals[j] = conv(&raws[j])
		}
		out[i] = vals
	}
	return out
}

// CloneSlice copies a native array verbatim, for elements whose native
// representation is kept as-is (index buffers, texels, raw byte payloads).
func CloneSlice[R any](ptr *R, n uint32) []R {
	if ptr == nil || n == 0 {
		return nil
	}
	out := make([]R, n)
	copy(out, unsafe.Slice(ptr, n))
	return out
}

// refSlice views a native pointer array without converting it, for the
// builders whose per-element conversion can fail. The result aliases
// native memory and must not be retained past the scene release.
func refSlice[R any](ptr **R, n uint32) []*R {
	if ptr == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(ptr, n)
}
