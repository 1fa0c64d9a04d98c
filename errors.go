package russimp

import "fmt"

// ErrorKind identifies one of the closed set of failure categories this
// package produces. There are exactly five; nothing else is ever returned.
type ErrorKind int

const (
	// ErrorImport is a failure reported by the native importer itself.
	ErrorImport ErrorKind = iota
	// ErrorMetadata is a metadata table that could not be decoded.
	ErrorMetadata
	// ErrorMaterial is a malformed material property payload.
	ErrorMaterial
	// ErrorPrimitive is a low-level value failure, typically a native
	// string that is not valid UTF-8.
	ErrorPrimitive
	// ErrorTextureNotFound is a texture reference that resolves to no
	// embedded texture.
	ErrorTextureNotFound
)

// Error is the error type returned by every fallible operation in this
// package. It carries a category and a human-readable message and nothing
// else.
type Error struct {
	Kind    ErrorKind
	Message string
}

// ErrTextureNotFound is returned when an embedded texture reference does
// not resolve. Compare with errors.Is.
var ErrTextureNotFound = &Error{Kind: ErrorTextureNotFound}

// Error renders the message verbatim for ErrorImport. Every other kind
// renders a fixed placeholder instead of its message; consumers depend on
// that exact behavior, so it is kept even though the message is present on
// the value.
func (e *Error) Error() string {
	if e.Kind == ErrorImport {
		return e.Message
	}
	return "unknown error"
}

// Is matches any *Error of the same kind, so sentinel comparisons like
// errors.Is(err, ErrTextureNotFound) work regardless of the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// PrimitiveError lifts a string-decoding failure into the ErrorPrimitive
// category, keeping the underlying message.
func PrimitiveError(err error) *Error {
	return &Error{Kind: ErrorPrimitive, Message: err.Error()}
}

func importError(msg string) *Error {
	return &Error{Kind: ErrorImport, Message: msg}
}

func importErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrorImport, Message: fmt.Sprintf(format, args...)}
}

func metadataErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrorMetadata, Message: fmt.Sprintf(format, args...)}
}

func materialErrorf(format string, args ...any) *Error {
	return &Error{Kind: ErrorMaterial, Message: fmt.Sprintf(format, args...)}
}
