package russimp

import (
	"errors"
	"fmt"
	"testing"
)

// TestErrorRendering verifies the display split across kinds: import
// failures render their message verbatim, every other kind renders the
// fixed placeholder regardless of the message it carries.
func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"import", &Error{Kind: ErrorImport, Message: "bad file"}, "bad file"},
		{"import empty", &Error{Kind: ErrorImport}, ""},
		{"metadata", &Error{Kind: ErrorMetadata, Message: "bad tag"}, "unknown error"},
		{"material", &Error{Kind: ErrorMaterial, Message: "short payload"}, "unknown error"},
		{"primitive", &Error{Kind: ErrorPrimitive, Message: "bad utf-8"}, "unknown error"},
		{"texture not found", &Error{Kind: ErrorTextureNotFound, Message: "*7"}, "unknown error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestErrorMessageRetained verifies the message stays readable on the
// value even for kinds that do not render it.
func TestErrorMessageRetained(t *testing.T) {
	err := materialErrorf("property %q: float payload of %d bytes", "$clr.diffuse", 7)
	if err.Error() != "unknown error" {
		t.Errorf("Error() = %q, want placeholder", err.Error())
	}
	want := `property "$clr.diffuse": float payload of 7 bytes`
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}

// TestErrorIs verifies kind-based matching with errors.Is.
func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("loading texture: %w", &Error{Kind: ErrorTextureNotFound, Message: "*3"})
	if !errors.Is(err, ErrTextureNotFound) {
		t.Errorf("wrapped texture error should match ErrTextureNotFound")
	}
	if errors.Is(importError("fail"), ErrTextureNotFound) {
		t.Errorf("import error should not match ErrTextureNotFound")
	}
	if !errors.Is(importErrorf("no importer for %q", ".xyz"), &Error{Kind: ErrorImport}) {
		t.Errorf("import errors of different messages should match by kind")
	}
}

// TestPrimitiveError verifies lifting keeps the source message.
func TestPrimitiveError(t *testing.T) {
	err := PrimitiveError(errors.New("invalid UTF-8 sequence at byte 4"))
	if err.Kind != ErrorPrimitive {
		t.Errorf("Kind = %v, want ErrorPrimitive", err.Kind)
	}
	if err.Message != "invalid UTF-8 sequence at byte 4" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Error() != "unknown error" {
		t.Errorf("Error() = %q, want placeholder", err.Error())
	}
}
