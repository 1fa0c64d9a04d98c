package russimp

import (
	"errors"
	"testing"
)

// TestPostProcessValues verifies the bit assignments against the native
// header. The first and last bits anchor the whole sequence.
func TestPostProcessValues(t *testing.T) {
	tests := []struct {
		name string
		step PostProcess
		want PostProcess
	}{
		{"CalcTangentSpace", CalcTangentSpace, 0x1},
		{"JoinIdenticalVertices", JoinIdenticalVertices, 0x2},
		{"Triangulate", Triangulate, 0x8},
		{"SortByPrimitiveType", SortByPrimitiveType, 0x8000},
		{"GlobalScale", GlobalScale, 0x8000000},
		{"GenBoundingBoxes", GenBoundingBoxes, 0x80000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step != tt.want {
				t.Errorf("%s = %#x, want %#x", tt.name, uint32(tt.step), uint32(tt.want))
			}
		})
	}
}

// TestPostProcessCombos verifies the preset combinations contain exactly
// their documented steps.
func TestPostProcessCombos(t *testing.T) {
	if ConvertToLeftHanded != MakeLeftHanded|FlipUVs|FlipWindingOrder {
		t.Errorf("ConvertToLeftHanded = %#x", uint32(ConvertToLeftHanded))
	}
	if TargetRealtimeFast&Triangulate == 0 {
		t.Errorf("TargetRealtimeFast should include Triangulate")
	}
	if TargetRealtimeMaxQuality&TargetRealtimeQuality != TargetRealtimeQuality {
		t.Errorf("TargetRealtimeMaxQuality should contain TargetRealtimeQuality")
	}
	if TargetRealtimeMaxQuality&ValidateDataStructure == 0 {
		t.Errorf("TargetRealtimeMaxQuality should include ValidateDataStructure")
	}
}

// TestParseSteps verifies name folding, case insensitivity and combo
// names.
func TestParseSteps(t *testing.T) {
	got, err := ParseSteps([]string{"Triangulate", "genboundingboxes", "JOINIDENTICALVERTICES"})
	if err != nil {
		t.Fatalf("ParseSteps: %v", err)
	}
	want := Triangulate | GenBoundingBoxes | JoinIdenticalVertices
	if got != want {
		t.Errorf("ParseSteps = %#x, want %#x", uint32(got), uint32(want))
	}

	got, err = ParseSteps([]string{"TargetRealtimeFast", "FlipUVs"})
	if err != nil {
		t.Fatalf("ParseSteps: %v", err)
	}
	if got != TargetRealtimeFast|FlipUVs {
		t.Errorf("combo parse = %#x", uint32(got))
	}

	if got, err := ParseSteps(nil); err != nil || got != 0 {
		t.Errorf("empty list should parse to 0, got %#x, %v", uint32(got), err)
	}
}

// TestParseStepsUnknown verifies an unrecognized name fails as an import
// error naming the step.
func TestParseStepsUnknown(t *testing.T) {
	_, err := ParseSteps([]string{"Triangulate", "Tesselate"})
	if err == nil {
		t.Fatalf("unknown step should fail")
	}
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrorImport {
		t.Errorf("unknown step should be an import error, got %#v", err)
	}
	if e.Message != `unknown post-processing step "Tesselate"` {
		t.Errorf("Message = %q", e.Message)
	}
}

// TestPostProcessString verifies the pipe-joined rendering.
func TestPostProcessString(t *testing.T) {
	if got := (Triangulate | FlipUVs).String(); got != "Triangulate|FlipUVs" {
		t.Errorf("String() = %q", got)
	}
	if got := PostProcess(0).String(); got != "0" {
		t.Errorf("String() = %q, want \"0\"", got)
	}
	if got := CalcTangentSpace.String(); got != "CalcTangentSpace" {
		t.Errorf("String() = %q", got)
	}
}
