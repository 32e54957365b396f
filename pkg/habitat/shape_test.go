package habitat

import (
	"testing"

	"github.com/Azmathzahask/SOLIS/pkg/errors"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		input string
		want  Shape
	}{
		{"cylinder", ShapeCylinder},
		{"sphere", ShapeSphere},
		{"cube", ShapeCube},
		{"torus", ShapeTorus},
		{"Cylinder", ShapeCylinder},
		{"  TORUS  ", ShapeTorus},
	}
	for _, tt := range tests {
		got, err := ParseShape(tt.input)
		if err != nil {
			t.Errorf("ParseShape(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseShape(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseShapeInvalid(t *testing.T) {
	for _, input := range []string{"", "pyramid", "cyl"} {
		_, err := ParseShape(input)
		if err == nil {
			t.Errorf("ParseShape(%q) should fail", input)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidShape) {
			t.Errorf("ParseShape(%q) code = %v, want %v", input, errors.GetCode(err), errors.ErrCodeInvalidShape)
		}
	}
}

func TestShapeString(t *testing.T) {
	// Every declared shape must have a name and parse back to itself.
	for _, s := range Shapes() {
		name := s.String()
		if name == "" || name == "unknown" {
			t.Errorf("shape %d has no name", s)
		}
		parsed, err := ParseShape(name)
		if err != nil {
			t.Errorf("ParseShape(%q) error: %v", name, err)
		}
		if parsed != s {
			t.Errorf("round-trip %v -> %q -> %v", s, name, parsed)
		}
	}

	if Shape(0).String() != "unknown" {
		t.Errorf("zero shape String = %q, want unknown", Shape(0).String())
	}
}

func TestShapeValid(t *testing.T) {
	for _, s := range Shapes() {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	if Shape(0).Valid() {
		t.Error("zero shape should not be valid")
	}
	if Shape(99).Valid() {
		t.Error("out-of-range shape should not be valid")
	}
}
