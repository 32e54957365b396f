package habitat

import (
	"strings"

	"github.com/Azmathzahask/SOLIS/pkg/errors"
)

// Shape identifies the parametric solid used for the habitat shell.
// The zero value is not a valid shape; use [ParseShape] or the constants.
type Shape int

// Shell shapes. The set is closed and drives which metrics formula applies.
const (
	ShapeCylinder Shape = iota + 1
	ShapeSphere
	ShapeCube
	ShapeTorus
)

// shapeNames maps each shape to its canonical wire/display name.
// These strings are the ones persisted in layout documents.
var shapeNames = map[Shape]string{
	ShapeCylinder: "cylinder",
	ShapeSphere:   "sphere",
	ShapeCube:     "cube",
	ShapeTorus:    "torus",
}

// Shapes returns all valid shapes in canonical order.
func Shapes() []Shape {
	return []Shape{ShapeCylinder, ShapeSphere, ShapeCube, ShapeTorus}
}

// String returns the canonical lowercase name of the shape.
// Unknown values render as "unknown".
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s is one of the four known shapes.
func (s Shape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// ParseShape converts a shape name to a Shape. Matching is
// case-insensitive and ignores surrounding whitespace.
// It returns an INVALID_SHAPE error for unknown names.
func ParseShape(name string) (Shape, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for s, n := range shapeNames {
		if n == normalized {
			return s, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidShape, "unknown shape: %q (must be one of: cylinder, sphere, cube, torus)", name)
}

// Dimensions holds the two scalar dimensions of a shell.
// Radius is the major radius for a torus and the half-extent of a cube's
// footprint. Height is ignored by sphere formulas but retained so a
// session can switch shapes without losing the value.
type Dimensions struct {
	Radius float64 `json:"radius"`
	Height float64 `json:"height"`
}
