package errors

import (
	"strings"
	"unicode"
)

// ValidateRadius validates a shell radius from user input.
// Radius must be a positive, finite value.
func ValidateRadius(r float64) error {
	if !(r > 0) {
		return New(ErrCodeInvalidDimension, "radius must be positive, got %g", r)
	}
	return nil
}

// ValidateHeight validates a shell height from user input.
// Height must be a positive, finite value. Sphere shells ignore height in
// their formulas, but the stored value still has to be well-formed.
func ValidateHeight(h float64) error {
	if !(h > 0) {
		return New(ErrCodeInvalidDimension, "height must be positive, got %g", h)
	}
	return nil
}

// ValidateLayoutName validates a saved-layout name for the store.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators (names become file names in the file backend)
//   - Maximum length of 128 characters
func ValidateLayoutName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "layout name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidInput, "layout name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "layout name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidInput, "layout name cannot contain path separators")
	}

	return nil
}
