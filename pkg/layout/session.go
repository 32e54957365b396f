package layout

import (
	"math/rand/v2"
	"slices"

	"github.com/Azmathzahask/SOLIS/pkg/habitat"
)

// Session is the explicit design-session value: the current shell
// configuration plus the placements produced by the last auto-layout run.
//
// Session is a value type. Mutating operations return an updated copy, so
// callers can keep the prior state (for example to roll back when a
// document load fails).
type Session struct {
	Shape      habitat.Shape
	Dims       habitat.Dimensions
	Enabled    []habitat.SystemKind
	Placements []PlacedSystem
}

// NewSession returns a session with the given shell configuration and no
// enabled systems or placements.
func NewSession(shape habitat.Shape, dims habitat.Dimensions) Session {
	return Session{Shape: shape, Dims: dims}
}

// WithShape returns the session with a new shell shape.
// Existing placements are kept; callers decide when to re-arrange.
func (s Session) WithShape(shape habitat.Shape) Session {
	s.Shape = shape
	return s
}

// WithDims returns the session with new shell dimensions.
func (s Session) WithDims(dims habitat.Dimensions) Session {
	s.Dims = dims
	return s
}

// WithEnabled returns the session with the enabled set replaced.
// The set is stored in canonical catalogue order regardless of input order.
func (s Session) WithEnabled(enabled []habitat.SystemKind) Session {
	s.Enabled = habitat.CanonicalSubset(enabled)
	return s
}

// Toggle returns the session with kind flipped in or out of the enabled
// set. The set stays in canonical order.
func (s Session) Toggle(kind habitat.SystemKind) Session {
	if slices.Contains(s.Enabled, kind) {
		out := make([]habitat.SystemKind, 0, len(s.Enabled)-1)
		for _, k := range s.Enabled {
			if k != kind {
				out = append(out, k)
			}
		}
		s.Enabled = out
		return s
	}
	s.Enabled = habitat.CanonicalSubset(append(slices.Clone(s.Enabled), kind))
	return s
}

// IsEnabled reports whether kind is in the enabled set.
func (s Session) IsEnabled(kind habitat.SystemKind) bool {
	return slices.Contains(s.Enabled, kind)
}

// Metrics returns the geometry metrics for the current shell.
func (s Session) Metrics() habitat.Metrics {
	return habitat.Compute(s.Shape, s.Dims)
}

// AutoArrange returns the session with placements recomputed for the
// current enabled set. Prior placements are replaced wholesale. With no
// enabled systems the result has an empty placement list.
func (s Session) AutoArrange(rng *rand.Rand) Session {
	s.Placements = Arrange(s.Enabled, s.Dims, rng)
	return s
}

// ClearPlacements returns the session with the placement collection reset
// to empty. The enabled set is untouched.
func (s Session) ClearPlacements() Session {
	s.Placements = nil
	return s
}
