package layout

import (
	"math"
	"math/rand/v2"

	"github.com/Azmathzahask/SOLIS/pkg/habitat"
)

// Placement constants.
const (
	// placementScale shrinks the shell dimensions so markers sit inside
	// the hull rather than on it.
	placementScale = 0.8

	// jitterScale bounds the vertical scatter to half the effective
	// height, centered on the equator.
	jitterScale = 0.5
)

// Vec3 is a position in shell-local coordinates. Y is the vertical axis.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PlacedSystem is one system marker with its assigned position.
type PlacedSystem struct {
	Kind     habitat.SystemKind `json:"kind"`
	Position Vec3               `json:"position"`
}

// Arrange assigns each system in kinds a position on a ring inside the
// shell. Slot i sits at angle i·(2π/N) on a circle of radius 0.8·R, with
// a bounded random vertical offset drawn from rng.
//
// The output has exactly one entry per input element, in input order. Use
// [habitat.CanonicalSubset] first if the input set may be in toggle order.
// An empty input yields an empty (non-nil) slice; Arrange never fails and
// never clears prior placements — clearing is the session's job.
//
// If rng is nil, a source seeded from global randomness is used; pass a
// seeded source for reproducible jitter.
func Arrange(kinds []habitat.SystemKind, dims habitat.Dimensions, rng *rand.Rand) []PlacedSystem {
	placed := make([]PlacedSystem, 0, len(kinds))
	if len(kinds) == 0 {
		return placed
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	effRadius := placementScale * dims.Radius
	effHeight := placementScale * dims.Height
	angleStep := 2 * math.Pi / float64(len(kinds))

	for i, kind := range kinds {
		angle := float64(i) * angleStep
		placed = append(placed, PlacedSystem{
			Kind: kind,
			Position: Vec3{
				X: math.Cos(angle) * effRadius,
				Y: (rng.Float64() - 0.5) * effHeight * jitterScale,
				Z: math.Sin(angle) * effRadius,
			},
		})
	}
	return placed
}
