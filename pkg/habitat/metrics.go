package habitat

import "math"

// Geometry constants.
const (
	// TorusMinorRatio is the fixed ratio of a torus shell's minor radius
	// to its major radius. The minor radius is not independently
	// configurable.
	TorusMinorRatio = 0.3

	// CrewVolumePerPerson is the volume allotted per occupant when
	// deriving crew capacity.
	CrewVolumePerPerson = 20.0
)

// Metrics holds the derived geometry of a shell.
// Volume and SurfaceArea carry full floating-point precision; rounding for
// display is the caller's concern (see [Metrics.Rounded]).
type Metrics struct {
	Volume       float64 `json:"volume"`
	SurfaceArea  float64 `json:"surface_area"`
	CrewCapacity int     `json:"crew_capacity"`
}

// Rounded returns the metrics with volume and surface area rounded to the
// nearest integer, the form shown in the UI. CrewCapacity is already
// integral.
func (m Metrics) Rounded() Metrics {
	m.Volume = math.Round(m.Volume)
	m.SurfaceArea = math.Round(m.SurfaceArea)
	return m
}

// Compute returns the geometry metrics for a shell of the given shape and
// dimensions.
//
// Preconditions: dims.Radius > 0 and dims.Height > 0 (Height is unused for
// spheres). Violations are caller contract, not runtime-checked errors;
// the function is total over well-formed input. An invalid shape yields
// zero metrics.
func Compute(shape Shape, dims Dimensions) Metrics {
	var volume, area float64

	r, h := dims.Radius, dims.Height
	switch shape {
	case ShapeCylinder:
		volume = math.Pi * r * r * h
		area = 2*math.Pi*r*h + 2*math.Pi*r*r
	case ShapeSphere:
		volume = (4.0 / 3.0) * math.Pi * r * r * r
		area = 4 * math.Pi * r * r
	case ShapeCube:
		// Modeled as a rectangular box with a 2r × 2r footprint.
		w := 2 * r
		volume = w * h * w
		area = 2 * (w*h + w*w + h*w)
	case ShapeTorus:
		minor := TorusMinorRatio * r
		volume = 2 * math.Pi * math.Pi * r * minor * minor
		area = 4 * math.Pi * math.Pi * r * minor
	default:
		return Metrics{}
	}

	return Metrics{
		Volume:       volume,
		SurfaceArea:  area,
		CrewCapacity: int(math.Floor(volume / CrewVolumePerPerson)),
	}
}
