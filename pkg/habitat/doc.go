// Package habitat defines the parametric habitat shell model: the closed
// set of shell shapes, their dimensions, the geometry metrics derived from
// them, and the catalogue of onboard systems that can be placed inside a
// shell.
//
// The package is pure computation. It performs no I/O and holds no state;
// callers own the session (see the layout package) and feed values in.
//
// # Shapes and Metrics
//
// A shell is one of four solids: cylinder, sphere, cube, or torus. Given a
// shape and its dimensions, [Compute] returns enclosed volume, surface
// area, and a derived crew capacity (one occupant per 20 volume units):
//
//	m := habitat.Compute(habitat.ShapeCylinder, habitat.Dimensions{Radius: 10, Height: 15})
//	fmt.Println(m.CrewCapacity) // 235
//
// # System Catalogue
//
// [SystemKind] enumerates the ten onboard subsystems (life support, power,
// …). The set is closed: there is no dynamic registration, and every kind
// carries fixed display attributes (label, color, glyph) used by the CLI
// and the schematic renderer.
package habitat
