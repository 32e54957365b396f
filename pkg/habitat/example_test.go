package habitat_test

import (
	"fmt"

	"github.com/Azmathzahask/SOLIS/pkg/habitat"
)

func ExampleCompute() {
	m := habitat.Compute(habitat.ShapeCylinder, habitat.Dimensions{Radius: 10, Height: 15}).Rounded()
	fmt.Printf("volume: %.0f\n", m.Volume)
	fmt.Printf("surface area: %.0f\n", m.SurfaceArea)
	fmt.Printf("crew capacity: %d\n", m.CrewCapacity)
	// Output:
	// volume: 4712
	// surface area: 1571
	// crew capacity: 235
}

func ExampleParseShape() {
	shape, _ := habitat.ParseShape("torus")
	fmt.Println(shape)
	// Output: torus
}

func ExampleCanonicalSubset() {
	enabled := []habitat.SystemKind{habitat.SystemStowage, habitat.SystemLifeSupport}
	for _, k := range habitat.CanonicalSubset(enabled) {
		fmt.Println(k)
	}
	// Output:
	// life-support
	// stowage
}
