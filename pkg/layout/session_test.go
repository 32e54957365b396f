package layout

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/Azmathzahask/SOLIS/pkg/habitat"
)

func TestSessionToggle(t *testing.T) {
	s := NewSession(habitat.ShapeCylinder, habitat.Dimensions{Radius: 10, Height: 15})

	s = s.Toggle(habitat.SystemStowage)
	s = s.Toggle(habitat.SystemLifeSupport)
	s = s.Toggle(habitat.SystemMedical)

	// Enabled set stays in canonical order regardless of toggle order.
	want := []habitat.SystemKind{habitat.SystemLifeSupport, habitat.SystemMedical, habitat.SystemStowage}
	if !reflect.DeepEqual(s.Enabled, want) {
		t.Errorf("Enabled = %v, want %v", s.Enabled, want)
	}

	// Toggling again removes.
	s = s.Toggle(habitat.SystemMedical)
	if s.IsEnabled(habitat.SystemMedical) {
		t.Error("toggled-off system should not be enabled")
	}
	if !s.IsEnabled(habitat.SystemStowage) {
		t.Error("untouched system should stay enabled")
	}
}

func TestSessionValueSemantics(t *testing.T) {
	base := NewSession(habitat.ShapeSphere, habitat.Dimensions{Radius: 8, Height: 8})
	modified := base.Toggle(habitat.SystemPower)

	if len(base.Enabled) != 0 {
		t.Error("toggling a copy must not mutate the original")
	}
	if len(modified.Enabled) != 1 {
		t.Errorf("expected 1 enabled system, got %d", len(modified.Enabled))
	}
}

func TestSessionWithEnabledCanonicalizes(t *testing.T) {
	s := NewSession(habitat.ShapeCube, habitat.Dimensions{Radius: 5, Height: 5}).
		WithEnabled([]habitat.SystemKind{habitat.SystemFood, habitat.SystemPower, habitat.SystemKind("bogus")})

	want := []habitat.SystemKind{habitat.SystemPower, habitat.SystemFood}
	if !reflect.DeepEqual(s.Enabled, want) {
		t.Errorf("Enabled = %v, want %v", s.Enabled, want)
	}
}

func TestSessionAutoArrange(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	s := NewSession(habitat.ShapeCylinder, habitat.Dimensions{Radius: 10, Height: 15}).
		WithEnabled([]habitat.SystemKind{habitat.SystemPower, habitat.SystemSleep}).
		AutoArrange(rng)

	if len(s.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(s.Placements))
	}
	if s.Placements[0].Kind != habitat.SystemPower {
		t.Errorf("first placement = %v, want %v", s.Placements[0].Kind, habitat.SystemPower)
	}

	// Re-arranging after a toggle replaces placements wholesale.
	s = s.Toggle(habitat.SystemSleep).AutoArrange(nil)
	if len(s.Placements) != 1 {
		t.Fatalf("expected 1 placement after re-arrange, got %d", len(s.Placements))
	}

	// Arranging with nothing enabled yields an empty list.
	empty := NewSession(habitat.ShapeCylinder, habitat.Dimensions{Radius: 10, Height: 15}).AutoArrange(nil)
	if len(empty.Placements) != 0 {
		t.Errorf("expected no placements, got %d", len(empty.Placements))
	}
}

func TestSessionClearPlacements(t *testing.T) {
	s := NewSession(habitat.ShapeTorus, habitat.Dimensions{Radius: 10, Height: 4}).
		WithEnabled(habitat.Kinds()).
		AutoArrange(nil)

	cleared := s.ClearPlacements()
	if len(cleared.Placements) != 0 {
		t.Error("ClearPlacements should empty the placement list")
	}
	if !reflect.DeepEqual(cleared.Enabled, s.Enabled) {
		t.Error("ClearPlacements must not touch the enabled set")
	}
}

func TestSessionMetrics(t *testing.T) {
	s := NewSession(habitat.ShapeCylinder, habitat.Dimensions{Radius: 10, Height: 15})
	got := s.Metrics()
	want := habitat.Compute(habitat.ShapeCylinder, habitat.Dimensions{Radius: 10, Height: 15})
	if got != want {
		t.Errorf("Metrics = %+v, want %+v", got, want)
	}
}
