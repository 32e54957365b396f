package habitat

import (
	"reflect"
	"testing"

	"github.com/Azmathzahask/SOLIS/pkg/errors"
)

func TestKindsCatalogue(t *testing.T) {
	all := Kinds()
	if len(all) != 10 {
		t.Fatalf("expected 10 system kinds, got %d", len(all))
	}

	// Every kind must carry complete display attributes.
	for _, k := range all {
		info := k.Info()
		if info.Label == "" {
			t.Errorf("%s has no label", k)
		}
		if info.Color == "" {
			t.Errorf("%s has no color", k)
		}
		if info.Glyph == "" {
			t.Errorf("%s has no glyph", k)
		}
	}

	// Kinds returns a copy, not the backing slice.
	all[0] = SystemKind("mutated")
	if Kinds()[0] != SystemLifeSupport {
		t.Error("mutating the returned slice must not affect the catalogue")
	}
}

func TestParseSystemKind(t *testing.T) {
	k, err := ParseSystemKind("life-support")
	if err != nil {
		t.Fatalf("ParseSystemKind error: %v", err)
	}
	if k != SystemLifeSupport {
		t.Errorf("got %v, want %v", k, SystemLifeSupport)
	}

	_, err = ParseSystemKind("warp-drive")
	if err == nil {
		t.Fatal("unknown kind should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidSystem) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidSystem)
	}
}

func TestCanonicalSubset(t *testing.T) {
	tests := []struct {
		name    string
		enabled []SystemKind
		want    []SystemKind
	}{
		{
			name:    "reorders to canonical",
			enabled: []SystemKind{SystemStowage, SystemPower, SystemMedical},
			want:    []SystemKind{SystemPower, SystemMedical, SystemStowage},
		},
		{
			name:    "drops unknown and duplicates",
			enabled: []SystemKind{SystemPower, SystemKind("warp-drive"), SystemPower},
			want:    []SystemKind{SystemPower},
		},
		{
			name:    "empty input",
			enabled: nil,
			want:    []SystemKind{},
		},
		{
			name:    "full set stays complete",
			enabled: Kinds(),
			want:    Kinds(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalSubset(tt.enabled)
			if got == nil {
				t.Fatal("result must be non-nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
