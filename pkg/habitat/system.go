package habitat

import (
	"github.com/Azmathzahask/SOLIS/pkg/errors"
)

// SystemKind identifies one onboard subsystem. The set is closed; no
// dynamic registration.
type SystemKind string

// The ten known system kinds, in canonical order.
const (
	SystemLifeSupport    SystemKind = "life-support"
	SystemPower          SystemKind = "power"
	SystemWaste          SystemKind = "waste"
	SystemThermal        SystemKind = "thermal"
	SystemCommunications SystemKind = "communications"
	SystemMedical        SystemKind = "medical"
	SystemSleep          SystemKind = "sleep"
	SystemExercise       SystemKind = "exercise"
	SystemFood           SystemKind = "food"
	SystemStowage        SystemKind = "stowage"
)

// kinds is the canonical ordering. Placement order follows this list, not
// the order a user happened to toggle checkboxes in.
var kinds = []SystemKind{
	SystemLifeSupport,
	SystemPower,
	SystemWaste,
	SystemThermal,
	SystemCommunications,
	SystemMedical,
	SystemSleep,
	SystemExercise,
	SystemFood,
	SystemStowage,
}

// SystemInfo holds the fixed display attributes of a system kind.
type SystemInfo struct {
	Label string // Human-readable name
	Color string // Hex color used by markers and the schematic renderer
	Glyph string // Single-character marker glyph
}

// systemInfos maps every known kind to its display attributes.
// Completeness over the closed set is asserted by tests.
var systemInfos = map[SystemKind]SystemInfo{
	SystemLifeSupport:    {Label: "Life Support", Color: "#4fc3f7", Glyph: "◉"},
	SystemPower:          {Label: "Power", Color: "#ffd54f", Glyph: "⚡"},
	SystemWaste:          {Label: "Waste Management", Color: "#8d6e63", Glyph: "♺"},
	SystemThermal:        {Label: "Thermal Control", Color: "#ef5350", Glyph: "♨"},
	SystemCommunications: {Label: "Communications", Color: "#7e57c2", Glyph: "📡"},
	SystemMedical:        {Label: "Medical Bay", Color: "#66bb6a", Glyph: "✚"},
	SystemSleep:          {Label: "Sleep Quarters", Color: "#5c6bc0", Glyph: "☾"},
	SystemExercise:       {Label: "Exercise", Color: "#ff7043", Glyph: "⚒"},
	SystemFood:           {Label: "Food & Galley", Color: "#9ccc65", Glyph: "❋"},
	SystemStowage:        {Label: "Stowage", Color: "#bdbdbd", Glyph: "▣"},
}

// Kinds returns all known system kinds in canonical order.
// The returned slice is a copy and safe to mutate.
func Kinds() []SystemKind {
	out := make([]SystemKind, len(kinds))
	copy(out, kinds)
	return out
}

// Known reports whether k is one of the ten known system kinds.
func (k SystemKind) Known() bool {
	_, ok := systemInfos[k]
	return ok
}

// Info returns the display attributes for k.
// Unknown kinds return a zero SystemInfo.
func (k SystemKind) Info() SystemInfo {
	return systemInfos[k]
}

// String returns the wire identifier of the kind.
func (k SystemKind) String() string { return string(k) }

// ParseSystemKind converts a wire identifier to a SystemKind.
// It returns an INVALID_SYSTEM error for unknown identifiers.
func ParseSystemKind(id string) (SystemKind, error) {
	k := SystemKind(id)
	if !k.Known() {
		return "", errors.New(errors.ErrCodeInvalidSystem, "unknown system kind: %q", id)
	}
	return k, nil
}

// CanonicalSubset intersects enabled with the canonical ordering and
// returns the result in canonical order. Unknown kinds and duplicates are
// dropped. This is the ordering contract for auto-layout: a system's slot
// depends on the catalogue order, never on toggle order.
func CanonicalSubset(enabled []SystemKind) []SystemKind {
	set := make(map[SystemKind]bool, len(enabled))
	for _, k := range enabled {
		set[k] = true
	}
	out := make([]SystemKind, 0, len(set))
	for _, k := range kinds {
		if set[k] {
			out = append(out, k)
		}
	}
	return out
}
