// Package layout implements the auto-layout engine: deterministic angular
// distribution of enabled system markers around the habitat shell's
// interior, with bounded vertical randomization for visual scatter.
//
// The engine is pure: it takes an ordered list of system kinds and the
// shell dimensions and returns one placement per input element, in input
// order. The only randomness is the vertical jitter, which is reproducible
// when the caller supplies a seeded source.
//
// # Session
//
// [Session] is the explicit design-session value threaded through the CLI,
// TUI, and HTTP layers. Operations return updated copies rather than
// mutating shared state, so every step is independently testable.
package layout
