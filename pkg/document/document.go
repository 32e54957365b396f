// Package document implements the layout document: the sole externally
// persisted form of a design session.
//
// A layout document is a small JSON object:
//
//	{
//	  "shape": "cylinder",
//	  "radius": 10,
//	  "height": 15,
//	  "systems": ["power", "medical"],
//	  "timestamp": "2026-08-25T12:00:00Z"
//	}
//
// The round-trip contract is exact: Decode(Encode(s, r, h, sys)) yields
// back the same shape, dimensions, and system set, timestamp excluded.
// Decoding applies values as-is — no range validation — and passes unknown
// system identifiers through untouched; [Document.EnabledSystems] performs
// the silent-drop filter against the known catalogue when the document is
// applied to a session.
package document

import (
	"encoding/json"
	"time"

	"github.com/Azmathzahask/SOLIS/pkg/errors"
	"github.com/Azmathzahask/SOLIS/pkg/habitat"
)

// Document is the persisted/exchanged layout form.
// Systems is stringly typed on purpose: unknown identifiers survive a
// decode so the caller owns the filtering policy.
type Document struct {
	Shape     string    `json:"shape"`
	Radius    float64   `json:"radius"`
	Height    float64   `json:"height"`
	Systems   []string  `json:"systems"`
	Timestamp time.Time `json:"timestamp"`
}

// Encode builds a document from the current configuration, stamped with
// the serialization time in UTC.
func Encode(shape habitat.Shape, dims habitat.Dimensions, systems []habitat.SystemKind) Document {
	ids := make([]string, len(systems))
	for i, k := range systems {
		ids[i] = k.String()
	}
	return Document{
		Shape:     shape.String(),
		Radius:    dims.Radius,
		Height:    dims.Height,
		Systems:   ids,
		Timestamp: time.Now().UTC(),
	}
}

// Decode parses a layout document from JSON bytes.
//
// It returns a MALFORMED_DOCUMENT error when the payload is not valid JSON
// or when a required field (shape, radius, height) is absent. Values are
// otherwise applied as-is: there is no range validation and unknown system
// strings pass through. A missing systems array decodes as empty, and a
// missing or unparseable timestamp is left zero — neither is required to
// load a layout.
func Decode(data []byte) (Document, error) {
	var raw struct {
		Shape     *string   `json:"shape"`
		Radius    *float64  `json:"radius"`
		Height    *float64  `json:"height"`
		Systems   []string  `json:"systems"`
		Timestamp time.Time `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeMalformedDocument, err, "layout document is not valid JSON")
	}

	switch {
	case raw.Shape == nil:
		return Document{}, errors.New(errors.ErrCodeMalformedDocument, "layout document missing required field %q", "shape")
	case raw.Radius == nil:
		return Document{}, errors.New(errors.ErrCodeMalformedDocument, "layout document missing required field %q", "radius")
	case raw.Height == nil:
		return Document{}, errors.New(errors.ErrCodeMalformedDocument, "layout document missing required field %q", "height")
	}

	return Document{
		Shape:     *raw.Shape,
		Radius:    *raw.Radius,
		Height:    *raw.Height,
		Systems:   raw.Systems,
		Timestamp: raw.Timestamp,
	}, nil
}

// Marshal serializes the document with indentation for human-readable
// files.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal layout document")
	}
	return data, nil
}

// ShapeKind parses the document's shape identifier.
func (d Document) ShapeKind() (habitat.Shape, error) {
	return habitat.ParseShape(d.Shape)
}

// Dims returns the document's dimensions as a habitat value.
func (d Document) Dims() habitat.Dimensions {
	return habitat.Dimensions{Radius: d.Radius, Height: d.Height}
}

// EnabledSystems returns the document's systems filtered against the known
// catalogue, in canonical order. Unknown identifiers are dropped silently;
// a document written by a newer tool still loads, it just loses the kinds
// this build doesn't know.
func (d Document) EnabledSystems() []habitat.SystemKind {
	known := make([]habitat.SystemKind, 0, len(d.Systems))
	for _, id := range d.Systems {
		if k := habitat.SystemKind(id); k.Known() {
			known = append(known, k)
		}
	}
	return habitat.CanonicalSubset(known)
}

// Apply loads the document into a session, replacing shape, dimensions,
// and the enabled set. Placements are cleared: positions are derived
// state, recomputed by the next auto-layout run. Unknown shapes fail with
// INVALID_SHAPE and leave no partial state behind — the caller keeps its
// prior session on error.
func (d Document) Apply() (shape habitat.Shape, dims habitat.Dimensions, systems []habitat.SystemKind, err error) {
	shape, err = d.ShapeKind()
	if err != nil {
		return 0, habitat.Dimensions{}, nil, err
	}
	return shape, d.Dims(), d.EnabledSystems(), nil
}
