package server

import (
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Azmathzahask/SOLIS/pkg/buildinfo"
	"github.com/Azmathzahask/SOLIS/pkg/document"
	"github.com/Azmathzahask/SOLIS/pkg/errors"
	"github.com/Azmathzahask/SOLIS/pkg/habitat"
	"github.com/Azmathzahask/SOLIS/pkg/layout"
	"github.com/Azmathzahask/SOLIS/pkg/store"
)

// maxDocumentBytes bounds request bodies; layout documents are tiny.
const maxDocumentBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// metricsResponse echoes the shell parameters alongside the computed metrics.
type metricsResponse struct {
	Shape        string  `json:"shape"`
	Radius       float64 `json:"radius"`
	Height       float64 `json:"height"`
	Volume       float64 `json:"volume"`
	SurfaceArea  float64 `json:"surfaceArea"`
	CrewCapacity int     `json:"crewCapacity"`
}

// handleMetrics computes geometry metrics for the shell described by the
// shape, radius and height query parameters.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	shape, err := habitat.ParseShape(q.Get("shape"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	radius, err := parseDimension(q.Get("radius"), "radius")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	height, err := parseDimension(q.Get("height"), "height")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := errors.ValidateRadius(radius); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := errors.ValidateHeight(height); err != nil {
		s.writeError(w, r, err)
		return
	}

	m := habitat.Compute(shape, habitat.Dimensions{Radius: radius, Height: height})
	writeJSON(w, http.StatusOK, metricsResponse{
		Shape:        shape.String(),
		Radius:       radius,
		Height:       height,
		Volume:       m.Volume,
		SurfaceArea:  m.SurfaceArea,
		CrewCapacity: m.CrewCapacity,
	})
}

// layoutResponse pairs the applied document with the computed placements.
type layoutResponse struct {
	Document   document.Document     `json:"document"`
	Placements []layout.PlacedSystem `json:"placements"`
}

// handleLayout runs auto-layout for the posted layout document. An optional
// seed query parameter makes the vertical jitter reproducible.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocumentBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	_, dims, systems, err := doc.Apply()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var rng *rand.Rand
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "seed must be an unsigned integer"))
			return
		}
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	placed := layout.Arrange(systems, dims, rng)
	writeJSON(w, http.StatusOK, layoutResponse{Document: doc, Placements: placed})
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	layouts, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if layouts == nil {
		layouts = []store.SavedLayout{}
	}
	writeJSON(w, http.StatusOK, layouts)
}

// handleSaveLayout stores the posted document under the name query
// parameter and returns the saved record with its generated ID.
func (s *Server) handleSaveLayout(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocumentBody(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	saved, err := store.New(r.URL.Query().Get("name"), doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Put(r.Context(), saved); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.store.Get(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// readDocumentBody decodes a layout document from the request body.
func readDocumentBody(r *http.Request) (document.Document, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		return document.Document{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return document.Decode(data)
}

func parseDimension(raw, name string) (float64, error) {
	if raw == "" {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s query parameter is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidDimension, err, "parse %s", name)
	}
	return v, nil
}
