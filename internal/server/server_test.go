package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Azmathzahask/SOLIS/pkg/document"
	"github.com/Azmathzahask/SOLIS/pkg/habitat"
	"github.com/Azmathzahask/SOLIS/pkg/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New("localhost:0", s, log.New(io.Discard))
}

func doRequest(t *testing.T, srv *Server, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := doRequest(t, testServer(t), http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q", body["status"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, http.MethodGet, "/api/v1/metrics?shape=cylinder&radius=10&height=15", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got metricsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Shape != "cylinder" {
		t.Errorf("shape = %q", got.Shape)
	}
	if got.CrewCapacity != 235 {
		t.Errorf("crewCapacity = %d, want 235", got.CrewCapacity)
	}
}

func TestMetricsEndpointRejectsBadInput(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name      string
		target    string
		wantError string
	}{
		{"unknown shape", "/api/v1/metrics?shape=pyramid&radius=10&height=15", "INVALID_SHAPE"},
		{"missing radius", "/api/v1/metrics?shape=cube&height=15", "INVALID_INPUT"},
		{"non-numeric radius", "/api/v1/metrics?shape=cube&radius=ten&height=15", "INVALID_DIMENSION"},
		{"negative radius", "/api/v1/metrics?shape=cube&radius=-1&height=15", "INVALID_DIMENSION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, http.MethodGet, tt.target, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
		})
	}
}

func TestLayoutEndpoint(t *testing.T) {
	srv := testServer(t)

	doc := document.Encode(habitat.ShapeCylinder, habitat.Dimensions{Radius: 10, Height: 15},
		[]habitat.SystemKind{habitat.SystemPower, habitat.SystemMedical})
	body, err := doc.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, srv, http.MethodPost, "/api/v1/layout?seed=42", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got layoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(got.Placements) != 2 {
		t.Fatalf("placements = %d, want 2", len(got.Placements))
	}
	if got.Placements[0].Kind != habitat.SystemPower {
		t.Errorf("first placement = %v, want canonical order", got.Placements[0].Kind)
	}

	// Same seed, same placements.
	w2 := doRequest(t, srv, http.MethodPost, "/api/v1/layout?seed=42", body)
	if !bytes.Equal(w.Body.Bytes(), w2.Body.Bytes()) {
		t.Error("seeded layout should be reproducible")
	}
}

func TestLayoutEndpointMalformed(t *testing.T) {
	srv := testServer(t)

	w := doRequest(t, srv, http.MethodPost, "/api/v1/layout", []byte("not json"))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Error != "MALFORMED_DOCUMENT" {
		t.Errorf("error = %q, want MALFORMED_DOCUMENT", body.Error)
	}
}

func TestLayoutsCRUD(t *testing.T) {
	srv := testServer(t)

	doc := document.Encode(habitat.ShapeTorus, habitat.Dimensions{Radius: 10, Height: 4},
		[]habitat.SystemKind{habitat.SystemStowage})
	body, err := doc.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	// Save
	w := doRequest(t, srv, http.MethodPost, "/api/v1/layouts?name=ring-station", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("save status = %d, body %s", w.Code, w.Body.String())
	}
	var saved store.SavedLayout
	if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if saved.ID == "" || saved.Name != "ring-station" {
		t.Fatalf("saved = %+v", saved)
	}

	// List
	w = doRequest(t, srv, http.MethodGet, "/api/v1/layouts/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var layouts []store.SavedLayout
	if err := json.Unmarshal(w.Body.Bytes(), &layouts); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(layouts) != 1 {
		t.Fatalf("list = %d layouts, want 1", len(layouts))
	}

	// Get
	w = doRequest(t, srv, http.MethodGet, "/api/v1/layouts/"+saved.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	// Delete
	w = doRequest(t, srv, http.MethodDelete, "/api/v1/layouts/"+saved.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doRequest(t, srv, http.MethodGet, "/api/v1/layouts/"+saved.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete status = %d, want 404", w.Code)
	}
}

func TestSaveLayoutRequiresName(t *testing.T) {
	srv := testServer(t)

	doc := document.Encode(habitat.ShapeCube, habitat.Dimensions{Radius: 5, Height: 5}, nil)
	body, err := doc.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	w := doRequest(t, srv, http.MethodPost, "/api/v1/layouts", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetLayoutNotFound(t *testing.T) {
	w := doRequest(t, testServer(t), http.MethodGet, "/api/v1/layouts/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.Error != "DOCUMENT_NOT_FOUND" {
		t.Errorf("error = %q, want DOCUMENT_NOT_FOUND", body.Error)
	}
}
