// Package store persists named layout documents across sessions.
//
// This package defines the LayoutStore interface with implementations for
// different backends:
//   - file: JSON files in a config directory, the CLI default
//   - redis: Redis-backed storage for a shared design server
//   - mongo: MongoDB-backed storage for a shared design server
//
// A saved layout wraps the wire-format document with an identifier and a
// display name. Documents are stored verbatim; the store never interprets
// shape or system values.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Azmathzahask/SOLIS/pkg/document"
	"github.com/Azmathzahask/SOLIS/pkg/errors"
)

// SavedLayout is a layout document with store metadata.
type SavedLayout struct {
	ID        string            `json:"id" bson:"_id"`
	Name      string            `json:"name" bson:"name"`
	Document  document.Document `json:"document" bson:"document"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}

// New creates a saved layout with a fresh UUID and creation timestamp.
func New(name string, doc document.Document) (SavedLayout, error) {
	if err := errors.ValidateLayoutName(name); err != nil {
		return SavedLayout{}, err
	}
	return SavedLayout{
		ID:        uuid.NewString(),
		Name:      name,
		Document:  doc,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// LayoutStore is the interface for saved-layout backends.
type LayoutStore interface {
	// List returns all saved layouts, newest first.
	List(ctx context.Context) ([]SavedLayout, error)

	// Get retrieves a saved layout by ID.
	// Returns a DOCUMENT_NOT_FOUND error if the ID is unknown.
	Get(ctx context.Context, id string) (SavedLayout, error)

	// Put stores a saved layout, replacing any existing entry with the
	// same ID.
	Put(ctx context.Context, layout SavedLayout) error

	// Delete removes a saved layout. Deleting an unknown ID is not an
	// error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// notFound builds the shared not-found error for store backends.
func notFound(id string) error {
	return errors.New(errors.ErrCodeDocumentNotFound, "saved layout %s not found", id)
}
