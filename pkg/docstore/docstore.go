// Package docstore is the boundary to the hosted document database. Documents are
// schemaless maps of field name to value, grouped in named collections.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get, Update and Delete when no document has the given id.
var ErrNotFound = errors.New("docstore: document not found")

// Document is a stored document and the id the store assigned to it.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is a collection-scoped document database.
type Store interface {
	// List returns every document of the collection in the order the store yields them.
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	// Query returns the documents whose field equals value.
	Query(ctx context.Context, collection, field string, value any) ([]Document, error)
	// Create stores fields as a new document and returns its id.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Update overwrites the given fields and leaves the others untouched.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Close() error
}
