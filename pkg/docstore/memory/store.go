// Package memory is an in-process docstore.Store. Data lives only as long as the process.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"

	"inventory-management/pkg/docstore"
)

type collection struct {
	order []string
	docs  map[string]map[string]any
}

type implStore struct {
	mu          sync.RWMutex
	collections map[string]*collection
	newID       func() string
}

// New returns an empty store. Documents are listed in insertion order.
func New() docstore.Store {
	return &implStore{
		collections: make(map[string]*collection),
		newID:       uuid.NewString,
	}
}

func (s *implStore) col(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]map[string]any)}
		s.collections[name] = c
	}
	return c
}

func (s *implStore) List(ctx context.Context, name string) ([]docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return []docstore.Document{}, nil
	}
	out := make([]docstore.Document, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, docstore.Document{ID: id, Fields: maps.Clone(c.docs[id])})
	}
	return out, nil
}

func (s *implStore) Get(ctx context.Context, name, id string) (docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return docstore.Document{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	fields, ok := c.docs[id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	return docstore.Document{ID: id, Fields: maps.Clone(fields)}, nil
}

func (s *implStore) Query(ctx context.Context, name, field string, value any) ([]docstore.Document, error) {
	docs, err := s.List(ctx, name)
	if err != nil {
		return nil, err
	}

	out := make([]docstore.Document, 0)
	for _, d := range docs {
		if v, ok := d.Fields[field]; ok && docstore.Equal(v, value) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *implStore) Create(ctx context.Context, name string, fields map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.col(name)
	id := s.newID()
	c.docs[id] = maps.Clone(fields)
	c.order = append(c.order, id)
	return id, nil
}

func (s *implStore) Update(ctx context.Context, name, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return docstore.ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		return docstore.ErrNotFound
	}
	maps.Copy(doc, fields)
	return nil
}

func (s *implStore) Delete(ctx context.Context, name, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return docstore.ErrNotFound
	}
	if _, ok := c.docs[id]; !ok {
		return docstore.ErrNotFound
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *implStore) Close() error { return nil }
