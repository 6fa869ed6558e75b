// Package postgres backs docstore.Store with a single JSONB table in PostgreSQL.
package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"inventory-management/pkg/docstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	seq        BIGSERIAL,
	collection TEXT        NOT NULL,
	id         TEXT        NOT NULL,
	fields     JSONB       NOT NULL DEFAULT '{}'::jsonb,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_seq_idx ON documents (collection, seq);
`

type implStore struct {
	pool *pgxpool.Pool
}

// New opens a pool, pings it and creates the documents table when missing.
func New(ctx context.Context, dsn string) (docstore.Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &implStore{pool: pool}, nil
}

func (s *implStore) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	rows, err := s.pool.Query(ctx, listQuery, collection)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (s *implStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, getQuery, collection, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return docstore.Document{}, docstore.ErrNotFound
	}
	if err != nil {
		return docstore.Document{}, err
	}
	fields, err := decode(raw)
	if err != nil {
		return docstore.Document{}, err
	}
	return docstore.Document{ID: id, Fields: fields}, nil
}

func (s *implStore) Query(ctx context.Context, collection, field string, value any) ([]docstore.Document, error) {
	want, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode query value: %w", err)
	}
	rows, err := s.pool.Query(ctx, queryByField, collection, field, string(want))
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (s *implStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	id := uuid.NewString()
	if _, err := s.pool.Exec(ctx, insertQuery, collection, id, string(raw)); err != nil {
		return "", err
	}
	return id, nil
}

func (s *implStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	tag, err := s.pool.Exec(ctx, mergeQuery, collection, id, string(raw))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.pool.Exec(ctx, deleteQuery, collection, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *implStore) Close() error {
	s.pool.Close()
	return nil
}

func collect(rows pgx.Rows) ([]docstore.Document, error) {
	defer rows.Close()

	out := make([]docstore.Document, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		fields, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", id, err)
		}
		out = append(out, docstore.Document{ID: id, Fields: fields})
	}
	return out, rows.Err()
}

func decode(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	fields := make(map[string]any)
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	return fields, nil
}
