// Package redis backs docstore.Store with Redis. Each document is a JSON string and
// each collection keeps a sorted set of ids so List returns creation order.
package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"inventory-management/pkg/docstore"
)

// Config holds connection settings. Prefix namespaces every key the store writes.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

const maxMergeAttempts = 5

type implStore struct {
	client *redis.Client
	prefix string
}

// New connects and pings the server.
func New(ctx context.Context, cfg Config) (docstore.Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewWithClient(client, cfg.Prefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, prefix string) docstore.Store {
	if prefix == "" {
		prefix = "inventory"
	}
	return &implStore{client: client, prefix: prefix}
}

func (s *implStore) indexKey(collection string) string {
	return s.prefix + ":" + collection
}

func (s *implStore) seqKey(collection string) string {
	return s.prefix + ":" + collection + ":_seq"
}

func (s *implStore) docKey(collection, id string) string {
	return s.prefix + ":" + collection + ":doc:" + id
}

func (s *implStore) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(collection), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]docstore.Document, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.docKey(collection, id)
	}
	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// deleted between ZRANGE and MGET
			continue
		}
		fields, err := decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		out = append(out, docstore.Document{ID: ids[i], Fields: fields})
	}
	return out, nil
}

func (s *implStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	raw, err := s.client.Get(ctx, s.docKey(collection, id)).Bytes()
	if errors.Is(err, redis.Nil) {
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

// Query filters in process; Redis has no secondary index over the JSON values.
func (s *implStore) Query(ctx context.Context, collection, field string, value any) ([]docstore.Document, error) {
	docs, err := s.List(ctx, collection)
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

func (s *implStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}

	seq, err := s.client.Incr(ctx, s.seqKey(collection)).Result()
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.docKey(collection, id), raw, 0)
		pipe.ZAdd(ctx, s.indexKey(collection), redis.Z{Score: float64(seq), Member: id})
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *implStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	key := s.docKey(collection, id)
	merge := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return docstore.ErrNotFound
		}
		if err != nil {
			return err
		}
		current, err := decode(raw)
		if err != nil {
			return err
		}
		maps.Copy(current, fields)
		merged, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, merged, 0)
			return nil
		})
		return err
	}

	// A concurrent writer touched the key between GET and EXEC; re-read and apply on top.
	var err error
	for range maxMergeAttempts {
		err = s.client.Watch(ctx, merge, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

func (s *implStore) Delete(ctx context.Context, collection, id string) error {
	var del *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, s.docKey(collection, id))
		pipe.ZRem(ctx, s.indexKey(collection), id)
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *implStore) Close() error {
	return s.client.Close()
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
