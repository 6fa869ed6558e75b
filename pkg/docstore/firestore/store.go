// Package firestore backs docstore.Store with Cloud Firestore, the database the
// inventory app has always written to.
package firestore

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"inventory-management/pkg/docstore"
)

const datastoreScope = "https://www.googleapis.com/auth/datastore"

// Config selects the project and, optionally, a service-account key file.
// Without a key file Application Default Credentials are used.
// FIRESTORE_EMULATOR_HOST is honoured by the client library.
type Config struct {
	ProjectID       string
	CredentialsPath string
}

type implStore struct {
	client *firestore.Client
}

// New connects to Firestore.
func New(ctx context.Context, cfg Config) (docstore.Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("read credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, datastoreScope)
		if err != nil {
			return nil, fmt.Errorf("parse credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore.NewClient: %w", err)
	}
	return &implStore{client: client}, nil
}

func (s *implStore) doc(collection, id string) *firestore.DocumentRef {
	if id == "" || strings.Contains(id, "/") {
		return nil
	}
	return s.client.Collection(collection).Doc(id)
}

func (s *implStore) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err)
	}
	return toDocuments(snaps), nil
}

func (s *implStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	ref := s.doc(collection, id)
	if ref == nil {
		return docstore.Document{}, docstore.ErrNotFound
	}
	snap, err := ref.Get(ctx)
	if err != nil {
		return docstore.Document{}, mapError(err)
	}
	return docstore.Document{ID: snap.Ref.ID, Fields: snap.Data()}, nil
}

func (s *implStore) Query(ctx context.Context, collection, field string, value any) ([]docstore.Document, error) {
	snaps, err := s.client.Collection(collection).Where(field, "==", value).Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err)
	}
	return toDocuments(snaps), nil
}

func (s *implStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", mapError(err)
	}
	return ref.ID, nil
}

func (s *implStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	ref := s.doc(collection, id)
	if ref == nil {
		return docstore.ErrNotFound
	}
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{k}, Value: v})
	}
	if _, err := ref.Update(ctx, updates); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *implStore) Delete(ctx context.Context, collection, id string) error {
	ref := s.doc(collection, id)
	if ref == nil {
		return docstore.ErrNotFound
	}
	if _, err := ref.Delete(ctx, firestore.Exists); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *implStore) Close() error {
	return s.client.Close()
}

func toDocuments(snaps []*firestore.DocumentSnapshot) []docstore.Document {
	out := make([]docstore.Document, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, docstore.Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return out
}

func mapError(err error) error {
	if status.Code(err) == codes.NotFound {
		return docstore.ErrNotFound
	}
	return err
}
