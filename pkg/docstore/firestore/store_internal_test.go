package firestore

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"inventory-management/pkg/docstore"
)

func TestMapError(t *testing.T) {
	t.Run("NotFound becomes ErrNotFound", func(t *testing.T) {
		err := mapError(status.Error(codes.NotFound, "no such document"))
		if !errors.Is(err, docstore.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Other codes pass through", func(t *testing.T) {
		in := status.Error(codes.Unavailable, "connection reset")
		if err := mapError(in); err != in {
			t.Errorf("expected error unchanged, got %v", err)
		}
	})
}

func TestDocRejectsInvalidIDs(t *testing.T) {
	s := &implStore{}
	for _, id := range []string{"", "a/b"} {
		if ref := s.doc("categorias", id); ref != nil {
			t.Errorf("expected nil ref for %q", id)
		}
	}
}
