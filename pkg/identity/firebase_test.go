package identity_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"

	"inventory-management/pkg/identity"
)

func newFirebase(t *testing.T, h http.HandlerFunc) identity.Provider {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	p, err := identity.NewFirebase(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("NewFirebase: %v", err)
	}
	return p
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": message},
	})
}

func TestFirebaseVerifyPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		p := newFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["email"] != "ana@example.com" || body["password"] != "s3nha" {
				t.Errorf("unexpected body %v", body)
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"localId": "uid-1",
				"email":   "ana@example.com",
				"idToken": "tok",
			})
		})

		u, err := p.VerifyPassword(ctx, "ana@example.com", "s3nha")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != "uid-1" || u.Email != "ana@example.com" {
			t.Errorf("unexpected user %+v", u)
		}
	})

	t.Run("Wrong password", func(t *testing.T) {
		p := newFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusBadRequest, "INVALID_PASSWORD")
		})
		if _, err := p.VerifyPassword(ctx, "ana@example.com", "x"); !errors.Is(err, identity.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Lockout is not a credentials error", func(t *testing.T) {
		p := newFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusBadRequest, "TOO_MANY_ATTEMPTS_TRY_LATER")
		})
		_, err := p.VerifyPassword(ctx, "ana@example.com", "x")
		if err == nil || errors.Is(err, identity.ErrInvalidCredentials) {
			t.Errorf("expected a provider failure, got %v", err)
		}
	})

	t.Run("Server error", func(t *testing.T) {
		p := newFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusInternalServerError, "backend error")
		})
		_, err := p.VerifyPassword(ctx, "ana@example.com", "x")
		if err == nil || errors.Is(err, identity.ErrInvalidCredentials) {
			t.Errorf("expected a provider failure, got %v", err)
		}
	})
}
