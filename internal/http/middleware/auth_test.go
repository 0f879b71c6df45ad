package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"remotesync/internal/clients/identity"
	"remotesync/internal/http/middleware"

	"github.com/stretchr/testify/assert"
)

type verifierFunc func(ctx context.Context, token string) (*identity.User, error)

func (f verifierFunc) Verify(ctx context.Context, token string) (*identity.User, error) {
	return f(ctx, token)
}

func TestAuth_ValidToken(t *testing.T) {
	want := &identity.User{ID: "u1", Email: "tony@x.com"}

	verifier := verifierFunc(func(_ context.Context, token string) (*identity.User, error) {
		assert.Equal(t, "good-token", token)
		return want, nil
	})

	var got *identity.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = middleware.UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rr := httptest.NewRecorder()
	middleware.Auth(verifier)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, want, got)
}

func TestAuth_MissingHeader(t *testing.T) {
	verifier := verifierFunc(func(context.Context, string) (*identity.User, error) {
		t.Fatal("verifier must not be called")
		return nil, nil
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)

	rr := httptest.NewRecorder()
	middleware.Auth(verifier)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_WrongScheme(t *testing.T) {
	verifier := verifierFunc(func(context.Context, string) (*identity.User, error) {
		t.Fatal("verifier must not be called")
		return nil, nil
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rr := httptest.NewRecorder()
	middleware.Auth(verifier)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_RejectedToken(t *testing.T) {
	verifier := verifierFunc(func(context.Context, string) (*identity.User, error) {
		return nil, errors.New("token expired")
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	req.Header.Set("Authorization", "Bearer stale-token")

	rr := httptest.NewRecorder()
	middleware.Auth(verifier)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
