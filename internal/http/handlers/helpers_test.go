package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/just-nibble/standup-service/internal/auth"
	"github.com/just-nibble/standup-service/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:          1,
		GithubID:    42,
		Login:       "dev",
		Email:       "dev@example.com",
		AccessToken: "gho_token",
	}
}

// serve routes one request through a mux so that path values resolve the
// same way they do in production.
func serve(t *testing.T, method, pattern, target string, body io.Reader, user *domain.User, handler http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(method+" "+pattern, handler)

	req := httptest.NewRequest(method, target, body)
	if user != nil {
		req = req.WithContext(auth.WithUser(req.Context(), user))
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
