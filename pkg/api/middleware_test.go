package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/taskdag/taskdag/test/database"
)

func TestBearerAuth(t *testing.T) {
	client := testdb.NewTestClient(t)
	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{}, withAuthToken("s3cret"))

	t.Run("requests without a token are rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/version", nil, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("a wrong token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("the bearer header is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("the access_token query parameter is accepted for websocket clients", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/version?access_token=s3cret", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("healthz stays open", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSecurityHeaders(t *testing.T) {
	client := testdb.NewTestClient(t)
	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{})

	w := doJSON(t, router, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
