package tools

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookPostsPayload(t *testing.T) {
	var (
		gotMethod string
		gotHeader string
		gotBody   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Token")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	res, err := NewWebhookTool().Execute(context.Background(), map[string]interface{}{
		"url":     srv.URL,
		"headers": map[string]interface{}{"X-Token": "secret"},
		"payload": map[string]interface{}{"status": "done"},
	}, testExecContext(t))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "secret", gotHeader)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "done", payload["status"])

	out := res.(map[string]interface{})
	assert.Equal(t, http.StatusCreated, out["status_code"])
	assert.Equal(t, `{"ok":true}`, out["body"])
}

func TestWebhookCustomMethod(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	}))
	defer srv.Close()

	_, err := NewWebhookTool().Execute(context.Background(), map[string]interface{}{
		"url":    srv.URL,
		"method": "PUT",
	}, testExecContext(t))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestWebhookNonSuccessStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream broken"))
	}))
	defer srv.Close()

	_, err := NewWebhookTool().Execute(context.Background(), map[string]interface{}{
		"url": srv.URL,
	}, testExecContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
	assert.Contains(t, err.Error(), "upstream broken")
}

func TestWebhookRequiresURL(t *testing.T) {
	_, err := NewWebhookTool().Execute(context.Background(), map[string]interface{}{}, testExecContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "url is required")
}
