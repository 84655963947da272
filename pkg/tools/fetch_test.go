package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchURLsReturnsBodies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a":
			_, _ = w.Write([]byte("content A"))
		case "/b":
			_, _ = w.Write([]byte("content B"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	res, err := NewFetchURLsTool().Execute(context.Background(), map[string]interface{}{
		"urls": []interface{}{srv.URL + "/a", srv.URL + "/b"},
	}, testExecContext(t))
	require.NoError(t, err)

	results := res.([]FetchResult)
	require.Len(t, results, 2)
	assert.Equal(t, srv.URL+"/a", results[0].URL)
	assert.Equal(t, http.StatusOK, results[0].StatusCode)
	assert.Equal(t, "content A", results[0].Content)
	assert.Equal(t, "content B", results[1].Content)
}

func TestFetchURLsRecordsPartialFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ok" {
			_, _ = w.Write([]byte("fine"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	res, err := NewFetchURLsTool().Execute(context.Background(), map[string]interface{}{
		"urls": []interface{}{srv.URL + "/ok", srv.URL + "/missing"},
	}, testExecContext(t))
	require.NoError(t, err)

	results := res.([]FetchResult)
	require.Len(t, results, 2)
	assert.Empty(t, results[0].Error)
	assert.Contains(t, results[1].Error, "404")
}

func TestFetchURLsFailsWhenAllFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewFetchURLsTool().Execute(context.Background(), map[string]interface{}{
		"urls": []interface{}{srv.URL + "/x", srv.URL + "/y"},
	}, testExecContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 fetches failed")
}

func TestFetchURLsRequiresURLs(t *testing.T) {
	_, err := NewFetchURLsTool().Execute(context.Background(), map[string]interface{}{}, testExecContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "urls is required")
}
