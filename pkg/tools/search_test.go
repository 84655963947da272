package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResultsPage = `<!DOCTYPE html>
<html><body>
<div class="serp">
  <div class="result web-result">
    <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Ffirst">First Hit</a>
    <span class="result__snippet">The first snippet.</span>
  </div>
  <div class="result web-result">
    <a class="result__a" href="https://example.org/second">Second Hit</a>
    <span class="result__snippet">The second snippet.</span>
  </div>
  <div class="result web-result">
    <a class="result__a" href="https://example.net/third">Third Hit</a>
  </div>
</div>
</body></html>`

func TestWebSearchParsesResults(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotQuery = r.PostForm.Get("q")
		_, _ = w.Write([]byte(searchResultsPage))
	}))
	defer srv.Close()

	tool := NewWebSearchToolWithBaseURL(srv.URL)
	res, err := tool.Execute(context.Background(), map[string]interface{}{
		"query": "weather berlin",
	}, testExecContext(t))
	require.NoError(t, err)

	assert.Equal(t, "weather berlin", gotQuery)

	results := res.([]SearchResult)
	require.Len(t, results, 3)
	assert.Equal(t, SearchResult{
		Title:       "First Hit",
		URL:         "https://example.com/first",
		Description: "The first snippet.",
	}, results[0])
	assert.Equal(t, "https://example.org/second", results[1].URL)
	assert.Empty(t, results[2].Description)
}

func TestWebSearchCapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(searchResultsPage))
	}))
	defer srv.Close()

	tool := NewWebSearchToolWithBaseURL(srv.URL)
	res, err := tool.Execute(context.Background(), map[string]interface{}{
		"query":       "anything",
		"max_results": 1,
	}, testExecContext(t))
	require.NoError(t, err)
	assert.Len(t, res.([]SearchResult), 1)
}

func TestWebSearchRequiresQuery(t *testing.T) {
	tool := NewWebSearchToolWithBaseURL("http://unused.invalid")
	_, err := tool.Execute(context.Background(), map[string]interface{}{}, testExecContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is required")
}

func TestWebSearchEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div class="no-results">nothing</div></body></html>`))
	}))
	defer srv.Close()

	tool := NewWebSearchToolWithBaseURL(srv.URL)
	res, err := tool.Execute(context.Background(), map[string]interface{}{
		"query": "gibberish",
	}, testExecContext(t))
	require.NoError(t, err)
	assert.Empty(t, res.([]SearchResult))
}

func TestDecodeRedirectURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "redirect wrapper",
			in:   "//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fpage",
			want: "https://example.com/page",
		},
		{
			name: "direct url",
			in:   "https://example.com/page",
			want: "https://example.com/page",
		},
		{
			name: "protocol relative without wrapper",
			in:   "//example.com/page",
			want: "https://example.com/page",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeRedirectURL(tt.in))
		})
	}
}
