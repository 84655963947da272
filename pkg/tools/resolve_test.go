package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstituteResultPlaceholders(t *testing.T) {
	deps := []Dependency{
		{TaskID: "001", Result: "forecast: sunny"},
		{TaskID: "003", Result: map[string]interface{}{"temp": 21.5}},
	}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single placeholder",
			input: "Summarize: <Result from Task 001>",
			want:  "Summarize: forecast: sunny",
		},
		{
			name:  "plural and of forms",
			input: "<Results of Task 001> / <Result of Task 001>",
			want:  "forecast: sunny / forecast: sunny",
		},
		{
			name:  "repeated occurrences each replaced",
			input: "<Result from Task 003> then again <Result from Task 003>",
			want:  `{"temp":21.5} then again {"temp":21.5}`,
		},
		{
			name:  "unpadded numeric reference",
			input: "use <Result from Task 3>",
			want:  `use {"temp":21.5}`,
		},
		{
			name:  "unknown task left alone",
			input: "<Result from Task 009>",
			want:  "<Result from Task 009>",
		},
		{
			name:  "no placeholder",
			input: "plain text",
			want:  "plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubstituteResultPlaceholders(tt.input, deps))
		})
	}
}

func TestDefaultResolveWalksNestedParams(t *testing.T) {
	deps := []Dependency{{TaskID: "001", Result: "value-1"}}
	params := map[string]interface{}{
		"top": "<Result from Task 001>",
		"nested": map[string]interface{}{
			"inner": "prefix <Result from Task 001>",
		},
		"list":   []interface{}{"<Result from Task 001>", 42.0},
		"number": 7.0,
	}

	resolved := DefaultResolve(params, deps)

	assert.Equal(t, "value-1", resolved["top"])
	assert.Equal(t, "prefix value-1", resolved["nested"].(map[string]interface{})["inner"])
	assert.Equal(t, []interface{}{"value-1", 42.0}, resolved["list"])
	assert.Equal(t, 7.0, resolved["number"])

	// The input map is not mutated.
	assert.Equal(t, "<Result from Task 001>", params["top"])
}

func TestStringifyResult(t *testing.T) {
	assert.Equal(t, "", StringifyResult(nil))
	assert.Equal(t, "hello", StringifyResult("hello"))
	assert.Equal(t, `{"k":"v"}`, StringifyResult(map[string]interface{}{"k": "v"}))
	assert.Equal(t, `[1,2]`, StringifyResult([]interface{}{1.0, 2.0}))
	assert.Equal(t, "quoted", StringifyResult(json.RawMessage(`"quoted"`)))
	assert.Equal(t, `{"a":1}`, StringifyResult(json.RawMessage(`{"a":1}`)))
}

func TestJoinDependencyContent(t *testing.T) {
	deps := []Dependency{
		{TaskID: "001", Result: "first line"},
		{TaskID: "002", Result: map[string]interface{}{"content": "second line", "extra": true}},
		{TaskID: "003", Result: map[string]interface{}{"status": "ok"}},
	}
	assert.Equal(t, "first line\nsecond line\n{\"status\":\"ok\"}", JoinDependencyContent(deps))
}

func TestExtractURLs(t *testing.T) {
	text := `See https://example.com/a, then http://example.org/b. Ignore ftp://x.`
	assert.Equal(t, []string{"https://example.com/a", "http://example.org/b"}, ExtractURLs(text))
}

func TestCollectURLs(t *testing.T) {
	deps := []Dependency{
		{TaskID: "001", Result: "read https://example.com/doc for details"},
		{TaskID: "002", Result: []interface{}{
			map[string]interface{}{"title": "hit", "url": "https://example.com/hit"},
			map[string]interface{}{"title": "no url here"},
			"inline https://example.com/inline",
		}},
		{TaskID: "003", Result: "duplicate https://example.com/doc"},
	}

	urls := CollectURLs([]interface{}{"https://declared.example.com"}, deps)
	assert.Equal(t, []string{
		"https://declared.example.com",
		"https://example.com/doc",
		"https://example.com/hit",
		"https://example.com/inline",
	}, urls)
}

func TestCollectURLsNormalizesTypedResults(t *testing.T) {
	// webSearch results arrive as a typed slice before persistence.
	deps := []Dependency{
		{TaskID: "001", Result: []SearchResult{
			{Title: "hit", URL: "https://example.com/typed"},
		}},
	}
	assert.Equal(t, []string{"https://example.com/typed"}, CollectURLs(nil, deps))
}

func TestWriteFileResolverJoinsContent(t *testing.T) {
	resolver := NewWriteFileTool().DependencyResolver()
	require.NotNil(t, resolver)

	deps := []Dependency{
		{TaskID: "001", Result: "chapter one"},
		{TaskID: "002", Result: "chapter two"},
	}
	resolved := resolver(map[string]interface{}{
		"path":    "report.md",
		"content": "<Result from Task 001>",
	}, deps)

	assert.Equal(t, "report.md", resolved["path"])
	assert.Equal(t, "chapter one\nchapter two", resolved["content"])
}

func TestWriteFileResolverWithoutDeclaredContent(t *testing.T) {
	resolver := NewWriteFileTool().DependencyResolver()
	resolved := resolver(map[string]interface{}{"path": "x.txt"}, []Dependency{
		{TaskID: "001", Result: "data"},
	})
	_, ok := resolved["content"]
	assert.False(t, ok)
}

func TestSendEmailResolverFillsFirstAttachment(t *testing.T) {
	resolver := NewSendEmailTool(MailerConfig{}).DependencyResolver()
	require.NotNil(t, resolver)

	deps := []Dependency{{TaskID: "001", Result: "report body"}}
	resolved := resolver(map[string]interface{}{
		"to":      []interface{}{"ada@example.com"},
		"subject": "weekly",
		"body":    "see attachment",
		"attachments": []interface{}{
			map[string]interface{}{"filename": "report.txt"},
		},
	}, deps)

	atts := resolved["attachments"].([]interface{})
	first := atts[0].(map[string]interface{})
	assert.Equal(t, "report body", first["content"])
	assert.Equal(t, "report.txt", first["filename"])
}

func TestSendEmailResolverWithoutAttachments(t *testing.T) {
	resolver := NewSendEmailTool(MailerConfig{}).DependencyResolver()
	resolved := resolver(map[string]interface{}{
		"to":      []interface{}{"ada@example.com"},
		"subject": "s",
		"body":    "<Result from Task 001>",
	}, []Dependency{{TaskID: "001", Result: "inline"}})

	assert.Equal(t, "inline", resolved["body"])
	_, ok := resolved["attachments"]
	assert.False(t, ok)
}

func TestFetchResolverSetsURLsWhenNoneDeclared(t *testing.T) {
	resolver := NewFetchURLsTool().DependencyResolver()
	resolved := resolver(map[string]interface{}{
		"urls": []interface{}{},
	}, []Dependency{
		{TaskID: "001", Result: "https://example.com/from-dep"},
	})
	assert.Equal(t, []interface{}{"https://example.com/from-dep"}, resolved["urls"])
}
