package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

const (
	searchTimeout    = 30 * time.Second
	searchDefaultMax = 5
	searchMaxAllowed = 10
	duckDuckGoURL    = "https://html.duckduckgo.com/html/"
)

// SearchResult is one web search hit. The url field keeps results
// scannable by downstream fetchURLs dependency resolution.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// WebSearchTool searches the web through the DuckDuckGo HTML endpoint.
type WebSearchTool struct {
	client  *resty.Client
	baseURL string
}

// NewWebSearchTool creates the webSearch tool.
func NewWebSearchTool() *WebSearchTool { return NewWebSearchToolWithBaseURL("") }

// NewWebSearchToolWithBaseURL overrides the search endpoint, for tests.
func NewWebSearchToolWithBaseURL(baseURL string) *WebSearchTool {
	client := resty.New().
		SetTimeout(searchTimeout).
		SetRetryCount(2).
		SetRetryWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				var netErr net.Error
				return errors.As(err, &netErr) && netErr.Timeout()
			}
			code := r.StatusCode()
			return code == 429 || code >= 500
		})
	return &WebSearchTool{client: client, baseURL: baseURL}
}

func (t *WebSearchTool) Definition() Definition {
	return Definition{
		Name:        "webSearch",
		Description: "Search the web and return a list of results with title, url, and description.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"query": {
					"type": "string",
					"description": "The search query"
				},
				"max_results": {
					"type": "integer",
					"description": "Maximum number of results (default: 5, max: 10)"
				}
			},
			"required": ["query"],
			"additionalProperties": false
		}`),
	}
}

type searchInput struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

func (t *WebSearchTool) Execute(ctx context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error) {
	var in searchInput
	if err := decodeParams(params, &in); err != nil {
		return nil, err
	}
	if in.Query == "" {
		return nil, errors.New("query is required")
	}

	maxResults := in.MaxResults
	if maxResults <= 0 {
		maxResults = searchDefaultMax
	}
	maxResults = min(maxResults, searchMaxAllowed)

	endpoint := t.baseURL
	if endpoint == "" {
		endpoint = duckDuckGoURL
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{"q": in.Query}).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; taskdag/1.0)").
		Post(endpoint)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("search returned unexpected status code %d", resp.StatusCode())
	}

	results, err := parseSearchResults(resp.String(), maxResults)
	if err != nil {
		return nil, err
	}
	ec.Emit().Progress(fmt.Sprintf("found %d results for %q", len(results), in.Query))
	return results, nil
}

func parseSearchResults(htmlContent string, maxResults int) ([]SearchResult, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	results := make([]SearchResult, 0, maxResults)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(results) >= maxResults {
			return
		}
		if isResultNode(n) {
			if r := extractSearchResult(n); r != nil {
				results = append(results, *r)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results, nil
}

func isResultNode(n *html.Node) bool {
	if n.Type != html.ElementNode || n.Data != "div" {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "class" && strings.Contains(attr.Val, "result") && !strings.Contains(attr.Val, "results") {
			return true
		}
	}
	return false
}

func extractSearchResult(n *html.Node) *SearchResult {
	result := &SearchResult{}
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			if node.Data == "a" && hasClass(node, "result__a") {
				result.Title = textContent(node)
				result.URL = anchorURL(node)
			}
			if hasClass(node, "result__snippet") {
				result.Description = textContent(node)
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	if result.Title == "" || result.URL == "" {
		return nil
	}
	return result
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" && strings.Contains(attr.Val, class) {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var text strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			text.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(text.String())
}

func anchorURL(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			return decodeRedirectURL(attr.Val)
		}
	}
	return ""
}

// decodeRedirectURL unwraps DuckDuckGo's redirect form
// (//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com).
func decodeRedirectURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "//") {
		rawURL = "https:" + rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if uddg := parsed.Query().Get("uddg"); uddg != "" {
		return uddg
	}
	return rawURL
}
