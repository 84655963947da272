package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	fetchTimeout = 30 * time.Second
	fetchMaxBody = 100_000
	fetchMaxURLs = 20
)

// FetchResult is one fetched page. The url field keeps results scannable
// by downstream fetchURLs dependency resolution.
type FetchResult struct {
	URL        string `json:"url"`
	StatusCode int    `json:"status_code,omitempty"`
	Content    string `json:"content,omitempty"`
	Error      string `json:"error,omitempty"`
}

// FetchURLsTool retrieves a list of URLs and returns their bodies.
type FetchURLsTool struct {
	client *resty.Client
}

// NewFetchURLsTool creates the fetchURLs tool with a retrying HTTP
// client.
func NewFetchURLsTool() *FetchURLsTool {
	client := resty.New().
		SetTimeout(fetchTimeout).
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
	return &FetchURLsTool{client: client}
}

func (t *FetchURLsTool) Definition() Definition {
	return Definition{
		Name:        "fetchURLs",
		Description: "Fetch one or more URLs over HTTP GET and return their contents. URLs found in dependency results are collected automatically.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"urls": {
					"type": "array",
					"items": {"type": "string"},
					"minItems": 1,
					"description": "The URLs to fetch"
				}
			},
			"required": ["urls"],
			"additionalProperties": false
		}`),
	}
}

type fetchInput struct {
	URLs []string `json:"urls"`
}

func (t *FetchURLsTool) Execute(ctx context.Context, params map[string]interface{}, ec *ExecContext) (interface{}, error) {
	var in fetchInput
	if err := decodeParams(params, &in); err != nil {
		return nil, err
	}
	if len(in.URLs) == 0 {
		return nil, errors.New("urls is required")
	}
	urls := in.URLs
	if len(urls) > fetchMaxURLs {
		urls = urls[:fetchMaxURLs]
	}

	results := make([]FetchResult, 0, len(urls))
	failures := 0
	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := t.fetchOne(ctx, url)
		if res.Error != "" {
			failures++
		}
		ec.Emit().Progress(fmt.Sprintf("fetched %s (%d/%d)", url, len(results)+1, len(urls)))
		results = append(results, res)
	}

	if failures == len(results) {
		return nil, fmt.Errorf("all %d fetches failed; first error: %s", failures, results[0].Error)
	}
	return results, nil
}

func (t *FetchURLsTool) fetchOne(ctx context.Context, url string) FetchResult {
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("User-Agent", "taskdag/1.0").
		Get(url)
	if err != nil {
		return FetchResult{URL: url, Error: err.Error()}
	}

	body := resp.String()
	if len(body) > fetchMaxBody {
		body = body[:fetchMaxBody] + "\n... [content truncated]"
	}
	res := FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode(),
		Content:    body,
	}
	if !resp.IsSuccess() {
		res.Error = fmt.Sprintf("unexpected status code %d", resp.StatusCode())
	}
	return res
}

// DependencyResolver collects URLs across every dependency into the urls
// parameter: string results go through URL extraction, array results are
// scanned for url fields.
func (t *FetchURLsTool) DependencyResolver() DependencyResolver {
	return func(params map[string]interface{}, deps []Dependency) map[string]interface{} {
		out := DefaultResolve(params, deps)
		if len(deps) == 0 {
			return out
		}
		urls := CollectURLs(out["urls"], deps)
		if len(urls) == 0 {
			return out
		}
		generic := make([]interface{}, len(urls))
		for i, u := range urls {
			generic[i] = u
		}
		merged := make(map[string]interface{}, len(out)+1)
		for k, v := range out {
			merged[k] = v
		}
		merged["urls"] = generic
		return merged
	}
}
