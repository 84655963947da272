package tools

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Dependency is one upstream task result, in the declared dependency
// order.
type Dependency struct {
	TaskID string
	Result interface{}
}

// DependencyResolver merges upstream results into a task's parameters
// before schema validation. Tools declare one when plain placeholder
// substitution is not enough.
type DependencyResolver func(params map[string]interface{}, deps []Dependency) map[string]interface{}

// resolverProvider is implemented by tools with a custom strategy.
type resolverProvider interface {
	DependencyResolver() DependencyResolver
}

// Placeholder forms the decomposer emits to reference upstream output.
var resultPlaceholderRe = regexp.MustCompile(`<Results? (?:from|of) Task ([A-Za-z0-9_\-]+)>`)

// DefaultResolve substitutes result placeholders in every string
// parameter, including nested ones.
func DefaultResolve(params map[string]interface{}, deps []Dependency) map[string]interface{} {
	if len(deps) == 0 || len(params) == 0 {
		return params
	}
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		out[k] = substituteValue(v, deps)
	}
	return out
}

func substituteValue(v interface{}, deps []Dependency) interface{} {
	switch t := v.(type) {
	case string:
		return SubstituteResultPlaceholders(t, deps)
	case map[string]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, vv := range t {
			m[k] = substituteValue(vv, deps)
		}
		return m
	case []interface{}:
		s := make([]interface{}, len(t))
		for i, vv := range t {
			s[i] = substituteValue(vv, deps)
		}
		return s
	default:
		return v
	}
}

// SubstituteResultPlaceholders replaces every `<Result from Task N>`
// occurrence with the referenced dependency's stringified result.
// References to tasks outside the dependency list are left alone.
func SubstituteResultPlaceholders(s string, deps []Dependency) string {
	if len(deps) == 0 || !strings.Contains(s, "<Result") {
		return s
	}
	return resultPlaceholderRe.ReplaceAllStringFunc(s, func(match string) string {
		id := resultPlaceholderRe.FindStringSubmatch(match)[1]
		dep := findDependency(deps, id)
		if dep == nil {
			return match
		}
		return StringifyResult(dep.Result)
	})
}

func findDependency(deps []Dependency, id string) *Dependency {
	for i := range deps {
		if deps[i].TaskID == id {
			return &deps[i]
		}
	}
	// Tolerate unpadded numeric references ("Task 3" for task "003").
	if n, err := strconv.Atoi(id); err == nil {
		padded := fmt.Sprintf("%03d", n)
		for i := range deps {
			if deps[i].TaskID == padded {
				return &deps[i]
			}
		}
	}
	return nil
}

// StringifyResult renders any task result as text for parameter and
// prompt substitution. Strings pass through; everything else becomes
// compact JSON.
func StringifyResult(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.RawMessage:
		var decoded interface{}
		if err := json.Unmarshal(t, &decoded); err != nil {
			return string(t)
		}
		return StringifyResult(decoded)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

// JoinDependencyContent concatenates dependency results in declared
// order, joined by newlines. String results pass through, objects
// contribute their "content" field when present, anything else is
// stringified.
func JoinDependencyContent(deps []Dependency) string {
	parts := make([]string, 0, len(deps))
	for _, dep := range deps {
		switch t := dep.Result.(type) {
		case string:
			parts = append(parts, t)
		case map[string]interface{}:
			if c, ok := t["content"]; ok {
				parts = append(parts, StringifyResult(c))
				continue
			}
			parts = append(parts, StringifyResult(t))
		default:
			parts = append(parts, StringifyResult(dep.Result))
		}
	}
	return strings.Join(parts, "\n")
}

var urlRe = regexp.MustCompile(`https?://[^\s"'<>]+`)

// ExtractURLs pulls URLs out of free text, trimming trailing punctuation.
func ExtractURLs(s string) []string {
	matches := urlRe.FindAllString(s, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, strings.TrimRight(m, ".,;:!?)"))
	}
	return urls
}

// CollectURLs flattens URLs from declared parameters and dependency
// results: string results pass through extraction, array results are
// scanned for "url" fields. Order is preserved and duplicates dropped.
func CollectURLs(declared interface{}, deps []Dependency) []string {
	var urls []string
	seen := make(map[string]struct{})
	add := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" {
			return
		}
		if _, dup := seen[u]; dup {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}
	addFromValue := func(v interface{}) {
		switch t := v.(type) {
		case string:
			for _, u := range ExtractURLs(t) {
				add(u)
			}
		case []interface{}:
			for _, item := range t {
				switch it := item.(type) {
				case string:
					for _, u := range ExtractURLs(it) {
						add(u)
					}
				case map[string]interface{}:
					if u, ok := it["url"].(string); ok {
						add(u)
					}
				}
			}
		}
	}

	if declaredList, ok := declared.([]interface{}); ok {
		for _, item := range declaredList {
			if s, ok := item.(string); ok {
				for _, u := range ExtractURLs(s) {
					add(u)
				}
			}
		}
	}
	for _, dep := range deps {
		addFromValue(normalizeResult(dep.Result))
	}
	return urls
}

// normalizeResult converts typed results (raw JSON, struct slices) into
// generic JSON shapes so resolvers see one type vocabulary.
func normalizeResult(v interface{}) interface{} {
	switch v.(type) {
	case nil, string, map[string]interface{}, []interface{}:
		return v
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
