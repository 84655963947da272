package tools

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// InferenceName is reserved for LLM inference nodes; the registry refuses
// a tool under this name.
const InferenceName = "inference"

type registeredTool struct {
	tool   Tool
	schema *jsonschema.Schema
}

// Registry maps tool names to implementations. Input schemas are compiled
// at registration so execution-time validation cannot fail on a bad
// schema.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*registeredTool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*registeredTool)}
}

// Register adds a tool. Duplicate or reserved names are an error.
func (r *Registry) Register(t Tool) error {
	def := t.Definition()
	if def.Name == "" {
		return errors.New("tool name is required")
	}
	if def.Name == InferenceName {
		return fmt.Errorf("tool name %q is reserved for inference nodes", InferenceName)
	}

	var schema *jsonschema.Schema
	if len(def.InputSchema) > 0 {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def.InputSchema))
		if err != nil {
			return fmt.Errorf("tool %q: invalid input schema: %w", def.Name, err)
		}
		c := jsonschema.NewCompiler()
		resource := def.Name + ".json"
		if err := c.AddResource(resource, doc); err != nil {
			return fmt.Errorf("tool %q: failed to add input schema: %w", def.Name, err)
		}
		schema, err = c.Compile(resource)
		if err != nil {
			return fmt.Errorf("tool %q: failed to compile input schema: %w", def.Name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("tool %q is already registered", def.Name)
	}
	r.tools[def.Name] = &registeredTool{tool: t, schema: schema}
	return nil
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rt, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return rt.tool, true
}

// Definitions returns every registered tool definition, sorted by name.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]Definition, 0, len(r.tools))
	for _, rt := range r.tools {
		defs = append(defs, rt.tool.Definition())
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// DefinitionsJSON renders the definitions as the JSON array substituted
// for the decomposer's {{tools}} token.
func (r *Registry) DefinitionsJSON() (string, error) {
	raw, err := json.MarshalIndent(r.Definitions(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tool definitions: %w", err)
	}
	return string(raw), nil
}

// ValidateInput checks resolved params against the tool's input schema.
func (r *Registry) ValidateInput(name string, params map[string]interface{}) error {
	r.mu.RLock()
	rt, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown tool %q", name)
	}
	if rt.schema == nil {
		return nil
	}
	if params == nil {
		params = map[string]interface{}{}
	}
	doc, err := normalizeJSON(params)
	if err != nil {
		return fmt.Errorf("tool %q: params are not valid JSON: %w", name, err)
	}
	if err := rt.schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid input for tool %q: %w", name, err)
	}
	return nil
}

// Resolve merges dependency results into params through the tool's
// declared strategy, falling back to placeholder substitution. Unknown
// tools get the fallback; the execution-time lookup reports them.
func (r *Registry) Resolve(name string, params map[string]interface{}, deps []Dependency) map[string]interface{} {
	r.mu.RLock()
	rt := r.tools[name]
	r.mu.RUnlock()
	if rt != nil {
		if rp, ok := rt.tool.(resolverProvider); ok {
			if resolver := rp.DependencyResolver(); resolver != nil {
				return resolver(params, deps)
			}
		}
	}
	return DefaultResolve(params, deps)
}

// normalizeJSON round-trips a value through encoding/json so the schema
// validator only sees JSON-native types.
func normalizeJSON(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Options parameterizes the builtin tool set.
type Options struct {
	Mailer MailerConfig

	// SearchBaseURL overrides the web search endpoint, for tests.
	SearchBaseURL string
}

// NewBuiltinRegistry registers the eight builtin tools.
func NewBuiltinRegistry(opts Options) (*Registry, error) {
	r := NewRegistry()
	builtins := []Tool{
		NewShellTool(),
		NewReadFileTool(),
		NewWriteFileTool(),
		NewEditTool(),
		NewFetchURLsTool(),
		NewWebSearchToolWithBaseURL(opts.SearchBaseURL),
		NewSendEmailTool(opts.Mailer),
		NewWebhookTool(),
	}
	for _, t := range builtins {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}
