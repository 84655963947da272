package plan

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*\\n(.*?)```")
	anyFenceRe  = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*\\s*\\n(.*?)```")
)

// ExtractJSONBlock pulls the JSON payload out of an LLM response. It
// prefers a fence labelled json, falls back to the first fence of any
// label, and finally to the whole body.
func ExtractJSONBlock(content string) string {
	if m := jsonFenceRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := anyFenceRe.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(schemaJSON, &doc); err != nil {
			compileErr = fmt.Errorf("failed to unmarshal plan schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("plan.json", doc); err != nil {
			compileErr = fmt.Errorf("failed to add plan schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("plan.json")
	})
	return compiledSchema, compileErr
}

// ValidateDocument checks a decoded JSON document against the plan schema.
func ValidateDocument(doc any) error {
	s, err := schema()
	if err != nil {
		return err
	}
	return s.Validate(doc)
}

// Parse decodes raw JSON into a Plan. The two-step decode keeps parse
// errors (malformed JSON) distinct from schema errors (wrong shape), which
// the planner records as different retry reasons.
func Parse(raw string) (*Plan, error) {
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := ValidateDocument(doc); err != nil {
		return nil, &SchemaError{Err: err}
	}
	var p Plan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, &SchemaError{Err: err}
	}
	if err := p.ValidateReferences(); err != nil {
		return nil, &SchemaError{Err: err}
	}
	return &p, nil
}

// ValidateReferences checks that every dependency names a sub-task that
// exists in the plan (or the "none" marker). The JSON schema cannot express
// this cross-reference.
func (p *Plan) ValidateReferences() error {
	ids := make(map[string]struct{}, len(p.SubTasks))
	for _, t := range p.SubTasks {
		if _, dup := ids[t.ID]; dup {
			return fmt.Errorf("duplicate sub-task id %q", t.ID)
		}
		ids[t.ID] = struct{}{}
	}
	for _, t := range p.SubTasks {
		for _, dep := range t.RealDependencies() {
			if _, ok := ids[dep]; !ok {
				return fmt.Errorf("sub-task %q depends on unknown id %q", t.ID, dep)
			}
		}
	}
	return nil
}

// ParseError reports JSON that could not be decoded at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("plan is not valid JSON: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports JSON that decoded but does not match the plan shape.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string { return fmt.Sprintf("plan failed schema validation: %v", e.Err) }
func (e *SchemaError) Unwrap() error { return e.Err }
