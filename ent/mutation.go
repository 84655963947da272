// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/taskdag/taskdag/ent/agent"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/predicate"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/ent/substep"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent        = "Agent"
	TypeDag          = "Dag"
	TypeDagExecution = "DagExecution"
	TypeStopRequest  = "StopRequest"
	TypeSubStep      = "SubStep"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	version         *int
	addversion      *int
	prompt_template *string
	provider        *string
	model           *string
	active          *bool
	metadata        *map[string]interface{}
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Agent, error)
	predicates      []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AgentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AgentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AgentMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *AgentMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AgentMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AgentMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetPromptTemplate sets the "prompt_template" field.
func (m *AgentMutation) SetPromptTemplate(s string) {
	m.prompt_template = &s
}

// PromptTemplate returns the value of the "prompt_template" field in the mutation.
func (m *AgentMutation) PromptTemplate() (r string, exists bool) {
	v := m.prompt_template
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTemplate returns the old "prompt_template" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPromptTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTemplate: %w", err)
	}
	return oldValue.PromptTemplate, nil
}

// ResetPromptTemplate resets all changes to the "prompt_template" field.
func (m *AgentMutation) ResetPromptTemplate() {
	m.prompt_template = nil
}

// SetProvider sets the "provider" field.
func (m *AgentMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AgentMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *AgentMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[agent.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *AgentMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[agent.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *AgentMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, agent.FieldProvider)
}

// SetModel sets the "model" field.
func (m *AgentMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AgentMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AgentMutation) ClearModel() {
	m.model = nil
	m.clearedFields[agent.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AgentMutation) ModelCleared() bool {
	_, ok := m.clearedFields[agent.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AgentMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, agent.FieldModel)
}

// SetActive sets the "active" field.
func (m *AgentMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *AgentMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *AgentMutation) ResetActive() {
	m.active = nil
}

// SetMetadata sets the "metadata" field.
func (m *AgentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AgentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AgentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[agent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AgentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[agent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AgentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, agent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, agent.FieldName)
	}
	if m.version != nil {
		fields = append(fields, agent.FieldVersion)
	}
	if m.prompt_template != nil {
		fields = append(fields, agent.FieldPromptTemplate)
	}
	if m.provider != nil {
		fields = append(fields, agent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, agent.FieldModel)
	}
	if m.active != nil {
		fields = append(fields, agent.FieldActive)
	}
	if m.metadata != nil {
		fields = append(fields, agent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldName:
		return m.Name()
	case agent.FieldVersion:
		return m.Version()
	case agent.FieldPromptTemplate:
		return m.PromptTemplate()
	case agent.FieldProvider:
		return m.Provider()
	case agent.FieldModel:
		return m.Model()
	case agent.FieldActive:
		return m.Active()
	case agent.FieldMetadata:
		return m.Metadata()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldName:
		return m.OldName(ctx)
	case agent.FieldVersion:
		return m.OldVersion(ctx)
	case agent.FieldPromptTemplate:
		return m.OldPromptTemplate(ctx)
	case agent.FieldProvider:
		return m.OldProvider(ctx)
	case agent.FieldModel:
		return m.OldModel(ctx)
	case agent.FieldActive:
		return m.OldActive(ctx)
	case agent.FieldMetadata:
		return m.OldMetadata(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case agent.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agent.FieldPromptTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTemplate(v)
		return nil
	case agent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case agent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case agent.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case agent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, agent.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agent.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldProvider) {
		fields = append(fields, agent.FieldProvider)
	}
	if m.FieldCleared(agent.FieldModel) {
		fields = append(fields, agent.FieldModel)
	}
	if m.FieldCleared(agent.FieldMetadata) {
		fields = append(fields, agent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldProvider:
		m.ClearProvider()
		return nil
	case agent.FieldModel:
		m.ClearModel()
		return nil
	case agent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldName:
		m.ResetName()
		return nil
	case agent.FieldVersion:
		m.ResetVersion()
		return nil
	case agent.FieldPromptTemplate:
		m.ResetPromptTemplate()
		return nil
	case agent.FieldProvider:
		m.ResetProvider()
		return nil
	case agent.FieldModel:
		m.ResetModel()
		return nil
	case agent.FieldActive:
		m.ResetActive()
		return nil
	case agent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Agent edge %s", name)
}

// DagMutation represents an operation that mutates the Dag nodes in the graph.
type DagMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	status                  *dag.Status
	result                  *map[string]interface{}
	params                  *map[string]interface{}
	agent_name              *string
	dag_title               *string
	cron_schedule           *string
	schedule_active         *bool
	last_run_at             *time.Time
	timezone                *string
	planning_total_usage    *map[string]interface{}
	planning_total_cost_usd *string
	planning_attempts       *[]map[string]interface{}
	appendplanning_attempts []map[string]interface{}
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	executions              map[string]struct{}
	removedexecutions       map[string]struct{}
	clearedexecutions       bool
	done                    bool
	oldValue                func(context.Context) (*Dag, error)
	predicates              []predicate.Dag
}

var _ ent.Mutation = (*DagMutation)(nil)

// dagOption allows management of the mutation configuration using functional options.
type dagOption func(*DagMutation)

// newDagMutation creates new mutation for the Dag entity.
func newDagMutation(c config, op Op, opts ...dagOption) *DagMutation {
	m := &DagMutation{
		config:        c,
		op:            op,
		typ:           TypeDag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDagID sets the ID field of the mutation.
func withDagID(id string) dagOption {
	return func(m *DagMutation) {
		var (
			err   error
			once  sync.Once
			value *Dag
		)
		m.oldValue = func(ctx context.Context) (*Dag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Dag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDag sets the old Dag of the mutation.
func withDag(node *Dag) dagOption {
	return func(m *DagMutation) {
		m.oldValue = func(context.Context) (*Dag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Dag entities.
func (m *DagMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DagMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DagMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Dag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *DagMutation) SetStatus(d dag.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DagMutation) Status() (r dag.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldStatus(ctx context.Context) (v dag.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DagMutation) ResetStatus() {
	m.status = nil
}

// SetResult sets the "result" field.
func (m *DagMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *DagMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *DagMutation) ClearResult() {
	m.result = nil
	m.clearedFields[dag.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *DagMutation) ResultCleared() bool {
	_, ok := m.clearedFields[dag.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *DagMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, dag.FieldResult)
}

// SetParams sets the "params" field.
func (m *DagMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *DagMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *DagMutation) ClearParams() {
	m.params = nil
	m.clearedFields[dag.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *DagMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[dag.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *DagMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, dag.FieldParams)
}

// SetAgentName sets the "agent_name" field.
func (m *DagMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *DagMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *DagMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetDagTitle sets the "dag_title" field.
func (m *DagMutation) SetDagTitle(s string) {
	m.dag_title = &s
}

// DagTitle returns the value of the "dag_title" field in the mutation.
func (m *DagMutation) DagTitle() (r string, exists bool) {
	v := m.dag_title
	if v == nil {
		return
	}
	return *v, true
}

// OldDagTitle returns the old "dag_title" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldDagTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDagTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDagTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDagTitle: %w", err)
	}
	return oldValue.DagTitle, nil
}

// ClearDagTitle clears the value of the "dag_title" field.
func (m *DagMutation) ClearDagTitle() {
	m.dag_title = nil
	m.clearedFields[dag.FieldDagTitle] = struct{}{}
}

// DagTitleCleared returns if the "dag_title" field was cleared in this mutation.
func (m *DagMutation) DagTitleCleared() bool {
	_, ok := m.clearedFields[dag.FieldDagTitle]
	return ok
}

// ResetDagTitle resets all changes to the "dag_title" field.
func (m *DagMutation) ResetDagTitle() {
	m.dag_title = nil
	delete(m.clearedFields, dag.FieldDagTitle)
}

// SetCronSchedule sets the "cron_schedule" field.
func (m *DagMutation) SetCronSchedule(s string) {
	m.cron_schedule = &s
}

// CronSchedule returns the value of the "cron_schedule" field in the mutation.
func (m *DagMutation) CronSchedule() (r string, exists bool) {
	v := m.cron_schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldCronSchedule returns the old "cron_schedule" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldCronSchedule(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronSchedule: %w", err)
	}
	return oldValue.CronSchedule, nil
}

// ClearCronSchedule clears the value of the "cron_schedule" field.
func (m *DagMutation) ClearCronSchedule() {
	m.cron_schedule = nil
	m.clearedFields[dag.FieldCronSchedule] = struct{}{}
}

// CronScheduleCleared returns if the "cron_schedule" field was cleared in this mutation.
func (m *DagMutation) CronScheduleCleared() bool {
	_, ok := m.clearedFields[dag.FieldCronSchedule]
	return ok
}

// ResetCronSchedule resets all changes to the "cron_schedule" field.
func (m *DagMutation) ResetCronSchedule() {
	m.cron_schedule = nil
	delete(m.clearedFields, dag.FieldCronSchedule)
}

// SetScheduleActive sets the "schedule_active" field.
func (m *DagMutation) SetScheduleActive(b bool) {
	m.schedule_active = &b
}

// ScheduleActive returns the value of the "schedule_active" field in the mutation.
func (m *DagMutation) ScheduleActive() (r bool, exists bool) {
	v := m.schedule_active
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleActive returns the old "schedule_active" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldScheduleActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleActive: %w", err)
	}
	return oldValue.ScheduleActive, nil
}

// ResetScheduleActive resets all changes to the "schedule_active" field.
func (m *DagMutation) ResetScheduleActive() {
	m.schedule_active = nil
}

// SetLastRunAt sets the "last_run_at" field.
func (m *DagMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *DagMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *DagMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[dag.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *DagMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[dag.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *DagMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, dag.FieldLastRunAt)
}

// SetTimezone sets the "timezone" field.
func (m *DagMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *DagMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *DagMutation) ResetTimezone() {
	m.timezone = nil
}

// SetPlanningTotalUsage sets the "planning_total_usage" field.
func (m *DagMutation) SetPlanningTotalUsage(value map[string]interface{}) {
	m.planning_total_usage = &value
}

// PlanningTotalUsage returns the value of the "planning_total_usage" field in the mutation.
func (m *DagMutation) PlanningTotalUsage() (r map[string]interface{}, exists bool) {
	v := m.planning_total_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanningTotalUsage returns the old "planning_total_usage" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldPlanningTotalUsage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanningTotalUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanningTotalUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanningTotalUsage: %w", err)
	}
	return oldValue.PlanningTotalUsage, nil
}

// ClearPlanningTotalUsage clears the value of the "planning_total_usage" field.
func (m *DagMutation) ClearPlanningTotalUsage() {
	m.planning_total_usage = nil
	m.clearedFields[dag.FieldPlanningTotalUsage] = struct{}{}
}

// PlanningTotalUsageCleared returns if the "planning_total_usage" field was cleared in this mutation.
func (m *DagMutation) PlanningTotalUsageCleared() bool {
	_, ok := m.clearedFields[dag.FieldPlanningTotalUsage]
	return ok
}

// ResetPlanningTotalUsage resets all changes to the "planning_total_usage" field.
func (m *DagMutation) ResetPlanningTotalUsage() {
	m.planning_total_usage = nil
	delete(m.clearedFields, dag.FieldPlanningTotalUsage)
}

// SetPlanningTotalCostUsd sets the "planning_total_cost_usd" field.
func (m *DagMutation) SetPlanningTotalCostUsd(s string) {
	m.planning_total_cost_usd = &s
}

// PlanningTotalCostUsd returns the value of the "planning_total_cost_usd" field in the mutation.
func (m *DagMutation) PlanningTotalCostUsd() (r string, exists bool) {
	v := m.planning_total_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanningTotalCostUsd returns the old "planning_total_cost_usd" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldPlanningTotalCostUsd(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanningTotalCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanningTotalCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanningTotalCostUsd: %w", err)
	}
	return oldValue.PlanningTotalCostUsd, nil
}

// ClearPlanningTotalCostUsd clears the value of the "planning_total_cost_usd" field.
func (m *DagMutation) ClearPlanningTotalCostUsd() {
	m.planning_total_cost_usd = nil
	m.clearedFields[dag.FieldPlanningTotalCostUsd] = struct{}{}
}

// PlanningTotalCostUsdCleared returns if the "planning_total_cost_usd" field was cleared in this mutation.
func (m *DagMutation) PlanningTotalCostUsdCleared() bool {
	_, ok := m.clearedFields[dag.FieldPlanningTotalCostUsd]
	return ok
}

// ResetPlanningTotalCostUsd resets all changes to the "planning_total_cost_usd" field.
func (m *DagMutation) ResetPlanningTotalCostUsd() {
	m.planning_total_cost_usd = nil
	delete(m.clearedFields, dag.FieldPlanningTotalCostUsd)
}

// SetPlanningAttempts sets the "planning_attempts" field.
func (m *DagMutation) SetPlanningAttempts(value []map[string]interface{}) {
	m.planning_attempts = &value
	m.appendplanning_attempts = nil
}

// PlanningAttempts returns the value of the "planning_attempts" field in the mutation.
func (m *DagMutation) PlanningAttempts() (r []map[string]interface{}, exists bool) {
	v := m.planning_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanningAttempts returns the old "planning_attempts" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldPlanningAttempts(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanningAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanningAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanningAttempts: %w", err)
	}
	return oldValue.PlanningAttempts, nil
}

// AppendPlanningAttempts adds value to the "planning_attempts" field.
func (m *DagMutation) AppendPlanningAttempts(value []map[string]interface{}) {
	m.appendplanning_attempts = append(m.appendplanning_attempts, value...)
}

// AppendedPlanningAttempts returns the list of values that were appended to the "planning_attempts" field in this mutation.
func (m *DagMutation) AppendedPlanningAttempts() ([]map[string]interface{}, bool) {
	if len(m.appendplanning_attempts) == 0 {
		return nil, false
	}
	return m.appendplanning_attempts, true
}

// ClearPlanningAttempts clears the value of the "planning_attempts" field.
func (m *DagMutation) ClearPlanningAttempts() {
	m.planning_attempts = nil
	m.appendplanning_attempts = nil
	m.clearedFields[dag.FieldPlanningAttempts] = struct{}{}
}

// PlanningAttemptsCleared returns if the "planning_attempts" field was cleared in this mutation.
func (m *DagMutation) PlanningAttemptsCleared() bool {
	_, ok := m.clearedFields[dag.FieldPlanningAttempts]
	return ok
}

// ResetPlanningAttempts resets all changes to the "planning_attempts" field.
func (m *DagMutation) ResetPlanningAttempts() {
	m.planning_attempts = nil
	m.appendplanning_attempts = nil
	delete(m.clearedFields, dag.FieldPlanningAttempts)
}

// SetCreatedAt sets the "created_at" field.
func (m *DagMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DagMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DagMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DagMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DagMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Dag entity.
// If the Dag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DagMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddExecutionIDs adds the "executions" edge to the DagExecution entity by ids.
func (m *DagMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the DagExecution entity.
func (m *DagMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the DagExecution entity was cleared.
func (m *DagMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the DagExecution entity by IDs.
func (m *DagMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the DagExecution entity.
func (m *DagMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *DagMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *DagMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// Where appends a list predicates to the DagMutation builder.
func (m *DagMutation) Where(ps ...predicate.Dag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Dag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Dag).
func (m *DagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DagMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.status != nil {
		fields = append(fields, dag.FieldStatus)
	}
	if m.result != nil {
		fields = append(fields, dag.FieldResult)
	}
	if m.params != nil {
		fields = append(fields, dag.FieldParams)
	}
	if m.agent_name != nil {
		fields = append(fields, dag.FieldAgentName)
	}
	if m.dag_title != nil {
		fields = append(fields, dag.FieldDagTitle)
	}
	if m.cron_schedule != nil {
		fields = append(fields, dag.FieldCronSchedule)
	}
	if m.schedule_active != nil {
		fields = append(fields, dag.FieldScheduleActive)
	}
	if m.last_run_at != nil {
		fields = append(fields, dag.FieldLastRunAt)
	}
	if m.timezone != nil {
		fields = append(fields, dag.FieldTimezone)
	}
	if m.planning_total_usage != nil {
		fields = append(fields, dag.FieldPlanningTotalUsage)
	}
	if m.planning_total_cost_usd != nil {
		fields = append(fields, dag.FieldPlanningTotalCostUsd)
	}
	if m.planning_attempts != nil {
		fields = append(fields, dag.FieldPlanningAttempts)
	}
	if m.created_at != nil {
		fields = append(fields, dag.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dag.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dag.FieldStatus:
		return m.Status()
	case dag.FieldResult:
		return m.Result()
	case dag.FieldParams:
		return m.Params()
	case dag.FieldAgentName:
		return m.AgentName()
	case dag.FieldDagTitle:
		return m.DagTitle()
	case dag.FieldCronSchedule:
		return m.CronSchedule()
	case dag.FieldScheduleActive:
		return m.ScheduleActive()
	case dag.FieldLastRunAt:
		return m.LastRunAt()
	case dag.FieldTimezone:
		return m.Timezone()
	case dag.FieldPlanningTotalUsage:
		return m.PlanningTotalUsage()
	case dag.FieldPlanningTotalCostUsd:
		return m.PlanningTotalCostUsd()
	case dag.FieldPlanningAttempts:
		return m.PlanningAttempts()
	case dag.FieldCreatedAt:
		return m.CreatedAt()
	case dag.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dag.FieldStatus:
		return m.OldStatus(ctx)
	case dag.FieldResult:
		return m.OldResult(ctx)
	case dag.FieldParams:
		return m.OldParams(ctx)
	case dag.FieldAgentName:
		return m.OldAgentName(ctx)
	case dag.FieldDagTitle:
		return m.OldDagTitle(ctx)
	case dag.FieldCronSchedule:
		return m.OldCronSchedule(ctx)
	case dag.FieldScheduleActive:
		return m.OldScheduleActive(ctx)
	case dag.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case dag.FieldTimezone:
		return m.OldTimezone(ctx)
	case dag.FieldPlanningTotalUsage:
		return m.OldPlanningTotalUsage(ctx)
	case dag.FieldPlanningTotalCostUsd:
		return m.OldPlanningTotalCostUsd(ctx)
	case dag.FieldPlanningAttempts:
		return m.OldPlanningAttempts(ctx)
	case dag.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dag.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Dag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dag.FieldStatus:
		v, ok := value.(dag.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dag.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case dag.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case dag.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case dag.FieldDagTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDagTitle(v)
		return nil
	case dag.FieldCronSchedule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronSchedule(v)
		return nil
	case dag.FieldScheduleActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleActive(v)
		return nil
	case dag.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case dag.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case dag.FieldPlanningTotalUsage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanningTotalUsage(v)
		return nil
	case dag.FieldPlanningTotalCostUsd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanningTotalCostUsd(v)
		return nil
	case dag.FieldPlanningAttempts:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanningAttempts(v)
		return nil
	case dag.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dag.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Dag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DagMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DagMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DagMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Dag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DagMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dag.FieldResult) {
		fields = append(fields, dag.FieldResult)
	}
	if m.FieldCleared(dag.FieldParams) {
		fields = append(fields, dag.FieldParams)
	}
	if m.FieldCleared(dag.FieldDagTitle) {
		fields = append(fields, dag.FieldDagTitle)
	}
	if m.FieldCleared(dag.FieldCronSchedule) {
		fields = append(fields, dag.FieldCronSchedule)
	}
	if m.FieldCleared(dag.FieldLastRunAt) {
		fields = append(fields, dag.FieldLastRunAt)
	}
	if m.FieldCleared(dag.FieldPlanningTotalUsage) {
		fields = append(fields, dag.FieldPlanningTotalUsage)
	}
	if m.FieldCleared(dag.FieldPlanningTotalCostUsd) {
		fields = append(fields, dag.FieldPlanningTotalCostUsd)
	}
	if m.FieldCleared(dag.FieldPlanningAttempts) {
		fields = append(fields, dag.FieldPlanningAttempts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DagMutation) ClearField(name string) error {
	switch name {
	case dag.FieldResult:
		m.ClearResult()
		return nil
	case dag.FieldParams:
		m.ClearParams()
		return nil
	case dag.FieldDagTitle:
		m.ClearDagTitle()
		return nil
	case dag.FieldCronSchedule:
		m.ClearCronSchedule()
		return nil
	case dag.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	case dag.FieldPlanningTotalUsage:
		m.ClearPlanningTotalUsage()
		return nil
	case dag.FieldPlanningTotalCostUsd:
		m.ClearPlanningTotalCostUsd()
		return nil
	case dag.FieldPlanningAttempts:
		m.ClearPlanningAttempts()
		return nil
	}
	return fmt.Errorf("unknown Dag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DagMutation) ResetField(name string) error {
	switch name {
	case dag.FieldStatus:
		m.ResetStatus()
		return nil
	case dag.FieldResult:
		m.ResetResult()
		return nil
	case dag.FieldParams:
		m.ResetParams()
		return nil
	case dag.FieldAgentName:
		m.ResetAgentName()
		return nil
	case dag.FieldDagTitle:
		m.ResetDagTitle()
		return nil
	case dag.FieldCronSchedule:
		m.ResetCronSchedule()
		return nil
	case dag.FieldScheduleActive:
		m.ResetScheduleActive()
		return nil
	case dag.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case dag.FieldTimezone:
		m.ResetTimezone()
		return nil
	case dag.FieldPlanningTotalUsage:
		m.ResetPlanningTotalUsage()
		return nil
	case dag.FieldPlanningTotalCostUsd:
		m.ResetPlanningTotalCostUsd()
		return nil
	case dag.FieldPlanningAttempts:
		m.ResetPlanningAttempts()
		return nil
	case dag.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dag.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Dag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DagMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.executions != nil {
		edges = append(edges, dag.EdgeExecutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dag.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedexecutions != nil {
		edges = append(edges, dag.EdgeExecutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DagMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dag.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecutions {
		edges = append(edges, dag.EdgeExecutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DagMutation) EdgeCleared(name string) bool {
	switch name {
	case dag.EdgeExecutions:
		return m.clearedexecutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DagMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Dag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DagMutation) ResetEdge(name string) error {
	switch name {
	case dag.EdgeExecutions:
		m.ResetExecutions()
		return nil
	}
	return fmt.Errorf("unknown Dag edge %s", name)
}

// DagExecutionMutation represents an operation that mutates the DagExecution nodes in the graph.
type DagExecutionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	original_request   *string
	primary_intent     *string
	status             *dagexecution.Status
	started_at         *time.Time
	completed_at       *time.Time
	duration_ms        *int64
	addduration_ms     *int64
	total_tasks        *int
	addtotal_tasks     *int
	completed_tasks    *int
	addcompleted_tasks *int
	failed_tasks       *int
	addfailed_tasks    *int
	waiting_tasks      *int
	addwaiting_tasks   *int
	final_result       *string
	synthesis_result   *map[string]interface{}
	suspended_reason   *string
	suspended_at       *time.Time
	retry_count        *int
	addretry_count     *int
	last_retry_at      *time.Time
	total_usage        *map[string]interface{}
	total_cost_usd     *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	dag                *string
	cleareddag         bool
	sub_steps          map[string]struct{}
	removedsub_steps   map[string]struct{}
	clearedsub_steps   bool
	done               bool
	oldValue           func(context.Context) (*DagExecution, error)
	predicates         []predicate.DagExecution
}

var _ ent.Mutation = (*DagExecutionMutation)(nil)

// dagexecutionOption allows management of the mutation configuration using functional options.
type dagexecutionOption func(*DagExecutionMutation)

// newDagExecutionMutation creates new mutation for the DagExecution entity.
func newDagExecutionMutation(c config, op Op, opts ...dagexecutionOption) *DagExecutionMutation {
	m := &DagExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeDagExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDagExecutionID sets the ID field of the mutation.
func withDagExecutionID(id string) dagexecutionOption {
	return func(m *DagExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *DagExecution
		)
		m.oldValue = func(ctx context.Context) (*DagExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DagExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDagExecution sets the old DagExecution of the mutation.
func withDagExecution(node *DagExecution) dagexecutionOption {
	return func(m *DagExecutionMutation) {
		m.oldValue = func(context.Context) (*DagExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DagExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DagExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DagExecution entities.
func (m *DagExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DagExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DagExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DagExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDagID sets the "dag_id" field.
func (m *DagExecutionMutation) SetDagID(s string) {
	m.dag = &s
}

// DagID returns the value of the "dag_id" field in the mutation.
func (m *DagExecutionMutation) DagID() (r string, exists bool) {
	v := m.dag
	if v == nil {
		return
	}
	return *v, true
}

// OldDagID returns the old "dag_id" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldDagID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDagID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDagID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDagID: %w", err)
	}
	return oldValue.DagID, nil
}

// ClearDagID clears the value of the "dag_id" field.
func (m *DagExecutionMutation) ClearDagID() {
	m.dag = nil
	m.clearedFields[dagexecution.FieldDagID] = struct{}{}
}

// DagIDCleared returns if the "dag_id" field was cleared in this mutation.
func (m *DagExecutionMutation) DagIDCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldDagID]
	return ok
}

// ResetDagID resets all changes to the "dag_id" field.
func (m *DagExecutionMutation) ResetDagID() {
	m.dag = nil
	delete(m.clearedFields, dagexecution.FieldDagID)
}

// SetOriginalRequest sets the "original_request" field.
func (m *DagExecutionMutation) SetOriginalRequest(s string) {
	m.original_request = &s
}

// OriginalRequest returns the value of the "original_request" field in the mutation.
func (m *DagExecutionMutation) OriginalRequest() (r string, exists bool) {
	v := m.original_request
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalRequest returns the old "original_request" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldOriginalRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalRequest: %w", err)
	}
	return oldValue.OriginalRequest, nil
}

// ResetOriginalRequest resets all changes to the "original_request" field.
func (m *DagExecutionMutation) ResetOriginalRequest() {
	m.original_request = nil
}

// SetPrimaryIntent sets the "primary_intent" field.
func (m *DagExecutionMutation) SetPrimaryIntent(s string) {
	m.primary_intent = &s
}

// PrimaryIntent returns the value of the "primary_intent" field in the mutation.
func (m *DagExecutionMutation) PrimaryIntent() (r string, exists bool) {
	v := m.primary_intent
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryIntent returns the old "primary_intent" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldPrimaryIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryIntent: %w", err)
	}
	return oldValue.PrimaryIntent, nil
}

// ClearPrimaryIntent clears the value of the "primary_intent" field.
func (m *DagExecutionMutation) ClearPrimaryIntent() {
	m.primary_intent = nil
	m.clearedFields[dagexecution.FieldPrimaryIntent] = struct{}{}
}

// PrimaryIntentCleared returns if the "primary_intent" field was cleared in this mutation.
func (m *DagExecutionMutation) PrimaryIntentCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldPrimaryIntent]
	return ok
}

// ResetPrimaryIntent resets all changes to the "primary_intent" field.
func (m *DagExecutionMutation) ResetPrimaryIntent() {
	m.primary_intent = nil
	delete(m.clearedFields, dagexecution.FieldPrimaryIntent)
}

// SetStatus sets the "status" field.
func (m *DagExecutionMutation) SetStatus(d dagexecution.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DagExecutionMutation) Status() (r dagexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldStatus(ctx context.Context) (v dagexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DagExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *DagExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *DagExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *DagExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[dagexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *DagExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *DagExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, dagexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *DagExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *DagExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *DagExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[dagexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *DagExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *DagExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, dagexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *DagExecutionMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *DagExecutionMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *DagExecutionMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *DagExecutionMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *DagExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[dagexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *DagExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *DagExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, dagexecution.FieldDurationMs)
}

// SetTotalTasks sets the "total_tasks" field.
func (m *DagExecutionMutation) SetTotalTasks(i int) {
	m.total_tasks = &i
	m.addtotal_tasks = nil
}

// TotalTasks returns the value of the "total_tasks" field in the mutation.
func (m *DagExecutionMutation) TotalTasks() (r int, exists bool) {
	v := m.total_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTasks returns the old "total_tasks" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldTotalTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTasks: %w", err)
	}
	return oldValue.TotalTasks, nil
}

// AddTotalTasks adds i to the "total_tasks" field.
func (m *DagExecutionMutation) AddTotalTasks(i int) {
	if m.addtotal_tasks != nil {
		*m.addtotal_tasks += i
	} else {
		m.addtotal_tasks = &i
	}
}

// AddedTotalTasks returns the value that was added to the "total_tasks" field in this mutation.
func (m *DagExecutionMutation) AddedTotalTasks() (r int, exists bool) {
	v := m.addtotal_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTasks resets all changes to the "total_tasks" field.
func (m *DagExecutionMutation) ResetTotalTasks() {
	m.total_tasks = nil
	m.addtotal_tasks = nil
}

// SetCompletedTasks sets the "completed_tasks" field.
func (m *DagExecutionMutation) SetCompletedTasks(i int) {
	m.completed_tasks = &i
	m.addcompleted_tasks = nil
}

// CompletedTasks returns the value of the "completed_tasks" field in the mutation.
func (m *DagExecutionMutation) CompletedTasks() (r int, exists bool) {
	v := m.completed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedTasks returns the old "completed_tasks" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldCompletedTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedTasks: %w", err)
	}
	return oldValue.CompletedTasks, nil
}

// AddCompletedTasks adds i to the "completed_tasks" field.
func (m *DagExecutionMutation) AddCompletedTasks(i int) {
	if m.addcompleted_tasks != nil {
		*m.addcompleted_tasks += i
	} else {
		m.addcompleted_tasks = &i
	}
}

// AddedCompletedTasks returns the value that was added to the "completed_tasks" field in this mutation.
func (m *DagExecutionMutation) AddedCompletedTasks() (r int, exists bool) {
	v := m.addcompleted_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedTasks resets all changes to the "completed_tasks" field.
func (m *DagExecutionMutation) ResetCompletedTasks() {
	m.completed_tasks = nil
	m.addcompleted_tasks = nil
}

// SetFailedTasks sets the "failed_tasks" field.
func (m *DagExecutionMutation) SetFailedTasks(i int) {
	m.failed_tasks = &i
	m.addfailed_tasks = nil
}

// FailedTasks returns the value of the "failed_tasks" field in the mutation.
func (m *DagExecutionMutation) FailedTasks() (r int, exists bool) {
	v := m.failed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedTasks returns the old "failed_tasks" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldFailedTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedTasks: %w", err)
	}
	return oldValue.FailedTasks, nil
}

// AddFailedTasks adds i to the "failed_tasks" field.
func (m *DagExecutionMutation) AddFailedTasks(i int) {
	if m.addfailed_tasks != nil {
		*m.addfailed_tasks += i
	} else {
		m.addfailed_tasks = &i
	}
}

// AddedFailedTasks returns the value that was added to the "failed_tasks" field in this mutation.
func (m *DagExecutionMutation) AddedFailedTasks() (r int, exists bool) {
	v := m.addfailed_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedTasks resets all changes to the "failed_tasks" field.
func (m *DagExecutionMutation) ResetFailedTasks() {
	m.failed_tasks = nil
	m.addfailed_tasks = nil
}

// SetWaitingTasks sets the "waiting_tasks" field.
func (m *DagExecutionMutation) SetWaitingTasks(i int) {
	m.waiting_tasks = &i
	m.addwaiting_tasks = nil
}

// WaitingTasks returns the value of the "waiting_tasks" field in the mutation.
func (m *DagExecutionMutation) WaitingTasks() (r int, exists bool) {
	v := m.waiting_tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldWaitingTasks returns the old "waiting_tasks" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldWaitingTasks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWaitingTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWaitingTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWaitingTasks: %w", err)
	}
	return oldValue.WaitingTasks, nil
}

// AddWaitingTasks adds i to the "waiting_tasks" field.
func (m *DagExecutionMutation) AddWaitingTasks(i int) {
	if m.addwaiting_tasks != nil {
		*m.addwaiting_tasks += i
	} else {
		m.addwaiting_tasks = &i
	}
}

// AddedWaitingTasks returns the value that was added to the "waiting_tasks" field in this mutation.
func (m *DagExecutionMutation) AddedWaitingTasks() (r int, exists bool) {
	v := m.addwaiting_tasks
	if v == nil {
		return
	}
	return *v, true
}

// ResetWaitingTasks resets all changes to the "waiting_tasks" field.
func (m *DagExecutionMutation) ResetWaitingTasks() {
	m.waiting_tasks = nil
	m.addwaiting_tasks = nil
}

// SetFinalResult sets the "final_result" field.
func (m *DagExecutionMutation) SetFinalResult(s string) {
	m.final_result = &s
}

// FinalResult returns the value of the "final_result" field in the mutation.
func (m *DagExecutionMutation) FinalResult() (r string, exists bool) {
	v := m.final_result
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalResult returns the old "final_result" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldFinalResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalResult: %w", err)
	}
	return oldValue.FinalResult, nil
}

// ClearFinalResult clears the value of the "final_result" field.
func (m *DagExecutionMutation) ClearFinalResult() {
	m.final_result = nil
	m.clearedFields[dagexecution.FieldFinalResult] = struct{}{}
}

// FinalResultCleared returns if the "final_result" field was cleared in this mutation.
func (m *DagExecutionMutation) FinalResultCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldFinalResult]
	return ok
}

// ResetFinalResult resets all changes to the "final_result" field.
func (m *DagExecutionMutation) ResetFinalResult() {
	m.final_result = nil
	delete(m.clearedFields, dagexecution.FieldFinalResult)
}

// SetSynthesisResult sets the "synthesis_result" field.
func (m *DagExecutionMutation) SetSynthesisResult(value map[string]interface{}) {
	m.synthesis_result = &value
}

// SynthesisResult returns the value of the "synthesis_result" field in the mutation.
func (m *DagExecutionMutation) SynthesisResult() (r map[string]interface{}, exists bool) {
	v := m.synthesis_result
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesisResult returns the old "synthesis_result" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldSynthesisResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesisResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesisResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesisResult: %w", err)
	}
	return oldValue.SynthesisResult, nil
}

// ClearSynthesisResult clears the value of the "synthesis_result" field.
func (m *DagExecutionMutation) ClearSynthesisResult() {
	m.synthesis_result = nil
	m.clearedFields[dagexecution.FieldSynthesisResult] = struct{}{}
}

// SynthesisResultCleared returns if the "synthesis_result" field was cleared in this mutation.
func (m *DagExecutionMutation) SynthesisResultCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldSynthesisResult]
	return ok
}

// ResetSynthesisResult resets all changes to the "synthesis_result" field.
func (m *DagExecutionMutation) ResetSynthesisResult() {
	m.synthesis_result = nil
	delete(m.clearedFields, dagexecution.FieldSynthesisResult)
}

// SetSuspendedReason sets the "suspended_reason" field.
func (m *DagExecutionMutation) SetSuspendedReason(s string) {
	m.suspended_reason = &s
}

// SuspendedReason returns the value of the "suspended_reason" field in the mutation.
func (m *DagExecutionMutation) SuspendedReason() (r string, exists bool) {
	v := m.suspended_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendedReason returns the old "suspended_reason" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldSuspendedReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendedReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendedReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendedReason: %w", err)
	}
	return oldValue.SuspendedReason, nil
}

// ClearSuspendedReason clears the value of the "suspended_reason" field.
func (m *DagExecutionMutation) ClearSuspendedReason() {
	m.suspended_reason = nil
	m.clearedFields[dagexecution.FieldSuspendedReason] = struct{}{}
}

// SuspendedReasonCleared returns if the "suspended_reason" field was cleared in this mutation.
func (m *DagExecutionMutation) SuspendedReasonCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldSuspendedReason]
	return ok
}

// ResetSuspendedReason resets all changes to the "suspended_reason" field.
func (m *DagExecutionMutation) ResetSuspendedReason() {
	m.suspended_reason = nil
	delete(m.clearedFields, dagexecution.FieldSuspendedReason)
}

// SetSuspendedAt sets the "suspended_at" field.
func (m *DagExecutionMutation) SetSuspendedAt(t time.Time) {
	m.suspended_at = &t
}

// SuspendedAt returns the value of the "suspended_at" field in the mutation.
func (m *DagExecutionMutation) SuspendedAt() (r time.Time, exists bool) {
	v := m.suspended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSuspendedAt returns the old "suspended_at" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldSuspendedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuspendedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuspendedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuspendedAt: %w", err)
	}
	return oldValue.SuspendedAt, nil
}

// ClearSuspendedAt clears the value of the "suspended_at" field.
func (m *DagExecutionMutation) ClearSuspendedAt() {
	m.suspended_at = nil
	m.clearedFields[dagexecution.FieldSuspendedAt] = struct{}{}
}

// SuspendedAtCleared returns if the "suspended_at" field was cleared in this mutation.
func (m *DagExecutionMutation) SuspendedAtCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldSuspendedAt]
	return ok
}

// ResetSuspendedAt resets all changes to the "suspended_at" field.
func (m *DagExecutionMutation) ResetSuspendedAt() {
	m.suspended_at = nil
	delete(m.clearedFields, dagexecution.FieldSuspendedAt)
}

// SetRetryCount sets the "retry_count" field.
func (m *DagExecutionMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *DagExecutionMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *DagExecutionMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *DagExecutionMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *DagExecutionMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastRetryAt sets the "last_retry_at" field.
func (m *DagExecutionMutation) SetLastRetryAt(t time.Time) {
	m.last_retry_at = &t
}

// LastRetryAt returns the value of the "last_retry_at" field in the mutation.
func (m *DagExecutionMutation) LastRetryAt() (r time.Time, exists bool) {
	v := m.last_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRetryAt returns the old "last_retry_at" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldLastRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRetryAt: %w", err)
	}
	return oldValue.LastRetryAt, nil
}

// ClearLastRetryAt clears the value of the "last_retry_at" field.
func (m *DagExecutionMutation) ClearLastRetryAt() {
	m.last_retry_at = nil
	m.clearedFields[dagexecution.FieldLastRetryAt] = struct{}{}
}

// LastRetryAtCleared returns if the "last_retry_at" field was cleared in this mutation.
func (m *DagExecutionMutation) LastRetryAtCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldLastRetryAt]
	return ok
}

// ResetLastRetryAt resets all changes to the "last_retry_at" field.
func (m *DagExecutionMutation) ResetLastRetryAt() {
	m.last_retry_at = nil
	delete(m.clearedFields, dagexecution.FieldLastRetryAt)
}

// SetTotalUsage sets the "total_usage" field.
func (m *DagExecutionMutation) SetTotalUsage(value map[string]interface{}) {
	m.total_usage = &value
}

// TotalUsage returns the value of the "total_usage" field in the mutation.
func (m *DagExecutionMutation) TotalUsage() (r map[string]interface{}, exists bool) {
	v := m.total_usage
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalUsage returns the old "total_usage" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldTotalUsage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalUsage: %w", err)
	}
	return oldValue.TotalUsage, nil
}

// ClearTotalUsage clears the value of the "total_usage" field.
func (m *DagExecutionMutation) ClearTotalUsage() {
	m.total_usage = nil
	m.clearedFields[dagexecution.FieldTotalUsage] = struct{}{}
}

// TotalUsageCleared returns if the "total_usage" field was cleared in this mutation.
func (m *DagExecutionMutation) TotalUsageCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldTotalUsage]
	return ok
}

// ResetTotalUsage resets all changes to the "total_usage" field.
func (m *DagExecutionMutation) ResetTotalUsage() {
	m.total_usage = nil
	delete(m.clearedFields, dagexecution.FieldTotalUsage)
}

// SetTotalCostUsd sets the "total_cost_usd" field.
func (m *DagExecutionMutation) SetTotalCostUsd(s string) {
	m.total_cost_usd = &s
}

// TotalCostUsd returns the value of the "total_cost_usd" field in the mutation.
func (m *DagExecutionMutation) TotalCostUsd() (r string, exists bool) {
	v := m.total_cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCostUsd returns the old "total_cost_usd" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldTotalCostUsd(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCostUsd: %w", err)
	}
	return oldValue.TotalCostUsd, nil
}

// ClearTotalCostUsd clears the value of the "total_cost_usd" field.
func (m *DagExecutionMutation) ClearTotalCostUsd() {
	m.total_cost_usd = nil
	m.clearedFields[dagexecution.FieldTotalCostUsd] = struct{}{}
}

// TotalCostUsdCleared returns if the "total_cost_usd" field was cleared in this mutation.
func (m *DagExecutionMutation) TotalCostUsdCleared() bool {
	_, ok := m.clearedFields[dagexecution.FieldTotalCostUsd]
	return ok
}

// ResetTotalCostUsd resets all changes to the "total_cost_usd" field.
func (m *DagExecutionMutation) ResetTotalCostUsd() {
	m.total_cost_usd = nil
	delete(m.clearedFields, dagexecution.FieldTotalCostUsd)
}

// SetCreatedAt sets the "created_at" field.
func (m *DagExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DagExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DagExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DagExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DagExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DagExecution entity.
// If the DagExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DagExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DagExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDag clears the "dag" edge to the Dag entity.
func (m *DagExecutionMutation) ClearDag() {
	m.cleareddag = true
	m.clearedFields[dagexecution.FieldDagID] = struct{}{}
}

// DagCleared reports if the "dag" edge to the Dag entity was cleared.
func (m *DagExecutionMutation) DagCleared() bool {
	return m.DagIDCleared() || m.cleareddag
}

// DagIDs returns the "dag" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DagID instead. It exists only for internal usage by the builders.
func (m *DagExecutionMutation) DagIDs() (ids []string) {
	if id := m.dag; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDag resets all changes to the "dag" edge.
func (m *DagExecutionMutation) ResetDag() {
	m.dag = nil
	m.cleareddag = false
}

// AddSubStepIDs adds the "sub_steps" edge to the SubStep entity by ids.
func (m *DagExecutionMutation) AddSubStepIDs(ids ...string) {
	if m.sub_steps == nil {
		m.sub_steps = make(map[string]struct{})
	}
	for i := range ids {
		m.sub_steps[ids[i]] = struct{}{}
	}
}

// ClearSubSteps clears the "sub_steps" edge to the SubStep entity.
func (m *DagExecutionMutation) ClearSubSteps() {
	m.clearedsub_steps = true
}

// SubStepsCleared reports if the "sub_steps" edge to the SubStep entity was cleared.
func (m *DagExecutionMutation) SubStepsCleared() bool {
	return m.clearedsub_steps
}

// RemoveSubStepIDs removes the "sub_steps" edge to the SubStep entity by IDs.
func (m *DagExecutionMutation) RemoveSubStepIDs(ids ...string) {
	if m.removedsub_steps == nil {
		m.removedsub_steps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sub_steps, ids[i])
		m.removedsub_steps[ids[i]] = struct{}{}
	}
}

// RemovedSubSteps returns the removed IDs of the "sub_steps" edge to the SubStep entity.
func (m *DagExecutionMutation) RemovedSubStepsIDs() (ids []string) {
	for id := range m.removedsub_steps {
		ids = append(ids, id)
	}
	return
}

// SubStepsIDs returns the "sub_steps" edge IDs in the mutation.
func (m *DagExecutionMutation) SubStepsIDs() (ids []string) {
	for id := range m.sub_steps {
		ids = append(ids, id)
	}
	return
}

// ResetSubSteps resets all changes to the "sub_steps" edge.
func (m *DagExecutionMutation) ResetSubSteps() {
	m.sub_steps = nil
	m.clearedsub_steps = false
	m.removedsub_steps = nil
}

// Where appends a list predicates to the DagExecutionMutation builder.
func (m *DagExecutionMutation) Where(ps ...predicate.DagExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DagExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DagExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DagExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DagExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DagExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DagExecution).
func (m *DagExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DagExecutionMutation) Fields() []string {
	fields := make([]string, 0, 21)
	if m.dag != nil {
		fields = append(fields, dagexecution.FieldDagID)
	}
	if m.original_request != nil {
		fields = append(fields, dagexecution.FieldOriginalRequest)
	}
	if m.primary_intent != nil {
		fields = append(fields, dagexecution.FieldPrimaryIntent)
	}
	if m.status != nil {
		fields = append(fields, dagexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, dagexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, dagexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, dagexecution.FieldDurationMs)
	}
	if m.total_tasks != nil {
		fields = append(fields, dagexecution.FieldTotalTasks)
	}
	if m.completed_tasks != nil {
		fields = append(fields, dagexecution.FieldCompletedTasks)
	}
	if m.failed_tasks != nil {
		fields = append(fields, dagexecution.FieldFailedTasks)
	}
	if m.waiting_tasks != nil {
		fields = append(fields, dagexecution.FieldWaitingTasks)
	}
	if m.final_result != nil {
		fields = append(fields, dagexecution.FieldFinalResult)
	}
	if m.synthesis_result != nil {
		fields = append(fields, dagexecution.FieldSynthesisResult)
	}
	if m.suspended_reason != nil {
		fields = append(fields, dagexecution.FieldSuspendedReason)
	}
	if m.suspended_at != nil {
		fields = append(fields, dagexecution.FieldSuspendedAt)
	}
	if m.retry_count != nil {
		fields = append(fields, dagexecution.FieldRetryCount)
	}
	if m.last_retry_at != nil {
		fields = append(fields, dagexecution.FieldLastRetryAt)
	}
	if m.total_usage != nil {
		fields = append(fields, dagexecution.FieldTotalUsage)
	}
	if m.total_cost_usd != nil {
		fields = append(fields, dagexecution.FieldTotalCostUsd)
	}
	if m.created_at != nil {
		fields = append(fields, dagexecution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dagexecution.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DagExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dagexecution.FieldDagID:
		return m.DagID()
	case dagexecution.FieldOriginalRequest:
		return m.OriginalRequest()
	case dagexecution.FieldPrimaryIntent:
		return m.PrimaryIntent()
	case dagexecution.FieldStatus:
		return m.Status()
	case dagexecution.FieldStartedAt:
		return m.StartedAt()
	case dagexecution.FieldCompletedAt:
		return m.CompletedAt()
	case dagexecution.FieldDurationMs:
		return m.DurationMs()
	case dagexecution.FieldTotalTasks:
		return m.TotalTasks()
	case dagexecution.FieldCompletedTasks:
		return m.CompletedTasks()
	case dagexecution.FieldFailedTasks:
		return m.FailedTasks()
	case dagexecution.FieldWaitingTasks:
		return m.WaitingTasks()
	case dagexecution.FieldFinalResult:
		return m.FinalResult()
	case dagexecution.FieldSynthesisResult:
		return m.SynthesisResult()
	case dagexecution.FieldSuspendedReason:
		return m.SuspendedReason()
	case dagexecution.FieldSuspendedAt:
		return m.SuspendedAt()
	case dagexecution.FieldRetryCount:
		return m.RetryCount()
	case dagexecution.FieldLastRetryAt:
		return m.LastRetryAt()
	case dagexecution.FieldTotalUsage:
		return m.TotalUsage()
	case dagexecution.FieldTotalCostUsd:
		return m.TotalCostUsd()
	case dagexecution.FieldCreatedAt:
		return m.CreatedAt()
	case dagexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DagExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dagexecution.FieldDagID:
		return m.OldDagID(ctx)
	case dagexecution.FieldOriginalRequest:
		return m.OldOriginalRequest(ctx)
	case dagexecution.FieldPrimaryIntent:
		return m.OldPrimaryIntent(ctx)
	case dagexecution.FieldStatus:
		return m.OldStatus(ctx)
	case dagexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case dagexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case dagexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case dagexecution.FieldTotalTasks:
		return m.OldTotalTasks(ctx)
	case dagexecution.FieldCompletedTasks:
		return m.OldCompletedTasks(ctx)
	case dagexecution.FieldFailedTasks:
		return m.OldFailedTasks(ctx)
	case dagexecution.FieldWaitingTasks:
		return m.OldWaitingTasks(ctx)
	case dagexecution.FieldFinalResult:
		return m.OldFinalResult(ctx)
	case dagexecution.FieldSynthesisResult:
		return m.OldSynthesisResult(ctx)
	case dagexecution.FieldSuspendedReason:
		return m.OldSuspendedReason(ctx)
	case dagexecution.FieldSuspendedAt:
		return m.OldSuspendedAt(ctx)
	case dagexecution.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case dagexecution.FieldLastRetryAt:
		return m.OldLastRetryAt(ctx)
	case dagexecution.FieldTotalUsage:
		return m.OldTotalUsage(ctx)
	case dagexecution.FieldTotalCostUsd:
		return m.OldTotalCostUsd(ctx)
	case dagexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dagexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DagExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DagExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dagexecution.FieldDagID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDagID(v)
		return nil
	case dagexecution.FieldOriginalRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalRequest(v)
		return nil
	case dagexecution.FieldPrimaryIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryIntent(v)
		return nil
	case dagexecution.FieldStatus:
		v, ok := value.(dagexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dagexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case dagexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case dagexecution.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case dagexecution.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTasks(v)
		return nil
	case dagexecution.FieldCompletedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedTasks(v)
		return nil
	case dagexecution.FieldFailedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedTasks(v)
		return nil
	case dagexecution.FieldWaitingTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWaitingTasks(v)
		return nil
	case dagexecution.FieldFinalResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalResult(v)
		return nil
	case dagexecution.FieldSynthesisResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesisResult(v)
		return nil
	case dagexecution.FieldSuspendedReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendedReason(v)
		return nil
	case dagexecution.FieldSuspendedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuspendedAt(v)
		return nil
	case dagexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case dagexecution.FieldLastRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRetryAt(v)
		return nil
	case dagexecution.FieldTotalUsage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalUsage(v)
		return nil
	case dagexecution.FieldTotalCostUsd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCostUsd(v)
		return nil
	case dagexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dagexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DagExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DagExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, dagexecution.FieldDurationMs)
	}
	if m.addtotal_tasks != nil {
		fields = append(fields, dagexecution.FieldTotalTasks)
	}
	if m.addcompleted_tasks != nil {
		fields = append(fields, dagexecution.FieldCompletedTasks)
	}
	if m.addfailed_tasks != nil {
		fields = append(fields, dagexecution.FieldFailedTasks)
	}
	if m.addwaiting_tasks != nil {
		fields = append(fields, dagexecution.FieldWaitingTasks)
	}
	if m.addretry_count != nil {
		fields = append(fields, dagexecution.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DagExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dagexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case dagexecution.FieldTotalTasks:
		return m.AddedTotalTasks()
	case dagexecution.FieldCompletedTasks:
		return m.AddedCompletedTasks()
	case dagexecution.FieldFailedTasks:
		return m.AddedFailedTasks()
	case dagexecution.FieldWaitingTasks:
		return m.AddedWaitingTasks()
	case dagexecution.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DagExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dagexecution.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case dagexecution.FieldTotalTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTasks(v)
		return nil
	case dagexecution.FieldCompletedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedTasks(v)
		return nil
	case dagexecution.FieldFailedTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedTasks(v)
		return nil
	case dagexecution.FieldWaitingTasks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWaitingTasks(v)
		return nil
	case dagexecution.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown DagExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DagExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dagexecution.FieldDagID) {
		fields = append(fields, dagexecution.FieldDagID)
	}
	if m.FieldCleared(dagexecution.FieldPrimaryIntent) {
		fields = append(fields, dagexecution.FieldPrimaryIntent)
	}
	if m.FieldCleared(dagexecution.FieldStartedAt) {
		fields = append(fields, dagexecution.FieldStartedAt)
	}
	if m.FieldCleared(dagexecution.FieldCompletedAt) {
		fields = append(fields, dagexecution.FieldCompletedAt)
	}
	if m.FieldCleared(dagexecution.FieldDurationMs) {
		fields = append(fields, dagexecution.FieldDurationMs)
	}
	if m.FieldCleared(dagexecution.FieldFinalResult) {
		fields = append(fields, dagexecution.FieldFinalResult)
	}
	if m.FieldCleared(dagexecution.FieldSynthesisResult) {
		fields = append(fields, dagexecution.FieldSynthesisResult)
	}
	if m.FieldCleared(dagexecution.FieldSuspendedReason) {
		fields = append(fields, dagexecution.FieldSuspendedReason)
	}
	if m.FieldCleared(dagexecution.FieldSuspendedAt) {
		fields = append(fields, dagexecution.FieldSuspendedAt)
	}
	if m.FieldCleared(dagexecution.FieldLastRetryAt) {
		fields = append(fields, dagexecution.FieldLastRetryAt)
	}
	if m.FieldCleared(dagexecution.FieldTotalUsage) {
		fields = append(fields, dagexecution.FieldTotalUsage)
	}
	if m.FieldCleared(dagexecution.FieldTotalCostUsd) {
		fields = append(fields, dagexecution.FieldTotalCostUsd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DagExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DagExecutionMutation) ClearField(name string) error {
	switch name {
	case dagexecution.FieldDagID:
		m.ClearDagID()
		return nil
	case dagexecution.FieldPrimaryIntent:
		m.ClearPrimaryIntent()
		return nil
	case dagexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case dagexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case dagexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case dagexecution.FieldFinalResult:
		m.ClearFinalResult()
		return nil
	case dagexecution.FieldSynthesisResult:
		m.ClearSynthesisResult()
		return nil
	case dagexecution.FieldSuspendedReason:
		m.ClearSuspendedReason()
		return nil
	case dagexecution.FieldSuspendedAt:
		m.ClearSuspendedAt()
		return nil
	case dagexecution.FieldLastRetryAt:
		m.ClearLastRetryAt()
		return nil
	case dagexecution.FieldTotalUsage:
		m.ClearTotalUsage()
		return nil
	case dagexecution.FieldTotalCostUsd:
		m.ClearTotalCostUsd()
		return nil
	}
	return fmt.Errorf("unknown DagExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DagExecutionMutation) ResetField(name string) error {
	switch name {
	case dagexecution.FieldDagID:
		m.ResetDagID()
		return nil
	case dagexecution.FieldOriginalRequest:
		m.ResetOriginalRequest()
		return nil
	case dagexecution.FieldPrimaryIntent:
		m.ResetPrimaryIntent()
		return nil
	case dagexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case dagexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case dagexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case dagexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case dagexecution.FieldTotalTasks:
		m.ResetTotalTasks()
		return nil
	case dagexecution.FieldCompletedTasks:
		m.ResetCompletedTasks()
		return nil
	case dagexecution.FieldFailedTasks:
		m.ResetFailedTasks()
		return nil
	case dagexecution.FieldWaitingTasks:
		m.ResetWaitingTasks()
		return nil
	case dagexecution.FieldFinalResult:
		m.ResetFinalResult()
		return nil
	case dagexecution.FieldSynthesisResult:
		m.ResetSynthesisResult()
		return nil
	case dagexecution.FieldSuspendedReason:
		m.ResetSuspendedReason()
		return nil
	case dagexecution.FieldSuspendedAt:
		m.ResetSuspendedAt()
		return nil
	case dagexecution.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case dagexecution.FieldLastRetryAt:
		m.ResetLastRetryAt()
		return nil
	case dagexecution.FieldTotalUsage:
		m.ResetTotalUsage()
		return nil
	case dagexecution.FieldTotalCostUsd:
		m.ResetTotalCostUsd()
		return nil
	case dagexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dagexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DagExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DagExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.dag != nil {
		edges = append(edges, dagexecution.EdgeDag)
	}
	if m.sub_steps != nil {
		edges = append(edges, dagexecution.EdgeSubSteps)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DagExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dagexecution.EdgeDag:
		if id := m.dag; id != nil {
			return []ent.Value{*id}
		}
	case dagexecution.EdgeSubSteps:
		ids := make([]ent.Value, 0, len(m.sub_steps))
		for id := range m.sub_steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DagExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsub_steps != nil {
		edges = append(edges, dagexecution.EdgeSubSteps)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DagExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dagexecution.EdgeSubSteps:
		ids := make([]ent.Value, 0, len(m.removedsub_steps))
		for id := range m.removedsub_steps {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DagExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddag {
		edges = append(edges, dagexecution.EdgeDag)
	}
	if m.clearedsub_steps {
		edges = append(edges, dagexecution.EdgeSubSteps)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DagExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case dagexecution.EdgeDag:
		return m.cleareddag
	case dagexecution.EdgeSubSteps:
		return m.clearedsub_steps
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DagExecutionMutation) ClearEdge(name string) error {
	switch name {
	case dagexecution.EdgeDag:
		m.ClearDag()
		return nil
	}
	return fmt.Errorf("unknown DagExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DagExecutionMutation) ResetEdge(name string) error {
	switch name {
	case dagexecution.EdgeDag:
		m.ResetDag()
		return nil
	case dagexecution.EdgeSubSteps:
		m.ResetSubSteps()
		return nil
	}
	return fmt.Errorf("unknown DagExecution edge %s", name)
}

// StopRequestMutation represents an operation that mutates the StopRequest nodes in the graph.
type StopRequestMutation struct {
	config
	op            Op
	typ           string
	id            *string
	dag_id        *string
	execution_id  *string
	status        *stoprequest.Status
	requested_at  *time.Time
	handled_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*StopRequest, error)
	predicates    []predicate.StopRequest
}

var _ ent.Mutation = (*StopRequestMutation)(nil)

// stoprequestOption allows management of the mutation configuration using functional options.
type stoprequestOption func(*StopRequestMutation)

// newStopRequestMutation creates new mutation for the StopRequest entity.
func newStopRequestMutation(c config, op Op, opts ...stoprequestOption) *StopRequestMutation {
	m := &StopRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeStopRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStopRequestID sets the ID field of the mutation.
func withStopRequestID(id string) stoprequestOption {
	return func(m *StopRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *StopRequest
		)
		m.oldValue = func(ctx context.Context) (*StopRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StopRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStopRequest sets the old StopRequest of the mutation.
func withStopRequest(node *StopRequest) stoprequestOption {
	return func(m *StopRequestMutation) {
		m.oldValue = func(context.Context) (*StopRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StopRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StopRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StopRequest entities.
func (m *StopRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StopRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StopRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StopRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDagID sets the "dag_id" field.
func (m *StopRequestMutation) SetDagID(s string) {
	m.dag_id = &s
}

// DagID returns the value of the "dag_id" field in the mutation.
func (m *StopRequestMutation) DagID() (r string, exists bool) {
	v := m.dag_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDagID returns the old "dag_id" field's value of the StopRequest entity.
// If the StopRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StopRequestMutation) OldDagID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDagID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDagID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDagID: %w", err)
	}
	return oldValue.DagID, nil
}

// ClearDagID clears the value of the "dag_id" field.
func (m *StopRequestMutation) ClearDagID() {
	m.dag_id = nil
	m.clearedFields[stoprequest.FieldDagID] = struct{}{}
}

// DagIDCleared returns if the "dag_id" field was cleared in this mutation.
func (m *StopRequestMutation) DagIDCleared() bool {
	_, ok := m.clearedFields[stoprequest.FieldDagID]
	return ok
}

// ResetDagID resets all changes to the "dag_id" field.
func (m *StopRequestMutation) ResetDagID() {
	m.dag_id = nil
	delete(m.clearedFields, stoprequest.FieldDagID)
}

// SetExecutionID sets the "execution_id" field.
func (m *StopRequestMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *StopRequestMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the StopRequest entity.
// If the StopRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StopRequestMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *StopRequestMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[stoprequest.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *StopRequestMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[stoprequest.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *StopRequestMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, stoprequest.FieldExecutionID)
}

// SetStatus sets the "status" field.
func (m *StopRequestMutation) SetStatus(s stoprequest.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StopRequestMutation) Status() (r stoprequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StopRequest entity.
// If the StopRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StopRequestMutation) OldStatus(ctx context.Context) (v stoprequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StopRequestMutation) ResetStatus() {
	m.status = nil
}

// SetRequestedAt sets the "requested_at" field.
func (m *StopRequestMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *StopRequestMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the StopRequest entity.
// If the StopRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StopRequestMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *StopRequestMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// SetHandledAt sets the "handled_at" field.
func (m *StopRequestMutation) SetHandledAt(t time.Time) {
	m.handled_at = &t
}

// HandledAt returns the value of the "handled_at" field in the mutation.
func (m *StopRequestMutation) HandledAt() (r time.Time, exists bool) {
	v := m.handled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHandledAt returns the old "handled_at" field's value of the StopRequest entity.
// If the StopRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StopRequestMutation) OldHandledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHandledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHandledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHandledAt: %w", err)
	}
	return oldValue.HandledAt, nil
}

// ClearHandledAt clears the value of the "handled_at" field.
func (m *StopRequestMutation) ClearHandledAt() {
	m.handled_at = nil
	m.clearedFields[stoprequest.FieldHandledAt] = struct{}{}
}

// HandledAtCleared returns if the "handled_at" field was cleared in this mutation.
func (m *StopRequestMutation) HandledAtCleared() bool {
	_, ok := m.clearedFields[stoprequest.FieldHandledAt]
	return ok
}

// ResetHandledAt resets all changes to the "handled_at" field.
func (m *StopRequestMutation) ResetHandledAt() {
	m.handled_at = nil
	delete(m.clearedFields, stoprequest.FieldHandledAt)
}

// Where appends a list predicates to the StopRequestMutation builder.
func (m *StopRequestMutation) Where(ps ...predicate.StopRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StopRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StopRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StopRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StopRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StopRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StopRequest).
func (m *StopRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StopRequestMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.dag_id != nil {
		fields = append(fields, stoprequest.FieldDagID)
	}
	if m.execution_id != nil {
		fields = append(fields, stoprequest.FieldExecutionID)
	}
	if m.status != nil {
		fields = append(fields, stoprequest.FieldStatus)
	}
	if m.requested_at != nil {
		fields = append(fields, stoprequest.FieldRequestedAt)
	}
	if m.handled_at != nil {
		fields = append(fields, stoprequest.FieldHandledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StopRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stoprequest.FieldDagID:
		return m.DagID()
	case stoprequest.FieldExecutionID:
		return m.ExecutionID()
	case stoprequest.FieldStatus:
		return m.Status()
	case stoprequest.FieldRequestedAt:
		return m.RequestedAt()
	case stoprequest.FieldHandledAt:
		return m.HandledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StopRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stoprequest.FieldDagID:
		return m.OldDagID(ctx)
	case stoprequest.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case stoprequest.FieldStatus:
		return m.OldStatus(ctx)
	case stoprequest.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	case stoprequest.FieldHandledAt:
		return m.OldHandledAt(ctx)
	}
	return nil, fmt.Errorf("unknown StopRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StopRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stoprequest.FieldDagID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDagID(v)
		return nil
	case stoprequest.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case stoprequest.FieldStatus:
		v, ok := value.(stoprequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case stoprequest.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	case stoprequest.FieldHandledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHandledAt(v)
		return nil
	}
	return fmt.Errorf("unknown StopRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StopRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StopRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StopRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StopRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StopRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stoprequest.FieldDagID) {
		fields = append(fields, stoprequest.FieldDagID)
	}
	if m.FieldCleared(stoprequest.FieldExecutionID) {
		fields = append(fields, stoprequest.FieldExecutionID)
	}
	if m.FieldCleared(stoprequest.FieldHandledAt) {
		fields = append(fields, stoprequest.FieldHandledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StopRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StopRequestMutation) ClearField(name string) error {
	switch name {
	case stoprequest.FieldDagID:
		m.ClearDagID()
		return nil
	case stoprequest.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case stoprequest.FieldHandledAt:
		m.ClearHandledAt()
		return nil
	}
	return fmt.Errorf("unknown StopRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StopRequestMutation) ResetField(name string) error {
	switch name {
	case stoprequest.FieldDagID:
		m.ResetDagID()
		return nil
	case stoprequest.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case stoprequest.FieldStatus:
		m.ResetStatus()
		return nil
	case stoprequest.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	case stoprequest.FieldHandledAt:
		m.ResetHandledAt()
		return nil
	}
	return fmt.Errorf("unknown StopRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StopRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StopRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StopRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StopRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StopRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StopRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StopRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StopRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StopRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StopRequest edge %s", name)
}

// SubStepMutation represents an operation that mutates the SubStep nodes in the graph.
type SubStepMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	task_id               *string
	description           *string
	thought               *string
	action_type           *substep.ActionType
	tool_or_prompt_name   *string
	tool_or_prompt_params *map[string]interface{}
	dependencies          *[]string
	appenddependencies    []string
	status                *substep.Status
	started_at            *time.Time
	completed_at          *time.Time
	duration_ms           *int64
	addduration_ms        *int64
	result                *json.RawMessage
	appendresult          json.RawMessage
	error                 *string
	usage                 *map[string]interface{}
	cost_usd              *string
	generation_stats      *map[string]interface{}
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	execution             *string
	clearedexecution      bool
	done                  bool
	oldValue              func(context.Context) (*SubStep, error)
	predicates            []predicate.SubStep
}

var _ ent.Mutation = (*SubStepMutation)(nil)

// substepOption allows management of the mutation configuration using functional options.
type substepOption func(*SubStepMutation)

// newSubStepMutation creates new mutation for the SubStep entity.
func newSubStepMutation(c config, op Op, opts ...substepOption) *SubStepMutation {
	m := &SubStepMutation{
		config:        c,
		op:            op,
		typ:           TypeSubStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubStepID sets the ID field of the mutation.
func withSubStepID(id string) substepOption {
	return func(m *SubStepMutation) {
		var (
			err   error
			once  sync.Once
			value *SubStep
		)
		m.oldValue = func(ctx context.Context) (*SubStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubStep sets the old SubStep of the mutation.
func withSubStep(node *SubStep) substepOption {
	return func(m *SubStepMutation) {
		m.oldValue = func(context.Context) (*SubStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubStep entities.
func (m *SubStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *SubStepMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *SubStepMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *SubStepMutation) ResetExecutionID() {
	m.execution = nil
}

// SetTaskID sets the "task_id" field.
func (m *SubStepMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SubStepMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SubStepMutation) ResetTaskID() {
	m.task_id = nil
}

// SetDescription sets the "description" field.
func (m *SubStepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SubStepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SubStepMutation) ResetDescription() {
	m.description = nil
}

// SetThought sets the "thought" field.
func (m *SubStepMutation) SetThought(s string) {
	m.thought = &s
}

// Thought returns the value of the "thought" field in the mutation.
func (m *SubStepMutation) Thought() (r string, exists bool) {
	v := m.thought
	if v == nil {
		return
	}
	return *v, true
}

// OldThought returns the old "thought" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldThought(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThought is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThought requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThought: %w", err)
	}
	return oldValue.Thought, nil
}

// ClearThought clears the value of the "thought" field.
func (m *SubStepMutation) ClearThought() {
	m.thought = nil
	m.clearedFields[substep.FieldThought] = struct{}{}
}

// ThoughtCleared returns if the "thought" field was cleared in this mutation.
func (m *SubStepMutation) ThoughtCleared() bool {
	_, ok := m.clearedFields[substep.FieldThought]
	return ok
}

// ResetThought resets all changes to the "thought" field.
func (m *SubStepMutation) ResetThought() {
	m.thought = nil
	delete(m.clearedFields, substep.FieldThought)
}

// SetActionType sets the "action_type" field.
func (m *SubStepMutation) SetActionType(st substep.ActionType) {
	m.action_type = &st
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *SubStepMutation) ActionType() (r substep.ActionType, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldActionType(ctx context.Context) (v substep.ActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *SubStepMutation) ResetActionType() {
	m.action_type = nil
}

// SetToolOrPromptName sets the "tool_or_prompt_name" field.
func (m *SubStepMutation) SetToolOrPromptName(s string) {
	m.tool_or_prompt_name = &s
}

// ToolOrPromptName returns the value of the "tool_or_prompt_name" field in the mutation.
func (m *SubStepMutation) ToolOrPromptName() (r string, exists bool) {
	v := m.tool_or_prompt_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolOrPromptName returns the old "tool_or_prompt_name" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldToolOrPromptName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolOrPromptName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolOrPromptName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolOrPromptName: %w", err)
	}
	return oldValue.ToolOrPromptName, nil
}

// ResetToolOrPromptName resets all changes to the "tool_or_prompt_name" field.
func (m *SubStepMutation) ResetToolOrPromptName() {
	m.tool_or_prompt_name = nil
}

// SetToolOrPromptParams sets the "tool_or_prompt_params" field.
func (m *SubStepMutation) SetToolOrPromptParams(value map[string]interface{}) {
	m.tool_or_prompt_params = &value
}

// ToolOrPromptParams returns the value of the "tool_or_prompt_params" field in the mutation.
func (m *SubStepMutation) ToolOrPromptParams() (r map[string]interface{}, exists bool) {
	v := m.tool_or_prompt_params
	if v == nil {
		return
	}
	return *v, true
}

// OldToolOrPromptParams returns the old "tool_or_prompt_params" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldToolOrPromptParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolOrPromptParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolOrPromptParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolOrPromptParams: %w", err)
	}
	return oldValue.ToolOrPromptParams, nil
}

// ClearToolOrPromptParams clears the value of the "tool_or_prompt_params" field.
func (m *SubStepMutation) ClearToolOrPromptParams() {
	m.tool_or_prompt_params = nil
	m.clearedFields[substep.FieldToolOrPromptParams] = struct{}{}
}

// ToolOrPromptParamsCleared returns if the "tool_or_prompt_params" field was cleared in this mutation.
func (m *SubStepMutation) ToolOrPromptParamsCleared() bool {
	_, ok := m.clearedFields[substep.FieldToolOrPromptParams]
	return ok
}

// ResetToolOrPromptParams resets all changes to the "tool_or_prompt_params" field.
func (m *SubStepMutation) ResetToolOrPromptParams() {
	m.tool_or_prompt_params = nil
	delete(m.clearedFields, substep.FieldToolOrPromptParams)
}

// SetDependencies sets the "dependencies" field.
func (m *SubStepMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *SubStepMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *SubStepMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *SubStepMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *SubStepMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[substep.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *SubStepMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[substep.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *SubStepMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, substep.FieldDependencies)
}

// SetStatus sets the "status" field.
func (m *SubStepMutation) SetStatus(s substep.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SubStepMutation) Status() (r substep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldStatus(ctx context.Context) (v substep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SubStepMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SubStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SubStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SubStepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[substep.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SubStepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[substep.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SubStepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, substep.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SubStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SubStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SubStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[substep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SubStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[substep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SubStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, substep.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *SubStepMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *SubStepMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *SubStepMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *SubStepMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *SubStepMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[substep.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *SubStepMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[substep.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *SubStepMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, substep.FieldDurationMs)
}

// SetResult sets the "result" field.
func (m *SubStepMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *SubStepMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *SubStepMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *SubStepMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *SubStepMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[substep.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *SubStepMutation) ResultCleared() bool {
	_, ok := m.clearedFields[substep.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *SubStepMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, substep.FieldResult)
}

// SetError sets the "error" field.
func (m *SubStepMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *SubStepMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *SubStepMutation) ClearError() {
	m.error = nil
	m.clearedFields[substep.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *SubStepMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[substep.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *SubStepMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, substep.FieldError)
}

// SetUsage sets the "usage" field.
func (m *SubStepMutation) SetUsage(value map[string]interface{}) {
	m.usage = &value
}

// Usage returns the value of the "usage" field in the mutation.
func (m *SubStepMutation) Usage() (r map[string]interface{}, exists bool) {
	v := m.usage
	if v == nil {
		return
	}
	return *v, true
}

// OldUsage returns the old "usage" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldUsage(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsage: %w", err)
	}
	return oldValue.Usage, nil
}

// ClearUsage clears the value of the "usage" field.
func (m *SubStepMutation) ClearUsage() {
	m.usage = nil
	m.clearedFields[substep.FieldUsage] = struct{}{}
}

// UsageCleared returns if the "usage" field was cleared in this mutation.
func (m *SubStepMutation) UsageCleared() bool {
	_, ok := m.clearedFields[substep.FieldUsage]
	return ok
}

// ResetUsage resets all changes to the "usage" field.
func (m *SubStepMutation) ResetUsage() {
	m.usage = nil
	delete(m.clearedFields, substep.FieldUsage)
}

// SetCostUsd sets the "cost_usd" field.
func (m *SubStepMutation) SetCostUsd(s string) {
	m.cost_usd = &s
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *SubStepMutation) CostUsd() (r string, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldCostUsd(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// ClearCostUsd clears the value of the "cost_usd" field.
func (m *SubStepMutation) ClearCostUsd() {
	m.cost_usd = nil
	m.clearedFields[substep.FieldCostUsd] = struct{}{}
}

// CostUsdCleared returns if the "cost_usd" field was cleared in this mutation.
func (m *SubStepMutation) CostUsdCleared() bool {
	_, ok := m.clearedFields[substep.FieldCostUsd]
	return ok
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *SubStepMutation) ResetCostUsd() {
	m.cost_usd = nil
	delete(m.clearedFields, substep.FieldCostUsd)
}

// SetGenerationStats sets the "generation_stats" field.
func (m *SubStepMutation) SetGenerationStats(value map[string]interface{}) {
	m.generation_stats = &value
}

// GenerationStats returns the value of the "generation_stats" field in the mutation.
func (m *SubStepMutation) GenerationStats() (r map[string]interface{}, exists bool) {
	v := m.generation_stats
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationStats returns the old "generation_stats" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldGenerationStats(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationStats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationStats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationStats: %w", err)
	}
	return oldValue.GenerationStats, nil
}

// ClearGenerationStats clears the value of the "generation_stats" field.
func (m *SubStepMutation) ClearGenerationStats() {
	m.generation_stats = nil
	m.clearedFields[substep.FieldGenerationStats] = struct{}{}
}

// GenerationStatsCleared returns if the "generation_stats" field was cleared in this mutation.
func (m *SubStepMutation) GenerationStatsCleared() bool {
	_, ok := m.clearedFields[substep.FieldGenerationStats]
	return ok
}

// ResetGenerationStats resets all changes to the "generation_stats" field.
func (m *SubStepMutation) ResetGenerationStats() {
	m.generation_stats = nil
	delete(m.clearedFields, substep.FieldGenerationStats)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SubStep entity.
// If the SubStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearExecution clears the "execution" edge to the DagExecution entity.
func (m *SubStepMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[substep.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the DagExecution entity was cleared.
func (m *SubStepMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *SubStepMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *SubStepMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the SubStepMutation builder.
func (m *SubStepMutation) Where(ps ...predicate.SubStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubStep).
func (m *SubStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubStepMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.execution != nil {
		fields = append(fields, substep.FieldExecutionID)
	}
	if m.task_id != nil {
		fields = append(fields, substep.FieldTaskID)
	}
	if m.description != nil {
		fields = append(fields, substep.FieldDescription)
	}
	if m.thought != nil {
		fields = append(fields, substep.FieldThought)
	}
	if m.action_type != nil {
		fields = append(fields, substep.FieldActionType)
	}
	if m.tool_or_prompt_name != nil {
		fields = append(fields, substep.FieldToolOrPromptName)
	}
	if m.tool_or_prompt_params != nil {
		fields = append(fields, substep.FieldToolOrPromptParams)
	}
	if m.dependencies != nil {
		fields = append(fields, substep.FieldDependencies)
	}
	if m.status != nil {
		fields = append(fields, substep.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, substep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, substep.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, substep.FieldDurationMs)
	}
	if m.result != nil {
		fields = append(fields, substep.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, substep.FieldError)
	}
	if m.usage != nil {
		fields = append(fields, substep.FieldUsage)
	}
	if m.cost_usd != nil {
		fields = append(fields, substep.FieldCostUsd)
	}
	if m.generation_stats != nil {
		fields = append(fields, substep.FieldGenerationStats)
	}
	if m.created_at != nil {
		fields = append(fields, substep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, substep.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case substep.FieldExecutionID:
		return m.ExecutionID()
	case substep.FieldTaskID:
		return m.TaskID()
	case substep.FieldDescription:
		return m.Description()
	case substep.FieldThought:
		return m.Thought()
	case substep.FieldActionType:
		return m.ActionType()
	case substep.FieldToolOrPromptName:
		return m.ToolOrPromptName()
	case substep.FieldToolOrPromptParams:
		return m.ToolOrPromptParams()
	case substep.FieldDependencies:
		return m.Dependencies()
	case substep.FieldStatus:
		return m.Status()
	case substep.FieldStartedAt:
		return m.StartedAt()
	case substep.FieldCompletedAt:
		return m.CompletedAt()
	case substep.FieldDurationMs:
		return m.DurationMs()
	case substep.FieldResult:
		return m.Result()
	case substep.FieldError:
		return m.Error()
	case substep.FieldUsage:
		return m.Usage()
	case substep.FieldCostUsd:
		return m.CostUsd()
	case substep.FieldGenerationStats:
		return m.GenerationStats()
	case substep.FieldCreatedAt:
		return m.CreatedAt()
	case substep.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case substep.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case substep.FieldTaskID:
		return m.OldTaskID(ctx)
	case substep.FieldDescription:
		return m.OldDescription(ctx)
	case substep.FieldThought:
		return m.OldThought(ctx)
	case substep.FieldActionType:
		return m.OldActionType(ctx)
	case substep.FieldToolOrPromptName:
		return m.OldToolOrPromptName(ctx)
	case substep.FieldToolOrPromptParams:
		return m.OldToolOrPromptParams(ctx)
	case substep.FieldDependencies:
		return m.OldDependencies(ctx)
	case substep.FieldStatus:
		return m.OldStatus(ctx)
	case substep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case substep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case substep.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case substep.FieldResult:
		return m.OldResult(ctx)
	case substep.FieldError:
		return m.OldError(ctx)
	case substep.FieldUsage:
		return m.OldUsage(ctx)
	case substep.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case substep.FieldGenerationStats:
		return m.OldGenerationStats(ctx)
	case substep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case substep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case substep.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case substep.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case substep.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case substep.FieldThought:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThought(v)
		return nil
	case substep.FieldActionType:
		v, ok := value.(substep.ActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case substep.FieldToolOrPromptName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolOrPromptName(v)
		return nil
	case substep.FieldToolOrPromptParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolOrPromptParams(v)
		return nil
	case substep.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case substep.FieldStatus:
		v, ok := value.(substep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case substep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case substep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case substep.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case substep.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case substep.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case substep.FieldUsage:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsage(v)
		return nil
	case substep.FieldCostUsd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case substep.FieldGenerationStats:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationStats(v)
		return nil
	case substep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case substep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubStepMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, substep.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case substep.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case substep.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown SubStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(substep.FieldThought) {
		fields = append(fields, substep.FieldThought)
	}
	if m.FieldCleared(substep.FieldToolOrPromptParams) {
		fields = append(fields, substep.FieldToolOrPromptParams)
	}
	if m.FieldCleared(substep.FieldDependencies) {
		fields = append(fields, substep.FieldDependencies)
	}
	if m.FieldCleared(substep.FieldStartedAt) {
		fields = append(fields, substep.FieldStartedAt)
	}
	if m.FieldCleared(substep.FieldCompletedAt) {
		fields = append(fields, substep.FieldCompletedAt)
	}
	if m.FieldCleared(substep.FieldDurationMs) {
		fields = append(fields, substep.FieldDurationMs)
	}
	if m.FieldCleared(substep.FieldResult) {
		fields = append(fields, substep.FieldResult)
	}
	if m.FieldCleared(substep.FieldError) {
		fields = append(fields, substep.FieldError)
	}
	if m.FieldCleared(substep.FieldUsage) {
		fields = append(fields, substep.FieldUsage)
	}
	if m.FieldCleared(substep.FieldCostUsd) {
		fields = append(fields, substep.FieldCostUsd)
	}
	if m.FieldCleared(substep.FieldGenerationStats) {
		fields = append(fields, substep.FieldGenerationStats)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubStepMutation) ClearField(name string) error {
	switch name {
	case substep.FieldThought:
		m.ClearThought()
		return nil
	case substep.FieldToolOrPromptParams:
		m.ClearToolOrPromptParams()
		return nil
	case substep.FieldDependencies:
		m.ClearDependencies()
		return nil
	case substep.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case substep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case substep.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case substep.FieldResult:
		m.ClearResult()
		return nil
	case substep.FieldError:
		m.ClearError()
		return nil
	case substep.FieldUsage:
		m.ClearUsage()
		return nil
	case substep.FieldCostUsd:
		m.ClearCostUsd()
		return nil
	case substep.FieldGenerationStats:
		m.ClearGenerationStats()
		return nil
	}
	return fmt.Errorf("unknown SubStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubStepMutation) ResetField(name string) error {
	switch name {
	case substep.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case substep.FieldTaskID:
		m.ResetTaskID()
		return nil
	case substep.FieldDescription:
		m.ResetDescription()
		return nil
	case substep.FieldThought:
		m.ResetThought()
		return nil
	case substep.FieldActionType:
		m.ResetActionType()
		return nil
	case substep.FieldToolOrPromptName:
		m.ResetToolOrPromptName()
		return nil
	case substep.FieldToolOrPromptParams:
		m.ResetToolOrPromptParams()
		return nil
	case substep.FieldDependencies:
		m.ResetDependencies()
		return nil
	case substep.FieldStatus:
		m.ResetStatus()
		return nil
	case substep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case substep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case substep.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case substep.FieldResult:
		m.ResetResult()
		return nil
	case substep.FieldError:
		m.ResetError()
		return nil
	case substep.FieldUsage:
		m.ResetUsage()
		return nil
	case substep.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case substep.FieldGenerationStats:
		m.ResetGenerationStats()
		return nil
	case substep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case substep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, substep.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case substep.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, substep.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubStepMutation) EdgeCleared(name string) bool {
	switch name {
	case substep.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubStepMutation) ClearEdge(name string) error {
	switch name {
	case substep.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown SubStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubStepMutation) ResetEdge(name string) error {
	switch name {
	case substep.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown SubStep edge %s", name)
}
