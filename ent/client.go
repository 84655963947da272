// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/taskdag/taskdag/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taskdag/taskdag/ent/agent"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/stoprequest"
	"github.com/taskdag/taskdag/ent/substep"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// Dag is the client for interacting with the Dag builders.
	Dag *DagClient
	// DagExecution is the client for interacting with the DagExecution builders.
	DagExecution *DagExecutionClient
	// StopRequest is the client for interacting with the StopRequest builders.
	StopRequest *StopRequestClient
	// SubStep is the client for interacting with the SubStep builders.
	SubStep *SubStepClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.Dag = NewDagClient(c.config)
	c.DagExecution = NewDagExecutionClient(c.config)
	c.StopRequest = NewStopRequestClient(c.config)
	c.SubStep = NewSubStepClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Agent:        NewAgentClient(cfg),
		Dag:          NewDagClient(cfg),
		DagExecution: NewDagExecutionClient(cfg),
		StopRequest:  NewStopRequestClient(cfg),
		SubStep:      NewSubStepClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Agent:        NewAgentClient(cfg),
		Dag:          NewDagClient(cfg),
		DagExecution: NewDagExecutionClient(cfg),
		StopRequest:  NewStopRequestClient(cfg),
		SubStep:      NewSubStepClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Agent.Use(hooks...)
	c.Dag.Use(hooks...)
	c.DagExecution.Use(hooks...)
	c.StopRequest.Use(hooks...)
	c.SubStep.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Agent.Intercept(interceptors...)
	c.Dag.Intercept(interceptors...)
	c.DagExecution.Intercept(interceptors...)
	c.StopRequest.Intercept(interceptors...)
	c.SubStep.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *DagMutation:
		return c.Dag.mutate(ctx, m)
	case *DagExecutionMutation:
		return c.DagExecution.mutate(ctx, m)
	case *StopRequestMutation:
		return c.StopRequest.mutate(ctx, m)
	case *SubStepMutation:
		return c.SubStep.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// DagClient is a client for the Dag schema.
type DagClient struct {
	config
}

// NewDagClient returns a client for the Dag from the given config.
func NewDagClient(c config) *DagClient {
	return &DagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dag.Hooks(f(g(h())))`.
func (c *DagClient) Use(hooks ...Hook) {
	c.hooks.Dag = append(c.hooks.Dag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dag.Intercept(f(g(h())))`.
func (c *DagClient) Intercept(interceptors ...Interceptor) {
	c.inters.Dag = append(c.inters.Dag, interceptors...)
}

// Create returns a builder for creating a Dag entity.
func (c *DagClient) Create() *DagCreate {
	mutation := newDagMutation(c.config, OpCreate)
	return &DagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Dag entities.
func (c *DagClient) CreateBulk(builders ...*DagCreate) *DagCreateBulk {
	return &DagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DagClient) MapCreateBulk(slice any, setFunc func(*DagCreate, int)) *DagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DagCreateBulk{err: fmt.Errorf("calling to DagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Dag.
func (c *DagClient) Update() *DagUpdate {
	mutation := newDagMutation(c.config, OpUpdate)
	return &DagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DagClient) UpdateOne(_m *Dag) *DagUpdateOne {
	mutation := newDagMutation(c.config, OpUpdateOne, withDag(_m))
	return &DagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DagClient) UpdateOneID(id string) *DagUpdateOne {
	mutation := newDagMutation(c.config, OpUpdateOne, withDagID(id))
	return &DagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Dag.
func (c *DagClient) Delete() *DagDelete {
	mutation := newDagMutation(c.config, OpDelete)
	return &DagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DagClient) DeleteOne(_m *Dag) *DagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DagClient) DeleteOneID(id string) *DagDeleteOne {
	builder := c.Delete().Where(dag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DagDeleteOne{builder}
}

// Query returns a query builder for Dag.
func (c *DagClient) Query() *DagQuery {
	return &DagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDag},
		inters: c.Interceptors(),
	}
}

// Get returns a Dag entity by its id.
func (c *DagClient) Get(ctx context.Context, id string) (*Dag, error) {
	return c.Query().Where(dag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DagClient) GetX(ctx context.Context, id string) *Dag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecutions queries the executions edge of a Dag.
func (c *DagClient) QueryExecutions(_m *Dag) *DagExecutionQuery {
	query := (&DagExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dag.Table, dag.FieldID, id),
			sqlgraph.To(dagexecution.Table, dagexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dag.ExecutionsTable, dag.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DagClient) Hooks() []Hook {
	return c.hooks.Dag
}

// Interceptors returns the client interceptors.
func (c *DagClient) Interceptors() []Interceptor {
	return c.inters.Dag
}

func (c *DagClient) mutate(ctx context.Context, m *DagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Dag mutation op: %q", m.Op())
	}
}

// DagExecutionClient is a client for the DagExecution schema.
type DagExecutionClient struct {
	config
}

// NewDagExecutionClient returns a client for the DagExecution from the given config.
func NewDagExecutionClient(c config) *DagExecutionClient {
	return &DagExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dagexecution.Hooks(f(g(h())))`.
func (c *DagExecutionClient) Use(hooks ...Hook) {
	c.hooks.DagExecution = append(c.hooks.DagExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dagexecution.Intercept(f(g(h())))`.
func (c *DagExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DagExecution = append(c.inters.DagExecution, interceptors...)
}

// Create returns a builder for creating a DagExecution entity.
func (c *DagExecutionClient) Create() *DagExecutionCreate {
	mutation := newDagExecutionMutation(c.config, OpCreate)
	return &DagExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DagExecution entities.
func (c *DagExecutionClient) CreateBulk(builders ...*DagExecutionCreate) *DagExecutionCreateBulk {
	return &DagExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DagExecutionClient) MapCreateBulk(slice any, setFunc func(*DagExecutionCreate, int)) *DagExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DagExecutionCreateBulk{err: fmt.Errorf("calling to DagExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DagExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DagExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DagExecution.
func (c *DagExecutionClient) Update() *DagExecutionUpdate {
	mutation := newDagExecutionMutation(c.config, OpUpdate)
	return &DagExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DagExecutionClient) UpdateOne(_m *DagExecution) *DagExecutionUpdateOne {
	mutation := newDagExecutionMutation(c.config, OpUpdateOne, withDagExecution(_m))
	return &DagExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DagExecutionClient) UpdateOneID(id string) *DagExecutionUpdateOne {
	mutation := newDagExecutionMutation(c.config, OpUpdateOne, withDagExecutionID(id))
	return &DagExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DagExecution.
func (c *DagExecutionClient) Delete() *DagExecutionDelete {
	mutation := newDagExecutionMutation(c.config, OpDelete)
	return &DagExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DagExecutionClient) DeleteOne(_m *DagExecution) *DagExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DagExecutionClient) DeleteOneID(id string) *DagExecutionDeleteOne {
	builder := c.Delete().Where(dagexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DagExecutionDeleteOne{builder}
}

// Query returns a query builder for DagExecution.
func (c *DagExecutionClient) Query() *DagExecutionQuery {
	return &DagExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDagExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a DagExecution entity by its id.
func (c *DagExecutionClient) Get(ctx context.Context, id string) (*DagExecution, error) {
	return c.Query().Where(dagexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DagExecutionClient) GetX(ctx context.Context, id string) *DagExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDag queries the dag edge of a DagExecution.
func (c *DagExecutionClient) QueryDag(_m *DagExecution) *DagQuery {
	query := (&DagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dagexecution.Table, dagexecution.FieldID, id),
			sqlgraph.To(dag.Table, dag.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dagexecution.DagTable, dagexecution.DagColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubSteps queries the sub_steps edge of a DagExecution.
func (c *DagExecutionClient) QuerySubSteps(_m *DagExecution) *SubStepQuery {
	query := (&SubStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dagexecution.Table, dagexecution.FieldID, id),
			sqlgraph.To(substep.Table, substep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dagexecution.SubStepsTable, dagexecution.SubStepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DagExecutionClient) Hooks() []Hook {
	return c.hooks.DagExecution
}

// Interceptors returns the client interceptors.
func (c *DagExecutionClient) Interceptors() []Interceptor {
	return c.inters.DagExecution
}

func (c *DagExecutionClient) mutate(ctx context.Context, m *DagExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DagExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DagExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DagExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DagExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DagExecution mutation op: %q", m.Op())
	}
}

// StopRequestClient is a client for the StopRequest schema.
type StopRequestClient struct {
	config
}

// NewStopRequestClient returns a client for the StopRequest from the given config.
func NewStopRequestClient(c config) *StopRequestClient {
	return &StopRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stoprequest.Hooks(f(g(h())))`.
func (c *StopRequestClient) Use(hooks ...Hook) {
	c.hooks.StopRequest = append(c.hooks.StopRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stoprequest.Intercept(f(g(h())))`.
func (c *StopRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.StopRequest = append(c.inters.StopRequest, interceptors...)
}

// Create returns a builder for creating a StopRequest entity.
func (c *StopRequestClient) Create() *StopRequestCreate {
	mutation := newStopRequestMutation(c.config, OpCreate)
	return &StopRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StopRequest entities.
func (c *StopRequestClient) CreateBulk(builders ...*StopRequestCreate) *StopRequestCreateBulk {
	return &StopRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StopRequestClient) MapCreateBulk(slice any, setFunc func(*StopRequestCreate, int)) *StopRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StopRequestCreateBulk{err: fmt.Errorf("calling to StopRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StopRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StopRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StopRequest.
func (c *StopRequestClient) Update() *StopRequestUpdate {
	mutation := newStopRequestMutation(c.config, OpUpdate)
	return &StopRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StopRequestClient) UpdateOne(_m *StopRequest) *StopRequestUpdateOne {
	mutation := newStopRequestMutation(c.config, OpUpdateOne, withStopRequest(_m))
	return &StopRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StopRequestClient) UpdateOneID(id string) *StopRequestUpdateOne {
	mutation := newStopRequestMutation(c.config, OpUpdateOne, withStopRequestID(id))
	return &StopRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StopRequest.
func (c *StopRequestClient) Delete() *StopRequestDelete {
	mutation := newStopRequestMutation(c.config, OpDelete)
	return &StopRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StopRequestClient) DeleteOne(_m *StopRequest) *StopRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StopRequestClient) DeleteOneID(id string) *StopRequestDeleteOne {
	builder := c.Delete().Where(stoprequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StopRequestDeleteOne{builder}
}

// Query returns a query builder for StopRequest.
func (c *StopRequestClient) Query() *StopRequestQuery {
	return &StopRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStopRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a StopRequest entity by its id.
func (c *StopRequestClient) Get(ctx context.Context, id string) (*StopRequest, error) {
	return c.Query().Where(stoprequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StopRequestClient) GetX(ctx context.Context, id string) *StopRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StopRequestClient) Hooks() []Hook {
	return c.hooks.StopRequest
}

// Interceptors returns the client interceptors.
func (c *StopRequestClient) Interceptors() []Interceptor {
	return c.inters.StopRequest
}

func (c *StopRequestClient) mutate(ctx context.Context, m *StopRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StopRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StopRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StopRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StopRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StopRequest mutation op: %q", m.Op())
	}
}

// SubStepClient is a client for the SubStep schema.
type SubStepClient struct {
	config
}

// NewSubStepClient returns a client for the SubStep from the given config.
func NewSubStepClient(c config) *SubStepClient {
	return &SubStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `substep.Hooks(f(g(h())))`.
func (c *SubStepClient) Use(hooks ...Hook) {
	c.hooks.SubStep = append(c.hooks.SubStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `substep.Intercept(f(g(h())))`.
func (c *SubStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubStep = append(c.inters.SubStep, interceptors...)
}

// Create returns a builder for creating a SubStep entity.
func (c *SubStepClient) Create() *SubStepCreate {
	mutation := newSubStepMutation(c.config, OpCreate)
	return &SubStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubStep entities.
func (c *SubStepClient) CreateBulk(builders ...*SubStepCreate) *SubStepCreateBulk {
	return &SubStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubStepClient) MapCreateBulk(slice any, setFunc func(*SubStepCreate, int)) *SubStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubStepCreateBulk{err: fmt.Errorf("calling to SubStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubStep.
func (c *SubStepClient) Update() *SubStepUpdate {
	mutation := newSubStepMutation(c.config, OpUpdate)
	return &SubStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubStepClient) UpdateOne(_m *SubStep) *SubStepUpdateOne {
	mutation := newSubStepMutation(c.config, OpUpdateOne, withSubStep(_m))
	return &SubStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubStepClient) UpdateOneID(id string) *SubStepUpdateOne {
	mutation := newSubStepMutation(c.config, OpUpdateOne, withSubStepID(id))
	return &SubStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubStep.
func (c *SubStepClient) Delete() *SubStepDelete {
	mutation := newSubStepMutation(c.config, OpDelete)
	return &SubStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubStepClient) DeleteOne(_m *SubStep) *SubStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubStepClient) DeleteOneID(id string) *SubStepDeleteOne {
	builder := c.Delete().Where(substep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubStepDeleteOne{builder}
}

// Query returns a query builder for SubStep.
func (c *SubStepClient) Query() *SubStepQuery {
	return &SubStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubStep},
		inters: c.Interceptors(),
	}
}

// Get returns a SubStep entity by its id.
func (c *SubStepClient) Get(ctx context.Context, id string) (*SubStep, error) {
	return c.Query().Where(substep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubStepClient) GetX(ctx context.Context, id string) *SubStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a SubStep.
func (c *SubStepClient) QueryExecution(_m *SubStep) *DagExecutionQuery {
	query := (&DagExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(substep.Table, substep.FieldID, id),
			sqlgraph.To(dagexecution.Table, dagexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, substep.ExecutionTable, substep.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubStepClient) Hooks() []Hook {
	return c.hooks.SubStep
}

// Interceptors returns the client interceptors.
func (c *SubStepClient) Interceptors() []Interceptor {
	return c.inters.SubStep
}

func (c *SubStepClient) mutate(ctx context.Context, m *SubStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubStep mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, Dag, DagExecution, StopRequest, SubStep []ent.Hook
	}
	inters struct {
		Agent, Dag, DagExecution, StopRequest, SubStep []ent.Interceptor
	}
)
