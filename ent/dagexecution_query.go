// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskdag/taskdag/ent/dag"
	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/ent/predicate"
	"github.com/taskdag/taskdag/ent/substep"
)

// DagExecutionQuery is the builder for querying DagExecution entities.
type DagExecutionQuery struct {
	config
	ctx          *QueryContext
	order        []dagexecution.OrderOption
	inters       []Interceptor
	predicates   []predicate.DagExecution
	withDag      *DagQuery
	withSubSteps *SubStepQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DagExecutionQuery builder.
func (_q *DagExecutionQuery) Where(ps ...predicate.DagExecution) *DagExecutionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DagExecutionQuery) Limit(limit int) *DagExecutionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DagExecutionQuery) Offset(offset int) *DagExecutionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DagExecutionQuery) Unique(unique bool) *DagExecutionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DagExecutionQuery) Order(o ...dagexecution.OrderOption) *DagExecutionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDag chains the current query on the "dag" edge.
func (_q *DagExecutionQuery) QueryDag() *DagQuery {
	query := (&DagClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dagexecution.Table, dagexecution.FieldID, selector),
			sqlgraph.To(dag.Table, dag.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dagexecution.DagTable, dagexecution.DagColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySubSteps chains the current query on the "sub_steps" edge.
func (_q *DagExecutionQuery) QuerySubSteps() *SubStepQuery {
	query := (&SubStepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dagexecution.Table, dagexecution.FieldID, selector),
			sqlgraph.To(substep.Table, substep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dagexecution.SubStepsTable, dagexecution.SubStepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DagExecution entity from the query.
// Returns a *NotFoundError when no DagExecution was found.
func (_q *DagExecutionQuery) First(ctx context.Context) (*DagExecution, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dagexecution.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DagExecutionQuery) FirstX(ctx context.Context) *DagExecution {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DagExecution ID from the query.
// Returns a *NotFoundError when no DagExecution ID was found.
func (_q *DagExecutionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dagexecution.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DagExecutionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DagExecution entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DagExecution entity is found.
// Returns a *NotFoundError when no DagExecution entities are found.
func (_q *DagExecutionQuery) Only(ctx context.Context) (*DagExecution, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dagexecution.Label}
	default:
		return nil, &NotSingularError{dagexecution.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DagExecutionQuery) OnlyX(ctx context.Context) *DagExecution {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DagExecution ID in the query.
// Returns a *NotSingularError when more than one DagExecution ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DagExecutionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dagexecution.Label}
	default:
		err = &NotSingularError{dagexecution.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DagExecutionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DagExecutions.
func (_q *DagExecutionQuery) All(ctx context.Context) ([]*DagExecution, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DagExecution, *DagExecutionQuery]()
	return withInterceptors[[]*DagExecution](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DagExecutionQuery) AllX(ctx context.Context) []*DagExecution {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DagExecution IDs.
func (_q *DagExecutionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(dagexecution.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DagExecutionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DagExecutionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DagExecutionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DagExecutionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DagExecutionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DagExecutionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DagExecutionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DagExecutionQuery) Clone() *DagExecutionQuery {
	if _q == nil {
		return nil
	}
	return &DagExecutionQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]dagexecution.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.DagExecution{}, _q.predicates...),
		withDag:      _q.withDag.Clone(),
		withSubSteps: _q.withSubSteps.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDag tells the query-builder to eager-load the nodes that are connected to
// the "dag" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DagExecutionQuery) WithDag(opts ...func(*DagQuery)) *DagExecutionQuery {
	query := (&DagClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDag = query
	return _q
}

// WithSubSteps tells the query-builder to eager-load the nodes that are connected to
// the "sub_steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DagExecutionQuery) WithSubSteps(opts ...func(*SubStepQuery)) *DagExecutionQuery {
	query := (&SubStepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSubSteps = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DagID string `json:"dag_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DagExecution.Query().
//		GroupBy(dagexecution.FieldDagID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DagExecutionQuery) GroupBy(field string, fields ...string) *DagExecutionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DagExecutionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = dagexecution.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DagID string `json:"dag_id,omitempty"`
//	}
//
//	client.DagExecution.Query().
//		Select(dagexecution.FieldDagID).
//		Scan(ctx, &v)
func (_q *DagExecutionQuery) Select(fields ...string) *DagExecutionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DagExecutionSelect{DagExecutionQuery: _q}
	sbuild.label = dagexecution.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DagExecutionSelect configured with the given aggregations.
func (_q *DagExecutionQuery) Aggregate(fns ...AggregateFunc) *DagExecutionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DagExecutionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !dagexecution.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DagExecutionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DagExecution, error) {
	var (
		nodes       = []*DagExecution{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDag != nil,
			_q.withSubSteps != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DagExecution).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DagExecution{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDag; query != nil {
		if err := _q.loadDag(ctx, query, nodes, nil,
			func(n *DagExecution, e *Dag) { n.Edges.Dag = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSubSteps; query != nil {
		if err := _q.loadSubSteps(ctx, query, nodes,
			func(n *DagExecution) { n.Edges.SubSteps = []*SubStep{} },
			func(n *DagExecution, e *SubStep) { n.Edges.SubSteps = append(n.Edges.SubSteps, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DagExecutionQuery) loadDag(ctx context.Context, query *DagQuery, nodes []*DagExecution, init func(*DagExecution), assign func(*DagExecution, *Dag)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*DagExecution)
	for i := range nodes {
		if nodes[i].DagID == nil {
			continue
		}
		fk := *nodes[i].DagID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(dag.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "dag_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DagExecutionQuery) loadSubSteps(ctx context.Context, query *SubStepQuery, nodes []*DagExecution, init func(*DagExecution), assign func(*DagExecution, *SubStep)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DagExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(substep.FieldExecutionID)
	}
	query.Where(predicate.SubStep(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(dagexecution.SubStepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DagExecutionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DagExecutionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dagexecution.Table, dagexecution.Columns, sqlgraph.NewFieldSpec(dagexecution.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dagexecution.FieldID)
		for i := range fields {
			if fields[i] != dagexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDag != nil {
			_spec.Node.AddColumnOnce(dagexecution.FieldDagID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DagExecutionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(dagexecution.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = dagexecution.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DagExecutionGroupBy is the group-by builder for DagExecution entities.
type DagExecutionGroupBy struct {
	selector
	build *DagExecutionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DagExecutionGroupBy) Aggregate(fns ...AggregateFunc) *DagExecutionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DagExecutionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DagExecutionQuery, *DagExecutionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DagExecutionGroupBy) sqlScan(ctx context.Context, root *DagExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DagExecutionSelect is the builder for selecting fields of DagExecution entities.
type DagExecutionSelect struct {
	*DagExecutionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DagExecutionSelect) Aggregate(fns ...AggregateFunc) *DagExecutionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DagExecutionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DagExecutionQuery, *DagExecutionSelect](ctx, _s.DagExecutionQuery, _s, _s.inters, v)
}

func (_s *DagExecutionSelect) sqlScan(ctx context.Context, root *DagExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
