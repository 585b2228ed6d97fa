// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/predicate"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// PipelineTaskQuery is the builder for querying PipelineTask entities.
type PipelineTaskQuery struct {
	config
	ctx            *QueryContext
	order          []pipelinetask.OrderOption
	inters         []Interceptor
	predicates     []predicate.PipelineTask
	withTranscript *TranscriptQuery
	withDependents *PipelineTaskQuery
	withDependsOn  *PipelineTaskQuery
	modifiers      []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PipelineTaskQuery builder.
func (_q *PipelineTaskQuery) Where(ps ...predicate.PipelineTask) *PipelineTaskQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PipelineTaskQuery) Limit(limit int) *PipelineTaskQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PipelineTaskQuery) Offset(offset int) *PipelineTaskQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PipelineTaskQuery) Unique(unique bool) *PipelineTaskQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PipelineTaskQuery) Order(o ...pipelinetask.OrderOption) *PipelineTaskQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTranscript chains the current query on the "transcript" edge.
func (_q *PipelineTaskQuery) QueryTranscript() *TranscriptQuery {
	query := (&TranscriptClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinetask.Table, pipelinetask.FieldID, selector),
			sqlgraph.To(transcript.Table, transcript.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pipelinetask.TranscriptTable, pipelinetask.TranscriptColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDependents chains the current query on the "dependents" edge.
func (_q *PipelineTaskQuery) QueryDependents() *PipelineTaskQuery {
	query := (&PipelineTaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinetask.Table, pipelinetask.FieldID, selector),
			sqlgraph.To(pipelinetask.Table, pipelinetask.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, pipelinetask.DependentsTable, pipelinetask.DependentsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDependsOn chains the current query on the "depends_on" edge.
func (_q *PipelineTaskQuery) QueryDependsOn() *PipelineTaskQuery {
	query := (&PipelineTaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pipelinetask.Table, pipelinetask.FieldID, selector),
			sqlgraph.To(pipelinetask.Table, pipelinetask.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, pipelinetask.DependsOnTable, pipelinetask.DependsOnPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PipelineTask entity from the query.
// Returns a *NotFoundError when no PipelineTask was found.
func (_q *PipelineTaskQuery) First(ctx context.Context) (*PipelineTask, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pipelinetask.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PipelineTaskQuery) FirstX(ctx context.Context) *PipelineTask {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PipelineTask ID from the query.
// Returns a *NotFoundError when no PipelineTask ID was found.
func (_q *PipelineTaskQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pipelinetask.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PipelineTaskQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PipelineTask entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PipelineTask entity is found.
// Returns a *NotFoundError when no PipelineTask entities are found.
func (_q *PipelineTaskQuery) Only(ctx context.Context) (*PipelineTask, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pipelinetask.Label}
	default:
		return nil, &NotSingularError{pipelinetask.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PipelineTaskQuery) OnlyX(ctx context.Context) *PipelineTask {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PipelineTask ID in the query.
// Returns a *NotSingularError when more than one PipelineTask ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PipelineTaskQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pipelinetask.Label}
	default:
		err = &NotSingularError{pipelinetask.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PipelineTaskQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PipelineTasks.
func (_q *PipelineTaskQuery) All(ctx context.Context) ([]*PipelineTask, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PipelineTask, *PipelineTaskQuery]()
	return withInterceptors[[]*PipelineTask](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PipelineTaskQuery) AllX(ctx context.Context) []*PipelineTask {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PipelineTask IDs.
func (_q *PipelineTaskQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pipelinetask.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PipelineTaskQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PipelineTaskQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PipelineTaskQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PipelineTaskQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PipelineTaskQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PipelineTaskQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PipelineTaskQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PipelineTaskQuery) Clone() *PipelineTaskQuery {
	if _q == nil {
		return nil
	}
	return &PipelineTaskQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]pipelinetask.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.PipelineTask{}, _q.predicates...),
		withTranscript: _q.withTranscript.Clone(),
		withDependents: _q.withDependents.Clone(),
		withDependsOn:  _q.withDependsOn.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTranscript tells the query-builder to eager-load the nodes that are connected to
// the "transcript" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineTaskQuery) WithTranscript(opts ...func(*TranscriptQuery)) *PipelineTaskQuery {
	query := (&TranscriptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTranscript = query
	return _q
}

// WithDependents tells the query-builder to eager-load the nodes that are connected to
// the "dependents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineTaskQuery) WithDependents(opts ...func(*PipelineTaskQuery)) *PipelineTaskQuery {
	query := (&PipelineTaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDependents = query
	return _q
}

// WithDependsOn tells the query-builder to eager-load the nodes that are connected to
// the "depends_on" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PipelineTaskQuery) WithDependsOn(opts ...func(*PipelineTaskQuery)) *PipelineTaskQuery {
	query := (&PipelineTaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDependsOn = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TranscriptID string `json:"transcript_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PipelineTask.Query().
//		GroupBy(pipelinetask.FieldTranscriptID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PipelineTaskQuery) GroupBy(field string, fields ...string) *PipelineTaskGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PipelineTaskGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pipelinetask.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TranscriptID string `json:"transcript_id,omitempty"`
//	}
//
//	client.PipelineTask.Query().
//		Select(pipelinetask.FieldTranscriptID).
//		Scan(ctx, &v)
func (_q *PipelineTaskQuery) Select(fields ...string) *PipelineTaskSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PipelineTaskSelect{PipelineTaskQuery: _q}
	sbuild.label = pipelinetask.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PipelineTaskSelect configured with the given aggregations.
func (_q *PipelineTaskQuery) Aggregate(fns ...AggregateFunc) *PipelineTaskSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PipelineTaskQuery) prepareQuery(ctx context.Context) error {
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
		if !pipelinetask.ValidColumn(f) {
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

func (_q *PipelineTaskQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PipelineTask, error) {
	var (
		nodes       = []*PipelineTask{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withTranscript != nil,
			_q.withDependents != nil,
			_q.withDependsOn != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PipelineTask).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PipelineTask{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withTranscript; query != nil {
		if err := _q.loadTranscript(ctx, query, nodes, nil,
			func(n *PipelineTask, e *Transcript) { n.Edges.Transcript = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDependents; query != nil {
		if err := _q.loadDependents(ctx, query, nodes,
			func(n *PipelineTask) { n.Edges.Dependents = []*PipelineTask{} },
			func(n *PipelineTask, e *PipelineTask) { n.Edges.Dependents = append(n.Edges.Dependents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDependsOn; query != nil {
		if err := _q.loadDependsOn(ctx, query, nodes,
			func(n *PipelineTask) { n.Edges.DependsOn = []*PipelineTask{} },
			func(n *PipelineTask, e *PipelineTask) { n.Edges.DependsOn = append(n.Edges.DependsOn, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PipelineTaskQuery) loadTranscript(ctx context.Context, query *TranscriptQuery, nodes []*PipelineTask, init func(*PipelineTask), assign func(*PipelineTask, *Transcript)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PipelineTask)
	for i := range nodes {
		fk := nodes[i].TranscriptID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(transcript.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "transcript_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PipelineTaskQuery) loadDependents(ctx context.Context, query *PipelineTaskQuery, nodes []*PipelineTask, init func(*PipelineTask), assign func(*PipelineTask, *PipelineTask)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*PipelineTask)
	nids := make(map[string]map[*PipelineTask]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(pipelinetask.DependentsTable)
		s.Join(joinT).On(s.C(pipelinetask.FieldID), joinT.C(pipelinetask.DependentsPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(pipelinetask.DependentsPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(pipelinetask.DependentsPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*PipelineTask]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*PipelineTask](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "dependents" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *PipelineTaskQuery) loadDependsOn(ctx context.Context, query *PipelineTaskQuery, nodes []*PipelineTask, init func(*PipelineTask), assign func(*PipelineTask, *PipelineTask)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*PipelineTask)
	nids := make(map[string]map[*PipelineTask]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(pipelinetask.DependsOnTable)
		s.Join(joinT).On(s.C(pipelinetask.FieldID), joinT.C(pipelinetask.DependsOnPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(pipelinetask.DependsOnPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(pipelinetask.DependsOnPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*PipelineTask]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*PipelineTask](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "depends_on" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *PipelineTaskQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PipelineTaskQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pipelinetask.Table, pipelinetask.Columns, sqlgraph.NewFieldSpec(pipelinetask.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinetask.FieldID)
		for i := range fields {
			if fields[i] != pipelinetask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTranscript != nil {
			_spec.Node.AddColumnOnce(pipelinetask.FieldTranscriptID)
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

func (_q *PipelineTaskQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pipelinetask.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pipelinetask.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *PipelineTaskQuery) ForUpdate(opts ...sql.LockOption) *PipelineTaskQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *PipelineTaskQuery) ForShare(opts ...sql.LockOption) *PipelineTaskQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PipelineTaskGroupBy is the group-by builder for PipelineTask entities.
type PipelineTaskGroupBy struct {
	selector
	build *PipelineTaskQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PipelineTaskGroupBy) Aggregate(fns ...AggregateFunc) *PipelineTaskGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PipelineTaskGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PipelineTaskQuery, *PipelineTaskGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PipelineTaskGroupBy) sqlScan(ctx context.Context, root *PipelineTaskQuery, v any) error {
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

// PipelineTaskSelect is the builder for selecting fields of PipelineTask entities.
type PipelineTaskSelect struct {
	*PipelineTaskQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PipelineTaskSelect) Aggregate(fns ...AggregateFunc) *PipelineTaskSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PipelineTaskSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PipelineTaskQuery, *PipelineTaskSelect](ctx, _s.PipelineTaskQuery, _s, _s.inters, v)
}

func (_s *PipelineTaskSelect) sqlScan(ctx context.Context, root *PipelineTaskQuery, v any) error {
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
