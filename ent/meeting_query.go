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
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/meetingconsent"
	"github.com/monadical-sas/reflector/ent/predicate"
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// MeetingQuery is the builder for querying Meeting entities.
type MeetingQuery struct {
	config
	ctx             *QueryContext
	order           []meeting.OrderOption
	inters          []Interceptor
	predicates      []predicate.Meeting
	withRoom        *RoomQuery
	withConsents    *MeetingConsentQuery
	withTranscripts *TranscriptQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MeetingQuery builder.
func (_q *MeetingQuery) Where(ps ...predicate.Meeting) *MeetingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MeetingQuery) Limit(limit int) *MeetingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MeetingQuery) Offset(offset int) *MeetingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MeetingQuery) Unique(unique bool) *MeetingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MeetingQuery) Order(o ...meeting.OrderOption) *MeetingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRoom chains the current query on the "room" edge.
func (_q *MeetingQuery) QueryRoom() *RoomQuery {
	query := (&RoomClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(meeting.Table, meeting.FieldID, selector),
			sqlgraph.To(room.Table, room.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, meeting.RoomTable, meeting.RoomColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryConsents chains the current query on the "consents" edge.
func (_q *MeetingQuery) QueryConsents() *MeetingConsentQuery {
	query := (&MeetingConsentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(meeting.Table, meeting.FieldID, selector),
			sqlgraph.To(meetingconsent.Table, meetingconsent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, meeting.ConsentsTable, meeting.ConsentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTranscripts chains the current query on the "transcripts" edge.
func (_q *MeetingQuery) QueryTranscripts() *TranscriptQuery {
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
			sqlgraph.From(meeting.Table, meeting.FieldID, selector),
			sqlgraph.To(transcript.Table, transcript.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, meeting.TranscriptsTable, meeting.TranscriptsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Meeting entity from the query.
// Returns a *NotFoundError when no Meeting was found.
func (_q *MeetingQuery) First(ctx context.Context) (*Meeting, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{meeting.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MeetingQuery) FirstX(ctx context.Context) *Meeting {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Meeting ID from the query.
// Returns a *NotFoundError when no Meeting ID was found.
func (_q *MeetingQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{meeting.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MeetingQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Meeting entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Meeting entity is found.
// Returns a *NotFoundError when no Meeting entities are found.
func (_q *MeetingQuery) Only(ctx context.Context) (*Meeting, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{meeting.Label}
	default:
		return nil, &NotSingularError{meeting.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MeetingQuery) OnlyX(ctx context.Context) *Meeting {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Meeting ID in the query.
// Returns a *NotSingularError when more than one Meeting ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MeetingQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{meeting.Label}
	default:
		err = &NotSingularError{meeting.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MeetingQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Meetings.
func (_q *MeetingQuery) All(ctx context.Context) ([]*Meeting, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Meeting, *MeetingQuery]()
	return withInterceptors[[]*Meeting](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MeetingQuery) AllX(ctx context.Context) []*Meeting {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Meeting IDs.
func (_q *MeetingQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(meeting.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MeetingQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MeetingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MeetingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MeetingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MeetingQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MeetingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MeetingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MeetingQuery) Clone() *MeetingQuery {
	if _q == nil {
		return nil
	}
	return &MeetingQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]meeting.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.Meeting{}, _q.predicates...),
		withRoom:        _q.withRoom.Clone(),
		withConsents:    _q.withConsents.Clone(),
		withTranscripts: _q.withTranscripts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRoom tells the query-builder to eager-load the nodes that are connected to
// the "room" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MeetingQuery) WithRoom(opts ...func(*RoomQuery)) *MeetingQuery {
	query := (&RoomClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRoom = query
	return _q
}

// WithConsents tells the query-builder to eager-load the nodes that are connected to
// the "consents" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MeetingQuery) WithConsents(opts ...func(*MeetingConsentQuery)) *MeetingQuery {
	query := (&MeetingConsentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withConsents = query
	return _q
}

// WithTranscripts tells the query-builder to eager-load the nodes that are connected to
// the "transcripts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MeetingQuery) WithTranscripts(opts ...func(*TranscriptQuery)) *MeetingQuery {
	query := (&TranscriptClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTranscripts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		RoomID string `json:"room_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Meeting.Query().
//		GroupBy(meeting.FieldRoomID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MeetingQuery) GroupBy(field string, fields ...string) *MeetingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MeetingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = meeting.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		RoomID string `json:"room_id,omitempty"`
//	}
//
//	client.Meeting.Query().
//		Select(meeting.FieldRoomID).
//		Scan(ctx, &v)
func (_q *MeetingQuery) Select(fields ...string) *MeetingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MeetingSelect{MeetingQuery: _q}
	sbuild.label = meeting.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MeetingSelect configured with the given aggregations.
func (_q *MeetingQuery) Aggregate(fns ...AggregateFunc) *MeetingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MeetingQuery) prepareQuery(ctx context.Context) error {
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
		if !meeting.ValidColumn(f) {
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

func (_q *MeetingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Meeting, error) {
	var (
		nodes       = []*Meeting{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withRoom != nil,
			_q.withConsents != nil,
			_q.withTranscripts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Meeting).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Meeting{config: _q.config}
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
	if query := _q.withRoom; query != nil {
		if err := _q.loadRoom(ctx, query, nodes, nil,
			func(n *Meeting, e *Room) { n.Edges.Room = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withConsents; query != nil {
		if err := _q.loadConsents(ctx, query, nodes,
			func(n *Meeting) { n.Edges.Consents = []*MeetingConsent{} },
			func(n *Meeting, e *MeetingConsent) { n.Edges.Consents = append(n.Edges.Consents, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTranscripts; query != nil {
		if err := _q.loadTranscripts(ctx, query, nodes,
			func(n *Meeting) { n.Edges.Transcripts = []*Transcript{} },
			func(n *Meeting, e *Transcript) { n.Edges.Transcripts = append(n.Edges.Transcripts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MeetingQuery) loadRoom(ctx context.Context, query *RoomQuery, nodes []*Meeting, init func(*Meeting), assign func(*Meeting, *Room)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Meeting)
	for i := range nodes {
		if nodes[i].RoomID == nil {
			continue
		}
		fk := *nodes[i].RoomID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(room.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "room_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *MeetingQuery) loadConsents(ctx context.Context, query *MeetingConsentQuery, nodes []*Meeting, init func(*Meeting), assign func(*Meeting, *MeetingConsent)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Meeting)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(meetingconsent.FieldMeetingID)
	}
	query.Where(predicate.MeetingConsent(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(meeting.ConsentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MeetingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "meeting_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MeetingQuery) loadTranscripts(ctx context.Context, query *TranscriptQuery, nodes []*Meeting, init func(*Meeting), assign func(*Meeting, *Transcript)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Meeting)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(transcript.FieldMeetingID)
	}
	query.Where(predicate.Transcript(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(meeting.TranscriptsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MeetingID
		if fk == nil {
			return fmt.Errorf(`foreign-key "meeting_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "meeting_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MeetingQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *MeetingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(meeting.Table, meeting.Columns, sqlgraph.NewFieldSpec(meeting.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, meeting.FieldID)
		for i := range fields {
			if fields[i] != meeting.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRoom != nil {
			_spec.Node.AddColumnOnce(meeting.FieldRoomID)
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

func (_q *MeetingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(meeting.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = meeting.Columns
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
func (_q *MeetingQuery) ForUpdate(opts ...sql.LockOption) *MeetingQuery {
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
func (_q *MeetingQuery) ForShare(opts ...sql.LockOption) *MeetingQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// MeetingGroupBy is the group-by builder for Meeting entities.
type MeetingGroupBy struct {
	selector
	build *MeetingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MeetingGroupBy) Aggregate(fns ...AggregateFunc) *MeetingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MeetingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MeetingQuery, *MeetingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MeetingGroupBy) sqlScan(ctx context.Context, root *MeetingQuery, v any) error {
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

// MeetingSelect is the builder for selecting fields of Meeting entities.
type MeetingSelect struct {
	*MeetingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MeetingSelect) Aggregate(fns ...AggregateFunc) *MeetingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MeetingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MeetingQuery, *MeetingSelect](ctx, _s.MeetingQuery, _s, _s.inters, v)
}

func (_s *MeetingSelect) sqlScan(ctx context.Context, root *MeetingQuery, v any) error {
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
