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
	"github.com/monadical-sas/reflector/ent/event"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/participant"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/predicate"
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// TranscriptQuery is the builder for querying Transcript entities.
type TranscriptQuery struct {
	config
	ctx              *QueryContext
	order            []transcript.OrderOption
	inters           []Interceptor
	predicates       []predicate.Transcript
	withRoom         *RoomQuery
	withMeeting      *MeetingQuery
	withTopics       *TopicQuery
	withParticipants *ParticipantQuery
	withEvents       *EventQuery
	withTasks        *PipelineTaskQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TranscriptQuery builder.
func (_q *TranscriptQuery) Where(ps ...predicate.Transcript) *TranscriptQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TranscriptQuery) Limit(limit int) *TranscriptQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TranscriptQuery) Offset(offset int) *TranscriptQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TranscriptQuery) Unique(unique bool) *TranscriptQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TranscriptQuery) Order(o ...transcript.OrderOption) *TranscriptQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRoom chains the current query on the "room" edge.
func (_q *TranscriptQuery) QueryRoom() *RoomQuery {
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
			sqlgraph.From(transcript.Table, transcript.FieldID, selector),
			sqlgraph.To(room.Table, room.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transcript.RoomTable, transcript.RoomColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMeeting chains the current query on the "meeting" edge.
func (_q *TranscriptQuery) QueryMeeting() *MeetingQuery {
	query := (&MeetingClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(transcript.Table, transcript.FieldID, selector),
			sqlgraph.To(meeting.Table, meeting.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transcript.MeetingTable, transcript.MeetingColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTopics chains the current query on the "topics" edge.
func (_q *TranscriptQuery) QueryTopics() *TopicQuery {
	query := (&TopicClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(transcript.Table, transcript.FieldID, selector),
			sqlgraph.To(topic.Table, topic.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcript.TopicsTable, transcript.TopicsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryParticipants chains the current query on the "participants" edge.
func (_q *TranscriptQuery) QueryParticipants() *ParticipantQuery {
	query := (&ParticipantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(transcript.Table, transcript.FieldID, selector),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcript.ParticipantsTable, transcript.ParticipantsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvents chains the current query on the "events" edge.
func (_q *TranscriptQuery) QueryEvents() *EventQuery {
	query := (&EventClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(transcript.Table, transcript.FieldID, selector),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcript.EventsTable, transcript.EventsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTasks chains the current query on the "tasks" edge.
func (_q *TranscriptQuery) QueryTasks() *PipelineTaskQuery {
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
			sqlgraph.From(transcript.Table, transcript.FieldID, selector),
			sqlgraph.To(pipelinetask.Table, pipelinetask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, transcript.TasksTable, transcript.TasksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Transcript entity from the query.
// Returns a *NotFoundError when no Transcript was found.
func (_q *TranscriptQuery) First(ctx context.Context) (*Transcript, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{transcript.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TranscriptQuery) FirstX(ctx context.Context) *Transcript {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Transcript ID from the query.
// Returns a *NotFoundError when no Transcript ID was found.
func (_q *TranscriptQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{transcript.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TranscriptQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Transcript entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Transcript entity is found.
// Returns a *NotFoundError when no Transcript entities are found.
func (_q *TranscriptQuery) Only(ctx context.Context) (*Transcript, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{transcript.Label}
	default:
		return nil, &NotSingularError{transcript.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TranscriptQuery) OnlyX(ctx context.Context) *Transcript {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Transcript ID in the query.
// Returns a *NotSingularError when more than one Transcript ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TranscriptQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{transcript.Label}
	default:
		err = &NotSingularError{transcript.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TranscriptQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Transcripts.
func (_q *TranscriptQuery) All(ctx context.Context) ([]*Transcript, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Transcript, *TranscriptQuery]()
	return withInterceptors[[]*Transcript](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TranscriptQuery) AllX(ctx context.Context) []*Transcript {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Transcript IDs.
func (_q *TranscriptQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(transcript.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TranscriptQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TranscriptQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TranscriptQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TranscriptQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TranscriptQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TranscriptQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TranscriptQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TranscriptQuery) Clone() *TranscriptQuery {
	if _q == nil {
		return nil
	}
	return &TranscriptQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]transcript.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Transcript{}, _q.predicates...),
		withRoom:         _q.withRoom.Clone(),
		withMeeting:      _q.withMeeting.Clone(),
		withTopics:       _q.withTopics.Clone(),
		withParticipants: _q.withParticipants.Clone(),
		withEvents:       _q.withEvents.Clone(),
		withTasks:        _q.withTasks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRoom tells the query-builder to eager-load the nodes that are connected to
// the "room" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TranscriptQuery) WithRoom(opts ...func(*RoomQuery)) *TranscriptQuery {
	query := (&RoomClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRoom = query
	return _q
}

// WithMeeting tells the query-builder to eager-load the nodes that are connected to
// the "meeting" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TranscriptQuery) WithMeeting(opts ...func(*MeetingQuery)) *TranscriptQuery {
	query := (&MeetingClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMeeting = query
	return _q
}

// WithTopics tells the query-builder to eager-load the nodes that are connected to
// the "topics" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TranscriptQuery) WithTopics(opts ...func(*TopicQuery)) *TranscriptQuery {
	query := (&TopicClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTopics = query
	return _q
}

// WithParticipants tells the query-builder to eager-load the nodes that are connected to
// the "participants" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TranscriptQuery) WithParticipants(opts ...func(*ParticipantQuery)) *TranscriptQuery {
	query := (&ParticipantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParticipants = query
	return _q
}

// WithEvents tells the query-builder to eager-load the nodes that are connected to
// the "events" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TranscriptQuery) WithEvents(opts ...func(*EventQuery)) *TranscriptQuery {
	query := (&EventClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvents = query
	return _q
}

// WithTasks tells the query-builder to eager-load the nodes that are connected to
// the "tasks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TranscriptQuery) WithTasks(opts ...func(*PipelineTaskQuery)) *TranscriptQuery {
	query := (&PipelineTaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTasks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Status transcript.Status `json:"status,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Transcript.Query().
//		GroupBy(transcript.FieldStatus).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TranscriptQuery) GroupBy(field string, fields ...string) *TranscriptGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TranscriptGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = transcript.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Status transcript.Status `json:"status,omitempty"`
//	}
//
//	client.Transcript.Query().
//		Select(transcript.FieldStatus).
//		Scan(ctx, &v)
func (_q *TranscriptQuery) Select(fields ...string) *TranscriptSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TranscriptSelect{TranscriptQuery: _q}
	sbuild.label = transcript.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TranscriptSelect configured with the given aggregations.
func (_q *TranscriptQuery) Aggregate(fns ...AggregateFunc) *TranscriptSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TranscriptQuery) prepareQuery(ctx context.Context) error {
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
		if !transcript.ValidColumn(f) {
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

func (_q *TranscriptQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Transcript, error) {
	var (
		nodes       = []*Transcript{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withRoom != nil,
			_q.withMeeting != nil,
			_q.withTopics != nil,
			_q.withParticipants != nil,
			_q.withEvents != nil,
			_q.withTasks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Transcript).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Transcript{config: _q.config}
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
			func(n *Transcript, e *Room) { n.Edges.Room = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMeeting; query != nil {
		if err := _q.loadMeeting(ctx, query, nodes, nil,
			func(n *Transcript, e *Meeting) { n.Edges.Meeting = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTopics; query != nil {
		if err := _q.loadTopics(ctx, query, nodes,
			func(n *Transcript) { n.Edges.Topics = []*Topic{} },
			func(n *Transcript, e *Topic) { n.Edges.Topics = append(n.Edges.Topics, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withParticipants; query != nil {
		if err := _q.loadParticipants(ctx, query, nodes,
			func(n *Transcript) { n.Edges.Participants = []*Participant{} },
			func(n *Transcript, e *Participant) { n.Edges.Participants = append(n.Edges.Participants, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvents; query != nil {
		if err := _q.loadEvents(ctx, query, nodes,
			func(n *Transcript) { n.Edges.Events = []*Event{} },
			func(n *Transcript, e *Event) { n.Edges.Events = append(n.Edges.Events, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTasks; query != nil {
		if err := _q.loadTasks(ctx, query, nodes,
			func(n *Transcript) { n.Edges.Tasks = []*PipelineTask{} },
			func(n *Transcript, e *PipelineTask) { n.Edges.Tasks = append(n.Edges.Tasks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TranscriptQuery) loadRoom(ctx context.Context, query *RoomQuery, nodes []*Transcript, init func(*Transcript), assign func(*Transcript, *Room)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Transcript)
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
func (_q *TranscriptQuery) loadMeeting(ctx context.Context, query *MeetingQuery, nodes []*Transcript, init func(*Transcript), assign func(*Transcript, *Meeting)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Transcript)
	for i := range nodes {
		if nodes[i].MeetingID == nil {
			continue
		}
		fk := *nodes[i].MeetingID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(meeting.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "meeting_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TranscriptQuery) loadTopics(ctx context.Context, query *TopicQuery, nodes []*Transcript, init func(*Transcript), assign func(*Transcript, *Topic)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Transcript)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(topic.FieldTranscriptID)
	}
	query.Where(predicate.Topic(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(transcript.TopicsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TranscriptID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "transcript_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TranscriptQuery) loadParticipants(ctx context.Context, query *ParticipantQuery, nodes []*Transcript, init func(*Transcript), assign func(*Transcript, *Participant)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Transcript)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(participant.FieldTranscriptID)
	}
	query.Where(predicate.Participant(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(transcript.ParticipantsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TranscriptID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "transcript_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TranscriptQuery) loadEvents(ctx context.Context, query *EventQuery, nodes []*Transcript, init func(*Transcript), assign func(*Transcript, *Event)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Transcript)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(event.FieldTranscriptID)
	}
	query.Where(predicate.Event(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(transcript.EventsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TranscriptID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "transcript_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *TranscriptQuery) loadTasks(ctx context.Context, query *PipelineTaskQuery, nodes []*Transcript, init func(*Transcript), assign func(*Transcript, *PipelineTask)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Transcript)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(pipelinetask.FieldTranscriptID)
	}
	query.Where(predicate.PipelineTask(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(transcript.TasksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TranscriptID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "transcript_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TranscriptQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *TranscriptQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(transcript.Table, transcript.Columns, sqlgraph.NewFieldSpec(transcript.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcript.FieldID)
		for i := range fields {
			if fields[i] != transcript.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRoom != nil {
			_spec.Node.AddColumnOnce(transcript.FieldRoomID)
		}
		if _q.withMeeting != nil {
			_spec.Node.AddColumnOnce(transcript.FieldMeetingID)
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

func (_q *TranscriptQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(transcript.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = transcript.Columns
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
func (_q *TranscriptQuery) ForUpdate(opts ...sql.LockOption) *TranscriptQuery {
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
func (_q *TranscriptQuery) ForShare(opts ...sql.LockOption) *TranscriptQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// TranscriptGroupBy is the group-by builder for Transcript entities.
type TranscriptGroupBy struct {
	selector
	build *TranscriptQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TranscriptGroupBy) Aggregate(fns ...AggregateFunc) *TranscriptGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TranscriptGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TranscriptQuery, *TranscriptGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TranscriptGroupBy) sqlScan(ctx context.Context, root *TranscriptQuery, v any) error {
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

// TranscriptSelect is the builder for selecting fields of Transcript entities.
type TranscriptSelect struct {
	*TranscriptQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TranscriptSelect) Aggregate(fns ...AggregateFunc) *TranscriptSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TranscriptSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TranscriptQuery, *TranscriptSelect](ctx, _s.TranscriptQuery, _s, _s.inters, v)
}

func (_s *TranscriptSelect) sqlScan(ctx context.Context, root *TranscriptQuery, v any) error {
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
