// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldID, id))
}

// TranscriptID applies equality check predicate on the "transcript_id" field. It's identical to TranscriptIDEQ.
func TranscriptID(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTranscriptID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldKind, v))
}

// DedupeKey applies equality check predicate on the "dedupe_key" field. It's identical to DedupeKeyEQ.
func DedupeKey(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldDedupeKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// TranscriptIDEQ applies the EQ predicate on the "transcript_id" field.
func TranscriptIDEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldTranscriptID, v))
}

// TranscriptIDNEQ applies the NEQ predicate on the "transcript_id" field.
func TranscriptIDNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldTranscriptID, v))
}

// TranscriptIDIn applies the In predicate on the "transcript_id" field.
func TranscriptIDIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldTranscriptID, vs...))
}

// TranscriptIDNotIn applies the NotIn predicate on the "transcript_id" field.
func TranscriptIDNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldTranscriptID, vs...))
}

// TranscriptIDGT applies the GT predicate on the "transcript_id" field.
func TranscriptIDGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldTranscriptID, v))
}

// TranscriptIDGTE applies the GTE predicate on the "transcript_id" field.
func TranscriptIDGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldTranscriptID, v))
}

// TranscriptIDLT applies the LT predicate on the "transcript_id" field.
func TranscriptIDLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldTranscriptID, v))
}

// TranscriptIDLTE applies the LTE predicate on the "transcript_id" field.
func TranscriptIDLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldTranscriptID, v))
}

// TranscriptIDContains applies the Contains predicate on the "transcript_id" field.
func TranscriptIDContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldTranscriptID, v))
}

// TranscriptIDHasPrefix applies the HasPrefix predicate on the "transcript_id" field.
func TranscriptIDHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldTranscriptID, v))
}

// TranscriptIDHasSuffix applies the HasSuffix predicate on the "transcript_id" field.
func TranscriptIDHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldTranscriptID, v))
}

// TranscriptIDEqualFold applies the EqualFold predicate on the "transcript_id" field.
func TranscriptIDEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldTranscriptID, v))
}

// TranscriptIDContainsFold applies the ContainsFold predicate on the "transcript_id" field.
func TranscriptIDContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldTranscriptID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldKind, v))
}

// DedupeKeyEQ applies the EQ predicate on the "dedupe_key" field.
func DedupeKeyEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldDedupeKey, v))
}

// DedupeKeyNEQ applies the NEQ predicate on the "dedupe_key" field.
func DedupeKeyNEQ(v string) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldDedupeKey, v))
}

// DedupeKeyIn applies the In predicate on the "dedupe_key" field.
func DedupeKeyIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldDedupeKey, vs...))
}

// DedupeKeyNotIn applies the NotIn predicate on the "dedupe_key" field.
func DedupeKeyNotIn(vs ...string) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldDedupeKey, vs...))
}

// DedupeKeyGT applies the GT predicate on the "dedupe_key" field.
func DedupeKeyGT(v string) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldDedupeKey, v))
}

// DedupeKeyGTE applies the GTE predicate on the "dedupe_key" field.
func DedupeKeyGTE(v string) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldDedupeKey, v))
}

// DedupeKeyLT applies the LT predicate on the "dedupe_key" field.
func DedupeKeyLT(v string) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldDedupeKey, v))
}

// DedupeKeyLTE applies the LTE predicate on the "dedupe_key" field.
func DedupeKeyLTE(v string) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldDedupeKey, v))
}

// DedupeKeyContains applies the Contains predicate on the "dedupe_key" field.
func DedupeKeyContains(v string) predicate.Event {
	return predicate.Event(sql.FieldContains(FieldDedupeKey, v))
}

// DedupeKeyHasPrefix applies the HasPrefix predicate on the "dedupe_key" field.
func DedupeKeyHasPrefix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasPrefix(FieldDedupeKey, v))
}

// DedupeKeyHasSuffix applies the HasSuffix predicate on the "dedupe_key" field.
func DedupeKeyHasSuffix(v string) predicate.Event {
	return predicate.Event(sql.FieldHasSuffix(FieldDedupeKey, v))
}

// DedupeKeyEqualFold applies the EqualFold predicate on the "dedupe_key" field.
func DedupeKeyEqualFold(v string) predicate.Event {
	return predicate.Event(sql.FieldEqualFold(FieldDedupeKey, v))
}

// DedupeKeyContainsFold applies the ContainsFold predicate on the "dedupe_key" field.
func DedupeKeyContainsFold(v string) predicate.Event {
	return predicate.Event(sql.FieldContainsFold(FieldDedupeKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Event {
	return predicate.Event(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Event {
	return predicate.Event(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTranscript applies the HasEdge predicate on the "transcript" edge.
func HasTranscript() predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TranscriptTable, TranscriptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptWith applies the HasEdge predicate on the "transcript" edge with a given conditions (other predicates).
func HasTranscriptWith(preds ...predicate.Transcript) predicate.Event {
	return predicate.Event(func(s *sql.Selector) {
		step := newTranscriptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Event) predicate.Event {
	return predicate.Event(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Event) predicate.Event {
	return predicate.Event(sql.NotPredicates(p))
}
