// Code generated by ent, DO NOT EDIT.

package meeting

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldID, id))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldRoomID, v))
}

// RecordingID applies equality check predicate on the "recording_id" field. It's identical to RecordingIDEQ.
func RecordingID(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldRecordingID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDIsNil applies the IsNil predicate on the "room_id" field.
func RoomIDIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldRoomID))
}

// RoomIDNotNil applies the NotNil predicate on the "room_id" field.
func RoomIDNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldRoomID))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldRoomID, v))
}

// RecordingIDEQ applies the EQ predicate on the "recording_id" field.
func RecordingIDEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldRecordingID, v))
}

// RecordingIDNEQ applies the NEQ predicate on the "recording_id" field.
func RecordingIDNEQ(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldRecordingID, v))
}

// RecordingIDIn applies the In predicate on the "recording_id" field.
func RecordingIDIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldRecordingID, vs...))
}

// RecordingIDNotIn applies the NotIn predicate on the "recording_id" field.
func RecordingIDNotIn(vs ...string) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldRecordingID, vs...))
}

// RecordingIDGT applies the GT predicate on the "recording_id" field.
func RecordingIDGT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldRecordingID, v))
}

// RecordingIDGTE applies the GTE predicate on the "recording_id" field.
func RecordingIDGTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldRecordingID, v))
}

// RecordingIDLT applies the LT predicate on the "recording_id" field.
func RecordingIDLT(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldRecordingID, v))
}

// RecordingIDLTE applies the LTE predicate on the "recording_id" field.
func RecordingIDLTE(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldRecordingID, v))
}

// RecordingIDContains applies the Contains predicate on the "recording_id" field.
func RecordingIDContains(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContains(FieldRecordingID, v))
}

// RecordingIDHasPrefix applies the HasPrefix predicate on the "recording_id" field.
func RecordingIDHasPrefix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasPrefix(FieldRecordingID, v))
}

// RecordingIDHasSuffix applies the HasSuffix predicate on the "recording_id" field.
func RecordingIDHasSuffix(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldHasSuffix(FieldRecordingID, v))
}

// RecordingIDIsNil applies the IsNil predicate on the "recording_id" field.
func RecordingIDIsNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldIsNull(FieldRecordingID))
}

// RecordingIDNotNil applies the NotNil predicate on the "recording_id" field.
func RecordingIDNotNil() predicate.Meeting {
	return predicate.Meeting(sql.FieldNotNull(FieldRecordingID))
}

// RecordingIDEqualFold applies the EqualFold predicate on the "recording_id" field.
func RecordingIDEqualFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldEqualFold(FieldRecordingID, v))
}

// RecordingIDContainsFold applies the ContainsFold predicate on the "recording_id" field.
func RecordingIDContainsFold(v string) predicate.Meeting {
	return predicate.Meeting(sql.FieldContainsFold(FieldRecordingID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Meeting {
	return predicate.Meeting(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRoom applies the HasEdge predicate on the "room" edge.
func HasRoom() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoomWith applies the HasEdge predicate on the "room" edge with a given conditions (other predicates).
func HasRoomWith(preds ...predicate.Room) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newRoomStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConsents applies the HasEdge predicate on the "consents" edge.
func HasConsents() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConsentsTable, ConsentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConsentsWith applies the HasEdge predicate on the "consents" edge with a given conditions (other predicates).
func HasConsentsWith(preds ...predicate.MeetingConsent) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newConsentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTranscripts applies the HasEdge predicate on the "transcripts" edge.
func HasTranscripts() predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TranscriptsTable, TranscriptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptsWith applies the HasEdge predicate on the "transcripts" edge with a given conditions (other predicates).
func HasTranscriptsWith(preds ...predicate.Transcript) predicate.Meeting {
	return predicate.Meeting(func(s *sql.Selector) {
		step := newTranscriptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Meeting) predicate.Meeting {
	return predicate.Meeting(sql.NotPredicates(p))
}
