// Code generated by ent, DO NOT EDIT.

package participant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldID, id))
}

// TranscriptID applies equality check predicate on the "transcript_id" field. It's identical to TranscriptIDEQ.
func TranscriptID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldTranscriptID, v))
}

// SpeakerIndex applies equality check predicate on the "speaker_index" field. It's identical to SpeakerIndexEQ.
func SpeakerIndex(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldSpeakerIndex, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldDisplayName, v))
}

// PlatformID applies equality check predicate on the "platform_id" field. It's identical to PlatformIDEQ.
func PlatformID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldPlatformID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldUpdatedAt, v))
}

// TranscriptIDEQ applies the EQ predicate on the "transcript_id" field.
func TranscriptIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldTranscriptID, v))
}

// TranscriptIDNEQ applies the NEQ predicate on the "transcript_id" field.
func TranscriptIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldTranscriptID, v))
}

// TranscriptIDIn applies the In predicate on the "transcript_id" field.
func TranscriptIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldTranscriptID, vs...))
}

// TranscriptIDNotIn applies the NotIn predicate on the "transcript_id" field.
func TranscriptIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldTranscriptID, vs...))
}

// TranscriptIDGT applies the GT predicate on the "transcript_id" field.
func TranscriptIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldTranscriptID, v))
}

// TranscriptIDGTE applies the GTE predicate on the "transcript_id" field.
func TranscriptIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldTranscriptID, v))
}

// TranscriptIDLT applies the LT predicate on the "transcript_id" field.
func TranscriptIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldTranscriptID, v))
}

// TranscriptIDLTE applies the LTE predicate on the "transcript_id" field.
func TranscriptIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldTranscriptID, v))
}

// TranscriptIDContains applies the Contains predicate on the "transcript_id" field.
func TranscriptIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldTranscriptID, v))
}

// TranscriptIDHasPrefix applies the HasPrefix predicate on the "transcript_id" field.
func TranscriptIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldTranscriptID, v))
}

// TranscriptIDHasSuffix applies the HasSuffix predicate on the "transcript_id" field.
func TranscriptIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldTranscriptID, v))
}

// TranscriptIDEqualFold applies the EqualFold predicate on the "transcript_id" field.
func TranscriptIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldTranscriptID, v))
}

// TranscriptIDContainsFold applies the ContainsFold predicate on the "transcript_id" field.
func TranscriptIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldTranscriptID, v))
}

// SpeakerIndexEQ applies the EQ predicate on the "speaker_index" field.
func SpeakerIndexEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldSpeakerIndex, v))
}

// SpeakerIndexNEQ applies the NEQ predicate on the "speaker_index" field.
func SpeakerIndexNEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldSpeakerIndex, v))
}

// SpeakerIndexIn applies the In predicate on the "speaker_index" field.
func SpeakerIndexIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldSpeakerIndex, vs...))
}

// SpeakerIndexNotIn applies the NotIn predicate on the "speaker_index" field.
func SpeakerIndexNotIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldSpeakerIndex, vs...))
}

// SpeakerIndexGT applies the GT predicate on the "speaker_index" field.
func SpeakerIndexGT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldSpeakerIndex, v))
}

// SpeakerIndexGTE applies the GTE predicate on the "speaker_index" field.
func SpeakerIndexGTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldSpeakerIndex, v))
}

// SpeakerIndexLT applies the LT predicate on the "speaker_index" field.
func SpeakerIndexLT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldSpeakerIndex, v))
}

// SpeakerIndexLTE applies the LTE predicate on the "speaker_index" field.
func SpeakerIndexLTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldSpeakerIndex, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldDisplayName, v))
}

// PlatformIDEQ applies the EQ predicate on the "platform_id" field.
func PlatformIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldPlatformID, v))
}

// PlatformIDNEQ applies the NEQ predicate on the "platform_id" field.
func PlatformIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldPlatformID, v))
}

// PlatformIDIn applies the In predicate on the "platform_id" field.
func PlatformIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldPlatformID, vs...))
}

// PlatformIDNotIn applies the NotIn predicate on the "platform_id" field.
func PlatformIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldPlatformID, vs...))
}

// PlatformIDGT applies the GT predicate on the "platform_id" field.
func PlatformIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldPlatformID, v))
}

// PlatformIDGTE applies the GTE predicate on the "platform_id" field.
func PlatformIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldPlatformID, v))
}

// PlatformIDLT applies the LT predicate on the "platform_id" field.
func PlatformIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldPlatformID, v))
}

// PlatformIDLTE applies the LTE predicate on the "platform_id" field.
func PlatformIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldPlatformID, v))
}

// PlatformIDContains applies the Contains predicate on the "platform_id" field.
func PlatformIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldPlatformID, v))
}

// PlatformIDHasPrefix applies the HasPrefix predicate on the "platform_id" field.
func PlatformIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldPlatformID, v))
}

// PlatformIDHasSuffix applies the HasSuffix predicate on the "platform_id" field.
func PlatformIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldPlatformID, v))
}

// PlatformIDIsNil applies the IsNil predicate on the "platform_id" field.
func PlatformIDIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldPlatformID))
}

// PlatformIDNotNil applies the NotNil predicate on the "platform_id" field.
func PlatformIDNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldPlatformID))
}

// PlatformIDEqualFold applies the EqualFold predicate on the "platform_id" field.
func PlatformIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldPlatformID, v))
}

// PlatformIDContainsFold applies the ContainsFold predicate on the "platform_id" field.
func PlatformIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldPlatformID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldUserID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTranscript applies the HasEdge predicate on the "transcript" edge.
func HasTranscript() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TranscriptTable, TranscriptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptWith applies the HasEdge predicate on the "transcript" edge with a given conditions (other predicates).
func HasTranscriptWith(preds ...predicate.Transcript) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newTranscriptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.NotPredicates(p))
}
