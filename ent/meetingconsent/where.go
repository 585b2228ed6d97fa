// Code generated by ent, DO NOT EDIT.

package meetingconsent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldContainsFold(FieldID, id))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldMeetingID, v))
}

// ParticipantIdentifier applies equality check predicate on the "participant_identifier" field. It's identical to ParticipantIdentifierEQ.
func ParticipantIdentifier(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldParticipantIdentifier, v))
}

// Approved applies equality check predicate on the "approved" field. It's identical to ApprovedEQ.
func Approved(v bool) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldApproved, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldUpdatedAt, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldContainsFold(FieldMeetingID, v))
}

// ParticipantIdentifierEQ applies the EQ predicate on the "participant_identifier" field.
func ParticipantIdentifierEQ(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierNEQ applies the NEQ predicate on the "participant_identifier" field.
func ParticipantIdentifierNEQ(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNEQ(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierIn applies the In predicate on the "participant_identifier" field.
func ParticipantIdentifierIn(vs ...string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldIn(FieldParticipantIdentifier, vs...))
}

// ParticipantIdentifierNotIn applies the NotIn predicate on the "participant_identifier" field.
func ParticipantIdentifierNotIn(vs ...string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNotIn(FieldParticipantIdentifier, vs...))
}

// ParticipantIdentifierGT applies the GT predicate on the "participant_identifier" field.
func ParticipantIdentifierGT(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGT(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierGTE applies the GTE predicate on the "participant_identifier" field.
func ParticipantIdentifierGTE(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGTE(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierLT applies the LT predicate on the "participant_identifier" field.
func ParticipantIdentifierLT(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLT(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierLTE applies the LTE predicate on the "participant_identifier" field.
func ParticipantIdentifierLTE(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLTE(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierContains applies the Contains predicate on the "participant_identifier" field.
func ParticipantIdentifierContains(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldContains(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierHasPrefix applies the HasPrefix predicate on the "participant_identifier" field.
func ParticipantIdentifierHasPrefix(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldHasPrefix(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierHasSuffix applies the HasSuffix predicate on the "participant_identifier" field.
func ParticipantIdentifierHasSuffix(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldHasSuffix(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierIsNil applies the IsNil predicate on the "participant_identifier" field.
func ParticipantIdentifierIsNil() predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldIsNull(FieldParticipantIdentifier))
}

// ParticipantIdentifierNotNil applies the NotNil predicate on the "participant_identifier" field.
func ParticipantIdentifierNotNil() predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNotNull(FieldParticipantIdentifier))
}

// ParticipantIdentifierEqualFold applies the EqualFold predicate on the "participant_identifier" field.
func ParticipantIdentifierEqualFold(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEqualFold(FieldParticipantIdentifier, v))
}

// ParticipantIdentifierContainsFold applies the ContainsFold predicate on the "participant_identifier" field.
func ParticipantIdentifierContainsFold(v string) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldContainsFold(FieldParticipantIdentifier, v))
}

// ApprovedEQ applies the EQ predicate on the "approved" field.
func ApprovedEQ(v bool) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldApproved, v))
}

// ApprovedNEQ applies the NEQ predicate on the "approved" field.
func ApprovedNEQ(v bool) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNEQ(FieldApproved, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMeeting applies the HasEdge predicate on the "meeting" edge.
func HasMeeting() predicate.MeetingConsent {
	return predicate.MeetingConsent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingWith applies the HasEdge predicate on the "meeting" edge with a given conditions (other predicates).
func HasMeetingWith(preds ...predicate.Meeting) predicate.MeetingConsent {
	return predicate.MeetingConsent(func(s *sql.Selector) {
		step := newMeetingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MeetingConsent) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MeetingConsent) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MeetingConsent) predicate.MeetingConsent {
	return predicate.MeetingConsent(sql.NotPredicates(p))
}
