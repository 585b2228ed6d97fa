// Code generated by ent, DO NOT EDIT.

package room

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldName, v))
}

// WebhookURL applies equality check predicate on the "webhook_url" field. It's identical to WebhookURLEQ.
func WebhookURL(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookSecret applies equality check predicate on the "webhook_secret" field. It's identical to WebhookSecretEQ.
func WebhookSecret(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldWebhookSecret, v))
}

// ZulipAutoPost applies equality check predicate on the "zulip_auto_post" field. It's identical to ZulipAutoPostEQ.
func ZulipAutoPost(v bool) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldZulipAutoPost, v))
}

// ZulipStream applies equality check predicate on the "zulip_stream" field. It's identical to ZulipStreamEQ.
func ZulipStream(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldZulipStream, v))
}

// ZulipTopic applies equality check predicate on the "zulip_topic" field. It's identical to ZulipTopicEQ.
func ZulipTopic(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldZulipTopic, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldName, v))
}

// WebhookURLEQ applies the EQ predicate on the "webhook_url" field.
func WebhookURLEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookURLNEQ applies the NEQ predicate on the "webhook_url" field.
func WebhookURLNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldWebhookURL, v))
}

// WebhookURLIn applies the In predicate on the "webhook_url" field.
func WebhookURLIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldWebhookURL, vs...))
}

// WebhookURLNotIn applies the NotIn predicate on the "webhook_url" field.
func WebhookURLNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldWebhookURL, vs...))
}

// WebhookURLGT applies the GT predicate on the "webhook_url" field.
func WebhookURLGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldWebhookURL, v))
}

// WebhookURLGTE applies the GTE predicate on the "webhook_url" field.
func WebhookURLGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldWebhookURL, v))
}

// WebhookURLLT applies the LT predicate on the "webhook_url" field.
func WebhookURLLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldWebhookURL, v))
}

// WebhookURLLTE applies the LTE predicate on the "webhook_url" field.
func WebhookURLLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldWebhookURL, v))
}

// WebhookURLContains applies the Contains predicate on the "webhook_url" field.
func WebhookURLContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldWebhookURL, v))
}

// WebhookURLHasPrefix applies the HasPrefix predicate on the "webhook_url" field.
func WebhookURLHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldWebhookURL, v))
}

// WebhookURLHasSuffix applies the HasSuffix predicate on the "webhook_url" field.
func WebhookURLHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldWebhookURL, v))
}

// WebhookURLIsNil applies the IsNil predicate on the "webhook_url" field.
func WebhookURLIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldWebhookURL))
}

// WebhookURLNotNil applies the NotNil predicate on the "webhook_url" field.
func WebhookURLNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldWebhookURL))
}

// WebhookURLEqualFold applies the EqualFold predicate on the "webhook_url" field.
func WebhookURLEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldWebhookURL, v))
}

// WebhookURLContainsFold applies the ContainsFold predicate on the "webhook_url" field.
func WebhookURLContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldWebhookURL, v))
}

// WebhookSecretEQ applies the EQ predicate on the "webhook_secret" field.
func WebhookSecretEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldWebhookSecret, v))
}

// WebhookSecretNEQ applies the NEQ predicate on the "webhook_secret" field.
func WebhookSecretNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldWebhookSecret, v))
}

// WebhookSecretIn applies the In predicate on the "webhook_secret" field.
func WebhookSecretIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldWebhookSecret, vs...))
}

// WebhookSecretNotIn applies the NotIn predicate on the "webhook_secret" field.
func WebhookSecretNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldWebhookSecret, vs...))
}

// WebhookSecretGT applies the GT predicate on the "webhook_secret" field.
func WebhookSecretGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldWebhookSecret, v))
}

// WebhookSecretGTE applies the GTE predicate on the "webhook_secret" field.
func WebhookSecretGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldWebhookSecret, v))
}

// WebhookSecretLT applies the LT predicate on the "webhook_secret" field.
func WebhookSecretLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldWebhookSecret, v))
}

// WebhookSecretLTE applies the LTE predicate on the "webhook_secret" field.
func WebhookSecretLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldWebhookSecret, v))
}

// WebhookSecretContains applies the Contains predicate on the "webhook_secret" field.
func WebhookSecretContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldWebhookSecret, v))
}

// WebhookSecretHasPrefix applies the HasPrefix predicate on the "webhook_secret" field.
func WebhookSecretHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldWebhookSecret, v))
}

// WebhookSecretHasSuffix applies the HasSuffix predicate on the "webhook_secret" field.
func WebhookSecretHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldWebhookSecret, v))
}

// WebhookSecretIsNil applies the IsNil predicate on the "webhook_secret" field.
func WebhookSecretIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldWebhookSecret))
}

// WebhookSecretNotNil applies the NotNil predicate on the "webhook_secret" field.
func WebhookSecretNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldWebhookSecret))
}

// WebhookSecretEqualFold applies the EqualFold predicate on the "webhook_secret" field.
func WebhookSecretEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldWebhookSecret, v))
}

// WebhookSecretContainsFold applies the ContainsFold predicate on the "webhook_secret" field.
func WebhookSecretContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldWebhookSecret, v))
}

// ZulipAutoPostEQ applies the EQ predicate on the "zulip_auto_post" field.
func ZulipAutoPostEQ(v bool) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldZulipAutoPost, v))
}

// ZulipAutoPostNEQ applies the NEQ predicate on the "zulip_auto_post" field.
func ZulipAutoPostNEQ(v bool) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldZulipAutoPost, v))
}

// ZulipStreamEQ applies the EQ predicate on the "zulip_stream" field.
func ZulipStreamEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldZulipStream, v))
}

// ZulipStreamNEQ applies the NEQ predicate on the "zulip_stream" field.
func ZulipStreamNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldZulipStream, v))
}

// ZulipStreamIn applies the In predicate on the "zulip_stream" field.
func ZulipStreamIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldZulipStream, vs...))
}

// ZulipStreamNotIn applies the NotIn predicate on the "zulip_stream" field.
func ZulipStreamNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldZulipStream, vs...))
}

// ZulipStreamGT applies the GT predicate on the "zulip_stream" field.
func ZulipStreamGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldZulipStream, v))
}

// ZulipStreamGTE applies the GTE predicate on the "zulip_stream" field.
func ZulipStreamGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldZulipStream, v))
}

// ZulipStreamLT applies the LT predicate on the "zulip_stream" field.
func ZulipStreamLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldZulipStream, v))
}

// ZulipStreamLTE applies the LTE predicate on the "zulip_stream" field.
func ZulipStreamLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldZulipStream, v))
}

// ZulipStreamContains applies the Contains predicate on the "zulip_stream" field.
func ZulipStreamContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldZulipStream, v))
}

// ZulipStreamHasPrefix applies the HasPrefix predicate on the "zulip_stream" field.
func ZulipStreamHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldZulipStream, v))
}

// ZulipStreamHasSuffix applies the HasSuffix predicate on the "zulip_stream" field.
func ZulipStreamHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldZulipStream, v))
}

// ZulipStreamIsNil applies the IsNil predicate on the "zulip_stream" field.
func ZulipStreamIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldZulipStream))
}

// ZulipStreamNotNil applies the NotNil predicate on the "zulip_stream" field.
func ZulipStreamNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldZulipStream))
}

// ZulipStreamEqualFold applies the EqualFold predicate on the "zulip_stream" field.
func ZulipStreamEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldZulipStream, v))
}

// ZulipStreamContainsFold applies the ContainsFold predicate on the "zulip_stream" field.
func ZulipStreamContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldZulipStream, v))
}

// ZulipTopicEQ applies the EQ predicate on the "zulip_topic" field.
func ZulipTopicEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldZulipTopic, v))
}

// ZulipTopicNEQ applies the NEQ predicate on the "zulip_topic" field.
func ZulipTopicNEQ(v string) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldZulipTopic, v))
}

// ZulipTopicIn applies the In predicate on the "zulip_topic" field.
func ZulipTopicIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldZulipTopic, vs...))
}

// ZulipTopicNotIn applies the NotIn predicate on the "zulip_topic" field.
func ZulipTopicNotIn(vs ...string) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldZulipTopic, vs...))
}

// ZulipTopicGT applies the GT predicate on the "zulip_topic" field.
func ZulipTopicGT(v string) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldZulipTopic, v))
}

// ZulipTopicGTE applies the GTE predicate on the "zulip_topic" field.
func ZulipTopicGTE(v string) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldZulipTopic, v))
}

// ZulipTopicLT applies the LT predicate on the "zulip_topic" field.
func ZulipTopicLT(v string) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldZulipTopic, v))
}

// ZulipTopicLTE applies the LTE predicate on the "zulip_topic" field.
func ZulipTopicLTE(v string) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldZulipTopic, v))
}

// ZulipTopicContains applies the Contains predicate on the "zulip_topic" field.
func ZulipTopicContains(v string) predicate.Room {
	return predicate.Room(sql.FieldContains(FieldZulipTopic, v))
}

// ZulipTopicHasPrefix applies the HasPrefix predicate on the "zulip_topic" field.
func ZulipTopicHasPrefix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasPrefix(FieldZulipTopic, v))
}

// ZulipTopicHasSuffix applies the HasSuffix predicate on the "zulip_topic" field.
func ZulipTopicHasSuffix(v string) predicate.Room {
	return predicate.Room(sql.FieldHasSuffix(FieldZulipTopic, v))
}

// ZulipTopicIsNil applies the IsNil predicate on the "zulip_topic" field.
func ZulipTopicIsNil() predicate.Room {
	return predicate.Room(sql.FieldIsNull(FieldZulipTopic))
}

// ZulipTopicNotNil applies the NotNil predicate on the "zulip_topic" field.
func ZulipTopicNotNil() predicate.Room {
	return predicate.Room(sql.FieldNotNull(FieldZulipTopic))
}

// ZulipTopicEqualFold applies the EqualFold predicate on the "zulip_topic" field.
func ZulipTopicEqualFold(v string) predicate.Room {
	return predicate.Room(sql.FieldEqualFold(FieldZulipTopic, v))
}

// ZulipTopicContainsFold applies the ContainsFold predicate on the "zulip_topic" field.
func ZulipTopicContainsFold(v string) predicate.Room {
	return predicate.Room(sql.FieldContainsFold(FieldZulipTopic, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Room {
	return predicate.Room(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Room {
	return predicate.Room(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Room {
	return predicate.Room(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMeetings applies the HasEdge predicate on the "meetings" edge.
func HasMeetings() predicate.Room {
	return predicate.Room(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MeetingsTable, MeetingsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingsWith applies the HasEdge predicate on the "meetings" edge with a given conditions (other predicates).
func HasMeetingsWith(preds ...predicate.Meeting) predicate.Room {
	return predicate.Room(func(s *sql.Selector) {
		step := newMeetingsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTranscripts applies the HasEdge predicate on the "transcripts" edge.
func HasTranscripts() predicate.Room {
	return predicate.Room(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TranscriptsTable, TranscriptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptsWith applies the HasEdge predicate on the "transcripts" edge with a given conditions (other predicates).
func HasTranscriptsWith(preds ...predicate.Transcript) predicate.Room {
	return predicate.Room(func(s *sql.Selector) {
		step := newTranscriptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Room) predicate.Room {
	return predicate.Room(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Room) predicate.Room {
	return predicate.Room(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Room) predicate.Room {
	return predicate.Room(sql.NotPredicates(p))
}
