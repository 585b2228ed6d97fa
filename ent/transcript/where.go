// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/monadical-sas/reflector/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldName, v))
}

// SourceLanguage applies equality check predicate on the "source_language" field. It's identical to SourceLanguageEQ.
func SourceLanguage(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldSourceLanguage, v))
}

// TargetLanguage applies equality check predicate on the "target_language" field. It's identical to TargetLanguageEQ.
func TargetLanguage(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTargetLanguage, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTitle, v))
}

// ShortSummary applies equality check predicate on the "short_summary" field. It's identical to ShortSummaryEQ.
func ShortSummary(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldShortSummary, v))
}

// LongSummary applies equality check predicate on the "long_summary" field. It's identical to LongSummaryEQ.
func LongSummary(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldLongSummary, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldDurationMs, v))
}

// AudioDeleted applies equality check predicate on the "audio_deleted" field. It's identical to AudioDeletedEQ.
func AudioDeleted(v bool) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldAudioDeleted, v))
}

// WorkflowRunID applies equality check predicate on the "workflow_run_id" field. It's identical to WorkflowRunIDEQ.
func WorkflowRunID(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldWorkflowRunID, v))
}

// ZulipMessageID applies equality check predicate on the "zulip_message_id" field. It's identical to ZulipMessageIDEQ.
func ZulipMessageID(v int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldZulipMessageID, v))
}

// RoomID applies equality check predicate on the "room_id" field. It's identical to RoomIDEQ.
func RoomID(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldRoomID, v))
}

// MeetingID applies equality check predicate on the "meeting_id" field. It's identical to MeetingIDEQ.
func MeetingID(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldMeetingID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldUpdatedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldStatus, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldName, v))
}

// SourceLanguageEQ applies the EQ predicate on the "source_language" field.
func SourceLanguageEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldSourceLanguage, v))
}

// SourceLanguageNEQ applies the NEQ predicate on the "source_language" field.
func SourceLanguageNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldSourceLanguage, v))
}

// SourceLanguageIn applies the In predicate on the "source_language" field.
func SourceLanguageIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldSourceLanguage, vs...))
}

// SourceLanguageNotIn applies the NotIn predicate on the "source_language" field.
func SourceLanguageNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldSourceLanguage, vs...))
}

// SourceLanguageGT applies the GT predicate on the "source_language" field.
func SourceLanguageGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldSourceLanguage, v))
}

// SourceLanguageGTE applies the GTE predicate on the "source_language" field.
func SourceLanguageGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldSourceLanguage, v))
}

// SourceLanguageLT applies the LT predicate on the "source_language" field.
func SourceLanguageLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldSourceLanguage, v))
}

// SourceLanguageLTE applies the LTE predicate on the "source_language" field.
func SourceLanguageLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldSourceLanguage, v))
}

// SourceLanguageContains applies the Contains predicate on the "source_language" field.
func SourceLanguageContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldSourceLanguage, v))
}

// SourceLanguageHasPrefix applies the HasPrefix predicate on the "source_language" field.
func SourceLanguageHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldSourceLanguage, v))
}

// SourceLanguageHasSuffix applies the HasSuffix predicate on the "source_language" field.
func SourceLanguageHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldSourceLanguage, v))
}

// SourceLanguageEqualFold applies the EqualFold predicate on the "source_language" field.
func SourceLanguageEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldSourceLanguage, v))
}

// SourceLanguageContainsFold applies the ContainsFold predicate on the "source_language" field.
func SourceLanguageContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldSourceLanguage, v))
}

// TargetLanguageEQ applies the EQ predicate on the "target_language" field.
func TargetLanguageEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTargetLanguage, v))
}

// TargetLanguageNEQ applies the NEQ predicate on the "target_language" field.
func TargetLanguageNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldTargetLanguage, v))
}

// TargetLanguageIn applies the In predicate on the "target_language" field.
func TargetLanguageIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldTargetLanguage, vs...))
}

// TargetLanguageNotIn applies the NotIn predicate on the "target_language" field.
func TargetLanguageNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldTargetLanguage, vs...))
}

// TargetLanguageGT applies the GT predicate on the "target_language" field.
func TargetLanguageGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldTargetLanguage, v))
}

// TargetLanguageGTE applies the GTE predicate on the "target_language" field.
func TargetLanguageGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldTargetLanguage, v))
}

// TargetLanguageLT applies the LT predicate on the "target_language" field.
func TargetLanguageLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldTargetLanguage, v))
}

// TargetLanguageLTE applies the LTE predicate on the "target_language" field.
func TargetLanguageLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldTargetLanguage, v))
}

// TargetLanguageContains applies the Contains predicate on the "target_language" field.
func TargetLanguageContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldTargetLanguage, v))
}

// TargetLanguageHasPrefix applies the HasPrefix predicate on the "target_language" field.
func TargetLanguageHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldTargetLanguage, v))
}

// TargetLanguageHasSuffix applies the HasSuffix predicate on the "target_language" field.
func TargetLanguageHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldTargetLanguage, v))
}

// TargetLanguageEqualFold applies the EqualFold predicate on the "target_language" field.
func TargetLanguageEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldTargetLanguage, v))
}

// TargetLanguageContainsFold applies the ContainsFold predicate on the "target_language" field.
func TargetLanguageContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldTargetLanguage, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldTitle, v))
}

// ShortSummaryEQ applies the EQ predicate on the "short_summary" field.
func ShortSummaryEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldShortSummary, v))
}

// ShortSummaryNEQ applies the NEQ predicate on the "short_summary" field.
func ShortSummaryNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldShortSummary, v))
}

// ShortSummaryIn applies the In predicate on the "short_summary" field.
func ShortSummaryIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldShortSummary, vs...))
}

// ShortSummaryNotIn applies the NotIn predicate on the "short_summary" field.
func ShortSummaryNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldShortSummary, vs...))
}

// ShortSummaryGT applies the GT predicate on the "short_summary" field.
func ShortSummaryGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldShortSummary, v))
}

// ShortSummaryGTE applies the GTE predicate on the "short_summary" field.
func ShortSummaryGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldShortSummary, v))
}

// ShortSummaryLT applies the LT predicate on the "short_summary" field.
func ShortSummaryLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldShortSummary, v))
}

// ShortSummaryLTE applies the LTE predicate on the "short_summary" field.
func ShortSummaryLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldShortSummary, v))
}

// ShortSummaryContains applies the Contains predicate on the "short_summary" field.
func ShortSummaryContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldShortSummary, v))
}

// ShortSummaryHasPrefix applies the HasPrefix predicate on the "short_summary" field.
func ShortSummaryHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldShortSummary, v))
}

// ShortSummaryHasSuffix applies the HasSuffix predicate on the "short_summary" field.
func ShortSummaryHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldShortSummary, v))
}

// ShortSummaryIsNil applies the IsNil predicate on the "short_summary" field.
func ShortSummaryIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldShortSummary))
}

// ShortSummaryNotNil applies the NotNil predicate on the "short_summary" field.
func ShortSummaryNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldShortSummary))
}

// ShortSummaryEqualFold applies the EqualFold predicate on the "short_summary" field.
func ShortSummaryEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldShortSummary, v))
}

// ShortSummaryContainsFold applies the ContainsFold predicate on the "short_summary" field.
func ShortSummaryContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldShortSummary, v))
}

// LongSummaryEQ applies the EQ predicate on the "long_summary" field.
func LongSummaryEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldLongSummary, v))
}

// LongSummaryNEQ applies the NEQ predicate on the "long_summary" field.
func LongSummaryNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldLongSummary, v))
}

// LongSummaryIn applies the In predicate on the "long_summary" field.
func LongSummaryIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldLongSummary, vs...))
}

// LongSummaryNotIn applies the NotIn predicate on the "long_summary" field.
func LongSummaryNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldLongSummary, vs...))
}

// LongSummaryGT applies the GT predicate on the "long_summary" field.
func LongSummaryGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldLongSummary, v))
}

// LongSummaryGTE applies the GTE predicate on the "long_summary" field.
func LongSummaryGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldLongSummary, v))
}

// LongSummaryLT applies the LT predicate on the "long_summary" field.
func LongSummaryLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldLongSummary, v))
}

// LongSummaryLTE applies the LTE predicate on the "long_summary" field.
func LongSummaryLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldLongSummary, v))
}

// LongSummaryContains applies the Contains predicate on the "long_summary" field.
func LongSummaryContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldLongSummary, v))
}

// LongSummaryHasPrefix applies the HasPrefix predicate on the "long_summary" field.
func LongSummaryHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldLongSummary, v))
}

// LongSummaryHasSuffix applies the HasSuffix predicate on the "long_summary" field.
func LongSummaryHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldLongSummary, v))
}

// LongSummaryIsNil applies the IsNil predicate on the "long_summary" field.
func LongSummaryIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldLongSummary))
}

// LongSummaryNotNil applies the NotNil predicate on the "long_summary" field.
func LongSummaryNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldLongSummary))
}

// LongSummaryEqualFold applies the EqualFold predicate on the "long_summary" field.
func LongSummaryEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldLongSummary, v))
}

// LongSummaryContainsFold applies the ContainsFold predicate on the "long_summary" field.
func LongSummaryContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldLongSummary, v))
}

// ActionItemsIsNil applies the IsNil predicate on the "action_items" field.
func ActionItemsIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldActionItems))
}

// ActionItemsNotNil applies the NotNil predicate on the "action_items" field.
func ActionItemsNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldActionItems))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldDurationMs))
}

// AudioLocationEQ applies the EQ predicate on the "audio_location" field.
func AudioLocationEQ(v AudioLocation) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldAudioLocation, v))
}

// AudioLocationNEQ applies the NEQ predicate on the "audio_location" field.
func AudioLocationNEQ(v AudioLocation) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldAudioLocation, v))
}

// AudioLocationIn applies the In predicate on the "audio_location" field.
func AudioLocationIn(vs ...AudioLocation) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldAudioLocation, vs...))
}

// AudioLocationNotIn applies the NotIn predicate on the "audio_location" field.
func AudioLocationNotIn(vs ...AudioLocation) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldAudioLocation, vs...))
}

// AudioDeletedEQ applies the EQ predicate on the "audio_deleted" field.
func AudioDeletedEQ(v bool) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldAudioDeleted, v))
}

// AudioDeletedNEQ applies the NEQ predicate on the "audio_deleted" field.
func AudioDeletedNEQ(v bool) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldAudioDeleted, v))
}

// WordsIsNil applies the IsNil predicate on the "words" field.
func WordsIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldWords))
}

// WordsNotNil applies the NotNil predicate on the "words" field.
func WordsNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldWords))
}

// WorkflowRunIDEQ applies the EQ predicate on the "workflow_run_id" field.
func WorkflowRunIDEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldWorkflowRunID, v))
}

// WorkflowRunIDNEQ applies the NEQ predicate on the "workflow_run_id" field.
func WorkflowRunIDNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldWorkflowRunID, v))
}

// WorkflowRunIDIn applies the In predicate on the "workflow_run_id" field.
func WorkflowRunIDIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldWorkflowRunID, vs...))
}

// WorkflowRunIDNotIn applies the NotIn predicate on the "workflow_run_id" field.
func WorkflowRunIDNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldWorkflowRunID, vs...))
}

// WorkflowRunIDGT applies the GT predicate on the "workflow_run_id" field.
func WorkflowRunIDGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldWorkflowRunID, v))
}

// WorkflowRunIDGTE applies the GTE predicate on the "workflow_run_id" field.
func WorkflowRunIDGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldWorkflowRunID, v))
}

// WorkflowRunIDLT applies the LT predicate on the "workflow_run_id" field.
func WorkflowRunIDLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldWorkflowRunID, v))
}

// WorkflowRunIDLTE applies the LTE predicate on the "workflow_run_id" field.
func WorkflowRunIDLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldWorkflowRunID, v))
}

// WorkflowRunIDContains applies the Contains predicate on the "workflow_run_id" field.
func WorkflowRunIDContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldWorkflowRunID, v))
}

// WorkflowRunIDHasPrefix applies the HasPrefix predicate on the "workflow_run_id" field.
func WorkflowRunIDHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldWorkflowRunID, v))
}

// WorkflowRunIDHasSuffix applies the HasSuffix predicate on the "workflow_run_id" field.
func WorkflowRunIDHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldWorkflowRunID, v))
}

// WorkflowRunIDIsNil applies the IsNil predicate on the "workflow_run_id" field.
func WorkflowRunIDIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldWorkflowRunID))
}

// WorkflowRunIDNotNil applies the NotNil predicate on the "workflow_run_id" field.
func WorkflowRunIDNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldWorkflowRunID))
}

// WorkflowRunIDEqualFold applies the EqualFold predicate on the "workflow_run_id" field.
func WorkflowRunIDEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldWorkflowRunID, v))
}

// WorkflowRunIDContainsFold applies the ContainsFold predicate on the "workflow_run_id" field.
func WorkflowRunIDContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldWorkflowRunID, v))
}

// ZulipMessageIDEQ applies the EQ predicate on the "zulip_message_id" field.
func ZulipMessageIDEQ(v int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldZulipMessageID, v))
}

// ZulipMessageIDNEQ applies the NEQ predicate on the "zulip_message_id" field.
func ZulipMessageIDNEQ(v int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldZulipMessageID, v))
}

// ZulipMessageIDIn applies the In predicate on the "zulip_message_id" field.
func ZulipMessageIDIn(vs ...int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldZulipMessageID, vs...))
}

// ZulipMessageIDNotIn applies the NotIn predicate on the "zulip_message_id" field.
func ZulipMessageIDNotIn(vs ...int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldZulipMessageID, vs...))
}

// ZulipMessageIDGT applies the GT predicate on the "zulip_message_id" field.
func ZulipMessageIDGT(v int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldZulipMessageID, v))
}

// ZulipMessageIDGTE applies the GTE predicate on the "zulip_message_id" field.
func ZulipMessageIDGTE(v int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldZulipMessageID, v))
}

// ZulipMessageIDLT applies the LT predicate on the "zulip_message_id" field.
func ZulipMessageIDLT(v int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldZulipMessageID, v))
}

// ZulipMessageIDLTE applies the LTE predicate on the "zulip_message_id" field.
func ZulipMessageIDLTE(v int64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldZulipMessageID, v))
}

// ZulipMessageIDIsNil applies the IsNil predicate on the "zulip_message_id" field.
func ZulipMessageIDIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldZulipMessageID))
}

// ZulipMessageIDNotNil applies the NotNil predicate on the "zulip_message_id" field.
func ZulipMessageIDNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldZulipMessageID))
}

// RoomIDEQ applies the EQ predicate on the "room_id" field.
func RoomIDEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldRoomID, v))
}

// RoomIDNEQ applies the NEQ predicate on the "room_id" field.
func RoomIDNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldRoomID, v))
}

// RoomIDIn applies the In predicate on the "room_id" field.
func RoomIDIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldRoomID, vs...))
}

// RoomIDNotIn applies the NotIn predicate on the "room_id" field.
func RoomIDNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldRoomID, vs...))
}

// RoomIDGT applies the GT predicate on the "room_id" field.
func RoomIDGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldRoomID, v))
}

// RoomIDGTE applies the GTE predicate on the "room_id" field.
func RoomIDGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldRoomID, v))
}

// RoomIDLT applies the LT predicate on the "room_id" field.
func RoomIDLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldRoomID, v))
}

// RoomIDLTE applies the LTE predicate on the "room_id" field.
func RoomIDLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldRoomID, v))
}

// RoomIDContains applies the Contains predicate on the "room_id" field.
func RoomIDContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldRoomID, v))
}

// RoomIDHasPrefix applies the HasPrefix predicate on the "room_id" field.
func RoomIDHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldRoomID, v))
}

// RoomIDHasSuffix applies the HasSuffix predicate on the "room_id" field.
func RoomIDHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldRoomID, v))
}

// RoomIDIsNil applies the IsNil predicate on the "room_id" field.
func RoomIDIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldRoomID))
}

// RoomIDNotNil applies the NotNil predicate on the "room_id" field.
func RoomIDNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldRoomID))
}

// RoomIDEqualFold applies the EqualFold predicate on the "room_id" field.
func RoomIDEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldRoomID, v))
}

// RoomIDContainsFold applies the ContainsFold predicate on the "room_id" field.
func RoomIDContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldRoomID, v))
}

// MeetingIDEQ applies the EQ predicate on the "meeting_id" field.
func MeetingIDEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldMeetingID, v))
}

// MeetingIDNEQ applies the NEQ predicate on the "meeting_id" field.
func MeetingIDNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldMeetingID, v))
}

// MeetingIDIn applies the In predicate on the "meeting_id" field.
func MeetingIDIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldMeetingID, vs...))
}

// MeetingIDNotIn applies the NotIn predicate on the "meeting_id" field.
func MeetingIDNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldMeetingID, vs...))
}

// MeetingIDGT applies the GT predicate on the "meeting_id" field.
func MeetingIDGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldMeetingID, v))
}

// MeetingIDGTE applies the GTE predicate on the "meeting_id" field.
func MeetingIDGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldMeetingID, v))
}

// MeetingIDLT applies the LT predicate on the "meeting_id" field.
func MeetingIDLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldMeetingID, v))
}

// MeetingIDLTE applies the LTE predicate on the "meeting_id" field.
func MeetingIDLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldMeetingID, v))
}

// MeetingIDContains applies the Contains predicate on the "meeting_id" field.
func MeetingIDContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldMeetingID, v))
}

// MeetingIDHasPrefix applies the HasPrefix predicate on the "meeting_id" field.
func MeetingIDHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldMeetingID, v))
}

// MeetingIDHasSuffix applies the HasSuffix predicate on the "meeting_id" field.
func MeetingIDHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldMeetingID, v))
}

// MeetingIDIsNil applies the IsNil predicate on the "meeting_id" field.
func MeetingIDIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldMeetingID))
}

// MeetingIDNotNil applies the NotNil predicate on the "meeting_id" field.
func MeetingIDNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldMeetingID))
}

// MeetingIDEqualFold applies the EqualFold predicate on the "meeting_id" field.
func MeetingIDEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldMeetingID, v))
}

// MeetingIDContainsFold applies the ContainsFold predicate on the "meeting_id" field.
func MeetingIDContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldMeetingID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRoom applies the HasEdge predicate on the "room" edge.
func HasRoom() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RoomTable, RoomColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRoomWith applies the HasEdge predicate on the "room" edge with a given conditions (other predicates).
func HasRoomWith(preds ...predicate.Room) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newRoomStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMeeting applies the HasEdge predicate on the "meeting" edge.
func HasMeeting() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MeetingTable, MeetingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMeetingWith applies the HasEdge predicate on the "meeting" edge with a given conditions (other predicates).
func HasMeetingWith(preds ...predicate.Meeting) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newMeetingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTopics applies the HasEdge predicate on the "topics" edge.
func HasTopics() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TopicsTable, TopicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicsWith applies the HasEdge predicate on the "topics" edge with a given conditions (other predicates).
func HasTopicsWith(preds ...predicate.Topic) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newTopicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.Participant) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.PipelineTask) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.NotPredicates(p))
}
