// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/monadical-sas/reflector/ent/event"
	"github.com/monadical-sas/reflector/ent/meeting"
	"github.com/monadical-sas/reflector/ent/meetingconsent"
	"github.com/monadical-sas/reflector/ent/participant"
	"github.com/monadical-sas/reflector/ent/pipelinetask"
	"github.com/monadical-sas/reflector/ent/room"
	"github.com/monadical-sas/reflector/ent/schema"
	"github.com/monadical-sas/reflector/ent/topic"
	"github.com/monadical-sas/reflector/ent/transcript"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescKind is the schema descriptor for kind field.
	eventDescKind := eventFields[1].Descriptor()
	// event.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	event.KindValidator = eventDescKind.Validators[0].(func(string) error)
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	meetingFields := schema.Meeting{}.Fields()
	_ = meetingFields
	// meetingDescCreatedAt is the schema descriptor for created_at field.
	meetingDescCreatedAt := meetingFields[3].Descriptor()
	// meeting.DefaultCreatedAt holds the default value on creation for the created_at field.
	meeting.DefaultCreatedAt = meetingDescCreatedAt.Default.(func() time.Time)
	meetingconsentFields := schema.MeetingConsent{}.Fields()
	_ = meetingconsentFields
	// meetingconsentDescApproved is the schema descriptor for approved field.
	meetingconsentDescApproved := meetingconsentFields[3].Descriptor()
	// meetingconsent.DefaultApproved holds the default value on creation for the approved field.
	meetingconsent.DefaultApproved = meetingconsentDescApproved.Default.(bool)
	// meetingconsentDescCreatedAt is the schema descriptor for created_at field.
	meetingconsentDescCreatedAt := meetingconsentFields[4].Descriptor()
	// meetingconsent.DefaultCreatedAt holds the default value on creation for the created_at field.
	meetingconsent.DefaultCreatedAt = meetingconsentDescCreatedAt.Default.(func() time.Time)
	// meetingconsentDescUpdatedAt is the schema descriptor for updated_at field.
	meetingconsentDescUpdatedAt := meetingconsentFields[5].Descriptor()
	// meetingconsent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	meetingconsent.DefaultUpdatedAt = meetingconsentDescUpdatedAt.Default.(func() time.Time)
	// meetingconsent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	meetingconsent.UpdateDefaultUpdatedAt = meetingconsentDescUpdatedAt.UpdateDefault.(func() time.Time)
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescDisplayName is the schema descriptor for display_name field.
	participantDescDisplayName := participantFields[3].Descriptor()
	// participant.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	participant.DisplayNameValidator = participantDescDisplayName.Validators[0].(func(string) error)
	// participantDescCreatedAt is the schema descriptor for created_at field.
	participantDescCreatedAt := participantFields[6].Descriptor()
	// participant.DefaultCreatedAt holds the default value on creation for the created_at field.
	participant.DefaultCreatedAt = participantDescCreatedAt.Default.(func() time.Time)
	// participantDescUpdatedAt is the schema descriptor for updated_at field.
	participantDescUpdatedAt := participantFields[7].Descriptor()
	// participant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	participant.DefaultUpdatedAt = participantDescUpdatedAt.Default.(func() time.Time)
	// participant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	participant.UpdateDefaultUpdatedAt = participantDescUpdatedAt.UpdateDefault.(func() time.Time)
	pipelinetaskFields := schema.PipelineTask{}.Fields()
	_ = pipelinetaskFields
	// pipelinetaskDescName is the schema descriptor for name field.
	pipelinetaskDescName := pipelinetaskFields[3].Descriptor()
	// pipelinetask.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pipelinetask.NameValidator = pipelinetaskDescName.Validators[0].(func(string) error)
	// pipelinetaskDescAttempt is the schema descriptor for attempt field.
	pipelinetaskDescAttempt := pipelinetaskFields[8].Descriptor()
	// pipelinetask.DefaultAttempt holds the default value on creation for the attempt field.
	pipelinetask.DefaultAttempt = pipelinetaskDescAttempt.Default.(int)
	// pipelinetaskDescMaxAttempts is the schema descriptor for max_attempts field.
	pipelinetaskDescMaxAttempts := pipelinetaskFields[9].Descriptor()
	// pipelinetask.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	pipelinetask.DefaultMaxAttempts = pipelinetaskDescMaxAttempts.Default.(int)
	// pipelinetaskDescRunAfter is the schema descriptor for run_after field.
	pipelinetaskDescRunAfter := pipelinetaskFields[10].Descriptor()
	// pipelinetask.DefaultRunAfter holds the default value on creation for the run_after field.
	pipelinetask.DefaultRunAfter = pipelinetaskDescRunAfter.Default.(func() time.Time)
	// pipelinetaskDescTimeoutSeconds is the schema descriptor for timeout_seconds field.
	pipelinetaskDescTimeoutSeconds := pipelinetaskFields[11].Descriptor()
	// pipelinetask.DefaultTimeoutSeconds holds the default value on creation for the timeout_seconds field.
	pipelinetask.DefaultTimeoutSeconds = pipelinetaskDescTimeoutSeconds.Default.(float64)
	// pipelinetaskDescMaxConcurrency is the schema descriptor for max_concurrency field.
	pipelinetaskDescMaxConcurrency := pipelinetaskFields[13].Descriptor()
	// pipelinetask.DefaultMaxConcurrency holds the default value on creation for the max_concurrency field.
	pipelinetask.DefaultMaxConcurrency = pipelinetaskDescMaxConcurrency.Default.(int)
	// pipelinetaskDescCreatedAt is the schema descriptor for created_at field.
	pipelinetaskDescCreatedAt := pipelinetaskFields[19].Descriptor()
	// pipelinetask.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinetask.DefaultCreatedAt = pipelinetaskDescCreatedAt.Default.(func() time.Time)
	// pipelinetaskDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinetaskDescUpdatedAt := pipelinetaskFields[20].Descriptor()
	// pipelinetask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinetask.DefaultUpdatedAt = pipelinetaskDescUpdatedAt.Default.(func() time.Time)
	// pipelinetask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinetask.UpdateDefaultUpdatedAt = pipelinetaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	roomFields := schema.Room{}.Fields()
	_ = roomFields
	// roomDescName is the schema descriptor for name field.
	roomDescName := roomFields[1].Descriptor()
	// room.NameValidator is a validator for the "name" field. It is called by the builders before save.
	room.NameValidator = roomDescName.Validators[0].(func(string) error)
	// roomDescZulipAutoPost is the schema descriptor for zulip_auto_post field.
	roomDescZulipAutoPost := roomFields[4].Descriptor()
	// room.DefaultZulipAutoPost holds the default value on creation for the zulip_auto_post field.
	room.DefaultZulipAutoPost = roomDescZulipAutoPost.Default.(bool)
	// roomDescCreatedAt is the schema descriptor for created_at field.
	roomDescCreatedAt := roomFields[7].Descriptor()
	// room.DefaultCreatedAt holds the default value on creation for the created_at field.
	room.DefaultCreatedAt = roomDescCreatedAt.Default.(func() time.Time)
	// roomDescUpdatedAt is the schema descriptor for updated_at field.
	roomDescUpdatedAt := roomFields[8].Descriptor()
	// room.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	room.DefaultUpdatedAt = roomDescUpdatedAt.Default.(func() time.Time)
	// room.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	room.UpdateDefaultUpdatedAt = roomDescUpdatedAt.UpdateDefault.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[8].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
	// topicDescUpdatedAt is the schema descriptor for updated_at field.
	topicDescUpdatedAt := topicFields[9].Descriptor()
	// topic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topic.DefaultUpdatedAt = topicDescUpdatedAt.Default.(func() time.Time)
	// topic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topic.UpdateDefaultUpdatedAt = topicDescUpdatedAt.UpdateDefault.(func() time.Time)
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescName is the schema descriptor for name field.
	transcriptDescName := transcriptFields[2].Descriptor()
	// transcript.DefaultName holds the default value on creation for the name field.
	transcript.DefaultName = transcriptDescName.Default.(string)
	// transcriptDescSourceLanguage is the schema descriptor for source_language field.
	transcriptDescSourceLanguage := transcriptFields[3].Descriptor()
	// transcript.DefaultSourceLanguage holds the default value on creation for the source_language field.
	transcript.DefaultSourceLanguage = transcriptDescSourceLanguage.Default.(string)
	// transcriptDescTargetLanguage is the schema descriptor for target_language field.
	transcriptDescTargetLanguage := transcriptFields[4].Descriptor()
	// transcript.DefaultTargetLanguage holds the default value on creation for the target_language field.
	transcript.DefaultTargetLanguage = transcriptDescTargetLanguage.Default.(string)
	// transcriptDescAudioDeleted is the schema descriptor for audio_deleted field.
	transcriptDescAudioDeleted := transcriptFields[11].Descriptor()
	// transcript.DefaultAudioDeleted holds the default value on creation for the audio_deleted field.
	transcript.DefaultAudioDeleted = transcriptDescAudioDeleted.Default.(bool)
	// transcriptDescCreatedAt is the schema descriptor for created_at field.
	transcriptDescCreatedAt := transcriptFields[17].Descriptor()
	// transcript.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcript.DefaultCreatedAt = transcriptDescCreatedAt.Default.(func() time.Time)
	// transcriptDescUpdatedAt is the schema descriptor for updated_at field.
	transcriptDescUpdatedAt := transcriptFields[18].Descriptor()
	// transcript.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transcript.DefaultUpdatedAt = transcriptDescUpdatedAt.Default.(func() time.Time)
	// transcript.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transcript.UpdateDefaultUpdatedAt = transcriptDescUpdatedAt.UpdateDefault.(func() time.Time)
}
