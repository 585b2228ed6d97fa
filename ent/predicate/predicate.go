// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Meeting is the predicate function for meeting builders.
type Meeting func(*sql.Selector)

// MeetingConsent is the predicate function for meetingconsent builders.
type MeetingConsent func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// PipelineTask is the predicate function for pipelinetask builders.
type PipelineTask func(*sql.Selector)

// Room is the predicate function for room builders.
type Room func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// Transcript is the predicate function for transcript builders.
type Transcript func(*sql.Selector)
