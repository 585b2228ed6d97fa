package pipeline

import "fmt"

// Prompts stay instruction-only: the dialogue or chunk rides along as a
// separate context block, and the structured-output contract is
// appended by the LLM client.

const topicPrompt = `The context is one segment of a meeting transcript. ` +
	`Give the segment a concise descriptive title of at most ten words, ` +
	`and summarize what was discussed in two or three sentences. ` +
	`Write the summary in the past tense and do not address the reader.`

const topicSchema = `{
  "type": "object",
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "summary": {"type": "string", "minLength": 1}
  },
  "required": ["title", "summary"],
  "additionalProperties": false
}`

const titlePrompt = `The context lists the topic titles of one meeting, in order. ` +
	`Combine them into a single short meeting title of at most eight words. ` +
	`Do not number it, quote it, or end it with punctuation.`

const titleSchema = `{
  "type": "object",
  "properties": {
    "title": {"type": "string", "minLength": 1}
  },
  "required": ["title"],
  "additionalProperties": false
}`

const subjectsPrompt = `The context is a meeting transcript with speaker names. ` +
	`List the main subjects that were discussed, most important first. ` +
	`Merge near-duplicates and leave out greetings and small talk.`

const subjectsSchema = `{
  "type": "object",
  "properties": {
    "subjects": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "maxItems": 6
    }
  },
  "required": ["subjects"],
  "additionalProperties": false
}`

func subjectPrompt(subject string) string {
	return fmt.Sprintf(`The context is a meeting transcript with speaker names. `+
		`Write one paragraph summarizing everything said about %q: `+
		`the positions taken, any disagreement, and how it was left. `+
		`Mention speakers by name and stay under 120 words.`, subject)
}

const recapPrompt = `The context contains per-subject summaries of one meeting. ` +
	`Condense them into a single recap paragraph of at most four sentences, ` +
	`covering what the meeting was about and what came out of it. ` +
	`Do not enumerate the subjects one by one.`

const actionItemsPrompt = `The context is a meeting transcript with speaker names. ` +
	`Extract the decisions that were made and the agreed next steps. ` +
	`Phrase each as one short sentence naming who, if anyone, owns it. ` +
	`Leave both lists empty if the meeting produced none.`

const actionItemsSchema = `{
  "type": "object",
  "properties": {
    "decisions": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "next_steps": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  },
  "required": ["decisions", "next_steps"],
  "additionalProperties": false
}`
