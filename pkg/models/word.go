// Package models contains request/response models and business domain types.
package models

import (
	"sort"
	"strings"
)

// Word is one transcribed token. Timestamps are meeting-global seconds;
// Speaker is the track index the word came from.
type Word struct {
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Speaker int     `json:"speaker"`
}

// SortWordsByStart orders words by start time ascending, in place.
// The sort is stable: words with equal timestamps keep their insertion
// order, so interleaved tracks stay grouped per speaker.
func SortWordsByStart(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Start < words[j].Start
	})
}

// JoinWords concatenates word texts with single spaces.
func JoinWords(words []Word) string {
	if len(words) == 0 {
		return ""
	}
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// ChunkWords partitions words into fixed-size windows of chunkSize.
// The last chunk may be short. A non-positive chunkSize yields a single
// chunk with everything in it.
func ChunkWords(words []Word, chunkSize int) [][]Word {
	if len(words) == 0 {
		return nil
	}
	if chunkSize <= 0 {
		return [][]Word{words}
	}
	chunks := make([][]Word, 0, (len(words)+chunkSize-1)/chunkSize)
	for start := 0; start < len(words); start += chunkSize {
		end := start + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, words[start:end])
	}
	return chunks
}
