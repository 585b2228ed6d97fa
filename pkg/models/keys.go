package models

import "fmt"

// Object key layout in the transcript store. The padding tasks write
// under PaddedTrackPrefix, finalize sweeps it, and the retention janitor
// sweeps it again for runs that died in error. All three must agree on
// these shapes.

// PaddedTrackPrefix namespaces the padded renditions of one transcript.
func PaddedTrackPrefix(transcriptID string) string {
	return fmt.Sprintf("tmp/%s/tracks/", transcriptID)
}

// PaddedTrackKey names one padded track inside PaddedTrackPrefix.
func PaddedTrackKey(transcriptID string, trackIndex int) string {
	return fmt.Sprintf("%spadded_%d.webm", PaddedTrackPrefix(transcriptID), trackIndex)
}

// MixedAudioKey names the final mixed MP3.
func MixedAudioKey(transcriptID string) string {
	return transcriptID + "/audio.mp3"
}
