package captions

import (
	"fmt"
	"strings"

	"skriptble.dev/caption-tools/models"
)

// formatWebVTT serializes a caption track as WebVTT subtitle format
// VTT format:
// WEBVTT
//
// 00:00:00.000 --> 00:00:05.000
// Text
func formatWebVTT(track *models.CaptionTrack) string {
	var sb strings.Builder

	// VTT header, emitted even when the track is empty
	sb.WriteString("WEBVTT\n\n")

	for _, block := range track.Blocks {
		// Timestamp range (VTT uses period for milliseconds)
		startTime := formatVTTTimestamp(block.Start)
		endTime := formatVTTTimestamp(block.End)
		sb.WriteString(fmt.Sprintf("%s --> %s\n", startTime, endTime))

		sb.WriteString(block.Text)
		sb.WriteString("\n")

		// Blank line between cues
		sb.WriteString("\n")
	}

	return sb.String()
}
