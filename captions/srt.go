package captions

import (
	"fmt"
	"strings"

	"skriptble.dev/caption-tools/models"
)

// formatSRT serializes a caption track as SRT (SubRip) subtitle format
// SRT format:
// 1
// 00:00:00,000 --> 00:00:05,000
// Text
func formatSRT(track *models.CaptionTrack) string {
	var sb strings.Builder

	for _, block := range track.Blocks {
		// Cue number (1-indexed, assigned by the track)
		sb.WriteString(fmt.Sprintf("%d\n", block.Index))

		// Timestamp range (SRT uses comma for milliseconds)
		startTime := formatSRTTimestamp(block.Start)
		endTime := formatSRTTimestamp(block.End)
		sb.WriteString(fmt.Sprintf("%s --> %s\n", startTime, endTime))

		sb.WriteString(block.Text)
		sb.WriteString("\n")

		// Blank line between subtitles
		sb.WriteString("\n")
	}

	return sb.String()
}
