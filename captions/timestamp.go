package captions

import "fmt"

// formatTimestamp converts seconds to HH:MM:SS<sep>mmm caption timestamp
// format. SRT separates milliseconds with a comma, WebVTT with a period.
// Negative times clamp to zero and hours may exceed 24 without wrapping.
func formatTimestamp(seconds float64, sep byte) string {
	if seconds < 0 {
		seconds = 0
	}

	totalMillis := int64(seconds*1000 + 0.5)
	hours := totalMillis / 3600000
	minutes := (totalMillis % 3600000) / 60000
	secs := (totalMillis % 60000) / 1000
	millis := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, millis)
}

// formatSRTTimestamp converts seconds to SRT timestamp format (HH:MM:SS,mmm)
func formatSRTTimestamp(seconds float64) string {
	return formatTimestamp(seconds, ',')
}

// formatVTTTimestamp converts seconds to WebVTT timestamp format (HH:MM:SS.mmm)
func formatVTTTimestamp(seconds float64) string {
	return formatTimestamp(seconds, '.')
}
