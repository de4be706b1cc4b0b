package captions

import (
	"fmt"
	"strings"

	"skriptble.dev/caption-tools/models"
)

// Format represents a supported caption output format
type Format string

const (
	FormatSRT    Format = "srt"
	FormatWebVTT Format = "webvtt"
)

// ValidFormats returns a list of all supported formats
func ValidFormats() []Format {
	return []Format{FormatSRT, FormatWebVTT}
}

// IsValidFormat checks if a format string is valid
func IsValidFormat(format string) bool {
	formatLower := Format(strings.ToLower(format))
	for _, f := range ValidFormats() {
		if f == formatLower {
			return true
		}
	}
	return false
}

// Extension returns the file extension for a format, without the dot
func (f Format) Extension() string {
	return string(f)
}

// FormatCaptions serializes a caption track to the specified format
func FormatCaptions(track *models.CaptionTrack, format Format) (string, error) {
	switch format {
	case FormatSRT:
		return formatSRT(track), nil
	case FormatWebVTT:
		return formatWebVTT(track), nil
	default:
		return "", fmt.Errorf("unsupported caption format: %s", format)
	}
}
