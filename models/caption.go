package models

import "strings"

// TimedWord represents a single word from the transcription service with
// word-level timing
type TimedWord struct {
	Text  string  // Word text, punctuated when the service provides it
	Start float64 // Start time in seconds
	End   float64 // End time in seconds
}

// Segment represents a contiguous timed unit of transcript (an utterance or a
// paragraph sentence) prior to caption splitting
type Segment struct {
	Start float64     // Start time in seconds
	End   float64     // End time in seconds
	Text  string      // Full transcript text for the segment
	Words []TimedWord // Constituent timed words, may be empty
}

// CaptionBlock is the final timed text unit written to a subtitle file
type CaptionBlock struct {
	Index int     // Sequential cue number, 1-based (used by SRT only)
	Start float64 // Start time in seconds
	End   float64 // End time in seconds
	Text  string  // Caption text, single spaces between words
}

// CaptionTrack represents a complete sequence of caption blocks
type CaptionTrack struct {
	Blocks []CaptionBlock
}

// NewCaptionTrack creates a new empty caption track
func NewCaptionTrack() *CaptionTrack {
	return &CaptionTrack{
		Blocks: make([]CaptionBlock, 0),
	}
}

// AddBlock appends a block to the track, assigning its sequential index.
// Blocks with empty text are dropped and end times are clamped so that
// end >= start always holds.
func (t *CaptionTrack) AddBlock(block CaptionBlock) {
	if strings.TrimSpace(block.Text) == "" {
		return
	}
	if block.End < block.Start {
		block.End = block.Start
	}
	block.Index = len(t.Blocks) + 1
	t.Blocks = append(t.Blocks, block)
}

// Duration returns the total duration of the track in seconds
func (t *CaptionTrack) Duration() float64 {
	if len(t.Blocks) == 0 {
		return 0
	}

	maxEndTime := 0.0
	for _, block := range t.Blocks {
		if block.End > maxEndTime {
			maxEndTime = block.End
		}
	}
	return maxEndTime
}
