package captions

import (
	"strings"
	"unicode/utf8"

	"skriptble.dev/caption-tools/models"
)

// DefaultMaxChars is the default character limit per caption block
const DefaultMaxChars = 100

// SplitOptions configures how segments are split into caption blocks
type SplitOptions struct {
	MaxChars       int  // Maximum characters per block (0 = DefaultMaxChars)
	SplitSentences bool // Flush the current block after sentence-terminal words
}

// Split converts normalized transcript segments into a single flat caption
// track. Each segment's words are accumulated greedily into blocks of at most
// MaxChars characters (counting one separator space between words). When
// SplitSentences is enabled, a word ending in '.', '?' or '!' closes its block
// immediately, taking priority over the character limit.
func Split(segments []models.Segment, opts SplitOptions) *models.CaptionTrack {
	if opts.MaxChars <= 0 {
		opts.MaxChars = DefaultMaxChars
	}

	track := models.NewCaptionTrack()
	for _, segment := range segments {
		splitSegment(track, segment, opts)
	}
	return track
}

// splitSegment walks one segment's word list, flushing accumulated words into
// caption blocks on the track
func splitSegment(track *models.CaptionTrack, segment models.Segment, opts SplitOptions) {
	// A segment without word timings becomes one atomic block spanning the
	// full segment
	if len(segment.Words) == 0 {
		track.AddBlock(models.CaptionBlock{
			Start: segment.Start,
			End:   segment.End,
			Text:  strings.TrimSpace(segment.Text),
		})
		return
	}

	var buffer []models.TimedWord
	bufferLen := 0

	flush := func() {
		if len(buffer) == 0 {
			return
		}
		texts := make([]string, len(buffer))
		for i, word := range buffer {
			texts[i] = word.Text
		}
		track.AddBlock(models.CaptionBlock{
			Start: buffer[0].Start,
			End:   buffer[len(buffer)-1].End,
			Text:  strings.Join(texts, " "),
		})
		buffer = buffer[:0]
		bufferLen = 0
	}

	for _, word := range segment.Words {
		wordLen := utf8.RuneCountInString(word.Text)

		// Length if this word joins the buffer, including the separator space
		nextLen := bufferLen + wordLen
		if len(buffer) > 0 {
			nextLen++
		}

		if nextLen > opts.MaxChars && len(buffer) > 0 {
			flush()
			nextLen = wordLen
		}

		buffer = append(buffer, word)
		bufferLen = nextLen

		// Sentence boundaries take priority over the character limit
		if opts.SplitSentences && endsSentence(word.Text) {
			flush()
		}
	}

	flush()
}

// endsSentence reports whether a word ends with sentence-terminal punctuation
func endsSentence(word string) bool {
	r, size := utf8.DecodeLastRuneInString(word)
	if size == 0 {
		return false
	}
	return r == '.' || r == '?' || r == '!'
}
