package deepgram

import (
	"strings"

	"skriptble.dev/caption-tools/models"
)

// SegmentSource identifies which part of the API response segments were
// extracted from
type SegmentSource string

const (
	// SourceUtterances extracts one segment per speaker utterance
	SourceUtterances SegmentSource = "utterances"

	// SourceParagraphs extracts one segment per paragraph sentence
	SourceParagraphs SegmentSource = "paragraphs"

	// SourceTranscript extracts a single segment from the first channel
	// alternative, used as a last resort when neither structured shape is
	// present
	SourceTranscript SegmentSource = "transcript"
)

// Normalized is the result of extracting segments from a response
type Normalized struct {
	Segments []models.Segment
	Source   SegmentSource // Strategy that produced the segments
	FellBack bool          // Paragraphs were requested but another strategy served
}

// Normalize extracts a uniform, ordered segment list from a transcription
// response. Extraction strategies are tried in order: the requested source
// first, then progressively less structured shapes. Returns ErrNoTranscript
// when no strategy yields any usable segment.
func Normalize(resp *Response, source SegmentSource) (Normalized, error) {
	strategies := []SegmentSource{SourceUtterances, SourceTranscript}
	if source == SourceParagraphs {
		strategies = append([]SegmentSource{SourceParagraphs}, strategies...)
	}

	for _, strategy := range strategies {
		var segments []models.Segment
		switch strategy {
		case SourceParagraphs:
			segments = paragraphSegments(resp)
		case SourceUtterances:
			segments = utteranceSegments(resp)
		case SourceTranscript:
			segments = transcriptSegments(resp)
		}
		if len(segments) > 0 {
			return Normalized{
				Segments: segments,
				Source:   strategy,
				FellBack: source == SourceParagraphs && strategy != SourceParagraphs,
			}, nil
		}
	}

	return Normalized{}, ErrNoTranscript
}

// paragraphSegments extracts one segment per sentence from the paragraph
// structure of the first channel alternative. Sentences lacking their own
// timestamps inherit the parent paragraph's span.
func paragraphSegments(resp *Response) []models.Segment {
	alt := firstAlternative(resp)
	if alt == nil || alt.Paragraphs == nil {
		return nil
	}

	var segments []models.Segment
	for _, paragraph := range alt.Paragraphs.Paragraphs {
		for _, sentence := range paragraph.Sentences {
			start, end := paragraph.Start, paragraph.End
			if sentence.Start != nil {
				start = *sentence.Start
			}
			if sentence.End != nil {
				end = *sentence.End
			}
			if segment, ok := textSegment(sentence.Text, start, end); ok {
				segments = append(segments, segment)
			}
		}
	}
	return segments
}

// utteranceSegments extracts one segment per utterance
func utteranceSegments(resp *Response) []models.Segment {
	var segments []models.Segment
	for _, utterance := range resp.Results.Utterances {
		words := timedWords(utterance.Words)
		text := strings.TrimSpace(utterance.Transcript)
		if text == "" {
			text = joinWordText(words)
		}
		// Textless utterances are skipped entirely
		if text == "" {
			continue
		}
		if len(words) == 0 {
			words = syntheticWords(text, utterance.Start, utterance.End)
		}
		segments = append(segments, models.Segment{
			Start: utterance.Start,
			End:   utterance.End,
			Text:  text,
			Words: words,
		})
	}
	return segments
}

// transcriptSegments extracts a single segment from the first channel
// alternative, spanning its full word list
func transcriptSegments(resp *Response) []models.Segment {
	alt := firstAlternative(resp)
	if alt == nil {
		return nil
	}

	words := timedWords(alt.Words)
	text := strings.TrimSpace(alt.Transcript)
	if text == "" {
		text = joinWordText(words)
	}
	if text == "" {
		return nil
	}

	start, end := 0.0, resp.Metadata.Duration
	if len(words) > 0 {
		start = words[0].Start
		end = words[len(words)-1].End
	}
	if len(words) == 0 {
		words = syntheticWords(text, start, end)
	}

	return []models.Segment{{Start: start, End: end, Text: text, Words: words}}
}

// firstAlternative returns the first alternative of the first channel, or nil
func firstAlternative(resp *Response) *Alternative {
	if len(resp.Results.Channels) == 0 {
		return nil
	}
	channel := resp.Results.Channels[0]
	if len(channel.Alternatives) == 0 {
		return nil
	}
	return &channel.Alternatives[0]
}

// timedWords converts API words to model words, dropping empty entries and
// clamping a missing or inverted end time to the word's start
func timedWords(words []Word) []models.TimedWord {
	out := make([]models.TimedWord, 0, len(words))
	for _, word := range words {
		text := strings.TrimSpace(word.Text())
		if text == "" {
			continue
		}
		end := word.Start
		if word.End != nil && *word.End > word.Start {
			end = *word.End
		}
		out = append(out, models.TimedWord{Text: text, Start: word.Start, End: end})
	}
	return out
}

// textSegment builds a wordless text segment carrying one synthetic word that
// spans the full segment. Returns false for textless sentences.
func textSegment(text string, start, end float64) (models.Segment, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Segment{}, false
	}
	if end < start {
		end = start
	}
	return models.Segment{
		Start: start,
		End:   end,
		Text:  text,
		Words: syntheticWords(text, start, end),
	}, true
}

// syntheticWords wraps a segment's full text as a single timed word
func syntheticWords(text string, start, end float64) []models.TimedWord {
	if end < start {
		end = start
	}
	return []models.TimedWord{{Text: text, Start: start, End: end}}
}

// joinWordText reassembles segment text from its word list
func joinWordText(words []models.TimedWord) string {
	texts := make([]string, len(words))
	for i, word := range words {
		texts[i] = word.Text
	}
	return strings.TrimSpace(strings.Join(texts, " "))
}
