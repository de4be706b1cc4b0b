package deepgram

// Response mirrors the Deepgram prerecorded transcription JSON response.
// Only the fields this tool consumes are declared; the API returns more.
type Response struct {
	Metadata Metadata `json:"metadata"`
	Results  Results  `json:"results"`
}

// Metadata holds request-level information about the transcription
type Metadata struct {
	RequestID string  `json:"request_id"`
	Duration  float64 `json:"duration"`
	Channels  int     `json:"channels"`
}

// Results holds the transcription results. Utterances is only populated when
// utterances were requested; per-channel alternatives are always present on a
// successful response.
type Results struct {
	Utterances []Utterance `json:"utterances,omitempty"`
	Channels   []Channel   `json:"channels"`
}

// Utterance is a contiguous speaker turn with word-level timing
type Utterance struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
	Channel    int     `json:"channel"`
	Transcript string  `json:"transcript"`
	Words      []Word  `json:"words"`
	Speaker    *int    `json:"speaker,omitempty"`
	ID         string  `json:"id"`
}

// Channel holds the transcription alternatives for one audio channel
type Channel struct {
	Alternatives []Alternative `json:"alternatives"`
}

// Alternative is one transcription hypothesis for a channel
type Alternative struct {
	Transcript string          `json:"transcript"`
	Confidence float64         `json:"confidence"`
	Words      []Word          `json:"words"`
	Paragraphs *ParagraphGroup `json:"paragraphs,omitempty"`
}

// Word carries word-level timing. PunctuatedWord is only set when smart
// formatting was requested; End is a pointer because older API versions omit
// it for some words.
type Word struct {
	Word           string   `json:"word"`
	Start          float64  `json:"start"`
	End            *float64 `json:"end,omitempty"`
	Confidence     float64  `json:"confidence"`
	PunctuatedWord string   `json:"punctuated_word,omitempty"`
	Speaker        *int     `json:"speaker,omitempty"`
}

// Text returns the display form of the word, preferring the punctuated
// variant when present
func (w Word) Text() string {
	if w.PunctuatedWord != "" {
		return w.PunctuatedWord
	}
	return w.Word
}

// ParagraphGroup is the paragraph/sentence structure returned when paragraphs
// were requested
type ParagraphGroup struct {
	Transcript string      `json:"transcript"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph groups sentences with an overall time span
type Paragraph struct {
	Sentences []Sentence `json:"sentences"`
	Start     float64    `json:"start"`
	End       float64    `json:"end"`
	NumWords  int        `json:"num_words"`
}

// Sentence is a single sentence within a paragraph. Start and End are
// pointers because some API versions omit sentence-level timestamps.
type Sentence struct {
	Text  string   `json:"text"`
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
}
