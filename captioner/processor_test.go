package captioner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skriptble.dev/caption-tools/captions"
	"skriptble.dev/caption-tools/deepgram"
)

func floatPtr(v float64) *float64 { return &v }

// stubTranscriber returns a canned response or error per audio path
type stubTranscriber struct {
	responses map[string]*deepgram.Response
	err       error
	calls     []string
}

func (s *stubTranscriber) Transcribe(_ context.Context, audioPath string, _ deepgram.Options) (*deepgram.Response, error) {
	s.calls = append(s.calls, audioPath)
	if s.err != nil {
		return nil, s.err
	}
	if resp, ok := s.responses[audioPath]; ok {
		return resp, nil
	}
	return &deepgram.Response{}, nil
}

func utteranceResponse(transcript string, words ...deepgram.Word) *deepgram.Response {
	end := 0.0
	if len(words) > 0 && words[len(words)-1].End != nil {
		end = *words[len(words)-1].End
	}
	return &deepgram.Response{
		Results: deepgram.Results{
			Utterances: []deepgram.Utterance{{Start: 0, End: end, Transcript: transcript, Words: words}},
		},
	}
}

func writeAudioFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("fake audio"), 0o644))
	return path
}

func TestProcessFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("writes caption file next to input", func(t *testing.T) {
		dir := t.TempDir()
		audio := writeAudioFixture(t, dir, "talk.wav")

		stub := &stubTranscriber{responses: map[string]*deepgram.Response{
			audio: utteranceResponse("Hello world.",
				deepgram.Word{Word: "hello", PunctuatedWord: "Hello", Start: 0, End: floatPtr(1)},
				deepgram.Word{Word: "world.", PunctuatedWord: "world.", Start: 1, End: floatPtr(2)},
			),
		}}

		summary, err := ProcessFiles(ctx, stub, ProcessConfig{
			Files:  []string{audio},
			Format: captions.FormatSRT,
			Source: deepgram.SourceUtterances,
			Log:    &bytes.Buffer{},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Succeeded)
		assert.Equal(t, 0, summary.Failed)
		assert.Equal(t, 0, summary.ExitCode())

		content, err := os.ReadFile(filepath.Join(dir, "talk.srt"))
		require.NoError(t, err)
		assert.Equal(t, "1\n00:00:00,000 --> 00:00:02,000\nHello world.\n\n", string(content))
	})

	t.Run("explicit output path creates directories", func(t *testing.T) {
		dir := t.TempDir()
		audio := writeAudioFixture(t, dir, "talk.wav")
		output := filepath.Join(dir, "captions", "nested", "out.webvtt")

		stub := &stubTranscriber{responses: map[string]*deepgram.Response{
			audio: utteranceResponse("Hi.", deepgram.Word{Word: "hi.", Start: 0, End: floatPtr(1)}),
		}}

		summary, err := ProcessFiles(ctx, stub, ProcessConfig{
			Files:      []string{audio},
			OutputPath: output,
			Format:     captions.FormatWebVTT,
			Source:     deepgram.SourceUtterances,
			Log:        &bytes.Buffer{},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Succeeded)

		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "WEBVTT\n\n00:00:00.000 --> 00:00:01.000\nhi.\n\n", string(content))
	})

	t.Run("one failure does not abort the batch", func(t *testing.T) {
		dir := t.TempDir()
		good := writeAudioFixture(t, dir, "good.wav")
		missing := filepath.Join(dir, "missing.wav")

		stub := &stubTranscriber{responses: map[string]*deepgram.Response{
			good: utteranceResponse("Fine.", deepgram.Word{Word: "fine.", Start: 0, End: floatPtr(1)}),
		}}

		log := &bytes.Buffer{}
		summary, err := ProcessFiles(ctx, stub, ProcessConfig{
			Files:  []string{missing, good},
			Format: captions.FormatSRT,
			Source: deepgram.SourceUtterances,
			Log:    log,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Succeeded)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 1, summary.ExitCode())
		require.Len(t, summary.Failures, 1)
		assert.Equal(t, missing, summary.Failures[0].Path)
		assert.ErrorIs(t, summary.Failures[0], ErrInputNotFound)
		assert.Contains(t, log.String(), "missing.wav")

		// The missing file never reached the transcriber
		assert.Equal(t, []string{good}, stub.calls)
	})

	t.Run("transcription errors are per-file", func(t *testing.T) {
		dir := t.TempDir()
		audio := writeAudioFixture(t, dir, "talk.wav")

		stub := &stubTranscriber{err: deepgram.ErrAuth}
		summary, err := ProcessFiles(ctx, stub, ProcessConfig{
			Files:  []string{audio},
			Format: captions.FormatSRT,
			Source: deepgram.SourceUtterances,
			Log:    &bytes.Buffer{},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Failed)
		assert.ErrorIs(t, summary.Failures[0], deepgram.ErrAuth)
	})

	t.Run("empty transcript fails normalization", func(t *testing.T) {
		dir := t.TempDir()
		audio := writeAudioFixture(t, dir, "silent.wav")

		stub := &stubTranscriber{} // returns an empty response
		summary, err := ProcessFiles(ctx, stub, ProcessConfig{
			Files:  []string{audio},
			Format: captions.FormatSRT,
			Source: deepgram.SourceUtterances,
			Log:    &bytes.Buffer{},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Failed)
		assert.ErrorIs(t, summary.Failures[0], deepgram.ErrNoTranscript)
	})

	t.Run("paragraph fallback logs a warning", func(t *testing.T) {
		dir := t.TempDir()
		audio := writeAudioFixture(t, dir, "talk.wav")

		stub := &stubTranscriber{responses: map[string]*deepgram.Response{
			audio: utteranceResponse("Only utterances.", deepgram.Word{Word: "only", Start: 0, End: floatPtr(1)}),
		}}

		log := &bytes.Buffer{}
		summary, err := ProcessFiles(ctx, stub, ProcessConfig{
			Files:  []string{audio},
			Format: captions.FormatSRT,
			Source: deepgram.SourceParagraphs,
			Log:    log,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, summary.Succeeded)
		assert.Contains(t, log.String(), "paragraph structure unavailable")
	})

	t.Run("config validation", func(t *testing.T) {
		_, err := ProcessFiles(ctx, &stubTranscriber{}, ProcessConfig{})
		assert.EqualError(t, err, "no audio files provided")

		_, err = ProcessFiles(ctx, &stubTranscriber{}, ProcessConfig{
			Files:      []string{"a.wav", "b.wav"},
			OutputPath: "out.srt",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one input file")
	})
}

func TestSummaryExitCode(t *testing.T) {
	assert.Equal(t, 0, Summary{Succeeded: 2}.ExitCode())
	assert.Equal(t, 1, Summary{Succeeded: 1, Failed: 1}.ExitCode())
	assert.Equal(t, 1, Summary{}.ExitCode())
}

func TestFileErrorUnwrap(t *testing.T) {
	base := errors.New("base")
	err := FileError{Path: "x.wav", Err: base}
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "x.wav")
}
