package captioner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"skriptble.dev/caption-tools/captions"
	"skriptble.dev/caption-tools/deepgram"
)

// ErrInputNotFound is returned when an input path is missing or is not a
// regular file
var ErrInputNotFound = errors.New("input audio file not found")

// Transcriber sends audio to a speech-to-text service. deepgram.Client is the
// production implementation.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, opts deepgram.Options) (*deepgram.Response, error)
}

// ProcessConfig holds configuration for a caption batch
type ProcessConfig struct {
	Files         []string                // Audio files to process
	OutputPath    string                  // Explicit output path, only valid with exactly one file
	Format        captions.Format         // Output caption format
	Split         captions.SplitOptions   // Caption block splitting options
	Source        deepgram.SegmentSource  // Requested segment source
	Transcription deepgram.Options        // Options forwarded to the transcription API
	Verbose       bool                    // Enable per-file progress output
	Log           io.Writer               // Destination for progress and warnings (default os.Stderr)
}

// FileError records one file's failure within a batch
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// Summary reports the outcome of a caption batch
type Summary struct {
	Succeeded int
	Failed    int
	Failures  []FileError
}

// ExitCode returns the process exit status for the batch: 0 when every file
// succeeded and at least one did, 1 otherwise
func (s Summary) ExitCode() int {
	if s.Failed == 0 && s.Succeeded > 0 {
		return 0
	}
	return 1
}

// ProcessFiles captions each configured audio file in order. Files are
// processed fully (transcribe, normalize, split, format, write) one at a
// time; one file's failure never aborts the batch. The returned error covers
// configuration problems only.
func ProcessFiles(ctx context.Context, transcriber Transcriber, config ProcessConfig) (Summary, error) {
	if len(config.Files) == 0 {
		return Summary{}, fmt.Errorf("no audio files provided")
	}
	if config.OutputPath != "" && len(config.Files) != 1 {
		return Summary{}, fmt.Errorf("explicit output path requires exactly one input file, got %d", len(config.Files))
	}
	if config.Log == nil {
		config.Log = os.Stderr
	}

	var summary Summary
	for _, audioPath := range config.Files {
		outputPath, err := processFile(ctx, transcriber, config, audioPath)
		if err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, FileError{Path: audioPath, Err: err})
			fmt.Fprintf(config.Log, "error: %s: %v\n", audioPath, err)
			continue
		}
		summary.Succeeded++
		if config.Verbose {
			fmt.Fprintf(config.Log, "wrote %s\n", outputPath)
		}
	}
	return summary, nil
}

// processFile runs the full pipeline for one audio file and returns the
// caption file path it wrote
func processFile(ctx context.Context, transcriber Transcriber, config ProcessConfig, audioPath string) (string, error) {
	info, err := os.Stat(audioPath)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, audioPath)
	}

	if config.Verbose {
		fmt.Fprintf(config.Log, "transcribing %s...\n", audioPath)
	}

	resp, err := transcriber.Transcribe(ctx, audioPath, config.Transcription)
	if err != nil {
		return "", err
	}

	normalized, err := deepgram.Normalize(resp, config.Source)
	if err != nil {
		return "", err
	}
	if normalized.FellBack {
		fmt.Fprintf(config.Log, "warning: %s: paragraph structure unavailable, using %s\n",
			audioPath, normalized.Source)
	}

	track := captions.Split(normalized.Segments, config.Split)
	if len(track.Blocks) == 0 {
		fmt.Fprintf(config.Log, "warning: %s: transcript produced no caption blocks\n", audioPath)
	}

	content, err := captions.FormatCaptions(track, config.Format)
	if err != nil {
		return "", err
	}

	outputPath := config.OutputPath
	if outputPath == "" {
		outputPath = defaultOutputPath(audioPath, config.Format)
	}
	if err := writeCaptionFile(outputPath, content); err != nil {
		return "", err
	}
	return outputPath, nil
}

// defaultOutputPath places the caption file next to the input audio file
func defaultOutputPath(audioPath string, format captions.Format) string {
	base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
	return base + "." + format.Extension()
}

// writeCaptionFile writes the caption content, creating parent directories as
// needed. Writes are not transactional: a partial file may remain on failure.
func writeCaptionFile(outputPath, content string) error {
	if dir := filepath.Dir(outputPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing caption file: %w", err)
	}
	return nil
}
