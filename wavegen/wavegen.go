// Package wavegen writes placeholder WAV files used when no real recording is
// available, such as demo runs against a missing input file.
package wavegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// DefaultSampleRate matches the rate expected by speech models
	DefaultSampleRate = 16000

	// DefaultSeconds is the duration of a generated placeholder file
	DefaultSeconds = 2.0
)

// WriteSilence writes a 16-bit mono PCM WAV file containing only silence.
// Parent directories are created as needed. Zero or negative arguments fall
// back to the package defaults.
func WriteSilence(path string, seconds float64, sampleRate int) error {
	if seconds <= 0 {
		seconds = DefaultSeconds
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}
	defer f.Close()

	numFrames := int(seconds * float64(sampleRate))
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, numFrames),
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}
	return nil
}
