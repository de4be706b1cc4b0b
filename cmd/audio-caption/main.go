package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"skriptble.dev/caption-tools/captioner"
	"skriptble.dev/caption-tools/captions"
	"skriptble.dev/caption-tools/config"
	"skriptble.dev/caption-tools/deepgram"
	"skriptble.dev/caption-tools/wavegen"
)

const (
	defaultFormat = "srt"
	defaultModel  = "nova-2"

	// dummyAudioFilename triggers placeholder WAV generation when given as
	// an input that does not exist yet
	dummyAudioFilename = "dummy_audio.wav"
)

var (
	// Output flags
	outputPath  = flag.String("output", "", "Output caption file path (single input only)")
	outputShort = flag.String("o", "", "Output caption file path (short form)")
	formatType  = flag.String("format", defaultFormat, "Output format: srt, webvtt")
	formatShort = flag.String("f", "", "Output format (short form)")

	// Transcription flags
	apiKey      = flag.String("api-key", "", "Deepgram API key (default: DEEPGRAM_API_KEY env var)")
	apiKeyShort = flag.String("k", "", "Deepgram API key (short form)")
	language    = flag.String("language", "en", "Language code (e.g., 'en', 'es')")
	langShort   = flag.String("l", "", "Language code (short form)")
	model       = flag.String("model", defaultModel, "Deepgram model name")
	modelShort  = flag.String("m", "", "Deepgram model (short form)")
	paragraphs  = flag.Bool("paragraphs", false, "Segment captions from paragraph sentences instead of utterances")
	diarize     = flag.Bool("diarize", false, "Request speaker diarization metadata")
	timeoutSecs = flag.Int("timeout", 0, "Transcription request timeout in seconds (default: 300)")

	// Caption flags
	maxChars       = flag.Int("max-chars", captions.DefaultMaxChars, "Maximum characters per caption block")
	splitSentences = flag.Bool("split-sentences", false, "Start a new caption block after each sentence")

	verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	verboseShort = flag.Bool("v", false, "Verbose logging (short form)")
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	// Get non-flag arguments (audio files)
	audioFiles := flag.Args()
	if len(audioFiles) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one audio file is required")
		printUsage()
		os.Exit(2)
	}

	format := strings.ToLower(getStringFlag(*formatShort, *formatType))
	if !captions.IsValidFormat(format) {
		fmt.Fprintf(os.Stderr, "Error: invalid format '%s'. Valid formats: srt, webvtt\n", format)
		os.Exit(2)
	}

	output := getStringFlag(*outputShort, *outputPath)
	if output != "" && len(audioFiles) != 1 {
		fmt.Fprintln(os.Stderr, "Error: --output/-o can only be used with a single input file")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	key := getStringFlag(*apiKeyShort, *apiKey)
	if key == "" {
		key = cfg.APIKey
	}
	if key == "" {
		fmt.Fprintf(os.Stderr, "Error: %v\n", config.ErrMissingAPIKey)
		os.Exit(2)
	}

	timeout := cfg.Timeout()
	if *timeoutSecs > 0 {
		timeout = time.Duration(*timeoutSecs) * time.Second
	}

	isVerbose := *verbose || *verboseShort

	// Create a placeholder recording when the conventional dummy filename is
	// given but missing, so the tool can be demonstrated without real audio
	for _, audioFile := range audioFiles {
		if audioFile != dummyAudioFilename {
			continue
		}
		if _, err := os.Stat(audioFile); !errors.Is(err, os.ErrNotExist) {
			continue
		}
		fmt.Fprintf(os.Stderr, "Notice: '%s' not found, creating a silent placeholder WAV\n", audioFile)
		if err := wavegen.WriteSilence(audioFile, wavegen.DefaultSeconds, wavegen.DefaultSampleRate); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating placeholder audio: %v\n", err)
			os.Exit(1)
		}
	}

	source := deepgram.SourceUtterances
	if *paragraphs {
		source = deepgram.SourceParagraphs
	}

	if isVerbose {
		fmt.Fprintf(os.Stderr, "Audio Caption Tool\n")
		fmt.Fprintf(os.Stderr, "==================\n")
		fmt.Fprintf(os.Stderr, "Audio files: %d\n", len(audioFiles))
		for i, file := range audioFiles {
			fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, file)
		}
		fmt.Fprintf(os.Stderr, "Format: %s\n", format)
		fmt.Fprintf(os.Stderr, "Model: %s\n", getStringFlag(*modelShort, *model))
		fmt.Fprintf(os.Stderr, "Language: %s\n", getStringFlag(*langShort, *language))
		fmt.Fprintf(os.Stderr, "Segment source: %s\n", source)
		fmt.Fprintf(os.Stderr, "Max characters per block: %d\n", *maxChars)
		fmt.Fprintf(os.Stderr, "Split on sentences: %t\n", *splitSentences)
		fmt.Fprintln(os.Stderr)
	}

	client := deepgram.NewClient(key,
		deepgram.WithBaseURL(cfg.BaseURL),
		deepgram.WithTimeout(timeout),
	)

	processConfig := captioner.ProcessConfig{
		Files:      audioFiles,
		OutputPath: output,
		Format:     captions.Format(format),
		Split: captions.SplitOptions{
			MaxChars:       *maxChars,
			SplitSentences: *splitSentences,
		},
		Source: source,
		Transcription: deepgram.Options{
			Language:    getStringFlag(*langShort, *language),
			Model:       getStringFlag(*modelShort, *model),
			SmartFormat: true,
			Utterances:  true,
			Paragraphs:  *paragraphs,
			Diarize:     *diarize,
		},
		Verbose: isVerbose,
	}

	summary, err := captioner.ProcessFiles(context.Background(), client, processConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Captioned %d of %d file(s)", summary.Succeeded, len(audioFiles))
	if summary.Failed > 0 {
		fmt.Printf(", %d failed", summary.Failed)
	}
	fmt.Println()

	os.Exit(summary.ExitCode())
}

// getStringFlag returns the value from either the short or long flag (short
// takes precedence when set)
func getStringFlag(short, long string) string {
	if short != "" {
		return short
	}
	return long
}

// printUsage prints the usage information
func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: audio-caption [flags] <audio-file-1> [audio-file-n...]

Transcribe local audio files with the Deepgram API and write SRT or WebVTT
caption files. Each input is processed independently; one file's failure does
not stop the batch.

Flags:
  --format, -f          Output format: srt, webvtt (default: srt)
  --output, -o          Output caption file path (single input only;
                        default: next to the input, e.g. audio.srt)
  --api-key, -k         Deepgram API key (default: DEEPGRAM_API_KEY env var)
  --language, -l        Language code (default: en)
  --model, -m           Deepgram model name (default: nova-2)
  --paragraphs          Caption from paragraph sentences instead of utterances
  --diarize             Request speaker diarization metadata
  --max-chars           Maximum characters per caption block (default: 100)
  --split-sentences     Start a new caption block after each sentence
  --timeout             Request timeout in seconds (default: 300)
  --verbose, -v         Enable verbose logging

Examples:
  # Basic usage, writes recording.srt
  audio-caption recording.wav

  # WebVTT with sentence-aligned caption blocks
  audio-caption -f webvtt --split-sentences recording.wav

  # Several files, shorter caption blocks
  audio-caption --max-chars 60 ep1.mp3 ep2.mp3 ep3.mp3

  # Explicit output path for a single file
  audio-caption -o captions/out.srt recording.flac

Exit status:
  0  every input file was captioned
  1  at least one file failed, or none succeeded
  2  usage or configuration error
`)
}
