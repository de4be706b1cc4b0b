package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production Deepgram API endpoint
	DefaultBaseURL = "https://api.deepgram.com"

	// DefaultTimeout bounds a single transcription request
	DefaultTimeout = 300 * time.Second
)

// Options configures a transcription request. Zero values mean the
// corresponding feature is not requested.
type Options struct {
	Language    string // Language code (e.g. "en")
	Model       string // Deepgram model name (e.g. "nova-2")
	SmartFormat bool   // Punctuation, capitalization, number formatting
	Utterances  bool   // Speaker-turn segmentation with word timing
	Paragraphs  bool   // Paragraph/sentence segmentation
	Diarize     bool   // Speaker attribution metadata
}

// Client is a minimal Deepgram prerecorded transcription client
type Client struct {
	apiKey  string
	baseURL string
	hc      *http.Client
}

// ClientOption customizes a Client
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint (used by tests)
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.hc.Timeout = timeout
	}
}

// NewClient creates a Deepgram client for the given API key
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		hc:      &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transcribe uploads a local audio file and returns the parsed transcription
// response. The call blocks until the API responds or the client timeout
// elapses; no retries are performed.
func (c *Client) Transcribe(ctx context.Context, audioPath string, opts Options) (*Response, error) {
	payload, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("reading audio file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.listenURL(opts), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", contentTypeFor(audioPath))

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusPaymentRequired, http.StatusForbidden:
			return nil, fmt.Errorf("%w (http %d): %s", ErrAuth, resp.StatusCode, strings.TrimSpace(string(body)))
		default:
			return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding transcription response: %w", err)
	}
	return &out, nil
}

// listenURL builds the /v1/listen request URL with feature query parameters
func (c *Client) listenURL(opts Options) string {
	q := url.Values{}
	if opts.Language != "" {
		q.Set("language", opts.Language)
	}
	if opts.Model != "" {
		q.Set("model", opts.Model)
	}
	for param, enabled := range map[string]bool{
		"smart_format": opts.SmartFormat,
		"utterances":   opts.Utterances,
		"paragraphs":   opts.Paragraphs,
		"diarize":      opts.Diarize,
	} {
		if enabled {
			q.Set(param, strconv.FormatBool(true))
		}
	}

	u := c.baseURL + "/v1/listen"
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// contentTypeFor maps common audio extensions to a request content type
func contentTypeFor(audioPath string) string {
	switch strings.ToLower(filepath.Ext(audioPath)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".flac":
		return "audio/flac"
	case ".ogg", ".opus":
		return "audio/ogg"
	case ".m4a", ".mp4":
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}
