package deepgram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF fake audio"), 0o644))
	return path
}

func TestClientTranscribe(t *testing.T) {
	ctx := context.Background()

	var gotReq *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"metadata": {"request_id": "req-1", "duration": 2.0, "channels": 1},
			"results": {
				"utterances": [
					{"start": 0, "end": 2, "transcript": "hello there", "words": [
						{"word": "hello", "start": 0, "end": 1, "punctuated_word": "Hello"},
						{"word": "there", "start": 1, "end": 2}
					]}
				],
				"channels": [{"alternatives": [{"transcript": "hello there", "confidence": 0.98}]}]
			}
		}`))
	}))
	defer ts.Close()

	client := NewClient("test-key", WithBaseURL(ts.URL), WithHTTPClient(ts.Client()))

	resp, err := client.Transcribe(ctx, writeTestAudio(t), Options{
		Language:    "en",
		Model:       "nova-2",
		SmartFormat: true,
		Utterances:  true,
		Diarize:     true,
	})
	require.NoError(t, err)

	// Request shape
	require.NotNil(t, gotReq)
	assert.Equal(t, http.MethodPost, gotReq.Method)
	assert.Equal(t, "/v1/listen", gotReq.URL.Path)
	assert.Equal(t, "Token test-key", gotReq.Header.Get("Authorization"))
	assert.Equal(t, "audio/wav", gotReq.Header.Get("Content-Type"))

	query := gotReq.URL.Query()
	assert.Equal(t, "en", query.Get("language"))
	assert.Equal(t, "nova-2", query.Get("model"))
	assert.Equal(t, "true", query.Get("smart_format"))
	assert.Equal(t, "true", query.Get("utterances"))
	assert.Equal(t, "true", query.Get("diarize"))
	assert.Empty(t, query.Get("paragraphs"), "unset features are not sent")

	// Response mapping
	assert.Equal(t, "req-1", resp.Metadata.RequestID)
	require.Len(t, resp.Results.Utterances, 1)
	require.Len(t, resp.Results.Utterances[0].Words, 2)
	assert.Equal(t, "Hello", resp.Results.Utterances[0].Words[0].Text())
	assert.Equal(t, "there", resp.Results.Utterances[0].Words[1].Text())
}

func TestClientTranscribeAuthError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusPaymentRequired, http.StatusForbidden} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid credentials", status)
		}))

		client := NewClient("bad-key", WithBaseURL(ts.URL))
		_, err := client.Transcribe(context.Background(), writeTestAudio(t), Options{})
		assert.ErrorIs(t, err, ErrAuth, "status %d", status)
		ts.Close()
	}
}

func TestClientTranscribeAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient("key", WithBaseURL(ts.URL))
	_, err := client.Transcribe(context.Background(), writeTestAudio(t), Options{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "boom")
}

func TestClientTranscribeNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	client := NewClient("key", WithBaseURL(ts.URL))
	_, err := client.Transcribe(context.Background(), writeTestAudio(t), Options{})
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestClientTranscribeMissingFile(t *testing.T) {
	client := NewClient("key")
	_, err := client.Transcribe(context.Background(), filepath.Join(t.TempDir(), "absent.wav"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
