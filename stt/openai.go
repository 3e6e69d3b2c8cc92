package stt

import (
	"context"
	"os"
	"strings"

	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIRecognizer sends the capture as a WAV file to the OpenAI
// transcription endpoint.
type OpenAIRecognizer struct {
	client *openai.Client
	model  string
}

func NewOpenAIRecognizer(apiKey, model string) *OpenAIRecognizer {
	return NewOpenAIRecognizerWithConfig(openai.DefaultConfig(apiKey), model)
}

func NewOpenAIRecognizerWithConfig(cfg openai.ClientConfig, model string) *OpenAIRecognizer {
	if model == "" {
		model = openai.Whisper1
	}
	return &OpenAIRecognizer{client: openai.NewClientWithConfig(cfg), model: model}
}

func (r *OpenAIRecognizer) Name() string { return "openai" }

func (r *OpenAIRecognizer) Transcribe(ctx context.Context, capture *audio.Capture, language string) (string, error) {
	if capture.Empty() {
		return "", ErrUnrecognized
	}

	path, cleanup, err := tempWAV(capture)
	if err != nil {
		return "", err
	}
	defer cleanup()

	resp, err := r.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    r.model,
		FilePath: path,
		Language: baseLanguage(language),
	})
	if err != nil {
		return "", errors.Wrap(err, "openai transcription")
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", ErrUnrecognized
	}
	return text, nil
}

// baseLanguage turns a BCP 47 tag like "id-ID" into the ISO-639-1 code the
// transcription API expects.
func baseLanguage(tag string) string {
	base, _, _ := strings.Cut(tag, "-")
	return strings.ToLower(base)
}

func tempWAV(capture *audio.Capture) (string, func(), error) {
	f, err := os.CreateTemp("", "speechkit-*.wav")
	if err != nil {
		return "", nil, errors.Wrap(err, "creating temp wav")
	}
	path := f.Name()
	f.Close()

	cleanup := func() { os.Remove(path) }
	if err := capture.WriteWAV(path); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
