package tts

import (
	"context"
	"io"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// SlowSpeed is the OpenAI speech speed used for slow output.
const SlowSpeed = 0.75

// OpenAISynthesizer uses the OpenAI speech endpoint.
type OpenAISynthesizer struct {
	client *openai.Client
	model  string
	voice  string
}

func NewOpenAISynthesizer(apiKey, model, voice string) *OpenAISynthesizer {
	return NewOpenAISynthesizerWithConfig(openai.DefaultConfig(apiKey), model, voice)
}

func NewOpenAISynthesizerWithConfig(cfg openai.ClientConfig, model, voice string) *OpenAISynthesizer {
	return &OpenAISynthesizer{client: openai.NewClientWithConfig(cfg), model: model, voice: voice}
}

func (o *OpenAISynthesizer) Name() string { return "openai" }

func (o *OpenAISynthesizer) Synthesize(ctx context.Context, text string, slow bool, w io.Writer) error {
	text, err := checkText(text)
	if err != nil {
		return err
	}

	speed := 1.0
	if slow {
		speed = SlowSpeed
	}
	resp, err := o.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(o.model),
		Input:          text,
		Voice:          openai.SpeechVoice(o.voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
		Speed:          speed,
	})
	if err != nil {
		return errors.Wrap(err, "openai speech")
	}
	defer resp.Close()

	if _, err := io.Copy(w, resp); err != nil {
		return errors.Wrap(err, "reading openai audio")
	}
	return nil
}
