package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

const (
	ElevenLabsEndpoint = "https://api.elevenlabs.io"
	// ElevenLabsSlowSpeed is the voice_settings.speed used for slow output.
	ElevenLabsSlowSpeed = 0.8
)

// ElevenLabsSynthesizer calls the ElevenLabs text-to-speech REST endpoint.
type ElevenLabsSynthesizer struct {
	APIKey     string
	VoiceID    string
	ModelID    string
	Endpoint   string
	HTTPClient *http.Client
}

type voiceSettings struct {
	Stability       float64  `json:"stability"`
	SimilarityBoost float64  `json:"similarity_boost"`
	Speed           *float64 `json:"speed,omitempty"`
}

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

func NewElevenLabsSynthesizer(apiKey, voiceID, modelID string) *ElevenLabsSynthesizer {
	return &ElevenLabsSynthesizer{
		APIKey:     apiKey,
		VoiceID:    voiceID,
		ModelID:    modelID,
		Endpoint:   ElevenLabsEndpoint,
		HTTPClient: http.DefaultClient,
	}
}

func (client *ElevenLabsSynthesizer) Name() string { return "elevenlabs" }

func (client *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text string, slow bool, w io.Writer) error {
	text, err := checkText(text)
	if err != nil {
		return err
	}

	base, err := url.Parse(fmt.Sprintf("%s/v1/text-to-speech/%s", client.Endpoint, url.PathEscape(client.VoiceID)))
	if err != nil {
		return errors.Wrap(err, "parsing endpoint")
	}
	q := base.Query()
	q.Set("output_format", "mp3_44100_128")
	base.RawQuery = q.Encode()

	payload := elevenLabsRequest{
		Text:    text,
		ModelID: client.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       0.75,
			SimilarityBoost: 0.7,
		},
	}
	if slow {
		speed := ElevenLabsSlowSpeed
		payload.VoiceSettings.Speed = &speed
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base.String(), bytes.NewReader(bodyBytes))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("xi-api-key", client.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := client.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "http request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("bad status: %s: %s", resp.Status, bytes.TrimSpace(msg))
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return errors.Wrap(err, "reading audio")
	}
	return nil
}
