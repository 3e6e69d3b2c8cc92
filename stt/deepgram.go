package stt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	gws "github.com/gorilla/websocket"
	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// chunkBytes is a quarter second of 16 kHz linear16 audio.
const chunkBytes = 8000

var closeStream = []byte(`{"type":"CloseStream"}`)

// DeepgramRecognizer streams a capture to the Deepgram live API and joins the
// final transcripts it sends back.
type DeepgramRecognizer struct {
	APIKey   string
	Endpoint string
	Model    string
	Dialer   *gws.Dialer
	Log      *zap.SugaredLogger
}

// TranscriptionMessage is one Deepgram live response.
type TranscriptionMessage struct {
	Type    string `json:"type"`
	IsFinal bool   `json:"is_final"`
	Channel struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"channel"`
}

func NewDeepgramRecognizer(apiKey, endpoint, model string, log *zap.SugaredLogger) *DeepgramRecognizer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &DeepgramRecognizer{
		APIKey:   apiKey,
		Endpoint: endpoint,
		Model:    model,
		Dialer:   gws.DefaultDialer,
		Log:      log,
	}
}

func (dg *DeepgramRecognizer) Name() string { return "deepgram" }

func (dg *DeepgramRecognizer) listenURL(language string, sampleRate int) (string, error) {
	u, err := url.Parse(dg.Endpoint)
	if err != nil {
		return "", errors.Wrap(err, "parsing deepgram endpoint")
	}
	q := u.Query()
	q.Set("encoding", "linear16")
	q.Set("sample_rate", strconv.Itoa(sampleRate))
	q.Set("channels", "1")
	q.Set("punctuate", "true")
	if dg.Model != "" {
		q.Set("model", dg.Model)
	}
	if language != "" {
		q.Set("language", language)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Transcribe sends the capture over one websocket session. A session that
// ends without any final transcript yields ErrUnrecognized.
func (dg *DeepgramRecognizer) Transcribe(ctx context.Context, capture *audio.Capture, language string) (string, error) {
	if capture.Empty() {
		return "", ErrUnrecognized
	}

	dgURL, err := dg.listenURL(language, capture.SampleRate)
	if err != nil {
		return "", err
	}
	header := http.Header{
		"Authorization": {fmt.Sprintf("Token %s", dg.APIKey)},
	}

	conn, resp, err := dg.Dialer.DialContext(ctx, dgURL, header)
	if err != nil {
		if resp != nil {
			return "", errors.Wrapf(err, "deepgram dial: %s", resp.Status)
		}
		return "", errors.Wrap(err, "deepgram dial")
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	type readResult struct {
		parts []string
		err   error
	}
	done := make(chan readResult, 1)
	go func() {
		parts, err := dg.readTranscripts(conn)
		done <- readResult{parts: parts, err: err}
	}()

	if err := dg.send(conn, capture.PCM()); err != nil {
		conn.Close()
		<-done
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", err
	}

	r := <-done
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if r.err != nil {
		return "", errors.Wrap(r.err, "reading deepgram response")
	}

	text := strings.TrimSpace(strings.Join(r.parts, " "))
	if text == "" {
		return "", ErrUnrecognized
	}
	return text, nil
}

func (dg *DeepgramRecognizer) send(conn *gws.Conn, pcm []byte) error {
	for off := 0; off < len(pcm); off += chunkBytes {
		end := min(off+chunkBytes, len(pcm))
		if err := conn.WriteMessage(gws.BinaryMessage, pcm[off:end]); err != nil {
			return errors.Wrap(err, "deepgram write")
		}
	}
	if err := conn.WriteMessage(gws.TextMessage, closeStream); err != nil {
		return errors.Wrap(err, "deepgram close stream")
	}
	return nil
}

// readTranscripts collects final transcripts until the server closes the
// socket normally.
func (dg *DeepgramRecognizer) readTranscripts(conn *gws.Conn) ([]string, error) {
	var parts []string
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if gws.IsCloseError(err, gws.CloseNormalClosure) {
				return parts, nil
			}
			return parts, err
		}

		dg.Log.Debugf("Raw Deepgram response: %s", message)

		var transcription TranscriptionMessage
		if err := json.Unmarshal(message, &transcription); err != nil {
			dg.Log.Debugf("Error parsing Deepgram response: %v", err)
			continue
		}
		if transcription.Type != "" && transcription.Type != "Results" {
			continue
		}
		if !transcription.IsFinal || len(transcription.Channel.Alternatives) == 0 {
			continue
		}
		if text := strings.TrimSpace(transcription.Channel.Alternatives[0].Transcript); text != "" {
			parts = append(parts, text)
		}
	}
}
