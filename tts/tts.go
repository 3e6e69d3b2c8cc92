// Package tts converts typed text to MP3 audio through cloud providers.
package tts

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination=../mocks/mock_synthesizer.go -package=mocks github.com/mrsingh-rishi/speechkit/tts Synthesizer

// ErrNoText is returned when there is nothing to speak.
var ErrNoText = errors.New("no text to speak")

// Synthesizer writes the spoken form of text to w as MP3.
type Synthesizer interface {
	Name() string
	Synthesize(ctx context.Context, text string, slow bool, w io.Writer) error
}

func checkText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}
