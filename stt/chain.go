package stt

import (
	"context"

	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Chain tries a primary recognizer with the configured language and, when it
// reports ErrUnrecognized, an offline fallback without one.
type Chain struct {
	primary  Recognizer
	fallback Recognizer
	language string
	log      *zap.SugaredLogger
}

// NewChain creates a Chain. fallback may be nil.
func NewChain(primary, fallback Recognizer, language string, log *zap.SugaredLogger) *Chain {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Chain{primary: primary, fallback: fallback, language: language, log: log}
}

// Recognize runs the chain:
//   - primary succeeds: Recognized with its text
//   - primary fails with anything but ErrUnrecognized: DeviceError
//   - fallback succeeds: Recognized with the fallback's text, untouched
//   - fallback fails or is missing: Unrecognized
func (c *Chain) Recognize(ctx context.Context, capture *audio.Capture) Outcome {
	text, err := c.primary.Transcribe(ctx, capture, c.language)
	if err == nil {
		return Outcome{Kind: Recognized, Text: text, Engine: c.primary.Name()}
	}
	if !errors.Is(err, ErrUnrecognized) {
		return Failed(errors.Wrapf(err, "%s recognition", c.primary.Name()))
	}

	c.log.Debugf("%s did not understand the audio, falling back", c.primary.Name())
	if c.fallback == nil {
		return Outcome{Kind: Unrecognized}
	}

	text, err = c.fallback.Transcribe(ctx, capture, "")
	if err != nil {
		c.log.Debugf("%s fallback failed: %v", c.fallback.Name(), err)
		return Outcome{Kind: Unrecognized}
	}
	return Outcome{Kind: Recognized, Text: text, Engine: c.fallback.Name()}
}
