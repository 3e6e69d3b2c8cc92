// Package stt turns captured utterances into text. A Chain runs a cloud
// recognizer first and falls back to an offline one when speech was not
// understood.
package stt

import (
	"context"

	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/pkg/errors"
)

//go:generate mockgen -destination=../mocks/mock_recognizer.go -package=mocks github.com/mrsingh-rishi/speechkit/stt Recognizer

// ErrUnrecognized is returned by a Recognizer that received audio but could
// not make words out of it.
var ErrUnrecognized = errors.New("speech was not understood")

const (
	// SentinelText replaces the transcript when no recognizer understood the audio.
	SentinelText = "Unable to recognize speech"
	// NoTextDetected replaces an empty transcript.
	NoTextDetected = "No text detected"
	// ErrorPrefix starts the text shown for a failed recording.
	ErrorPrefix = "Error in recording: "
)

// Recognizer converts one capture to text. An empty language lets the
// engine use its own default.
type Recognizer interface {
	Name() string
	Transcribe(ctx context.Context, capture *audio.Capture, language string) (string, error)
}

// Kind tells the three recognition results apart.
type Kind int

const (
	Recognized Kind = iota
	Unrecognized
	DeviceError
)

func (k Kind) String() string {
	switch k {
	case Recognized:
		return "recognized"
	case Unrecognized:
		return "unrecognized"
	case DeviceError:
		return "device error"
	default:
		return "unknown"
	}
}

// Outcome is the result of one recognition attempt.
type Outcome struct {
	Kind Kind
	// Text is the raw transcript; set only for Recognized.
	Text string
	// Engine names the recognizer that produced Text.
	Engine string
	// Err is the failure behind a DeviceError.
	Err error
}

// Failed wraps a capture or recognition failure.
func Failed(err error) Outcome {
	return Outcome{Kind: DeviceError, Err: err}
}

// Display is the text shown to the operator for this outcome.
func (o Outcome) Display() string {
	switch o.Kind {
	case Recognized:
		return Normalize(o.Text)
	case Unrecognized:
		return SentinelText
	default:
		return ErrorPrefix + o.Err.Error()
	}
}

// Persistable reports whether the outcome produces a transcript file.
func (o Outcome) Persistable() bool {
	return o.Kind != DeviceError
}
