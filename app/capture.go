package app

import (
	"context"
	"time"

	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/mrsingh-rishi/speechkit/config"
	"github.com/mrsingh-rishi/speechkit/console"
	"github.com/mrsingh-rishi/speechkit/stt"
	"github.com/mrsingh-rishi/speechkit/transcript"
	"go.uber.org/zap"
)

// CalibrationDuration is how long ambient noise is sampled before listening.
const CalibrationDuration = 2 * time.Second

// CaptureSession records utterances, transcribes them and saves the results.
type CaptureSession struct {
	prompter    *console.Prompter
	mic         audio.Microphone
	listener    *audio.Listener
	chain       *stt.Chain
	store       *transcript.Store
	settings    config.Settings
	log         *zap.SugaredLogger
	calibration time.Duration
}

func NewCaptureSession(
	p *console.Prompter,
	mic audio.Microphone,
	listener *audio.Listener,
	chain *stt.Chain,
	store *transcript.Store,
	settings config.Settings,
	log *zap.SugaredLogger,
) *CaptureSession {
	return &CaptureSession{
		prompter:    p,
		mic:         mic,
		listener:    listener,
		chain:       chain,
		store:       store,
		settings:    settings,
		log:         log,
		calibration: CalibrationDuration,
	}
}

// WithCalibration overrides the ambient noise sampling time.
func (s *CaptureSession) WithCalibration(d time.Duration) *CaptureSession {
	s.calibration = d
	return s
}

// RecordAndConvert captures one utterance and recognizes it. The capture is
// nil whenever the outcome is a DeviceError. The microphone is released
// before returning.
func (s *CaptureSession) RecordAndConvert(ctx context.Context) (stt.Outcome, *audio.Capture) {
	stream, err := s.mic.Open(ctx)
	if err != nil {
		return s.failed(ctx, err), nil
	}
	defer stream.Close()

	p := s.prompter
	p.Println("\nAdjusting environmental noise... Please wait...")
	if err := s.listener.AdjustForAmbientNoise(ctx, stream, s.calibration); err != nil {
		return s.failed(ctx, err), nil
	}

	p.Println("\nStart talking... (Press Ctrl+C to stop)")
	p.Println("Tips for best results:")
	p.Println("- Speak clearly and not too fast")
	p.Println("- Keep a distance of about 15-20 cm from the microphone")
	p.Println("- Avoid background noise")

	capture, err := s.listener.Listen(ctx, stream)
	if err != nil {
		return s.failed(ctx, err), nil
	}

	p.Println("\nConverting audio to text...")
	outcome := s.chain.Recognize(ctx, capture)
	if outcome.Kind == stt.DeviceError {
		return s.failed(ctx, outcome.Err), nil
	}
	return outcome, capture
}

func (s *CaptureSession) failed(ctx context.Context, err error) stt.Outcome {
	if ctx.Err() == nil {
		s.log.Errorf("recording failed: %v", err)
	}
	return stt.Failed(err)
}

// Save persists the displayed text and, when configured, the capture. It
// returns the transcript path or "" when no file was produced.
func (s *CaptureSession) Save(text string, capture *audio.Capture) string {
	rec := s.store.NewRecord(s.settings.Language, text)
	path, err := s.store.Save(&rec, capture, s.settings.SaveAudio)
	if err != nil {
		s.log.Errorf("saving transcript failed: %v", err)
		return ""
	}
	return path
}

// Run loops until the operator stops. ctx cancellation is returned as is.
func (s *CaptureSession) Run(ctx context.Context) error {
	p := s.prompter
	for {
		p.Println("\n" + console.Rule("=", 50))
		p.Println("Speech-to-Text Converter")
		p.Println(console.Rule("=", 50))

		outcome, capture := s.RecordAndConvert(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}

		text := outcome.Display()
		p.Println("\nConversion results:")
		p.Println(console.Rule("-", 50))
		p.Println(text)
		p.Println(console.Rule("-", 50))

		if outcome.Persistable() {
			if path := s.Save(text, capture); path != "" {
				p.Ok("The results have been saved to: %s", path)
			} else {
				p.Warn("No file produced")
			}

			p.Println("\nStatistics:")
			p.Printf("- Word count: %d\n", transcript.WordCount(text))
			p.Printf("- Number of characters: %d\n", transcript.CharacterCount(text))
		}

		more, err := again(ctx, p, "\nWant to record again? (y/n): ")
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
