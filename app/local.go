package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mrsingh-rishi/speechkit/console"
	"github.com/mrsingh-rishi/speechkit/voice"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrNoVoices is returned when the engine reports no installed voices.
var ErrNoVoices = errors.New("no voices installed")

// LocalSession speaks typed text with an installed voice.
type LocalSession struct {
	prompter  *console.Prompter
	engine    voice.Engine
	outputDir string
	log       *zap.SugaredLogger
	now       func() time.Time
	voices    []voice.Voice
}

func NewLocalSession(p *console.Prompter, engine voice.Engine, outputDir string, log *zap.SugaredLogger) *LocalSession {
	return &LocalSession{
		prompter:  p,
		engine:    engine,
		outputDir: outputDir,
		log:       log,
		now:       time.Now,
	}
}

// WithClock replaces the clock used in filenames.
func (s *LocalSession) WithClock(now func() time.Time) *LocalSession {
	s.now = now
	return s
}

// LoadVoices enumerates the engine's voices once.
func (s *LocalSession) LoadVoices(ctx context.Context) ([]voice.Voice, error) {
	voices, err := s.engine.Voices(ctx)
	if err != nil {
		return nil, err
	}
	if len(voices) == 0 {
		return nil, ErrNoVoices
	}
	s.voices = voices
	return voices, nil
}

// Request is one validated set of operator choices.
type Request struct {
	Text   string
	Params voice.Params
}

// Prompt collects text, voice, rate and volume, re-prompting on bad input.
func (s *LocalSession) Prompt(ctx context.Context) (Request, error) {
	p := s.prompter
	p.Println("\n📝 Enter your text:")
	text, err := p.Ask(ctx, "➜ ")
	if err != nil {
		return Request{}, err
	}

	p.Println("\n🎭 Available Voices:")
	for i, v := range s.voices {
		p.Println(v.DisplayLine(i + 1))
	}
	idx, err := console.AskUntilValid(ctx, p, fmt.Sprintf("\n➜ Select voice (1-%d): ", len(s.voices)), func(in string) (int, error) {
		return console.ParseIndex(in, len(s.voices))
	})
	if err != nil {
		return Request{}, err
	}

	p.Println("\n🔊 Select speech rate:")
	p.Println("1. Very Slow (80 wpm)")
	p.Println("2. Slow (100 wpm)")
	p.Println("3. Normal (150 wpm)")
	p.Println("4. Fast (200 wpm)")
	p.Println("5. Very Fast (250 wpm)")
	rate, err := console.AskUntilValid(ctx, p, "➜ Enter your choice (1-5): ", voice.ParseRate)
	if err != nil {
		return Request{}, err
	}

	p.Println("\n🔈 Select volume (0.1 - 1.0):")
	volume, err := console.AskUntilValid(ctx, p, "➜ Enter volume (default 1.0): ", voice.ParseVolume)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Text:   text,
		Params: voice.Params{Voice: s.voices[idx], Rate: rate, Volume: volume},
	}, nil
}

// SaveAndSpeak renders req to speech_<token>_<ts>.mp3 and then speaks it.
func (s *LocalSession) SaveAndSpeak(ctx context.Context, req Request) (string, error) {
	name := fmt.Sprintf("speech_%s_%s.mp3", req.Params.Voice.FileToken(), s.now().Format(FileTimestamp))
	path := filepath.Join(s.outputDir, name)

	s.prompter.Println("\n⏳ Converting text to speech...")
	if err := s.engine.SaveToFile(ctx, req.Text, req.Params, path); err != nil {
		return "", errors.Wrap(err, "conversion")
	}
	s.prompter.Ok("Audio saved as: %s", path)

	s.prompter.Println("\n▶️ Playing saved audio...")
	if err := s.engine.Say(ctx, req.Text, req.Params); err != nil {
		return path, errors.Wrap(err, "playback")
	}
	return path, nil
}

// Speak plays req without saving.
func (s *LocalSession) Speak(ctx context.Context, req Request) error {
	s.prompter.Println("\n▶️ Playing audio...")
	return errors.Wrap(s.engine.Say(ctx, req.Text, req.Params), "playback")
}

// Run loads the voices and loops until the operator stops. Engine failures
// are reported and the loop continues.
func (s *LocalSession) Run(ctx context.Context) error {
	if s.voices == nil {
		if _, err := s.LoadVoices(ctx); err != nil {
			return err
		}
	}

	p := s.prompter
	for {
		p.ClearScreen()
		p.Println(console.Banner("Text-to-Speech Converter", "(with Multiple Voice Types)"))

		req, err := s.Prompt(ctx)
		if finished(err) {
			return nil
		}
		if err != nil {
			return err
		}

		p.Println("\n💾 Would you like to save the audio file?")
		save, err := p.Confirm(ctx, "➜ Enter 'y' for yes, any other key to just play: ")
		if finished(err) {
			return nil
		}
		if err != nil {
			return err
		}

		if save {
			_, err = s.SaveAndSpeak(ctx, req)
		} else {
			err = s.Speak(ctx, req)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			s.log.Warnf("%s engine failed: %v", s.engine.Name(), err)
			p.Fail("Error: %v", err)
		}

		p.Println("\n🔄 Would you like to convert another text?")
		more, err := again(ctx, p, "➜ Enter 'y' for yes, any other key to exit: ")
		if err != nil {
			return err
		}
		if !more {
			p.Println("\n👋 Thank you for using Text-to-Speech Converter!")
			return nil
		}
	}
}
