package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/mrsingh-rishi/speechkit/console"
	"github.com/mrsingh-rishi/speechkit/playback"
	"github.com/mrsingh-rishi/speechkit/tts"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// PlaybackGrace gives the external player time to start before the next prompt.
const PlaybackGrace = time.Second

// CloudSession converts typed text with a cloud Synthesizer and plays it.
type CloudSession struct {
	prompter  *console.Prompter
	synth     tts.Synthesizer
	player    playback.Player
	outputDir string
	log       *zap.SugaredLogger
	now       func() time.Time
	grace     time.Duration
}

func NewCloudSession(p *console.Prompter, synth tts.Synthesizer, player playback.Player, outputDir string, log *zap.SugaredLogger) *CloudSession {
	return &CloudSession{
		prompter:  p,
		synth:     synth,
		player:    player,
		outputDir: outputDir,
		log:       log,
		now:       time.Now,
		grace:     PlaybackGrace,
	}
}

// WithClock replaces the clock used in filenames.
func (s *CloudSession) WithClock(now func() time.Time) *CloudSession {
	s.now = now
	return s
}

// WithGrace replaces the pause after playback starts.
func (s *CloudSession) WithGrace(d time.Duration) *CloudSession {
	s.grace = d
	return s
}

// Convert writes speech_<ts>.mp3 into the output directory. A failed
// conversion leaves no file behind.
func (s *CloudSession) Convert(ctx context.Context, text string, slow bool) (string, error) {
	path := filepath.Join(s.outputDir, "speech_"+s.now().Format(FileTimestamp)+".mp3")
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating audio file")
	}

	if err := s.synth.Synthesize(ctx, text, slow, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, "writing audio file")
	}
	return path, nil
}

func (s *CloudSession) header() {
	s.prompter.ClearScreen()
	s.prompter.Println(console.Banner("Text-to-Speech Converter"))
}

func (s *CloudSession) input(ctx context.Context) (string, bool, error) {
	p := s.prompter
	p.Println("\n📝 Enter your text:")
	text, err := p.Ask(ctx, "➜ ")
	if err != nil {
		return "", false, err
	}

	p.Println("\n🔊 Select speech speed:")
	p.Println("1. Normal")
	p.Println("2. Slow")
	slow, err := console.AskUntilValid(ctx, p, "➜ Enter your choice (1/2): ", func(in string) (bool, error) {
		choice, err := console.ParseOption(in, "1", "2")
		return choice == "2", err
	})
	return text, slow, err
}

// Run loops until the operator stops. Conversion and playback failures are
// reported and the loop continues.
func (s *CloudSession) Run(ctx context.Context) error {
	p := s.prompter
	for {
		s.header()

		text, slow, err := s.input(ctx)
		if finished(err) {
			return nil
		}
		if err != nil {
			return err
		}

		p.Println("\n⏳ Converting text to speech...")
		path, err := s.Convert(ctx, text, slow)
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			s.log.Warnf("%s conversion failed: %v", s.synth.Name(), err)
			p.Fail("Error during conversion: %v", err)
		} else {
			p.Ok("Audio saved as: %s", path)
			p.Println("\n▶️ Playing audio...")
			if err := s.player.Play(ctx, path); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				s.log.Warnf("playback failed: %v", err)
				p.Fail("Error playing audio: %v", err)
			} else if err := pause(ctx, s.grace); err != nil {
				return err
			}
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
