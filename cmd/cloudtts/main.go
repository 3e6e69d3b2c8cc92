package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/mrsingh-rishi/speechkit/app"
	"github.com/mrsingh-rishi/speechkit/config"
	"github.com/mrsingh-rishi/speechkit/console"
	"github.com/mrsingh-rishi/speechkit/logger"
	"github.com/mrsingh-rishi/speechkit/playback"
	"github.com/mrsingh-rishi/speechkit/tts"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "cloudtts",
	Short: "Convert typed text to speech with a cloud voice",
	Long: `cloudtts reads a line of text, converts it to an MP3 with the configured
cloud provider (google, openai or elevenlabs), saves it under saved_audio/ and
plays it with the system player.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newSynthesizer(env config.CloudTTSEnv, log *zap.SugaredLogger) tts.Synthesizer {
	switch env.Provider {
	case "openai":
		return tts.NewOpenAISynthesizer(env.OpenAIAPIKey, env.OpenAIModel, env.OpenAIVoice)
	case "elevenlabs":
		return tts.NewElevenLabsSynthesizer(env.ElevenLabsAPIKey, env.ElevenLabsVoiceID, env.ElevenLabsModelID)
	default:
		return tts.NewGoogleSynthesizer(env.GoogleTTSURL, env.Language, log)
	}
}

func run(ctx context.Context) error {
	var env config.CloudTTSEnv
	if err := config.Parse(&env); err != nil {
		return err
	}
	if err := env.Validate(); err != nil {
		return err
	}

	log := logger.NewConsole(env.Debug, logger.SessionID())
	defer log.Sync()

	if err := os.MkdirAll(env.OutputDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", env.OutputDir)
	}

	synth := newSynthesizer(env, log)
	log.Debugf("using %s synthesizer, language %s", synth.Name(), env.Language)

	p := console.NewStdio()
	session := app.NewCloudSession(p, synth, playback.NewPlayer(runtime.GOOS), env.OutputDir, log)
	if err := session.Run(ctx); err != nil {
		if ctx.Err() != nil {
			p.Println("\nProgram stopped.")
			return nil
		}
		return err
	}
	return nil
}
