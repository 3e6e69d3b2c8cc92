package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/mrsingh-rishi/speechkit/app"
	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/mrsingh-rishi/speechkit/config"
	"github.com/mrsingh-rishi/speechkit/console"
	"github.com/mrsingh-rishi/speechkit/logger"
	"github.com/mrsingh-rishi/speechkit/stt"
	"github.com/mrsingh-rishi/speechkit/transcript"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Record speech from the microphone and save it as text",
	Long: `transcribe listens for one utterance at a time, converts it to text with a
cloud recognizer (falling back to whisper.cpp offline) and saves the transcript
with its metadata under save/.`,
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

func newRecognizer(env config.TranscribeEnv, log *zap.SugaredLogger) stt.Recognizer {
	switch env.Engine {
	case "openai":
		return stt.NewOpenAIRecognizer(env.OpenAIAPIKey, env.OpenAIModel)
	default:
		return stt.NewDeepgramRecognizer(env.DeepgramAPIKey, env.DeepgramURL, env.DeepgramModel, log)
	}
}

func run(ctx context.Context) error {
	var env config.TranscribeEnv
	if err := config.Parse(&env); err != nil {
		return err
	}
	if err := env.Validate(); err != nil {
		return err
	}

	store := transcript.NewStore(env.BaseDir)
	if err := store.EnsureLayout(); err != nil {
		return err
	}

	log, closeLog, err := logger.NewFile(store.LogPath(), env.Debug, logger.SessionID())
	if err != nil {
		return err
	}
	defer closeLog()

	settings, err := config.LoadOrCreateSettings(store.ConfigPath())
	if err != nil {
		log.Errorf("loading settings failed: %v", err)
		return err
	}

	recorder := env.Recorder
	if len(recorder) == 0 {
		recorder = audio.DefaultRecorder(runtime.GOOS)
	}

	chain := stt.NewChain(
		newRecognizer(env, log),
		stt.NewWhisperCPPRecognizer(env.WhisperBin, env.WhisperModel),
		settings.Language,
		log,
	)

	p := console.NewStdio()
	session := app.NewCaptureSession(p, audio.NewCommandMicrophone(recorder), audio.NewListener(), chain, store, settings, log)

	err = session.Run(ctx)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		p.Println("\nProgram stopped.")
	default:
		log.Errorf("unexpected error: %v", err)
		p.Fail("There is an error: %v", err)
	}
	return nil
}
