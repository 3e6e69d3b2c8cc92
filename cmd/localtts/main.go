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
	"github.com/mrsingh-rishi/speechkit/voice"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "localtts",
	Short: "Speak typed text with a voice installed on this machine",
	Long: `localtts lists the voices of the local synthesizer (espeak-ng, say or
Windows SAPI), lets you pick a voice, rate and volume, and either speaks the
text or saves it under saved_audio/ first.`,
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

func run(ctx context.Context) error {
	var env config.LocalTTSEnv
	if err := config.Parse(&env); err != nil {
		return err
	}

	log := logger.NewConsole(env.Debug, logger.SessionID())
	defer log.Sync()

	if err := os.MkdirAll(env.OutputDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", env.OutputDir)
	}

	engine, err := voice.NewEngine(runtime.GOOS, env.Engine)
	if err != nil {
		return err
	}
	log.Debugf("using %s engine", engine.Name())

	p := console.NewStdio()
	session := app.NewLocalSession(p, engine, env.OutputDir, log)
	if _, err := session.LoadVoices(ctx); err != nil {
		return errors.Wrapf(err, "%s engine", engine.Name())
	}

	if err := session.Run(ctx); err != nil {
		if ctx.Err() != nil {
			p.Println("\nProgram stopped.")
			return nil
		}
		return err
	}
	return nil
}
