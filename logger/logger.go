// Package logger builds the zap loggers used by the three tools.
package logger

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout matches "<date> <time>,<millis>" as written to the log file.
const TimeLayout = "2006-01-02 15:04:05,000"

// SessionID identifies one program run in log output.
func SessionID() string {
	return uuid.NewString()
}

func fileEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	})
}

func consoleCore(w io.Writer, level zapcore.Level, session string) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayout)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return core.With([]zapcore.Field{zap.String("session", session)})
}

// NewWriter returns a logger producing "<timestamp> - <LEVEL> - <message>"
// lines on w. Entries below INFO are dropped.
func NewWriter(w io.Writer) *zap.SugaredLogger {
	core := zapcore.NewCore(fileEncoder(), zapcore.AddSync(w), zapcore.InfoLevel)
	return zap.New(core).Sugar()
}

// NewFile opens path for appending and returns a logger writing to it. With
// debug set, entries are also mirrored to stderr at DEBUG level. The returned
// func closes the file.
func NewFile(path string, debug bool, session string) (*zap.SugaredLogger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening log file %s", path)
	}

	core := zapcore.NewCore(fileEncoder(), zapcore.AddSync(f), zapcore.InfoLevel)
	if debug {
		core = zapcore.NewTee(core, consoleCore(os.Stderr, zapcore.DebugLevel, session))
	}

	log := zap.New(core).Sugar()
	closeFn := func() error {
		_ = log.Sync()
		return f.Close()
	}
	return log, closeFn, nil
}

// NewConsole returns a stderr logger at WARN, or DEBUG when debug is set.
func NewConsole(debug bool, session string) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}
	return zap.New(consoleCore(os.Stderr, level, session)).Sugar()
}
