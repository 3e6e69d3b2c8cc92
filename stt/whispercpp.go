package stt

import (
	"bytes"
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/pkg/errors"
)

// markers are whisper.cpp annotations such as [BLANK_AUDIO] or (music).
var markers = regexp.MustCompile(`\[[^\]]*\]|\([^)]*\)`)

// WhisperCPPRecognizer runs the whisper.cpp command line offline. No -l flag
// is passed, so whisper-cli uses its default language.
type WhisperCPPRecognizer struct {
	Bin   string
	Model string
}

func NewWhisperCPPRecognizer(bin, model string) *WhisperCPPRecognizer {
	return &WhisperCPPRecognizer{Bin: bin, Model: model}
}

func (w *WhisperCPPRecognizer) Name() string { return "whisper.cpp" }

func (w *WhisperCPPRecognizer) Transcribe(ctx context.Context, capture *audio.Capture, _ string) (string, error) {
	if capture.Empty() {
		return "", ErrUnrecognized
	}
	bin, err := exec.LookPath(w.Bin)
	if err != nil {
		return "", errors.Wrapf(err, "whisper.cpp binary %q", w.Bin)
	}

	path, cleanup, err := tempWAV(capture)
	if err != nil {
		return "", err
	}
	defer cleanup()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-m", w.Model, "-f", path, "-nt", "-np")
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", errors.Wrapf(err, "whisper.cpp: %s", msg)
		}
		return "", errors.Wrap(err, "whisper.cpp")
	}

	text := cleanWhisperOutput(string(out))
	if text == "" {
		return "", ErrUnrecognized
	}
	return text, nil
}

func cleanWhisperOutput(out string) string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(markers.ReplaceAllString(line, ""))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " ")
}
