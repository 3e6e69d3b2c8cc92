package voice

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// runner executes a synthesizer command and returns its stdout. env entries
// are added to the process environment.
type runner func(ctx context.Context, env []string, name string, args ...string) ([]byte, error)

func runCommand(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return out, errors.Wrapf(err, "%s: %s", name, msg)
		}
		return out, errors.Wrap(err, name)
	}
	return out, nil
}

// NewEngine picks the synthesizer for goos. name overrides the choice with
// one of "espeak", "say" or "sapi".
func NewEngine(goos, name string) (Engine, error) {
	if name == "" {
		switch goos {
		case "darwin":
			name = "say"
		case "windows":
			name = "sapi"
		default:
			name = "espeak"
		}
	}

	switch name {
	case "espeak":
		bin, err := lookEspeak()
		if err != nil {
			return nil, err
		}
		return NewEspeak(bin), nil
	case "say":
		return NewSay(), nil
	case "sapi":
		return NewSAPI(), nil
	default:
		return nil, errors.Errorf("unknown LOCAL_TTS_ENGINE %q (supported: espeak, say, sapi)", name)
	}
}

func lookEspeak() (string, error) {
	for _, bin := range []string{"espeak-ng", "espeak"} {
		if path, err := exec.LookPath(bin); err == nil {
			return path, nil
		}
	}
	return "", errors.New("speech not available: install espeak-ng or espeak")
}
