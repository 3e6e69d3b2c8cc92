// Package playback hands audio files to the host's default player.
package playback

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination=../mocks/mock_player.go -package=mocks github.com/mrsingh-rishi/speechkit/playback Player

// Player plays one audio file.
type Player interface {
	Play(ctx context.Context, path string) error
}

// CommandPlayer runs Command with the file path appended.
type CommandPlayer struct {
	Command []string
}

// NewPlayer returns the player for goos.
func NewPlayer(goos string) *CommandPlayer {
	switch goos {
	case "windows":
		return &CommandPlayer{Command: []string{"cmd", "/c", "start", ""}}
	case "darwin":
		return &CommandPlayer{Command: []string{"afplay"}}
	default:
		return &CommandPlayer{Command: []string{"xdg-open"}}
	}
}

func (p *CommandPlayer) Play(ctx context.Context, path string) error {
	if len(p.Command) == 0 {
		return errors.New("no player configured")
	}
	bin, err := exec.LookPath(p.Command[0])
	if err != nil {
		return errors.Wrapf(err, "player %q", p.Command[0])
	}

	args := append(append([]string{}, p.Command[1:]...), path)
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return errors.Wrapf(err, "playing %s: %s", path, msg)
		}
		return errors.Wrapf(err, "playing %s", path)
	}
	return nil
}
