// Package voice drives the speech synthesizer installed on the host.
package voice

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mrsingh-rishi/speechkit/console"
	"github.com/pkg/errors"
)

//go:generate mockgen -destination=../mocks/mock_engine.go -package=mocks github.com/mrsingh-rishi/speechkit/voice Engine

const (
	DefaultVolume = 1.0
	MinVolume     = 0.1
	MaxVolume     = 1.0
)

// Rates are the speaking rates, in words per minute, offered by the rate menu.
var Rates = []int{80, 100, 150, 200, 250}

// Voice is one installed synthesizer voice.
type Voice struct {
	ID       string
	Name     string
	Gender   string
	Language string
}

// DisplayLine renders the voice as entry n of the voice menu.
func (v Voice) DisplayLine(n int) string {
	line := fmt.Sprintf("%d. %s", n, v.Name)
	if v.Gender != "" {
		line += " (" + v.Gender + ")"
	}
	if v.Language != "" {
		line += " - " + v.Language
	}
	return line
}

// FileToken is the last whitespace-delimited word of the voice name, used in
// output filenames.
func (v Voice) FileToken() string {
	fields := strings.Fields(v.Name)
	if len(fields) == 0 {
		return "voice"
	}
	return fields[len(fields)-1]
}

// Params travel with every engine call.
type Params struct {
	Voice  Voice
	Rate   int
	Volume float64
}

// Engine is a local synthesizer. Calls must not overlap.
type Engine interface {
	Name() string
	Voices(ctx context.Context) ([]Voice, error)
	Say(ctx context.Context, text string, p Params) error
	SaveToFile(ctx context.Context, text string, p Params, path string) error
}

// ParseRate maps a rate menu choice "1".."5" to words per minute.
func ParseRate(input string) (int, error) {
	i, err := console.ParseIndex(input, len(Rates))
	if err != nil {
		return 0, err
	}
	return Rates[i], nil
}

// ParseVolume accepts a number in [MinVolume, MaxVolume]; empty input means
// DefaultVolume.
func ParseVolume(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultVolume, nil
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(v) {
		return 0, errors.Wrap(console.ErrInvalidChoice, "please enter a valid number")
	}
	if v < MinVolume || v > MaxVolume {
		return 0, errors.Wrapf(console.ErrInvalidChoice, "volume must be between %.1f and %.1f", MinVolume, MaxVolume)
	}
	return v, nil
}
