package voice

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Espeak drives espeak-ng (or classic espeak).
type Espeak struct {
	bin string
	run runner
}

func NewEspeak(bin string) *Espeak {
	return &Espeak{bin: bin, run: runCommand}
}

func (e *Espeak) Name() string { return "espeak" }

// Voices parses the table printed by --voices:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  id              --/M      Indonesian         poz/id
func (e *Espeak) Voices(ctx context.Context) ([]Voice, error) {
	out, err := e.run(ctx, nil, e.bin, "--voices")
	if err != nil {
		return nil, errors.Wrap(err, "listing espeak voices")
	}
	return parseEspeakVoices(string(out)), nil
}

func parseEspeakVoices(out string) []Voice {
	var voices []Voice
	for i, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if i == 0 || len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{
			ID:       fields[1],
			Name:     strings.ReplaceAll(fields[3], "_", " "),
			Gender:   espeakGender(fields[2]),
			Language: fields[1],
		})
	}
	return voices
}

func espeakGender(ageGender string) string {
	_, g, _ := strings.Cut(ageGender, "/")
	switch g {
	case "M":
		return "Male"
	case "F":
		return "Female"
	default:
		return ""
	}
}

func (e *Espeak) args(p Params) []string {
	args := []string{
		"-s", strconv.Itoa(p.Rate),
		"-a", strconv.Itoa(int(math.Round(p.Volume * 100))),
	}
	if p.Voice.ID != "" {
		args = append(args, "-v", p.Voice.ID)
	}
	return args
}

func (e *Espeak) Say(ctx context.Context, text string, p Params) error {
	args := append(e.args(p), "--", text)
	if _, err := e.run(ctx, nil, e.bin, args...); err != nil {
		return errors.Wrap(err, "speaking")
	}
	return nil
}

// SaveToFile writes WAV data to path.
func (e *Espeak) SaveToFile(ctx context.Context, text string, p Params, path string) error {
	args := append(e.args(p), "-w", path, "--", text)
	if _, err := e.run(ctx, nil, e.bin, args...); err != nil {
		return errors.Wrap(err, "saving speech")
	}
	return nil
}
