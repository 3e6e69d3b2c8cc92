package voice

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// sayVoiceRe matches one line of `say -v '?'`:
//
//	Damayanti           id_ID    # Halo, nama saya Damayanti.
var sayVoiceRe = regexp.MustCompile(`^(.+?)\s+([a-z]{2,3}[_-][A-Za-z0-9]+)\s+#`)

// Say drives the macOS say command.
type Say struct {
	run runner
}

func NewSay() *Say {
	return &Say{run: runCommand}
}

func (s *Say) Name() string { return "say" }

func (s *Say) Voices(ctx context.Context) ([]Voice, error) {
	out, err := s.run(ctx, nil, "say", "-v", "?")
	if err != nil {
		return nil, errors.Wrap(err, "listing say voices")
	}
	return parseSayVoices(string(out)), nil
}

func parseSayVoices(out string) []Voice {
	var voices []Voice
	for _, line := range strings.Split(out, "\n") {
		m := sayVoiceRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		voices = append(voices, Voice{ID: name, Name: name, Language: m[2]})
	}
	return voices
}

// say has no volume flag; the embedded [[volm]] command sets it.
func (s *Say) args(text string, p Params) []string {
	args := []string{"-r", strconv.Itoa(p.Rate)}
	if p.Voice.ID != "" {
		args = append(args, "-v", p.Voice.ID)
	}
	return append(args, fmt.Sprintf("[[volm %.2f]] %s", p.Volume, text))
}

func (s *Say) Say(ctx context.Context, text string, p Params) error {
	if _, err := s.run(ctx, nil, "say", s.args(text, p)...); err != nil {
		return errors.Wrap(err, "speaking")
	}
	return nil
}

// SaveToFile writes 16-bit WAV data to path.
func (s *Say) SaveToFile(ctx context.Context, text string, p Params, path string) error {
	args := append([]string{"-o", path, "--file-format=WAVE", "--data-format=LEI16@22050"}, s.args(text, p)...)
	if _, err := s.run(ctx, nil, "say", args...); err != nil {
		return errors.Wrap(err, "saving speech")
	}
	return nil
}
