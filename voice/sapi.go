package voice

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const sapiPrelude = `Add-Type -AssemblyName System.Speech; $s = New-Object System.Speech.Synthesis.SpeechSynthesizer; `

const sapiListVoices = sapiPrelude +
	`$s.GetInstalledVoices() | ForEach-Object { $v = $_.VoiceInfo; '{0}|{1}|{2}' -f $v.Name, $v.Gender, $v.Culture }`

// Text and parameters travel in environment variables so nothing needs
// quoting inside the script.
const sapiSpeak = sapiPrelude +
	`if ($env:SPEECHKIT_VOICE) { $s.SelectVoice($env:SPEECHKIT_VOICE) }; ` +
	`$s.Rate = [int]$env:SPEECHKIT_RATE; $s.Volume = [int]$env:SPEECHKIT_VOLUME; ` +
	`if ($env:SPEECHKIT_OUT) { $s.SetOutputToWaveFile($env:SPEECHKIT_OUT) }; ` +
	`$s.Speak($env:SPEECHKIT_TEXT); $s.Dispose()`

// SAPI drives System.Speech through PowerShell on Windows.
type SAPI struct {
	run runner
}

func NewSAPI() *SAPI {
	return &SAPI{run: runCommand}
}

func (s *SAPI) Name() string { return "sapi" }

func (s *SAPI) powershell(ctx context.Context, env []string, script string) ([]byte, error) {
	return s.run(ctx, env, "powershell", "-NoProfile", "-NonInteractive", "-Command", script)
}

func (s *SAPI) Voices(ctx context.Context) ([]Voice, error) {
	out, err := s.powershell(ctx, nil, sapiListVoices)
	if err != nil {
		return nil, errors.Wrap(err, "listing sapi voices")
	}

	var voices []Voice
	for _, line := range strings.Split(string(out), "\n") {
		parts := strings.Split(strings.TrimSpace(line), "|")
		if len(parts) != 3 || parts[0] == "" {
			continue
		}
		voices = append(voices, Voice{ID: parts[0], Name: parts[0], Gender: parts[1], Language: parts[2]})
	}
	return voices, nil
}

// sapiRate maps words per minute onto the -10..10 SAPI scale, 150 wpm being 0.
func sapiRate(wpm int) int {
	r := (wpm - 150) / 10
	return max(-10, min(10, r))
}

func (s *SAPI) env(text string, p Params, path string) []string {
	return []string{
		"SPEECHKIT_TEXT=" + text,
		"SPEECHKIT_VOICE=" + p.Voice.ID,
		"SPEECHKIT_RATE=" + strconv.Itoa(sapiRate(p.Rate)),
		"SPEECHKIT_VOLUME=" + strconv.Itoa(int(math.Round(p.Volume*100))),
		"SPEECHKIT_OUT=" + path,
	}
}

func (s *SAPI) Say(ctx context.Context, text string, p Params) error {
	if _, err := s.powershell(ctx, s.env(text, p, ""), sapiSpeak); err != nil {
		return errors.Wrap(err, "speaking")
	}
	return nil
}

func (s *SAPI) SaveToFile(ctx context.Context, text string, p Params, path string) error {
	if _, err := s.powershell(ctx, s.env(text, p, path), sapiSpeak); err != nil {
		return errors.Wrap(err, "saving speech")
	}
	return nil
}
