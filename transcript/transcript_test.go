package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mrsingh-rishi/speechkit/audio"
)

var fixed = time.Date(2026, 10, 19, 14, 5, 9, 0, time.Local)

func TestNewRecord(t *testing.T) {
	rec := NewRecord(fixed, "id-ID", "Halo dunia, apa kabar?")
	if rec.Timestamp != "20261019_140509" {
		t.Errorf("Timestamp = %q", rec.Timestamp)
	}
	if rec.WordCount != 4 {
		t.Errorf("WordCount = %d, want 4", rec.WordCount)
	}
	if rec.CharacterCount != 22 {
		t.Errorf("CharacterCount = %d, want 22", rec.CharacterCount)
	}
	if rec.AudioFile != nil {
		t.Error("AudioFile should start nil")
	}
}

func TestCharacterCountIsRunes(t *testing.T) {
	if got := CharacterCount("Café."); got != 5 {
		t.Errorf("CharacterCount = %d, want 5", got)
	}
}

func TestRender(t *testing.T) {
	path := "save/audio/recording_20261019_140509.wav"
	rec := NewRecord(fixed, "id-ID", "Hello world.")
	rec.AudioFile = &path

	got, err := rec.Render()
	if err != nil {
		t.Fatal(err)
	}
	want := `=== Metadata ===
{
    "timestamp": "20261019_140509",
    "language": "id-ID",
    "audio_file": "save/audio/recording_20261019_140509.wav",
    "word_count": 2,
    "character_count": 12
}

=== Hasil Konversi ===
Hello world.`
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderNullAudio(t *testing.T) {
	got, err := NewRecord(fixed, "en-US", "A <b> & c.").Render()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `"audio_file": null,`) {
		t.Errorf("expected null audio_file in:\n%s", got)
	}
	if !strings.HasSuffix(got, "\n=== Hasil Konversi ===\nA <b> & c.") {
		t.Errorf("body not verbatim:\n%s", got)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(t.TempDir()).WithClock(func() time.Time { return fixed })
	if err := s.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	return s
}

func TestEnsureLayout(t *testing.T) {
	s := newTestStore(t)
	for _, dir := range []string{s.SaveDir(), s.AudioDir(), s.TextDir()} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("%s not created: %v", dir, err)
		}
	}
	if filepath.Dir(s.ConfigPath()) != s.SaveDir() || filepath.Dir(s.LogPath()) != s.SaveDir() {
		t.Error("config and log must live in save/")
	}
}

func TestEnsureLayoutReportsFailure(t *testing.T) {
	base := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(base, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewStore(base).EnsureLayout(); err == nil {
		t.Fatal("expected error when the base directory is a file")
	}
}

func TestSaveWithAudio(t *testing.T) {
	s := newTestStore(t)
	capture := &audio.Capture{Samples: []int16{1, -1, 2}, SampleRate: audio.SampleRate}

	rec := s.NewRecord("id-ID", "Halo.")
	path, err := s.Save(&rec, capture, true)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(s.TextDir(), "output_20261019_140509.txt"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	wav := filepath.Join(s.AudioDir(), "recording_20261019_140509.wav")
	if rec.AudioFile == nil || *rec.AudioFile != wav {
		t.Fatalf("AudioFile = %v, want %s", rec.AudioFile, wav)
	}
	back, err := audio.ReadWAV(wav)
	if err != nil {
		t.Fatalf("ReadWAV: %v", err)
	}
	if len(back.Samples) != 3 {
		t.Errorf("wav has %d samples", len(back.Samples))
	}

	body, _ := os.ReadFile(path)
	if !strings.Contains(string(body), `"audio_file": "`) {
		t.Errorf("transcript does not link the audio:\n%s", body)
	}
}

func TestSaveAudioDisabled(t *testing.T) {
	s := newTestStore(t)
	capture := &audio.Capture{Samples: []int16{1, 2, 3}, SampleRate: audio.SampleRate}

	rec := s.NewRecord("id-ID", "Halo.")
	path, err := s.Save(&rec, capture, false)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, _ := os.ReadDir(s.AudioDir())
	if len(entries) != 0 {
		t.Errorf("audio written despite save_audio=false: %v", entries)
	}
	body, _ := os.ReadFile(path)
	if !strings.Contains(string(body), `"audio_file": null`) {
		t.Errorf("expected null audio_file:\n%s", body)
	}
}

func TestSaveWithoutCapture(t *testing.T) {
	s := newTestStore(t)
	rec := s.NewRecord("id-ID", "Unable to recognize speech")
	if _, err := s.Save(&rec, nil, true); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if rec.AudioFile != nil {
		t.Error("no capture means no audio file")
	}
}

func TestSaveFailure(t *testing.T) {
	s := NewStore(t.TempDir())
	rec := s.NewRecord("id-ID", "Halo.")
	if _, err := s.Save(&rec, nil, false); err == nil {
		t.Fatal("expected error when save/text does not exist")
	}
}
