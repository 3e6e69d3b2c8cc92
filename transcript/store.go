package transcript

import (
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/pkg/errors"
)

// Store lays out <base>/save with audio/ and text/ subdirectories.
type Store struct {
	baseDir string
	now     func() time.Time
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

// WithClock replaces the clock used for timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) SaveDir() string    { return filepath.Join(s.baseDir, "save") }
func (s *Store) AudioDir() string   { return filepath.Join(s.SaveDir(), "audio") }
func (s *Store) TextDir() string    { return filepath.Join(s.SaveDir(), "text") }
func (s *Store) ConfigPath() string { return filepath.Join(s.SaveDir(), "config.json") }
func (s *Store) LogPath() string    { return filepath.Join(s.SaveDir(), "speech_to_text.log") }

// EnsureLayout creates every directory, reporting all failures together.
func (s *Store) EnsureLayout() error {
	var result *multierror.Error
	for _, dir := range []string{s.SaveDir(), s.AudioDir(), s.TextDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "creating %s", dir))
		}
	}
	return result.ErrorOrNil()
}

// NewRecord stamps text with the store's clock.
func (s *Store) NewRecord(language, text string) Record {
	return NewRecord(s.now(), language, text)
}

// Save writes the capture (when saveAudio is set and there is one) and the
// transcript file, returning the transcript path. rec.AudioFile is filled in
// when audio is written.
func (s *Store) Save(rec *Record, capture *audio.Capture, saveAudio bool) (string, error) {
	if saveAudio && !capture.Empty() {
		audioPath := filepath.Join(s.AudioDir(), "recording_"+rec.Timestamp+".wav")
		if err := capture.WriteWAV(audioPath); err != nil {
			return "", errors.Wrap(err, "saving audio")
		}
		rec.AudioFile = &audioPath
	}

	body, err := rec.Render()
	if err != nil {
		return "", err
	}

	textPath := filepath.Join(s.TextDir(), "output_"+rec.Timestamp+".txt")
	if err := os.WriteFile(textPath, []byte(body), 0o644); err != nil {
		return "", errors.Wrap(err, "saving transcript")
	}
	return textPath, nil
}
