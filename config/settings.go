package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Settings is the persistent record kept in save/config.json.
type Settings struct {
	Language        string `json:"language"`
	SaveAudio       bool   `json:"save_audio"`
	AutoPunctuation bool   `json:"auto_punctuation"`
}

// DefaultSettings returns the record written on first run.
func DefaultSettings() Settings {
	return Settings{
		Language:        "id-ID",
		SaveAudio:       true,
		AutoPunctuation: true,
	}
}

// LoadOrCreateSettings reads the settings file at path. When the file does not
// exist it is created with DefaultSettings. Keys missing from an existing file
// keep their default value.
func LoadOrCreateSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := writeSettings(path, settings); err != nil {
			return Settings{}, err
		}
		return settings, nil
	}
	if err != nil {
		return Settings{}, errors.Wrapf(err, "reading settings %s", path)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, errors.Wrapf(err, "decoding settings %s", path)
	}
	if settings.Language == "" {
		settings.Language = DefaultSettings().Language
	}
	return settings, nil
}

func writeSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating settings directory")
	}
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encoding settings")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing settings %s", path)
	}
	return nil
}
