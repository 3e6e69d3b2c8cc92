package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateSettingsFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save", "config.json")

	settings, err := LoadOrCreateSettings(path)
	if err != nil {
		t.Fatalf("LoadOrCreateSettings: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("expected defaults, got %+v", settings)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config.json was not created: %v", err)
	}
	var onDisk map[string]any
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("config.json is not valid JSON: %v", err)
	}
	want := map[string]any{"language": "id-ID", "save_audio": true, "auto_punctuation": true}
	if len(onDisk) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), onDisk)
	}
	for k, v := range want {
		if onDisk[k] != v {
			t.Errorf("key %s: expected %v, got %v", k, v, onDisk[k])
		}
	}
}

func TestLoadOrCreateSettingsExisting(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		expected Settings
	}{
		{
			name:     "all keys",
			contents: `{"language": "en-US", "save_audio": false, "auto_punctuation": false}`,
			expected: Settings{Language: "en-US", SaveAudio: false, AutoPunctuation: false},
		},
		{
			name:     "missing keys keep defaults",
			contents: `{"save_audio": false}`,
			expected: Settings{Language: "id-ID", SaveAudio: false, AutoPunctuation: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(test.contents), 0o644); err != nil {
				t.Fatal(err)
			}

			settings, err := LoadOrCreateSettings(path)
			if err != nil {
				t.Fatalf("LoadOrCreateSettings: %v", err)
			}
			if settings != test.expected {
				t.Errorf("expected %+v, got %+v", test.expected, settings)
			}

			data, _ := os.ReadFile(path)
			if string(data) != test.contents {
				t.Errorf("existing file was rewritten: %s", data)
			}
		})
	}
}

func TestLoadOrCreateSettingsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreateSettings(path); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
