package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var lineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} - ERROR - recording failed: no microphone$`)

func TestNewWriterFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf)

	log.Debug("dropped")
	log.Errorf("recording failed: %s", "no microphone")
	_ = log.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	if !lineRe.MatchString(lines[0]) {
		t.Errorf("unexpected log line: %q", lines[0])
	}
}

func TestNewFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speech_to_text.log")
	if err := os.WriteFile(path, []byte("previous line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	log, closeFn, err := NewFile(path, false, SessionID())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Errorf("recording failed: %s", "no microphone")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 || lines[0] != "previous line" {
		t.Fatalf("log file was not appended to: %q", data)
	}
	if !lineRe.MatchString(lines[1]) {
		t.Errorf("unexpected log line: %q", lines[1])
	}
}

func TestSessionIDUnique(t *testing.T) {
	if SessionID() == SessionID() {
		t.Error("expected distinct session ids")
	}
}
