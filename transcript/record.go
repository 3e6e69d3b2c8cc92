// Package transcript persists recognized text with its metadata under the
// save/ directory.
package transcript

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// TimestampLayout names every saved recording and transcript.
const TimestampLayout = "20060102_150405"

const (
	metadataHeader = "=== Metadata ==="
	resultHeader   = "=== Hasil Konversi ==="
)

// Record is the metadata and text of one transcript file.
type Record struct {
	Timestamp      string  `json:"timestamp"`
	Language       string  `json:"language"`
	AudioFile      *string `json:"audio_file"`
	WordCount      int     `json:"word_count"`
	CharacterCount int     `json:"character_count"`
	Text           string  `json:"-"`
}

// NewRecord builds the record for text captured at now.
func NewRecord(now time.Time, language, text string) Record {
	return Record{
		Timestamp:      now.Format(TimestampLayout),
		Language:       language,
		WordCount:      WordCount(text),
		CharacterCount: CharacterCount(text),
		Text:           text,
	}
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharacterCount counts characters, not bytes.
func CharacterCount(text string) int {
	return utf8.RuneCountInString(text)
}

// Render produces the transcript file body.
func (r Record) Render() (string, error) {
	var meta bytes.Buffer
	enc := json.NewEncoder(&meta)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r); err != nil {
		return "", errors.Wrap(err, "encoding metadata")
	}

	var b strings.Builder
	b.WriteString(metadataHeader + "\n")
	b.WriteString(strings.TrimRight(meta.String(), "\n"))
	b.WriteString("\n\n" + resultHeader + "\n")
	b.WriteString(r.Text)
	return b.String(), nil
}
