package stt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize trims text, upper-cases its first letter and terminates it with a
// period unless it already ends in '.', '!' or '?'. Blank text becomes
// NoTextDetected. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || text == NoTextDetected {
		return NoTextDetected
	}

	if r, size := utf8.DecodeRuneInString(text); r != utf8.RuneError || size > 1 {
		text = string(unicode.ToUpper(r)) + text[size:]
	}

	switch text[len(text)-1] {
	case '.', '!', '?':
		return text
	}
	return text + "."
}
