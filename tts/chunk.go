package tts

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceRe = regexp.MustCompile(`[^\.!\?]*[\.!\?]+`)

// Chunks splits text into sentences and breaks any sentence longer than limit
// runes at its last space, or mid-word when it has none.
func Chunks(text string, limit int) []string {
	var chunks []string
	for _, sentence := range sentences(text) {
		chunks = append(chunks, split(sentence, limit)...)
	}
	return chunks
}

func sentences(text string) []string {
	var out []string
	for {
		loc := sentenceRe.FindStringIndex(text)
		if loc == nil {
			break
		}
		if s := strings.TrimSpace(text[:loc[1]]); s != "" {
			out = append(out, s)
		}
		text = text[loc[1]:]
	}
	if s := strings.TrimSpace(text); s != "" {
		out = append(out, s)
	}
	return out
}

func split(s string, limit int) []string {
	var out []string
	for utf8.RuneCountInString(s) > limit {
		runes := []rune(s)
		head := string(runes[:limit])
		cut := strings.LastIndex(head, " ")
		if cut <= 0 {
			out = append(out, head)
			s = strings.TrimSpace(string(runes[limit:]))
			continue
		}
		out = append(out, strings.TrimSpace(s[:cut]))
		s = strings.TrimSpace(s[cut:])
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}
