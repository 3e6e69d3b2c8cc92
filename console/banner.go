package console

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Banner draws lines centered inside a double-line box. The box is as wide as
// the widest line plus padding, measured in terminal cells.
func Banner(lines ...string) string {
	width := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > width {
			width = w
		}
	}
	width += 12

	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", width) + "╗\n")
	for _, l := range lines {
		pad := width - runewidth.StringWidth(l)
		left := pad / 2
		b.WriteString("║" + strings.Repeat(" ", left) + l + strings.Repeat(" ", pad-left) + "║\n")
	}
	b.WriteString("╚" + strings.Repeat("═", width) + "╝")
	return b.String()
}

// Rule returns a horizontal rule of n characters.
func Rule(ch string, n int) string {
	return strings.Repeat(ch, n)
}
