package invoice

import "strings"

// wrapColumns is the fixed column width used for free-text fields at 10pt.
const wrapColumns = 90

// Wrap breaks text into lines of at most width runes, on word boundaries when
// possible. Words longer than width are hard-split. Blank input yields no lines.
func Wrap(text string, width int) []string {
	if width <= 0 {
		width = wrapColumns
	}
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			continue
		}
		var cur []rune
		for _, w := range words {
			wr := []rune(w)
			for len(wr) > width {
				if len(cur) > 0 {
					lines = append(lines, string(cur))
					cur = cur[:0]
				}
				lines = append(lines, string(wr[:width]))
				wr = wr[width:]
			}
			switch {
			case len(cur) == 0:
				cur = append(cur, wr...)
			case len(cur)+1+len(wr) <= width:
				cur = append(cur, ' ')
				cur = append(cur, wr...)
			default:
				lines = append(lines, string(cur))
				cur = append(cur[:0:0], wr...)
			}
		}
		if len(cur) > 0 {
			lines = append(lines, string(cur))
		}
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
