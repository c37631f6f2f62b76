// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import "strings"

// Wrap word-wraps s at the given column width, counting runes so that
// Korean text wraps by character count rather than byte count. Explicit
// newlines are preserved; words longer than the width are hard-broken.
// Empty input yields no lines.
func Wrap(s string, width int) []string {
	if s == "" {
		return nil
	}
	if width <= 0 {
		return []string{s}
	}

	var out []string
	for _, paragraph := range strings.Split(s, "\n") {
		out = append(out, wrapParagraph(paragraph, width)...)
	}
	return out
}

func wrapParagraph(p string, width int) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curLen = 0
	}

	for _, word := range words {
		wordLen := len([]rune(word))

		// Hard-break words that can never fit on one line.
		for wordLen > width {
			if curLen > 0 {
				flush()
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
			wordLen = len(runes) - width
		}

		sep := 0
		if curLen > 0 {
			sep = 1
		}
		if curLen+sep+wordLen > width {
			flush()
			sep = 0
		}
		if sep == 1 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += wordLen
	}
	if curLen > 0 {
		flush()
	}
	return lines
}
