// Package wrap breaks and shortens text to fit a pixel width. Widths come
// from a caller-supplied measure so the same logic serves any font backend.
package wrap

import "strings"

// Measure returns the rendered width of s.
type Measure func(s string) int

const ellipsis = "..."

// Lines splits text into lines no wider than maxWidth. Explicit line breaks
// are kept, and lines break at spaces where possible. A single word wider
// than maxWidth is split by rune.
func Lines(text string, maxWidth int, measure Measure) []string {
	if text == "" {
		return nil
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n")

	var out []string
	for _, paragraph := range strings.Split(normalized, "\n") {
		if paragraph == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrapParagraph(paragraph, maxWidth, measure)...)
	}
	return out
}

func wrapParagraph(paragraph string, maxWidth int, measure Measure) []string {
	var lines []string
	current := ""

	for _, word := range strings.Fields(paragraph) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
			current = ""
		}

		if measure(word) <= maxWidth {
			current = word
			continue
		}

		pieces := splitWord(word, maxWidth, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func splitWord(word string, maxWidth int, measure Measure) []string {
	var pieces []string
	runes := []rune(word)

	for len(runes) > 0 {
		n := len(runes)
		for n > 1 && measure(string(runes[:n])) > maxWidth {
			n--
		}
		pieces = append(pieces, string(runes[:n]))
		runes = runes[n:]
	}
	return pieces
}

// Truncate shortens text with a trailing ellipsis until it fits maxWidth.
// At least five runes are kept before giving up and returning the ellipsis
// alone.
func Truncate(text string, maxWidth int, measure Measure) string {
	if measure(text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for len(runes) > 5 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if measure(candidate) <= maxWidth {
			return candidate
		}
	}
	return ellipsis
}

// Height returns the height of lines given a line height and the spacing
// added between consecutive lines.
func Height(lines []string, lineHeight, spacing int) int {
	if len(lines) == 0 {
		return 0
	}
	return len(lines)*lineHeight + (len(lines)-1)*spacing
}
