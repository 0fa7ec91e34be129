package latex

import "strings"

// Segment is a run of plain text or one delimited expression.
type Segment struct {
	// Text is the plain text, or the TeX source without delimiters.
	Text    string
	Math    bool
	Display bool
	// Raw is the expression including its delimiters.
	Raw string
}

// Split breaks text into plain and math segments. Delimiters are tried in
// the given order at each position; the closing delimiter only matches
// outside braces and never directly after a backslash. An opening
// delimiter without a match leaves the rest of the text plain.
func Split(text string, delims []Delimiter) []Segment {
	var segments []Segment
	for text != "" {
		start, d := findOpen(text, delims)
		if start < 0 {
			segments = append(segments, Segment{Text: text})
			break
		}
		end := findClose(text, start+len(d.Left), d.Right)
		if end < 0 {
			segments = append(segments, Segment{Text: text})
			break
		}
		if start > 0 {
			segments = append(segments, Segment{Text: text[:start]})
		}
		stop := end + len(d.Right)
		segments = append(segments, Segment{
			Text:    text[start+len(d.Left) : end],
			Math:    true,
			Display: d.Display,
			Raw:     text[start:stop],
		})
		text = text[stop:]
	}
	return segments
}

func findOpen(text string, delims []Delimiter) (int, Delimiter) {
	for i := 0; i < len(text); i++ {
		for _, d := range delims {
			if strings.HasPrefix(text[i:], d.Left) {
				return i, d
			}
		}
	}
	return -1, Delimiter{}
}

func findClose(text string, from int, right string) int {
	depth := 0
	for i := from; i < len(text); i++ {
		if depth <= 0 && strings.HasPrefix(text[i:], right) {
			return i
		}
		switch text[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return -1
}
