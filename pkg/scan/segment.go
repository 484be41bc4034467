package scan

import "strings"

// Segment is a maximal run of text with uniform quoting. Quoted segments
// include their delimiters.
type Segment struct {
	Kind   Kind
	Text   string
	Offset int // byte offset of Text in the scanned input

	// Terminated is false for a quoted segment that runs to the end of the
	// input without a closing delimiter. Always true for unquoted segments.
	Terminated bool
}

// Quoted reports whether the segment is a quoted region.
func (s Segment) Quoted() bool {
	return s.Kind != Unquoted
}

// Inner returns the text between the delimiters, with escapes left as-is.
func (s Segment) Inner() string {
	if !s.Quoted() {
		return s.Text
	}
	inner := s.Text[1:]
	if s.Terminated {
		inner = inner[:len(inner)-1]
	}
	return inner
}

// Unescape returns the inner text with doubled delimiters collapsed.
func (s Segment) Unescape() string {
	if !s.Quoted() {
		return s.Text
	}
	d := string(s.Kind.Delimiter())
	return strings.ReplaceAll(s.Inner(), d+d, d)
}

// Segments splits text into alternating unquoted and quoted segments.
// Concatenating the Text of all segments yields the input unchanged.
func Segments(text string) []Segment {
	var segs []Segment
	var state State
	start := 0

	for pos := 0; pos < len(text); {
		n, next := Advance(text, pos, state)
		switch {
		case !state.Quoted() && next.Quoted():
			// Opening delimiter: flush the unquoted run before it.
			if pos > start {
				segs = append(segs, Segment{Kind: Unquoted, Text: text[start:pos], Offset: start, Terminated: true})
			}
			start = pos
		case state.Quoted() && !next.Quoted():
			end := pos + n
			segs = append(segs, Segment{Kind: state.Kind(), Text: text[start:end], Offset: start, Terminated: true})
			start = end
		}
		state = next
		pos += n
	}

	if start < len(text) {
		segs = append(segs, Segment{
			Kind:       state.Kind(),
			Text:       text[start:],
			Offset:     start,
			Terminated: !state.Quoted(),
		})
	}
	return segs
}
