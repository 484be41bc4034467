package format

import "bytes"

// printer accumulates minified output. Whitespace is deferred: a run of
// blanks becomes a pending separator that is written, or dropped, once the
// next visible byte is known.
type printer struct {
	output  *bytes.Buffer
	pending bool
	last    byte // last byte written, never a blank
}

func newPrinter(size int) *printer {
	p := &printer{output: &bytes.Buffer{}}
	p.output.Grow(size)
	return p
}

// String returns the output so far. A pending separator is never emitted at
// the end.
func (p *printer) String() string {
	return p.output.String()
}

func (p *printer) space() {
	p.pending = true
}

func (p *printer) write(s string) {
	if s == "" {
		return
	}
	p.flush(s[0])
	p.output.WriteString(s)
	p.last = s[len(s)-1]
}

func (p *printer) writeByte(c byte) {
	p.flush(c)
	p.output.WriteByte(c)
	p.last = c
}

// flush writes the pending separator unless it is leading or sits next to
// punctuation that needs no space.
func (p *printer) flush(next byte) {
	if p.pending && p.output.Len() > 0 && !tight(p.last, next) {
		p.output.WriteByte(' ')
	}
	p.pending = false
}

// tight reports whether no space is needed between prev and next.
func tight(prev, next byte) bool {
	return prev == '(' || next == ')' || next == ','
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
