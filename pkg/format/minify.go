package format

import "github.com/leapstack-labs/sqlmerge/pkg/scan"

// Minify collapses whitespace outside quoted regions. Each run of blanks
// becomes a single space, or nothing after "(" and before ")" or ",".
// Quoted regions are copied verbatim and the result has no leading or
// trailing whitespace.
func Minify(sql string) string {
	p := newPrinter(len(sql))

	for _, seg := range scan.Segments(sql) {
		if seg.Quoted() {
			p.write(seg.Text)
			continue
		}
		for i := 0; i < len(seg.Text); i++ {
			c := seg.Text[i]
			if isBlank(c) {
				p.space()
				continue
			}
			p.writeByte(c)
		}
	}
	return p.String()
}
