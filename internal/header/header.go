package header

import (
	"iter"
	"regexp"
)

// Header is one metadata marker extracted from the top of a content file,
// e.g. `<!-- title: Hello -->`.
type Header struct {
	Key   string
	Value string
	// End is the absolute offset just past the marker line (trailing newline
	// included), so the caller can slice the remaining body text.
	End int
}

// A marker line: optional leading whitespace (blank lines between markers are
// tolerated), `<!-- key: value -->`, trailing spaces and at most one newline.
// Key and value are trimmed by the pattern itself and must be non-empty.
var markerRe = regexp.MustCompile(`^\s*<!--\s*([^:\n]+?)\s*:\s*([^\n]+?)\s*-->[^\S\n]*\n?`)

// Scan yields the leading metadata markers of text, in source order, stopping
// at the first content that is not a marker line. The sequence is finite and
// single-use. If no marker matches, nothing is yielded and the whole text is
// body content.
func Scan(text string) iter.Seq[Header] {
	return func(yield func(Header) bool) {
		pos := 0
		for pos < len(text) {
			m := markerRe.FindStringSubmatchIndex(text[pos:])
			if m == nil {
				return
			}
			h := Header{
				Key:   text[pos+m[2] : pos+m[3]],
				Value: text[pos+m[4] : pos+m[5]],
				End:   pos + m[1],
			}
			pos = h.End
			if !yield(h) {
				return
			}
		}
	}
}
