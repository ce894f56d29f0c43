package content

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/iefdev/manpageblog/internal/header"
)

// ConvertFunc turns Markdown source into HTML. Conversion is best-effort: a
// nil ConvertFunc or a conversion error leaves the body verbatim.
type ConvertFunc func(source string) (string, error)

// Record is one loaded content file: the filename-derived date and slug, the
// merged metadata headers, and the (possibly Markdown-converted) body.
type Record struct {
	Date          string // yyyy-mm-dd, defaults to the epoch sentinel
	Slug          string
	Body          string
	SecondaryDate string // RFC 2822 timestamp at midnight UTC, for feeds
	Headers       map[string]string
}

const (
	epochDate       = "1970-01-01"
	dateLayout      = "2006-01-02"
	secondaryLayout = "Mon, 02 Jan 2006 15:04:05 -0700"
)

var (
	dateSlugRe   = regexp.MustCompile(`^(?:(\d\d\d\d-\d\d-\d\d)-)?(.+)$`)
	markdownExts = map[string]bool{
		".md": true, ".mkd": true, ".mkdn": true, ".mdown": true, ".markdown": true,
	}
)

// Load reads one content file into a Record. The base filename (up to its
// first dot) supplies date and slug; an optional leading YYYY-MM-DD- prefix
// becomes the date and is stripped from the slug. Metadata headers are merged
// on top (a date or slug header overrides the filename-derived value), the
// remaining text becomes the body, and Markdown-family files are converted
// with conv. An unreadable file is the only fatal condition.
func Load(path string, conv ConvertFunc) (*Record, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	text := string(raw)

	base, _, _ := strings.Cut(filepath.Base(path), ".")
	rec := &Record{Date: epochDate, Slug: base, Headers: map[string]string{}}
	if m := dateSlugRe.FindStringSubmatch(base); m != nil && m[1] != "" {
		rec.Date, rec.Slug = m[1], m[2]
	}

	end := 0
	for h := range header.Scan(text) {
		rec.merge(h.Key, h.Value)
		end = h.End
	}
	body := text[end:]

	// Files without comment markers may carry YAML front matter instead.
	if end == 0 && strings.HasPrefix(text, "---") {
		var fm map[string]any
		rest, err := frontmatter.Parse(strings.NewReader(text), &fm)
		if err != nil {
			fmt.Printf("Warning: could not parse front matter in %s: %v\n", path, err)
		} else {
			for k, v := range fm {
				rec.merge(k, fmt.Sprint(v))
			}
			body = string(rest)
		}
	}

	if markdownExts[strings.ToLower(filepath.Ext(path))] {
		switch {
		case conv == nil:
			fmt.Printf("Warning: cannot render Markdown in %s: no converter configured\n", path)
		default:
			html, err := conv(body)
			if err != nil {
				fmt.Printf("Warning: cannot render Markdown in %s: %v\n", path, err)
			} else {
				body = html
			}
		}
	}

	rec.Body = body
	rec.SecondaryDate = secondaryDate(rec.Date)
	return rec, nil
}

func (r *Record) merge(key, value string) {
	switch key {
	case "date":
		r.Date = value
	case "slug":
		r.Slug = value
	default:
		r.Headers[key] = value
	}
}

// Params returns the record's fields as one flat parameter map, the shape
// consumed by the template renderer. Reserved keys win over headers.
func (r *Record) Params() map[string]any {
	p := make(map[string]any, len(r.Headers)+4)
	for k, v := range r.Headers {
		p[k] = v
	}
	p["date"] = r.Date
	p["slug"] = r.Slug
	p["content"] = r.Body
	p["rfc_2822_date"] = r.SecondaryDate
	return p
}

func secondaryDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		t = time.Unix(0, 0).UTC()
	}
	return t.Format(secondaryLayout)
}
