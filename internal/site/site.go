// Package site drives the generation pass: it fans content files through the
// loader and the renderer, writes the resulting pages, and aggregates the
// listing and feed documents.
package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iefdev/manpageblog/internal/content"
	"github.com/iefdev/manpageblog/internal/render"
)

// Generator renders content records through string templates and writes the
// output tree. Convert is handed to the content loader for Markdown files; a
// nil Convert degrades to verbatim bodies.
type Generator struct {
	Convert content.ConvertFunc
}

var titleCaser = cases.Title(language.English)

// Pages loads every file matched by pattern, renders it through layout with
// the merged global and per-record parameters, and writes it to the path
// produced by rendering dst (directories are created on demand). Pages are
// written in match order; the returned records are sorted by date descending,
// stable on match order.
func (g *Generator) Pages(pattern, dst, layout string, params map[string]any) ([]*content.Record, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad source pattern %q: %w", pattern, err)
	}

	var records []*content.Record
	for _, src := range matches {
		rec, err := content.Load(src, g.Convert)
		if err != nil {
			return nil, err
		}
		if _, ok := rec.Headers["title"]; !ok {
			rec.Headers["title"] = titleFromSlug(rec.Slug)
		}

		pageParams := merge(params, rec.Params())

		// Opt-in self-render: the body itself is treated as a template once,
		// so content files can reference site parameters. The rewritten body
		// is what the listing and feed see downstream.
		if pageParams["render"] == "yes" {
			body := render.Render(rec.Body, pageParams)
			rec.Body = body
			pageParams["content"] = body
		}

		dstPath := render.Render(dst, pageParams)
		output := render.Render(layout, pageParams)
		fmt.Printf("Rendering %s => %s ...\n", src, dstPath)
		if err := writeFile(dstPath, output); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

// List renders one item fragment per record, in the given order, then wraps
// the concatenation in listLayout and writes it to the rendered dst path. The
// same mechanism produces both the HTML listing and the RSS feed; only the
// supplied templates differ. summaryWords bounds the per-item summary.
func (g *Generator) List(records []*content.Record, summaryWords int, dst, listLayout, itemLayout string, params map[string]any) error {
	var items strings.Builder
	for _, rec := range records {
		itemParams := merge(params, rec.Params())
		itemParams["summary"] = render.Truncate(rec.Body, summaryWords)
		items.WriteString(render.Render(itemLayout, itemParams))
	}

	listParams := merge(params, nil)
	listParams["content"] = items.String()
	dstPath := render.Render(dst, listParams)
	output := render.Render(listLayout, listParams)
	fmt.Printf("Rendering list => %s ...\n", dstPath)
	return writeFile(dstPath, output)
}

// merge builds a fresh parameter set: overrides win over globals, and neither
// input map is mutated.
func merge(globals, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(globals)+len(overrides))
	for k, v := range globals {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

func titleFromSlug(slug string) string {
	spaced := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return titleCaser.String(spaced)
}

func writeFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
