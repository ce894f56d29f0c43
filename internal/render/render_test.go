package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_PresentName_SubstitutesValue(t *testing.T) {
	out := Render("<h1>{{ title }}</h1>", map[string]any{"title": "Hello"})
	require.Equal(t, "<h1>Hello</h1>", out)
	require.NotContains(t, out, "{{")
}

func TestRender_AbsentName_LeavesTokenIntact(t *testing.T) {
	tpl := "before {{ missing }} after"
	out := Render(tpl, map[string]any{"other": "x"})
	require.Equal(t, tpl, out)
}

func TestRender_NonStringValue_UsesStringForm(t *testing.T) {
	out := Render("(c) {{ current_year }}", map[string]any{"current_year": 2026})
	require.Equal(t, "(c) 2026", out)
}

func TestRender_InternalWhitespace_Trimmed(t *testing.T) {
	params := map[string]any{"name": "v"}
	require.Equal(t, "v", Render("{{name}}", params))
	require.Equal(t, "v", Render("{{   name   }}", params))
}

func TestRender_NoRecursiveExpansion(t *testing.T) {
	params := map[string]any{"a": "{{ b }}", "b": "X"}
	require.Equal(t, "{{ b }}", Render("{{ a }}", params))
}

func TestRender_MultiStageComposition(t *testing.T) {
	page := "<html>{{ content }}</html>"
	post := "<article>{{ title }}</article>"

	composed := Render(page, map[string]any{"content": post})
	require.Equal(t, "<html><article>{{ title }}</article></html>", composed)

	final := Render(composed, map[string]any{"title": "Hi"})
	require.Equal(t, "<html><article>Hi</article></html>", final)
}

func TestTruncate_LimitsWordsAndStripsTags(t *testing.T) {
	out := Truncate("<p>one two <b>three</b> four five</p>", 3)
	require.Equal(t, "one two three", out)
	require.NotContains(t, out, "<")
	require.NotContains(t, out, ">")
}

func TestTruncate_ShorterThanLimit_NoEllipsis(t *testing.T) {
	out := Truncate("<p>one two</p>", 25)
	require.Equal(t, "one two", out)
	require.False(t, strings.HasSuffix(out, "..."))
}

func TestTruncate_CollapsesWhitespace(t *testing.T) {
	require.Equal(t, "a b c", Truncate("a\n\n  b\t c", 10))
}

func TestTruncate_MultilineTag_Stripped(t *testing.T) {
	require.Equal(t, "x y", Truncate("<a\nhref=\"z\">x</a> y", 10))
}
