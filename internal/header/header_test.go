package header

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(text string) []Header {
	var out []Header
	for h := range Scan(text) {
		out = append(out, h)
	}
	return out
}

func TestScan_MultipleMarkers_YieldsInSourceOrder(t *testing.T) {
	text := "<!-- title: Hello -->\n<!-- tags: go, blog -->\nBody starts here.\n"

	headers := collect(text)
	require.Len(t, headers, 2)
	require.Equal(t, "title", headers[0].Key)
	require.Equal(t, "Hello", headers[0].Value)
	require.Equal(t, "tags", headers[1].Key)
	require.Equal(t, "go, blog", headers[1].Value)
	require.Equal(t, "Body starts here.\n", text[headers[1].End:])
}

func TestScan_NoMarkers_YieldsNothing(t *testing.T) {
	require.Empty(t, collect("Just body content.\nMore body.\n"))
	require.Empty(t, collect(""))
}

func TestScan_StopsAtFirstNonMarkerLine(t *testing.T) {
	text := "<!-- a: 1 -->\nplain text\n<!-- b: 2 -->\n"

	headers := collect(text)
	require.Len(t, headers, 1)
	require.Equal(t, "a", headers[0].Key)
	require.Equal(t, "plain text\n<!-- b: 2 -->\n", text[headers[0].End:])
}

func TestScan_WhitespaceAroundMarkers_Tolerated(t *testing.T) {
	text := "\n\n  <!--   key  :   some value   -->  \nrest"

	headers := collect(text)
	require.Len(t, headers, 1)
	require.Equal(t, "key", headers[0].Key)
	require.Equal(t, "some value", headers[0].Value)
	require.Equal(t, "rest", text[headers[0].End:])
}

func TestScan_BlankLineBetweenMarkers_Tolerated(t *testing.T) {
	text := "<!-- a: 1 -->\n\n<!-- b: 2 -->\nbody"

	headers := collect(text)
	require.Len(t, headers, 2)
	require.Equal(t, "body", text[headers[1].End:])
}

func TestScan_MarkerAtEOFWithoutNewline(t *testing.T) {
	headers := collect("<!-- title: Last -->")
	require.Len(t, headers, 1)
	require.Equal(t, "Last", headers[0].Value)
	require.Equal(t, len("<!-- title: Last -->"), headers[0].End)
}

func TestScan_EmptyKeyOrValue_NotAMarker(t *testing.T) {
	require.Empty(t, collect("<!-- : value -->\nbody"))
	require.Empty(t, collect("<!-- key: -->\nbody"))
}
