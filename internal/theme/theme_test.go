package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_NoManifest_UsesConventionalNames(t *testing.T) {
	m, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Default(), m)
}

func TestLoad_PartialManifest_FillsRemainingDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.yaml"), []byte("page: manpage.html\nfeed: atom.xml\n"), 0o644))

	m, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "manpage.html", m.Page)
	require.Equal(t, "atom.xml", m.Feed)
	require.Equal(t, "post.html", m.Post)
	require.Equal(t, "item.xml", m.FeedItem)
}

func TestLoad_MalformedManifest_ReturnsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.yaml"), []byte("page: [unclosed"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
