package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Manifest names the template files a theme provides for each layout role.
type Manifest struct {
	Page     string `yaml:"page"`
	Post     string `yaml:"post"`
	List     string `yaml:"list"`
	Item     string `yaml:"item"`
	Feed     string `yaml:"feed"`
	FeedItem string `yaml:"feed_item"`
}

// Default returns the conventional template file names assumed when a theme
// ships no manifest of its own.
func Default() Manifest {
	return Manifest{
		Page:     "page.html",
		Post:     "post.html",
		List:     "list.html",
		Item:     "item.html",
		Feed:     "feed.xml",
		FeedItem: "item.xml",
	}
}

// Load reads theme.yaml from dir. A missing manifest falls back to Default;
// fields left out of a manifest keep their conventional names.
func Load(dir string) (Manifest, error) {
	m := Default()
	raw, err := os.ReadFile(filepath.Join(dir, "theme.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, fmt.Errorf("failed to read theme manifest in %s: %w", dir, err)
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return m, fmt.Errorf("failed to parse theme manifest in %s: %w", dir, err)
	}
	return m, nil
}
