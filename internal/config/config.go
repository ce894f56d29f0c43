package config

import "time"

// Config holds the site-wide settings consumed by templates and the build
// pipeline. Every field carries a default (set during CLI initialization), so
// downstream code can assume all of them are present and well-formed.
type Config struct {
	SiteName      string `mapstructure:"site_name"`
	SiteURL       string `mapstructure:"site_url"`
	Description   string `mapstructure:"description"`
	Subtitle      string `mapstructure:"subtitle"`
	Author        string `mapstructure:"author"`
	Copyright     string `mapstructure:"copyright"`
	Twitter       string `mapstructure:"twitter"`
	Mastodon      string `mapstructure:"mastodon"`
	ImageWidth    int    `mapstructure:"image_width"`
	ImageHeight   int    `mapstructure:"image_height"`
	BasePath      string `mapstructure:"base_path"`
	Theme         string `mapstructure:"theme"`
	SchemaVersion string `mapstructure:"schema_version"`

	ContentDir   string `mapstructure:"content_dir"`
	StaticDir    string `mapstructure:"static_dir"`
	ThemesDir    string `mapstructure:"themes_dir"`
	OutputDir    string `mapstructure:"output_dir"`
	SummaryWords int    `mapstructure:"summary_words"`

	// Params carries free-form extra template parameters from config.yaml.
	Params map[string]string `mapstructure:"params"`
}

// GlobalParams returns the site-wide parameter set visible to every template:
// the reserved keys plus the computed current year, with free-form Params
// merged on top.
func (c *Config) GlobalParams() map[string]any {
	p := map[string]any{
		"site_name":      c.SiteName,
		"site_url":       c.SiteURL,
		"description":    c.Description,
		"subtitle":       c.Subtitle,
		"author":         c.Author,
		"copyright":      c.Copyright,
		"twitter":        c.Twitter,
		"mastodon":       c.Mastodon,
		"image_width":    c.ImageWidth,
		"image_height":   c.ImageHeight,
		"base_path":      c.BasePath,
		"theme":          c.Theme,
		"schema_version": c.SchemaVersion,
		"current_year":   time.Now().Year(),
	}
	for k, v := range c.Params {
		p[k] = v
	}
	return p
}
