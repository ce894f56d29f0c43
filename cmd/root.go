package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iefdev/manpageblog/internal/config"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "manpageblog",
	Short: "manpageblog - a man page styled static blog generator",
	Long: `manpageblog takes your Markdown and HTML content, extracts the embedded
<!-- key: value --> headers, renders everything through the active theme's
templates, and writes a static site: pages, posts, a post listing, and an
RSS feed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	// Reserved site parameters. Unset string values fall back to a documented
	// default or the literal token "unknown".
	v.SetDefault("site_name", "unknown")
	v.SetDefault("site_url", "http://localhost:8000")
	v.SetDefault("description", "unknown")
	v.SetDefault("subtitle", "Lorem Ipsum")
	v.SetDefault("author", "Admin")
	v.SetDefault("copyright", "unknown")
	v.SetDefault("twitter", "unknown")
	v.SetDefault("mastodon", "unknown")
	v.SetDefault("image_width", 1280)
	v.SetDefault("image_height", 640)
	v.SetDefault("base_path", "")
	v.SetDefault("theme", "default")
	v.SetDefault("schema_version", "unknown")

	// Pipeline directories and knobs.
	v.SetDefault("content_dir", "content")
	v.SetDefault("static_dir", "static")
	v.SetDefault("themes_dir", "themes")
	v.SetDefault("output_dir", "_site")
	v.SetDefault("summary_words", 25)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("MANPAGEBLOG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found in current directory: %w", cfgFile, err)
			}
			fmt.Println("No config file found in current directory. Using defaults and environment variables.")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		fmt.Println("Using config file:", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}
