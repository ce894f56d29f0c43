package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iefdev/manpageblog/internal/config"
	"github.com/iefdev/manpageblog/internal/markdown"
	"github.com/iefdev/manpageblog/internal/render"
	"github.com/iefdev/manpageblog/internal/site"
	"github.com/iefdev/manpageblog/internal/theme"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, theme templates, and static assets",
	Long: `The build command processes content files from the content directory,
extracts their headers, renders them through the active theme's templates,
copies static assets, and writes the site (pages, posts, the post listing,
and the RSS feed) to the configured output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(appConfig)
	},
}

func runBuildProcess(cfg config.Config) error {
	fmt.Println("Starting manpageblog build...")
	fmt.Printf("Using OutputDir: '%s', Theme: '%s', SiteURL: '%s'\n", cfg.OutputDir, cfg.Theme, cfg.SiteURL)

	// Start from a clean output tree.
	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		fmt.Printf("Copying static assets from '%s'...\n", cfg.StaticDir)
		if err := copyDirContents(cfg.StaticDir, cfg.OutputDir); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
	} else {
		fmt.Printf("Static directory '%s' not found, skipping asset copy.\n", cfg.StaticDir)
	}

	themeDir := filepath.Join(cfg.ThemesDir, cfg.Theme)
	manifest, err := theme.Load(themeDir)
	if err != nil {
		return err
	}

	pageLayout, err := readLayout(themeDir, manifest.Page)
	if err != nil {
		return err
	}
	postLayout, err := readLayout(themeDir, manifest.Post)
	if err != nil {
		return err
	}
	listLayout, err := readLayout(themeDir, manifest.List)
	if err != nil {
		return err
	}
	itemLayout, err := readLayout(themeDir, manifest.Item)
	if err != nil {
		return err
	}
	feedLayout, err := readLayout(themeDir, manifest.Feed)
	if err != nil {
		return err
	}
	feedItemLayout, err := readLayout(themeDir, manifest.FeedItem)
	if err != nil {
		return err
	}

	// Pre-compose layouts: the page layout wraps the post and list layouts.
	// Unresolved placeholders pass through the renderer untouched, so the
	// inner layout's tokens stay intact for the per-page pass.
	postLayout = render.Render(pageLayout, map[string]any{"content": postLayout})
	listLayout = render.Render(pageLayout, map[string]any{"content": listLayout})

	params := cfg.GlobalParams()
	gen := &site.Generator{Convert: markdown.Convert}

	// Standalone pages.
	_, err = gen.Pages(
		filepath.Join(cfg.ContentDir, "*.html"),
		filepath.Join(cfg.OutputDir, "{{ slug }}", "index.html"),
		pageLayout, params)
	if err != nil {
		return fmt.Errorf("failed to generate pages: %w", err)
	}

	// Blog posts, newest first.
	posts, err := gen.Pages(
		filepath.Join(cfg.ContentDir, "blog", "*.{md,mkd,mkdn,mdown,markdown,html}"),
		filepath.Join(cfg.OutputDir, "blog", "{{ slug }}", "index.html"),
		postLayout, params)
	if err != nil {
		return fmt.Errorf("failed to generate posts: %w", err)
	}
	fmt.Printf("Generated %d post(s).\n", len(posts))

	if err := gen.List(posts, cfg.SummaryWords,
		filepath.Join(cfg.OutputDir, "blog", "index.html"),
		listLayout, itemLayout, params); err != nil {
		return fmt.Errorf("failed to generate post listing: %w", err)
	}

	if err := gen.List(posts, cfg.SummaryWords,
		filepath.Join(cfg.OutputDir, "rss.xml"),
		feedLayout, feedItemLayout, params); err != nil {
		return fmt.Errorf("failed to generate RSS feed: %w", err)
	}

	fmt.Println("manpageblog build completed successfully!")
	return nil
}

func readLayout(themeDir, name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(themeDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to read layout '%s' from theme '%s': %w", name, themeDir, err)
	}
	return string(raw), nil
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
		} else {
			if err := copyFile(path, dstPath); err != nil {
				return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
			}
		}
		return nil
	})
}

// copyFile copies a single file from srcFile to dstFile, preserving its mode.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dstFile, err)
	}

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}

	if srcInfo, err := os.Stat(srcFile); err == nil {
		if err := os.Chmod(dstFile, srcInfo.Mode()); err != nil {
			fmt.Printf("Warning: could not set permissions on %s: %v\n", dstFile, err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
