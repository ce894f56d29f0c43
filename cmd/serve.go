package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var serverPort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and rebuilds on changes",
	Long: `The serve command performs an initial build, then starts a local web
server over the output directory. It watches the content, themes, and static
directories and rebuilds the site when they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("Performing initial build...")
		if err := runBuildProcess(appConfig); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}
		log.Println("Initial build successful.")

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		go func() {
			// Debounce: wait a short period after an event before rebuilding.
			var buildTimer *time.Timer
			debounceDuration := 500 * time.Millisecond

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						log.Printf("Change detected: %s (%s)", event.Name, event.Op.String())

						// New subdirectories are not watched automatically.
						if event.Has(fsnotify.Create) && isDir(event.Name) {
							if err := watcher.Add(event.Name); err != nil {
								log.Printf("Error adding new directory %s to watcher: %v", event.Name, err)
							}
						}

						if buildTimer != nil {
							buildTimer.Stop()
						}
						buildTimer = time.AfterFunc(debounceDuration, func() {
							log.Println("Rebuilding site due to changes...")
							if err := runBuildProcess(appConfig); err != nil {
								log.Printf("Error during rebuild: %v", err)
							} else {
								log.Println("Site rebuilt successfully.")
							}
						})
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Printf("Watcher error: %v", err)
				}
			}
		}()

		pathsToWatch := []string{
			appConfig.ContentDir,
			appConfig.ThemesDir,
			appConfig.StaticDir,
		}

		for _, rootPath := range pathsToWatch {
			if _, statErr := os.Stat(rootPath); os.IsNotExist(statErr) {
				log.Printf("Directory '%s' not found, not watching.", rootPath)
				continue
			}

			log.Printf("Setting up watch for %s and its subdirectories...", rootPath)
			err = filepath.WalkDir(rootPath, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					log.Printf("Error walking %s: %v", path, err)
					return nil
				}
				if d.IsDir() {
					if watchErr := watcher.Add(path); watchErr != nil {
						log.Printf("Failed to watch %s: %v", path, watchErr)
					}
				}
				return nil
			})
			if err != nil {
				log.Printf("Error during initial directory walk for watching %s: %v", rootPath, err)
			}
		}

		serverAddr := fmt.Sprintf(":%d", serverPort)
		log.Printf("Serving site from '%s' on http://localhost%s", appConfig.OutputDir, serverAddr)
		log.Println("Press Ctrl+C to stop the server.")

		fileServer := http.FileServer(http.Dir(appConfig.OutputDir))
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			// Prevent directory listing for directories without an index.html.
			if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
				_, err := os.Stat(filepath.Join(appConfig.OutputDir, r.URL.Path, "index.html"))
				if os.IsNotExist(err) {
					http.NotFound(w, r)
					return
				}
			}
			// No caching during development.
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			fileServer.ServeHTTP(w, r)
		})

		if err := http.ListenAndServe(serverAddr, nil); err != nil {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	},
}

func isDir(path string) bool {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8000, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
