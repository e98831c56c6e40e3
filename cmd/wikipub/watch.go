package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/wikipub/wikipub"
	"github.com/wikipub/wikipub/pkg/core"
)

var watchGlob string

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Republish notes when they change",
	Long: `Watch a directory (default: current) and republish any matching note on
save. Runs non-interactively: the category is carried over from the
previously published version. Stop with Ctrl-C.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		cfg, _, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		session, err := wikipub.Open(ctx, cfg, wikipub.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to connect", err)
		}
		defer session.Close()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("Failed to create watcher", err)
		}
		defer watcher.Close()

		if err := addRecursive(watcher, dir); err != nil {
			fatal("Failed to watch directory", err)
		}

		fmt.Printf("Watching %s for changes (glob %s)...\n", dir, watchGlob)
		runWatch(ctx, session, watcher, dir)
	},
}

// runWatch consumes watcher events until ctx is cancelled. Writes to the
// same file within the debounce window collapse into one republish, since
// editors frequently emit several events per save.
func runWatch(ctx context.Context, session *wikipub.Session, watcher *fsnotify.Watcher, dir string) {
	const debounce = 500 * time.Millisecond
	lastSeen := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Stopped.")
			return

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("watch error", "error", err)

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !matchesGlob(dir, event.Name) {
				continue
			}
			now := time.Now()
			if now.Sub(lastSeen[event.Name]) < debounce {
				continue
			}
			lastSeen[event.Name] = now

			note, err := core.Load(event.Name)
			if err != nil {
				slog.Error("failed to load note", "path", event.Name, "error", err)
				continue
			}

			fmt.Printf("Publishing %q...\n", note.Title)
			id, err := session.Service.Republish(ctx, note)
			if err != nil {
				slog.Error("failed to republish", "path", event.Name, "error", err)
				continue
			}
			fmt.Printf("Published %q as %s\n", note.Title, id)
		}
	}
}

func matchesGlob(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(watchGlob, filepath.ToSlash(rel))
	return err == nil && ok
}

// addRecursive registers dir and every subdirectory with the watcher.
// fsnotify does not watch recursively on its own.
func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchGlob, "glob", "**/*.md", "Glob pattern for notes to republish")
}
