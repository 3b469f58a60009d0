package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"subconv/internal/config"
	"subconv/internal/subtitle"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and convert new SRT files automatically",
	Long: `Watch a directory for SubRip files and convert each new or modified
.srt file to an ASS document alongside it.

Only .srt files are picked up: restyling an .ass file would write the
same path back and retrigger the watcher.

Examples:
  subconv watch ./downloads
  subconv watch ./downloads --styles my_styles.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().
		Duration("debounce", 500*time.Millisecond, "Delay before converting after the last write")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	stylesPath, _ := cmd.Flags().GetString("styles")
	set, err := config.Load(stylesPath)
	if err != nil {
		return err
	}
	debounce, _ := cmd.Flags().GetDuration("debounce")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	logger.Infow("Watching for SRT files", "dir", dir)

	// successive writes to the same file reset its timer so a file is
	// converted once, after the last write settles
	timers := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".srt") {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}

			path := event.Name
			if timer, ok := timers[path]; ok {
				timer.Stop()
			}
			timers[path] = time.AfterFunc(debounce, func() {
				convertWatched(path, set)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Errorw("Watcher error", "error", err)
		}
	}
}

func convertWatched(path string, set *subtitle.StyleSet) {
	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Errorw("Failed to read watched file", "path", path, "error", err)
		return
	}

	result, err := subtitle.Convert(filepath.Base(path), raw, set)
	if err != nil {
		logger.Errorw("Failed to convert watched file", "path", path, "error", err)
		return
	}

	outputPath := subtitle.OutputFilename(path)
	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		logger.Errorw("Failed to write converted file", "path", outputPath, "error", err)
		return
	}

	logger.Infow("Converted subtitle file", "input", path, "output", outputPath)
}
