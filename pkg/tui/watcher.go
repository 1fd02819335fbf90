package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// StartWatcher watches the config file for changes and sends
// ConfigChangedMsg to the program. The parent directory is watched
// rather than the file itself so editors that replace the file on save
// (write to temp, rename over) are still caught.
func StartWatcher(configPath string, program *tea.Program) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(configPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	target := filepath.Base(configPath)
	done := make(chan struct{})

	go func() {
		var debounceTimer *time.Timer

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				// Debounce: wait 200ms after last change
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(200*time.Millisecond, func() {
					program.Send(ConfigChangedMsg{})
				})

			case <-watcher.Errors:
				// Ignore watcher errors silently

			case <-done:
				return
			}
		}
	}()

	cleanup := func() {
		close(done)
		watcher.Close()
	}

	return cleanup, nil
}
