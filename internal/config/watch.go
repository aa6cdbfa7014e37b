package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/framekey/internal/log"
)

// watchDebounce collapses the bursts of writes editors produce when
// saving a file.
const watchDebounce = 150 * time.Millisecond

// Watcher reloads the configuration file when it changes on disk and
// delivers the new snapshot on Updates. Snapshots that fail to load
// are logged and dropped; the previous configuration stays in effect.
type Watcher struct {
	path    string
	logger  log.Logger
	fsw     *fsnotify.Watcher
	updates chan Config
	done    chan struct{}
	wg      sync.WaitGroup
}

// Watch starts watching the configuration file at path. The file does
// not need to exist yet; creating it later triggers the first reload.
func Watch(path string, logger log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory rather than the file. Editors replace
	// files by rename, which silently drops a watch on the file
	// itself.
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		logger:  logger,
		fsw:     fsw,
		updates: make(chan Config, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Updates delivers reloaded configuration snapshots. The channel is
// never closed while the watcher runs; slow consumers only ever miss
// intermediate snapshots.
func (w *Watcher) Updates() <-chan Config {
	return w.updates
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	for {
		select {
		case <-w.done:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				timer.Reset(watchDebounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warnf("config reload failed: %v", err)
				continue
			}
			select {
			case w.updates <- cfg:
			default:
				// Replace a stale pending snapshot with the
				// fresh one.
				select {
				case <-w.updates:
				default:
				}
				select {
				case w.updates <- cfg:
				default:
				}
			}
			w.logger.Infof("config reloaded from %s", w.path)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warnf("config watcher: %v", err)
		}
	}
}
