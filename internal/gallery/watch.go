package gallery

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDelay is how long a catalog file must stay quiet before it is
// reloaded. Editors often write a file in several steps.
const DefaultReloadDelay = 250 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk and publishes
// each catalog that parses and validates. Broken edits are logged and
// skipped, so the last good catalog stays in use.
type Watcher struct {
	path    string
	delay   time.Duration
	fsw     *fsnotify.Watcher
	updates chan *Catalog

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	closed bool
}

// NewWatcher starts watching path. A zero delay uses DefaultReloadDelay.
func NewWatcher(path string, delay time.Duration) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultReloadDelay
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch catalog: %w", err)
	}
	// Watch the directory: saving through a rename replaces the inode and
	// would end a watch on the file itself.
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch catalog %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		delay:   delay,
		fsw:     fsw,
		updates: make(chan *Catalog, 1),
	}
	go w.run()
	return w, nil
}

// Updates delivers reloaded catalogs. Only the newest pending catalog is
// kept.
func (w *Watcher) Updates() <-chan *Catalog { return w.updates }

// Close stops watching. Pending reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	w.seq++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) run() {
	for {
		select {
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
			w.trigger()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Catalog watcher: %v", err)
		}
	}
}

// trigger schedules a reload after the quiet period, replacing any reload
// already scheduled.
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.seq++
	seq := w.seq
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		w.mu.Lock()
		current := seq == w.seq && !w.closed
		if current {
			w.timer = nil
		}
		w.mu.Unlock()
		if current {
			w.reload()
		}
	})
}

func (w *Watcher) reload() {
	cat, err := LoadCatalog(w.path)
	if err != nil {
		log.Printf("Catalog reload failed: %v", err)
		return
	}
	// Replace a catalog nobody has picked up yet.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cat:
	default:
	}
}
