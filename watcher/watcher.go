package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the source icon file for changes
type Watcher struct {
	source   string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	events   chan Event
	fired    chan fsnotify.Event
	done     chan struct{}
	regen    Regenerator
}

// Regenerator is run whenever the source icon is created or modified
type Regenerator interface {
	Run() error
}

// Event represents a file system event
type Event struct {
	Type     EventType
	FilePath string
}

// EventType represents the type of file event
type EventType int

const (
	EventCreated EventType = iota
	EventModified
	EventDeleted
)

// NewWatcher creates a new file watcher for the given source icon
func NewWatcher(source string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		source:   source,
		debounce: debounce,
		watcher:  fsWatcher,
		events:   make(chan Event, 100),
		fired:    make(chan fsnotify.Event, 100),
		done:     make(chan struct{}),
	}, nil
}

// SetRegenerator sets the generator to run on source changes
func (w *Watcher) SetRegenerator(regen Regenerator) {
	w.regen = regen
}

// Start begins monitoring the source icon's directory
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.source)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.Printf("Watching folder: %s", dir)

	// Start event processing goroutine
	go w.processEvents()

	return nil
}

// processEvents handles fsnotify events and converts them to our event type.
// The debounce map and the events channel are owned by this goroutine alone:
// timer callbacks hand their event back via the fired channel instead of
// touching either directly.
func (w *Watcher) processEvents() {
	defer close(w.events)

	// Debounce timers to avoid processing rapid successive events
	debounce := make(map[string]*time.Timer)
	defer func() {
		for _, timer := range debounce {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only the source icon itself is of interest
			if filepath.Base(event.Name) != filepath.Base(w.source) {
				continue
			}

			// Debounce: wait before processing so editors that write in
			// several steps trigger a single regeneration
			if timer, exists := debounce[event.Name]; exists {
				timer.Stop()
			}
			debounce[event.Name] = time.AfterFunc(w.debounce, func() {
				select {
				case w.fired <- event:
				case <-w.done:
				}
			})

		case event := <-w.fired:
			delete(debounce, event.Name)
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)

		case <-w.done:
			return
		}
	}
}

// handleEvent processes a single file event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	var eventType EventType

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = EventCreated
		log.Printf("Source icon created: %s", event.Name)
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = EventModified
		log.Printf("Source icon modified: %s", event.Name)
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		eventType = EventDeleted
		log.Printf("Source icon deleted: %s", event.Name)
	default:
		return // Ignore other events
	}

	// Send event to channel
	select {
	case w.events <- Event{Type: eventType, FilePath: event.Name}:
	case <-w.done:
		return
	}

	// Regenerate icons from the updated source
	if eventType == EventCreated || eventType == EventModified {
		if w.regen == nil {
			return
		}
		log.Printf("Regenerating icons from: %s", event.Name)
		if err := w.regen.Run(); err != nil {
			log.Printf("Failed to regenerate icons: %v", err)
		}
	}
}

// Events returns the event channel. It is closed once the watcher stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
