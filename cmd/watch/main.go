package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"icongen/config"
	"icongen/icons"
	"icongen/watcher"
)

func main() {
	fmt.Println("Icongen - Watch Mode")
	fmt.Println("====================")

	cfg := config.Default()
	if len(os.Args) > 1 {
		var err error
		cfg, err = config.Load(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	gen := icons.NewGenerator(cfg.Source, filepath.Dir(cfg.Source))

	// Generate once up front so the watch starts from a complete set
	if err := gen.Run(); err != nil {
		log.Fatalf("Icon generation failed: %v", err)
	}

	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	w, err := watcher.NewWatcher(cfg.Source, debounce)
	if err != nil {
		log.Fatalf("Failed to create watcher: %v", err)
	}
	w.SetRegenerator(gen)

	if err := w.Start(); err != nil {
		log.Fatalf("Failed to start watcher: %v", err)
	}

	log.Println("Watcher started. Monitoring source icon for changes...")
	log.Println("Press Ctrl+C to stop")

	// Listen for events
	go func() {
		for event := range w.Events() {
			log.Printf("Event: %v - %s", event.Type, event.FilePath)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	w.Stop()
}
