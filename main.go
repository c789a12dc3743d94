package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vermaneerajin/uhabits/internal/config"
	"github.com/vermaneerajin/uhabits/internal/eventbus"
	"github.com/vermaneerajin/uhabits/internal/habits"
	"github.com/vermaneerajin/uhabits/internal/storage"
	"github.com/vermaneerajin/uhabits/internal/ui"
)

func main() {
	// Parse command line arguments
	var dbPath string
	var inMemory bool
	flag.StringVar(&dbPath, "db", "", "Path to the habits database (overrides config)")
	flag.BoolVar(&inMemory, "mem", false, "Keep habits in memory only, nothing is persisted")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("uhabits.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		// Use default config
		cfg = config.DefaultConfig()
	}
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}

	// Open the habit store, falling back to memory when the database
	// cannot be opened
	var store storage.HabitStore
	if inMemory {
		store = storage.NewMemoryStore()
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			log.Printf("Could not create data directory: %v", err)
		}
		sqliteStore, err := storage.OpenSQLite(cfg.DatabasePath)
		if err != nil {
			log.Printf("Could not open database %s: %v, using in-memory store", cfg.DatabasePath, err)
			store = storage.NewMemoryStore()
		} else {
			store = sqliteStore
		}
	}
	defer store.Close()

	// The habits service subscribes to request events automatically
	svc := habits.NewService(bus, store)
	svc.SetShowArchived(cfg.UISettings.ShowArchived)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, svc)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventHabitsLoaded,
		eventbus.EventHabitCreated,
		eventbus.EventHabitUpdated,
		eventbus.EventHabitDeleted,
		eventbus.EventHabitsReordered,
		eventbus.EventRepetitionToggled,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Load the habit list once the program is receiving messages
	go func() {
		if err := svc.Load(); err != nil {
			log.Printf("Initial load failed: %v", err)
		}
	}()

	// Quit the UI when the context is cancelled
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Persist configuration changes made during the session
	if err := configSvc.Save(cfg); err != nil {
		log.Printf("Failed to save config: %v", err)
	}

	// Cleanup
	close(eventChan)
	cancel()
}
