package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Re-export the event type constants so subscribers don't need to
// import the domain package just for them
const (
	EventHabitsLoaded      = domain.EventHabitsLoaded
	EventHabitCreated      = domain.EventHabitCreated
	EventHabitUpdated      = domain.EventHabitUpdated
	EventHabitDeleted      = domain.EventHabitDeleted
	EventHabitsReordered   = domain.EventHabitsReordered
	EventRepetitionToggled = domain.EventRepetitionToggled
	EventError             = domain.EventError
	EventCreateRequested   = domain.EventCreateRequested
	EventRenameRequested   = domain.EventRenameRequested
	EventDeleteRequested   = domain.EventDeleteRequested
	EventArchiveRequested  = domain.EventArchiveRequested
	EventReorderRequested  = domain.EventReorderRequested
	EventToggleRequested   = domain.EventToggleRequested
	EventEditRequested     = domain.EventEditRequested
	EventConfigLoaded      = domain.EventConfigLoaded
	EventConfigSaved       = domain.EventConfigSaved
)

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType]map[int]EventHandler
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType]map[int]EventHandler),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]EventHandler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Copy handlers so the lock isn't held during handler execution
			b.mu.RLock()
			handlersCopy := make([]EventHandler, 0, len(b.handlers[event.Type()]))
			for _, h := range b.handlers[event.Type()] {
				handlersCopy = append(handlersCopy, h)
			}
			b.mu.RUnlock()

			for _, handler := range handlersCopy {
				func(h EventHandler) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
						}
					}()
					h(event)
				}(handler)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
