// Package habits performs habit mutations requested over the event bus
// and publishes the results.
package habits

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/vermaneerajin/uhabits/internal/domain"
	"github.com/vermaneerajin/uhabits/internal/eventbus"
	"github.com/vermaneerajin/uhabits/internal/storage"
)

// Palette cycled through when creating habits
var defaultColors = []string{"2", "3", "4", "5", "6", "9", "10", "12", "13", "14"}

// Service executes habit operations against the store in response to
// request events and publishes result events.
type Service struct {
	bus          eventbus.EventBus
	store        storage.HabitStore
	showArchived bool
}

// NewService creates the service and subscribes it to the bus
func NewService(bus eventbus.EventBus, store storage.HabitStore) *Service {
	s := &Service{bus: bus, store: store}

	bus.Subscribe(domain.EventCreateRequested, s.handleEvent)
	bus.Subscribe(domain.EventRenameRequested, s.handleEvent)
	bus.Subscribe(domain.EventDeleteRequested, s.handleEvent)
	bus.Subscribe(domain.EventArchiveRequested, s.handleEvent)
	bus.Subscribe(domain.EventReorderRequested, s.handleEvent)
	bus.Subscribe(domain.EventToggleRequested, s.handleEvent)
	bus.Subscribe(domain.EventEditRequested, s.handleEvent)

	return s
}

// SetShowArchived controls whether archived habits appear in the
// published list
func (s *Service) SetShowArchived(show bool) {
	s.showArchived = show
}

// Load reads all habits from the store and publishes them
func (s *Service) Load() error {
	habits, err := s.store.List(s.showArchived)
	if err != nil {
		s.bus.Publish(domain.ErrorEvent{Message: "failed to load habits", Err: err})
		return err
	}
	s.bus.Publish(domain.HabitsLoadedEvent{Habits: habits})
	return nil
}

func (s *Service) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case domain.CreateRequestedEvent:
		s.create(e.Name)
	case domain.RenameRequestedEvent:
		s.rename(e.HabitID, e.Name)
	case domain.DeleteRequestedEvent:
		s.delete(e.HabitID)
	case domain.ArchiveRequestedEvent:
		s.archive(e.HabitID, e.Archived)
	case domain.ReorderRequestedEvent:
		s.reorder(e.From, e.To)
	case domain.ToggleRequestedEvent:
		s.toggle(e.HabitID, e.Day)
	case domain.EditRequestedEvent:
		s.edit(e.HabitID, e.Day, e.Value)
	}
}

func (s *Service) create(name string) {
	habits, err := s.store.List(true)
	if err != nil {
		s.fail("failed to read habits", err)
		return
	}

	habit := &domain.Habit{
		ID:       uuid.NewString(),
		Name:     name,
		Question: fmt.Sprintf("Did you %s today?", name),
		Color:    defaultColors[len(habits)%len(defaultColors)],
		Position: len(habits),
	}
	if err := s.store.Create(habit); err != nil {
		s.fail("failed to create habit", err)
		return
	}

	log.Printf("Created habit %q (%s)", habit.Name, habit.ID)
	s.bus.Publish(domain.HabitCreatedEvent{Habit: habit})
	s.Load()
}

func (s *Service) rename(id, name string) {
	habit, err := s.find(id)
	if err != nil {
		s.fail("failed to rename habit", err)
		return
	}
	habit.Name = name
	if err := s.store.Update(habit); err != nil {
		s.fail("failed to rename habit", err)
		return
	}
	s.bus.Publish(domain.HabitUpdatedEvent{Habit: habit})
	s.Load()
}

func (s *Service) delete(id string) {
	if err := s.store.Delete(id); err != nil {
		s.fail("failed to delete habit", err)
		return
	}
	log.Printf("Deleted habit %s", id)
	s.bus.Publish(domain.HabitDeletedEvent{HabitID: id})
	s.Load()
}

func (s *Service) archive(id string, archived bool) {
	habit, err := s.find(id)
	if err != nil {
		s.fail("failed to archive habit", err)
		return
	}
	habit.Archived = archived
	if err := s.store.Update(habit); err != nil {
		s.fail("failed to archive habit", err)
		return
	}
	s.bus.Publish(domain.HabitUpdatedEvent{Habit: habit})
	s.Load()
}

func (s *Service) reorder(from, to int) {
	// Positions arrive as indices into the same view Load publishes
	habits, err := s.store.List(s.showArchived)
	if err != nil {
		s.fail("failed to reorder habits", err)
		return
	}
	if from < 0 || from >= len(habits) || to < 0 || to >= len(habits) || from == to {
		return
	}

	moved := habits[from]
	displaced := habits[to]
	habits = append(habits[:from], habits[from+1:]...)
	rest := append([]*domain.Habit{}, habits[to:]...)
	habits = append(append(habits[:to:to], moved), rest...)

	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	if err := s.store.Reorder(ids); err != nil {
		s.fail("failed to persist habit order", err)
		return
	}

	s.bus.Publish(domain.HabitsReorderedEvent{FromID: moved.ID, ToID: displaced.ID})
	s.Load()
}

func (s *Service) toggle(id string, day domain.Timestamp) {
	value, err := s.store.ToggleRepetition(id, day)
	if err != nil {
		s.fail("failed to toggle checkmark", err)
		return
	}
	s.bus.Publish(domain.RepetitionToggledEvent{HabitID: id, Day: day, Value: value})
}

func (s *Service) edit(id string, day domain.Timestamp, value int) {
	if err := s.store.SetRepetition(id, day, value); err != nil {
		s.fail("failed to edit entry", err)
		return
	}
	s.bus.Publish(domain.RepetitionToggledEvent{HabitID: id, Day: day, Value: value})
}

func (s *Service) find(id string) (*domain.Habit, error) {
	habits, err := s.store.List(true)
	if err != nil {
		return nil, err
	}
	for _, h := range habits {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Service) fail(message string, err error) {
	log.Printf("%s: %v", message, err)
	s.bus.Publish(domain.ErrorEvent{Message: message, Err: err})
}
