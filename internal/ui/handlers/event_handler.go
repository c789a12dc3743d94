package handlers

import (
	"fmt"

	"github.com/vermaneerajin/uhabits/internal/domain"
	"github.com/vermaneerajin/uhabits/internal/eventbus"
	"github.com/vermaneerajin/uhabits/internal/ui/state"
)

// EventHandler folds domain events into the application state
type EventHandler struct {
	state     *state.AppState
	refresh   func(habits []*domain.Habit) // pushes the new list into the adapter
	loadStats func(habitID string)         // recomputes score and checkmarks
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, refresh func([]*domain.Habit), loadStats func(string)) *EventHandler {
	return &EventHandler{
		state:     appState,
		refresh:   refresh,
		loadStats: loadStats,
	}
}

// HandleEvent processes a domain event
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case domain.HabitsLoadedEvent:
		h.state.Habits = e.Habits
		h.state.ClampCursor()
		h.state.ScrollToCursor()
		for _, habit := range e.Habits {
			h.loadStats(habit.ID)
		}
		// The adapter refresh is what drives the controller's
		// model-change path, so it runs after the state is consistent
		h.refresh(e.Habits)

	case domain.HabitCreatedEvent:
		h.state.StatusMessage = fmt.Sprintf("Created %q", e.Habit.Name)

	case domain.HabitUpdatedEvent:
		if e.Habit.Archived {
			h.state.StatusMessage = fmt.Sprintf("Archived %q", e.Habit.Name)
		} else {
			h.state.StatusMessage = fmt.Sprintf("Updated %q", e.Habit.Name)
		}

	case domain.HabitDeletedEvent:
		h.state.StatusMessage = "Habit deleted"

	case domain.HabitsReorderedEvent:
		h.state.StatusMessage = "Habit moved"

	case domain.RepetitionToggledEvent:
		h.loadStats(e.HabitID)
		if e.Value == domain.Unchecked {
			h.state.StatusMessage = fmt.Sprintf("Unchecked %s", e.Day)
		} else {
			h.state.StatusMessage = fmt.Sprintf("Checked %s", e.Day)
		}

	case domain.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}
}
