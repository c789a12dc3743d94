package state

import (
	"github.com/vermaneerajin/uhabits/internal/domain"
)

// AppState contains the application state the view renders from
type AppState struct {
	// Habit data, ordered as displayed
	Habits     []*domain.Habit
	Scores     map[string]domain.HabitScore
	Checkmarks map[string][]int // habit ID -> last N days, oldest first

	// Cursor and viewport
	Cursor         int
	ViewportOffset int
	ViewportHeight int

	// Selection display state, mirrored from the selection listener
	Selecting     bool
	SelectedCount int

	// UI state
	StatusMessage    string
	ShowHelp         bool
	HelpScrollOffset int
	SearchQuery      string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Scores:         make(map[string]domain.HabitScore),
		Checkmarks:     make(map[string][]int),
		ViewportHeight: 20, // Default
	}
}

// HabitAt returns the habit at the given index, or nil when out of
// range
func (s *AppState) HabitAt(index int) *domain.Habit {
	if index < 0 || index >= len(s.Habits) {
		return nil
	}
	return s.Habits[index]
}

// ClampCursor keeps the cursor inside the list after the habit set
// changed
func (s *AppState) ClampCursor() {
	if s.Cursor >= len(s.Habits) {
		s.Cursor = len(s.Habits) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// ScrollToCursor adjusts the viewport so the cursor stays visible
func (s *AppState) ScrollToCursor() {
	if s.ViewportHeight <= 0 {
		return
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if s.Cursor >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.Cursor - s.ViewportHeight + 1
	}
}
