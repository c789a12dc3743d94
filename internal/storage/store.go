// Package storage persists habits and their repetitions.
package storage

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

// ErrNotFound is returned when a habit does not exist.
var ErrNotFound = errors.New("habit not found")

// HabitStore provides access to habit data
type HabitStore interface {
	// List returns habits ordered by position.
	List(includeArchived bool) ([]*domain.Habit, error)

	// Create stores a new habit.
	Create(habit *domain.Habit) error

	// Update rewrites a habit's fields.
	Update(habit *domain.Habit) error

	// Delete removes a habit and all of its repetitions.
	Delete(id string) error

	// Reorder rewrites positions to match the given ID order.
	Reorder(ids []string) error

	// ToggleRepetition flips the checkmark for a day and returns the
	// resulting value.
	ToggleRepetition(habitID string, day domain.Timestamp) (int, error)

	// SetRepetition sets an explicit value for a day. A value of
	// Unchecked removes the row.
	SetRepetition(habitID string, day domain.Timestamp, value int) error

	// Repetitions returns all repetitions for a habit in [from, to],
	// ordered by day.
	Repetitions(habitID string, from, to domain.Timestamp) ([]domain.Repetition, error)

	Close() error
}

// MemoryStore is an in-memory implementation of HabitStore, used in
// tests and as a fallback when the database cannot be opened.
type MemoryStore struct {
	mu     sync.RWMutex
	habits map[string]*domain.Habit
	reps   map[string]map[domain.Timestamp]int // habit ID -> day -> value
}

// NewMemoryStore creates a new empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		habits: make(map[string]*domain.Habit),
		reps:   make(map[string]map[domain.Timestamp]int),
	}
}

func (s *MemoryStore) List(includeArchived bool) ([]*domain.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range s.habits {
		if h.Archived && !includeArchived {
			continue
		}
		copied := *h
		habits = append(habits, &copied)
	}
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].Position < habits[j].Position
	})
	return habits, nil
}

func (s *MemoryStore) Create(habit *domain.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Now()
	}
	copied := *habit
	s.habits[habit.ID] = &copied
	return nil
}

func (s *MemoryStore) Update(habit *domain.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habits[habit.ID]; !ok {
		return ErrNotFound
	}
	copied := *habit
	s.habits[habit.ID] = &copied
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habits[id]; !ok {
		return ErrNotFound
	}
	delete(s.habits, id)
	delete(s.reps, id)
	return nil
}

func (s *MemoryStore) Reorder(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for position, id := range ids {
		if h, ok := s.habits[id]; ok {
			h.Position = position
		}
	}
	return nil
}

func (s *MemoryStore) ToggleRepetition(habitID string, day domain.Timestamp) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habits[habitID]; !ok {
		return 0, ErrNotFound
	}
	if s.reps[habitID] == nil {
		s.reps[habitID] = make(map[domain.Timestamp]int)
	}
	if s.reps[habitID][day] != domain.Unchecked {
		delete(s.reps[habitID], day)
		return domain.Unchecked, nil
	}
	s.reps[habitID][day] = domain.CheckedExplicitly
	return domain.CheckedExplicitly, nil
}

func (s *MemoryStore) SetRepetition(habitID string, day domain.Timestamp, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.habits[habitID]; !ok {
		return ErrNotFound
	}
	if s.reps[habitID] == nil {
		s.reps[habitID] = make(map[domain.Timestamp]int)
	}
	if value == domain.Unchecked {
		delete(s.reps[habitID], day)
		return nil
	}
	s.reps[habitID][day] = value
	return nil
}

func (s *MemoryStore) Repetitions(habitID string, from, to domain.Timestamp) ([]domain.Repetition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reps []domain.Repetition
	for day, value := range s.reps[habitID] {
		if day < from || day > to {
			continue
		}
		reps = append(reps, domain.Repetition{HabitID: habitID, Day: day, Value: value})
	}
	sort.Slice(reps, func(i, j int) bool { return reps[i].Day < reps[j].Day })
	return reps, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
