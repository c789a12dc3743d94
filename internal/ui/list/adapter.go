// Package list holds the ordered habit view and its selection set, the
// collection the list controller operates on.
package list

import (
	"github.com/vermaneerajin/uhabits/internal/domain"
)

// HabitListAdapter owns the ordered view of habits shown in the list
// and the set of currently selected habits, keyed by habit ID so a
// selection survives reordering.
type HabitListAdapter struct {
	habits    []*domain.Habit
	selected  map[string]bool
	observers map[int]func()
	nextID    int
	reorderFn func(from, to int)
}

// NewAdapter creates an empty adapter. reorderFn is invoked after a
// reorder has been applied to the local view so the new order can be
// persisted; it may be nil.
func NewAdapter(reorderFn func(from, to int)) *HabitListAdapter {
	return &HabitListAdapter{
		selected:  make(map[string]bool),
		observers: make(map[int]func()),
		reorderFn: reorderFn,
	}
}

// Refresh replaces the ordered view with the given habits, drops
// selections of habits that no longer exist, and notifies observers.
func (a *HabitListAdapter) Refresh(habits []*domain.Habit) {
	a.habits = habits

	alive := make(map[string]bool, len(habits))
	for _, h := range habits {
		alive[h.ID] = true
	}
	for id := range a.selected {
		if !alive[id] {
			delete(a.selected, id)
		}
	}

	for _, fn := range a.observers {
		fn()
	}
}

// Len returns the number of habits in the view.
func (a *HabitListAdapter) Len() int {
	return len(a.habits)
}

// Habits returns the ordered view. The returned slice must not be
// mutated by the caller.
func (a *HabitListAdapter) Habits() []*domain.Habit {
	return a.habits
}

// HabitAt returns the habit at the given position. Out-of-range
// positions panic, as they indicate a caller bug.
func (a *HabitListAdapter) HabitAt(position int) *domain.Habit {
	return a.habits[position]
}

// IsSelectionEmpty reports whether no habits are selected.
func (a *HabitListAdapter) IsSelectionEmpty() bool {
	return len(a.selected) == 0
}

// IsSelected reports whether the habit with the given ID is selected.
func (a *HabitListAdapter) IsSelected(id string) bool {
	return a.selected[id]
}

// SelectedCount returns the number of selected habits.
func (a *HabitListAdapter) SelectedCount() int {
	return len(a.selected)
}

// SelectedIDs returns the IDs of all selected habits, in list order.
func (a *HabitListAdapter) SelectedIDs() []string {
	var ids []string
	for _, h := range a.habits {
		if a.selected[h.ID] {
			ids = append(ids, h.ID)
		}
	}
	return ids
}

// ToggleSelection flips the selection state of the habit at the given
// position. Observers are not notified; this mutation originates from
// the controller.
func (a *HabitListAdapter) ToggleSelection(position int) {
	id := a.habits[position].ID
	if a.selected[id] {
		delete(a.selected, id)
	} else {
		a.selected[id] = true
	}
}

// ClearSelection deselects every habit without notifying observers.
func (a *HabitListAdapter) ClearSelection() {
	a.selected = make(map[string]bool)
}

// PerformReorder moves the habit at position from to position to in the
// local view and hands the move to the reorder callback for
// persistence.
func (a *HabitListAdapter) PerformReorder(from, to int) {
	h := a.habits[from]
	a.habits = append(a.habits[:from], a.habits[from+1:]...)
	rest := append([]*domain.Habit{}, a.habits[to:]...)
	a.habits = append(append(a.habits[:to:to], h), rest...)

	if a.reorderFn != nil {
		a.reorderFn(from, to)
	}
}

// AddObserver registers a callback fired on Refresh. Returns an
// unsubscribe function.
func (a *HabitListAdapter) AddObserver(fn func()) func() {
	id := a.nextID
	a.nextID++
	a.observers[id] = fn
	return func() {
		delete(a.observers, id)
	}
}
