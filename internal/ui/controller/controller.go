// Package controller translates positional gestures on the habit list
// (click, long-press, drag) into semantic events: habit activation or a
// multi-select workflow, depending on whether a selection is active.
package controller

import (
	"github.com/vermaneerajin/uhabits/internal/domain"
)

// Mode describes the behaviour of the list upon clicking, long-pressing
// and dragging an item. Exactly one mode is active at any time; the
// invariant is that the mode is ModeSelecting iff the selection set is
// non-empty.
type Mode int

const (
	// ModeNormal is active when no items are selected. Clicks activate
	// habits, long-presses start a selection.
	ModeNormal Mode = iota

	// ModeSelecting is active when at least one item is selected.
	// Clicks, long-presses and drags all toggle item selection.
	ModeSelecting
)

// Adapter is the externally-owned habit collection the controller
// operates on. The controller never stores its own copy of the
// selection set; it only queries emptiness and toggles membership.
//
// ToggleSelection and ClearSelection must not fire the observers
// registered through AddObserver; observers report collection changes
// that did not originate from this controller.
type Adapter interface {
	// HabitAt returns the habit at the given position in the current
	// ordered view. Out-of-range positions are the adapter's problem
	// and must fail loudly, not silently.
	HabitAt(position int) *domain.Habit

	// IsSelectionEmpty reports whether no items are selected.
	IsSelectionEmpty() bool

	// ToggleSelection flips the selection state of the item at the
	// given position.
	ToggleSelection(position int)

	// ClearSelection deselects every item.
	ClearSelection()

	// PerformReorder moves the item at position from to position to.
	PerformReorder(from, to int)

	// AddObserver registers a callback invoked after the collection
	// changed through some path other than this controller, e.g. items
	// were removed. Returns an unsubscribe function.
	AddObserver(fn func()) func()
}

// HabitListener receives habit-level events. All methods are invoked
// synchronously from the controller's caller.
type HabitListener interface {
	// OnHabitClick is called when the user clicks a habit outside of a
	// selection.
	OnHabitClick(habit *domain.Habit)

	// OnHabitReorder is called after a completed drag-and-drop. from is
	// the habit that was moved; to is the habit that occupied the
	// target position before the move.
	OnHabitReorder(from, to *domain.Habit)

	// OnEdit is called when the user wants to edit the entry of a habit
	// for a given day.
	OnEdit(habit *domain.Habit, day domain.Timestamp)

	// OnInvalidEdit is called when an edit attempt is rejected upstream.
	OnInvalidEdit()

	// OnInvalidToggle is called when a toggle attempt is rejected
	// upstream.
	OnInvalidToggle()

	// OnToggle is called when the user wants to toggle the checkmark of
	// a habit for a given day.
	OnToggle(habit *domain.Habit, day domain.Timestamp)
}

// SelectionListener receives selection lifecycle events.
type SelectionListener interface {
	// OnSelectionStart is called after the user selects the first item.
	OnSelectionStart()

	// OnSelectionChange is called when the set of selected items
	// changes and remains non-empty. If the selection was previously
	// empty, OnSelectionStart is called instead.
	OnSelectionChange()

	// OnSelectionFinish is called when the user deselects all items or
	// the selection is cancelled.
	OnSelectionFinish()
}

// ListController receives and processes the events generated by the
// habit list view: selecting and reordering items, toggling checkmarks
// and clicking habits. It is bound to a single adapter for its lifetime
// and is not safe for concurrent use; drive it from a single goroutine.
type ListController struct {
	adapter           Adapter
	habitListener     HabitListener
	selectionListener SelectionListener
	mode              Mode
	unsubscribe       func()
}

// New creates a controller bound to the given adapter and subscribes to
// its change notifications. Call Close to unsubscribe.
func New(adapter Adapter) *ListController {
	c := &ListController{
		adapter: adapter,
		mode:    ModeNormal,
	}
	c.unsubscribe = adapter.AddObserver(c.OnModelChange)
	return c
}

// Close unsubscribes the controller from the adapter's change
// notifications. Safe to call more than once.
func (c *ListController) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Mode returns the currently active mode.
func (c *ListController) Mode() Mode {
	return c.mode
}

// SetHabitListener replaces the habit listener. Pass nil to detach.
func (c *ListController) SetHabitListener(l HabitListener) {
	c.habitListener = l
}

// SetSelectionListener replaces the selection listener. Pass nil to
// detach.
func (c *ListController) SetSelectionListener(l SelectionListener) {
	c.selectionListener = l
}

// OnItemClick is called when the user clicks the item at the given
// position.
func (c *ListController) OnItemClick(position int) {
	switch c.mode {
	case ModeNormal:
		habit := c.adapter.HabitAt(position)
		if c.habitListener != nil {
			c.habitListener.OnHabitClick(habit)
		}
	case ModeSelecting:
		c.toggleSelection(position)
		c.notifySelection()
	}
}

// OnItemLongClick is called when the user long-presses the item at the
// given position. Returns true to signal that the gesture was consumed.
func (c *ListController) OnItemLongClick(position int) bool {
	switch c.mode {
	case ModeNormal:
		c.startSelection(position)
	case ModeSelecting:
		c.toggleSelection(position)
		c.notifySelection()
	}
	return true
}

// StartDrag is called when the user starts dragging the item at the
// given position. The dragged item is not special-cased: toggling it
// during an active selection behaves like any other toggle.
func (c *ListController) StartDrag(position int) {
	switch c.mode {
	case ModeNormal:
		c.startSelection(position)
	case ModeSelecting:
		c.toggleSelection(position)
		c.notifySelection()
	}
}

// Drop is called when the user drags a habit and drops it somewhere.
// The dragging operation is already complete. Dropping an item on its
// own position is a no-op.
func (c *ListController) Drop(from, to int) {
	if from == to {
		return
	}
	if !c.adapter.IsSelectionEmpty() {
		c.CancelSelection()
	}

	// Capture both habits before the move; the listener receives
	// pre-move identities.
	habitFrom := c.adapter.HabitAt(from)
	habitTo := c.adapter.HabitAt(to)
	c.adapter.PerformReorder(from, to)

	if c.habitListener != nil {
		c.habitListener.OnHabitReorder(habitFrom, habitTo)
	}
}

// OnModelChange is called when the underlying collection changed
// through some path other than this controller. If the selection became
// empty, the selection operation is finished.
func (c *ListController) OnModelChange() {
	if c.adapter.IsSelectionEmpty() {
		c.mode = ModeNormal
		if c.selectionListener != nil {
			c.selectionListener.OnSelectionFinish()
		}
	}
}

// CancelSelection marks all items as not selected and finishes the
// selection operation. Called when the selection is cancelled by
// something other than this controller, such as a global dismiss
// gesture. Emits a single finish notification per call and is safe to
// call with an already-empty selection.
func (c *ListController) CancelSelection() {
	c.adapter.ClearSelection()
	c.mode = ModeNormal
	if c.selectionListener != nil {
		c.selectionListener.OnSelectionFinish()
	}
}

// OnEdit forwards an edit request from an upstream gesture source.
func (c *ListController) OnEdit(habit *domain.Habit, day domain.Timestamp) {
	if c.habitListener != nil {
		c.habitListener.OnEdit(habit, day)
	}
}

// OnInvalidEdit forwards a rejected edit attempt.
func (c *ListController) OnInvalidEdit() {
	if c.habitListener != nil {
		c.habitListener.OnInvalidEdit()
	}
}

// OnInvalidToggle forwards a rejected toggle attempt.
func (c *ListController) OnInvalidToggle() {
	if c.habitListener != nil {
		c.habitListener.OnInvalidToggle()
	}
}

// OnToggle forwards a checkmark toggle request from an upstream gesture
// source.
func (c *ListController) OnToggle(habit *domain.Habit, day domain.Timestamp) {
	if c.habitListener != nil {
		c.habitListener.OnToggle(habit, day)
	}
}

// startSelection begins a selection at the given position and moves the
// controller into ModeSelecting.
func (c *ListController) startSelection(position int) {
	c.toggleSelection(position)
	if c.selectionListener != nil {
		c.selectionListener.OnSelectionStart()
	}
}

// toggleSelection is the single place where selection membership and
// the mode transition happen together, keeping the mode/selection
// invariant checkable in one spot.
func (c *ListController) toggleSelection(position int) {
	c.adapter.ToggleSelection(position)
	if c.adapter.IsSelectionEmpty() {
		c.mode = ModeNormal
	} else {
		c.mode = ModeSelecting
	}
}

// notifySelection reports the result of a toggle performed in
// ModeSelecting. The notification reflects the resulting mode: a change
// while items remain selected, or a finish when the toggle emptied the
// selection.
func (c *ListController) notifySelection() {
	if c.selectionListener == nil {
		return
	}
	if c.mode == ModeSelecting {
		c.selectionListener.OnSelectionChange()
	} else {
		c.selectionListener.OnSelectionFinish()
	}
}
