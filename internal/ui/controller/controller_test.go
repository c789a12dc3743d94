package controller

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

// fakeAdapter is an in-memory Adapter with an ordered habit slice and a
// selection set keyed by habit ID.
type fakeAdapter struct {
	habits    []*domain.Habit
	selected  map[string]bool
	observers []func()
	reorders  []string
}

func newFakeAdapter(names ...string) *fakeAdapter {
	a := &fakeAdapter{selected: make(map[string]bool)}
	for i, name := range names {
		a.habits = append(a.habits, &domain.Habit{
			ID:       fmt.Sprintf("id-%d", i),
			Name:     name,
			Position: i,
		})
	}
	return a
}

func (a *fakeAdapter) HabitAt(position int) *domain.Habit {
	return a.habits[position]
}

func (a *fakeAdapter) IsSelectionEmpty() bool {
	return len(a.selected) == 0
}

func (a *fakeAdapter) ToggleSelection(position int) {
	id := a.habits[position].ID
	if a.selected[id] {
		delete(a.selected, id)
	} else {
		a.selected[id] = true
	}
}

func (a *fakeAdapter) ClearSelection() {
	a.selected = make(map[string]bool)
}

func (a *fakeAdapter) PerformReorder(from, to int) {
	a.reorders = append(a.reorders, fmt.Sprintf("%d->%d", from, to))
	h := a.habits[from]
	a.habits = append(a.habits[:from], a.habits[from+1:]...)
	rest := append([]*domain.Habit{}, a.habits[to:]...)
	a.habits = append(append(a.habits[:to:to], h), rest...)
}

func (a *fakeAdapter) AddObserver(fn func()) func() {
	a.observers = append(a.observers, fn)
	return func() {}
}

func (a *fakeAdapter) notifyChange() {
	for _, fn := range a.observers {
		fn()
	}
}

// recorder implements both listener interfaces and records every
// notification in order.
type recorder struct {
	events []string
}

func (r *recorder) OnHabitClick(h *domain.Habit) { r.events = append(r.events, "click:"+h.Name) }
func (r *recorder) OnHabitReorder(from, to *domain.Habit) {
	r.events = append(r.events, fmt.Sprintf("reorder:%s->%s", from.Name, to.Name))
}
func (r *recorder) OnEdit(h *domain.Habit, day domain.Timestamp) {
	r.events = append(r.events, "edit:"+h.Name)
}
func (r *recorder) OnInvalidEdit()   { r.events = append(r.events, "invalidEdit") }
func (r *recorder) OnInvalidToggle() { r.events = append(r.events, "invalidToggle") }
func (r *recorder) OnToggle(h *domain.Habit, day domain.Timestamp) {
	r.events = append(r.events, "toggle:"+h.Name)
}
func (r *recorder) OnSelectionStart()  { r.events = append(r.events, "start") }
func (r *recorder) OnSelectionChange() { r.events = append(r.events, "change") }
func (r *recorder) OnSelectionFinish() { r.events = append(r.events, "finish") }

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func newController(names ...string) (*ListController, *fakeAdapter, *recorder) {
	adapter := newFakeAdapter(names...)
	c := New(adapter)
	rec := &recorder{}
	c.SetHabitListener(rec)
	c.SetSelectionListener(rec)
	return c, adapter, rec
}

func TestClickInNormalModeActivatesHabit(t *testing.T) {
	c, adapter, rec := newController("Exercise", "Read", "Meditate")

	c.OnItemClick(1)

	require.Equal(t, []string{"click:Read"}, rec.events)
	require.Equal(t, ModeNormal, c.Mode())
	require.True(t, adapter.IsSelectionEmpty())
}

func TestLongClickStartsSelection(t *testing.T) {
	c, adapter, rec := newController("Exercise", "Read")

	consumed := c.OnItemLongClick(0)

	require.True(t, consumed)
	require.Equal(t, ModeSelecting, c.Mode())
	require.Equal(t, map[string]bool{"id-0": true}, adapter.selected)
	require.Equal(t, 1, rec.count("start"))
	require.Equal(t, 0, rec.count("change"))
}

func TestStartDragBeginsSelection(t *testing.T) {
	c, adapter, rec := newController("Exercise", "Read")

	c.StartDrag(1)

	require.Equal(t, ModeSelecting, c.Mode())
	require.Equal(t, map[string]bool{"id-1": true}, adapter.selected)
	require.Equal(t, 1, rec.count("start"))
}

func TestClickDeselectingLastItemFinishesSelection(t *testing.T) {
	c, adapter, rec := newController("Exercise", "Read")
	c.OnItemLongClick(0)

	c.OnItemClick(0)

	require.True(t, adapter.IsSelectionEmpty())
	require.Equal(t, ModeNormal, c.Mode())
	require.Equal(t, 1, rec.count("finish"))
	require.Equal(t, 0, rec.count("change"))
}

func TestClickExtendsSelection(t *testing.T) {
	c, adapter, rec := newController("Exercise", "Read")
	c.OnItemLongClick(0)

	c.OnItemClick(1)

	require.Equal(t, map[string]bool{"id-0": true, "id-1": true}, adapter.selected)
	require.Equal(t, ModeSelecting, c.Mode())
	require.Equal(t, 1, rec.count("change"))
	require.Equal(t, 0, rec.count("finish"))
}

func TestLongClickTogglesDuringSelection(t *testing.T) {
	c, adapter, rec := newController("Exercise", "Read")
	c.OnItemLongClick(0)

	require.True(t, c.OnItemLongClick(1))
	require.Equal(t, 2, len(adapter.selected))
	require.Equal(t, 1, rec.count("change"))
}

func TestDragTogglesDuringSelection(t *testing.T) {
	c, adapter, rec := newController("Exercise", "Read")
	c.OnItemLongClick(0)

	// Dragging the already-selected item toggles it out, same as any
	// other toggle.
	c.StartDrag(0)

	require.True(t, adapter.IsSelectionEmpty())
	require.Equal(t, ModeNormal, c.Mode())
	require.Equal(t, 1, rec.count("finish"))
}

func TestModeMatchesSelectionEmptiness(t *testing.T) {
	c, adapter, _ := newController("a", "b", "c", "d")

	gestures := []func(){
		func() { c.OnItemLongClick(0) },
		func() { c.OnItemClick(1) },
		func() { c.OnItemClick(2) },
		func() { c.StartDrag(1) },
		func() { c.OnItemClick(0) },
		func() { c.OnItemClick(2) },
		func() { c.OnItemLongClick(3) },
		func() { c.CancelSelection() },
	}

	for i, gesture := range gestures {
		gesture()
		if adapter.IsSelectionEmpty() {
			require.Equal(t, ModeNormal, c.Mode(), "after gesture %d", i)
		} else {
			require.Equal(t, ModeSelecting, c.Mode(), "after gesture %d", i)
		}
	}
}

func TestDropSamePositionIsNoop(t *testing.T) {
	c, adapter, rec := newController("a", "b", "c", "d")

	c.Drop(3, 3)

	require.Empty(t, rec.events)
	require.Empty(t, adapter.reorders)
}

func TestDropReordersWithPreMoveIdentities(t *testing.T) {
	c, adapter, rec := newController("a", "b", "c", "d", "e")

	c.Drop(1, 4)

	require.Equal(t, []string{"reorder:b->e"}, rec.events)
	require.Equal(t, []string{"1->4"}, adapter.reorders)
}

func TestDropCancelsSelectionBeforeReorder(t *testing.T) {
	c, adapter, rec := newController("a", "b", "c", "d", "e")
	c.OnItemLongClick(2)
	rec.events = nil

	c.Drop(1, 4)

	require.True(t, adapter.IsSelectionEmpty())
	require.Equal(t, ModeNormal, c.Mode())
	require.Equal(t, []string{"finish", "reorder:b->e"}, rec.events)
}

func TestCancelSelectionIsSafeWhenAlreadyEmpty(t *testing.T) {
	c, adapter, rec := newController("a", "b")

	c.CancelSelection()
	c.CancelSelection()

	require.True(t, adapter.IsSelectionEmpty())
	require.Equal(t, ModeNormal, c.Mode())
	// One finish notification per call, nothing else.
	require.Equal(t, []string{"finish", "finish"}, rec.events)
}

func TestModelChangeWithEmptySelectionFinishes(t *testing.T) {
	c, adapter, rec := newController("a", "b")
	c.OnItemLongClick(0)
	rec.events = nil

	// The collection lost its selected item through an external path.
	adapter.ClearSelection()
	adapter.notifyChange()

	require.Equal(t, ModeNormal, c.Mode())
	require.Equal(t, []string{"finish"}, rec.events)
}

func TestModelChangeWithActiveSelectionIsIgnored(t *testing.T) {
	c, adapter, rec := newController("a", "b")
	c.OnItemLongClick(0)
	rec.events = nil

	adapter.notifyChange()

	require.Equal(t, ModeSelecting, c.Mode())
	require.Empty(t, rec.events)
}

func TestAbsentListenersSuppressNotifications(t *testing.T) {
	adapter := newFakeAdapter("a", "b", "c")
	c := New(adapter)

	// No listener attached anywhere: every path must be a silent no-op.
	c.OnItemClick(0)
	c.OnItemLongClick(0)
	c.OnItemClick(1)
	c.StartDrag(2)
	c.CancelSelection()
	c.Drop(0, 2)
	c.OnEdit(adapter.HabitAt(0), domain.Today())
	c.OnInvalidEdit()
	c.OnInvalidToggle()
	c.OnToggle(adapter.HabitAt(0), domain.Today())

	require.Equal(t, ModeNormal, c.Mode())
	require.Equal(t, []string{"0->2"}, adapter.reorders)
}

func TestPassThroughNotifications(t *testing.T) {
	c, adapter, rec := newController("Exercise")
	day := domain.Today()

	c.OnToggle(adapter.HabitAt(0), day)
	c.OnEdit(adapter.HabitAt(0), day)
	c.OnInvalidToggle()
	c.OnInvalidEdit()

	require.Equal(t, []string{"toggle:Exercise", "edit:Exercise", "invalidToggle", "invalidEdit"}, rec.events)
}

func TestReplacingListenerTakesEffectImmediately(t *testing.T) {
	c, _, rec := newController("a", "b")

	c.SetSelectionListener(nil)
	c.OnItemLongClick(0)
	require.Empty(t, rec.events)

	c.SetSelectionListener(rec)
	c.OnItemClick(1)
	require.Equal(t, []string{"change"}, rec.events)
}
