package habits

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vermaneerajin/uhabits/internal/domain"
	"github.com/vermaneerajin/uhabits/internal/eventbus"
	"github.com/vermaneerajin/uhabits/internal/storage"
)

// recordingBus is a synchronous EventBus capturing published events.
type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventType eventbus.EventType, handler eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) last() eventbus.DomainEvent {
	if len(b.events) == 0 {
		return nil
	}
	return b.events[len(b.events)-1]
}

func (b *recordingBus) ofType(t eventbus.EventType) []eventbus.DomainEvent {
	var matched []eventbus.DomainEvent
	for _, e := range b.events {
		if e.Type() == t {
			matched = append(matched, e)
		}
	}
	return matched
}

func newService(t *testing.T) (*Service, *recordingBus, storage.HabitStore) {
	t.Helper()
	bus := &recordingBus{}
	store := storage.NewMemoryStore()
	return NewService(bus, store), bus, store
}

func TestCreatePublishesAndReloads(t *testing.T) {
	s, bus, store := newService(t)

	s.handleEvent(domain.CreateRequestedEvent{Name: "Exercise"})

	created := bus.ofType(domain.EventHabitCreated)
	require.Len(t, created, 1)
	habit := created[0].(domain.HabitCreatedEvent).Habit
	require.Equal(t, "Exercise", habit.Name)
	require.NotEmpty(t, habit.ID)
	require.Equal(t, 0, habit.Position)

	loaded := bus.ofType(domain.EventHabitsLoaded)
	require.Len(t, loaded, 1)

	habits, err := store.List(false)
	require.NoError(t, err)
	require.Len(t, habits, 1)
}

func TestCreateAssignsIncreasingPositions(t *testing.T) {
	s, _, store := newService(t)

	s.handleEvent(domain.CreateRequestedEvent{Name: "a"})
	s.handleEvent(domain.CreateRequestedEvent{Name: "b"})
	s.handleEvent(domain.CreateRequestedEvent{Name: "c"})

	habits, err := store.List(false)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, []string{habits[0].Name, habits[1].Name, habits[2].Name})
	require.Equal(t, 2, habits[2].Position)
}

func TestRenameAndArchive(t *testing.T) {
	s, bus, store := newService(t)
	s.handleEvent(domain.CreateRequestedEvent{Name: "Exercise"})
	habits, _ := store.List(false)
	id := habits[0].ID

	s.handleEvent(domain.RenameRequestedEvent{HabitID: id, Name: "Run"})
	habits, _ = store.List(false)
	require.Equal(t, "Run", habits[0].Name)

	s.handleEvent(domain.ArchiveRequestedEvent{HabitID: id, Archived: true})
	habits, _ = store.List(false)
	require.Empty(t, habits)
	require.Len(t, bus.ofType(domain.EventHabitUpdated), 2)
}

func TestDeleteUnknownHabitPublishesError(t *testing.T) {
	s, bus, _ := newService(t)

	s.handleEvent(domain.DeleteRequestedEvent{HabitID: "nope"})

	require.Equal(t, domain.EventError, bus.last().Type())
}

func TestReorderMovesHabit(t *testing.T) {
	s, bus, store := newService(t)
	for _, name := range []string{"a", "b", "c", "d"} {
		s.handleEvent(domain.CreateRequestedEvent{Name: name})
	}
	bus.events = nil

	s.handleEvent(domain.ReorderRequestedEvent{From: 0, To: 2})

	habits, err := store.List(false)
	require.NoError(t, err)
	require.Equal(t, "b", habits[0].Name)
	require.Equal(t, "c", habits[1].Name)
	require.Equal(t, "a", habits[2].Name)
	require.Equal(t, "d", habits[3].Name)
	require.Len(t, bus.ofType(domain.EventHabitsReordered), 1)
}

func TestReorderOutOfRangeIsIgnored(t *testing.T) {
	s, bus, _ := newService(t)
	s.handleEvent(domain.CreateRequestedEvent{Name: "a"})
	bus.events = nil

	s.handleEvent(domain.ReorderRequestedEvent{From: 0, To: 5})

	require.Empty(t, bus.events)
}

func TestTogglePublishesValue(t *testing.T) {
	s, bus, store := newService(t)
	s.handleEvent(domain.CreateRequestedEvent{Name: "Exercise"})
	habits, _ := store.List(false)
	id := habits[0].ID
	today := domain.Today()

	s.handleEvent(domain.ToggleRequestedEvent{HabitID: id, Day: today})
	toggled := bus.ofType(domain.EventRepetitionToggled)
	require.Len(t, toggled, 1)
	require.Equal(t, domain.CheckedExplicitly, toggled[0].(domain.RepetitionToggledEvent).Value)

	s.handleEvent(domain.ToggleRequestedEvent{HabitID: id, Day: today})
	toggled = bus.ofType(domain.EventRepetitionToggled)
	require.Len(t, toggled, 2)
	require.Equal(t, domain.Unchecked, toggled[1].(domain.RepetitionToggledEvent).Value)
}

func TestScoreStreakAndRate(t *testing.T) {
	s, _, store := newService(t)
	s.handleEvent(domain.CreateRequestedEvent{Name: "Exercise"})
	habits, _ := store.List(false)
	id := habits[0].ID
	today := domain.Today()

	// Three consecutive days ending today, plus an older isolated one.
	for _, daysAgo := range []int{0, 1, 2, 10} {
		_, err := store.ToggleRepetition(id, today.Minus(daysAgo))
		require.NoError(t, err)
	}

	score, err := s.Score(id, today)
	require.NoError(t, err)
	require.Equal(t, 3, score.CurrentStreak)
	require.InDelta(t, 4.0/30.0, score.CompletionRate, 1e-9)
}

func TestScoreStreakMayEndYesterday(t *testing.T) {
	s, _, store := newService(t)
	s.handleEvent(domain.CreateRequestedEvent{Name: "Exercise"})
	habits, _ := store.List(false)
	id := habits[0].ID
	today := domain.Today()

	for _, daysAgo := range []int{1, 2} {
		_, err := store.ToggleRepetition(id, today.Minus(daysAgo))
		require.NoError(t, err)
	}

	score, err := s.Score(id, today)
	require.NoError(t, err)
	require.Equal(t, 2, score.CurrentStreak)
}

func TestCheckmarksOldestFirst(t *testing.T) {
	s, _, store := newService(t)
	s.handleEvent(domain.CreateRequestedEvent{Name: "Exercise"})
	habits, _ := store.List(false)
	id := habits[0].ID
	today := domain.Today()

	_, err := store.ToggleRepetition(id, today)
	require.NoError(t, err)
	_, err = store.ToggleRepetition(id, today.Minus(2))
	require.NoError(t, err)

	values, err := s.Checkmarks(id, today, 7)
	require.NoError(t, err)
	require.Len(t, values, 7)
	require.Equal(t, domain.CheckedExplicitly, values[6])
	require.Equal(t, domain.CheckedExplicitly, values[4])
	require.Equal(t, domain.Unchecked, values[5])
}

func TestLoadHidesArchivedByDefault(t *testing.T) {
	s, bus, _ := newService(t)
	s.handleEvent(domain.CreateRequestedEvent{Name: "Exercise"})
	s.handleEvent(domain.CreateRequestedEvent{Name: "Read"})

	habits := bus.ofType(domain.EventHabitsLoaded)
	loaded := habits[len(habits)-1].(domain.HabitsLoadedEvent).Habits
	s.handleEvent(domain.ArchiveRequestedEvent{HabitID: loaded[0].ID, Archived: true})

	require.NoError(t, s.Load())
	visible := bus.last().(domain.HabitsLoadedEvent).Habits
	require.Len(t, visible, 1)
	require.Equal(t, "Read", visible[0].Name)

	s.SetShowArchived(true)
	require.NoError(t, s.Load())
	all := bus.last().(domain.HabitsLoadedEvent).Habits
	require.Len(t, all, 2)
}
