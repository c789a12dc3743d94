package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

func testHabit(id, name string) *domain.Habit {
	return &domain.Habit{ID: id, Name: name, Color: "2"}
}

func domainTestDay() time.Time {
	return time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
}

func TestRenderHabitCheckmarkStrip(t *testing.T) {
	r := NewHabitRenderer(NewStyles(), false)

	line := r.RenderHabit(testHabit("h1", "Exercise"),
		[]int{domain.Unchecked, domain.CheckedImplicitly, domain.CheckedExplicitly},
		domain.HabitScore{}, false, false, false, "", 0)

	require.Contains(t, line, "Exercise")
	require.Contains(t, line, "·")
	require.Contains(t, line, "✓")
	require.Contains(t, line, "✔")
}

func TestRenderHabitSelectionIndicator(t *testing.T) {
	r := NewHabitRenderer(NewStyles(), false)
	habit := testHabit("h1", "Read")

	selected := r.RenderHabit(habit, nil, domain.HabitScore{}, false, true, true, "", 0)
	require.Contains(t, selected, "[x]")

	unselected := r.RenderHabit(habit, nil, domain.HabitScore{}, false, true, false, "", 0)
	require.Contains(t, unselected, "[ ]")
}

func TestRenderHabitArchivedMarker(t *testing.T) {
	r := NewHabitRenderer(NewStyles(), false)
	habit := testHabit("h1", "Journal")
	habit.Archived = true

	line := r.RenderHabit(habit, nil, domain.HabitScore{}, false, false, false, "", 0)
	require.Contains(t, line, "(archived)")
}

func TestRenderShowsScores(t *testing.T) {
	r := NewHabitRenderer(NewStyles(), true)

	line := r.RenderHabit(testHabit("h1", "Run"), nil,
		domain.HabitScore{CurrentStreak: 7, CompletionRate: 0.5},
		false, false, false, "", 0)

	require.Contains(t, line, "7")
	require.Contains(t, line, "50%")
}

func TestRenderEmptyList(t *testing.T) {
	r := NewRenderer(true)

	out := r.Render(ViewState{Width: 80, Height: 24})
	require.Contains(t, out, "No habits yet")
	require.Contains(t, out, "uhabits")
}

func TestRenderListWithCursorAndSelection(t *testing.T) {
	r := NewRenderer(false)
	habits := []*domain.Habit{testHabit("h1", "Run"), testHabit("h2", "Read")}

	out := r.Render(ViewState{
		Width:          80,
		Height:         24,
		Habits:         habits,
		Cursor:         1,
		Selecting:      true,
		SelectedIDs:    map[string]bool{"h2": true},
		ViewportHeight: 10,
		Today:          domain.FromTime(domainTestDay()),
	})

	require.Contains(t, out, "Run")
	require.Contains(t, out, "Read")
	require.Contains(t, out, "1 selected")
}

func TestRenderViewportTruncation(t *testing.T) {
	r := NewRenderer(false)
	var habits []*domain.Habit
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		habits = append(habits, testHabit(name, "habit-"+name))
	}

	out := r.Render(ViewState{
		Width:          80,
		Height:         24,
		Habits:         habits,
		ViewportHeight: 2,
	})

	require.Contains(t, out, "habit-a")
	require.Contains(t, out, "habit-b")
	require.NotContains(t, out, "habit-e")
	require.Contains(t, out, "3 more")
}

func TestRenderHelpOverlay(t *testing.T) {
	r := NewRenderer(false)

	out := r.Render(ViewState{Width: 80, Height: 30, ShowHelp: true})
	require.Contains(t, out, "uhabits keys")
}

func TestPopupOverlayContainsPopupContent(t *testing.T) {
	styles := NewStyles()
	pr := NewPopupRenderer(styles)

	base := strings.Repeat("base line\n", 20)
	out := pr.RenderPopupOverlay(base, "popup body", 24, 80, styles.InfoBox)
	require.Contains(t, out, "popup body")
}
