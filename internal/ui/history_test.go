package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

func TestHistoryDaysEndsOnTodayWeekday(t *testing.T) {
	r := NewHistoryRenderer()

	// A Monday: exactly the configured weeks plus one day
	monday := domain.FromTime(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))
	require.Equal(t, historyWeeks*7+1, r.HistoryDays(monday))

	// A Sunday: full weeks all the way through
	sunday := domain.FromTime(time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC))
	require.Equal(t, (historyWeeks+1)*7, r.HistoryDays(sunday))
}

func TestRenderHistoryContent(t *testing.T) {
	r := NewHistoryRenderer()
	habit := &domain.Habit{ID: "h1", Name: "Exercise", Question: "Did you exercise today?", Color: "2"}
	today := domain.FromTime(time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC))

	days := r.HistoryDays(today)
	checkmarks := make([]int, days)
	checkmarks[days-1] = domain.CheckedExplicitly

	out := r.RenderHistory(habit, checkmarks, domain.HabitScore{CurrentStreak: 1, CompletionRate: 0.1}, today)

	require.Contains(t, out, "Exercise")
	require.Contains(t, out, "Did you exercise today?")
	require.Contains(t, out, "Current streak: 1 days")
	require.Contains(t, out, "✔")
	// Oldest week label appears first
	oldest := today.Minus(days - 1)
	require.Contains(t, out, oldest.String())
}
