package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestampTruncatesToUTCDay(t *testing.T) {
	late := time.Date(2026, 8, 29, 23, 59, 59, 0, time.UTC)
	early := time.Date(2026, 8, 29, 0, 0, 1, 0, time.UTC)

	require.Equal(t, FromTime(late), FromTime(early))
	require.Equal(t, "2026-08-29", FromTime(late).String())
}

func TestTimestampDayArithmetic(t *testing.T) {
	day := FromTime(time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC))

	require.Equal(t, "2026-08-28", day.Minus(1).String())
	require.Equal(t, "2026-09-01", day.Plus(3).String())
	require.Equal(t, 10, day.Minus(10).DaysUntil(day))
	require.Equal(t, day, day.Minus(5).Plus(5))
}

func TestTimestampCrossesMonthBoundary(t *testing.T) {
	day := FromTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	require.Equal(t, "2026-02-28", day.Minus(1).String())
}
