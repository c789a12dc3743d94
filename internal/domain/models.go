package domain

import "time"

// Habit represents a single tracked habit
type Habit struct {
	ID        string // uuid
	Name      string
	Question  string // e.g. "Did you exercise today?"
	Color     string // lipgloss-compatible color code
	Position  int    // position in the list, 0-based
	Archived  bool
	CreatedAt time.Time
}

// Repetition records one completed (or valued) day for a habit
type Repetition struct {
	HabitID string
	Day     Timestamp
	Value   int
}

// Repetition values
const (
	Unchecked         = 0
	CheckedImplicitly = 1
	CheckedExplicitly = 2
)

// Timestamp is a day-granularity timestamp (unix milliseconds at
// midnight UTC). Day arithmetic stays exact because every value is a
// whole number of days.
type Timestamp int64

const dayMillis = 24 * 60 * 60 * 1000

// Today returns the timestamp for the current day
func Today() Timestamp {
	return FromTime(time.Now())
}

// FromTime truncates t to its UTC day
func FromTime(t time.Time) Timestamp {
	y, m, d := t.UTC().Date()
	return Timestamp(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).UnixMilli())
}

// Minus returns the timestamp n days earlier
func (t Timestamp) Minus(days int) Timestamp {
	return t - Timestamp(days*dayMillis)
}

// Plus returns the timestamp n days later
func (t Timestamp) Plus(days int) Timestamp {
	return t + Timestamp(days*dayMillis)
}

// DaysUntil returns the number of whole days from t to other
func (t Timestamp) DaysUntil(other Timestamp) int {
	return int((other - t) / dayMillis)
}

// Time converts the timestamp back to a time.Time
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t)).UTC()
}

// String formats the timestamp as an ISO date
func (t Timestamp) String() string {
	return t.Time().Format("2006-01-02")
}

// HabitScore summarizes recent performance of a habit for display
type HabitScore struct {
	HabitID        string
	CurrentStreak  int     // consecutive checked days ending today or yesterday
	CompletionRate float64 // fraction of the last 30 days checked
}
