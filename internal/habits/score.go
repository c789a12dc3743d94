package habits

import (
	"github.com/vermaneerajin/uhabits/internal/domain"
)

// scoreWindow is the number of days the completion rate looks back
const scoreWindow = 30

// maxStreakLookback bounds the streak walk
const maxStreakLookback = 365

// Score computes the streak and recent completion rate for a habit as
// of the given day.
func (s *Service) Score(habitID string, today domain.Timestamp) (domain.HabitScore, error) {
	reps, err := s.store.Repetitions(habitID, today.Minus(maxStreakLookback), today)
	if err != nil {
		return domain.HabitScore{}, err
	}

	checked := make(map[domain.Timestamp]bool, len(reps))
	for _, r := range reps {
		if r.Value != domain.Unchecked {
			checked[r.Day] = true
		}
	}

	score := domain.HabitScore{HabitID: habitID}

	// Completion rate over the window, today inclusive
	done := 0
	for i := 0; i < scoreWindow; i++ {
		if checked[today.Minus(i)] {
			done++
		}
	}
	score.CompletionRate = float64(done) / scoreWindow

	// A streak may end today or, if today is still unchecked, yesterday
	day := today
	if !checked[day] {
		day = day.Minus(1)
	}
	for i := 0; i < maxStreakLookback && checked[day]; i++ {
		score.CurrentStreak++
		day = day.Minus(1)
	}

	return score, nil
}

// Checkmarks returns the repetition values for the last days days,
// oldest first, ending at today.
func (s *Service) Checkmarks(habitID string, today domain.Timestamp, days int) ([]int, error) {
	reps, err := s.store.Repetitions(habitID, today.Minus(days-1), today)
	if err != nil {
		return nil, err
	}

	byDay := make(map[domain.Timestamp]int, len(reps))
	for _, r := range reps {
		byDay[r.Day] = r.Value
	}

	values := make([]int, days)
	for i := 0; i < days; i++ {
		values[i] = byDay[today.Minus(days-1-i)]
	}
	return values, nil
}
