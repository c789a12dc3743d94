package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

// historyWeeks is how many weeks of history the pager shows
const historyWeeks = 12

// HistoryRenderer builds the history view for a single habit
type HistoryRenderer struct{}

// NewHistoryRenderer creates a new history renderer
func NewHistoryRenderer() *HistoryRenderer {
	return &HistoryRenderer{}
}

// HistoryDays returns how many daily values the renderer needs so the
// last row ends on today's weekday
func (r *HistoryRenderer) HistoryDays(today domain.Timestamp) int {
	return historyWeeks*7 + weekdayIndex(today.Time()) + 1
}

// RenderHistory renders a habit's recent history, one week per line
// with the oldest week first. checkmarks holds daily values oldest
// first, ending today, sized by HistoryDays.
func (r *HistoryRenderer) RenderHistory(habit *domain.Habit, checkmarks []int, score domain.HabitScore, today domain.Timestamp) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(habit.Color))
	dimStyle := lipgloss.NewStyle().Faint(true)
	checkedStyle := lipgloss.NewStyle().Bold(true)
	uncheckedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(habit.Name))
	b.WriteString("\n")
	if habit.Question != "" {
		b.WriteString(dimStyle.Render(habit.Question))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Current streak: %d days\n", score.CurrentStreak))
	b.WriteString(fmt.Sprintf("Completion:     %.0f%% over the last 30 days\n", score.CompletionRate*100))
	b.WriteString("\n")

	// Weekday header, week starts on Monday
	b.WriteString(dimStyle.Render("            M T W T F S S"))
	b.WriteString("\n")

	oldest := today.Minus(len(checkmarks) - 1)
	for week := 0; week*7 < len(checkmarks); week++ {
		weekStart := oldest.Plus(week * 7)
		b.WriteString(dimStyle.Render(weekStart.String()))
		b.WriteString("  ")
		for d := 0; d < 7; d++ {
			i := week*7 + d
			if i >= len(checkmarks) {
				break
			}
			if d > 0 {
				b.WriteString(" ")
			}
			switch checkmarks[i] {
			case domain.CheckedExplicitly:
				b.WriteString(checkedStyle.Render("✔"))
			case domain.CheckedImplicitly:
				b.WriteString(dimStyle.Render("✓"))
			default:
				b.WriteString(uncheckedStyle.Render("·"))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("q to close"))
	return b.String()
}

// weekdayIndex maps a weekday to 0..6 with Monday as 0
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Pager shows long-form content in the ov pager, taking over the
// terminal while it runs
type Pager struct {
	program *tea.Program
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference needed to release the terminal
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowText displays the given content in the pager until the user quits
// it
func (p *Pager) ShowText(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
