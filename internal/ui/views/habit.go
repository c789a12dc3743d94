package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

// HabitRenderer handles rendering of habit rows
type HabitRenderer struct {
	styles     *Styles
	showScores bool
}

// NewHabitRenderer creates a new habit renderer
func NewHabitRenderer(styles *Styles, showScores bool) *HabitRenderer {
	return &HabitRenderer{
		styles:     styles,
		showScores: showScores,
	}
}

// RenderHabit renders a single habit row. checkmarks holds the last
// few days oldest first, so the rightmost cell is today.
func (r *HabitRenderer) RenderHabit(habit *domain.Habit, checkmarks []int, score domain.HabitScore,
	isCursor bool, isMultiSelect bool, isHabitSelected bool,
	searchQuery string, width int) string {
	if habit == nil {
		return ""
	}

	// Background color for the cursor row
	bgColor := ""
	if isCursor {
		bgColor = "238"
	}

	var parts []string

	// Multi-select indicator
	if isMultiSelect {
		selectionIndicator := "[ ]"
		if isHabitSelected {
			selectionIndicator = "[x]"
		}
		selectionStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
		parts = append(parts, selectionStyle.Render(selectionIndicator))
		parts = append(parts, " ")
	}

	// Habit name in its own color (with search highlighting if applicable)
	name := habit.Name
	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(habit.Color)).
		Background(lipgloss.Color(bgColor))
	if habit.Archived {
		nameStyle = nameStyle.Faint(true)
		name += " (archived)"
	}
	if searchQuery != "" && strings.Contains(strings.ToLower(name), strings.ToLower(searchQuery)) {
		name = r.highlightMatch(name, searchQuery,
			nameStyle.Foreground(lipgloss.Color("226")).Bold(true), nameStyle)
	} else {
		name = nameStyle.Render(name)
	}
	parts = append(parts, name)

	// Pad the name column so the checkmark strips line up
	nameWidth := lipgloss.Width(strings.Join(parts, ""))
	nameColumn := 26
	if isMultiSelect {
		nameColumn += 4
	}
	if pad := nameColumn - nameWidth; pad > 0 {
		padStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
		parts = append(parts, padStyle.Render(strings.Repeat(" ", pad)))
	}

	// Checkmark strip
	parts = append(parts, r.renderCheckmarks(checkmarks, bgColor))

	// Streak and completion rate
	if r.showScores {
		statsStyle := r.styles.Streak
		if isCursor {
			statsStyle = statsStyle.Background(lipgloss.Color(bgColor))
		}
		stats := fmt.Sprintf("  %3d🔥 %3.0f%%", score.CurrentStreak, score.CompletionRate*100)
		parts = append(parts, statsStyle.Render(stats))
	}

	line := strings.Join(parts, "")
	if width > 0 && lipgloss.Width(line) > width {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// renderCheckmarks renders the daily value strip, oldest day first
func (r *HabitRenderer) renderCheckmarks(checkmarks []int, bgColor string) string {
	var b strings.Builder
	for i, value := range checkmarks {
		if i > 0 {
			sep := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
			b.WriteString(sep.Render(" "))
		}
		var cell string
		switch value {
		case domain.CheckedExplicitly:
			style := r.styles.Checked
			if bgColor != "" {
				style = style.Background(lipgloss.Color(bgColor))
			}
			cell = style.Render("✔")
		case domain.CheckedImplicitly:
			style := r.styles.Implicit
			if bgColor != "" {
				style = style.Background(lipgloss.Color(bgColor))
			}
			cell = style.Render("✓")
		default:
			style := r.styles.Unchecked
			if bgColor != "" {
				style = style.Background(lipgloss.Color(bgColor))
			}
			cell = style.Render("·")
		}
		b.WriteString(cell)
	}
	return b.String()
}

// highlightMatch highlights the matching portion of text
func (r *HabitRenderer) highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	return normalStyle.Render(before) + highlightStyle.Render(match) + normalStyle.Render(after)
}
