package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vermaneerajin/uhabits/internal/domain"
)

// CheckmarkDays is how many daily cells each habit row shows
const CheckmarkDays = 7

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Habits           []*domain.Habit
	Checkmarks       map[string][]int
	Scores           map[string]domain.HabitScore
	Cursor           int
	Selecting        bool
	SelectedIDs      map[string]bool
	StatusMessage    string
	StatusIsError    bool
	ShowHelp         bool
	HelpScrollOffset int
	ViewportOffset   int
	ViewportHeight   int
	SearchQuery      string
	TextInput        string
	InputPrompt      string
	InputMode        string
	DeleteTarget     string
	Today            domain.Timestamp
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	habitRender *HabitRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showScores bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		habitRender: NewHabitRenderer(styles, showScores),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title line with a right-aligned selection indicator
	logo := r.styles.Title.Render("uhabits")
	titleLine := logo
	rightContent := ""
	if state.Selecting {
		rightContent = r.styles.Highlight.Render(fmt.Sprintf("%d selected", len(state.SelectedIDs)))
	} else if state.SearchQuery != "" && state.InputMode == "" {
		rightContent = r.styles.Search.Render(fmt.Sprintf("[Search: %s]", state.SearchQuery))
	}
	if rightContent != "" {
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80 // Default terminal width
		}
		availableWidth := termWidth - 4 // Account for main container padding
		paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
		if paddingWidth > 0 {
			titleLine = fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent)
		} else {
			titleLine = fmt.Sprintf("%s  %s", logo, rightContent)
		}
	}
	content.WriteString(titleLine)
	content.WriteString("\n")

	// Delete confirmation or text input prompt
	if state.DeleteTarget != "" {
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Delete habit '%s'? (y/n): ", state.DeleteTarget)))
		content.WriteString("\n\n")
	} else if state.InputMode != "" {
		content.WriteString(state.InputPrompt)
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	// Main content
	mainContent := ""
	if len(state.Habits) == 0 {
		mainContent = r.styles.Dim.Render("No habits yet. Press n to create one.")
	} else {
		mainContent = r.renderHabitList(state)
	}
	content.WriteString(mainContent)

	// Status message
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError.MarginTop(1)
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	// Calculate help text (shown at bottom when no popups are visible)
	helpText := ""
	if !state.ShowHelp {
		helpText = r.styles.Help.Render("Press ? for help")
	}

	// If we have help text, add padding to push it to the bottom
	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1

		// Account for container padding (1 top, 1 bottom from Padding(1, 2))
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		paddingNeeded := availableLines - currentLines - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	// Apply main container style
	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	// Overlay popups on top of main content
	if state.ShowHelp {
		helpContent := r.renderHelpContent(state.Height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

// renderHabitList renders the visible slice of the habit list with a
// weekday header row
func (r *Renderer) renderHabitList(state ViewState) string {
	var lines []string
	lines = append(lines, r.renderDayHeader(state))

	offset := state.ViewportOffset
	if offset < 0 {
		offset = 0
	}
	end := len(state.Habits)
	if state.ViewportHeight > 0 && offset+state.ViewportHeight < end {
		end = offset + state.ViewportHeight
	}

	for i := offset; i < end; i++ {
		habit := state.Habits[i]
		line := r.habitRender.RenderHabit(
			habit,
			state.Checkmarks[habit.ID],
			state.Scores[habit.ID],
			i == state.Cursor,
			state.Selecting,
			state.SelectedIDs[habit.ID],
			state.SearchQuery,
			state.Width,
		)
		lines = append(lines, line)
	}

	// Scroll indicator when the list continues past the viewport
	if end < len(state.Habits) {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("… %d more", len(state.Habits)-end)))
	}

	return strings.Join(lines, "\n")
}

// renderDayHeader renders the weekday initials above the checkmark
// strip, oldest day first to match the rows
func (r *Renderer) renderDayHeader(state ViewState) string {
	today := state.Today
	if today == 0 {
		today = domain.Today()
	}

	nameColumn := 26
	if state.Selecting {
		nameColumn += 4
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", nameColumn))
	for d := CheckmarkDays - 1; d >= 0; d-- {
		day := today.Minus(d)
		b.WriteString(day.Time().Weekday().String()[:1])
		if d > 0 {
			b.WriteString(" ")
		}
	}
	return r.styles.Dim.Render(b.String())
}

// renderHelpContent renders the help popup content
func (r *Renderer) renderHelpContent(height int, scrollOffset int) string {
	helpLines := []string{
		r.styles.Confirm.Render("uhabits keys"),
		"",
		"  j/k, ↓/↑      move cursor",
		"  gg / G        jump to top / bottom",
		"  enter         check off habit, or toggle selection",
		"  v             start selection / toggle selection",
		"  shift+j/k     move habit down / up",
		"  space         toggle today's checkmark",
		"  e             edit today's value",
		"  n             new habit",
		"  r             rename habit",
		"  a             archive / unarchive habit",
		"  d             delete habit",
		"  /             search",
		"  i             show history",
		"  esc           leave selection",
		"  ?             toggle this help",
		"  q             quit",
	}

	// Scroll the help when it does not fit
	maxLines := height - 8
	if maxLines > 0 && len(helpLines) > maxLines {
		start := scrollOffset
		if start > len(helpLines)-maxLines {
			start = len(helpLines) - maxLines
		}
		if start < 0 {
			start = 0
		}
		helpLines = helpLines[start : start+maxLines]
	}

	return strings.Join(helpLines, "\n")
}
