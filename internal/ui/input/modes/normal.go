package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vermaneerajin/uhabits/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter clicks the habit under the cursor; with an active
		// selection this toggles membership instead
		if ctx.CurrentHabitID() != "" || ctx.HasSelection() {
			return []types.Action{types.ClickAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "v":
		// Long-press analog: begin or extend a selection
		if ctx.CurrentHabitID() != "" {
			return []types.Action{types.LongClickAction{}}, true
		}
		return nil, false

	case "J", "shift+down":
		// Drag the habit one position down
		if ctx.CurrentHabitID() != "" {
			return []types.Action{types.ReorderAction{Delta: 1}}, true
		}
		return nil, false

	case "K", "shift+up":
		// Drag the habit one position up
		if ctx.CurrentHabitID() != "" {
			return []types.Action{types.ReorderAction{Delta: -1}}, true
		}
		return nil, false

	case " ":
		// Space toggles today's checkmark
		if ctx.CurrentHabitID() != "" {
			return []types.Action{types.ToggleCheckmarkAction{}}, true
		}
		return nil, false

	case "e":
		// Edit today's entry value
		if ctx.CurrentHabitID() != "" {
			return []types.Action{types.EditEntryAction{}}, true
		}
		return nil, false

	case "n":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNewHabit}}, true

	case "r", "R":
		// Rename the habit under the cursor
		if ctx.CurrentHabitID() != "" {
			return []types.Action{types.ChangeModeAction{
				Mode: types.ModeRenameHabit,
				Data: ctx.CurrentHabitName(),
			}}, true
		}
		return nil, false

	case "d":
		// Delete habit (or the whole selection) after confirmation
		if ctx.CurrentHabitID() != "" || ctx.HasSelection() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true
		}
		return nil, false

	case "a":
		// Archive the habit or selection
		if ctx.CurrentHabitID() != "" || ctx.HasSelection() {
			return []types.Action{types.ArchiveAction{}}, true
		}
		return nil, false

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "i":
		// Show habit history
		if ctx.CurrentHabitID() != "" {
			return []types.Action{types.ShowHistoryAction{}}, true
		}
		return nil, false

	case "esc":
		// Clear selection if any, otherwise do nothing
		if ctx.HasSelection() {
			return []types.Action{types.ClearSelectionAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
