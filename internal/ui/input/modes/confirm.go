package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vermaneerajin/uhabits/internal/ui/input/types"
)

type ConfirmMode struct {
	habitID string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Remember the habit under the cursor when entering the mode; with
	// an active selection the model deletes the whole selection instead
	m.habitID = ctx.CurrentHabitID()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		// Cancel deletion
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y":
		// Confirm deletion
		return []types.Action{
			types.DeleteHabitAction{HabitID: m.habitID},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, false
}
