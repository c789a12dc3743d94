package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vermaneerajin/uhabits/internal/ui/input/types"
)

type NewHabitMode struct {
	TextInputMode
}

func NewNewHabitMode(ti *textinput.Model) *NewHabitMode {
	return &NewHabitMode{
		TextInputMode: NewTextInputMode(types.ModeNewHabit, "new-habit", "New habit: ", ti),
	}
}

type RenameHabitMode struct {
	TextInputMode
}

func NewRenameHabitMode(ti *textinput.Model) *RenameHabitMode {
	return &RenameHabitMode{
		TextInputMode: NewTextInputMode(types.ModeRenameHabit, "rename-habit", "Rename habit: ", ti),
	}
}

type EditValueMode struct {
	TextInputMode
}

func NewEditValueMode(ti *textinput.Model) *EditValueMode {
	return &EditValueMode{
		TextInputMode: NewTextInputMode(types.ModeEditValue, "edit-entry", "Entry value (0-2): ", ti),
	}
}

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
