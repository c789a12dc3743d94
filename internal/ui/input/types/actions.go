package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Gesture actions, interpreted by the list controller
type ClickAction struct{}

func (a ClickAction) Type() string { return "click" }

type LongClickAction struct{}

func (a LongClickAction) Type() string { return "long_click" }

type ReorderAction struct {
	Delta int // +1 moves the habit down, -1 up
}

func (a ReorderAction) Type() string { return "reorder" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Checkmark actions
type ToggleCheckmarkAction struct{}

func (a ToggleCheckmarkAction) Type() string { return "toggle_checkmark" }

type EditEntryAction struct{}

func (a EditEntryAction) Type() string { return "edit_entry" }

// Habit management actions
type ArchiveAction struct{}

func (a ArchiveAction) Type() string { return "archive" }

type DeleteHabitAction struct {
	HabitID string
}

func (a DeleteHabitAction) Type() string { return "delete_habit" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// View actions
type ShowHistoryAction struct{}

func (a ShowHistoryAction) Type() string { return "show_history" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
