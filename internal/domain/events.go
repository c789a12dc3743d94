package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventHabitsLoaded      EventType = "HabitsLoaded"
	EventHabitCreated      EventType = "HabitCreated"
	EventHabitUpdated      EventType = "HabitUpdated"
	EventHabitDeleted      EventType = "HabitDeleted"
	EventHabitsReordered   EventType = "HabitsReordered"
	EventRepetitionToggled EventType = "RepetitionToggled"
	EventError             EventType = "Error"

	EventCreateRequested  EventType = "CreateRequested"
	EventRenameRequested  EventType = "RenameRequested"
	EventDeleteRequested  EventType = "DeleteRequested"
	EventArchiveRequested EventType = "ArchiveRequested"
	EventReorderRequested EventType = "ReorderRequested"
	EventToggleRequested  EventType = "ToggleRequested"
	EventEditRequested    EventType = "EditRequested"

	EventConfigLoaded EventType = "ConfigLoaded"
	EventConfigSaved  EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// HabitsLoadedEvent is emitted once the store has been read at startup
// or after any mutation that changes the habit list
type HabitsLoadedEvent struct {
	Habits []*Habit
}

func (e HabitsLoadedEvent) Type() EventType { return EventHabitsLoaded }

// HabitCreatedEvent is emitted when a new habit has been stored
type HabitCreatedEvent struct {
	Habit *Habit
}

func (e HabitCreatedEvent) Type() EventType { return EventHabitCreated }

// HabitUpdatedEvent is emitted when a habit's fields changed
type HabitUpdatedEvent struct {
	Habit *Habit
}

func (e HabitUpdatedEvent) Type() EventType { return EventHabitUpdated }

// HabitDeletedEvent is emitted when a habit has been removed
type HabitDeletedEvent struct {
	HabitID string
}

func (e HabitDeletedEvent) Type() EventType { return EventHabitDeleted }

// HabitsReorderedEvent is emitted after a reorder has been persisted
type HabitsReorderedEvent struct {
	FromID string
	ToID   string
}

func (e HabitsReorderedEvent) Type() EventType { return EventHabitsReordered }

// RepetitionToggledEvent is emitted when a checkmark changed
type RepetitionToggledEvent struct {
	HabitID string
	Day     Timestamp
	Value   int
}

func (e RepetitionToggledEvent) Type() EventType { return EventRepetitionToggled }

// ErrorEvent is emitted when an operation fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// CreateRequestedEvent asks the habits service to create a habit
type CreateRequestedEvent struct {
	Name string
}

func (e CreateRequestedEvent) Type() EventType { return EventCreateRequested }

// RenameRequestedEvent asks the habits service to rename a habit
type RenameRequestedEvent struct {
	HabitID string
	Name    string
}

func (e RenameRequestedEvent) Type() EventType { return EventRenameRequested }

// DeleteRequestedEvent asks the habits service to delete a habit
type DeleteRequestedEvent struct {
	HabitID string
}

func (e DeleteRequestedEvent) Type() EventType { return EventDeleteRequested }

// ArchiveRequestedEvent asks the habits service to archive or restore
// a habit
type ArchiveRequestedEvent struct {
	HabitID  string
	Archived bool
}

func (e ArchiveRequestedEvent) Type() EventType { return EventArchiveRequested }

// ReorderRequestedEvent asks the habits service to move a habit to a
// new position
type ReorderRequestedEvent struct {
	From int
	To   int
}

func (e ReorderRequestedEvent) Type() EventType { return EventReorderRequested }

// ToggleRequestedEvent asks the habits service to toggle a checkmark
type ToggleRequestedEvent struct {
	HabitID string
	Day     Timestamp
}

func (e ToggleRequestedEvent) Type() EventType { return EventToggleRequested }

// EditRequestedEvent asks the habits service to set an explicit value
// for a day
type EditRequestedEvent struct {
	HabitID string
	Day     Timestamp
	Value   int
}

func (e EditRequestedEvent) Type() EventType { return EventEditRequested }

// ConfigLoadedEvent is emitted when configuration has been loaded
type ConfigLoadedEvent struct {
	DatabasePath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration has been saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
