package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vermaneerajin/uhabits/internal/config"
	"github.com/vermaneerajin/uhabits/internal/domain"
	"github.com/vermaneerajin/uhabits/internal/eventbus"
	"github.com/vermaneerajin/uhabits/internal/habits"
	"github.com/vermaneerajin/uhabits/internal/ui/controller"
	"github.com/vermaneerajin/uhabits/internal/ui/handlers"
	"github.com/vermaneerajin/uhabits/internal/ui/input"
	inputtypes "github.com/vermaneerajin/uhabits/internal/ui/input/types"
	"github.com/vermaneerajin/uhabits/internal/ui/list"
	"github.com/vermaneerajin/uhabits/internal/ui/state"
	"github.com/vermaneerajin/uhabits/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	svc    *habits.Service

	// UI-specific state not in AppState
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	adapter       *list.HabitListAdapter
	controller    *controller.ListController
	renderer      *views.Renderer
	eventHandler  *handlers.EventHandler
	inputHandler  *input.Handler
	historyRender *HistoryRenderer
	pager         *Pager

	// Target of the open edit prompt
	editHabitID string
	editDay     domain.Timestamp

	// Mode active before the last key, needed to route cancel actions
	modeBeforeKey inputtypes.Mode

	// Habit activated by the last click, drained by processAction
	activated *domain.Habit

	// Command produced by a controller callback, drained by processAction
	pendingCmd tea.Cmd

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, svc *habits.Service) *Model {
	appState := state.NewAppState()

	m := &Model{
		bus:           bus,
		config:        cfg,
		state:         appState,
		svc:           svc,
		renderer:      views.NewRenderer(cfg.UISettings.ShowScores),
		inputHandler:  input.New(),
		historyRender: NewHistoryRenderer(),
		pager:         NewPager(),
	}

	// The adapter persists reorders by asking the habits service
	m.adapter = list.NewAdapter(func(from, to int) {
		bus.Publish(domain.ReorderRequestedEvent{From: from, To: to})
	})

	m.controller = controller.New(m.adapter)
	m.controller.SetHabitListener(m)
	m.controller.SetSelectionListener(m)

	m.eventHandler = handlers.NewEventHandler(appState, m.refreshAdapter, m.loadStats)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

func (m *Model) Init() tea.Cmd {
	// Will be updated on the first WindowSizeMsg
	m.state.ViewportHeight = 20
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		m.state.ScrollToCursor()

	case EventMsg:
		m.eventHandler.HandleEvent(msg.Event)
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case historyPagerMsg:
		if msg.err != nil {
			m.state.StatusMessage = fmt.Sprintf("Error: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		// Help popup swallows keys while visible
		if m.state.ShowHelp {
			switch msg.String() {
			case "j", "down":
				m.state.HelpScrollOffset++
				return m, nil
			case "k", "up":
				if m.state.HelpScrollOffset > 0 {
					m.state.HelpScrollOffset--
				}
				return m, nil
			case "esc", "?", "q":
				m.state.ShowHelp = false
				m.state.HelpScrollOffset = 0
				return m, nil
			}
			return m, nil
		}

		ctx := m.context()
		m.modeBeforeKey = m.inputHandler.CurrentMode()
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	vs := views.ViewState{
		Width:            m.width,
		Height:           m.height,
		Habits:           m.state.Habits,
		Checkmarks:       m.state.Checkmarks,
		Scores:           m.state.Scores,
		Cursor:           m.state.Cursor,
		Selecting:        m.state.Selecting,
		SelectedIDs:      m.selectedIDSet(),
		StatusMessage:    m.state.StatusMessage,
		StatusIsError:    strings.HasPrefix(m.state.StatusMessage, "Error"),
		ShowHelp:         m.state.ShowHelp,
		HelpScrollOffset: m.state.HelpScrollOffset,
		ViewportOffset:   m.state.ViewportOffset,
		ViewportHeight:   m.state.ViewportHeight,
		SearchQuery:      m.state.SearchQuery,
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.InputMode = m.inputHandler.ModeName()
		vs.InputPrompt = m.inputHandler.Prompt()
		vs.TextInput = ti.View()
	}

	if m.inputHandler.CurrentMode() == inputtypes.ModeDeleteConfirm {
		if m.state.SelectedCount > 1 {
			vs.DeleteTarget = fmt.Sprintf("%d habits", m.state.SelectedCount)
		} else if habit := m.state.HabitAt(m.state.Cursor); habit != nil {
			vs.DeleteTarget = habit.Name
		}
	}

	return m.renderer.Render(vs)
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ClickAction:
		m.controller.OnItemClick(m.state.Cursor)
		if habit := m.activated; habit != nil {
			m.activated = nil
			return m.showHistory(habit)
		}

	case inputtypes.LongClickAction:
		m.controller.OnItemLongClick(m.state.Cursor)

	case inputtypes.ReorderAction:
		from := m.state.Cursor
		to := from + a.Delta
		if from < 0 || from >= len(m.state.Habits) || to < 0 || to >= len(m.state.Habits) {
			return nil
		}
		m.controller.StartDrag(from)
		m.controller.Drop(from, to)
		// The service reloads the list asynchronously; move the local
		// view right away so the cursor follows the habit
		m.state.Habits = m.adapter.Habits()
		m.state.Cursor = to
		m.state.ScrollToCursor()

	case inputtypes.ClearSelectionAction:
		m.controller.CancelSelection()

	case inputtypes.ToggleCheckmarkAction:
		if habit := m.state.HabitAt(m.state.Cursor); habit != nil && !habit.Archived {
			m.controller.OnToggle(habit, domain.Today())
		} else {
			m.controller.OnInvalidToggle()
		}

	case inputtypes.EditEntryAction:
		if habit := m.state.HabitAt(m.state.Cursor); habit != nil && !habit.Archived {
			m.controller.OnEdit(habit, domain.Today())
		} else {
			m.controller.OnInvalidEdit()
		}
		if cmd := m.pendingCmd; cmd != nil {
			m.pendingCmd = nil
			return cmd
		}

	case inputtypes.ArchiveAction:
		m.archiveTargets()

	case inputtypes.DeleteHabitAction:
		if !m.adapter.IsSelectionEmpty() {
			ids := m.adapter.SelectedIDs()
			m.controller.CancelSelection()
			for _, id := range ids {
				m.bus.Publish(domain.DeleteRequestedEvent{HabitID: id})
			}
		} else if a.HabitID != "" {
			m.bus.Publish(domain.DeleteRequestedEvent{HabitID: a.HabitID})
		}

	case inputtypes.SubmitTextAction:
		return m.submitText(a)

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.state.SearchQuery = a.Text
		}

	case inputtypes.CancelTextAction:
		if m.modeBeforeKey == inputtypes.ModeSearch {
			m.state.SearchQuery = ""
		}
		m.editHabitID = ""

	case inputtypes.ShowHistoryAction:
		if habit := m.state.HabitAt(m.state.Cursor); habit != nil {
			return m.showHistory(habit)
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.QuitAction:
		m.controller.Close()
		return tea.Quit
	}

	return nil
}

// submitText routes a submitted text prompt to the habits service
func (m *Model) submitText(a inputtypes.SubmitTextAction) tea.Cmd {
	text := strings.TrimSpace(a.Text)

	switch a.Mode {
	case inputtypes.ModeNewHabit:
		if text != "" {
			m.bus.Publish(domain.CreateRequestedEvent{Name: text})
		}

	case inputtypes.ModeRenameHabit:
		if habit := m.state.HabitAt(m.state.Cursor); habit != nil && text != "" {
			m.bus.Publish(domain.RenameRequestedEvent{HabitID: habit.ID, Name: text})
		}

	case inputtypes.ModeEditValue:
		value, err := strconv.Atoi(text)
		if err != nil || value < domain.Unchecked || value > domain.CheckedExplicitly || m.editHabitID == "" {
			m.controller.OnInvalidEdit()
			m.editHabitID = ""
			return nil
		}
		m.bus.Publish(domain.EditRequestedEvent{HabitID: m.editHabitID, Day: m.editDay, Value: value})
		m.editHabitID = ""

	case inputtypes.ModeSearch:
		m.state.SearchQuery = text
	}

	return nil
}

// archiveTargets archives the selection, or the habit under the cursor
func (m *Model) archiveTargets() {
	if !m.adapter.IsSelectionEmpty() {
		ids := m.adapter.SelectedIDs()
		byID := make(map[string]*domain.Habit, len(m.state.Habits))
		for _, h := range m.state.Habits {
			byID[h.ID] = h
		}
		m.controller.CancelSelection()
		for _, id := range ids {
			if habit := byID[id]; habit != nil {
				m.bus.Publish(domain.ArchiveRequestedEvent{HabitID: id, Archived: !habit.Archived})
			}
		}
		return
	}
	if habit := m.state.HabitAt(m.state.Cursor); habit != nil {
		m.bus.Publish(domain.ArchiveRequestedEvent{HabitID: habit.ID, Archived: !habit.Archived})
	}
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.state.Cursor--
	case "down":
		m.state.Cursor++
	case "pageup":
		m.state.Cursor -= m.state.ViewportHeight
	case "pagedown":
		m.state.Cursor += m.state.ViewportHeight
	case "home":
		m.state.Cursor = 0
	case "end":
		m.state.Cursor = len(m.state.Habits) - 1
	}
	m.state.ClampCursor()
	m.state.ScrollToCursor()
}

// showHistory returns a command that shows a habit's history in the ov
// pager
func (m *Model) showHistory(habit *domain.Habit) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		today := domain.Today()
		days := m.historyRender.HistoryDays(today)
		checkmarks, err := m.svc.Checkmarks(habit.ID, today, days)
		if err == nil {
			score, _ := m.svc.Score(habit.ID, today)
			content := m.historyRender.RenderHistory(habit, checkmarks, score, today)
			err = m.pager.ShowText(content)
		}

		m.program.Send(resumeRenderingMsg{})
		return historyPagerMsg{err: err}
	}
}

// refreshAdapter pushes a freshly loaded habit list into the adapter.
// The adapter notifies its observers, which runs the controller's
// model-change path and may finish an emptied selection.
func (m *Model) refreshAdapter(habits []*domain.Habit) {
	m.adapter.Refresh(habits)
	m.syncSelection()
}

// loadStats recomputes the score and checkmark strip for one habit
func (m *Model) loadStats(habitID string) {
	today := domain.Today()
	if score, err := m.svc.Score(habitID, today); err == nil {
		m.state.Scores[habitID] = score
	}
	if checkmarks, err := m.svc.Checkmarks(habitID, today, views.CheckmarkDays); err == nil {
		m.state.Checkmarks[habitID] = checkmarks
	}
}

func (m *Model) syncSelection() {
	m.state.Selecting = !m.adapter.IsSelectionEmpty()
	m.state.SelectedCount = m.adapter.SelectedCount()
}

func (m *Model) selectedIDSet() map[string]bool {
	ids := m.adapter.SelectedIDs()
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (m *Model) updateViewportHeight() {
	// Title, weekday header, prompt, status and help lines plus the
	// container padding
	h := m.height - 9
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
}

// context builds the read-only view of the model the input handler
// needs
func (m *Model) context() inputtypes.Context {
	return &modelContext{m: m}
}

type modelContext struct {
	m *Model
}

func (c *modelContext) CurrentIndex() int { return c.m.state.Cursor }

func (c *modelContext) TotalItems() int { return len(c.m.state.Habits) }
func (c *modelContext) HasSelection() bool {
	return !c.m.adapter.IsSelectionEmpty()
}

func (c *modelContext) SelectedCount() int { return c.m.adapter.SelectedCount() }

func (c *modelContext) CurrentHabitID() string {
	if habit := c.m.state.HabitAt(c.m.state.Cursor); habit != nil {
		return habit.ID
	}
	return ""
}

func (c *modelContext) CurrentHabitName() string {
	if habit := c.m.state.HabitAt(c.m.state.Cursor); habit != nil {
		return habit.Name
	}
	return ""
}

func (c *modelContext) SearchQuery() string { return c.m.state.SearchQuery }

// OnHabitClick opens the habit's history. The click arrives through
// the list controller, which only forwards it outside of a selection.
func (m *Model) OnHabitClick(habit *domain.Habit) {
	m.activated = habit
}

// OnHabitReorder reports a completed drag
func (m *Model) OnHabitReorder(from, to *domain.Habit) {
	m.state.StatusMessage = fmt.Sprintf("Moved %q", from.Name)
}

// OnEdit opens the edit-value prompt for the habit
func (m *Model) OnEdit(habit *domain.Habit, day domain.Timestamp) {
	m.editHabitID = habit.ID
	m.editDay = day

	current := ""
	if strip := m.state.Checkmarks[habit.ID]; len(strip) > 0 {
		current = strconv.Itoa(strip[len(strip)-1])
	}
	_, cmd := m.inputHandler.EnterMode(inputtypes.ModeEditValue, current, m.context())
	m.pendingCmd = cmd
}

// OnInvalidEdit reports a rejected edit
func (m *Model) OnInvalidEdit() {
	m.state.StatusMessage = "Error: invalid entry value"
}

// OnInvalidToggle reports a rejected toggle
func (m *Model) OnInvalidToggle() {
	m.state.StatusMessage = "Error: nothing to toggle"
}

// OnToggle asks the habits service to flip a checkmark
func (m *Model) OnToggle(habit *domain.Habit, day domain.Timestamp) {
	m.bus.Publish(domain.ToggleRequestedEvent{HabitID: habit.ID, Day: day})
}

// OnSelectionStart mirrors the new selection into the view state
func (m *Model) OnSelectionStart() {
	m.syncSelection()
}

// OnSelectionChange mirrors selection membership changes
func (m *Model) OnSelectionChange() {
	m.syncSelection()
}

// OnSelectionFinish mirrors the end of the selection
func (m *Model) OnSelectionFinish() {
	m.syncSelection()
}
