package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"rowpick/internal/config"
	"rowpick/internal/domain"
	"rowpick/internal/eventbus"
	"rowpick/internal/logic"
	"rowpick/internal/ui/commands"
	"rowpick/internal/ui/input"
	inputtypes "rowpick/internal/ui/input/types"
	uilogic "rowpick/internal/ui/logic"
	"rowpick/internal/ui/services/selection"
	"rowpick/internal/ui/state"
	"rowpick/internal/ui/views"
)

// readyMarker is printed once rows are loaded when E2EEnv is set
const readyMarker = "__READY__"

// E2EEnv enables the ready marker used by the terminal tests
const E2EEnv = "ROWPICK_E2E_TEST"

// rebuildInterval limits how often the list is rebuilt while a load is running
const rebuildInterval = 250 * time.Millisecond

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	logger *zap.Logger

	width       int
	height      int
	help        help.Model
	inPagerMode bool
	e2e         bool
	ready       bool
	lastRebuild time.Time

	// Sequence numbers of the running load and the last completed one
	load     uint64
	doneLoad uint64

	rows         logic.RowStore
	selection    *selection.Service
	filter       *uilogic.RowFilter
	sorter       *uilogic.RowSorter
	navigator    *uilogic.Navigator
	renderer     *views.Renderer
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	pager        *Pager
}

// NewModel creates a new UI model over rows
func NewModel(cfg *config.Config, rows logic.RowStore, bus eventbus.EventBus, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	appState := state.NewAppState()
	appState.ShowEmail = cfg.UISettings.ShowEmail

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		logger:       logger.Named("ui"),
		help:         help.New(),
		e2e:          os.Getenv(E2EEnv) == "1",
		rows:         rows,
		selection:    selection.NewService(bus),
		navigator:    uilogic.NewNavigator(),
		renderer:     views.NewRenderer(cfg.UISettings.RowCacheSize),
		inputHandler: input.New(),
		pager:        NewPager(nil),
	}

	m.selection.SetQueryFunction(appState.IDAt)
	m.filter = uilogic.NewRowFilter(rows.GetRow, m.selection.IsSelected)
	m.sorter = uilogic.NewRowSorter(rows.GetRow)

	m.cmdExecutor = commands.NewExecutor(&commands.CommandContext{
		State:     appState,
		Selection: m.selection,
		Rows:      rows,
		Filter:    m.filter,
		Sorter:    m.sorter,
		Bus:       bus,
	})

	m.rebuild()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Selection returns the selection service backing the list
func (m *Model) Selection() *selection.Service {
	return m.selection
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.navigator.SetViewportHeight(views.ListHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State:     m.state,
			Selection: m.selection,
			Navigator: m.navigator,
		}

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
		// The text input needs cursor blink messages while filtering
		inputCmd := m.inputHandler.Update(msg)
		_, cmd := m.handleNonKeyboardMsg(msg)
		return m, tea.Batch(inputCmd, cmd)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	view := m.renderer.Render(m.viewState())
	if m.e2e && m.ready && m.state.LoadedCount > 0 && !m.state.Loading {
		view += "\n" + readyMarker
	}
	return view
}

func (m *Model) viewState() views.ViewState {
	start, end := m.navigator.VisibleRange()
	rowViews := make([]views.RowView, 0, end-start)
	for i := start; i < end; i++ {
		id, ok := m.state.IDAt(i)
		if !ok {
			break
		}
		row, ok := m.rows.GetRow(id)
		if !ok {
			row = domain.Row{ID: id}
		}
		rowViews = append(rowViews, views.RowView{
			Row:      row,
			Checkbox: m.selection.CheckboxProps(id),
			Focused:  i == m.navigator.Cursor(),
		})
	}

	inputMode := "normal"
	textInput := ""
	if m.inputHandler.GetMode() == inputtypes.ModeFilter {
		inputMode = "filter"
		textInput = m.inputHandler.GetTextInput().View()
	}

	return views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Rows:           rowViews,
		ViewportOffset: start,
		VisibleCount:   len(m.state.VisibleIDs),
		Bulk:           m.selection.BulkProps(),
		BulkState:      m.selection.Bulk(),
		SelectedCount:  m.selection.GetCount(),
		Version:        m.selection.Version(),
		Loading:        m.state.Loading,
		Loaded:         m.state.LoadedCount,
		Requested:      m.state.Requested,
		FilterQuery:    m.state.FilterQuery,
		InputMode:      inputMode,
		TextInput:      textInput,
		SortMode:       m.state.SortMode.String(),
		StatusMessage:  m.state.StatusMessage,
		ShowEmail:      m.state.ShowEmail,
		HelpModel:      m.help,
		Keys:           m.inputHandler.Keys(),
	}
}

// rebuild recomputes the visible rows and keeps the cursor in range
func (m *Model) rebuild() {
	m.cmdExecutor.ExecuteRebuildView()
	m.navigator.SetTotal(len(m.state.VisibleIDs))
	m.lastRebuild = time.Now()
}

// processAction executes a single input action
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SelectAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.Cursor()
		}
		return m.cmdExecutor.ExecuteToggleSelection(index)

	case inputtypes.SelectRangeAction:
		if m.selection.LastSelected() < 0 {
			m.selection.SetChecked(m.navigator.Cursor(), true)
		}
		m.navigate(a.Direction)
		return m.cmdExecutor.ExecuteSelectRange(m.navigator.Cursor())

	case inputtypes.ToggleAllAction:
		return m.cmdExecutor.ExecuteToggleAll()

	case inputtypes.DeselectAllAction:
		return m.cmdExecutor.ExecuteDeselectAll()

	case inputtypes.ClearSelectionAction:
		return m.cmdExecutor.ExecuteClearSelection()

	case inputtypes.UpdateTextAction:
		// Refilter as the user types
		m.state.FilterQuery = a.Text
		m.rebuild()

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeFilter {
			m.state.FilterQuery = a.Text
			m.rebuild()
			m.navigator.Home()
		}

	case inputtypes.CancelTextAction:
		if m.state.IsFiltered() {
			m.state.FilterQuery = ""
			m.rebuild()
		}

	case inputtypes.CycleSortAction:
		m.state.SortMode = m.state.SortMode.Next()
		m.rebuild()
		m.state.StatusMessage = fmt.Sprintf("Sorted by %s", m.state.SortMode)
		return clearStatusAfter(2 * time.Second)

	case inputtypes.ShowSelectionAction:
		if !m.selection.HasSelection() {
			m.state.StatusMessage = "Nothing selected"
			return clearStatusAfter(2 * time.Second)
		}
		content := views.RenderSelectionExport(m.selection.GetSelected(), m.rows.GetRow)
		return m.showPager("selection", content)

	case inputtypes.ToggleHelpAction:
		return m.showPager("help", views.RenderHelpContent(m.inputHandler.Keys()))

	case inputtypes.QuitAction:
		m.logger.Info("quit", zap.Bool("force", a.Force), zap.Int("selected", m.selection.GetCount()))
		return tea.Quit
	}

	return nil
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.navigator.Up()
	case "down":
		m.navigator.Down()
	case "pageup":
		m.navigator.PageUp()
	case "pagedown":
		m.navigator.PageDown()
	case "home":
		m.navigator.Home()
	case "end":
		m.navigator.End()
	}
}

// showPager runs the pager outside the update loop
func (m *Model) showPager(what, content string) tea.Cmd {
	program := m.pager.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}
		err := m.pager.Show(content)
		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{what: what, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			m.logger.Warn("pager failed", zap.String("what", msg.what), zap.Error(msg.err))
			m.state.StatusMessage = fmt.Sprintf("Could not open %s: %v", msg.what, msg.err)
			return m, clearStatusAfter(3 * time.Second)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil
	}

	return m, nil
}

// handleEvent applies data source events to the list. Events carry the
// sequence number of their load; events of a load that already completed
// are ignored.
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		if e.Load <= m.doneLoad {
			return nil
		}
		m.load = e.Load
		m.state.Loading = true
		m.state.Requested = e.Requested
		m.state.LoadedCount = 0

	case eventbus.RowsLoadedBatchEvent:
		if e.Load <= m.doneLoad {
			return nil
		}
		if e.Loaded > m.state.LoadedCount {
			m.state.LoadedCount = e.Loaded
		}
		if m.state.Loading && time.Since(m.lastRebuild) >= rebuildInterval {
			m.rebuild()
		}

	case eventbus.LoadCompletedEvent:
		if e.Load < m.doneLoad {
			return nil
		}
		m.doneLoad = e.Load
		m.state.Loading = false
		m.state.LoadedCount = e.Count
		m.renderer.Rows().Purge()
		m.rebuild()
		if e.Canceled {
			m.state.StatusMessage = fmt.Sprintf("Load canceled after %d rows", e.Count)
		} else {
			m.state.StatusMessage = fmt.Sprintf("Loaded %d rows", e.Count)
		}
		return clearStatusAfter(3 * time.Second)

	case eventbus.ConfigSavedEvent:
		m.logger.Info("config saved", zap.String("path", e.Path))
		m.state.StatusMessage = fmt.Sprintf("Wrote default config to %s", e.Path)
		return clearStatusAfter(3 * time.Second)

	case eventbus.AppReadyEvent:
		m.ready = true

	case eventbus.ErrorEvent:
		m.logger.Error("background error", zap.String("message", e.Message), zap.Error(e.Err))
		m.state.StatusMessage = e.Message
		return clearStatusAfter(5 * time.Second)
	}
	return nil
}
