package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/doratracker/internal/catalog"
)

const (
	defaultWidth  = 100
	defaultHeight = 32
	sidebarWidth  = 36

	headerHeight = 1
	// client rows start below the search line and its divider
	listTop      = 2
	rowHeight    = 4
	tabBarHeight = 2
)

// App is the dashboard model. It owns the two pieces of view state, the
// selected client and the active tab, plus terminal-only state.
type App struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
	keys    keyMap
	help    help.Model
	search  textinput.Model
	detail  viewport.Model

	selected  int // 0 means no client selected
	activeTab Tab
	cursor    int
	visible   []catalog.Client
	searching bool

	width  int
	height int
	status string

	markdownStyle string
	renderer      *glamour.TermRenderer
	rendererWidth int
}

// Options configures a new App.
type Options struct {
	DefaultTab    Tab
	InitialClient int
	MarkdownStyle string
	Logger        *zap.Logger
}

func New(cat *catalog.Catalog, opts Options) *App {
	if cat == nil {
		cat = catalog.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	style := opts.MarkdownStyle
	if style == "" {
		style = "dark"
	}

	ti := textinput.New()
	ti.Placeholder = "Search engagements..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = sidebarWidth - 4

	a := &App{
		catalog:       cat,
		logger:        logger,
		keys:          defaultKeyMap(),
		help:          help.New(),
		search:        ti,
		detail:        viewport.New(defaultWidth-sidebarWidth-1, defaultHeight-headerHeight),
		activeTab:     opts.DefaultTab,
		width:         defaultWidth,
		height:        defaultHeight,
		markdownStyle: style,
	}
	if !a.activeTab.valid() {
		a.activeTab = TabOverview
	}
	a.visible = cat.Clients()
	if opts.InitialClient != 0 {
		a.Select(opts.InitialClient)
	}
	a.refresh()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Selected returns the selected client id, if any.
func (a *App) Selected() (int, bool) {
	return a.selected, a.selected != 0
}

// ActiveTab returns the active tab. It survives client switches.
func (a *App) ActiveTab() Tab {
	return a.activeTab
}

// Status returns the status line text.
func (a *App) Status() string {
	return a.status
}

// Select marks client id as selected. The active tab is left untouched.
// Ids not present in the catalog are ignored.
func (a *App) Select(id int) {
	if _, ok := a.catalog.Client(id); !ok {
		a.logger.Debug("select ignored", zap.Int("client", id))
		return
	}
	if a.selected != id {
		a.detail.GotoTop()
	}
	a.selected = id
	for i, cl := range a.visible {
		if cl.ID == id {
			a.cursor = i
		}
	}
	a.logger.Debug("client selected", zap.Int("client", id), zap.String("tab", a.activeTab.ID()))
	a.refresh()
}

// SetTab activates t. Setting the current tab again is a no-op.
func (a *App) SetTab(t Tab) {
	if !t.valid() {
		return
	}
	if a.activeTab != t {
		a.detail.GotoTop()
	}
	a.activeTab = t
	a.logger.Debug("tab switched", zap.String("tab", t.ID()))
	a.refresh()
}

// SetSize resizes the layout the way a tea.WindowSizeMsg does.
func (a *App) SetSize(width, height int) {
	a.width = max(width, sidebarWidth+20)
	a.height = max(height, headerHeight+tabBarHeight+8)
	a.help.Width = a.width
	a.refresh()
}

// SetSearch applies query as the client filter.
func (a *App) SetSearch(query string) {
	a.search.SetValue(query)
	a.applyFilter()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(m.Width, m.Height)
	case tea.MouseMsg:
		a.handleMouse(m)
	case tea.KeyMsg:
		if a.searching {
			return a, a.handleSearchKey(m)
		}
		return a, a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Quit):
		return tea.Quit
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Select):
		if a.cursor < len(a.visible) {
			a.Select(a.visible[a.cursor].ID)
		}
	case key.Matches(m, a.keys.Tab1):
		a.SetTab(TabOverview)
	case key.Matches(m, a.keys.Tab2):
		a.SetTab(TabGenAI)
	case key.Matches(m, a.keys.Tab3):
		a.SetTab(TabDora)
	case key.Matches(m, a.keys.Tab4):
		a.SetTab(TabFeedback)
	case key.Matches(m, a.keys.NextTab):
		a.SetTab(a.activeTab.next())
	case key.Matches(m, a.keys.PrevTab):
		a.SetTab(a.activeTab.prev())
	case key.Matches(m, a.keys.Search):
		a.searching = true
		return a.search.Focus()
	case key.Matches(m, a.keys.Add):
		a.status = addUnavailable
		a.logger.Info("add engagement requested")
	case key.Matches(m, a.keys.PageUp):
		a.detail.LineUp(a.detail.Height)
	case key.Matches(m, a.keys.PageDown):
		a.detail.LineDown(a.detail.Height)
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		a.refresh()
	}
	return nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) tea.Cmd {
	switch m.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		a.searching = false
		a.search.Blur()
		a.SetSearch("")
		return nil
	case tea.KeyEnter:
		a.searching = false
		a.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	a.applyFilter()
	return cmd
}

func (a *App) handleMouse(m tea.MouseMsg) {
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return
	}
	if m.X < sidebarWidth {
		if idx, ok := rowAt(m.Y); ok && idx < len(a.visible) {
			a.cursor = idx
			a.Select(a.visible[idx].ID)
		}
		return
	}
	if a.selected == 0 || m.Y != headerHeight {
		return
	}
	if t, ok := tabAt(m.X - sidebarWidth - 1); ok {
		a.SetTab(t)
	}
}

// rowAt maps a screen row to an index in the visible client list.
func rowAt(y int) (int, bool) {
	y -= headerHeight + listTop
	if y < 0 {
		return 0, false
	}
	return y / rowHeight, true
}

// applyFilter recomputes the visible rows. The selection is kept even when
// the selected client is filtered out.
func (a *App) applyFilter() {
	a.visible = a.catalog.Search(a.search.Value())
	if a.cursor >= len(a.visible) {
		a.cursor = max(len(a.visible)-1, 0)
	}
	a.refresh()
}

// refresh re-derives the detail pane from the current state.
func (a *App) refresh() {
	mainWidth := a.width - sidebarWidth - 1
	contentHeight := a.bodyHeight()
	if a.selected != 0 {
		contentHeight -= tabBarHeight
	}
	a.detail.Width = mainWidth
	a.detail.Height = max(contentHeight, 1)
	a.detail.SetContent(a.renderDetail(mainWidth))
}

// bodyHeight is the height left between the header and the footer.
func (a *App) bodyHeight() int {
	return max(a.height-headerHeight-a.footerHeight(), 1)
}

func (a *App) footerHeight() int {
	return lipgloss.Height(a.help.View(a.keys)) + 1
}

// markdown returns a renderer for the current width, rebuilding it on resize.
func (a *App) markdown(width int) *glamour.TermRenderer {
	if a.renderer != nil && a.rendererWidth == width {
		return a.renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(a.markdownStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		a.logger.Warn("markdown renderer", zap.Error(err))
		return nil
	}
	a.renderer, a.rendererWidth = r, width
	return r
}

const addUnavailable = "Adding engagements is not available in this build"
