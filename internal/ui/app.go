package ui

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/five82/nasaimager/internal/nasa"
	"github.com/five82/nasaimager/internal/state"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Fetcher nasa.Fetcher
	Logger  *log.Logger
	Dark    bool

	// Clipboard overrides the system clipboard writer.
	Clipboard func(string) error
}

// Model is the root application state for Bubble Tea. It owns the
// session and decides which view is visible.
type Model struct {
	ctx    context.Context
	logger *log.Logger

	// UI state
	session state.Session
	theme   Theme
	keys    keyMap
	help    help.Model
	input   textinput.Model
	width   int
	height  int
	ready   bool

	// Views
	search *SearchView
	detail *DetailView
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	theme := ThemeFor(opts.Dark)

	ti := textinput.New()
	ti.Placeholder = "Search NASA images..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 200
	ti.Focus()
	applyInputStyles(&ti, theme)

	return Model{
		ctx:     ctx,
		logger:  logger,
		session: state.NewSession(opts.Dark),
		theme:   theme,
		keys:    DefaultKeyMap(),
		help:    newHelp(theme),
		input:   ti,
		search:  NewSearchView(opts.Fetcher, logger.WithPrefix("search")),
		detail:  NewDetailView(opts.Fetcher, logger.WithPrefix("detail"), opts.Clipboard),
	}
}

// Session returns the shared UI state.
func (m Model) Session() state.Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(10, min(msg.Width, DetailWrapWidth)-8)
		m.ready = true
		return m, nil

	case searchResultMsg:
		return m, m.search.Update(msg)

	case assetResultMsg, copyResultMsg:
		return m, m.detail.Update(msg)

	case spinner.TickMsg:
		return m, tea.Batch(m.search.Update(msg), m.detail.Update(msg))
	}

	// Cursor blink and anything else the text input understands.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initialising..."
	}

	styles := m.theme.Styles()
	header := m.renderHeader(styles)
	footer := m.renderFooter(styles)
	bodyHeight := max(1, m.height-lipgloss.Height(header)-lipgloss.Height(footer)-1)
	bodyWidth := max(1, m.width-2)

	var body string
	if m.session.HasAsset() {
		body = m.detail.View(styles, bodyWidth, bodyHeight)
	} else {
		body = m.renderSearchScreen(styles, bodyWidth, bodyHeight)
	}
	body = lipgloss.NewStyle().
		Padding(1, 1, 0, 1).
		Height(bodyHeight).
		MaxHeight(bodyHeight + 1).
		Render(body)

	page := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return styles.Background.Width(m.width).Height(m.height).MaxHeight(m.height).Render(page)
}

// renderSearchScreen renders the search bar and, for a non-empty query,
// the result view beneath it.
func (m Model) renderSearchScreen(styles Styles, width, height int) string {
	title := styles.Title.Render("Search Images")
	bar := styles.Input.Render(m.input.View())
	if m.session.Query() == "" {
		return lipgloss.JoinVertical(lipgloss.Left, title, bar)
	}
	used := lipgloss.Height(title) + lipgloss.Height(bar) + 1
	results := m.search.View(styles, width, max(CardHeight, height-used))
	return lipgloss.JoinVertical(lipgloss.Left, title, bar, "", results)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	}

	if m.session.HasAsset() {
		return m.handleDetailKey(msg)
	}
	return m.handleSearchKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		return m, m.syncQuery()

	case key.Matches(msg, m.keys.Select):
		img, ok := m.search.Selected()
		if !ok {
			return m, nil
		}
		return m, m.selectAsset(img)

	case key.Matches(msg, m.keys.Up):
		m.search.MoveRow(-1, m.width-2)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.search.MoveRow(1, m.width-2)
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.search.Move(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.search.Move(-1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, tea.Batch(cmd, m.syncQuery())
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, m.back()

	case key.Matches(msg, m.keys.Copy):
		return m, m.detail.Copy()

	case key.Matches(msg, m.keys.QuitDetail):
		return m, tea.Quit
	}
	return m, nil
}

// syncQuery pushes the search bar value into the session and reloads the
// search view when it changed.
func (m *Model) syncQuery() tea.Cmd {
	if !m.session.SetQuery(m.input.Value()) {
		return nil
	}
	return m.search.Load(m.ctx, m.session.Query())
}

// selectAsset switches to the detail screen for img.
func (m *Model) selectAsset(img nasa.ImageSummary) tea.Cmd {
	if !m.session.SetAssetID(img.AssetID) {
		return nil
	}
	m.input.Blur()
	summary := img
	return m.detail.Load(m.ctx, img.AssetID, &summary)
}

// back clears the selected asset, returning to the search screen with the
// query and its results untouched.
func (m *Model) back() tea.Cmd {
	m.session.SetAssetID("")
	m.detail.Load(m.ctx, "", nil)
	return m.input.Focus()
}

// reload refetches whatever the visible view shows.
func (m *Model) reload() tea.Cmd {
	if m.session.HasAsset() {
		return m.detail.Load(m.ctx, m.session.AssetID(), m.detail.summary)
	}
	if m.session.Query() == "" {
		return nil
	}
	return m.search.Load(m.ctx, m.session.Query())
}

func (m *Model) toggleTheme() {
	m.session.ToggleTheme()
	m.theme = ThemeFor(m.session.Dark())
	applyInputStyles(&m.input, m.theme)
	applyHelpStyles(&m.help, m.theme)
	m.logger.Debug("theme toggled", "dark", m.session.Dark())
}

func applyInputStyles(ti *textinput.Model, t Theme) {
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Fetcher == nil {
		return errors.New("ui requires a fetcher")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
