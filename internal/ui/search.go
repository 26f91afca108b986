package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/five82/nasaimager/internal/loader"
	"github.com/five82/nasaimager/internal/nasa"
)

// searchResultMsg carries the outcome of one search fetch.
type searchResultMsg struct {
	token  loader.Token
	query  string
	images []nasa.ImageSummary
	err    error
}

// SearchView fetches and renders the result grid for the current query.
type SearchView struct {
	fetcher nasa.Fetcher
	logger  *log.Logger

	tracker  loader.Tracker[[]nasa.ImageSummary]
	query    string
	cancel   context.CancelFunc
	spinner  spinner.Model
	selected int
}

// NewSearchView creates a search view backed by fetcher.
func NewSearchView(fetcher nasa.Fetcher, logger *log.Logger) *SearchView {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SearchView{
		fetcher: fetcher,
		logger:  logger,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// State returns the current request state.
func (v *SearchView) State() loader.State[[]nasa.ImageSummary] {
	return v.tracker.State()
}

// Load starts a search for query, superseding any fetch in flight. An
// empty query issues no fetch and returns the view to its initial state.
func (v *SearchView) Load(ctx context.Context, query string) tea.Cmd {
	v.stop()
	v.query = query
	v.selected = 0

	if query == "" {
		v.tracker.Reset()
		return nil
	}

	wasLoading := v.tracker.State().Status == loader.StatusLoading
	token := v.tracker.Begin()
	reqCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.logger.Debug("search started", "query", query, "token", token)

	fetcher := v.fetcher
	fetch := func() tea.Msg {
		defer cancel()
		images, err := fetcher.Search(reqCtx, query)
		return searchResultMsg{token: token, query: query, images: images, err: err}
	}
	if wasLoading {
		return fetch
	}
	return tea.Batch(fetch, v.spinner.Tick)
}

// stop cancels the fetch in flight, if any.
func (v *SearchView) stop() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// Update applies fetch results and spinner ticks.
func (v *SearchView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case searchResultMsg:
		v.resolve(msg)
		return nil

	case spinner.TickMsg:
		if v.tracker.State().Status != loader.StatusLoading {
			return nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (v *SearchView) resolve(msg searchResultMsg) {
	intent := loader.Success(msg.images)
	if msg.err != nil {
		intent = loader.Failure[[]nasa.ImageSummary](msg.err)
	}
	if !v.tracker.Resolve(msg.token, intent) {
		v.logger.Debug("stale search result dropped", "query", msg.query, "token", msg.token)
		return
	}
	v.cancel = nil
	if msg.err != nil {
		v.logger.Warn("search failed", "query", msg.query, "error", msg.err)
		return
	}
	v.logger.Info("search resolved", "query", msg.query, "items", len(msg.images))
}

// Move shifts the selection by delta cards, clamped to the result list.
func (v *SearchView) Move(delta int) {
	images, ok := v.tracker.State().Value()
	if !ok || len(images) == 0 {
		return
	}
	v.selected = clamp(v.selected+delta, 0, len(images)-1)
}

// MoveRow shifts the selection by whole grid rows for the given width.
func (v *SearchView) MoveRow(rows, width int) {
	v.Move(rows * gridColumns(width))
}

// Selected returns the highlighted image, if results are showing.
func (v *SearchView) Selected() (nasa.ImageSummary, bool) {
	images, ok := v.tracker.State().Value()
	if !ok || len(images) == 0 {
		return nasa.ImageSummary{}, false
	}
	return images[clamp(v.selected, 0, len(images)-1)], true
}

// View renders the view for its current request state.
func (v *SearchView) View(styles Styles, width, height int) string {
	st := v.tracker.State()
	switch st.Status {
	case loader.StatusLoading:
		return v.spinner.View() + " " + styles.MutedText.Render("Loading...")
	case loader.StatusFailure:
		return renderFailure(styles, st.Message(), width)
	case loader.StatusSuccess:
		return v.renderResults(styles, st.Result, width, height)
	default:
		return styles.FaintText.Render("Initialising")
	}
}

func (v *SearchView) renderResults(styles Styles, images []nasa.ImageSummary, width, height int) string {
	heading := styles.Title.Render("Showing search results for " + v.query)
	if len(images) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, heading, "", styles.MutedText.Render("No images found"))
	}

	cols := gridColumns(width)
	cardWidth := width/cols - 2
	rows := (len(images) + cols - 1) / cols
	visibleRows := max(1, (height-3)/CardHeight)

	selRow := clamp(v.selected, 0, len(images)-1) / cols
	firstRow := max(0, selRow-visibleRows+1)
	lastRow := min(rows, firstRow+visibleRows)

	lines := make([]string, 0, lastRow-firstRow)
	for row := firstRow; row < lastRow; row++ {
		cards := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if idx >= len(images) {
				break
			}
			cards = append(cards, renderCard(styles, images[idx], cardWidth, idx == v.selected))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	position := styles.FaintText.Render(fmt.Sprintf("%d images · %d/%d", len(images), v.selected+1, len(images)))
	return lipgloss.JoinVertical(lipgloss.Left, heading, position, strings.Join(lines, "\n"))
}

// renderCard draws one result as a bordered card.
func renderCard(styles Styles, img nasa.ImageSummary, width int, selected bool) string {
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	inner := max(1, width-4)
	title := styles.Title.Render(truncate(img.Title, inner))
	if selected {
		title = truncate(img.Title, inner)
	}
	body := strings.Join([]string{
		title,
		styles.MutedText.Render(truncate("by "+img.Photographer, inner)),
		styles.FaintText.Render(truncateMiddle(img.ThumbnailURL, inner)),
	}, "\n")
	return style.Width(max(1, width-2)).Render(body)
}

// renderFailure draws the shared error panel used by both views.
func renderFailure(styles Styles, message string, width int) string {
	inner := max(10, min(width, DetailWrapWidth)-4)
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.DangerText.Render("Oops!"),
		styles.Text.Render(wrap(message, inner)),
	)
	return styles.ErrorPanel.Render(content)
}
