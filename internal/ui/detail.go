package ui

import (
	"context"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/five82/nasaimager/internal/loader"
	"github.com/five82/nasaimager/internal/nasa"
)

// assetResultMsg carries the outcome of one asset fetch.
type assetResultMsg struct {
	token   loader.Token
	assetID string
	url     string
	err     error
}

// copyResultMsg reports a clipboard write.
type copyResultMsg struct {
	url string
	err error
}

// DetailView fetches and renders the full-resolution URL of one asset.
type DetailView struct {
	fetcher nasa.Fetcher
	logger  *log.Logger
	copyFn  func(string) error

	tracker loader.Tracker[string]
	assetID string
	summary *nasa.ImageSummary
	cancel  context.CancelFunc
	spinner spinner.Model

	status    string
	statusErr bool
}

// NewDetailView creates a detail view backed by fetcher. A nil copyFn
// writes to the system clipboard.
func NewDetailView(fetcher nasa.Fetcher, logger *log.Logger, copyFn func(string) error) *DetailView {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	return &DetailView{
		fetcher: fetcher,
		logger:  logger,
		copyFn:  copyFn,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// State returns the current request state.
func (v *DetailView) State() loader.State[string] {
	return v.tracker.State()
}

// Load fetches the asset manifest for assetID, superseding any fetch in
// flight. summary, when known, supplies the metadata shown under the URL.
// An empty assetID cancels and resets the view.
func (v *DetailView) Load(ctx context.Context, assetID string, summary *nasa.ImageSummary) tea.Cmd {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.assetID = assetID
	v.summary = summary
	v.status = ""
	v.statusErr = false

	if assetID == "" {
		v.tracker.Reset()
		return nil
	}

	wasLoading := v.tracker.State().Status == loader.StatusLoading
	token := v.tracker.Begin()
	reqCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.logger.Debug("asset fetch started", "asset", assetID, "token", token)

	fetcher := v.fetcher
	fetch := func() tea.Msg {
		defer cancel()
		url, err := fetcher.Asset(reqCtx, assetID)
		return assetResultMsg{token: token, assetID: assetID, url: url, err: err}
	}
	if wasLoading {
		return fetch
	}
	return tea.Batch(fetch, v.spinner.Tick)
}

// Copy writes the resolved URL to the clipboard. It does nothing until the
// URL has loaded.
func (v *DetailView) Copy() tea.Cmd {
	url, ok := v.tracker.State().Value()
	if !ok {
		return nil
	}
	copyFn := v.copyFn
	return func() tea.Msg {
		return copyResultMsg{url: url, err: copyFn(url)}
	}
}

// Update applies fetch results, clipboard outcomes and spinner ticks.
func (v *DetailView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case assetResultMsg:
		v.resolve(msg)
		return nil

	case copyResultMsg:
		if msg.err != nil {
			v.logger.Warn("clipboard write failed", "error", msg.err)
			v.status = "Copy failed: " + msg.err.Error()
			v.statusErr = true
			return nil
		}
		v.status = "Copied to clipboard"
		v.statusErr = false
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

func (v *DetailView) resolve(msg assetResultMsg) {
	intent := loader.Success(msg.url)
	if msg.err != nil {
		intent = loader.Failure[string](msg.err)
	}
	if !v.tracker.Resolve(msg.token, intent) {
		v.logger.Debug("stale asset result dropped", "asset", msg.assetID, "token", msg.token)
		return
	}
	v.cancel = nil
	if msg.err != nil {
		v.logger.Warn("asset fetch failed", "asset", msg.assetID, "error", msg.err)
		return
	}
	v.logger.Info("asset resolved", "asset", msg.assetID, "url", msg.url)
}

// View renders the header, back hint and the current request state.
func (v *DetailView) View(styles Styles, width, height int) string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("NASA Asset "+v.assetID),
		styles.FaintText.Render("← esc back to results"),
		"",
	)

	st := v.tracker.State()
	var body string
	switch st.Status {
	case loader.StatusLoading:
		body = v.spinner.View() + " " + styles.MutedText.Render("Loading...")
	case loader.StatusFailure:
		body = renderFailure(styles, st.Message(), width)
	case loader.StatusSuccess:
		body = v.renderAsset(styles, st.Result, width)
	default:
		body = styles.FaintText.Render("Initialising")
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (v *DetailView) renderAsset(styles Styles, url string, width int) string {
	inner := max(10, min(width, DetailWrapWidth)-4)

	lines := []string{
		styles.MutedText.Render("Full resolution"),
		styles.AccentText.Render(wrap(url, inner)),
	}
	if v.summary != nil {
		lines = append(lines, "",
			styles.Title.Render(wrap(v.summary.Title, inner)),
			styles.MutedText.Render("by "+v.summary.Photographer),
		)
		if v.summary.Description != "" {
			lines = append(lines, "", styles.Text.Render(wrap(v.summary.Description, inner)))
		}
	}
	panel := styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	if v.status == "" {
		return panel
	}
	status := styles.SuccessText.Render(v.status)
	if v.statusErr {
		status = styles.DangerText.Render(v.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panel, status)
}
