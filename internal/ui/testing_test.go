package ui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/five82/nasaimager/internal/nasa"
)

// fakeFetcher serves canned results and records every call.
type fakeFetcher struct {
	mu sync.Mutex

	results   map[string][]nasa.ImageSummary
	searchErr error
	assets    map[string]string
	assetErr  error

	searches []string
	assetIDs []string
}

func (f *fakeFetcher) Search(ctx context.Context, query string) ([]nasa.ImageSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, query)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results[query], nil
}

func (f *fakeFetcher) Asset(ctx context.Context, assetID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assetIDs = append(f.assetIDs, assetID)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.assetErr != nil {
		return "", f.assetErr
	}
	return f.assets[assetID], nil
}

func (f *fakeFetcher) searchCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

func apolloFetcher() *fakeFetcher {
	return &fakeFetcher{
		results: map[string][]nasa.ImageSummary{
			"apollo 11": {
				{
					Title:        "Apollo 11 Mission Image",
					Description:  "Buzz Aldrin on the lunar surface.",
					ThumbnailURL: "https://images-assets.nasa.gov/image/as11-40-5874/as11-40-5874~thumb.jpg",
					Photographer: "Neil Armstrong",
					AssetID:      "as11-40-5874",
				},
				{
					Title:        "Apollo 11 Launch",
					ThumbnailURL: "https://images-assets.nasa.gov/image/s69-39961/s69-39961~thumb.jpg",
					Photographer: "Uncredited",
					AssetID:      "s69-39961",
				},
			},
		},
		assets: map[string]string{
			"as11-40-5874": "https://images-assets.nasa.gov/image/as11-40-5874/as11-40-5874~orig.jpg",
		},
	}
}

// plainColors renders every style without escape sequences.
func plainColors(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

// runCmd executes cmd and any batched children, returning the messages
// they produce. Timer driven commands such as cursor blinks never finish
// within the deadline and are skipped.
func runCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(100 * time.Millisecond):
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// send delivers msg and then feeds back any fetch or clipboard results the
// resulting commands produce, the way the Bubble Tea runtime would.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	for _, out := range runCmd(t, cmd) {
		switch out.(type) {
		case searchResultMsg, assetResultMsg, copyResultMsg:
			m = send(t, m, out)
		}
	}
	return m
}

func newSizedModel(t *testing.T, opts Options) Model {
	t.Helper()
	plainColors(t)
	m := New(opts)
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	return send(t, m, tea.KeyMsg{Type: k})
}

func render(m Model) string {
	return ansi.Strip(m.View())
}

func mustContain(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func mustNotContain(t *testing.T, out string, unwanted ...string) {
	t.Helper()
	for _, s := range unwanted {
		if strings.Contains(out, s) {
			t.Fatalf("output unexpectedly contains %q:\n%s", s, out)
		}
	}
}
