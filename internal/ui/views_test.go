package ui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/nasaimager/internal/loader"
	"github.com/five82/nasaimager/internal/nasa"
)

func searchResults(msgs []tea.Msg) []searchResultMsg {
	var out []searchResultMsg
	for _, msg := range msgs {
		if r, ok := msg.(searchResultMsg); ok {
			out = append(out, r)
		}
	}
	return out
}

func TestSearchView_StaleResultIgnored(t *testing.T) {
	f := &fakeFetcher{results: map[string][]nasa.ImageSummary{
		"moon": {{Title: "Moon", AssetID: "moon-1", Photographer: "Uncredited"}},
		"mars": {{Title: "Mars", AssetID: "mars-1", Photographer: "Uncredited"}},
	}}
	v := NewSearchView(f, nil)
	ctx := context.Background()

	first := v.Load(ctx, "moon")
	second := v.Load(ctx, "mars")

	newer := searchResults(runCmd(t, second))
	older := searchResults(runCmd(t, first))
	if len(newer) != 1 || len(older) != 1 {
		t.Fatalf("got %d newer and %d older results, want 1 each", len(newer), len(older))
	}

	v.Update(newer[0])
	v.Update(older[0])

	st := v.State()
	if st.Status != loader.StatusSuccess {
		t.Fatalf("status = %v, want Success (err %v)", st.Status, st.Err)
	}
	if len(st.Result) != 1 || st.Result[0].AssetID != "mars-1" {
		t.Fatalf("result = %+v, want the mars search", st.Result)
	}
}

func TestSearchView_CancelledSupersededFetchNeverSurfaces(t *testing.T) {
	f := &fakeFetcher{results: map[string][]nasa.ImageSummary{
		"mars": {{Title: "Mars", AssetID: "mars-1"}},
	}}
	v := NewSearchView(f, nil)
	ctx := context.Background()

	first := v.Load(ctx, "moon")
	second := v.Load(ctx, "mars")

	// The first fetch ran after being superseded, so its context is done.
	older := searchResults(runCmd(t, first))
	if len(older) != 1 || older[0].err == nil {
		t.Fatalf("superseded fetch = %+v, want a cancellation error", older)
	}
	v.Update(older[0])
	if v.State().Status != loader.StatusLoading {
		t.Fatalf("status = %v after stale failure, want Loading", v.State().Status)
	}

	for _, r := range searchResults(runCmd(t, second)) {
		v.Update(r)
	}
	if v.State().Status != loader.StatusSuccess {
		t.Fatalf("status = %v, want Success", v.State().Status)
	}
}

func TestSearchView_EmptyQueryResets(t *testing.T) {
	f := &fakeFetcher{}
	v := NewSearchView(f, nil)

	v.Load(context.Background(), "moon")
	if cmd := v.Load(context.Background(), ""); cmd != nil {
		t.Fatalf("Load(\"\") returned a command")
	}
	if v.State().Status != loader.StatusInitial {
		t.Fatalf("status = %v, want Initial", v.State().Status)
	}
	if len(f.searchCalls()) != 0 {
		t.Fatalf("fetcher called: %v", f.searchCalls())
	}
}

func TestSearchView_GridNavigation(t *testing.T) {
	images := make([]nasa.ImageSummary, 5)
	for i := range images {
		images[i] = nasa.ImageSummary{Title: fmt.Sprintf("Image %d", i), AssetID: fmt.Sprintf("id-%d", i)}
	}
	v := NewSearchView(&fakeFetcher{results: map[string][]nasa.ImageSummary{"grid": images}}, nil)
	for _, r := range searchResults(runCmd(t, v.Load(context.Background(), "grid"))) {
		v.Update(r)
	}

	const width = 118 // three columns
	steps := []struct {
		name string
		move func()
		want string
	}{
		{"start", func() {}, "id-0"},
		{"tab", func() { v.Move(1) }, "id-1"},
		{"down", func() { v.MoveRow(1, width) }, "id-4"},
		{"down clamps", func() { v.MoveRow(1, width) }, "id-4"},
		{"up", func() { v.MoveRow(-1, width) }, "id-1"},
		{"shift+tab", func() { v.Move(-1) }, "id-0"},
		{"shift+tab clamps", func() { v.Move(-1) }, "id-0"},
	}
	for _, step := range steps {
		step.move()
		got, ok := v.Selected()
		if !ok || got.AssetID != step.want {
			t.Fatalf("%s: selected = %q (ok=%v), want %q", step.name, got.AssetID, ok, step.want)
		}
	}
}

func TestSearchView_SelectedWithoutResults(t *testing.T) {
	v := NewSearchView(&fakeFetcher{}, nil)
	if _, ok := v.Selected(); ok {
		t.Fatalf("Selected() ok on initial view")
	}
	v.Move(1) // must not panic
}

func TestSearchView_RendersEachState(t *testing.T) {
	plainColors(t)
	styles := ThemeFor(false).Styles()
	f := &fakeFetcher{}
	v := NewSearchView(f, nil)

	mustContain(t, v.View(styles, 100, 30), "Initialising")

	cmd := v.Load(context.Background(), "moon")
	mustContain(t, v.View(styles, 100, 30), "Loading...")

	f.searchErr = fmt.Errorf("decode response: %w", nasa.ErrMalformedResponse)
	for _, r := range searchResults(runCmd(t, cmd)) {
		v.Update(r)
	}
	mustContain(t, v.View(styles, 100, 30), "Oops!", "decode response")
}

func TestDetailView_StaleResultIgnored(t *testing.T) {
	f := &fakeFetcher{assets: map[string]string{
		"a": "https://example.test/a~orig.jpg",
		"b": "https://example.test/b~orig.jpg",
	}}
	v := NewDetailView(f, nil, func(string) error { return nil })
	ctx := context.Background()

	first := v.Load(ctx, "a", nil)
	second := v.Load(ctx, "b", nil)

	var results []assetResultMsg
	for _, cmd := range []tea.Cmd{second, first} {
		for _, msg := range runCmd(t, cmd) {
			if r, ok := msg.(assetResultMsg); ok {
				results = append(results, r)
			}
		}
	}
	for _, r := range results {
		v.Update(r)
	}

	url, ok := v.State().Value()
	if !ok || url != "https://example.test/b~orig.jpg" {
		t.Fatalf("state = %+v, want b's url", v.State())
	}
}

func TestDetailView_CopyBeforeLoadIsNoop(t *testing.T) {
	called := false
	v := NewDetailView(&fakeFetcher{}, nil, func(string) error { called = true; return nil })
	if cmd := v.Copy(); cmd != nil {
		t.Fatalf("Copy() before load returned a command")
	}
	if called {
		t.Fatalf("clipboard written before load")
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{20, 1},
		{CardMinWidth * 2, 2},
		{118, 3},
		{500, GridMaxColumns},
	}
	for _, tt := range tests {
		if got := gridColumns(tt.width); got != tt.want {
			t.Fatalf("gridColumns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("https://images-assets.nasa.gov/image/x/x~thumb.jpg", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("got %q (%d runes), want 20", got, len([]rune(got)))
	}
	if got[:5] != "https" {
		t.Fatalf("truncateMiddle dropped the head: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Apollo 11 Mission Image", 10); got != "Apollo 11…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q, want short", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate zero width = %q", got)
	}
}
