package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	entry := Parse(`2026-10-17T09:12:01Z WARN nasa api error status=500 reason="upstream down"`)
	if entry.Timestamp != "2026-10-17T09:12:01Z" || entry.Level != "WARN" {
		t.Fatalf("Parse() = %+v", entry)
	}
	if entry.Message != `nasa api error status=500 reason="upstream down"` {
		t.Fatalf("Message = %q", entry.Message)
	}

	plain := Parse("  continuation")
	if plain.Level != "" || plain.Message != "  continuation" {
		t.Fatalf("Parse(plain) = %+v", plain)
	}
}

func TestFilter(t *testing.T) {
	lines := []string{
		"2026-10-17T09:12:00Z DEBU cache miss key=a",
		"2026-10-17T09:12:01Z INFO search finished",
		"2026-10-17T09:12:02Z ERRO asset failed",
		"  stack detail",
		"2026-10-17T09:12:03Z DEBU cache hit key=b",
		"  hidden detail",
	}

	tests := []struct {
		level string
		want  []string
	}{
		{"debug", lines},
		{"bogus", lines},
		{"info", []string{lines[1], lines[2], lines[3]}},
		{"error", []string{lines[2], lines[3]}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got := Filter(lines, tt.level)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func TestColorizeLinePlainWhenColorDisabled(t *testing.T) {
	withColor(t, false)
	line := "2026-10-17T09:12:01Z INFO search finished query=apollo"
	if got := ColorizeLine(line); got != line {
		t.Fatalf("ColorizeLine() = %q, want unchanged", got)
	}
}

func TestColorizeLineAddsEscapes(t *testing.T) {
	withColor(t, true)
	got := ColorizeLine("2026-10-17T09:12:01Z ERRO asset failed id=as11-40-5874")
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("ColorizeLine() = %q, want ANSI escapes", got)
	}
	if !strings.Contains(got, "asset failed") || !strings.Contains(got, "as11-40-5874") {
		t.Fatalf("ColorizeLine() lost text: %q", got)
	}
}

func TestColorizeLinesLeavesUnparsedLines(t *testing.T) {
	withColor(t, true)
	got := ColorizeLines([]string{"", "   detail"})
	if got[0] != "" || got[1] != "   detail" {
		t.Fatalf("ColorizeLines() = %q", got)
	}
}
