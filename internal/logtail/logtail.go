package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// Entry is one parsed line of the nasaimager log.
type Entry struct {
	Raw       string
	Timestamp string
	Level     string
	Message   string
}

var linePattern = regexp.MustCompile(`^(\S+)\s+(DEBU|INFO|WARN|ERRO|FATA)\s+(.*)$`)

var levelRank = map[string]int{
	"DEBU": 0,
	"INFO": 1,
	"WARN": 2,
	"ERRO": 3,
	"FATA": 4,
}

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Parse splits a log line into its fields. Lines that do not look like
// logger output come back with only Raw and Message set.
func Parse(line string) Entry {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{Raw: line, Message: line}
	}
	return Entry{Raw: line, Timestamp: m[1], Level: m[2], Message: m[3]}
}

// Filter keeps lines at or above minLevel ("debug", "info", "warn",
// "error"). Unparsed continuation lines follow the verdict of the line
// before them.
func Filter(lines []string, minLevel string) []string {
	minRank, ok := rankFor(minLevel)
	if !ok || minRank == 0 {
		return lines
	}
	out := make([]string, 0, len(lines))
	keep := false
	for _, line := range lines {
		entry := Parse(line)
		if entry.Level != "" {
			keep = levelRank[entry.Level] >= minRank
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}

func rankFor(level string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "debug":
		return 0, true
	case "info":
		return 1, true
	case "warn", "warning":
		return 2, true
	case "error":
		return 3, true
	}
	return 0, false
}

var (
	timestampColor = color.New(color.FgHiBlack)
	levelColors    = map[string]*color.Color{
		"DEBU": color.New(color.FgCyan, color.Bold),
		"INFO": color.New(color.FgGreen, color.Bold),
		"WARN": color.New(color.FgYellow, color.Bold),
		"ERRO": color.New(color.FgRed, color.Bold),
		"FATA": color.New(color.FgMagenta, color.Bold),
	}
	keyColor = color.New(color.FgBlue)
)

var keyPattern = regexp.MustCompile(`(\S+?)=`)

// ColorizeLine applies terminal colors to a log line. Color output honors
// color.NoColor, so piped output stays plain.
func ColorizeLine(line string) string {
	entry := Parse(line)
	if entry.Level == "" {
		return line
	}
	var b strings.Builder
	b.WriteString(timestampColor.Sprint(entry.Timestamp))
	b.WriteByte(' ')
	b.WriteString(levelColors[entry.Level].Sprint(entry.Level))
	b.WriteByte(' ')
	b.WriteString(keyPattern.ReplaceAllStringFunc(entry.Message, func(s string) string {
		return keyColor.Sprint(strings.TrimSuffix(s, "=")) + "="
	}))
	return b.String()
}

// ColorizeLines colorizes each line.
func ColorizeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ColorizeLine(line)
	}
	return out
}
