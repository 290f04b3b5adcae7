package editor

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func viewRows(m Model) []string {
	rows := strings.Split(m.View(), "\n")
	for i := range rows {
		rows[i] = strings.TrimRight(ansi.Strip(rows[i]), " ")
	}
	return rows
}

func TestView_TrailingWindowFollowsActiveLine(t *testing.T) {
	m := New(Config{Prompt: "] ", VisibleLines: 2, Style: DefaultStyle()})
	m = typeText(m, "one")
	m = press(m, keyAltEnter)
	m = typeText(m, "two")
	m = press(m, keyAltEnter)
	m = typeText(m, "three")

	if diff := cmp.Diff([]string{"] two", "] three"}, viewRows(m)); diff != "" {
		t.Fatalf("view at bottom (-want +got):\n%s", diff)
	}

	m = press(m, keyUp, keyUp)
	if diff := cmp.Diff([]string{"] one", "] two"}, viewRows(m)); diff != "" {
		t.Fatalf("view at top (-want +got):\n%s", diff)
	}
}

func TestView_AllLinesWhenUnlimited(t *testing.T) {
	m := New(Config{})
	m = typeText(m, "a")
	m = press(m, keyAltEnter)
	m = typeText(m, "b")

	if diff := cmp.Diff([]string{"> a", "> b"}, viewRows(m)); diff != "" {
		t.Fatalf("view (-want +got):\n%s", diff)
	}
}

func TestView_CursorCellAndBlur(t *testing.T) {
	m := New(Config{Style: DefaultStyle()})
	m = typeText(m, "ab")
	m = press(m, keyLeft)

	if got := ansi.Strip(m.View()); got != "> ab" {
		t.Fatalf("focused view=%q, want %q", got, "> ab")
	}

	m = press(m, keyEnd)
	if got := ansi.Strip(m.View()); got != "> ab " {
		t.Fatalf("focused view at end=%q, want %q", got, "> ab ")
	}

	m = m.Blur()
	if got := ansi.Strip(m.View()); got != "> ab" {
		t.Fatalf("blurred view=%q, want %q", got, "> ab")
	}
}

func TestView_WidthClipsRows(t *testing.T) {
	m := New(Config{}).SetWidth(4)
	m = typeText(m, "abcdef")
	m = m.Blur()

	if got := ansi.Strip(m.View()); got != "> ab" {
		t.Fatalf("view=%q, want %q", got, "> ab")
	}
}

func TestCaretCell_CountsPromptAndWideRunes(t *testing.T) {
	m := New(Config{Prompt: "> "})
	m = typeText(m, "世界x")
	m = press(m, keyLeft)

	if got := m.CaretCell(); got != 6 {
		t.Fatalf("caret cell=%d, want 6", got)
	}
}

func TestVisibleRange(t *testing.T) {
	cases := []struct {
		count, active, limit int
		start, end           int
	}{
		{count: 1, active: 0, limit: 0, start: 0, end: 1},
		{count: 3, active: 2, limit: 5, start: 0, end: 3},
		{count: 5, active: 4, limit: 2, start: 3, end: 5},
		{count: 5, active: 1, limit: 2, start: 1, end: 3},
		{count: 5, active: 3, limit: 2, start: 3, end: 5},
	}
	for _, tc := range cases {
		start, end := visibleRange(tc.count, tc.active, tc.limit)
		if start != tc.start || end != tc.end {
			t.Fatalf("visibleRange(%d,%d,%d)=(%d,%d), want (%d,%d)",
				tc.count, tc.active, tc.limit, start, end, tc.start, tc.end)
		}
	}
}
