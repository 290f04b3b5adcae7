package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/multiline/buffer"
	graphemeutil "github.com/iw2rmb/multiline/internal/grapheme"
)

// View renders the trailing input lines, oldest at the top, each behind the
// prompt. The window always contains the active line.
func (m Model) View() string {
	if m.buf == nil {
		return ""
	}

	lines := m.buf.Lines()
	start, end := visibleRange(len(lines), m.buf.ActiveLineIndex(), m.cfg.VisibleLines)

	st := m.cfg.Style
	prompt := st.Prompt.Render(m.cfg.Prompt)
	clip := lipgloss.NewStyle().MaxWidth(m.width)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		var sb strings.Builder
		sb.WriteString(prompt)
		if i == m.buf.ActiveLineIndex() {
			sb.WriteString(m.renderActiveLine(lines[i]))
		} else {
			sb.WriteString(st.Text.Render(lines[i].Content()))
		}
		row := sb.String()
		if m.width > 0 {
			row = clip.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderActiveLine(line *buffer.Entry) string {
	st := m.cfg.Style
	if !m.focused {
		return st.ActiveText.Render(line.Content())
	}

	before, at, after := splitAtCaret(line, m.buf.Caret().Index())
	if at == "" {
		at = " "
	}

	var sb strings.Builder
	if before != "" {
		sb.WriteString(st.ActiveText.Render(before))
	}
	sb.WriteString(st.Cursor.Render(at))
	if after != "" {
		sb.WriteString(st.ActiveText.Render(after))
	}
	return sb.String()
}

// CaretCell returns the terminal column of the caret on the active row,
// counting the prompt.
func (m Model) CaretCell() int {
	if m.buf == nil {
		return 0
	}
	before, _, _ := splitAtCaret(m.buf.ActiveLine(), m.buf.Caret().Index())
	return graphemeutil.Width(m.cfg.Prompt) + graphemeutil.Width(before)
}

// visibleRange returns the [start, end) window of at most limit rows that
// ends at the last line, shifted up if needed to keep active in view.
func visibleRange(count, active, limit int) (start, end int) {
	if limit <= 0 || count <= limit {
		return 0, count
	}
	start = count - limit
	if active < start {
		start = active
	}
	return start, start + limit
}

func splitAtCaret(line *buffer.Entry, caret int) (before, at, after string) {
	caret = max(caret, 0)
	return line.Slice(0, caret), line.Slice(caret, caret+1), line.SubstringFrom(caret + 1)
}
