package editor

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/multiline/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.paste(string(msg.Runes))
		return m, nil
	}

	if a, ok := m.cfg.KeyMap.Action(msg); ok {
		return m.apply(a)
	}

	switch {
	case msg.Type == tea.KeySpace:
		m.insert(" ")
	case msg.Type == tea.KeyTab:
		m.insert("\t")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.insert(string(msg.Runes))
	}
	return m, nil
}

// apply runs a console action. Line-level actions go through the buffer's
// action handler; the rest are caret-local edits.
func (m Model) apply(a buffer.Action) (Model, tea.Cmd) {
	c := m.buf.Caret()

	switch a {
	case buffer.ActionNewLine, buffer.ActionMovePreviousLine, buffer.ActionMoveNextLine:
		m.buf.OnAction(a)
	case buffer.ActionMoveLeft:
		c.MoveBy(-1)
	case buffer.ActionMoveRight:
		c.MoveBy(1)
	case buffer.ActionMoveLineStart:
		c.MoveBy(math.MinInt)
	case buffer.ActionMoveLineEnd:
		c.MoveBy(math.MaxInt)
	case buffer.ActionDeletePrevious:
		i := c.Index()
		if i == 0 {
			m.buf.RemoveActiveLine()
			break
		}
		m.buf.ActiveLine().DeleteRange(i-1, i)
		c.SetIndex(i - 1)
	case buffer.ActionDeleteNext:
		line := m.buf.ActiveLine()
		i := c.Index()
		if i >= line.Len() {
			m.buf.RemoveNextLine()
			break
		}
		line.DeleteRange(i, i+1)
	case buffer.ActionSubmit:
		return m, m.submit()
	case buffer.ActionClear:
		m.buf.Clear()
	}
	return m, nil
}

func (m Model) submit() tea.Cmd {
	text := m.buf.FullText()
	if m.cfg.OnSubmit != nil {
		m.cfg.OnSubmit(text)
	}
	m.buf.Clear()
	return func() tea.Msg { return SubmitMsg{Text: text} }
}

func (m Model) insert(s string) {
	n := m.buf.ActiveLine().InsertAt(m.buf.Caret().Index(), s)
	m.buf.Caret().MoveBy(n)
}

// paste inserts s at the caret. Line breaks split the active line when
// multi-line input is enabled and collapse to spaces otherwise.
func (m Model) paste(s string) {
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	if !m.buf.Enabled() {
		m.insert(strings.ReplaceAll(s, "\n", " "))
		return
	}
	for i, part := range strings.Split(s, "\n") {
		if i > 0 {
			m.buf.OnAction(buffer.ActionNewLine)
		}
		m.insert(part)
	}
}
