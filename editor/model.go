package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/multiline/buffer"
)

// Model is a Bubble Tea component for a console's multi-line input area.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool
	width   int
}

// New returns a focused Model with an empty buffer built from cfg.
func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg: cfg,
		buf: buffer.New(buffer.Options{
			NewlineSymbol: cfg.NewlineSymbol,
			Pool:          cfg.Pool,
		}),
		focused: true,
	}
	m.buf.SetEnabled(!cfg.DisableMultiLine)
	if cfg.OnLineSwitch != nil {
		m.buf.Subscribe(cfg.OnLineSwitch)
	}
	return m
}

// Buffer returns the line buffer backing the model.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the full input text joined with the newline symbol.
func (m Model) Value() string { return m.buf.FullText() }

func (m Model) Init() tea.Cmd { return nil }

// SetWidth limits rendered rows to width cells. Zero disables the limit.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m, nil
	}
}
