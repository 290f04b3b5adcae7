package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/multiline/buffer"
)

// KeyMap defines the console key bindings, one per action.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Submit  key.Binding
	NewLine key.Binding

	PreviousLine, NextLine key.Binding
	Left, Right            key.Binding
	Home, End              key.Binding

	Backspace, Delete key.Binding
	Clear             key.Binding
}

// DefaultKeyMap returns the stock console bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		// Terminals rarely report shift+enter; alt+enter and ctrl+j are the portable forms.
		NewLine: key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "new line")),

		PreviousLine: key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous line")),
		NextLine:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next line")),
		Left:         key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Home:         key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:          key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear input")),
	}
}

// keyActions fixes the match order; earlier entries win on overlapping keys.
var keyActions = [...]buffer.Action{
	buffer.ActionSubmit,
	buffer.ActionNewLine,
	buffer.ActionMovePreviousLine,
	buffer.ActionMoveNextLine,
	buffer.ActionMoveLeft,
	buffer.ActionMoveRight,
	buffer.ActionMoveLineStart,
	buffer.ActionMoveLineEnd,
	buffer.ActionDeletePrevious,
	buffer.ActionDeleteNext,
	buffer.ActionClear,
}

// Binding returns the binding for a, or nil if a has no key.
func (km *KeyMap) Binding(a buffer.Action) *key.Binding {
	switch a {
	case buffer.ActionSubmit:
		return &km.Submit
	case buffer.ActionNewLine:
		return &km.NewLine
	case buffer.ActionMovePreviousLine:
		return &km.PreviousLine
	case buffer.ActionMoveNextLine:
		return &km.NextLine
	case buffer.ActionMoveLeft:
		return &km.Left
	case buffer.ActionMoveRight:
		return &km.Right
	case buffer.ActionMoveLineStart:
		return &km.Home
	case buffer.ActionMoveLineEnd:
		return &km.End
	case buffer.ActionDeletePrevious:
		return &km.Backspace
	case buffer.ActionDeleteNext:
		return &km.Delete
	case buffer.ActionClear:
		return &km.Clear
	default:
		return nil
	}
}

// Action resolves msg to the action it is bound to.
func (km KeyMap) Action(msg tea.KeyMsg) (buffer.Action, bool) {
	for _, a := range keyActions {
		if b := km.Binding(a); b != nil && key.Matches(msg, *b) {
			return a, true
		}
	}
	return buffer.ActionNone, false
}

func (km KeyMap) isZero() bool {
	for _, a := range keyActions {
		if len(km.Binding(a).Keys()) > 0 {
			return false
		}
	}
	return true
}
