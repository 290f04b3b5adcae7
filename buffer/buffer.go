package buffer

import (
	"math"
	"slices"
	"strings"
)

// Options configures a Buffer. Zero fields take defaults in New.
type Options struct {
	NewlineSymbol string // default: "\n"

	// Caret defaults to a LineCaret bound to the active line.
	Caret Caret
	// Pool defaults to a private pool.
	Pool *Pool
}

type listener struct {
	id uint64
	fn func(LineSwitch)
}

// Buffer is the multi-line input state: the ordered line entries, the active
// line index, and the caret it keeps in step across line boundaries.
//
// A Buffer always holds at least one line and its active index always points
// at one of them.
type Buffer struct {
	lines   []*Entry
	active  int
	enabled bool

	opt   Options
	caret Caret
	pool  *Pool

	listeners []listener
	nextID    uint64
}

// New returns a cleared, enabled Buffer holding one empty line.
func New(opt Options) *Buffer {
	if opt.NewlineSymbol == "" {
		opt.NewlineSymbol = "\n"
	}
	b := &Buffer{
		enabled: true,
		opt:     opt,
		caret:   opt.Caret,
		pool:    opt.Pool,
	}
	if b.pool == nil {
		b.pool = NewPool(nil)
	}
	if b.caret == nil {
		b.caret = NewLineCaret(b.activeLineLen)
	}
	b.Clear()
	return b
}

func (b *Buffer) Enabled() bool { return b.enabled }

// SetEnabled gates OnAction. Direct edit methods stay callable either way.
func (b *Buffer) SetEnabled(v bool) { b.enabled = v }

func (b *Buffer) ActiveLineIndex() int { return b.active }

func (b *Buffer) ActiveLine() *Entry { return b.lines[b.active] }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Lines returns the line entries top to bottom. The slice is a copy; the
// entries are not and must be treated as read-only.
func (b *Buffer) Lines() []*Entry { return slices.Clone(b.lines) }

func (b *Buffer) Caret() Caret { return b.caret }

func (b *Buffer) NewlineSymbol() string { return b.opt.NewlineSymbol }

// Subscribe registers fn for line-switch notifications and returns a function
// that removes it. Listeners run synchronously, in registration order, and
// must not call mutating Buffer methods.
func (b *Buffer) Subscribe(fn func(LineSwitch)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	return func() {
		b.listeners = slices.DeleteFunc(b.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

// Clear drops all lines and leaves a single empty active line. It does not
// notify listeners.
func (b *Buffer) Clear() {
	for i, e := range b.lines {
		b.pool.Release(e)
		b.lines[i] = nil
	}
	b.lines = append(b.lines[:0], b.pool.Fetch())
	b.active = 0
	b.caret.SetIndex(0)
}

// FullText joins all lines with the newline symbol.
func (b *Buffer) FullText() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteString(b.opt.NewlineSymbol)
		}
		sb.WriteString(line.Content())
	}
	return sb.String()
}

// RemoveActiveLine merges the active line into the line above it, leaving
// the caret at the join point. It does nothing on the first line.
func (b *Buffer) RemoveActiveLine() {
	if b.active == 0 {
		return
	}

	removed := b.lines[b.active]
	b.lines = slices.Delete(b.lines, b.active, b.active+1)
	b.setActiveLineIndex(b.active-1, ActionNone)

	line := b.ActiveLine()
	b.caret.SetIndex(line.Len())
	line.appendClusters(removed.clusters)
	b.pool.Release(removed)
}

// RemoveNextLine merges the line below into the active line. It does nothing
// on the last line.
func (b *Buffer) RemoveNextLine() {
	next := b.active + 1
	if next >= len(b.lines) {
		return
	}

	removed := b.lines[next]
	b.ActiveLine().appendClusters(removed.clusters)
	b.lines = slices.Delete(b.lines, next, next+1)
	b.pool.Release(removed)
}

// AddNewLine inserts a line holding value below the active line and makes it
// active. Text after the caret on the previous active line is copied to the
// end of the new line; the caret ends up right after value. A nil value does
// nothing.
func (b *Buffer) AddNewLine(value *string) {
	if value == nil {
		return
	}

	carry := b.ActiveLine().suffix(b.caret.Index())

	e := b.pool.Fetch()
	e.SetString(*value)
	b.lines = slices.Insert(b.lines, b.active+1, e)
	b.setActiveLineIndex(b.active+1, ActionNewLine)
	b.caret.MoveBy(math.MaxInt)
	e.appendClusters(carry)
}

// OnAction applies a line-level action. Actions other than new-line and the
// vertical moves are ignored, as is everything while the buffer is disabled.
func (b *Buffer) OnAction(a Action) {
	if !b.enabled {
		return
	}

	switch a {
	case ActionNewLine:
		prev := b.ActiveLine()
		at := b.caret.Index()
		empty := ""
		b.AddNewLine(&empty)
		prev.TruncateFrom(at)
	case ActionMovePreviousLine:
		b.setActiveLineIndex(max(b.active-1, 0), ActionMovePreviousLine)
		b.clampCaret()
	case ActionMoveNextLine:
		// Listeners observe ActionMovePreviousLine as the cause here too.
		b.setActiveLineIndex(min(b.active+1, len(b.lines)-1), ActionMovePreviousLine)
		b.clampCaret()
	}
}

func (b *Buffer) setActiveLineIndex(i int, cause Action) {
	if i == b.active {
		return
	}
	ev := LineSwitch{Previous: b.active, Current: i, Cause: cause}
	b.active = i
	b.notify(ev)
}

func (b *Buffer) notify(ev LineSwitch) {
	if len(b.listeners) == 0 {
		return
	}
	for _, l := range slices.Clone(b.listeners) {
		l.fn(ev)
	}
}

func (b *Buffer) clampCaret() {
	b.caret.SetIndex(min(b.caret.Index(), b.ActiveLine().Len()))
}

func (b *Buffer) activeLineLen() int {
	if b.active < 0 || b.active >= len(b.lines) {
		return 0
	}
	return b.lines[b.active].Len()
}
