package buffer

// Caret is the character cursor inside the active line.
//
// Implementations clamp positions to [0, active line length]. Buffer calls
// MoveBy(math.MaxInt) to move to the end of the line.
type Caret interface {
	Index() int
	SetIndex(i int)
	MoveBy(delta int)
}

// LineCaret is the default Caret. It clamps against the length reported by
// lineLen, which Buffer binds to its active line.
type LineCaret struct {
	lineLen func() int
	index   int
}

// NewLineCaret returns a caret at index 0 bounded by lineLen.
func NewLineCaret(lineLen func() int) *LineCaret {
	return &LineCaret{lineLen: lineLen}
}

// Index returns the caret position, clamped to the current line length.
func (c *LineCaret) Index() int {
	return clampInt(c.index, 0, c.max())
}

// SetIndex places the caret at i, clamped to [0, line length].
func (c *LineCaret) SetIndex(i int) {
	c.index = clampInt(i, 0, c.max())
}

// MoveBy shifts the caret by delta without overflowing, then clamps.
func (c *LineCaret) MoveBy(delta int) {
	i, max := c.Index(), c.max()
	switch {
	case delta > 0 && delta > max-i:
		c.index = max
	case delta < 0 && delta < -i:
		c.index = 0
	default:
		c.index = i + delta
	}
}

func (c *LineCaret) max() int {
	if c.lineLen == nil {
		return 0
	}
	if n := c.lineLen(); n > 0 {
		return n
	}
	return 0
}
