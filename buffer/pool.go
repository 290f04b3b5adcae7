package buffer

// Pool recycles line entries so that splitting and merging lines does not
// allocate on every keystroke.
//
// The zero value is ready to use. A Pool is not safe for concurrent use.
type Pool struct {
	reserve []*Entry
	newFn   func() *Entry
}

// NewPool returns a pool that builds new entries with newFn when the reserve
// is empty. A nil newFn allocates a zero Entry.
func NewPool(newFn func() *Entry) *Pool {
	return &Pool{newFn: newFn}
}

// Fetch returns an empty entry, reusing a released one when available.
func (p *Pool) Fetch() *Entry {
	n := len(p.reserve)
	if n == 0 {
		var e *Entry
		if p.newFn != nil {
			e = p.newFn()
		}
		if e == nil {
			e = &Entry{}
		}
		e.reset()
		return e
	}
	e := p.reserve[n-1]
	p.reserve[n-1] = nil
	p.reserve = p.reserve[:n-1]
	e.pooled = false
	e.reset()
	return e
}

// Release hands e back to the pool. The caller must drop every reference to
// e; the next Fetch may reset and reuse it. Releasing nil or an entry that is
// already in the reserve does nothing.
func (p *Pool) Release(e *Entry) {
	if e == nil || e.pooled {
		return
	}
	e.pooled = true
	p.reserve = append(p.reserve, e)
}

// Reserved returns the number of entries waiting for reuse.
func (p *Pool) Reserved() int { return len(p.reserve) }
