package buffer

import (
	"fmt"
	"slices"

	"github.com/iw2rmb/multiline/internal/grapheme"
)

// Entry is the mutable text of one input line.
//
// While an Entry sits in a Buffer's line list it is owned by that Buffer;
// once released to a Pool it may be reset and handed out again.
type Entry struct {
	clusters []string
	pooled   bool
}

// Content returns the line text.
func (e *Entry) Content() string { return grapheme.Join(e.clusters) }

// Len returns the line length in grapheme clusters.
func (e *Entry) Len() int { return len(e.clusters) }

// SetContent replaces the whole line. A nil value is rejected with
// ErrInvalidArgument and leaves the line unchanged.
func (e *Entry) SetContent(value *string) error {
	if value == nil {
		return fmt.Errorf("buffer: set line content to nil: %w", ErrInvalidArgument)
	}
	e.SetString(*value)
	return nil
}

// SetString replaces the whole line with s.
func (e *Entry) SetString(s string) {
	clear(e.clusters)
	e.clusters = append(e.clusters[:0], grapheme.Split(s)...)
}

// Append adds text to the end of the line.
func (e *Entry) Append(text string) {
	e.appendClusters(grapheme.Split(text))
}

// TruncateFrom removes everything at or after index.
func (e *Entry) TruncateFrom(index int) {
	index = clampInt(index, 0, len(e.clusters))
	clear(e.clusters[index:])
	e.clusters = e.clusters[:index]
}

// SubstringFrom returns the text starting at index without modifying the line.
func (e *Entry) SubstringFrom(index int) string {
	index = clampInt(index, 0, len(e.clusters))
	return grapheme.Join(e.clusters[index:])
}

// InsertAt inserts text before the cluster at index and returns how much Len
// grew. Text that combines with a neighbouring cluster (a bare combining mark
// typed after its base, say) merges into it, so the result can be smaller
// than the cluster count of text.
func (e *Entry) InsertAt(index int, text string) int {
	ins := grapheme.Split(text)
	if len(ins) == 0 {
		return 0
	}
	before := len(e.clusters)
	index = clampInt(index, 0, before)
	out := make([]string, 0, before+len(ins))
	out = append(out, e.clusters[:index]...)
	out = append(out, ins...)
	out = append(out, e.clusters[index:]...)
	e.clusters = out
	e.resegment(index-1, index+len(ins)+1)
	return len(e.clusters) - before
}

// Slice returns the text of the clusters in [start, end), clamped to the line.
func (e *Entry) Slice(start, end int) string {
	start = clampInt(start, 0, len(e.clusters))
	end = clampInt(end, start, len(e.clusters))
	return grapheme.Join(e.clusters[start:end])
}

// DeleteRange removes the clusters in [start, end).
func (e *Entry) DeleteRange(start, end int) {
	start = clampInt(start, 0, len(e.clusters))
	end = clampInt(end, start, len(e.clusters))
	if start == end {
		return
	}
	n := copy(e.clusters[start:], e.clusters[end:])
	clear(e.clusters[start+n:])
	e.clusters = e.clusters[:start+n]
	e.resegment(start-1, start+1)
}

func (e *Entry) suffix(index int) []string {
	index = clampInt(index, 0, len(e.clusters))
	return append([]string(nil), e.clusters[index:]...)
}

func (e *Entry) appendClusters(clusters []string) {
	n := len(e.clusters)
	e.clusters = append(e.clusters, clusters...)
	e.resegment(n-1, n+1)
}

// resegment re-splits the clusters in [from, to) so that text joined at an
// edit seam segments the same way a fresh Split of the whole line would.
func (e *Entry) resegment(from, to int) {
	from = clampInt(from, 0, len(e.clusters))
	to = clampInt(to, from, len(e.clusters))
	if to-from < 2 {
		return
	}
	seg := grapheme.Split(grapheme.Join(e.clusters[from:to]))
	e.clusters = slices.Replace(e.clusters, from, to, seg...)
}

func (e *Entry) reset() {
	clear(e.clusters)
	e.clusters = e.clusters[:0]
}
