// Package buffer implements the multi-line input model behind a console
// prompt: an ordered list of line entries, the active line, and the
// split/merge/navigate transitions between them.
//
// Character offsets are 0-based and counted in grapheme clusters.
//
// A Buffer is not safe for concurrent use. It is meant to be driven from a
// single UI event loop; line-switch listeners run synchronously inside the
// mutating call and must not call back into mutating Buffer methods.
package buffer
