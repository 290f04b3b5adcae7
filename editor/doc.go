// Package editor provides a Bubble Tea console prompt backed by the buffer
// package.
//
// The package turns key messages into buffer actions and caret moves,
// renders the trailing window of input lines under a prompt, and reports
// submitted input and line switches to the host.
package editor
