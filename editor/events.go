package editor

// SubmitMsg is emitted after the input is submitted and cleared.
type SubmitMsg struct {
	// Text is the full input, lines joined with the newline symbol.
	Text string
}
