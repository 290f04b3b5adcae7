package editor

import "github.com/iw2rmb/multiline/buffer"

// Config configures the editor Model.
type Config struct {
	// Prompt is drawn in front of every input line. Default: "> ".
	Prompt string

	// Forwarded to buffer.Options.
	NewlineSymbol string
	Pool          *buffer.Pool

	// VisibleLines limits how many input lines are drawn. Values <= 0 draw
	// every line.
	VisibleLines int

	// DisableMultiLine keeps the input on a single line: new-line and
	// vertical moves are ignored.
	DisableMultiLine bool

	KeyMap KeyMap
	Style  Style

	// OnSubmit receives the full input text before the buffer is cleared.
	OnSubmit func(text string)
	// OnLineSwitch is subscribed to the buffer's line-switch notifications.
	OnLineSwitch func(buffer.LineSwitch)
}

const defaultPrompt = "> "

func normalizeConfig(cfg Config) Config {
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
