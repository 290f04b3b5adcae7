package buffer

import "errors"

// ErrInvalidArgument is returned when a caller passes an absent value where
// one is required.
var ErrInvalidArgument = errors.New("invalid argument")

// Action is a discrete console input action.
type Action uint8

const (
	ActionNone Action = iota
	ActionNewLine
	ActionMovePreviousLine
	ActionMoveNextLine
	ActionMoveLeft
	ActionMoveRight
	ActionMoveLineStart
	ActionMoveLineEnd
	ActionDeletePrevious
	ActionDeleteNext
	ActionSubmit
	ActionClear
)

var actionNames = [...]string{
	ActionNone:             "none",
	ActionNewLine:          "new-line",
	ActionMovePreviousLine: "move-previous-line",
	ActionMoveNextLine:     "move-next-line",
	ActionMoveLeft:         "move-left",
	ActionMoveRight:        "move-right",
	ActionMoveLineStart:    "move-line-start",
	ActionMoveLineEnd:      "move-line-end",
	ActionDeletePrevious:   "delete-previous",
	ActionDeleteNext:       "delete-next",
	ActionSubmit:           "submit",
	ActionClear:            "clear",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction returns the Action named s, as printed by Action.String.
func ParseAction(s string) (Action, bool) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), true
		}
	}
	return ActionNone, false
}

// LineSwitch describes a change of the active line index.
type LineSwitch struct {
	Previous int
	Current  int
	Cause    Action
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
