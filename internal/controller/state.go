package controller

import "errors"

var (
	ErrSubmitFailed     = errors.New("failed to save items")
	ErrQueryFailed      = errors.New("failed to load items")
	ErrSubmitInProgress = errors.New("a save is already in progress")
)

// State is the lifecycle of one workflow invocation.
type State int

const (
	Idle State = iota
	InFlight
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "idle"
}

// Level classifies a user notice.
type Level int

const (
	LevelNone Level = iota
	LevelSuccess
	LevelError
)

// Notice is the single user-visible message a workflow produces. Err holds
// the cause for error notices.
type Notice struct {
	Level Level
	Text  string
	Err   error
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool { return n.Level == LevelNone }
