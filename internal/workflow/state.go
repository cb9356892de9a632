package workflow

import (
	"errors"
	"fmt"
)

// Состояние диалога подтверждения описания
type State int

const (
	Idle State = iota
	Generating
	ReviewPending
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	case ReviewPending:
		return "review_pending"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Event int

const (
	Trigger Event = iota
	Succeed
	Fail
	Accept
	Regenerate
	Dismiss
	Cancel
)

func (e Event) String() string {
	switch e {
	case Trigger:
		return "trigger"
	case Succeed:
		return "succeed"
	case Fail:
		return "fail"
	case Accept:
		return "accept"
	case Regenerate:
		return "regenerate"
	case Dismiss:
		return "dismiss"
	case Cancel:
		return "cancel"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

var ErrInvalidTransition = errors.New("invalid transition")

type transitionKey struct {
	from  State
	event Event
}

var transitions = map[transitionKey]State{
	{Idle, Trigger}:             Generating,
	{Generating, Succeed}:       ReviewPending,
	{Generating, Fail}:          Idle,
	{Generating, Cancel}:        Idle,
	{ReviewPending, Accept}:     Idle,
	{ReviewPending, Regenerate}: Generating,
	{ReviewPending, Dismiss}:    Idle,
	{ReviewPending, Cancel}:     Idle,
}

// Transition вычисляет следующее состояние. Для недопустимой пары
// возвращает исходное состояние и ErrInvalidTransition.
func Transition(from State, event Event) (State, error) {
	to, ok := transitions[transitionKey{from, event}]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, from)
	}
	return to, nil
}
