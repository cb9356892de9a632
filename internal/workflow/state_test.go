package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		from  State
		event Event
		to    State
		ok    bool
	}{
		{Idle, Trigger, Generating, true},
		{Generating, Succeed, ReviewPending, true},
		{Generating, Fail, Idle, true},
		{Generating, Cancel, Idle, true},
		{ReviewPending, Accept, Idle, true},
		{ReviewPending, Regenerate, Generating, true},
		{ReviewPending, Dismiss, Idle, true},
		{Idle, Accept, Idle, false},
		{Idle, Regenerate, Idle, false},
		{Generating, Trigger, Generating, false},
		{Generating, Accept, Generating, false},
		{ReviewPending, Trigger, ReviewPending, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"/"+tc.event.String(), func(t *testing.T) {
			got, err := Transition(tc.from, tc.event)
			assert.Equal(t, tc.to, got)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}
