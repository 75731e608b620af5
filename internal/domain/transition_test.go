package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		from    State
		action  StateAction
		want    State
		wantErr error
	}{
		{"admin publishes pending", ActorAdmin, StatePending, ActionPublishEvent, StatePublished, nil},
		{"admin rejects pending", ActorAdmin, StatePending, ActionRejectEvent, StateCanceled, nil},
		{"admin publishes published", ActorAdmin, StatePublished, ActionPublishEvent, "", ErrAlreadyPublished},
		{"admin publishes canceled", ActorAdmin, StateCanceled, ActionPublishEvent, "", ErrAlreadyPublished},
		{"admin rejects published", ActorAdmin, StatePublished, ActionRejectEvent, "", ErrNotPending},
		{"admin rejects canceled", ActorAdmin, StateCanceled, ActionRejectEvent, "", ErrNotPending},
		{"initiator sends pending to review", ActorInitiator, StatePending, ActionSendToReview, StatePending, nil},
		{"initiator cancels review", ActorInitiator, StatePending, ActionCancelReview, StateCanceled, nil},
		{"initiator resubmits canceled", ActorInitiator, StateCanceled, ActionSendToReview, StatePending, nil},
		{"initiator publishes pending", ActorInitiator, StatePending, ActionPublishEvent, StatePublished, nil},
		{"initiator publishes canceled", ActorInitiator, StateCanceled, ActionPublishEvent, "", ErrIllegalTransition},
		{"initiator touches published", ActorInitiator, StatePublished, ActionSendToReview, "", ErrAlreadyPublished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.actor, tt.from, tt.action)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrConflict)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		from, size, offset int
	}{
		{0, 10, 0},
		{10, 10, 10},
		{15, 10, 10},
		{3, 5, 0},
	}

	for _, tt := range tests {
		p, err := NewPage(tt.from, tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.offset, p.Offset())
		assert.Equal(t, tt.size, p.Limit())
	}
}

func TestNewPage_Invalid(t *testing.T) {
	_, err := NewPage(-1, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPage(0, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseState(t *testing.T) {
	st, err := ParseState("PUBLISHED")
	require.NoError(t, err)
	assert.Equal(t, StatePublished, st)

	_, err = ParseState("DRAFT")
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "DRAFT")
}

func TestEvent_LimitReached(t *testing.T) {
	assert.False(t, (&Event{ParticipantLimit: 0, ConfirmedRequests: 100}).LimitReached())
	assert.False(t, (&Event{ParticipantLimit: 2, ConfirmedRequests: 1}).LimitReached())
	assert.True(t, (&Event{ParticipantLimit: 2, ConfirmedRequests: 2}).LimitReached())
}
