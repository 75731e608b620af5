package domain

import "fmt"

type Actor string

const (
	ActorInitiator Actor = "initiator"
	ActorAdmin     Actor = "admin"
)

type transitionKey struct {
	actor  Actor
	from   State
	action StateAction
}

// transitions is the full set of legal state changes driven by a state action.
// Any combination missing here is rejected by Transition.
var transitions = map[transitionKey]State{
	{ActorInitiator, StatePending, ActionSendToReview}: StatePending,
	{ActorInitiator, StatePending, ActionCancelReview}: StateCanceled,
	{ActorInitiator, StatePending, ActionRejectEvent}:  StateCanceled,
	{ActorInitiator, StatePending, ActionPublishEvent}: StatePublished,

	{ActorInitiator, StateCanceled, ActionSendToReview}: StatePending,
	{ActorInitiator, StateCanceled, ActionCancelReview}: StateCanceled,
	{ActorInitiator, StateCanceled, ActionRejectEvent}:  StateCanceled,

	{ActorAdmin, StatePending, ActionPublishEvent}: StatePublished,
	{ActorAdmin, StatePending, ActionRejectEvent}:  StateCanceled,
	{ActorAdmin, StatePending, ActionCancelReview}: StateCanceled,
	{ActorAdmin, StatePending, ActionSendToReview}: StateCanceled,
}

// Transition returns the state an event moves to when actor applies action in state from.
func Transition(actor Actor, from State, action StateAction) (State, error) {
	if to, ok := transitions[transitionKey{actor: actor, from: from, action: action}]; ok {
		return to, nil
	}

	switch {
	case actor == ActorAdmin && action == ActionPublishEvent:
		return "", ErrAlreadyPublished
	case actor == ActorAdmin:
		return "", ErrNotPending
	case from == StatePublished:
		return "", ErrAlreadyPublished
	}

	return "", fmt.Errorf("%w: %s cannot apply %s to %s event", ErrIllegalTransition, actor, action, from)
}
