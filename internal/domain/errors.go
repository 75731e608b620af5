package domain

import (
	"errors"
	"fmt"
)

// Categories every service error falls into. Handlers map them to 404, 409 and 400.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")
)

var (
	ErrEventNotFound       = fmt.Errorf("event %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrRequestNotFound     = fmt.Errorf("request %w", ErrNotFound)
	ErrCategoryNotFound    = fmt.Errorf("category %w", ErrNotFound)
	ErrCompilationNotFound = fmt.Errorf("compilation %w", ErrNotFound)
	ErrCommentNotFound     = fmt.Errorf("comment %w", ErrNotFound)
)

var (
	ErrLimitExceeded     = fmt.Errorf("%w: participant limit exceeded", ErrConflict)
	ErrInitiatorRequest  = fmt.Errorf("%w: initiator cannot request participation in own event", ErrConflict)
	ErrDuplicateRequest  = fmt.Errorf("%w: participation already requested", ErrConflict)
	ErrEventNotPublished = fmt.Errorf("%w: event is not published", ErrConflict)
	ErrNotInitiator      = fmt.Errorf("%w: user is not the initiator of the event", ErrConflict)
	ErrRequestNotPending = fmt.Errorf("%w: request must have status PENDING", ErrConflict)
	ErrNotRequester      = fmt.Errorf("%w: request belongs to another user", ErrConflict)
	ErrNotCancelable     = fmt.Errorf("%w: only pending or confirmed requests can be canceled", ErrConflict)
	ErrAlreadyPublished  = fmt.Errorf("%w: event already published", ErrConflict)
	ErrNotPending        = fmt.Errorf("%w: event is not pending", ErrConflict)
	ErrIllegalTransition = fmt.Errorf("%w: illegal state transition", ErrConflict)
	ErrEmailTaken        = fmt.Errorf("%w: email is already taken", ErrConflict)
	ErrCategoryNameTaken = fmt.Errorf("%w: category name is already taken", ErrConflict)
	ErrCategoryInUse     = fmt.Errorf("%w: category is used by events", ErrConflict)
	ErrCompilationTitle  = fmt.Errorf("%w: compilation title is already taken", ErrConflict)
	ErrNotCommentAuthor  = fmt.Errorf("%w: user is not the author of the comment", ErrConflict)
)

func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
