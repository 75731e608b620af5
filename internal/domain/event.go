package domain

import "time"

// DateTimeLayout is the textual date format shared by the API and the stats service.
const DateTimeLayout = "2006-01-02 15:04:05"

type State string

const (
	StatePending   State = "PENDING"
	StatePublished State = "PUBLISHED"
	StateCanceled  State = "CANCELED"
)

// ParseState validates a state token coming from the outside.
func ParseState(s string) (State, error) {
	switch st := State(s); st {
	case StatePending, StatePublished, StateCanceled:
		return st, nil
	}
	return "", NewValidationError("unknown state: %s", s)
}

type StateAction string

const (
	ActionPublishEvent StateAction = "PUBLISH_EVENT"
	ActionRejectEvent  StateAction = "REJECT_EVENT"
	ActionCancelReview StateAction = "CANCEL_REVIEW"
	ActionSendToReview StateAction = "SEND_TO_REVIEW"
)

func ParseStateAction(s string) (StateAction, error) {
	switch a := StateAction(s); a {
	case ActionPublishEvent, ActionRejectEvent, ActionCancelReview, ActionSendToReview:
		return a, nil
	}
	return "", NewValidationError("unknown stateAction: %s", s)
}

type Location struct {
	ID  string  `json:"-"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Event struct {
	ID                string     `json:"id"`
	Annotation        string     `json:"annotation"`
	Description       string     `json:"description"`
	Title             string     `json:"title"`
	Category          Category   `json:"category"`
	Initiator         User       `json:"initiator"`
	Location          Location   `json:"location"`
	EventDate         time.Time  `json:"event_date"`
	CreatedOn         time.Time  `json:"created_on"`
	PublishedOn       *time.Time `json:"published_on"`
	Paid              bool       `json:"paid"`
	ParticipantLimit  int        `json:"participant_limit"`
	RequestModeration bool       `json:"request_moderation"`
	ConfirmedRequests int        `json:"confirmed_requests"`
	Views             int64      `json:"views"`
	State             State      `json:"state"`
}

// Moderated reports whether requests to the event wait for the initiator's decision.
// Without moderation or without a limit every request is confirmed on arrival.
func (e *Event) Moderated() bool {
	return e.RequestModeration && e.ParticipantLimit != 0
}

// LimitReached is true only for limited events whose confirmed count hit the limit.
func (e *Event) LimitReached() bool {
	return e.ParticipantLimit != 0 && e.ConfirmedRequests >= e.ParticipantLimit
}

// URI is the public path the stats service counts views for.
func (e *Event) URI() string {
	return EventURI(e.ID)
}

func EventURI(id string) string {
	return "/events/" + id
}

type CreateEventInput struct {
	Annotation        string
	CategoryID        string
	Description       string
	EventDate         time.Time
	Location          Location
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
	Title             string
}

// EventPatch is a partial update: nil pointers and blank strings leave the field untouched.
type EventPatch struct {
	Annotation        *string
	CategoryID        *string
	Description       *string
	EventDate         *time.Time
	Location          *Location
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
	StateAction       *StateAction
	Title             *string
}

type EventSort string

const (
	SortEventDate EventSort = "EVENT_DATE"
	SortViews     EventSort = "VIEWS"
)

func ParseEventSort(s string) (EventSort, error) {
	switch so := EventSort(s); so {
	case "":
		return "", nil
	case SortEventDate, SortViews:
		return so, nil
	}
	return "", NewValidationError("unknown sort: %s", s)
}

type AdminEventFilter struct {
	Users      []string
	States     []State
	Categories []string
	Start      *time.Time
	End        *time.Time
}

type PublicEventFilter struct {
	Text          string
	Categories    []string
	Paid          *bool
	Start         *time.Time
	End           *time.Time
	OnlyAvailable bool
	Sort          EventSort
}
