package dto

import (
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

// DateTime is a timestamp in domain.DateTimeLayout on the wire.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return domain.NewValidationError("date must be a string in format %q", domain.DateTimeLayout)
	}
	t, err := time.ParseInLocation(domain.DateTimeLayout, s[1:len(s)-1], time.UTC)
	if err != nil {
		return domain.NewValidationError("date must be in format %q", domain.DateTimeLayout)
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(domain.DateTimeLayout) + `"`), nil
}

type LocationRequest struct {
	Lat *float64 `json:"lat" binding:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" binding:"required,gte=-180,lte=180"`
}

func (l *LocationRequest) toDomain() *domain.Location {
	if l == nil {
		return nil
	}
	return &domain.Location{Lat: *l.Lat, Lon: *l.Lon}
}

type CreateEventRequest struct {
	Annotation        string           `json:"annotation" binding:"required,min=20,max=2000"`
	Category          string           `json:"category" binding:"required,uuid"`
	Description       string           `json:"description" binding:"required,min=20,max=7000"`
	EventDate         DateTime         `json:"eventDate" binding:"required"`
	Location          *LocationRequest `json:"location" binding:"required"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int             `json:"participantLimit" binding:"omitempty,gte=0"`
	RequestModeration *bool            `json:"requestModeration"`
	Title             string           `json:"title" binding:"required,min=3,max=120"`
}

func (r *CreateEventRequest) ToInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Annotation:        r.Annotation,
		CategoryID:        r.Category,
		Description:       r.Description,
		EventDate:         r.EventDate.Time,
		Location:          *r.Location.toDomain(),
		Paid:              r.Paid,
		ParticipantLimit:  r.ParticipantLimit,
		RequestModeration: r.RequestModeration,
		Title:             r.Title,
	}
}

// UpdateEventRequest is shared by the initiator and admin endpoints.
// Blank strings are accepted here and ignored by the service.
type UpdateEventRequest struct {
	Annotation        *string          `json:"annotation" binding:"omitempty,max=2000"`
	Category          *string          `json:"category" binding:"omitempty,uuid"`
	Description       *string          `json:"description" binding:"omitempty,max=7000"`
	EventDate         *DateTime        `json:"eventDate"`
	Location          *LocationRequest `json:"location"`
	Paid              *bool            `json:"paid"`
	ParticipantLimit  *int             `json:"participantLimit"`
	RequestModeration *bool            `json:"requestModeration"`
	StateAction       *string          `json:"stateAction"`
	Title             *string          `json:"title" binding:"omitempty,max=120"`
}

func (r *UpdateEventRequest) ToPatch() (domain.EventPatch, error) {
	patch := domain.EventPatch{
		Annotation:        r.Annotation,
		CategoryID:        r.Category,
		Description:       r.Description,
		Location:          r.Location.toDomain(),
		Paid:              r.Paid,
		ParticipantLimit:  r.ParticipantLimit,
		RequestModeration: r.RequestModeration,
		Title:             r.Title,
	}
	if r.EventDate != nil {
		patch.EventDate = &r.EventDate.Time
	}
	if r.StateAction != nil {
		action, err := domain.ParseStateAction(*r.StateAction)
		if err != nil {
			return domain.EventPatch{}, err
		}
		patch.StateAction = &action
	}
	return patch, nil
}

type DecideRequestsRequest struct {
	RequestIDs []string `json:"requestIds" binding:"required,min=1,dive,uuid"`
	Status     string   `json:"status" binding:"required"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=250"`
	Email string `json:"email" binding:"required,email,max=254"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type CreateCompilationRequest struct {
	Events []string `json:"events" binding:"omitempty,dive,uuid"`
	Pinned *bool    `json:"pinned"`
	Title  string   `json:"title" binding:"required,min=1,max=50"`
}

type UpdateCompilationRequest struct {
	Events []string `json:"events" binding:"omitempty,dive,uuid"`
	Pinned *bool    `json:"pinned"`
	Title  *string  `json:"title" binding:"omitempty,min=1,max=50"`
}

type CommentRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type HitRequest struct {
	App       string    `json:"app" binding:"required"`
	URI       string    `json:"uri" binding:"required"`
	IP        string    `json:"ip" binding:"required,ip"`
	Timestamp *DateTime `json:"timestamp"`
}

func (r *HitRequest) ToDomain() domain.Hit {
	hit := domain.Hit{App: r.App, URI: r.URI, IP: r.IP}
	if r.Timestamp != nil {
		hit.Timestamp = r.Timestamp.Time
	}
	return hit
}
