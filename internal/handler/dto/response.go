package dto

import (
	"github.com/stpnv0/ExploreWithMe/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserShortResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type EventFullResponse struct {
	ID                string            `json:"id"`
	Annotation        string            `json:"annotation"`
	Category          CategoryResponse  `json:"category"`
	ConfirmedRequests int               `json:"confirmedRequests"`
	CreatedOn         DateTime          `json:"createdOn"`
	Description       string            `json:"description"`
	EventDate         DateTime          `json:"eventDate"`
	Initiator         UserShortResponse `json:"initiator"`
	Location          LocationResponse  `json:"location"`
	Paid              bool              `json:"paid"`
	ParticipantLimit  int               `json:"participantLimit"`
	PublishedOn       *DateTime         `json:"publishedOn"`
	RequestModeration bool              `json:"requestModeration"`
	State             string            `json:"state"`
	Title             string            `json:"title"`
	Views             int64             `json:"views"`
}

type EventShortResponse struct {
	ID                string            `json:"id"`
	Annotation        string            `json:"annotation"`
	Category          CategoryResponse  `json:"category"`
	ConfirmedRequests int               `json:"confirmedRequests"`
	EventDate         DateTime          `json:"eventDate"`
	Initiator         UserShortResponse `json:"initiator"`
	Paid              bool              `json:"paid"`
	Title             string            `json:"title"`
	Views             int64             `json:"views"`
}

type RequestResponse struct {
	ID        string   `json:"id"`
	Created   DateTime `json:"created"`
	Event     string   `json:"event"`
	Requester string   `json:"requester"`
	Status    string   `json:"status"`
}

type DecisionResponse struct {
	ConfirmedRequests []RequestResponse `json:"confirmedRequests"`
	RejectedRequests  []RequestResponse `json:"rejectedRequests"`
}

type CompilationResponse struct {
	ID     string               `json:"id"`
	Title  string               `json:"title"`
	Pinned bool                 `json:"pinned"`
	Events []EventShortResponse `json:"events"`
}

type CommentResponse struct {
	ID      string   `json:"id"`
	Author  string   `json:"author"`
	Event   string   `json:"event"`
	Message string   `json:"message"`
	Created DateTime `json:"created"`
	Updated DateTime `json:"updated"`
}

type ViewStatsResponse struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func ToEventFullResponse(e *domain.Event) EventFullResponse {
	resp := EventFullResponse{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          ToCategoryResponse(&e.Category),
		ConfirmedRequests: e.ConfirmedRequests,
		CreatedOn:         DateTime{e.CreatedOn},
		Description:       e.Description,
		EventDate:         DateTime{e.EventDate},
		Initiator:         UserShortResponse{ID: e.Initiator.ID, Name: e.Initiator.Name},
		Location:          LocationResponse{Lat: e.Location.Lat, Lon: e.Location.Lon},
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		State:             string(e.State),
		Title:             e.Title,
		Views:             e.Views,
	}
	if e.PublishedOn != nil {
		resp.PublishedOn = &DateTime{*e.PublishedOn}
	}
	return resp
}

func ToEventShortResponse(e *domain.Event) EventShortResponse {
	return EventShortResponse{
		ID:                e.ID,
		Annotation:        e.Annotation,
		Category:          ToCategoryResponse(&e.Category),
		ConfirmedRequests: e.ConfirmedRequests,
		EventDate:         DateTime{e.EventDate},
		Initiator:         UserShortResponse{ID: e.Initiator.ID, Name: e.Initiator.Name},
		Paid:              e.Paid,
		Title:             e.Title,
		Views:             e.Views,
	}
}

func ToEventFullResponses(events []*domain.Event) []EventFullResponse {
	resp := make([]EventFullResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventFullResponse(e))
	}
	return resp
}

func ToEventShortResponses(events []*domain.Event) []EventShortResponse {
	resp := make([]EventShortResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, ToEventShortResponse(e))
	}
	return resp
}

func ToRequestResponse(r *domain.Request) RequestResponse {
	return RequestResponse{
		ID:        r.ID,
		Created:   DateTime{r.Created},
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.Status),
	}
}

func ToRequestResponses(requests []*domain.Request) []RequestResponse {
	resp := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, ToRequestResponse(r))
	}
	return resp
}

func ToDecisionResponse(d *domain.DecisionResult) DecisionResponse {
	return DecisionResponse{
		ConfirmedRequests: ToRequestResponses(d.Confirmed),
		RejectedRequests:  ToRequestResponses(d.Rejected),
	}
}

func ToCompilationResponse(c *domain.Compilation) CompilationResponse {
	return CompilationResponse{
		ID:     c.ID,
		Title:  c.Title,
		Pinned: c.Pinned,
		Events: ToEventShortResponses(c.Events),
	}
}

func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:      c.ID,
		Author:  c.AuthorID,
		Event:   c.EventID,
		Message: c.Message,
		Created: DateTime{c.Created},
		Updated: DateTime{c.Updated},
	}
}

func ToViewStatsResponses(stats []domain.ViewStats) []ViewStatsResponse {
	resp := make([]ViewStatsResponse, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, ViewStatsResponse{App: s.App, URI: s.URI, Hits: s.Hits})
	}
	return resp
}
