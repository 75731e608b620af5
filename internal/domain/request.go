package domain

import "time"

type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestConfirmed RequestStatus = "CONFIRMED"
	RequestCanceled  RequestStatus = "CANCELED"
	RequestRejected  RequestStatus = "REJECTED"
)

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch st := RequestStatus(s); st {
	case RequestPending, RequestConfirmed, RequestCanceled, RequestRejected:
		return st, nil
	}
	return "", NewValidationError("unknown status: %s", s)
}

type Request struct {
	ID          string        `json:"id"`
	RequesterID string        `json:"requester"`
	EventID     string        `json:"event"`
	Created     time.Time     `json:"created"`
	Status      RequestStatus `json:"status"`
}

type DecisionResult struct {
	Confirmed []*Request `json:"confirmed_requests"`
	Rejected  []*Request `json:"rejected_requests"`
}
