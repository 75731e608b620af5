package domain

import "time"

type Comment struct {
	ID       string    `json:"id"`
	AuthorID string    `json:"author_id"`
	EventID  string    `json:"event_id"`
	Message  string    `json:"message"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

type CommentFilter struct {
	AuthorID string
	EventID  string
	Start    time.Time
	End      time.Time
}
