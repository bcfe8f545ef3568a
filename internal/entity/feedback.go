package entity

import "time"

const AnonymousName = "Anonymous"

type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback"`
	Therapist string    `json:"therapist"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FeedbackName snapshots the name shown on a feedback entry.
func FeedbackName(anonymous bool, displayName string) string {
	if anonymous {
		return AnonymousName
	}
	return displayName
}

type Therapist struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
}
