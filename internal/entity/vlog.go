package entity

import "time"

type VlogStatus string

const (
	StatusPending  VlogStatus = "pending"
	StatusApproved VlogStatus = "approved"
	StatusRejected VlogStatus = "rejected"
)

// ParseModerationStatus accepts only the statuses an admin may move a vlog to.
func ParseModerationStatus(s string) (VlogStatus, bool) {
	switch VlogStatus(s) {
	case StatusApproved, StatusRejected:
		return VlogStatus(s), true
	default:
		return "", false
	}
}

type Vlog struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	CoverImage string     `json:"coverImage,omitempty"`
	Content    string     `json:"content"`
	Author     UserRef    `json:"author"`
	Status     VlogStatus `json:"status"`
	Category   string     `json:"category,omitempty"`
	Likes      []string   `json:"likes"`
	Comments   []Comment  `json:"comments"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (v *Vlog) LikeCount() int {
	return len(v.Likes)
}

func (v *Vlog) IsLikedBy(userID string) bool {
	for _, id := range v.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

func (v *Vlog) FindComment(commentID string) (*Comment, bool) {
	for i := range v.Comments {
		if v.Comments[i].ID == commentID {
			return &v.Comments[i], true
		}
	}
	return nil, false
}

// Comment is embedded in a vlog. Username is a snapshot of the commenter's
// display name at write time.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"user"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// VlogUpdate is a partial edit; nil fields keep their current value.
// Invalid holds a request decode failure, reported only once the editor
// has been authorized.
type VlogUpdate struct {
	Title      *string
	CoverImage *string
	Content    *string
	Invalid    error
}

func (u VlogUpdate) IsEmpty() bool {
	return u.Title == nil && u.CoverImage == nil && u.Content == nil
}
