package models

import (
	"time"
)

// VlogLike is one member of a vlog's like set. The composite primary key
// keeps a user from appearing twice.
type VlogLike struct {
	VlogID    string    `gorm:"type:uuid;primaryKey" json:"vlog_id"`
	UserID    string    `gorm:"type:uuid;primaryKey;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
