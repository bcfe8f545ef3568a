package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VlogComment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	VlogID    string    `gorm:"type:uuid;not null;index" json:"vlog_id"`
	UserID    string    `gorm:"type:uuid;not null" json:"user_id"`
	Username  string    `gorm:"type:varchar(100);not null" json:"username"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (c *VlogComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
