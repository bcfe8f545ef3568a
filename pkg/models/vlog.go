package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VlogStatus string

const (
	StatusPending  VlogStatus = "pending"
	StatusApproved VlogStatus = "approved"
	StatusRejected VlogStatus = "rejected"
)

type Vlog struct {
	ID         string        `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string        `gorm:"type:varchar(255);not null" json:"title"`
	CoverImage string        `gorm:"type:varchar(500)" json:"cover_image"`
	Content    string        `gorm:"type:text;not null" json:"content"`
	AuthorID   string        `gorm:"type:uuid;not null;index" json:"author_id"`
	Status     VlogStatus    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Category   string        `gorm:"type:varchar(100);index" json:"category"`
	CreatedAt  time.Time     `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	Author     User          `gorm:"foreignKey:AuthorID" json:"-"`
	Likes      []VlogLike    `gorm:"foreignKey:VlogID;constraint:OnDelete:CASCADE" json:"-"`
	Comments   []VlogComment `gorm:"foreignKey:VlogID;constraint:OnDelete:CASCADE" json:"-"`
}

func (v *Vlog) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
