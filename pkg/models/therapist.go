package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Therapist struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	Specialization string `gorm:"type:varchar(255);not null" json:"specialization"`
}

func (t *Therapist) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Vlog{},
		&VlogLike{},
		&VlogComment{},
		&Feedback{},
		&Therapist{},
	}
}
