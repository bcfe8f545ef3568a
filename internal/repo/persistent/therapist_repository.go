package persistent

import (
	"context"

	"vlog-hub/internal/entity"
	"vlog-hub/pkg/models"

	"gorm.io/gorm"
)

type TherapistRepository interface {
	List(ctx context.Context) ([]*entity.Therapist, error)
	ReplaceAll(ctx context.Context, therapists []entity.Therapist) error
}

type therapistRepository struct {
	db *gorm.DB
}

func NewTherapistRepository(db *gorm.DB) TherapistRepository {
	return &therapistRepository{db: db}
}

func (r *therapistRepository) List(ctx context.Context) ([]*entity.Therapist, error) {
	var therapistModels []models.Therapist
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&therapistModels).Error; err != nil {
		return nil, err
	}

	therapists := make([]*entity.Therapist, len(therapistModels))
	for i := range therapistModels {
		therapists[i] = ToTherapistEntity(&therapistModels[i])
	}
	return therapists, nil
}

// ReplaceAll swaps the whole directory for therapists in one transaction.
func (r *therapistRepository) ReplaceAll(ctx context.Context, therapists []entity.Therapist) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Therapist{}).Error; err != nil {
			return err
		}
		for i := range therapists {
			therapistModel := ToTherapistModel(&therapists[i])
			if err := tx.Create(therapistModel).Error; err != nil {
				return err
			}
			therapists[i].ID = therapistModel.ID
		}
		return nil
	})
}
