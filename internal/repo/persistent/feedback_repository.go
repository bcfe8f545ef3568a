package persistent

import (
	"context"
	"time"

	"vlog-hub/internal/entity"
	"vlog-hub/pkg/apperror"
	"vlog-hub/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	GetByID(ctx context.Context, id string) (*entity.Feedback, error)
	List(ctx context.Context, therapist string) ([]*entity.Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Feedback, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id string) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackModel := ToFeedbackModel(feedback)
	if feedbackModel.ID == "" {
		feedbackModel.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(feedbackModel).Error; err != nil {
		return err
	}
	*feedback = *ToFeedbackEntity(feedbackModel)
	return nil
}

func (r *feedbackRepository) GetByID(ctx context.Context, id string) (*entity.Feedback, error) {
	if err := checkID(id, "feedback not found"); err != nil {
		return nil, err
	}
	var feedbackModel models.Feedback
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&feedbackModel).Error; err != nil {
		return nil, notFound(err, "feedback not found")
	}
	return ToFeedbackEntity(&feedbackModel), nil
}

// List returns every feedback entry newest first, optionally restricted to
// one therapist.
func (r *feedbackRepository) List(ctx context.Context, therapist string) ([]*entity.Feedback, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Order("id ASC")
	if therapist != "" {
		query = query.Where("therapist = ?", therapist)
	}
	return r.find(query)
}

func (r *feedbackRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Feedback, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Order("id ASC")
	return r.find(query)
}

// Update replaces the mutable columns of an existing entry. Owner and
// creation time are never rewritten.
func (r *feedbackRepository) Update(ctx context.Context, feedback *entity.Feedback) error {
	if err := checkID(feedback.ID, "feedback not found"); err != nil {
		return err
	}
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Feedback{}).
		Where("id = ?", feedback.ID).
		Updates(map[string]interface{}{
			"name":       feedback.Name,
			"rating":     feedback.Rating,
			"feedback":   feedback.Feedback,
			"therapist":  feedback.Therapist,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("feedback not found")
	}
	feedback.UpdatedAt = now
	return nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id string) error {
	if err := checkID(id, "feedback not found"); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Feedback{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("feedback not found")
	}
	return nil
}

func (r *feedbackRepository) find(query *gorm.DB) ([]*entity.Feedback, error) {
	var feedbackModels []models.Feedback
	if err := query.Find(&feedbackModels).Error; err != nil {
		return nil, err
	}

	feedbacks := make([]*entity.Feedback, len(feedbackModels))
	for i := range feedbackModels {
		feedbacks[i] = ToFeedbackEntity(&feedbackModels[i])
	}
	return feedbacks, nil
}
