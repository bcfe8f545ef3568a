package usecase

import (
	"context"
	"strings"

	"vlog-hub/internal/entity"
	"vlog-hub/internal/policy"
	"vlog-hub/internal/repo/persistent"
	"vlog-hub/pkg/apperror"
	"vlog-hub/pkg/logger"
)

const (
	minRating = 1
	maxRating = 5
)

// FeedbackInput is a full feedback entry. Invalid holds a request decode
// failure and is reported as a validation error.
type FeedbackInput struct {
	Rating    int
	Feedback  string
	Therapist string
	Anonymous bool
	Invalid   error
}

func (in FeedbackInput) validate() error {
	if in.Invalid != nil {
		return apperror.Validation(in.Invalid.Error())
	}
	if in.Rating < minRating || in.Rating > maxRating {
		return apperror.Validation("rating must be between 1 and 5")
	}
	if strings.TrimSpace(in.Feedback) == "" {
		return apperror.Validation("feedback text is required")
	}
	if strings.TrimSpace(in.Therapist) == "" {
		return apperror.Validation("therapist is required")
	}
	return nil
}

type FeedbackUseCase interface {
	CreateFeedback(ctx context.Context, actor *entity.Actor, input FeedbackInput) (*entity.Feedback, error)
	ListFeedback(ctx context.Context, therapist string) ([]*entity.Feedback, error)
	ListMyFeedback(ctx context.Context, actor *entity.Actor) ([]*entity.Feedback, error)
	UpdateFeedback(ctx context.Context, actor *entity.Actor, feedbackID string, input FeedbackInput) (*entity.Feedback, error)
	DeleteFeedback(ctx context.Context, actor *entity.Actor, feedbackID string) error
}

type feedbackUseCase struct {
	feedbackRepo persistent.FeedbackRepository
	logger       *logger.Logger
}

func NewFeedbackUseCase(feedbackRepo persistent.FeedbackRepository, logger *logger.Logger) FeedbackUseCase {
	return &feedbackUseCase{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

func (uc *feedbackUseCase) CreateFeedback(ctx context.Context, actor *entity.Actor, input FeedbackInput) (*entity.Feedback, error) {
	if err := authorize(uc.logger, actor, policy.ActionCreateFeedback, policy.Resource{}, ""); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	feedback := &entity.Feedback{
		UserID:    actor.ID,
		Name:      entity.FeedbackName(input.Anonymous, actor.Name),
		Rating:    input.Rating,
		Feedback:  strings.TrimSpace(input.Feedback),
		Therapist: strings.TrimSpace(input.Therapist),
	}

	if err := uc.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, classify(uc.logger, "create feedback", err)
	}
	return feedback, nil
}

func (uc *feedbackUseCase) ListFeedback(ctx context.Context, therapist string) ([]*entity.Feedback, error) {
	feedbacks, err := uc.feedbackRepo.List(ctx, strings.TrimSpace(therapist))
	if err != nil {
		return nil, classify(uc.logger, "list feedback", err)
	}
	return feedbacks, nil
}

func (uc *feedbackUseCase) ListMyFeedback(ctx context.Context, actor *entity.Actor) ([]*entity.Feedback, error) {
	if actor == nil || actor.ID == "" {
		return nil, apperror.ErrUnauthorized
	}
	feedbacks, err := uc.feedbackRepo.ListByUser(ctx, actor.ID)
	if err != nil {
		return nil, classify(uc.logger, "list my feedback", err)
	}
	return feedbacks, nil
}

// UpdateFeedback replaces rating, text and therapist and re-snapshots the
// display name from the anonymous flag.
func (uc *feedbackUseCase) UpdateFeedback(ctx context.Context, actor *entity.Actor, feedbackID string, input FeedbackInput) (*entity.Feedback, error) {
	feedback, err := uc.load(ctx, actor, feedbackID)
	if err != nil {
		return nil, err
	}
	if err := authorize(uc.logger, actor, policy.ActionEditFeedback, policy.FeedbackResource(feedback), feedbackID); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	feedback.Name = entity.FeedbackName(input.Anonymous, actor.Name)
	feedback.Rating = input.Rating
	feedback.Feedback = strings.TrimSpace(input.Feedback)
	feedback.Therapist = strings.TrimSpace(input.Therapist)

	if err := uc.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, classify(uc.logger, "update feedback", err)
	}
	return feedback, nil
}

func (uc *feedbackUseCase) DeleteFeedback(ctx context.Context, actor *entity.Actor, feedbackID string) error {
	feedback, err := uc.load(ctx, actor, feedbackID)
	if err != nil {
		return err
	}
	if err := authorize(uc.logger, actor, policy.ActionDeleteFeedback, policy.FeedbackResource(feedback), feedbackID); err != nil {
		return err
	}

	if err := uc.feedbackRepo.Delete(ctx, feedbackID); err != nil {
		return classify(uc.logger, "delete feedback", err)
	}

	uc.logger.Info("Feedback deleted: feedback_id=%s, actor_id=%s", feedbackID, actor.ID)
	return nil
}

func (uc *feedbackUseCase) load(ctx context.Context, actor *entity.Actor, feedbackID string) (*entity.Feedback, error) {
	if actor == nil || actor.ID == "" {
		return nil, apperror.ErrUnauthorized
	}
	feedback, err := uc.feedbackRepo.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, classify(uc.logger, "get feedback", err)
	}
	return feedback, nil
}
