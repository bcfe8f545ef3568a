package usecase

import (
	"context"

	"vlog-hub/internal/entity"
	"vlog-hub/internal/repo/persistent"
	"vlog-hub/pkg/logger"
)

// DefaultTherapists is the directory installed by the seed command.
func DefaultTherapists() []entity.Therapist {
	return []entity.Therapist{
		{Name: "Dr. Sarah Johnson", Specialization: "Cognitive Behavioral Therapy"},
		{Name: "Dr. Michael Chen", Specialization: "Family Counseling"},
	}
}

type TherapistUseCase interface {
	ListTherapists(ctx context.Context) ([]*entity.Therapist, error)
	SeedTherapists(ctx context.Context, therapists []entity.Therapist) error
}

type therapistUseCase struct {
	therapistRepo persistent.TherapistRepository
	logger        *logger.Logger
}

func NewTherapistUseCase(therapistRepo persistent.TherapistRepository, logger *logger.Logger) TherapistUseCase {
	return &therapistUseCase{
		therapistRepo: therapistRepo,
		logger:        logger,
	}
}

func (uc *therapistUseCase) ListTherapists(ctx context.Context) ([]*entity.Therapist, error) {
	therapists, err := uc.therapistRepo.List(ctx)
	if err != nil {
		return nil, classify(uc.logger, "list therapists", err)
	}
	return therapists, nil
}

// SeedTherapists replaces the whole directory.
func (uc *therapistUseCase) SeedTherapists(ctx context.Context, therapists []entity.Therapist) error {
	if err := uc.therapistRepo.ReplaceAll(ctx, therapists); err != nil {
		return classify(uc.logger, "seed therapists", err)
	}
	uc.logger.Info("Therapist directory seeded: count=%d", len(therapists))
	return nil
}
