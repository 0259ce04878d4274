package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrTrainerInvalid  = errors.New("trainer profile validation failed")
)

// --- Service Interface ---
type TrainerService interface {
	CreateTrainer(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error)
	GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	UpdateTrainer(ctx context.Context, id primitive.ObjectID, trainer *domain.Trainer) error
}

// trainerService implements the TrainerService interface. Profile management
// is a thin passthrough; all interesting rules live in the scheduling and
// workout services.
type trainerService struct {
	trainerRepo repository.TrainerRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainerRepo repository.TrainerRepository) TrainerService {
	return &trainerService{
		trainerRepo: trainerRepo,
	}
}

// CreateTrainer registers a new trainer profile.
func (s *trainerService) CreateTrainer(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	if trainer == nil || trainer.Name == "" {
		return nil, ErrTrainerInvalid
	}

	id, err := s.trainerRepo.Create(ctx, trainer)
	if err != nil {
		return nil, err
	}
	trainer.ID = id
	return trainer, nil
}

// GetTrainer retrieves a trainer profile by ID.
func (s *trainerService) GetTrainer(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}

// UpdateTrainer overwrites the profile fields of an existing trainer.
func (s *trainerService) UpdateTrainer(ctx context.Context, id primitive.ObjectID, trainer *domain.Trainer) error {
	if trainer == nil || trainer.Name == "" {
		return ErrTrainerInvalid
	}

	err := s.trainerRepo.Update(ctx, id, trainer)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTrainerNotFound
	}
	return err
}
