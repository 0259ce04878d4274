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
	ErrWorkoutInvalid  = errors.New("workout validation failed")
	ErrWorkoutNotFound = errors.New("workout not found")
)

// --- Service Interface ---
type WorkoutService interface {
	AddWorkout(ctx context.Context, trainerID primitive.ObjectID, workout domain.Workout) (*domain.Workout, error)
	GetWorkouts(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Workout, error)
	DeleteWorkout(ctx context.Context, trainerID primitive.ObjectID, index int) error
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	trainerRepo repository.TrainerRepository
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(trainerRepo repository.TrainerRepository, workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		trainerRepo: trainerRepo,
		workoutRepo: workoutRepo,
	}
}

// AddWorkout validates a workout plan and appends it to the trainer's list.
// Validation is all-or-nothing: one invalid nested exercise rejects the whole
// plan and nothing is written.
func (s *workoutService) AddWorkout(ctx context.Context, trainerID primitive.ObjectID, workout domain.Workout) (*domain.Workout, error) {
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	if !IsValidWorkout(&workout) {
		return nil, ErrWorkoutInvalid
	}

	if err := s.workoutRepo.Append(ctx, trainerID, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// GetWorkouts retrieves the trainer's workout plans in stored order.
func (s *workoutService) GetWorkouts(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Workout, error) {
	workouts, err := s.workoutRepo.GetByTrainerID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return workouts, nil
}

// DeleteWorkout removes the workout at the given position in the trainer's
// list. A missing trainer reports ErrTrainerNotFound; once the trainer is
// known to exist, a remaining not-found from the store means the index is
// out of range and reports ErrWorkoutNotFound.
func (s *workoutService) DeleteWorkout(ctx context.Context, trainerID primitive.ObjectID, index int) error {
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTrainerNotFound
		}
		return err
	}

	err := s.workoutRepo.DeleteByIndex(ctx, trainerID, index)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}
