package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
)

// Error constants for the repository layer
var (
	ErrNotFound = RepositoryError("not found")
	// ErrConflict is returned when an insert loses to the storage-level
	// uniqueness constraint on (trainerId, startDay).
	ErrConflict = RepositoryError("conflict")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// TrainerRepository defines the interface for interacting with trainer profiles.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	Update(ctx context.Context, id primitive.ObjectID, trainer *domain.Trainer) error
}

// WorkoutRepository manages the workout plans embedded in a trainer record.
// Workouts have no identity of their own: they are appended and addressed by
// position within the trainer's list.
type WorkoutRepository interface {
	Append(ctx context.Context, trainerID primitive.ObjectID, workout domain.Workout) error
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Workout, error)
	DeleteByIndex(ctx context.Context, trainerID primitive.ObjectID, index int) error
}

// SessionRepository defines the interface for interacting with training sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.TrainingSession, error)
	// GetByTrainerIDAndDay filters by the date-only value of the session start.
	GetByTrainerIDAndDay(ctx context.Context, trainerID primitive.ObjectID, day string) ([]domain.TrainingSession, error)
}
