package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrSessionInvalid  = errors.New("training session validation failed")
	ErrSessionConflict = errors.New("trainer already has a session scheduled on that date")
)

// --- Service Interface ---
type SessionService interface {
	CreateSession(ctx context.Context, trainerID primitive.ObjectID, session *domain.TrainingSession) (*domain.TrainingSession, error)
	GetSessionsByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.TrainingSession, error)
	GetSessionsByDate(ctx context.Context, trainerID primitive.ObjectID, date time.Time) ([]domain.TrainingSession, error)
}

// sessionService implements the SessionService interface.
type sessionService struct {
	trainerRepo repository.TrainerRepository
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(trainerRepo repository.TrainerRepository, sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{
		trainerRepo: trainerRepo,
		sessionRepo: sessionRepo,
	}
}

// CreateSession runs the scheduling guard chain for a candidate session:
// the addressed trainer must exist, the session fields must be valid, and the
// trainer must not already have a session on the same calendar date. Only then
// is the candidate persisted, with TrainerID assigned here regardless of any
// client-supplied value. Failure at any guard leaves no side effect.
func (s *sessionService) CreateSession(ctx context.Context, trainerID primitive.ObjectID, session *domain.TrainingSession) (*domain.TrainingSession, error) {
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	if !IsValidSession(session) {
		return nil, ErrSessionInvalid
	}

	existing, err := s.sessionRepo.GetByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if hasSameDaySession(session, existing) {
		return nil, ErrSessionConflict
	}

	session.TrainerID = trainerID

	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		// A concurrent create for the same trainer and date can slip past the
		// scan above; the store's uniqueness constraint catches it and the
		// loser reports the same conflict as the early check.
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrSessionConflict
		}
		return nil, err
	}
	session.ID = id
	return session, nil
}

// GetSessionsByTrainer retrieves all sessions opened by the trainer.
func (s *sessionService) GetSessionsByTrainer(ctx context.Context, trainerID primitive.ObjectID) ([]domain.TrainingSession, error) {
	return s.sessionRepo.GetByTrainerID(ctx, trainerID)
}

// GetSessionsByDate retrieves the trainer's sessions for one calendar date,
// matching at date-only precision regardless of the time component.
func (s *sessionService) GetSessionsByDate(ctx context.Context, trainerID primitive.ObjectID, date time.Time) ([]domain.TrainingSession, error) {
	return s.sessionRepo.GetByTrainerIDAndDay(ctx, trainerID, domain.DayOf(date))
}

// hasSameDaySession reports whether the candidate's start date coincides, at
// date-only precision, with any already-persisted session in existing. This is
// a same-day exclusivity rule, not an interval overlap: a trainer holds at
// most one session per calendar date, whatever the time of day.
func hasSameDaySession(candidate *domain.TrainingSession, existing []domain.TrainingSession) bool {
	day := domain.DayOf(candidate.StartDate)
	for i := range existing {
		if domain.DayOf(existing[i].StartDate) == day {
			return true
		}
	}
	return false
}
