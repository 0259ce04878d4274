package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/repository"
)

// fakeTrainerRepo is an in-memory TrainerRepository.
type fakeTrainerRepo struct {
	mu       sync.Mutex
	trainers map[primitive.ObjectID]*domain.Trainer
}

func newFakeTrainerRepo(trainers ...*domain.Trainer) *fakeTrainerRepo {
	repo := &fakeTrainerRepo{trainers: make(map[primitive.ObjectID]*domain.Trainer)}
	for _, trainer := range trainers {
		repo.trainers[trainer.ID] = trainer
	}
	return repo
}

func (r *fakeTrainerRepo) Create(_ context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID()
	trainer.ID = id
	r.trainers[id] = trainer
	return id, nil
}

func (r *fakeTrainerRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	trainer, ok := r.trainers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return trainer, nil
}

func (r *fakeTrainerRepo) Update(_ context.Context, id primitive.ObjectID, trainer *domain.Trainer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.trainers[id]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Name = trainer.Name
	existing.Address = trainer.Address
	existing.Age = trainer.Age
	existing.Description = trainer.Description
	existing.Motto = trainer.Motto
	existing.Gym = trainer.Gym
	existing.Specialization = trainer.Specialization
	existing.ProfileImage = trainer.ProfileImage
	return nil
}

// fakeSessionRepo is an in-memory SessionRepository that enforces the same
// uniqueness constraint as the storage layer: at most one session per
// (trainer, calendar date) pair.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []domain.TrainingSession
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day := domain.DayOf(session.StartDate)
	for i := range r.sessions {
		if r.sessions[i].TrainerID == session.TrainerID && r.sessions[i].StartDay == day {
			return primitive.NilObjectID, repository.ErrConflict
		}
	}
	session.ID = primitive.NewObjectID()
	session.StartDay = day
	r.sessions = append(r.sessions, *session)
	return session.ID, nil
}

func (r *fakeSessionRepo) GetByTrainerID(_ context.Context, trainerID primitive.ObjectID) ([]domain.TrainingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TrainingSession
	for i := range r.sessions {
		if r.sessions[i].TrainerID == trainerID {
			out = append(out, r.sessions[i])
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) GetByTrainerIDAndDay(_ context.Context, trainerID primitive.ObjectID, day string) ([]domain.TrainingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.TrainingSession
	for i := range r.sessions {
		if r.sessions[i].TrainerID == trainerID && r.sessions[i].StartDay == day {
			out = append(out, r.sessions[i])
		}
	}
	return out, nil
}

// fakeWorkoutRepo is an in-memory WorkoutRepository keyed by trainer.
type fakeWorkoutRepo struct {
	mu       sync.Mutex
	trainers *fakeTrainerRepo
	workouts map[primitive.ObjectID][]domain.Workout
}

func newFakeWorkoutRepo(trainers *fakeTrainerRepo) *fakeWorkoutRepo {
	return &fakeWorkoutRepo{
		trainers: trainers,
		workouts: make(map[primitive.ObjectID][]domain.Workout),
	}
}

func (r *fakeWorkoutRepo) Append(ctx context.Context, trainerID primitive.ObjectID, workout domain.Workout) error {
	if _, err := r.trainers.GetByID(ctx, trainerID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workouts[trainerID] = append(r.workouts[trainerID], workout)
	return nil
}

func (r *fakeWorkoutRepo) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Workout, error) {
	if _, err := r.trainers.GetByID(ctx, trainerID); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.workouts[trainerID], nil
}

func (r *fakeWorkoutRepo) DeleteByIndex(ctx context.Context, trainerID primitive.ObjectID, index int) error {
	if _, err := r.trainers.GetByID(ctx, trainerID); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.workouts[trainerID]
	if index < 0 || index >= len(list) {
		return repository.ErrNotFound
	}
	r.workouts[trainerID] = append(list[:index], list[index+1:]...)
	return nil
}
