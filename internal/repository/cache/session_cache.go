package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/repository"
)

const (
	trainerSessionsKeyPrefix = "sessions:trainer:"
	sessionCacheTTL          = 5 * time.Minute
)

// CachedSessionRepository wraps a SessionRepository with Redis caching of the
// per-trainer session list. The list is the hot read path (the overlap check
// loads it on every create) and is invalidated whenever a session is inserted.
type CachedSessionRepository struct {
	next   repository.SessionRepository
	client *redis.Client
}

// NewCachedSessionRepository creates a caching decorator over next.
func NewCachedSessionRepository(next repository.SessionRepository, client *redis.Client) *CachedSessionRepository {
	return &CachedSessionRepository{
		next:   next,
		client: client,
	}
}

// Create inserts through to the underlying store and invalidates the trainer's
// cached list so the next read observes the new session.
func (r *CachedSessionRepository) Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	id, err := r.next.Create(ctx, session)
	if err != nil {
		return id, err
	}
	_ = r.client.Del(ctx, trainerSessionsKeyPrefix+session.TrainerID.Hex()).Err()
	return id, nil
}

// GetByTrainerID retrieves the trainer's sessions, serving from cache on a hit.
func (r *CachedSessionRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.TrainingSession, error) {
	key := trainerSessionsKeyPrefix + trainerID.Hex()

	data, err := r.client.Get(ctx, key).Bytes()
	if err == nil {
		var sessions []domain.TrainingSession
		if err := json.Unmarshal(data, &sessions); err == nil {
			return sessions, nil
		}
		// Corrupt entry: drop it and fall through to the store.
		_ = r.client.Del(ctx, key).Err()
	} else if err != redis.Nil {
		// Redis being down must not take the read path with it.
		return r.next.GetByTrainerID(ctx, trainerID)
	}

	sessions, err := r.next.GetByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sessions); err == nil {
		_ = r.client.Set(ctx, key, data, sessionCacheTTL).Err()
	}
	return sessions, nil
}

// GetByTrainerIDAndDay is a pass-through; date-scoped reads are rare compared
// to the full list and not worth their own keys.
func (r *CachedSessionRepository) GetByTrainerIDAndDay(ctx context.Context, trainerID primitive.ObjectID, day string) ([]domain.TrainingSession, error) {
	return r.next.GetByTrainerIDAndDay(ctx, trainerID, day)
}
