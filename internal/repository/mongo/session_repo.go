package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/repository"
)

const sessionCollectionName = "training_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new TrainingSession repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a new training session. The unique (trainerId, startDay)
// index is the storage-side guard against two concurrent requests booking the
// same calendar date; losing that race surfaces as repository.ErrConflict.
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.TrainingSession) (primitive.ObjectID, error) {
	if session.TrainerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("session requires a trainerId")
	}
	session.ID = primitive.NewObjectID()
	session.StartDay = domain.DayOf(session.StartDate)
	session.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrConflict
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// GetByTrainerID retrieves all sessions opened by a trainer, soonest first.
func (r *mongoSessionRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.TrainingSession, error) {
	return r.find(ctx, bson.M{"trainerId": trainerID})
}

// GetByTrainerIDAndDay retrieves the trainer's sessions for one calendar date.
func (r *mongoSessionRepository) GetByTrainerIDAndDay(ctx context.Context, trainerID primitive.ObjectID, day string) ([]domain.TrainingSession, error) {
	return r.find(ctx, bson.M{"trainerId": trainerID, "startDay": day})
}

func (r *mongoSessionRepository) find(ctx context.Context, filter bson.M) ([]domain.TrainingSession, error) {
	var sessions []domain.TrainingSession
	findOptions := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// EnsureSessionIndexes creates necessary indexes. Call during startup. The
// unique (trainerId, startDay) index backs the double-booking guard, so a
// creation failure must abort startup rather than be ignored.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// One session per trainer per calendar date.
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "startDay", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "startDate", Value: 1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
