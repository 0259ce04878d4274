package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/repository"
)

// mongoWorkoutRepository implements repository.WorkoutRepository on top of the
// trainers collection, where workout plans live as an embedded array.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

// Append adds a workout to the end of the trainer's workout list.
func (r *mongoWorkoutRepository) Append(ctx context.Context, trainerID primitive.ObjectID, workout domain.Workout) error {
	if trainerID == primitive.NilObjectID {
		return errors.New("trainer ID is required to append a workout")
	}

	update := bson.M{"$push": bson.M{"workouts": workout}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": trainerID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// GetByTrainerID returns the trainer's workout list in stored order.
func (r *mongoWorkoutRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Workout, error) {
	var trainer domain.Trainer
	opts := options.FindOne().SetProjection(bson.M{"workouts": 1})
	err := r.collection.FindOne(ctx, bson.M{"_id": trainerID}, opts).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return trainer.Workouts, nil
}

// DeleteByIndex removes the workout at the given position. Mongo has no
// positional $pull, so the element is first $unset to null and then pulled.
func (r *mongoWorkoutRepository) DeleteByIndex(ctx context.Context, trainerID primitive.ObjectID, index int) error {
	if index < 0 {
		return repository.ErrNotFound
	}

	field := fmt.Sprintf("workouts.%d", index)
	// Filter on the element existing so an out-of-range index reports not found
	// instead of silently matching the trainer document.
	filter := bson.M{"_id": trainerID, field: bson.M{"$exists": true}}

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$unset": bson.M{field: 1}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": trainerID}, bson.M{"$pull": bson.M{"workouts": nil}})
	return err
}
