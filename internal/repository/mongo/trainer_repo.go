package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"latissimus/trainer-app/internal/domain"
	"latissimus/trainer-app/internal/repository"
)

const trainerCollectionName = "trainers"

// mongoTrainerRepository implements repository.TrainerRepository
type mongoTrainerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainerRepository creates a new Trainer repository.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

// Create inserts a new trainer profile.
func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	if trainer.Name == "" {
		return primitive.NilObjectID, errors.New("trainer requires a name")
	}
	trainer.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, trainer)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted trainer ID")
	}
	return insertedID, nil
}

// GetByID retrieves a single trainer by ID.
func (r *mongoTrainerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// Update overwrites the profile fields of an existing trainer. The embedded
// workout list is managed by the workout repository and left untouched here.
func (r *mongoTrainerRepository) Update(ctx context.Context, id primitive.ObjectID, trainer *domain.Trainer) error {
	if id == primitive.NilObjectID {
		return errors.New("trainer ID is required for update")
	}

	updateDoc := bson.M{
		"$set": bson.M{
			"name":           trainer.Name,
			"address":        trainer.Address,
			"age":            trainer.Age,
			"description":    trainer.Description,
			"motto":          trainer.Motto,
			"gym":            trainer.Gym,
			"specialization": trainer.Specialization,
			"profileImage":   trainer.ProfileImage,
			"updatedAt":      time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, updateDoc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
