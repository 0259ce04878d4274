package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"latissimus/trainer-app/internal/domain"
)

func TestCreateAndGetTrainer(t *testing.T) {
	svc := NewTrainerService(newFakeTrainerRepo())
	ctx := context.Background()

	created, err := svc.CreateTrainer(ctx, &domain.Trainer{Name: "Ana Pop", Gym: "Iron Temple"})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	fetched, err := svc.GetTrainer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pop", fetched.Name)
	assert.Equal(t, "Iron Temple", fetched.Gym)
}

func TestCreateTrainerMissingName(t *testing.T) {
	svc := NewTrainerService(newFakeTrainerRepo())

	_, err := svc.CreateTrainer(context.Background(), &domain.Trainer{})
	assert.ErrorIs(t, err, ErrTrainerInvalid)
}

func TestGetTrainerNotFound(t *testing.T) {
	svc := NewTrainerService(newFakeTrainerRepo())

	_, err := svc.GetTrainer(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestUpdateTrainer(t *testing.T) {
	repo := newFakeTrainerRepo()
	svc := NewTrainerService(repo)
	ctx := context.Background()

	created, err := svc.CreateTrainer(ctx, &domain.Trainer{Name: "Ana Pop"})
	require.NoError(t, err)

	err = svc.UpdateTrainer(ctx, created.ID, &domain.Trainer{Name: "Ana Pop", Motto: "No shortcuts"})
	require.NoError(t, err)

	fetched, err := svc.GetTrainer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "No shortcuts", fetched.Motto)
}

func TestUpdateTrainerNotFound(t *testing.T) {
	svc := NewTrainerService(newFakeTrainerRepo())

	err := svc.UpdateTrainer(context.Background(), primitive.NewObjectID(), &domain.Trainer{Name: "Ana Pop"})
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}
