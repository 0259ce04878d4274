package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles carried in auth tokens.
type Role string

// Define constants for roles
const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// Trainer represents a coaching professional's profile.
// Workouts are embedded in the trainer document because they have no lifecycle
// of their own: they are appended by the trainer and deleted by index.
type Trainer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	Age            int                `bson:"age,omitempty" json:"age,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Motto          string             `bson:"motto,omitempty" json:"motto,omitempty"`
	Gym            string             `bson:"gym,omitempty" json:"gym,omitempty"`
	Specialization string             `bson:"specialization,omitempty" json:"specialization,omitempty"`

	// Reference to an externally stored profile image (a key or URL).
	// The platform never handles the bytes itself.
	ProfileImage string `bson:"profileImage,omitempty" json:"profileImage,omitempty"`

	Workouts []Workout `bson:"workouts,omitempty" json:"workouts,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
