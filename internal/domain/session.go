package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TrainingSession represents a bookable, dated coaching slot opened by a trainer.
// TrainerID is always assigned by the scheduling service; a client-supplied
// value is overridden.
type TrainingSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Title     string             `bson:"title" json:"title"`
	City      string             `bson:"city" json:"city"`
	Slots     int                `bson:"slots" json:"slots"`
	StartDate time.Time          `bson:"startDate" json:"startDate"`

	// Date-only rendering of StartDate ("2006-01-02", UTC). Conflict detection
	// and the storage-level uniqueness constraint both key on this value.
	StartDay string `bson:"startDay" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DayOf renders a timestamp at date-only precision, the granularity used for
// scheduling conflicts and lead-time checks.
func DayOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
