package domain

// Workout intensity labels. Matching is exact and case-sensitive.
const (
	IntensityLow      = "low"
	IntensityModerate = "moderate"
	IntensityHigh     = "high"
)

// Workout is a day-indexed exercise plan owned by exactly one trainer.
// The Exercises map goes from a day label (e.g. "Monday") to the ordered
// list of exercises for that day.
type Workout struct {
	Title     string                `bson:"title" json:"title"`
	Intensity string                `bson:"intensity" json:"intensity"`
	Exercises map[string][]Exercise `bson:"exercises,omitempty" json:"exercises,omitempty"`
}

// Exercise is a single entry in a workout day. RPE (rating of perceived
// exertion) is optional; when present it must be in [1,10].
type Exercise struct {
	Name string `bson:"name" json:"name"`
	RPE  *int   `bson:"rpe,omitempty" json:"rpe,omitempty"`
}
