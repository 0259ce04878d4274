package service

import (
	"regexp"
	"time"
	"unicode/utf8"

	"latissimus/trainer-app/internal/domain"
)

// City names are plain ASCII letters: no digits, spaces, or punctuation.
var cityPattern = regexp.MustCompile(`^[a-zA-Z]+$`)

// IsValidSession reports whether a candidate training session satisfies all
// field-level constraints: title 3-30 chars, at least one slot, city 3-20
// ASCII letters, and a start date no earlier than tomorrow (UTC, date-only).
// Pure function, no side effects.
func IsValidSession(session *domain.TrainingSession) bool {
	return isValidSessionAt(session, time.Now().UTC())
}

// isValidSessionAt is the clock-injected form of IsValidSession. Each clause
// is evaluated independently so a single violated constraint is easy to pin
// down in tests.
func isValidSessionAt(session *domain.TrainingSession, now time.Time) bool {
	if session == nil {
		return false
	}
	// Lengths count characters, not bytes, so multibyte titles are not
	// penalized. City needs no rune counting: its pattern is ASCII-only.
	if titleLen := utf8.RuneCountInString(session.Title); titleLen < 3 || titleLen > 30 {
		return false
	}
	if session.Slots <= 0 {
		return false
	}
	if len(session.City) < 3 || len(session.City) > 20 {
		return false
	}
	if !cityPattern.MatchString(session.City) {
		return false
	}
	// No same-day or past bookings: the earliest acceptable start is the next
	// calendar day at UTC date-only precision.
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	if session.StartDate.Before(tomorrow) {
		return false
	}
	return true
}

// IsValidWorkout reports whether a workout plan satisfies its structural
// constraints: title of at least 3 chars, a known intensity label, and every
// exercise of every day independently valid. Validation is all-or-nothing; a
// single bad exercise rejects the whole workout.
func IsValidWorkout(workout *domain.Workout) bool {
	if workout == nil {
		return false
	}
	if utf8.RuneCountInString(workout.Title) < 3 {
		return false
	}
	switch workout.Intensity {
	case domain.IntensityLow, domain.IntensityModerate, domain.IntensityHigh:
	default:
		return false
	}
	for _, exercises := range workout.Exercises {
		for _, exercise := range exercises {
			if utf8.RuneCountInString(exercise.Name) < 3 {
				return false
			}
			// An absent RPE is fine; a present one must be in [1,10].
			if exercise.RPE != nil && (*exercise.RPE < 1 || *exercise.RPE > 10) {
				return false
			}
		}
	}
	return true
}
