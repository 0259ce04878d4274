package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayOf(t *testing.T) {
	assert.Equal(t, "2026-09-14", DayOf(time.Date(2026, 9, 14, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, "2026-09-14", DayOf(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)))

	// Non-UTC inputs are normalized before the date is taken.
	bucharest := time.FixedZone("EEST", 3*60*60)
	assert.Equal(t, "2026-09-13", DayOf(time.Date(2026, 9, 14, 1, 30, 0, 0, bucharest)))
}
