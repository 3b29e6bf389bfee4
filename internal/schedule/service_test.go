package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestServiceActiveOnWeeklyPattern(t *testing.T) {
	svc := NewService(0, "weekday", WeekdayMonday|WeekdayTuesday|WeekdayWednesday|WeekdayThursday|WeekdayFriday,
		date(2026, time.January, 1), date(2026, time.December, 31))

	assert.True(t, svc.ActiveOn(date(2026, time.January, 5)))  // Monday
	assert.False(t, svc.ActiveOn(date(2026, time.January, 3))) // Saturday
}

func TestServiceActiveOnRespectsDateBounds(t *testing.T) {
	svc := NewService(0, "summer", WeekdayMonday, date(2026, time.June, 1), date(2026, time.August, 31))

	assert.False(t, svc.ActiveOn(date(2026, time.January, 5))) // before start, even though Monday
	assert.False(t, svc.ActiveOn(date(2026, time.September, 7)))
}

func TestServiceExceptionsOverrideWeeklyPattern(t *testing.T) {
	svc := NewService(0, "weekday", WeekdayMonday, date(2026, time.January, 1), date(2026, time.December, 31))
	svc.AddException(date(2026, time.January, 5), ExceptionRemoved) // holiday Monday
	svc.AddException(date(2026, time.January, 6), ExceptionAdded)   // added Tuesday

	assert.False(t, svc.ActiveOn(date(2026, time.January, 5)))
	assert.True(t, svc.ActiveOn(date(2026, time.January, 6)))
}

func TestServiceWithNoWeeklyPatternIsExceptionOnly(t *testing.T) {
	svc := NewService(0, "special", 0, time.Time{}, time.Time{})
	assert.False(t, svc.ActiveOn(date(2026, time.January, 5)))

	svc.AddException(date(2026, time.January, 5), ExceptionAdded)
	assert.True(t, svc.ActiveOn(date(2026, time.January, 5)))
}
