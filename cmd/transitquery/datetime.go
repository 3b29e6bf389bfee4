package main

import (
	"time"

	"github.com/pkg/errors"
)

// ErrUnparseableDateTime is returned when a departure date-time does
// not match one of the accepted European written forms.
var ErrUnparseableDateTime = errors.New("transitquery: unparseable date-time")

// parseEuropeanDateTime accepts "dd.mm.yyyy HH:MM" or "dd.mm HH:MM"
// (year defaults to now's year), as spec.md §6.3 requires of the
// interactive terminal surface.
func parseEuropeanDateTime(s string, now time.Time) (time.Time, error) {
	if t, err := time.ParseInLocation("02.01.2006 15:04", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("02.01 15:04", s, time.Local); err == nil {
		return time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
	}
	return time.Time{}, errors.Wrapf(ErrUnparseableDateTime, "%q (want dd.mm.yyyy HH:MM or dd.mm HH:MM)", s)
}

func mustFormat(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}
