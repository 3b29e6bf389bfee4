package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEuropeanDateTimeWithYear(t *testing.T) {
	now := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.Local)
	got, err := parseEuropeanDateTime("05.01.2026 10:30", now)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 5, got.Day())
	assert.Equal(t, 10, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseEuropeanDateTimeDefaultsYear(t *testing.T) {
	now := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.Local)
	got, err := parseEuropeanDateTime("05.01 10:30", now)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 5, got.Day())
}

func TestParseEuropeanDateTimeRejectsGarbage(t *testing.T) {
	_, err := parseEuropeanDateTime("not a date", time.Now())
	assert.ErrorIs(t, err, ErrUnparseableDateTime)
}
