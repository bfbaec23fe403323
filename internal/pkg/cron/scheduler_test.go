package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextOccurrenceLaterToday(t *testing.T) {
	now := time.Date(2024, time.March, 11, 0, 15, 0, 0, time.UTC)
	at := time.Date(2024, time.March, 11, 1, 30, 0, 0, time.UTC)

	next := nextOccurrence(at, now)
	assert.Equal(t, time.Date(2024, time.March, 11, 1, 30, 0, 0, time.UTC), next)
}

func TestNextOccurrenceRollsToTomorrow(t *testing.T) {
	now := time.Date(2024, time.March, 11, 2, 0, 0, 0, time.UTC)
	at := time.Date(2024, time.March, 11, 1, 30, 0, 0, time.UTC)

	next := nextOccurrence(at, now)
	assert.Equal(t, time.Date(2024, time.March, 12, 1, 30, 0, 0, time.UTC), next)
}

func TestNextOccurrenceExactMomentRolls(t *testing.T) {
	now := time.Date(2024, time.March, 11, 1, 30, 0, 0, time.UTC)
	at := now

	next := nextOccurrence(at, now)
	assert.Equal(t, time.Date(2024, time.March, 12, 1, 30, 0, 0, time.UTC), next)
}

func TestRunOnceExecutesAllJobs(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	ran := 0
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		ran++
		return nil
	})
	s.AddDailyJob("second", 1, 30, func(ctx context.Context) error {
		ran++
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 2, ran)
}
