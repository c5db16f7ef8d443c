package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/arkan-dev/eduverse-api/internal/repository"
)

func newTestActivityService(t *testing.T) *activityService {
	t.Helper()

	repo := repository.NewActivityRepository(testDB(t))
	svc := NewActivityService(repo, zerolog.Nop()).(*activityService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }

	return svc
}

func TestActivityAccumulatesFractionalMinutes(t *testing.T) {
	svc := newTestActivityService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordMinutes(ctx, "guest", "2024-03-15", 10.0+5.0/60.0))
	require.NoError(t, svc.RecordMinutes(ctx, "guest", "2024-03-15", 15.5))

	series, err := svc.LastNDays(ctx, "guest", 7)
	require.NoError(t, err)
	require.Len(t, series, 7)
	require.Equal(t, "2024-03-15", series[6].Date)
	require.InDelta(t, 25.0+35.0/60.0, series[6].Minutes, 1e-9)
}

func TestActivityWindowIsDense(t *testing.T) {
	svc := newTestActivityService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordMinutes(ctx, "guest", "2024-03-13", 30))

	series, err := svc.LastNDays(ctx, "guest", 7)
	require.NoError(t, err)
	require.Len(t, series, 7)

	require.Equal(t, "2024-03-09", series[0].Date)
	for i, day := range series {
		if day.Date == "2024-03-13" {
			require.InDelta(t, 30, day.Minutes, 1e-9)
			continue
		}
		require.Zero(t, series[i].Minutes, "day %s should be empty", day.Date)
	}
}

func TestActivityScopesAreIsolated(t *testing.T) {
	svc := newTestActivityService(t)
	ctx := context.Background()

	require.NoError(t, svc.RecordMinutes(ctx, "alice@example.com", "2024-03-15", 42))

	series, err := svc.LastNDays(ctx, "guest", 7)
	require.NoError(t, err)
	for _, day := range series {
		require.Zero(t, day.Minutes)
	}
}
