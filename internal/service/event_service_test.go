package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/workcal/internal/domain"
	"github.com/alexanderramin/workcal/internal/repository"
	"github.com/alexanderramin/workcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_AddAssignsIDAndSource(t *testing.T) {
	svc := NewEventService(setupEvents(t), time.UTC)
	ctx := context.Background()

	e := &domain.CalendarEvent{
		Summary:  "Dentist",
		StartsAt: testutil.At(2025, 4, 2, 14, 0),
		EndsAt:   testutil.At(2025, 4, 2, 15, 0),
	}
	require.NoError(t, svc.Add(ctx, e))
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, domain.SourceManual, e.Source)

	got, err := svc.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dentist", got.Summary)
}

func TestEventService_AddRejectsInvalid(t *testing.T) {
	svc := NewEventService(setupEvents(t), time.UTC)

	err := svc.Add(context.Background(), &domain.CalendarEvent{
		Summary:  "Backwards",
		StartsAt: testutil.At(2025, 4, 2, 15, 0),
		EndsAt:   testutil.At(2025, 4, 2, 14, 0),
	})
	assert.ErrorContains(t, err, "ends before it starts")
}

func TestEventService_GetByPrefix(t *testing.T) {
	e := testutil.NewTestEvent(testutil.At(2025, 4, 2, 9, 0), time.Hour)
	svc := NewEventService(setupEvents(t, e), time.UTC)

	got, err := svc.Get(context.Background(), e.DisplayID())
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)

	_, err = svc.Get(context.Background(), "zzzzzzzz")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEventService_ListBetweenIsInclusive(t *testing.T) {
	svc := NewEventService(setupEvents(t,
		testutil.NewTestEvent(testutil.At(2025, 4, 1, 9, 0), time.Hour),
		testutil.NewTestEvent(testutil.At(2025, 4, 2, 9, 0), time.Hour),
		testutil.NewTestEvent(testutil.At(2025, 4, 3, 23, 0), time.Hour),
		testutil.NewTestEvent(testutil.At(2025, 4, 4, 0, 0), time.Hour),
	), time.UTC)
	ctx := context.Background()

	events, err := svc.ListBetween(ctx, testutil.Day(2025, 4, 2), testutil.Day(2025, 4, 3))
	require.NoError(t, err)
	assert.Len(t, events, 2)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = svc.ListBetween(ctx, testutil.Day(2025, 4, 3), testutil.Day(2025, 4, 2))
	assert.ErrorContains(t, err, "is after end")
}

func TestEventService_Delete(t *testing.T) {
	e := testutil.NewTestEvent(testutil.At(2025, 4, 2, 9, 0), time.Hour, testutil.WithSummary("Standup"))
	svc := NewEventService(setupEvents(t, e), time.UTC)
	ctx := context.Background()

	deleted, err := svc.Delete(ctx, e.DisplayID())
	require.NoError(t, err)
	assert.Equal(t, "Standup", deleted.Summary)

	_, err = svc.Delete(ctx, e.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
