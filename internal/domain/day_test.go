package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSchedule_Totals(t *testing.T) {
	s := Schedule{
		{Date: day(2025, 3, 10), HoursPlanned: 2.5, HoursToWork: 4},
		{Date: day(2025, 3, 11), HoursPlanned: 1, HoursToWork: 6},
	}
	assert.InDelta(t, 3.5, s.TotalPlanned(), 1e-9)
	assert.Equal(t, 10, s.TotalWork())
}

func TestSchedule_CloneDoesNotAlias(t *testing.T) {
	s := Schedule{{Date: day(2025, 3, 10), HoursToWork: 1}}
	c := s.Clone()
	c[0].HoursToWork = 9

	assert.Equal(t, 1, s[0].HoursToWork)
	assert.Nil(t, Schedule(nil).Clone())
}

func TestSchedule_Validate(t *testing.T) {
	ok := Schedule{{Date: day(2025, 3, 10)}, {Date: day(2025, 3, 12)}}
	require.NoError(t, ok.Validate())

	dup := Schedule{{Date: day(2025, 3, 10)}, {Date: day(2025, 3, 10)}}
	err := dup.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2025-03-10")

	backwards := Schedule{{Date: day(2025, 3, 11)}, {Date: day(2025, 3, 10)}}
	assert.Error(t, backwards.Validate())
}

func TestDateOf_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	late := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	assert.Equal(t, day(2025, 3, 10), DateOf(late))
	assert.Equal(t, "2025-03-10", DateKey(late))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-30")
	require.NoError(t, err)
	assert.Equal(t, day(2025, 6, 30), d)

	_, err = ParseDate("30/06/2025")
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestCalendarEvent_Validate(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	valid := CalendarEvent{Summary: "Lecture", StartsAt: start, EndsAt: start.Add(90 * time.Minute)}
	require.NoError(t, valid.Validate())
	assert.Equal(t, 90*time.Minute, valid.Duration())

	noSummary := CalendarEvent{StartsAt: start, EndsAt: start}
	assert.ErrorContains(t, noSummary.Validate(), "summary")

	reversed := CalendarEvent{Summary: "Oops", StartsAt: start, EndsAt: start.Add(-time.Hour)}
	assert.ErrorContains(t, reversed.Validate(), "ends before")

	allDay := CalendarEvent{Summary: "Holiday", StartsAt: start, EndsAt: start.AddDate(0, 0, 1), AllDay: true}
	assert.Zero(t, allDay.Duration())
}

func TestCalendarEvent_DisplayID(t *testing.T) {
	e := CalendarEvent{ID: "0123456789abcdef"}
	assert.Equal(t, "01234567", e.DisplayID())
	short := CalendarEvent{ID: "abc"}
	assert.Equal(t, "abc", short.DisplayID())
}
