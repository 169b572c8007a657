package workouts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/2beens/workoutweek/internal/weekdates"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(repo workoutsRepo, now time.Time) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return now }
	return s
}

func TestService_GetWeekView_EmptyStore(t *testing.T) {
	now := time.Date(2025, time.May, 14, 10, 0, 0, 0, time.Local)
	s := testService(NewTestRepo(), now)

	view, err := s.GetWeekView(context.Background(), CurrentWeek())
	require.NoError(t, err)
	require.Len(t, view.Dates, 7)
	require.Len(t, view.Workouts, 7)

	assert.Equal(t, "2025-05-12", view.Dates[0])
	assert.Equal(t, "2025-05-18", view.Dates[6])
	assert.Contains(t, view.Dates, now.Format(weekdates.DateLayout))

	for _, date := range view.Dates {
		w, ok := view.Workouts[date]
		require.True(t, ok, "missing record for %s", date)
		assert.Equal(t, date, w.Date)
		assert.False(t, w.Completed)
		assert.Nil(t, w.Message)
	}
}

func TestService_GetWeekView_MergesStoredRecords(t *testing.T) {
	now := time.Date(2025, time.May, 14, 10, 0, 0, 0, time.Local)
	repo := NewTestRepo()
	s := testService(repo, now)

	ctx := context.Background()
	message := gofakeit.Sentence(4)
	toggled, err := s.Toggle(ctx, "2025-05-13", message)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	view, err := s.GetWeekView(ctx, CurrentWeek())
	require.NoError(t, err)

	stored := view.Workouts["2025-05-13"]
	assert.True(t, stored.Completed)
	require.NotNil(t, stored.Message)
	assert.Equal(t, message, *stored.Message)

	// the other six days stay default-empty
	for _, date := range view.Dates {
		if date == "2025-05-13" {
			continue
		}
		assert.False(t, view.Workouts[date].Completed)
		assert.Nil(t, view.Workouts[date].Message)
	}
}

func TestService_GetWeekView_ExplicitWeek(t *testing.T) {
	s := testService(NewTestRepo(), time.Now())

	view, err := s.GetWeekView(context.Background(), ExplicitWeek(2025, 1))
	require.NoError(t, err)
	require.Len(t, view.Dates, 7)
	// first Monday of 2025
	assert.Equal(t, "2025-01-06", view.Dates[0])

	_, err = s.GetWeekView(context.Background(), ExplicitWeek(2025, 54))
	assert.ErrorIs(t, err, weekdates.ErrInvalidWeek)
}

func TestService_Toggle(t *testing.T) {
	s := testService(NewTestRepo(), time.Now())
	ctx := context.Background()

	// first toggle on a fresh date creates the record as completed
	w, err := s.Toggle(ctx, "2025-05-13", "felt great")
	require.NoError(t, err)
	assert.True(t, w.Completed)
	require.NotNil(t, w.Message)
	assert.Equal(t, "felt great", *w.Message)

	// second toggle flips it back, message overwritten even when empty
	w, err = s.Toggle(ctx, "2025-05-13", "")
	require.NoError(t, err)
	assert.False(t, w.Completed)
	require.NotNil(t, w.Message)
	assert.Equal(t, "", *w.Message)
}

func TestService_Toggle_InvalidDate(t *testing.T) {
	s := testService(NewTestRepo(), time.Now())

	for _, invalid := range []string{"", "13-05-2025", "2025-5-13", "garbage"} {
		_, err := s.Toggle(context.Background(), invalid, "msg")
		assert.ErrorIs(t, err, weekdates.ErrInvalidDate, "input: %q", invalid)
	}
}

func TestService_SaveMessage_KeepsCompleted(t *testing.T) {
	s := testService(NewTestRepo(), time.Now())
	ctx := context.Background()

	// a message save on a fresh date creates the record as not completed
	w, err := s.SaveMessage(ctx, "2025-05-13", "note to self")
	require.NoError(t, err)
	assert.False(t, w.Completed)

	// toggling to completed, then saving a message, keeps completed=true
	w, err = s.Toggle(ctx, "2025-05-14", "done")
	require.NoError(t, err)
	require.True(t, w.Completed)

	w, err = s.SaveMessage(ctx, "2025-05-14", "updated note")
	require.NoError(t, err)
	assert.True(t, w.Completed)
	require.NotNil(t, w.Message)
	assert.Equal(t, "updated note", *w.Message)

	// idempotent: saving the same message again changes nothing
	w2, err := s.SaveMessage(ctx, "2025-05-14", "updated note")
	require.NoError(t, err)
	assert.Equal(t, w.Completed, w2.Completed)
	assert.Equal(t, *w.Message, *w2.Message)
}

func TestService_Toggle_Concurrent(t *testing.T) {
	for _, n := range []int{4, 7, 16, 33} {
		repo := NewTestRepo()
		s := testService(repo, time.Now())
		ctx := context.Background()
		date := "2025-05-13"

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Toggle(ctx, date, "concurrent")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repo.GetMany(ctx, []string{date})
		require.NoError(t, err)
		require.Len(t, stored, 1, "exactly one record must exist")

		// N toggles flip the flag N times starting from absent:
		// odd N ends completed, even N ends not completed
		assert.Equal(t, n%2 == 1, stored[date].Completed, "n=%d", n)
	}
}
