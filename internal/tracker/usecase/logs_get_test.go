package usecase

import (
	"errors"
	"testing"

	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogsRepo() *fakeRepo {
	return &fakeRepo{
		users: []entity.User{{ID: "user-1", Username: "alice"}},
		exercises: []entity.Exercise{
			{ID: "ex-1", UserID: "user-1", Description: "run", Duration: 30, Date: "2024-03-01"},
			{ID: "ex-2", UserID: "user-1", Description: "swim", Duration: 45, Date: "2024-03-05"},
			{ID: "ex-3", UserID: "user-1", Description: "lift", Duration: 20, Date: "2024-03-10"},
			{ID: "ex-4", UserID: "user-2", Description: "walk", Duration: 10, Date: "2024-03-05"},
		},
	}
}

func TestGetUserLogs(t *testing.T) {
	uc := newTestUsecase(t, newLogsRepo())

	out, err := uc.GetUserLogs(t.Context(), GetUserLogsInput{UserID: "user-1"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", out.ID)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, int64(3), out.Count)
	assert.Equal(t, []LogEntry{
		{Description: "run", Duration: 30, Date: "Fri Mar 01 2024"},
		{Description: "swim", Duration: 45, Date: "Tue Mar 05 2024"},
		{Description: "lift", Duration: 20, Date: "Sun Mar 10 2024"},
	}, out.Log)
}

func TestGetUserLogsDateRange(t *testing.T) {
	uc := newTestUsecase(t, newLogsRepo())

	out, err := uc.GetUserLogs(t.Context(), GetUserLogsInput{
		UserID: "user-1",
		From:   "2024-03-02",
		To:     "2024-03-09",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.Count)
	require.Len(t, out.Log, 1)
	assert.Equal(t, "swim", out.Log[0].Description)
}

func TestGetUserLogsInvertedRange(t *testing.T) {
	uc := newTestUsecase(t, newLogsRepo())

	// from after to matches nothing; that is not an error.
	out, err := uc.GetUserLogs(t.Context(), GetUserLogsInput{
		UserID: "user-1",
		From:   "2024-03-09",
		To:     "2024-03-02",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), out.Count)
	assert.Empty(t, out.Log)
}

func TestGetUserLogsLimit(t *testing.T) {
	uc := newTestUsecase(t, newLogsRepo())

	out, err := uc.GetUserLogs(t.Context(), GetUserLogsInput{UserID: "user-1", Limit: 2})

	require.NoError(t, err)
	// Count ignores the limit, so it can exceed the returned entries.
	assert.Equal(t, int64(3), out.Count)
	assert.Len(t, out.Log, 2)
}

func TestGetUserLogsCountDivergesFromList(t *testing.T) {
	repo := newLogsRepo()
	stale := int64(99)
	repo.countOverride = &stale

	uc := newTestUsecase(t, repo)

	out, err := uc.GetUserLogs(t.Context(), GetUserLogsInput{UserID: "user-1"})

	// Count and the list come from separate reads; neither is reconciled
	// against the other.
	require.NoError(t, err)
	assert.Equal(t, int64(99), out.Count)
	assert.Len(t, out.Log, 3)
}

func TestGetUserLogsInvalidDates(t *testing.T) {
	tests := []struct {
		name  string
		input GetUserLogsInput
	}{
		{name: "BadFrom", input: GetUserLogsInput{UserID: "user-1", From: "yesterday"}},
		{name: "BadTo", input: GetUserLogsInput{UserID: "user-1", To: "tomorrow"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUsecase(t, newLogsRepo())

			out, err := uc.GetUserLogs(t.Context(), tc.input)

			assert.Nil(t, out)

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, goerror.CodeInvalidDate, gerr.Code())
			assert.Equal(t, "Invalid date format,should be YYYY-MM-DD", gerr.Msg())
		})
	}
}

func TestGetUserLogsUserNotFound(t *testing.T) {
	uc := newTestUsecase(t, newLogsRepo())

	// The user lookup happens before date validation, so a bad date on an
	// unknown user still reports the missing user.
	out, err := uc.GetUserLogs(t.Context(), GetUserLogsInput{UserID: "ghost", From: "yesterday"})

	assert.Nil(t, out)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUserNotFound, gerr.Code())
	assert.Equal(t, 404, gerr.StatusCode())
}

func TestGetUserLogsStorageFailure(t *testing.T) {
	repo := newLogsRepo()
	repo.countErr = errors.New("connection reset")
	uc := newTestUsecase(t, repo)

	out, err := uc.GetUserLogs(t.Context(), GetUserLogsInput{UserID: "user-1"})

	assert.Nil(t, out)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeDatabase, gerr.Code())
}
