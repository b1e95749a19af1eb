package usecase

import (
	"errors"
	"testing"

	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddExercise(t *testing.T) {
	repo := &fakeRepo{users: []entity.User{{ID: "user-1", Username: "alice"}}}
	uc := newTestUsecase(t, repo, "ex-1")

	out, err := uc.AddExercise(t.Context(), AddExerciseInput{
		UserID:      "user-1",
		Description: "Morning run",
		Duration:    "30",
		Date:        "2024-03-05",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", out.ID)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, "Morning run", out.Description)
	assert.Equal(t, 30, out.Duration)
	assert.Equal(t, "Tue Mar 05 2024", out.Date)

	require.Len(t, repo.exercises, 1)
	assert.Equal(t, entity.Exercise{
		ID:          "ex-1",
		UserID:      "user-1",
		Description: "Morning run",
		Duration:    30,
		Date:        "2024-03-05",
	}, repo.exercises[0])
}

func TestAddExerciseDefaultsToToday(t *testing.T) {
	repo := &fakeRepo{users: []entity.User{{ID: "user-1", Username: "alice"}}}
	uc := newTestUsecase(t, repo, "ex-1")

	out, err := uc.AddExercise(t.Context(), AddExerciseInput{
		UserID:      "user-1",
		Description: "Morning run",
		Duration:    "30",
	})

	require.NoError(t, err)
	// fixedClock pins today to 2024-03-05 UTC.
	assert.Equal(t, "Tue Mar 05 2024", out.Date)
	require.Len(t, repo.exercises, 1)
	assert.Equal(t, "2024-03-05", repo.exercises[0].Date)
}

func TestAddExerciseMissingUserID(t *testing.T) {
	uc := newTestUsecase(t, &fakeRepo{}, "ex-1")

	// A missing user id short-circuits before field validation.
	out, err := uc.AddExercise(t.Context(), AddExerciseInput{
		UserID:      "   ",
		Description: "",
		Duration:    "not-a-number",
	})

	assert.Nil(t, out)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUserIDRequired, gerr.Code())
	assert.Equal(t, "User ID is required", gerr.Msg())
	assert.Empty(t, gerr.Details())
}

func TestAddExerciseCollectsFieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   AddExerciseInput
		details []string
	}{
		{
			name:    "MissingDescription",
			input:   AddExerciseInput{UserID: "user-1", Duration: "30"},
			details: []string{"Description is required, please add a description!"},
		},
		{
			name:    "NonNumericDuration",
			input:   AddExerciseInput{UserID: "user-1", Description: "run", Duration: "soon"},
			details: []string{"Duration must be a positive number"},
		},
		{
			name:    "ZeroDuration",
			input:   AddExerciseInput{UserID: "user-1", Description: "run", Duration: "0"},
			details: []string{"Duration must be a positive number"},
		},
		{
			name:    "NegativeDuration",
			input:   AddExerciseInput{UserID: "user-1", Description: "run", Duration: "-5"},
			details: []string{"Duration must be a positive number"},
		},
		{
			name:    "BadDate",
			input:   AddExerciseInput{UserID: "user-1", Description: "run", Duration: "30", Date: "yesterday"},
			details: []string{"Invalid date format,should be YYYY-MM-DD"},
		},
		{
			name:  "AllThreeInvalid",
			input: AddExerciseInput{UserID: "user-1", Duration: "abc", Date: "yesterday"},
			details: []string{
				"Description is required, please add a description!",
				"Duration must be a positive number",
				"Invalid date format,should be YYYY-MM-DD",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{users: []entity.User{{ID: "user-1", Username: "alice"}}}
			uc := newTestUsecase(t, repo, "ex-1")

			out, err := uc.AddExercise(t.Context(), tc.input)

			assert.Nil(t, out)
			assert.Empty(t, repo.exercises)

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, goerror.CodeValidationFailed, gerr.Code())
			assert.Equal(t, tc.details, gerr.Details())
		})
	}
}

func TestAddExerciseUserNotFound(t *testing.T) {
	uc := newTestUsecase(t, &fakeRepo{}, "ex-1")

	// Field values are valid; only the user lookup fails.
	out, err := uc.AddExercise(t.Context(), AddExerciseInput{
		UserID:      "ghost",
		Description: "Morning run",
		Duration:    "30",
	})

	assert.Nil(t, out)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUserNotFound, gerr.Code())
	assert.Equal(t, "User not found", gerr.Msg())
	assert.Equal(t, 404, gerr.StatusCode())
}

func TestAddExerciseStorageFailure(t *testing.T) {
	repo := &fakeRepo{
		users:             []entity.User{{ID: "user-1", Username: "alice"}},
		createExerciseErr: errors.New("connection reset"),
	}
	uc := newTestUsecase(t, repo, "ex-1")

	out, err := uc.AddExercise(t.Context(), AddExerciseInput{
		UserID:      "user-1",
		Description: "Morning run",
		Duration:    "30",
	})

	assert.Nil(t, out)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeDatabase, gerr.Code())
}

func TestParseLenientInt(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
		ok    bool
	}{
		{name: "Plain", input: "30", want: 30, ok: true},
		{name: "Whitespace", input: "  30 ", want: 30, ok: true},
		{name: "TrailingUnits", input: "30 minutes", want: 30, ok: true},
		{name: "DecimalTruncates", input: "12.5", want: 12, ok: true},
		{name: "SignedNegative", input: "-5", want: -5, ok: true},
		{name: "SignedPositive", input: "+5", want: 5, ok: true},
		{name: "NoLeadingDigits", input: "abc", ok: false},
		{name: "SignOnly", input: "-", ok: false},
		{name: "Empty", input: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseLenientInt(tc.input)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
