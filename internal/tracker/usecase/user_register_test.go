package usecase

import (
	"errors"
	"testing"

	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(t, repo, "user-1")

	out, err := uc.RegisterUser(t.Context(), RegisterUserInput{Username: "alice"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", out.ID)
	assert.Equal(t, "alice", out.Username)
	require.Len(t, repo.users, 1)
	assert.Equal(t, entity.User{ID: "user-1", Username: "alice"}, repo.users[0])
}

func TestRegisterUserTrimsUsername(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(t, repo, "user-1")

	out, err := uc.RegisterUser(t.Context(), RegisterUserInput{Username: "  alice  "})

	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
}

func TestRegisterUserMissingUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{name: "Empty", username: ""},
		{name: "WhitespaceOnly", username: "   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newTestUsecase(t, &fakeRepo{}, "user-1")

			out, err := uc.RegisterUser(t.Context(), RegisterUserInput{Username: tc.username})

			assert.Nil(t, out)

			var gerr *goerror.Error
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, goerror.CodeUsernameRequired, gerr.Code())
			assert.Equal(t, "Username is required", gerr.Msg())
			assert.Equal(t, 400, gerr.StatusCode())
		})
	}
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	repo := &fakeRepo{users: []entity.User{{ID: "user-1", Username: "alice"}}}
	uc := newTestUsecase(t, repo, "user-2")

	out, err := uc.RegisterUser(t.Context(), RegisterUserInput{Username: "alice"})

	assert.Nil(t, out)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUsernameNotUnique, gerr.Code())
	assert.Equal(t, "Username must be unique, please choose another one", gerr.Msg())
	assert.Equal(t, 400, gerr.StatusCode())
}

func TestRegisterUserStorageFailure(t *testing.T) {
	repo := &fakeRepo{createUserErr: errors.New("connection reset")}
	uc := newTestUsecase(t, repo, "user-1")

	out, err := uc.RegisterUser(t.Context(), RegisterUserInput{Username: "alice"})

	assert.Nil(t, out)

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeDatabase, gerr.Code())
	assert.Equal(t, "Database error occurred", gerr.Msg())
	assert.Equal(t, 500, gerr.StatusCode())
}
