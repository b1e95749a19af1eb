package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
)

type GetUserExercisesInput struct {
	UserID string
}

// GetUserExercises returns a user's complete exercise log with no filters.
//
// Unlike GetUserLogs, Count is simply the length of the returned list; no
// separate count query is made.
func (s *Usecase) GetUserExercises(ctx context.Context, in GetUserExercisesInput) (*UserLogOutput, error) {
	ctx, span := s.startSpan(ctx, "GetUserExercises")
	defer span.End()

	user, err := s.repoDB.GetUserByID(ctx, strings.TrimSpace(in.UserID))
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeUserNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	exercises, err := s.repoDB.ListUserExercises(ctx, user.ID, entity.LogFilter{})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list user exercises", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserLogOutput{
		ID:       user.ID,
		Username: user.Username,
		Count:    int64(len(exercises)),
		Log:      toLogEntries(exercises),
	}, nil
}
