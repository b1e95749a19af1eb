package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
)

type ListUsersOutput struct {
	Users []entity.User
}

// ListUsers returns every registered user, in storage order.
func (s *Usecase) ListUsers(ctx context.Context) (*ListUsersOutput, error) {
	ctx, span := s.startSpan(ctx, "ListUsers")
	defer span.End()

	users, err := s.repoDB.GetAllUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get all users", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListUsersOutput{Users: users}, nil
}
