package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
)

type RegisterUserInput struct {
	Username string `validate:"required"`
}

type RegisterUserOutput struct {
	ID       string
	Username string
}

func (s *Usecase) RegisterUser(ctx context.Context, in RegisterUserInput) (*RegisterUserOutput, error) {
	ctx, span := s.startSpan(ctx, "RegisterUser")
	defer span.End()

	in.Username = strings.TrimSpace(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewBusiness("Username is required", goerror.CodeUsernameRequired)
	}

	user := entity.User{
		ID:       s.uuid.Generate(),
		Username: in.Username,
	}

	err := s.repoDB.CreateUser(ctx, user)
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("Username must be unique, please choose another one", goerror.CodeUsernameNotUnique)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create user", "username", in.Username, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterUserOutput{ID: user.ID, Username: user.Username}, nil
}
