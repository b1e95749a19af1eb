package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/shandysiswandi/fitlog/internal/pkg/dater"
	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
)

type GetUserLogsInput struct {
	UserID string
	From   string // optional date string
	To     string // optional date string
	Limit  int    // zero means no limit
}

// GetUserLogs returns a user's exercise log narrowed by an optional date
// range and limit.
//
// Count is taken from an independent, limit-free count query; the log list
// and the count are not read atomically, so a write between the two reads can
// make them momentarily inconsistent.
func (s *Usecase) GetUserLogs(ctx context.Context, in GetUserLogsInput) (*UserLogOutput, error) {
	ctx, span := s.startSpan(ctx, "GetUserLogs")
	defer span.End()

	user, err := s.repoDB.GetUserByID(ctx, strings.TrimSpace(in.UserID))
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeUserNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	filter := entity.LogFilter{Limit: max(in.Limit, 0)}

	if strings.TrimSpace(in.From) != "" {
		from, err := dater.Parse(in.From)
		if err != nil {
			return nil, goerror.NewBusiness("Invalid date format,should be YYYY-MM-DD", goerror.CodeInvalidDate)
		}
		filter.From = dater.Canonical(from)
	}

	if strings.TrimSpace(in.To) != "" {
		to, err := dater.Parse(in.To)
		if err != nil {
			return nil, goerror.NewBusiness("Invalid date format,should be YYYY-MM-DD", goerror.CodeInvalidDate)
		}
		filter.To = dater.Canonical(to)
	}

	total, err := s.repoDB.CountUserExercises(ctx, user.ID, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo count user exercises", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	exercises, err := s.repoDB.ListUserExercises(ctx, user.ID, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list user exercises", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &UserLogOutput{
		ID:       user.ID,
		Username: user.Username,
		Count:    total,
		Log:      toLogEntries(exercises),
	}, nil
}

func toLogEntries(exercises []entity.Exercise) []LogEntry {
	return lo.Map(exercises, func(ex entity.Exercise, _ int) LogEntry {
		return LogEntry{
			Description: ex.Description,
			Duration:    ex.Duration,
			Date:        dater.DisplayCanonical(ex.Date),
		}
	})
}
