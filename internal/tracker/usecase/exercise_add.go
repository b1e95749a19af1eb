package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/fitlog/internal/pkg/dater"
	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/pkg/validator"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
)

type AddExerciseInput struct {
	UserID      string
	Description string `validate:"required"`
	Duration    string // raw body value, arrives as either a JSON number or string
	Date        string `validate:"omitempty,calendardate"` // optional; empty means "today"
}

type AddExerciseOutput struct {
	ID          string
	Username    string
	Description string
	Duration    int
	Date        string // display form, e.g. "Tue Mar 05 2024"
}

// AddExercise validates and appends one exercise entry to a user's log.
//
// Field errors are collected and reported together; only a missing user id
// short-circuits the remaining checks.
func (s *Usecase) AddExercise(ctx context.Context, in AddExerciseInput) (*AddExerciseOutput, error) {
	ctx, span := s.startSpan(ctx, "AddExercise")
	defer span.End()

	in.UserID = strings.TrimSpace(in.UserID)
	in.Description = strings.TrimSpace(in.Description)

	if in.UserID == "" {
		return nil, goerror.NewBusiness("User ID is required", goerror.CodeUserIDRequired)
	}

	var fieldErrs validator.V10ValidationError
	if err := s.validator.Validate(in); err != nil {
		errors.As(err, &fieldErrs)
	}

	var details []string

	if _, bad := fieldErrs["description"]; bad {
		details = append(details, "Description is required, please add a description!")
	}

	duration, ok := parseLenientInt(in.Duration)
	if !ok || duration <= 0 {
		details = append(details, "Duration must be a positive number")
	}

	day := s.clock.Now().UTC()
	if _, bad := fieldErrs["date"]; bad {
		details = append(details, "Invalid date format,should be YYYY-MM-DD")
	} else if strings.TrimSpace(in.Date) != "" {
		if parsed, err := dater.Parse(in.Date); err == nil {
			day = parsed
		}
	}

	if len(details) > 0 {
		return nil, goerror.NewValidation(details)
	}

	user, err := s.repoDB.GetUserByID(ctx, in.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found", goerror.CodeUserNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	exercise := entity.Exercise{
		ID:          s.uuid.Generate(),
		UserID:      user.ID,
		Description: in.Description,
		Duration:    duration,
		Date:        dater.Canonical(day),
	}

	if err := s.repoDB.CreateExercise(ctx, exercise); err != nil {
		slog.ErrorContext(ctx, "failed to repo create exercise", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AddExerciseOutput{
		ID:          user.ID,
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        dater.Display(day),
	}, nil
}

// parseLenientInt coerces a raw body value to an integer the way loose
// client-side parsing does: leading whitespace and an optional sign are
// allowed, and a trailing non-numeric suffix is ignored ("30 minutes" -> 30,
// "12.5" -> 12). A value with no leading digits does not parse.
func parseLenientInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}

	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}
