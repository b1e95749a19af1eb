package usecase

import (
	"context"

	"github.com/shandysiswandi/fitlog/internal/pkg/clock"
	"github.com/shandysiswandi/fitlog/internal/pkg/instrument"
	"github.com/shandysiswandi/fitlog/internal/pkg/uid"
	"github.com/shandysiswandi/fitlog/internal/pkg/validator"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)

	CreateExercise(ctx context.Context, ex entity.Exercise) error
	CountUserExercises(ctx context.Context, userID string, filter entity.LogFilter) (int64, error)
	ListUserExercises(ctx context.Context, userID string, filter entity.LogFilter) ([]entity.Exercise, error)
}

// LogEntry is one rendered line of a user's exercise log.
type LogEntry struct {
	Description string
	Duration    int
	Date        string // display form, e.g. "Tue Mar 05 2024"
}

// UserLogOutput is the rendered exercise log of one user.
//
// Count is the total number of matching entries; when a limit truncates the
// log it can exceed len(Log).
type UserLogOutput struct {
	ID       string
	Username string
	Count    int64
	Log      []LogEntry
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uuid      uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UUID       uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uuid:      dep.UUID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("tracker.usecase").Start(ctx, name)
}
