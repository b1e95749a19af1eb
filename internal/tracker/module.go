package tracker

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/fitlog/internal/pkg/clock"
	"github.com/shandysiswandi/fitlog/internal/pkg/config"
	"github.com/shandysiswandi/fitlog/internal/pkg/instrument"
	"github.com/shandysiswandi/fitlog/internal/pkg/router"
	"github.com/shandysiswandi/fitlog/internal/pkg/uid"
	"github.com/shandysiswandi/fitlog/internal/pkg/validator"
	"github.com/shandysiswandi/fitlog/internal/tracker/inbound"
	"github.com/shandysiswandi/fitlog/internal/tracker/outbound/db"
	"github.com/shandysiswandi/fitlog/internal/tracker/usecase"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UUID       uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbTracker := db.NewDB(dep.DBConn, dep.Instrument)
	if err := dbTracker.EnsureSchema(ctx); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbTracker,
		Validator:  dep.Validator,
		UUID:       dep.UUID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
