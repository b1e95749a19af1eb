package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/fitlog/internal/tracker"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.tracker.enabled") {
		if err := tracker.New(a.ctx, tracker.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module tracker", "error", err)
			os.Exit(1)
		}
	}
}
