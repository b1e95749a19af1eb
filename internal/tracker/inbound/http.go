package inbound

import (
	"context"

	"github.com/shandysiswandi/fitlog/internal/pkg/router"
	"github.com/shandysiswandi/fitlog/internal/tracker/usecase"
)

type uc interface {
	RegisterUser(ctx context.Context, in usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error)
	ListUsers(ctx context.Context) (*usecase.ListUsersOutput, error)

	AddExercise(ctx context.Context, in usecase.AddExerciseInput) (*usecase.AddExerciseOutput, error)
	GetUserLogs(ctx context.Context, in usecase.GetUserLogsInput) (*usecase.UserLogOutput, error)
	GetUserExercises(ctx context.Context, in usecase.GetUserExercisesInput) (*usecase.UserLogOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Users
	r.POST("/api/users", end.CreateUser)
	r.GET("/api/users", end.ListUsers)

	// Exercise log
	r.POST("/api/users/:id/exercises", end.AddExercise)
	r.GET("/api/users/:id/exercises", end.GetExercises)
	r.GET("/api/users/:id/logs", end.GetLogs)
}
