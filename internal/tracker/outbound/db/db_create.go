package db

import (
	"context"

	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO tracker_users (id, username) VALUES ($1, $2)`

	_, err = s.conn.Exec(ctx, query, user.ID, user.Username)
	return s.mapError(err)
}

func (s *DB) CreateExercise(ctx context.Context, ex entity.Exercise) (err error) {
	ctx, span := s.startSpan(ctx, "CreateExercise")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO tracker_exercises (id, user_id, description, duration, exercise_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = s.conn.Exec(ctx, query, ex.ID, ex.UserID, ex.Description, ex.Duration, ex.Date)
	return s.mapError(err)
}
