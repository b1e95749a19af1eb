package db

import (
	"context"
	"fmt"

	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
)

func (s *DB) GetUserByID(ctx context.Context, id string) (user *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT id, username FROM tracker_users WHERE id = $1`

	var u entity.User
	if err = s.conn.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username); err != nil {
		return nil, s.mapError(err)
	}

	return &u, nil
}

func (s *DB) GetAllUsers(ctx context.Context) (users []entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetAllUsers")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT id, username FROM tracker_users ORDER BY username`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	users = make([]entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err = rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, s.mapError(err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return users, nil
}

func (s *DB) CountUserExercises(ctx context.Context, userID string, filter entity.LogFilter) (count int64, err error) {
	ctx, span := s.startSpan(ctx, "CountUserExercises")
	defer func() { s.endSpan(span, err) }()

	where, args := exerciseFilter(userID, filter)
	query := `SELECT COUNT(*) FROM tracker_exercises WHERE ` + where

	if err = s.conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, s.mapError(err)
	}

	return count, nil
}

func (s *DB) ListUserExercises(ctx context.Context, userID string, filter entity.LogFilter) (exercises []entity.Exercise, err error) {
	ctx, span := s.startSpan(ctx, "ListUserExercises")
	defer func() { s.endSpan(span, err) }()

	where, args := exerciseFilter(userID, filter)
	query := `
		SELECT id, user_id, description, duration, exercise_date
		FROM tracker_exercises
		WHERE ` + where + `
		ORDER BY exercise_date, id`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	exercises = make([]entity.Exercise, 0)
	for rows.Next() {
		var ex entity.Exercise
		if err = rows.Scan(&ex.ID, &ex.UserID, &ex.Description, &ex.Duration, &ex.Date); err != nil {
			return nil, s.mapError(err)
		}
		exercises = append(exercises, ex)
	}

	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return exercises, nil
}

// exerciseFilter builds the WHERE clause for exercise queries. Dates are
// stored canonically as YYYY-MM-DD, so lexicographic comparison is also
// chronological comparison.
func exerciseFilter(userID string, filter entity.LogFilter) (string, []any) {
	where := "user_id = $1"
	args := []any{userID}

	if filter.From != "" {
		args = append(args, filter.From)
		where += fmt.Sprintf(" AND exercise_date >= $%d", len(args))
	}

	if filter.To != "" {
		args = append(args, filter.To)
		where += fmt.Sprintf(" AND exercise_date <= $%d", len(args))
	}

	return where, args
}
