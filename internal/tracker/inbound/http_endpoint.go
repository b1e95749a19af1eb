package inbound

import (
	"strings"

	"github.com/shandysiswandi/fitlog/internal/pkg/router"
	"github.com/shandysiswandi/fitlog/internal/tracker/usecase"
)

// HTTPEndpoint exposes HTTP handlers for user registration and exercise logs.
type HTTPEndpoint struct {
	uc uc
}

// CreateUser registers a new user from the posted username.
func (h *HTTPEndpoint) CreateUser(r *router.Request) (any, error) {
	var req CreateUserRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RegisterUser(r.Context(), usecase.RegisterUserInput{
		Username: strings.TrimSpace(string(req.Username)),
	})
	if err != nil {
		return nil, err
	}

	return UserResponse{ID: resp.ID, Username: resp.Username}, nil
}

// ListUsers returns all registered users.
func (h *HTTPEndpoint) ListUsers(r *router.Request) (any, error) {
	resp, err := h.uc.ListUsers(r.Context())
	if err != nil {
		return nil, err
	}

	users := make([]UserResponse, 0, len(resp.Users))
	for _, u := range resp.Users {
		users = append(users, UserResponse{ID: u.ID, Username: u.Username})
	}

	return users, nil
}

// AddExercise appends one exercise entry to the user's log.
func (h *HTTPEndpoint) AddExercise(r *router.Request) (any, error) {
	var req AddExerciseRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.AddExercise(r.Context(), usecase.AddExerciseInput{
		UserID:      strings.TrimSpace(r.GetParam("id")),
		Description: string(req.Description),
		Duration:    string(req.Duration),
		Date:        string(req.Date),
	})
	if err != nil {
		return nil, err
	}

	return AddExerciseResponse{
		ID:          resp.ID,
		Username:    resp.Username,
		Description: resp.Description,
		Duration:    resp.Duration,
		Date:        resp.Date,
	}, nil
}

// GetLogs returns the user's exercise log narrowed by optional from/to dates
// and a limit.
func (h *HTTPEndpoint) GetLogs(r *router.Request) (any, error) {
	// a non-numeric limit is treated as absent, matching the lenient
	// query parsing of the public API
	limit, _ := r.GetQueryInt("limit")

	resp, err := h.uc.GetUserLogs(r.Context(), usecase.GetUserLogsInput{
		UserID: r.GetParam("id"),
		From:   r.GetQuery("from"),
		To:     r.GetQuery("to"),
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return toUserLogResponse(resp), nil
}

// GetExercises returns the user's complete exercise log.
func (h *HTTPEndpoint) GetExercises(r *router.Request) (any, error) {
	resp, err := h.uc.GetUserExercises(r.Context(), usecase.GetUserExercisesInput{
		UserID: r.GetParam("id"),
	})
	if err != nil {
		return nil, err
	}

	return toUserLogResponse(resp), nil
}

func toUserLogResponse(out *usecase.UserLogOutput) UserLogResponse {
	entries := make([]LogEntryResponse, 0, len(out.Log))
	for _, e := range out.Log {
		entries = append(entries, LogEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}

	return UserLogResponse{
		ID:       out.ID,
		Username: out.Username,
		Count:    out.Count,
		Log:      entries,
	}
}
