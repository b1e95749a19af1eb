package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shandysiswandi/fitlog/internal/pkg/goerror"
	"github.com/shandysiswandi/fitlog/internal/pkg/instrument"
	"github.com/shandysiswandi/fitlog/internal/pkg/validator"
	"github.com/shandysiswandi/fitlog/internal/tracker/entity"
)

// fakeRepo is an in-memory repoDB. Error fields, when set, are returned
// instead of touching the data.
type fakeRepo struct {
	users     []entity.User
	exercises []entity.Exercise

	createUserErr     error
	getAllUsersErr    error
	getUserByIDErr    error
	createExerciseErr error
	countErr          error
	listErr           error

	// countOverride, when non-nil, is returned by CountUserExercises so tests
	// can diverge the count from the stored rows.
	countOverride *int64
}

func (f *fakeRepo) CreateUser(_ context.Context, user entity.User) error {
	if f.createUserErr != nil {
		return f.createUserErr
	}

	for _, u := range f.users {
		if u.Username == user.Username {
			return goerror.ErrConflict
		}
	}

	f.users = append(f.users, user)
	return nil
}

func (f *fakeRepo) GetAllUsers(_ context.Context) ([]entity.User, error) {
	if f.getAllUsersErr != nil {
		return nil, f.getAllUsersErr
	}

	return f.users, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	if f.getUserByIDErr != nil {
		return nil, f.getUserByIDErr
	}

	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}

	return nil, goerror.ErrNotFound
}

func (f *fakeRepo) CreateExercise(_ context.Context, ex entity.Exercise) error {
	if f.createExerciseErr != nil {
		return f.createExerciseErr
	}

	f.exercises = append(f.exercises, ex)
	return nil
}

func (f *fakeRepo) CountUserExercises(_ context.Context, userID string, filter entity.LogFilter) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	if f.countOverride != nil {
		return *f.countOverride, nil
	}

	var count int64
	for _, ex := range f.exercises {
		if matchesFilter(ex, userID, filter) {
			count++
		}
	}

	return count, nil
}

func (f *fakeRepo) ListUserExercises(_ context.Context, userID string, filter entity.LogFilter) ([]entity.Exercise, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	matched := make([]entity.Exercise, 0)
	for _, ex := range f.exercises {
		if matchesFilter(ex, userID, filter) {
			matched = append(matched, ex)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Date < matched[j].Date })

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

// matchesFilter mirrors the SQL range filter: canonical dates compare
// lexicographically.
func matchesFilter(ex entity.Exercise, userID string, filter entity.LogFilter) bool {
	if ex.UserID != userID {
		return false
	}
	if filter.From != "" && ex.Date < filter.From {
		return false
	}
	if filter.To != "" && ex.Date > filter.To {
		return false
	}

	return true
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type sequenceID struct {
	ids  []string
	next int
}

func (s *sequenceID) Generate() string {
	if s.next >= len(s.ids) {
		return "overflow-id"
	}

	id := s.ids[s.next]
	s.next++
	return id
}

func newTestUsecase(t *testing.T, repo *fakeRepo, ids ...string) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		UUID:       &sequenceID{ids: ids},
		Clock:      fixedClock{now: time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)},
		Instrument: instrument.NewNoop(),
	})
}
