package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikita-rudenko/exercise-tracker/internal"
	"github.com/nikita-rudenko/exercise-tracker/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestBuildLogQuery_MissingUserID(t *testing.T) {
	_, err := BuildLogQuery(LogParams{From: "2023-01-01", Limit: "5"})
	assert.Error(t, err)
	var appErr *internal.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Status)
	assert.Equal(t, "userId required", appErr.Message)
}

func TestBuildLogQuery_UserIDOnly(t *testing.T) {
	q, err := BuildLogQuery(LogParams{UserID: "u1"})
	assert.NoError(t, err)
	assert.Equal(t, "u1", q.UserID)
	assert.Nil(t, q.From)
	assert.Nil(t, q.To)
	assert.Equal(t, 0, q.Limit)
}

func TestBuildLogQuery_FullRange(t *testing.T) {
	q, err := BuildLogQuery(LogParams{
		UserID: "u1",
		From:   "2023-01-01",
		To:     "2023-01-31",
		Limit:  "3",
	})
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), *q.From)
	assert.Equal(t, time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), *q.To)
	assert.Equal(t, 3, q.Limit)
}

func TestBuildLogQuery_BadDates(t *testing.T) {
	for _, params := range []LogParams{
		{UserID: "u1", From: "January 1st"},
		{UserID: "u1", To: "2023-13-45"},
	} {
		_, err := BuildLogQuery(params)
		var appErr *internal.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, 400, appErr.Status)
	}
}

func TestBuildLogQuery_BadLimit(t *testing.T) {
	for _, limit := range []string{"abc", "-1", "0", "2.5"} {
		_, err := BuildLogQuery(LogParams{UserID: "u1", Limit: limit})
		var appErr *internal.AppError
		assert.True(t, errors.As(err, &appErr), "limit=%q", limit)
		assert.Equal(t, 400, appErr.Status)
	}
}

func setupRepos(t *testing.T) (storage.UserRepository, storage.ExerciseRepository) {
	dir := t.TempDir()
	userRepo, exRepo, err := storage.NewFileRepositories(
		filepath.Join(dir, "users.json"),
		filepath.Join(dir, "exercises.json"),
		internal.NewNopLogger(),
	)
	assert.NoError(t, err)
	return userRepo, exRepo
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	userRepo, _ := setupRepos(t)
	ctx := context.Background()

	first, err := RegisterUser(ctx, userRepo, &NewUserRequest{Username: "alice"})
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "alice", first.Username)

	_, err = RegisterUser(ctx, userRepo, &NewUserRequest{Username: "alice"})
	assert.ErrorIs(t, err, storage.ErrUsernameTaken)
}

func TestCreateExercise_ExplicitAndDefaultDate(t *testing.T) {
	userRepo, exRepo := setupRepos(t)
	ctx := context.Background()

	user, err := RegisterUser(ctx, userRepo, &NewUserRequest{Username: "alice"})
	assert.NoError(t, err)

	ex, err := CreateExercise(ctx, exRepo, &ExerciseRequest{
		UserID:      user.ID,
		Description: "run",
		Duration:    30,
		Date:        "2023-01-05",
	})
	assert.NoError(t, err)
	assert.Equal(t, "2023-01-05", ex.Date.Format(DateLayout))
	assert.Equal(t, 30, ex.Duration)

	// Date absent -> defaults to the creation day on the local clock,
	// whatever the host timezone.
	ex, err = CreateExercise(ctx, exRepo, &ExerciseRequest{
		UserID:      user.ID,
		Description: "swim",
		Duration:    20,
	})
	assert.NoError(t, err)
	assert.Equal(t, time.Now().Format(DateLayout), ex.Date.Format(DateLayout))
}

func TestCreateExercise_UnknownUser(t *testing.T) {
	_, exRepo := setupRepos(t)

	_, err := CreateExercise(context.Background(), exRepo, &ExerciseRequest{
		UserID:      "no-such-user",
		Description: "run",
		Duration:    30,
	})
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
