package storage

import (
	"context"
	"errors"
	"time"

	"github.com/nikita-rudenko/exercise-tracker/internal"
)

var (
	// ErrUsernameTaken signals a store-level uniqueness violation on username.
	ErrUsernameTaken = errors.New("storage: username already exists")
	// ErrUserNotFound signals a missing user, including a failed
	// referential check when inserting an exercise.
	ErrUserNotFound = errors.New("storage: user not found")
)

// LogQuery is the filter for listing a user's exercise log. From and To,
// when both set, bound the same date field (a range filter, not two
// independent predicates). Limit <= 0 means unbounded.
type LogQuery struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

type UserRepository interface {
	// CreateUser inserts a user; uniqueness of Username is enforced by
	// the store itself, not by a prior read.
	CreateUser(ctx context.Context, user *internal.User) error
}

type ExerciseRepository interface {
	// SaveExercise inserts an exercise; existence of the referenced user
	// is enforced at write time and reported as ErrUserNotFound.
	SaveExercise(ctx context.Context, ex *internal.Exercise) error
	// ListExercises returns the exercises matching q. Order is the
	// store's natural order and is not guaranteed across backends.
	ListExercises(ctx context.Context, q LogQuery) ([]internal.Exercise, error)
}
