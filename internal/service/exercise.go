package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nikita-rudenko/exercise-tracker/internal"
	"github.com/nikita-rudenko/exercise-tracker/internal/storage"
)

// DateLayout is the calendar-date format accepted on input and rendered
// on output.
const DateLayout = "2006-01-02"

type ExerciseRequest struct {
	UserID      string `form:"userId" json:"userId" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	Duration    int    `form:"duration" json:"duration" validate:"required,gt=0"`
	Date        string `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func ValidateExerciseRequest(req *ExerciseRequest) error {
	return validate.Struct(req)
}

// CreateExercise inserts an exercise for the referenced user. A missing
// user surfaces as storage.ErrUserNotFound from the write itself. An
// absent date defaults to the creation time.
func CreateExercise(ctx context.Context, exRepo storage.ExerciseRepository, req *ExerciseRequest) (*internal.Exercise, error) {
	// The default is the creation day as read off the local clock;
	// truncating the instant would shift the date across a day boundary
	// on non-UTC hosts.
	y, m, d := time.Now().Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if req.Date != "" {
		parsed, err := time.Parse(DateLayout, req.Date)
		if err != nil {
			return nil, internal.NewAppError(400, "invalid 'date': expected YYYY-MM-DD")
		}
		date = parsed
	}

	ex := &internal.Exercise{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Description: req.Description,
		Duration:    req.Duration,
		Date:        date,
		CreatedAt:   time.Now(),
	}
	if err := exRepo.SaveExercise(ctx, ex); err != nil {
		return nil, err
	}
	return ex, nil
}

// LogParams are the raw query parameters of the log endpoint, before any
// validation or parsing.
type LogParams struct {
	UserID string
	From   string
	To     string
	Limit  string
}

// BuildLogQuery translates raw query parameters into a store filter.
// It is pure: no store access, no side effects. A missing userId is a
// terminal client error; the caller must not run any query in that case.
// Malformed from/to/limit values are rejected explicitly rather than
// silently producing a wrong filter.
func BuildLogQuery(p LogParams) (storage.LogQuery, error) {
	if p.UserID == "" {
		return storage.LogQuery{}, internal.NewAppError(400, "userId required")
	}

	q := storage.LogQuery{UserID: p.UserID}

	if p.From != "" {
		from, err := time.Parse(DateLayout, p.From)
		if err != nil {
			return storage.LogQuery{}, internal.NewAppError(400, "invalid 'from' date: expected YYYY-MM-DD")
		}
		q.From = &from
	}
	if p.To != "" {
		to, err := time.Parse(DateLayout, p.To)
		if err != nil {
			return storage.LogQuery{}, internal.NewAppError(400, "invalid 'to' date: expected YYYY-MM-DD")
		}
		q.To = &to
	}
	if p.Limit != "" {
		n, err := strconv.Atoi(p.Limit)
		if err != nil || n <= 0 {
			return storage.LogQuery{}, internal.NewAppError(400, "invalid 'limit': expected a positive integer")
		}
		q.Limit = n
	}

	return q, nil
}
