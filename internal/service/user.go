package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nikita-rudenko/exercise-tracker/internal"
	"github.com/nikita-rudenko/exercise-tracker/internal/storage"
)

var validate = validator.New()

type NewUserRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
}

func ValidateNewUserRequest(req *NewUserRequest) error {
	return validate.Struct(req)
}

// RegisterUser inserts a new user. Uniqueness of the username is the
// store's job; a duplicate surfaces as storage.ErrUsernameTaken.
func RegisterUser(ctx context.Context, userRepo storage.UserRepository, req *NewUserRequest) (*internal.User, error) {
	user := &internal.User{
		ID:       uuid.NewString(),
		Username: req.Username,
	}
	if err := userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
