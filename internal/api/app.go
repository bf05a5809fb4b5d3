package api

import (
	"github.com/nikita-rudenko/exercise-tracker/internal"
	"github.com/nikita-rudenko/exercise-tracker/internal/storage"
)

type App interface {
	Logger() internal.Logger
	UserRepo() storage.UserRepository
	ExerciseRepo() storage.ExerciseRepository
}
