package storage

import "github.com/nikita-rudenko/exercise-tracker/internal"

func NewFileRepositories(usersFile, exercisesFile string, logger internal.Logger) (UserRepository, ExerciseRepository, error) {
	storage, err := NewFileStorage(usersFile, exercisesFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (UserRepository, ExerciseRepository, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}
