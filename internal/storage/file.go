package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/nikita-rudenko/exercise-tracker/internal"
)

// FileStorage keeps everything in memory and persists to JSON files with
// debounced background writers. The single mutex makes the duplicate-username
// check and the insert one atomic step, so there is no check-then-act window.
type FileStorage struct {
	users             map[string]*internal.User     // id -> User
	usernames         map[string]string             // username -> id
	exercises         map[string]*internal.Exercise // id -> Exercise
	userExerciseIndex map[string][]*internal.Exercise
	mu                sync.RWMutex
	usersFile         string
	exercisesFile     string
	saveUsersChan     chan struct{}
	saveExChan        chan struct{}
	shutdownChan      chan struct{}
	saveDelay         time.Duration
	logger            internal.Logger
}

func NewFileStorage(usersFile, exercisesFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		users:             make(map[string]*internal.User),
		usernames:         make(map[string]string),
		exercises:         make(map[string]*internal.Exercise),
		userExerciseIndex: make(map[string][]*internal.Exercise),
		usersFile:         usersFile,
		exercisesFile:     exercisesFile,
		saveUsersChan:     make(chan struct{}, 1),
		saveExChan:        make(chan struct{}, 1),
		shutdownChan:      make(chan struct{}),
		saveDelay:         500 * time.Millisecond,
		logger:            logger,
	}

	if err := s.loadUsers(); err != nil {
		logger.Errorf("storage: failed to load users: %v", err)
		return nil, err
	}
	if err := s.loadExercises(); err != nil {
		logger.Errorf("storage: failed to load exercises: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveUsersChan, s.saveUsers, "users")
	go s.saveWorker(s.saveExChan, s.saveExercises, "exercises")

	return s, nil
}

func (s *FileStorage) loadUsers() error {
	file, err := os.Open(s.usersFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var users []*internal.User
	if err := json.NewDecoder(file).Decode(&users); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = u
		s.usernames[u.Username] = u.ID
	}
	return nil
}

func (s *FileStorage) loadExercises() error {
	file, err := os.Open(s.exercisesFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var list []*internal.Exercise
	if err := json.NewDecoder(file).Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range list {
		s.exercises[e.ID] = e
		s.userExerciseIndex[e.UserID] = append(s.userExerciseIndex[e.UserID], e)
	}
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveUsers() error {
	s.mu.RLock()
	users := make([]*internal.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.usersFile, users)
}

func (s *FileStorage) saveExercises() error {
	s.mu.RLock()
	list := make([]*internal.Exercise, 0, len(s.exercises))
	for _, e := range s.exercises {
		list = append(list, e)
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.exercisesFile, list)
}

// saveWorker batches save signals to avoid a disk write per mutation.
func (s *FileStorage) saveWorker(signal chan struct{}, save func() error, what string) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// Close stops the save workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.saveUsers(); err != nil {
		return err
	}
	return s.saveExercises()
}

// --- UserRepository ---

func (s *FileStorage) CreateUser(ctx context.Context, user *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[user.Username]; taken {
		return ErrUsernameTaken
	}
	s.users[user.ID] = user
	s.usernames[user.Username] = user.ID

	select {
	case s.saveUsersChan <- struct{}{}:
	default:
	}
	return nil
}

// GetUser looks a user up by id. Not part of the repository surface; it
// exists so callers with a concrete FileStorage can inspect state.
func (s *FileStorage) GetUser(ctx context.Context, id string) (*internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// --- ExerciseRepository ---

func (s *FileStorage) SaveExercise(ctx context.Context, ex *internal.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Referential check and insert share the lock.
	if _, ok := s.users[ex.UserID]; !ok {
		return ErrUserNotFound
	}

	s.exercises[ex.ID] = ex
	s.userExerciseIndex[ex.UserID] = append(s.userExerciseIndex[ex.UserID], ex)

	select {
	case s.saveExChan <- struct{}{}:
	default:
	}
	return nil
}

// ListExercises returns the user's exercises in insertion order, filtered by
// the query's date range and capped by its limit.
func (s *FileStorage) ListExercises(ctx context.Context, q LogQuery) ([]internal.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []internal.Exercise
	for _, e := range s.userExerciseIndex[q.UserID] {
		if q.From != nil && e.Date.Before(*q.From) {
			continue
		}
		if q.To != nil && e.Date.After(*q.To) {
			continue
		}
		list = append(list, *e)
		if q.Limit > 0 && len(list) == q.Limit {
			break
		}
	}
	return list, nil
}

// --- Compile-time assertions ---
var _ UserRepository = (*FileStorage)(nil)
var _ ExerciseRepository = (*FileStorage)(nil)
