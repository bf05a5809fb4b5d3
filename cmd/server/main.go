package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/nikita-rudenko/exercise-tracker/internal"
	"github.com/nikita-rudenko/exercise-tracker/internal/api"
	"github.com/nikita-rudenko/exercise-tracker/internal/config"
	"github.com/nikita-rudenko/exercise-tracker/internal/storage"
)

type application struct {
	logger internal.Logger
	users  storage.UserRepository
	exs    storage.ExerciseRepository
}

func (a *application) Logger() internal.Logger                  { return a.logger }
func (a *application) UserRepo() storage.UserRepository         { return a.users }
func (a *application) ExerciseRepo() storage.ExerciseRepository { return a.exs }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var userRepo storage.UserRepository
	var exRepo storage.ExerciseRepository
	switch cfg.DBType {
	case "postgres":
		userRepo, exRepo, err = storage.NewPostgresRepositories(cfg.DBDSN, logger)
	default:
		for _, dir := range []string{filepath.Dir(cfg.UsersFile), filepath.Dir(cfg.ExercisesFile)} {
			if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
				logger.Fatalf("failed to create data dir %s: %v", dir, mkErr)
			}
		}
		userRepo, exRepo, err = storage.NewFileRepositories(cfg.UsersFile, cfg.ExercisesFile, logger)
	}
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	app := &application{logger: logger, users: userRepo, exs: exRepo}
	r := api.NewRouter(app)

	logger.Infof("Server running on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
