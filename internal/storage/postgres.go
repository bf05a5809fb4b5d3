package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikita-rudenko/exercise-tracker/internal"
)

// Postgres error codes for constraint violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS exercises (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL REFERENCES users(id),
	description TEXT NOT NULL,
	duration INTEGER NOT NULL,
	date DATE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		logger.Errorf("failed to apply schema: %v", err)
		pool.Close()
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- UserRepository ---

func (p *PostgresStorage) CreateUser(ctx context.Context, user *internal.User) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO users (id, username) VALUES ($1, $2)`,
		user.ID, user.Username)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrUsernameTaken
		}
		p.logger.Errorf("failed to insert user: %v", err)
		return err
	}
	return nil
}

// --- ExerciseRepository ---

func (p *PostgresStorage) SaveExercise(ctx context.Context, ex *internal.Exercise) error {
	_, err := p.pool.Exec(ctx, `INSERT INTO exercises (id, user_id, description, duration, date, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		ex.ID, ex.UserID, ex.Description, ex.Duration, ex.Date, ex.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrUserNotFound
		}
		p.logger.Errorf("failed to insert exercise: %v", err)
		return err
	}
	return nil
}

// ListExercises builds the WHERE clause incrementally: both date bounds,
// when present, constrain the same column. No ORDER BY, so row order is
// whatever postgres returns.
func (p *PostgresStorage) ListExercises(ctx context.Context, q LogQuery) ([]internal.Exercise, error) {
	sql := `SELECT id, user_id, description, duration, date, created_at FROM exercises WHERE user_id = $1`
	args := []interface{}{q.UserID}
	if q.From != nil {
		args = append(args, *q.From)
		sql += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if q.To != nil {
		args = append(args, *q.To)
		sql += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		p.logger.Errorf("failed to query exercises: %v", err)
		return nil, err
	}
	defer rows.Close()

	var list []internal.Exercise
	for rows.Next() {
		var e internal.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Description, &e.Duration, &e.Date, &e.CreatedAt); err != nil {
			p.logger.Errorf("failed to scan exercise: %v", err)
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// --- Compile-time assertions ---
var _ UserRepository = (*PostgresStorage)(nil)
var _ ExerciseRepository = (*PostgresStorage)(nil)
