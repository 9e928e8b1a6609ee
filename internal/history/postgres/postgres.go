package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/letsssgooo/quizcraft/internal/history"
)

// Storage реализует history.Storage поверх PostgreSQL.
type Storage struct {
	pool *pgxpool.Pool
}

// NewStorage подключается к базе по dsn.
func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

// SaveAttempt сохраняет прохождение.
func (s *Storage) SaveAttempt(ctx context.Context, attempt *history.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}

	query := `
	INSERT INTO attempts (id, test_name, score, total, percent, questions, selected, started_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.pool.Exec(ctx, query,
		attempt.ID,
		attempt.TestName,
		attempt.Score,
		attempt.Total,
		attempt.Percent,
		attempt.Questions,
		attempt.Selected,
		attempt.StartedAt,
		attempt.FinishedAt,
	)

	return err
}

// ListAttempts возвращает прохождения теста, новые первыми.
func (s *Storage) ListAttempts(ctx context.Context, testName string) ([]*history.Attempt, error) {
	query := `
	SELECT id, test_name, score, total, percent, questions, selected, started_at, finished_at
	FROM attempts WHERE test_name = $1 ORDER BY finished_at DESC
	`

	rows, err := s.pool.Query(ctx, query, testName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := []*history.Attempt{}

	for rows.Next() {
		attempt := &history.Attempt{}

		err := rows.Scan(
			&attempt.ID,
			&attempt.TestName,
			&attempt.Score,
			&attempt.Total,
			&attempt.Percent,
			&attempt.Questions,
			&attempt.Selected,
			&attempt.StartedAt,
			&attempt.FinishedAt,
		)
		if err != nil {
			return nil, err
		}

		attempts = append(attempts, attempt)
	}

	return attempts, rows.Err()
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.pool.Close()
}
