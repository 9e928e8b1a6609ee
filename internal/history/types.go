package history

import (
	"context"
	"time"

	"github.com/letsssgooo/quizcraft/internal/quiz"
)

// Attempt — запись о завершённом прохождении теста.
type Attempt struct {
	ID         string
	TestName   string
	Score      int
	Total      int
	Percent    float64
	Questions  []string
	Selected   []string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Storage определяет интерфейс для хранения истории прохождений.
type Storage interface {
	// SaveAttempt сохраняет прохождение.
	SaveAttempt(ctx context.Context, attempt *Attempt) error

	// ListAttempts возвращает прохождения теста, новые первыми.
	ListAttempts(ctx context.Context, testName string) ([]*Attempt, error)
}

// FromSession собирает запись из итогов завершённой сессии.
func FromSession(testName string, score quiz.Score, outcomes []quiz.Outcome, startedAt time.Time) *Attempt {
	attempt := &Attempt{
		TestName:   testName,
		Score:      score.Score,
		Total:      score.Total,
		Percent:    score.Percent,
		Questions:  make([]string, len(outcomes)),
		Selected:   make([]string, len(outcomes)),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}

	for i, outcome := range outcomes {
		attempt.Questions[i] = outcome.Question
		attempt.Selected[i] = outcome.Selected
	}

	return attempt
}
