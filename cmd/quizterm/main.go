package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizcraft/internal/config"
	"github.com/letsssgooo/quizcraft/internal/history"
	"github.com/letsssgooo/quizcraft/internal/history/postgres"
	"github.com/letsssgooo/quizcraft/internal/lib/slogcustom"
	"github.com/letsssgooo/quizcraft/internal/quiz"
	"github.com/letsssgooo/quizcraft/internal/storage"
	"github.com/spf13/pflag"
)

// Минимальный текстовый плеер: тот же движок сессии, что и в TUI,
// только вопросы и ответы печатаются в stdout, а выбор делается буквой.
func main() {
	flagConfig := pflag.String("config", "quizcraft.yaml", "path to config file")
	flagHistoryDSN := pflag.String("history-dsn", "", "postgres DSN for attempt history (overrides config)")
	pflag.Parse()

	slog.SetDefault(slog.New(slogcustom.NewCustomHandler(os.Stderr, slog.LevelInfo)))

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: quizterm [flags] <test folder>")
		os.Exit(2)
	}
	folder := pflag.Arg(0)

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		slog.Error("can not load config", "path", *flagConfig, "err", err)
		os.Exit(1)
	}

	if *flagHistoryDSN != "" {
		cfg.History.DSN = *flagHistoryDSN
	}

	test, err := storage.Load(folder)
	if err != nil {
		slog.Error("can not load test", "folder", folder, "err", err)
		os.Exit(1)
	}

	session, err := quiz.NewSession(test)
	if err != nil {
		slog.Error("can not start session", "err", err)
		os.Exit(1)
	}

	startedAt := time.Now()

	if err := play(session, cfg.RevealDelay(), os.Stdin, os.Stdout); err != nil {
		slog.Error("play failed", "err", err)
		os.Exit(1)
	}

	if session.IsComplete() {
		saveAttempt(cfg.History.DSN, folder, session, startedAt)
	}
}

// play крутит цикл вопрос-ответ до конца теста или конца ввода.
func play(session *quiz.Session, revealDelay time.Duration, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for !session.IsComplete() {
		view, err := session.CurrentQuestion()
		if err != nil {
			return err
		}

		// Вопрос без вариантов ответить невозможно.
		if len(view.Answers) == 0 {
			return fmt.Errorf("question %d has no answers, fix the test in the editor", view.Index+1)
		}

		fmt.Fprintf(out, "\nQuestion %d/%d: %s\n", view.Index+1, view.Total, view.Text)

		for i, answer := range view.Answers {
			fmt.Fprintf(out, "  %s. %s\n", quiz.IndexToLetter(i), answer.Text)
		}

		idx, ok := readAnswer(scanner, out, len(view.Answers))
		if !ok {
			fmt.Fprintln(out, "\nBye!")
			return nil
		}

		outcome, err := session.SubmitAnswer(view.Answers[idx].Text)
		if err != nil {
			return err
		}

		if outcome.IsCorrect {
			color.New(color.FgGreen).Fprintln(out, "Correct!")
		} else if outcome.Correct != "" {
			color.New(color.FgRed).Fprintf(out, "Wrong! The answer was: %s\n", outcome.Correct)
		} else {
			color.New(color.FgRed).Fprintln(out, "Wrong!")
		}

		if !session.IsComplete() {
			time.Sleep(revealDelay)
		}
	}

	score := session.FinalScore()
	fmt.Fprintf(out, "\nQuiz Completed! Your score: %d/%d (%.1f%%)\n", score.Score, score.Total, score.Percent)

	return nil
}

// readAnswer читает букву ответа, переспрашивая при неверном вводе.
// Возвращает ok=false на конце ввода.
func readAnswer(scanner *bufio.Scanner, out io.Writer, count int) (int, bool) {
	for {
		fmt.Fprint(out, "Your answer: ")

		if !scanner.Scan() {
			return 0, false
		}

		letter := strings.ToUpper(strings.TrimSpace(scanner.Text()))

		idx, ok := quiz.LetterToIndex(letter)
		if !ok || idx >= count {
			fmt.Fprintf(out, "Please enter a letter from A to %s\n", quiz.IndexToLetter(count-1))
			continue
		}

		return idx, true
	}
}

// saveAttempt записывает прохождение в историю, если она настроена.
func saveAttempt(dsn, folder string, session *quiz.Session, startedAt time.Time) {
	if dsn == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := postgres.NewStorage(ctx, dsn)
	if err != nil {
		slog.Warn("can not connect to history storage", "err", err)
		return
	}
	defer st.Close()

	attempt := history.FromSession(
		filepath.Base(folder),
		session.FinalScore(),
		session.Outcomes(),
		startedAt,
	)

	if err := st.SaveAttempt(ctx, attempt); err != nil {
		slog.Warn("can not save attempt", "err", err)
	}
}
