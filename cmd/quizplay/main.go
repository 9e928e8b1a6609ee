package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/letsssgooo/quizcraft/internal/config"
	"github.com/letsssgooo/quizcraft/internal/history"
	"github.com/letsssgooo/quizcraft/internal/history/postgres"
	"github.com/letsssgooo/quizcraft/internal/lib/slogcustom"
	"github.com/letsssgooo/quizcraft/internal/quiz"
	"github.com/letsssgooo/quizcraft/internal/storage"
	"github.com/letsssgooo/quizcraft/internal/ui/player"
	"github.com/spf13/pflag"
)

func main() {
	flagConfig := pflag.String("config", "quizcraft.yaml", "path to config file")
	flagNoColor := pflag.Bool("no-color", false, "disable colored output")
	flagHistoryDSN := pflag.String("history-dsn", "", "postgres DSN for attempt history (overrides config)")
	flagDebug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()

	slog.SetDefault(setupLogger(*flagDebug))

	if pflag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: quizplay [flags] <test folder>")
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

	model := player.NewModel(session, folder, player.Options{
		RevealDelay: cfg.RevealDelay(),
		NoColor:     *flagNoColor || cfg.Player.NoColor,
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		slog.Error("player failed", "err", err)
		os.Exit(1)
	}

	finished, ok := final.(player.Model)
	if !ok {
		return
	}

	if err := finished.Err(); err != nil {
		slog.Error("player stopped", "err", err)
		os.Exit(1)
	}

	if finished.Finished() {
		saveAttempt(cfg.History.DSN, folder, session, finished.StartedAt())
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
		return
	}

	slog.Info("attempt saved", "test", attempt.TestName, "score", attempt.Score, "total", attempt.Total)
}

func setupLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slogcustom.NewCustomHandler(os.Stderr, level))
}
