package main

import (
	"log/slog"
	"os"

	"github.com/letsssgooo/quizcraft/internal/editor"
	"github.com/letsssgooo/quizcraft/internal/lib/slogcustom"
	"github.com/spf13/pflag"
)

func main() {
	flagDebug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()

	level := slog.LevelInfo
	if *flagDebug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slogcustom.NewCustomHandler(os.Stderr, level)))

	if err := editor.New(os.Stdin, os.Stdout).Run(); err != nil {
		slog.Error("editor failed", "err", err)
		os.Exit(1)
	}
}
