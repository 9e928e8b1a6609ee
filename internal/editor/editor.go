package editor

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizcraft/internal/quiz"
	"github.com/letsssgooo/quizcraft/internal/storage"
)

// Editor реализует консольный редактор тестов: тонкая обёртка над
// операциями модели теста и хранилищем папки.
type Editor struct {
	test    *quiz.Test
	folder  string
	dirty   bool
	scanner *bufio.Scanner
	out     io.Writer
}

// New создаёт редактор, читающий команды из in и пишущий в out.
func New(in io.Reader, out io.Writer) *Editor {
	return &Editor{
		test:    quiz.NewTest(),
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run крутит цикл команд до команды exit или конца ввода.
// Выход с несохранёнными правками спрашивает save/discard/cancel;
// cancel возвращает в редактор.
func (e *Editor) Run() error {
	fmt.Fprintln(e.out, "quizcraft editor. Type \"help\" for commands.")

	for {
		fmt.Fprint(e.out, "> ")

		if !e.scanner.Scan() {
			if err := e.scanner.Err(); err != nil {
				return err
			}

			// Конец ввода равносилен exit
			if e.confirmExit() {
				return nil
			}

			return nil
		}

		line := strings.TrimSpace(e.scanner.Text())
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" {
			if e.confirmExit() {
				return nil
			}

			continue
		}

		if err := e.dispatch(strings.Fields(line)); err != nil {
			fmt.Fprintln(e.out, color.RedString("error:"), err)
		}
	}
}

// confirmExit спрашивает про несохранённые правки.
// Возвращает true, если можно выходить.
func (e *Editor) confirmExit() bool {
	if !e.dirty {
		return true
	}

	fmt.Fprint(e.out, "Unsaved changes. Save before exit? [save/discard/cancel]: ")

	if !e.scanner.Scan() {
		return true
	}

	switch strings.TrimSpace(strings.ToLower(e.scanner.Text())) {
	case "save", "s":
		if err := e.save(nil); err != nil {
			fmt.Fprintln(e.out, color.RedString("error:"), err)
			return false
		}

		return true
	case "discard", "d":
		return true
	default:
		return false
	}
}

// save пишет тест в папку. args может содержать новую папку.
func (e *Editor) save(args []string) error {
	if len(args) > 0 {
		e.folder = args[0]
	}

	if e.folder == "" {
		return fmt.Errorf("no folder selected, use: save <folder>")
	}

	if err := storage.Save(e.test, e.folder); err != nil {
		return err
	}

	e.dirty = false
	slog.Info("test saved", "folder", e.folder)
	fmt.Fprintf(e.out, "Saved to %s\n", e.folder)

	return nil
}
