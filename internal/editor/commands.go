package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizcraft/internal/quiz"
	"github.com/letsssgooo/quizcraft/internal/storage"
)

const helpText = `Commands:
  new                          start an empty test
  load <folder>                load a test folder
  save [<folder>]              save the test
  list                         list questions
  show <q>                     show question details
  q add                        add a question
  q rm <q>                     remove question
  q text <q> <text>            set question text
  q img <q> <path>             copy image and attach to question
  q clearimg <q>               clear question image
  a add <q> [text]             add answer (placeholder text if omitted)
  a rm <q> <a>                 remove answer
  a rename <q> <a> <text>      rename answer
  a correct <q> <a>            mark answer correct (single-correct)
  a wrong <q> <a>              unmark answer
  a img <q> <a> <path>         copy image and attach to answer
  a clearimg <q> <a>           clear answer image
  exit                         quit (prompts on unsaved changes)

Question and answer numbers are 1-based, as shown by list.`

// dispatch выполняет одну команду редактора.
func (e *Editor) dispatch(fields []string) error {
	switch fields[0] {
	case "help":
		fmt.Fprintln(e.out, helpText)
		return nil
	case "new":
		e.test = quiz.NewTest()
		e.folder = ""
		e.dirty = false
		fmt.Fprintln(e.out, "New test created. Add your first question.")

		return nil
	case "load":
		if len(fields) < 2 {
			return fmt.Errorf("usage: load <folder>")
		}

		return e.load(fields[1])
	case "save":
		return e.save(fields[1:])
	case "list":
		return e.list()
	case "show":
		if len(fields) < 2 {
			return fmt.Errorf("usage: show <q>")
		}

		return e.show(fields[1])
	case "q":
		return e.questionCommand(fields[1:])
	case "a":
		return e.answerCommand(fields[1:])
	default:
		return fmt.Errorf("unknown command %q, type \"help\"", fields[0])
	}
}

func (e *Editor) load(folder string) error {
	test, err := storage.Load(folder)
	if err != nil {
		return err
	}

	e.test = test
	e.folder = folder
	e.dirty = false
	fmt.Fprintf(e.out, "Loaded %d questions from %s\n", len(test.Questions), folder)

	return nil
}

func (e *Editor) list() error {
	summaries := e.test.QuestionSummaries()
	if len(summaries) == 0 {
		fmt.Fprintln(e.out, "No questions yet.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(e.out, "Q%d: %s\n", s.Index+1, s.Text)
	}

	return nil
}

func (e *Editor) show(arg string) error {
	q, err := e.questionIndex(arg)
	if err != nil {
		return err
	}

	if err := e.test.CheckQuestion(q); err != nil {
		return err
	}

	question := e.test.Questions[q]
	fmt.Fprintf(e.out, "Q%d: %s\n", q+1, question.Text)

	switch _, status := storage.ResolveImage(e.folder, question.Image); status {
	case storage.ImageFound:
		fmt.Fprintf(e.out, "  image: %s\n", question.Image)
	case storage.ImageMissing:
		fmt.Fprintf(e.out, "  image: %s %s\n", question.Image, color.YellowString("(missing)"))
	case storage.ImageNotSet:
		fmt.Fprintln(e.out, "  image: none")
	}

	summaries, err := e.test.AnswerSummaries(q)
	if err != nil {
		return err
	}

	for _, s := range summaries {
		prefix := "  "
		if s.Correct {
			prefix = color.GreenString("✓ ")
		}

		suffix := ""
		if s.HasImage {
			suffix = " [img]"
		}

		fmt.Fprintf(e.out, "%sA%d: %s%s\n", prefix, s.Index+1, s.Text, suffix)
	}

	return nil
}

func (e *Editor) questionCommand(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("usage: q add|rm|text|img|clearimg ...")
	}

	switch fields[0] {
	case "add":
		q := e.test.AddQuestion()
		e.dirty = true
		fmt.Fprintf(e.out, "Added Q%d. Set its text with: q text %d <text>\n", q+1, q+1)

		return nil
	case "rm":
		if len(fields) < 2 {
			return fmt.Errorf("usage: q rm <q>")
		}

		q, err := e.questionIndex(fields[1])
		if err != nil {
			return err
		}

		if err := e.test.RemoveQuestion(q); err != nil {
			return err
		}

		e.dirty = true

		return nil
	case "text":
		if len(fields) < 3 {
			return fmt.Errorf("usage: q text <q> <text>")
		}

		q, err := e.questionIndex(fields[1])
		if err != nil {
			return err
		}

		if err := e.test.SetQuestionText(q, strings.Join(fields[2:], " ")); err != nil {
			return err
		}

		e.dirty = true

		return nil
	case "img":
		if len(fields) < 3 {
			return fmt.Errorf("usage: q img <q> <path>")
		}

		q, err := e.questionIndex(fields[1])
		if err != nil {
			return err
		}

		// Индекс проверяется до копирования, чтобы не оставлять
		// лишний файл в папке теста.
		if err := e.test.CheckQuestion(q); err != nil {
			return err
		}

		filename, err := e.storeImage(fields[2])
		if err != nil {
			return err
		}

		if err := e.test.SetQuestionImage(q, filename); err != nil {
			return err
		}

		e.dirty = true

		return nil
	case "clearimg":
		if len(fields) < 2 {
			return fmt.Errorf("usage: q clearimg <q>")
		}

		q, err := e.questionIndex(fields[1])
		if err != nil {
			return err
		}

		if err := e.test.ClearQuestionImage(q); err != nil {
			return err
		}

		e.dirty = true

		return nil
	default:
		return fmt.Errorf("unknown question command %q", fields[0])
	}
}

func (e *Editor) answerCommand(fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("usage: a add|rm|rename|correct|wrong|img|clearimg ...")
	}

	switch fields[0] {
	case "add":
		if len(fields) < 2 {
			return fmt.Errorf("usage: a add <q> [text]")
		}

		q, err := e.questionIndex(fields[1])
		if err != nil {
			return err
		}

		var a int
		if len(fields) > 2 {
			a, err = e.test.AddAnswer(q, strings.Join(fields[2:], " "))
		} else {
			a, err = e.test.AddBlankAnswer(q)
		}
		if err != nil {
			return err
		}

		e.dirty = true
		fmt.Fprintf(e.out, "Added A%d to Q%d\n", a+1, q+1)

		return nil
	case "rm":
		q, a, err := e.answerIndexes(fields[1:])
		if err != nil {
			return err
		}

		if err := e.test.RemoveAnswer(q, a); err != nil {
			return err
		}

		e.dirty = true

		return nil
	case "rename":
		q, a, err := e.answerIndexes(fields[1:])
		if err != nil {
			return err
		}

		if len(fields) < 4 {
			return fmt.Errorf("usage: a rename <q> <a> <text>")
		}

		if err := e.test.RenameAnswer(q, a, strings.Join(fields[3:], " ")); err != nil {
			return err
		}

		e.dirty = true

		return nil
	case "correct":
		q, a, err := e.answerIndexes(fields[1:])
		if err != nil {
			return err
		}

		if err := e.test.SetCorrectAnswer(q, a); err != nil {
			return err
		}

		e.dirty = true

		return nil
	case "wrong":
		q, a, err := e.answerIndexes(fields[1:])
		if err != nil {
			return err
		}

		if err := e.test.ClearCorrectAnswer(q, a); err != nil {
			return err
		}

		e.dirty = true

		return nil
	case "img":
		q, a, err := e.answerIndexes(fields[1:])
		if err != nil {
			return err
		}

		if len(fields) < 4 {
			return fmt.Errorf("usage: a img <q> <a> <path>")
		}

		if err := e.test.CheckAnswer(q, a); err != nil {
			return err
		}

		filename, err := e.storeImage(fields[3])
		if err != nil {
			return err
		}

		if err := e.test.SetAnswerImage(q, a, filename); err != nil {
			return err
		}

		e.dirty = true

		return nil
	case "clearimg":
		q, a, err := e.answerIndexes(fields[1:])
		if err != nil {
			return err
		}

		if err := e.test.ClearAnswerImage(q, a); err != nil {
			return err
		}

		e.dirty = true

		return nil
	default:
		return fmt.Errorf("unknown answer command %q", fields[0])
	}
}

// storeImage копирует картинку в папку теста.
// Тест должен быть сохранён хотя бы раз, чтобы папка была известна.
func (e *Editor) storeImage(path string) (string, error) {
	if e.folder == "" {
		return "", fmt.Errorf("save the test first to set images")
	}

	return storage.StoreImage(e.folder, path)
}

func (e *Editor) questionIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bad question number %q", arg)
	}

	return n - 1, nil
}

func (e *Editor) answerIndexes(args []string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("need question and answer numbers")
	}

	q, err := e.questionIndex(args[0])
	if err != nil {
		return 0, 0, err
	}

	a, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad answer number %q", args[1])
	}

	return q, a - 1, nil
}
