package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/letsssgooo/quizcraft/internal/quiz"
)

// Раскладка папки теста:
//
//	<folder>/test.json — документ теста
//	<folder>/imgs/     — картинки вопросов и ответов
const (
	TestFileName  = "test.json"
	ImagesDirName = "imgs"
)

// Ошибки работы с папкой теста.
var (
	// ErrNotFound — ожидаемый файл или папка отсутствует.
	ErrNotFound = errors.New("not found")

	// ErrFormat — документ есть, но его структура некорректна.
	ErrFormat = errors.New("format error")
)

// Load читает тест из папки folder.
func Load(folder string) (*quiz.Test, error) {
	path := filepath.Join(folder, TestFileName)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w, no %s in %s", ErrNotFound, TestFileName, folder)
	}
	if err != nil {
		return nil, fmt.Errorf("can not read %s: %w", path, err)
	}

	var docs []questionDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w, %v", ErrFormat, err)
	}

	return toTest(docs)
}

// Save записывает тест в папку folder.
// Документ сначала пишется во временный файл и затем переименовывается,
// чтобы сбой записи не оставил наполовину записанный test.json.
func Save(test *quiz.Test, folder string) error {
	if err := os.MkdirAll(filepath.Join(folder, ImagesDirName), 0o755); err != nil {
		return fmt.Errorf("can not create images dir: %w", err)
	}

	data, err := json.MarshalIndent(toDocs(test), "", "  ")
	if err != nil {
		return fmt.Errorf("can not encode test: %w", err)
	}

	tmp, err := os.CreateTemp(folder, TestFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("can not create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("can not write %s: %w", TestFileName, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("can not write %s: %w", TestFileName, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(folder, TestFileName)); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("can not replace %s: %w", TestFileName, err)
	}

	return nil
}
