package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ImageStatus — результат поиска картинки в папке теста.
type ImageStatus string

const (
	// ImageFound — картинка настроена и файл существует.
	ImageFound ImageStatus = "found"

	// ImageMissing — картинка настроена, но файла нет на диске.
	ImageMissing ImageStatus = "missing"

	// ImageNotSet — картинка не настроена вовсе.
	ImageNotSet ImageStatus = "not_set"
)

// StoreImage копирует внешний файл картинки в imgs папки теста под его
// исходным именем и возвращает сохранённое имя. Одноимённый файл молча
// перезаписывается — известное ограничение формата.
func StoreImage(folder, sourcePath string) (string, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("can not open image %s: %w", sourcePath, err)
	}
	defer src.Close()

	imagesDir := filepath.Join(folder, ImagesDirName)
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return "", fmt.Errorf("can not create images dir: %w", err)
	}

	filename := filepath.Base(sourcePath)

	dst, err := os.Create(filepath.Join(imagesDir, filename))
	if err != nil {
		return "", fmt.Errorf("can not create image %s: %w", filename, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()

		return "", fmt.Errorf("can not copy image %s: %w", filename, err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("can not copy image %s: %w", filename, err)
	}

	return filename, nil
}

// ResolveImage возвращает путь к картинке filename в папке теста.
// Пустое имя означает "картинка не настроена" — это отличается от
// "настроена, но файл пропал", и вызывающий может различить эти случаи
// без разбора строк.
func ResolveImage(folder, filename string) (string, ImageStatus) {
	if filename == "" {
		return "", ImageNotSet
	}

	path := filepath.Join(folder, ImagesDirName, filename)
	if _, err := os.Stat(path); err != nil {
		return "", ImageMissing
	}

	return path, ImageFound
}
