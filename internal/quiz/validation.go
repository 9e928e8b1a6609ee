package quiz

import "fmt"

// validateAnswerText проверяет текст ответа перед вставкой.
// skip — позиция, которую не учитывать при поиске дубликата
// (переименовываемый ответ не конфликтует сам с собой), -1 для добавления.
func validateAnswerText(question *Question, text string, skip int) error {
	if text == "" {
		return fmt.Errorf("%w, answer text must not be empty", ErrValidation)
	}

	for i, answer := range question.Answers {
		if i == skip {
			continue
		}

		if answer.Text == text {
			return fmt.Errorf("%w, answer %q already exists", ErrValidation, text)
		}
	}

	return nil
}

// placeholderText генерирует уникальный текст-заглушку "Answer N".
// При коллизии с существующим ответом счётчик увеличивается.
func placeholderText(question *Question) string {
	n := len(question.Answers) + 1

	for {
		text := fmt.Sprintf("Answer %d", n)
		if validateAnswerText(question, text, -1) == nil {
			return text
		}

		n++
	}
}
