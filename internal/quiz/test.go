package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Длина текста вопроса в списке для отображения.
const summaryTextLimit = 30

// NewTest создаёт пустой тест.
func NewTest() *Test {
	return &Test{Questions: []Question{}}
}

// AddQuestion добавляет пустой вопрос в конец и возвращает его индекс.
func (t *Test) AddQuestion() int {
	t.Questions = append(t.Questions, Question{
		ID:      uuid.NewString(),
		Answers: []Answer{},
	})

	return len(t.Questions) - 1
}

// RemoveQuestion удаляет вопрос по индексу, сохраняя порядок остальных.
func (t *Test) RemoveQuestion(q int) error {
	if q < 0 || q >= len(t.Questions) {
		return fmt.Errorf("%w, no question %d", ErrOutOfRange, q)
	}

	t.Questions = append(t.Questions[:q], t.Questions[q+1:]...)

	return nil
}

// SetQuestionText устанавливает текст вопроса.
func (t *Test) SetQuestionText(q int, text string) error {
	question, err := t.question(q)
	if err != nil {
		return err
	}

	question.Text = text

	return nil
}

// SetQuestionImage устанавливает картинку вопроса.
// Существование файла проверяется только при показе, не здесь.
func (t *Test) SetQuestionImage(q int, filename string) error {
	question, err := t.question(q)
	if err != nil {
		return err
	}

	question.Image = filename

	return nil
}

// ClearQuestionImage убирает картинку вопроса.
func (t *Test) ClearQuestionImage(q int) error {
	return t.SetQuestionImage(q, "")
}

// AddAnswer добавляет ответ с текстом text в конец списка ответов вопроса.
func (t *Test) AddAnswer(q int, text string) (int, error) {
	question, err := t.question(q)
	if err != nil {
		return 0, err
	}

	if err := validateAnswerText(question, text, -1); err != nil {
		return 0, err
	}

	question.Answers = append(question.Answers, Answer{
		ID:   uuid.NewString(),
		Text: text,
	})

	return len(question.Answers) - 1, nil
}

// AddBlankAnswer добавляет ответ с текстом-заглушкой вида "Answer N",
// чтобы заполнить новый пустой ответ до того, как его отредактируют.
func (t *Test) AddBlankAnswer(q int) (int, error) {
	question, err := t.question(q)
	if err != nil {
		return 0, err
	}

	return t.AddAnswer(q, placeholderText(question))
}

// RenameAnswer меняет текст ответа, сохраняя позицию, флаг и картинку.
func (t *Test) RenameAnswer(q, a int, text string) error {
	question, err := t.question(q)
	if err != nil {
		return err
	}

	if a < 0 || a >= len(question.Answers) {
		return fmt.Errorf("%w, no answer %d in question %d", ErrOutOfRange, a, q)
	}

	if question.Answers[a].Text == text {
		return nil
	}

	if err := validateAnswerText(question, text, a); err != nil {
		return err
	}

	question.Answers[a].Text = text

	return nil
}

// RemoveAnswer удаляет ответ по позиции.
func (t *Test) RemoveAnswer(q, a int) error {
	question, err := t.question(q)
	if err != nil {
		return err
	}

	if a < 0 || a >= len(question.Answers) {
		return fmt.Errorf("%w, no answer %d in question %d", ErrOutOfRange, a, q)
	}

	question.Answers = append(question.Answers[:a], question.Answers[a+1:]...)

	return nil
}

// SetCorrectAnswer помечает ответ правильным и снимает флаг со всех
// остальных ответов вопроса: правильный ответ может быть только один.
func (t *Test) SetCorrectAnswer(q, a int) error {
	question, err := t.question(q)
	if err != nil {
		return err
	}

	if a < 0 || a >= len(question.Answers) {
		return fmt.Errorf("%w, no answer %d in question %d", ErrOutOfRange, a, q)
	}

	for i := range question.Answers {
		question.Answers[i].Correct = i == a
	}

	return nil
}

// ClearCorrectAnswer снимает флаг правильности с одного ответа.
// Во время редактирования у вопроса может не быть правильного ответа.
func (t *Test) ClearCorrectAnswer(q, a int) error {
	question, err := t.question(q)
	if err != nil {
		return err
	}

	if a < 0 || a >= len(question.Answers) {
		return fmt.Errorf("%w, no answer %d in question %d", ErrOutOfRange, a, q)
	}

	question.Answers[a].Correct = false

	return nil
}

// SetAnswerImage устанавливает картинку ответа.
func (t *Test) SetAnswerImage(q, a int, filename string) error {
	question, err := t.question(q)
	if err != nil {
		return err
	}

	if a < 0 || a >= len(question.Answers) {
		return fmt.Errorf("%w, no answer %d in question %d", ErrOutOfRange, a, q)
	}

	question.Answers[a].Image = filename

	return nil
}

// ClearAnswerImage убирает картинку ответа.
func (t *Test) ClearAnswerImage(q, a int) error {
	return t.SetAnswerImage(q, a, "")
}

// CheckQuestion проверяет, что вопрос с индексом q существует.
func (t *Test) CheckQuestion(q int) error {
	_, err := t.question(q)
	return err
}

// CheckAnswer проверяет, что у вопроса q существует ответ a.
func (t *Test) CheckAnswer(q, a int) error {
	question, err := t.question(q)
	if err != nil {
		return err
	}

	if a < 0 || a >= len(question.Answers) {
		return fmt.Errorf("%w, no answer %d in question %d", ErrOutOfRange, a, q)
	}

	return nil
}

// QuestionSummaries возвращает список вопросов с обрезанным текстом.
func (t *Test) QuestionSummaries() []QuestionSummary {
	summaries := make([]QuestionSummary, len(t.Questions))
	for i, question := range t.Questions {
		text := question.Text
		if runes := []rune(text); len(runes) > summaryTextLimit {
			text = string(runes[:summaryTextLimit])
		}

		summaries[i] = QuestionSummary{Index: i, Text: text}
	}

	return summaries
}

// AnswerSummaries возвращает список ответов вопроса для отображения.
func (t *Test) AnswerSummaries(q int) ([]AnswerSummary, error) {
	question, err := t.question(q)
	if err != nil {
		return nil, err
	}

	summaries := make([]AnswerSummary, len(question.Answers))
	for i, answer := range question.Answers {
		summaries[i] = AnswerSummary{
			Index:    i,
			Text:     answer.Text,
			Correct:  answer.Correct,
			HasImage: answer.Image != "",
		}
	}

	return summaries, nil
}

func (t *Test) question(q int) (*Question, error) {
	if q < 0 || q >= len(t.Questions) {
		return nil, fmt.Errorf("%w, no question %d", ErrOutOfRange, q)
	}

	return &t.Questions[q], nil
}
