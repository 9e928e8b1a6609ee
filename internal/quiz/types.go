package quiz

import "errors"

// Ошибки операций над тестом и сессией.
var (
	// ErrValidation — вызывающий нарушил предусловие операции
	// (пустой текст, дубликат ответа, недопустимый переход сессии).
	ErrValidation = errors.New("validation error")

	// ErrOutOfRange — индекс вопроса или ответа вне диапазона.
	ErrOutOfRange = errors.New("index out of range")
)

// Answer представляет один вариант ответа на вопрос.
// ID — синтетический идентификатор; он стабилен при переименовании
// и никогда не сохраняется на диск.
type Answer struct {
	ID      string
	Text    string
	Correct bool
	Image   string
}

// Question представляет вопрос теста.
// Image — имя файла в папке imgs теста, пустая строка — картинки нет.
type Question struct {
	ID      string
	Text    string
	Image   string
	Answers []Answer
}

// Test представляет тест: упорядоченный список вопросов.
// Порядок значим — это порядок показа до перемешивания ответов.
type Test struct {
	Questions []Question
}

// QuestionSummary — строка списка вопросов для привязки к UI.
type QuestionSummary struct {
	Index int
	Text  string
}

// AnswerSummary — строка списка ответов для привязки к UI.
type AnswerSummary struct {
	Index    int
	Text     string
	Correct  bool
	HasImage bool
}

// TestModel определяет операции редактора над тестом.
type TestModel interface {
	// AddQuestion добавляет пустой вопрос в конец и возвращает его индекс.
	AddQuestion() int

	// RemoveQuestion удаляет вопрос по индексу.
	RemoveQuestion(q int) error

	// SetQuestionText устанавливает текст вопроса.
	SetQuestionText(q int, text string) error

	// SetQuestionImage устанавливает картинку вопроса.
	SetQuestionImage(q int, filename string) error

	// ClearQuestionImage убирает картинку вопроса.
	ClearQuestionImage(q int) error

	// AddAnswer добавляет ответ с текстом text.
	AddAnswer(q int, text string) (int, error)

	// AddBlankAnswer добавляет ответ с автосгенерированным текстом-заглушкой.
	AddBlankAnswer(q int) (int, error)

	// RenameAnswer меняет текст ответа, сохраняя его позицию и флаг.
	RenameAnswer(q, a int, text string) error

	// RemoveAnswer удаляет ответ по позиции.
	RemoveAnswer(q, a int) error

	// SetCorrectAnswer помечает ответ правильным и снимает флаг с остальных.
	SetCorrectAnswer(q, a int) error

	// ClearCorrectAnswer снимает флаг правильности с одного ответа.
	ClearCorrectAnswer(q, a int) error

	// SetAnswerImage устанавливает картинку ответа.
	SetAnswerImage(q, a int, filename string) error

	// ClearAnswerImage убирает картинку ответа.
	ClearAnswerImage(q, a int) error

	// CheckQuestion проверяет, что вопрос с таким индексом существует.
	CheckQuestion(q int) error

	// CheckAnswer проверяет, что у вопроса существует ответ с таким индексом.
	CheckAnswer(q, a int) error

	// QuestionSummaries возвращает список вопросов для отображения.
	QuestionSummaries() []QuestionSummary

	// AnswerSummaries возвращает список ответов вопроса для отображения.
	AnswerSummaries(q int) ([]AnswerSummary, error)
}
