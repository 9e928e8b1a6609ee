package quiz

import (
	"fmt"
	"math/rand"
)

// SessionAnswer — вариант ответа в порядке показа.
type SessionAnswer struct {
	Text     string
	Image    string
	HasImage bool
}

// QuestionView — текущий вопрос в том виде, в котором его показывает плеер.
type QuestionView struct {
	Index   int
	Total   int
	Text    string
	Image   string
	Answers []SessionAnswer
}

// Outcome — результат ответа на один вопрос.
type Outcome struct {
	Index     int
	Question  string
	Selected  string
	Correct   string
	IsCorrect bool
}

// Score — итог прохождения теста.
type Score struct {
	Score   int
	Total   int
	Percent float64
}

// Session ведёт одно прохождение теста. Тест на время игры не меняется.
// Состояние живёт только в памяти и никогда не сохраняется.
type Session struct {
	test     *Test
	index    int
	score    int
	shuffled []SessionAnswer
	correct  string
	outcomes []Outcome
}

// NewSession создаёт сессию по загруженному тесту.
// Тест должен содержать хотя бы один вопрос.
func NewSession(test *Test) (*Session, error) {
	if test == nil || len(test.Questions) == 0 {
		return nil, fmt.Errorf("%w, test has no questions", ErrValidation)
	}

	s := &Session{test: test}
	s.present()

	return s, nil
}

// present готовит текущий вопрос: перемешивает ответы и запоминает
// правильный. Правильным считается первый помеченный ответ в исходном,
// до перемешивания, порядке; несколько помеченных — состояние битых
// данных редактора, сессия его терпит, а не отвергает.
func (s *Session) present() {
	question := s.test.Questions[s.index]

	s.correct = ""
	for _, answer := range question.Answers {
		if answer.Correct {
			s.correct = answer.Text
			break
		}
	}

	s.shuffled = make([]SessionAnswer, len(question.Answers))
	for i, answer := range question.Answers {
		s.shuffled[i] = SessionAnswer{
			Text:     answer.Text,
			Image:    answer.Image,
			HasImage: answer.Image != "",
		}
	}

	rand.Shuffle(len(s.shuffled), func(i, j int) {
		s.shuffled[i], s.shuffled[j] = s.shuffled[j], s.shuffled[i]
	})
}

// CurrentQuestion возвращает текущий вопрос с перемешанными ответами.
func (s *Session) CurrentQuestion() (QuestionView, error) {
	if s.IsComplete() {
		return QuestionView{}, fmt.Errorf("%w, session already completed", ErrValidation)
	}

	question := s.test.Questions[s.index]
	answers := make([]SessionAnswer, len(s.shuffled))
	copy(answers, s.shuffled)

	return QuestionView{
		Index:   s.index,
		Total:   len(s.test.Questions),
		Text:    question.Text,
		Image:   question.Image,
		Answers: answers,
	}, nil
}

// SubmitAnswer принимает выбранный текст ответа, обновляет счёт и
// переходит к следующему вопросу. Текст обязан совпадать с одним из
// показанных ответов — защита от устаревшего или подделанного ввода.
func (s *Session) SubmitAnswer(text string) (Outcome, error) {
	if s.IsComplete() {
		return Outcome{}, fmt.Errorf("%w, session already completed", ErrValidation)
	}

	offered := false
	for _, answer := range s.shuffled {
		if answer.Text == text {
			offered = true
			break
		}
	}

	if !offered {
		return Outcome{}, fmt.Errorf("%w, answer %q is not offered", ErrValidation, text)
	}

	outcome := Outcome{
		Index:     s.index,
		Question:  s.test.Questions[s.index].Text,
		Selected:  text,
		Correct:   s.correct,
		IsCorrect: s.correct != "" && text == s.correct,
	}

	if outcome.IsCorrect {
		s.score++
	}

	s.outcomes = append(s.outcomes, outcome)
	s.index++

	if !s.IsComplete() {
		s.present()
	}

	return outcome, nil
}

// IsComplete сообщает, отвечены ли все вопросы.
func (s *Session) IsComplete() bool {
	return s.index >= len(s.test.Questions)
}

// FinalScore возвращает счёт, число вопросов и процент правильных.
func (s *Session) FinalScore() Score {
	total := len(s.test.Questions)

	return Score{
		Score:   s.score,
		Total:   total,
		Percent: 100 * float64(s.score) / float64(total),
	}
}

// Outcomes возвращает результаты по отвеченным вопросам по порядку.
func (s *Session) Outcomes() []Outcome {
	outcomes := make([]Outcome, len(s.outcomes))
	copy(outcomes, s.outcomes)

	return outcomes
}
