package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddQuestion_Empty(t *testing.T) {
	test := NewTest()

	q := test.AddQuestion()
	require.Equal(t, 0, q)

	question := test.Questions[0]
	assert.NotEmpty(t, question.ID)
	assert.Empty(t, question.Text)
	assert.Empty(t, question.Image)
	assert.Empty(t, question.Answers)
}

func TestRemoveQuestion_PreservesOrder(t *testing.T) {
	test := NewTest()

	for _, text := range []string{"first", "second", "third", "fourth"} {
		q := test.AddQuestion()
		require.NoError(t, test.SetQuestionText(q, text))
	}

	require.NoError(t, test.RemoveQuestion(1))

	require.Len(t, test.Questions, 3)
	assert.Equal(t, "first", test.Questions[0].Text)
	assert.Equal(t, "third", test.Questions[1].Text)
	assert.Equal(t, "fourth", test.Questions[2].Text)
}

func TestRemoveQuestion_OutOfRange(t *testing.T) {
	test := NewTest()
	test.AddQuestion()

	testCases := []struct {
		name string
		idx  int
	}{
		{name: "negative", idx: -1},
		{name: "too big", idx: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := test.RemoveQuestion(tc.idx)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestCheckQuestionAndAnswer(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()
	_, err := test.AddAnswer(q, "yes")
	require.NoError(t, err)

	assert.NoError(t, test.CheckQuestion(q))
	assert.NoError(t, test.CheckAnswer(q, 0))

	assert.ErrorIs(t, test.CheckQuestion(-1), ErrOutOfRange)
	assert.ErrorIs(t, test.CheckQuestion(1), ErrOutOfRange)
	assert.ErrorIs(t, test.CheckAnswer(1, 0), ErrOutOfRange)
	assert.ErrorIs(t, test.CheckAnswer(q, -1), ErrOutOfRange)
	assert.ErrorIs(t, test.CheckAnswer(q, 1), ErrOutOfRange)
}

func TestAddAnswer_Validation(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	_, err := test.AddAnswer(q, "Paris")
	require.NoError(t, err)

	// Пустой текст
	_, err = test.AddAnswer(q, "")
	assert.ErrorIs(t, err, ErrValidation)

	// Дубликат
	_, err = test.AddAnswer(q, "Paris")
	assert.ErrorIs(t, err, ErrValidation)

	require.Len(t, test.Questions[q].Answers, 1)
}

func TestAddBlankAnswer_DistinctTexts(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	a1, err := test.AddBlankAnswer(q)
	require.NoError(t, err)
	a2, err := test.AddBlankAnswer(q)
	require.NoError(t, err)

	first := test.Questions[q].Answers[a1].Text
	second := test.Questions[q].Answers[a2].Text

	assert.Equal(t, "Answer 1", first)
	assert.Equal(t, "Answer 2", second)
	assert.NotEqual(t, first, second)
}

func TestAddBlankAnswer_CollisionGetsCounter(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	// Занимаем текст, который сгенерировала бы заглушка
	_, err := test.AddAnswer(q, "Answer 2")
	require.NoError(t, err)

	a, err := test.AddBlankAnswer(q)
	require.NoError(t, err)

	text := test.Questions[q].Answers[a].Text
	assert.NotEqual(t, "Answer 2", text)

	// Обе заглушки остаются, ни одна молча не потеряна
	require.Len(t, test.Questions[q].Answers, 2)
}

func TestRenameAnswer_PreservesPositionFlagAndImage(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	_, err := test.AddAnswer(q, "London")
	require.NoError(t, err)
	a, err := test.AddAnswer(q, "Paris")
	require.NoError(t, err)

	require.NoError(t, test.SetCorrectAnswer(q, a))
	require.NoError(t, test.SetAnswerImage(q, a, "paris.png"))

	require.NoError(t, test.RenameAnswer(q, a, "Paris, France"))

	answer := test.Questions[q].Answers[a]
	assert.Equal(t, "Paris, France", answer.Text)
	assert.True(t, answer.Correct)
	assert.Equal(t, "paris.png", answer.Image)
}

func TestRenameAnswer_Validation(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	_, err := test.AddAnswer(q, "London")
	require.NoError(t, err)
	a, err := test.AddAnswer(q, "Paris")
	require.NoError(t, err)

	// Переименование в самого себя — не ошибка
	require.NoError(t, test.RenameAnswer(q, a, "Paris"))

	// Пустой текст
	assert.ErrorIs(t, test.RenameAnswer(q, a, ""), ErrValidation)

	// Коллизия с другим ответом
	assert.ErrorIs(t, test.RenameAnswer(q, a, "London"), ErrValidation)

	// Индекс вне диапазона
	assert.ErrorIs(t, test.RenameAnswer(q, 5, "Berlin"), ErrOutOfRange)
}

func TestRemoveAnswer_KeepsAlignment(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	for _, pair := range []struct{ text, image string }{
		{"Paris", "paris.png"},
		{"London", "london.png"},
		{"Berlin", "berlin.png"},
	} {
		a, err := test.AddAnswer(q, pair.text)
		require.NoError(t, err)
		require.NoError(t, test.SetAnswerImage(q, a, pair.image))
	}

	require.NoError(t, test.RemoveAnswer(q, 1))

	answers := test.Questions[q].Answers
	require.Len(t, answers, 2)
	assert.Equal(t, "Paris", answers[0].Text)
	assert.Equal(t, "paris.png", answers[0].Image)
	assert.Equal(t, "Berlin", answers[1].Text)
	assert.Equal(t, "berlin.png", answers[1].Image)

	assert.ErrorIs(t, test.RemoveAnswer(q, 2), ErrOutOfRange)
}

func TestSetCorrectAnswer_SingleCorrect(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	for _, text := range []string{"Paris", "London", "Berlin"} {
		_, err := test.AddAnswer(q, text)
		require.NoError(t, err)
	}

	require.NoError(t, test.SetCorrectAnswer(q, 0))
	require.NoError(t, test.SetCorrectAnswer(q, 2))

	// Ровно один флаг, на позиции 2
	for i, answer := range test.Questions[q].Answers {
		assert.Equal(t, i == 2, answer.Correct, "answer %d", i)
	}
}

func TestClearCorrectAnswer_AllowsNoCorrect(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	_, err := test.AddAnswer(q, "Paris")
	require.NoError(t, err)

	require.NoError(t, test.SetCorrectAnswer(q, 0))
	require.NoError(t, test.ClearCorrectAnswer(q, 0))

	assert.False(t, test.Questions[q].Answers[0].Correct)
}

func TestQuestionSummaries_Truncated(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	long := strings.Repeat("x", 50)
	require.NoError(t, test.SetQuestionText(q, long))

	summaries := test.QuestionSummaries()
	require.Len(t, summaries, 1)
	assert.Equal(t, 0, summaries[0].Index)
	assert.Len(t, summaries[0].Text, 30)
}

func TestAnswerSummaries(t *testing.T) {
	test := NewTest()
	q := test.AddQuestion()

	_, err := test.AddAnswer(q, "Paris")
	require.NoError(t, err)
	_, err = test.AddAnswer(q, "London")
	require.NoError(t, err)

	require.NoError(t, test.SetCorrectAnswer(q, 0))
	require.NoError(t, test.SetAnswerImage(q, 1, "london.png"))

	summaries, err := test.AnswerSummaries(q)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, AnswerSummary{Index: 0, Text: "Paris", Correct: true}, summaries[0])
	assert.Equal(t, AnswerSummary{Index: 1, Text: "London", HasImage: true}, summaries[1])

	_, err = test.AnswerSummaries(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
