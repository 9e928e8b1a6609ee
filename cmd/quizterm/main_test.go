package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/letsssgooo/quizcraft/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Ровный вывод без ANSI-кодов, чтобы проверять подстроки
	color.NoColor = true
}

func TestPlay_CompletesQuiz(t *testing.T) {
	test := quiz.NewTest()
	test.AddQuestion()
	require.NoError(t, test.SetQuestionText(0, "2+2?"))
	_, err := test.AddAnswer(0, "4")
	require.NoError(t, err)
	require.NoError(t, test.SetCorrectAnswer(0, 0))

	session, err := quiz.NewSession(test)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, play(session, 0, strings.NewReader("A\n"), &out))

	assert.Contains(t, out.String(), "Correct!")
	assert.Contains(t, out.String(), "Your score: 1/1 (100.0%)")
}

func TestPlay_QuestionWithoutAnswers(t *testing.T) {
	test := quiz.NewTest()
	test.AddQuestion()
	require.NoError(t, test.SetQuestionText(0, "Q"))

	session, err := quiz.NewSession(test)
	require.NoError(t, err)

	var out bytes.Buffer
	err = play(session, 0, strings.NewReader("A\nB\n"), &out)

	// Цикл завершается с ошибкой, а не зацикливается на переспросе
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no answers")
}

func TestPlay_EndOfInput(t *testing.T) {
	test := quiz.NewTest()
	test.AddQuestion()
	_, err := test.AddAnswer(0, "yes")
	require.NoError(t, err)

	session, err := quiz.NewSession(test)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, play(session, 0, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "Bye!")
}

func TestReadAnswer_RetriesOnBadInput(t *testing.T) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader("z\n9\nB\n"))

	idx, ok := readAnswer(scanner, &out, 2)

	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "Please enter a letter from A to B")
}
