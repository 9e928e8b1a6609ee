package player

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/letsssgooo/quizcraft/internal/quiz"
	"github.com/letsssgooo/quizcraft/internal/storage"
)

// View рисует текущий экран плеера.
func (m Model) View() string {
	switch m.phase {
	case phaseResults:
		return m.renderResults()
	case phaseReveal:
		return m.renderQuestion(true)
	default:
		return m.renderQuestion(false)
	}
}

func (m Model) renderQuestion(reveal bool) string {
	header := fmt.Sprintf("Question %d/%d", m.view.Index+1, m.view.Total)
	lines := []string{
		m.stylize(header, lipgloss.Color("33")),
		"",
		m.view.Text,
	}

	if note := m.imageNote(m.view.Image); note != "" {
		lines = append(lines, note)
	}

	lines = append(lines, "")

	for i, answer := range m.view.Answers {
		line := fmt.Sprintf("%d. %s", i+1, answer.Text)
		if answer.HasImage {
			line += " " + m.imageNote(answer.Image)
		}

		if reveal {
			switch {
			case answer.Text == m.outcome.Correct:
				line = m.stylize(line, lipgloss.Color("70"))
			case answer.Text == m.outcome.Selected:
				line = m.stylize(line, lipgloss.Color("160"))
			}
		}

		lines = append(lines, line)
	}

	lines = append(lines, "")

	score := m.session.FinalScore()
	lines = append(lines, m.stylize(
		fmt.Sprintf("Score: %d/%d", score.Score, score.Total),
		lipgloss.Color("242"),
	))

	if reveal {
		verdict := "Wrong!"
		clr := lipgloss.Color("160")
		if m.outcome.IsCorrect {
			verdict = "Correct!"
			clr = lipgloss.Color("70")
		}

		lines = append(lines, m.stylize(verdict, clr))
	} else {
		lines = append(lines, m.stylize("Press 1-9 to answer, q to quit", lipgloss.Color("240")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderResults() string {
	score := m.session.FinalScore()

	lines := []string{
		m.stylize("Quiz Completed!", lipgloss.Color("33")),
		"",
		fmt.Sprintf("Your score: %d/%d (%.1f%%)", score.Score, score.Total, score.Percent),
		"",
		m.table.View(),
		"",
		m.stylize("Press any key to exit", lipgloss.Color("240")),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// imageNote подписывает картинку вопроса или ответа; в терминале сами
// картинки не показываются, только имя и доступность файла.
func (m Model) imageNote(filename string) string {
	switch path, status := storage.ResolveImage(m.folder, filename); status {
	case storage.ImageFound:
		return m.stylize("[img: "+path+"]", lipgloss.Color("244"))
	case storage.ImageMissing:
		return m.stylize("[img "+filename+" missing]", lipgloss.Color("178"))
	default:
		return ""
	}
}

func (m Model) stylize(text string, clr lipgloss.Color) string {
	if m.noColor {
		return text
	}

	return lipgloss.NewStyle().Foreground(clr).Render(text)
}

// resultsTable собирает таблицу результатов по вопросам.
func resultsTable(outcomes []quiz.Outcome, width int) table.Model {
	questionWidth := 40
	if width > 70 {
		questionWidth = width - 30
	}

	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Question", Width: questionWidth},
		{Title: "Answer", Width: 20},
		{Title: "Result", Width: 7},
	}

	rows := make([]table.Row, len(outcomes))
	for i, outcome := range outcomes {
		result := "wrong"
		if outcome.IsCorrect {
			result = "ok"
		}

		rows[i] = table.Row{
			fmt.Sprintf("%d", outcome.Index+1),
			outcome.Question,
			outcome.Selected,
			result,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	return t
}
