package player

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/letsssgooo/quizcraft/internal/quiz"
)

// phase — состояние экрана плеера.
type phase string

const (
	phaseQuestion phase = "question"
	phaseReveal   phase = "reveal"
	phaseResults  phase = "results"
)

// Model ведёт TUI-прохождение теста поверх Bubble Tea.
// Вся логика игры живёт в quiz.Session; модель только показывает
// вопросы и держит паузу между ответом и следующим вопросом.
type Model struct {
	session     *quiz.Session
	folder      string
	phase       phase
	view        quiz.QuestionView
	outcome     quiz.Outcome
	revealDelay time.Duration
	noColor     bool
	table       table.Model
	width       int
	startedAt   time.Time
	err         error
}

// Options настраивает TUI-плеер.
type Options struct {
	RevealDelay time.Duration
	NoColor     bool
}

// NewModel создаёт модель плеера для готовой сессии.
// folder нужен только для подписи картинок.
func NewModel(session *quiz.Session, folder string, opts Options) Model {
	revealDelay := opts.RevealDelay
	if revealDelay <= 0 {
		revealDelay = 1500 * time.Millisecond
	}

	m := Model{
		session:     session,
		folder:      folder,
		phase:       phaseQuestion,
		revealDelay: revealDelay,
		noColor:     opts.NoColor,
		startedAt:   time.Now(),
	}

	m.view, m.err = session.CurrentQuestion()

	return m
}

// revealDoneMsg — истекла пауза показа результата ответа.
type revealDoneMsg struct{}

// Init ничего не запускает: плеер ждёт ввода.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает клавиши и конец паузы показа результата.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	case revealDoneMsg:
		return m.advance()
	}

	return m, nil
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	if m.phase == phaseResults {
		return m, tea.Quit
	}

	if m.phase != phaseQuestion {
		return m, nil
	}

	// Ответы выбираются цифрами 1..9
	r := key.String()
	if len(r) != 1 || r[0] < '1' || r[0] > '9' {
		return m, nil
	}

	idx := int(r[0] - '1')
	if idx >= len(m.view.Answers) {
		return m, nil
	}

	outcome, err := m.session.SubmitAnswer(m.view.Answers[idx].Text)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.outcome = outcome
	m.phase = phaseReveal
	delay := m.revealDelay

	return m, tea.Tick(delay, func(time.Time) tea.Msg { return revealDoneMsg{} })
}

// advance переходит к следующему вопросу или к экрану результатов.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.session.IsComplete() {
		m.phase = phaseResults
		m.table = resultsTable(m.session.Outcomes(), m.width)

		return m, nil
	}

	view, err := m.session.CurrentQuestion()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.view = view
	m.phase = phaseQuestion

	return m, nil
}

// Err возвращает ошибку, из-за которой плеер остановился.
func (m Model) Err() error {
	return m.err
}

// Finished сообщает, дошла ли сессия до конца.
func (m Model) Finished() bool {
	return m.session.IsComplete()
}

// StartedAt возвращает момент начала прохождения.
func (m Model) StartedAt() time.Time {
	return m.startedAt
}
