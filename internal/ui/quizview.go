package ui

import (
	"fmt"
	"strings"
	"time"

	"trustcat/internal/catalog"
	"trustcat/internal/quiz"
	"trustcat/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// quizModel drives one quiz session at a time. Between sessions it shows
// the recent history from the store.
type quizModel struct {
	store   *store.Store
	session *quiz.Session
	delay   time.Duration

	// demoFacts supplies the currently loaded facts for generated quizzes.
	demoFacts func() []catalog.Item

	gen     int // Invalidates pending advance ticks when a session restarts
	history []store.QuizResult

	width int
}

func newQuizModel(st *store.Store, answerDelay time.Duration, demoFacts func() []catalog.Item) quizModel {
	m := quizModel{store: st, delay: answerDelay, demoFacts: demoFacts}
	m.reloadHistory()
	return m
}

// cancelPending invalidates any scheduled advance, e.g. when the user
// leaves the page mid-reveal.
func (m *quizModel) cancelPending() {
	m.gen++
}

// resumePending reschedules the advance for a session parked in the
// answered state.
func (m *quizModel) resumePending() tea.Cmd {
	if m.session == nil || m.session.Phase() != quiz.PhaseAnswered {
		return nil
	}
	return m.advanceAfterDelay()
}

func (m *quizModel) reloadHistory() {
	results, err := m.store.QuizResults()
	if err != nil {
		return
	}
	if len(results) > 5 {
		results = results[:5]
	}
	m.history = results
}

func (m *quizModel) start(questions []quiz.Question) {
	m.gen++
	m.session = quiz.NewSession(questions, m.store)
}

func (m quizModel) advanceAfterDelay() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return AdvanceTick{Gen: gen}
	})
}

func (m quizModel) Update(msg tea.Msg) (quizModel, tea.Cmd, string) {
	switch msg := msg.(type) {
	case AdvanceTick:
		if msg.Gen != m.gen || m.session == nil {
			return m, nil, ""
		}
		m.session.Advance()
		if m.session.Phase() == quiz.PhaseComplete {
			m.reloadHistory()
		}
		return m, nil, ""

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil, ""
}

func (m quizModel) handleKey(msg tea.KeyMsg) (quizModel, tea.Cmd, string) {
	key := msg.String()

	if m.session == nil || m.session.Phase() == quiz.PhaseComplete ||
		m.session.Phase() == quiz.PhaseNoQuestions {
		switch key {
		case "n", "enter":
			m.start(quiz.DefaultQuestions())
			return m, nil, "Quiz started"
		case "g":
			questions := quiz.GenerateDemo(m.demoFacts())
			if len(questions) == 0 {
				return m, nil, "No facts loaded to build a quiz from"
			}
			m.start(questions)
			return m, nil, "True-or-false quiz from today's facts"
		}
		return m, nil, ""
	}

	if m.session.Phase() != quiz.PhaseAwaiting {
		return m, nil, ""
	}

	switch key {
	case "1", "2", "3", "4":
		choice := int(key[0] - '1')
		correct, ok := m.session.Answer(choice)
		if !ok {
			return m, nil, ""
		}
		toast := "Wrong"
		if correct {
			toast = "Correct!"
		}
		return m, m.advanceAfterDelay(), toast
	}
	return m, nil, ""
}

func (m quizModel) View() string {
	var b strings.Builder

	if m.session == nil {
		b.WriteString("Cat trivia quiz\n\n")
		b.WriteString("Press " + StatusBarKey.Render("n") + " to start a new quiz, or " +
			StatusBarKey.Render("g") + " for true-or-false questions built from today's facts.\n\n")
		b.WriteString(m.renderHistory())
		return b.String()
	}

	switch m.session.Phase() {
	case quiz.PhaseNoQuestions:
		b.WriteString(MetaText.Render("No questions available.") + "\n")
		b.WriteString("Press " + StatusBarKey.Render("n") + " to try again, or " +
			StatusBarKey.Render("g") + " to build one from today's facts.\n")

	case quiz.PhaseAwaiting, quiz.PhaseAnswered:
		b.WriteString(m.renderQuestion())

	case quiz.PhaseComplete:
		b.WriteString(m.renderResult())
		b.WriteString("\n" + m.renderHistory())
	}

	return b.String()
}

func (m quizModel) renderQuestion() string {
	q, ok := m.session.Question()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(MetaText.Render(fmt.Sprintf("Question %d of %d  ·  score %d",
		m.session.Index()+1, m.session.Total(), m.session.Score())))
	b.WriteString("\n\n")
	b.WriteString(CardTitle.Render(q.Prompt))
	b.WriteString("\n\n")

	answered := m.session.Phase() == quiz.PhaseAnswered
	chosen, correct := m.session.LastAnswer()

	for i, opt := range q.Options {
		line := fmt.Sprintf("  %d. %s", i+1, opt)
		switch {
		case answered && i == q.Correct:
			line = CorrectStyle.Render(line + "  ✓")
		case answered && i == chosen && !correct:
			line = WrongStyle.Render(line + "  ✗")
		}
		b.WriteString(line + "\n")
	}

	if answered {
		b.WriteString("\n" + MetaText.Render("next question in a moment...") + "\n")
	} else {
		b.WriteString("\n" + HelpStyle.Render("press 1-4 to answer") + "\n")
	}
	return b.String()
}

func (m quizModel) renderResult() string {
	result, ok := m.session.Result()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(CardTitle.Render("Quiz complete!") + "\n\n")
	b.WriteString(fmt.Sprintf("You scored %d out of %d.\n", result.Score, result.Total))
	b.WriteString(fmt.Sprintf("Badge earned: %s\n", badgeLabel(result.Badge)))
	b.WriteString("\n" + HelpStyle.Render("press n for another round") + "\n")
	return b.String()
}

func (m quizModel) renderHistory() string {
	if len(m.history) == 0 {
		return MetaText.Render("No quizzes taken yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString(MetaText.Render("Recent results:") + "\n")
	for _, r := range m.history {
		b.WriteString(fmt.Sprintf("  %s  %d/%d  %s\n",
			r.TakenAt.Format("Jan 02 15:04"), r.Score, r.Total, badgeLabel(r.Badge)))
	}
	return b.String()
}

func badgeLabel(badge string) string {
	switch badge {
	case quiz.BadgeGold:
		return "🥇 gold"
	case quiz.BadgeSilver:
		return "🥈 silver"
	default:
		return "🥉 bronze"
	}
}
