// Package quiz implements the trivia flow: a small state machine walking a
// fixed question list, scoring answers and awarding a badge on completion.
package quiz

import (
	"fmt"
	"time"

	"trustcat/internal/catalog"
	"trustcat/internal/logging"
	"trustcat/internal/store"
)

// Phase is the session state.
type Phase int

const (
	// PhaseAwaiting: a question is on screen, waiting for an answer.
	PhaseAwaiting Phase = iota
	// PhaseAnswered: the answer is revealed; the UI advances after a delay.
	PhaseAnswered
	// PhaseComplete: terminal; one result has been recorded.
	PhaseComplete
	// PhaseNoQuestions: terminal; the question set was empty at start.
	PhaseNoQuestions
)

// Badge tiers by score percentage.
const (
	BadgeGold   = "gold"
	BadgeSilver = "silver"
	BadgeBronze = "bronze"
)

// Question is one multiple-choice trivia question.
type Question struct {
	Prompt  string
	Options []string
	Correct int // Index into Options
}

// Recorder persists completed attempts. *store.Store satisfies it.
type Recorder interface {
	SaveQuizResult(r store.QuizResult) error
}

// Session is one quiz attempt. Not safe for concurrent use; driven from the
// UI event loop.
type Session struct {
	questions []Question
	phase     Phase
	index     int
	score     int

	lastChoice  int
	lastCorrect bool

	started  time.Time
	recorder Recorder
	result   store.QuizResult

	now func() time.Time
}

// NewSession starts an attempt. An empty question set lands directly in
// PhaseNoQuestions and records nothing.
func NewSession(questions []Question, recorder Recorder) *Session {
	s := &Session{
		questions: questions,
		recorder:  recorder,
		now:       time.Now,
	}
	s.started = s.now()
	if len(questions) == 0 {
		s.phase = PhaseNoQuestions
	}
	return s
}

// Phase returns the current state.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the zero-based current question index.
func (s *Session) Index() int { return s.index }

// Score returns correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the question count.
func (s *Session) Total() int { return len(s.questions) }

// Question returns the current question while one is active.
func (s *Session) Question() (Question, bool) {
	if s.phase != PhaseAwaiting && s.phase != PhaseAnswered {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Answer submits a choice for the current question. Returns whether it was
// correct and whether the submission was accepted (out-of-phase or
// out-of-range submissions are ignored).
func (s *Session) Answer(choice int) (correct, ok bool) {
	if s.phase != PhaseAwaiting {
		return false, false
	}
	q := s.questions[s.index]
	if choice < 0 || choice >= len(q.Options) {
		return false, false
	}

	s.lastChoice = choice
	s.lastCorrect = choice == q.Correct
	if s.lastCorrect {
		s.score++
	}
	s.phase = PhaseAnswered
	return s.lastCorrect, true
}

// LastAnswer returns the revealed choice and whether it was correct.
// Valid in PhaseAnswered.
func (s *Session) LastAnswer() (choice int, correct bool) {
	return s.lastChoice, s.lastCorrect
}

// Advance moves past a revealed answer: to the next question, or to
// PhaseComplete after the last one. Called by the UI when the reveal timer
// fires; a stale timer after the session moved on is a no-op.
func (s *Session) Advance() {
	if s.phase != PhaseAnswered {
		return
	}
	s.index++
	if s.index < len(s.questions) {
		s.phase = PhaseAwaiting
		return
	}
	s.complete()
}

// complete finalizes the attempt and records one result.
func (s *Session) complete() {
	s.phase = PhaseComplete
	elapsed := int(s.now().Sub(s.started) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	s.result = store.QuizResult{
		Score:           s.score,
		Total:           len(s.questions),
		Badge:           BadgeFor(s.score, len(s.questions)),
		DurationSeconds: elapsed,
		TakenAt:         s.now(),
	}
	if s.recorder != nil {
		if err := s.recorder.SaveQuizResult(s.result); err != nil {
			logging.Warn("failed to record quiz result", "error", err)
		}
	}
}

// Result returns the recorded attempt once the session is complete.
func (s *Session) Result() (store.QuizResult, bool) {
	if s.phase != PhaseComplete {
		return store.QuizResult{}, false
	}
	return s.result, true
}

// BadgeFor maps a score percentage to a badge tier:
// >=80% gold, >=50% silver, else bronze.
func BadgeFor(score, total int) string {
	if total <= 0 {
		return BadgeBronze
	}
	pct := score * 100 / total
	switch {
	case pct >= 80:
		return BadgeGold
	case pct >= 50:
		return BadgeSilver
	default:
		return BadgeBronze
	}
}

// DefaultQuestions is the built-in trivia set.
func DefaultQuestions() []Question {
	return []Question{
		{Prompt: "How many hours a day do cats typically sleep?", Options: []string{"8-10", "12-14", "16-20", "20-24"}, Correct: 2},
		{Prompt: "What is a group of cats called?", Options: []string{"A pack", "A clowder", "A herd", "A colony"}, Correct: 1},
		{Prompt: "Do cats have more or fewer taste buds than humans?", Options: []string{"More", "About the same", "Much fewer", "None"}, Correct: 2},
		{Prompt: "What is the average lifespan of a domestic cat?", Options: []string{"5-8 years", "8-11 years", "12-18 years", "20-25 years"}, Correct: 2},
		{Prompt: "Which sense is most developed in cats at birth?", Options: []string{"Sight", "Smell", "Hearing", "Touch"}, Correct: 3},
		{Prompt: "How far can a cat jump relative to its body length?", Options: []string{"2x", "4x", "6x", "8x"}, Correct: 2},
		{Prompt: "What color are all kittens' eyes at birth?", Options: []string{"Yellow", "Green", "Blue", "Brown"}, Correct: 2},
		{Prompt: "How many muscles control a cat's ears?", Options: []string{"12", "20", "32", "44"}, Correct: 2},
	}
}

// GenerateDemo builds up to 8 True/False questions from fact titles, the
// escape hatch when no trivia set is available.
func GenerateDemo(facts []catalog.Item) []Question {
	questions := make([]Question, 0, 8)
	for _, f := range facts {
		if len(questions) == 8 {
			break
		}
		title := f.Title
		if title == "" {
			title = f.Text
		}
		if title == "" {
			continue
		}
		questions = append(questions, Question{
			Prompt:  fmt.Sprintf("True or False: %s", title),
			Options: []string{"True", "False"},
			Correct: 0,
		})
	}
	return questions
}
