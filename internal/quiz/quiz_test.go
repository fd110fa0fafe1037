package quiz

import (
	"testing"

	"trustcat/internal/catalog"
	"trustcat/internal/store"
)

// memRecorder captures results without a database.
type memRecorder struct {
	results []store.QuizResult
}

func (m *memRecorder) SaveQuizResult(r store.QuizResult) error {
	m.results = append(m.results, r)
	return nil
}

func fiveQuestions() []Question {
	qs := make([]Question, 5)
	for i := range qs {
		qs[i] = Question{
			Prompt:  "Pick the first option",
			Options: []string{"right", "wrong"},
			Correct: 0,
		}
	}
	return qs
}

func TestSessionThreeOfFiveIsSilver(t *testing.T) {
	rec := &memRecorder{}
	s := NewSession(fiveQuestions(), rec)

	answers := []int{0, 0, 0, 1, 1} // 3 correct
	for _, a := range answers {
		if s.Phase() != PhaseAwaiting {
			t.Fatalf("expected PhaseAwaiting, got %v", s.Phase())
		}
		if _, ok := s.Answer(a); !ok {
			t.Fatal("answer rejected")
		}
		s.Advance()
	}

	if s.Phase() != PhaseComplete {
		t.Fatalf("expected PhaseComplete, got %v", s.Phase())
	}

	result, ok := s.Result()
	if !ok {
		t.Fatal("expected a result")
	}
	if result.Score != 3 || result.Total != 5 {
		t.Errorf("expected 3/5, got %d/%d", result.Score, result.Total)
	}
	if result.Badge != BadgeSilver {
		t.Errorf("expected silver at 60%%, got %s", result.Badge)
	}
	if result.DurationSeconds < 0 {
		t.Errorf("negative duration %d", result.DurationSeconds)
	}

	if len(rec.results) != 1 {
		t.Fatalf("expected exactly one recorded result, got %d", len(rec.results))
	}
}

func TestSessionEmptyQuestionSet(t *testing.T) {
	rec := &memRecorder{}
	s := NewSession(nil, rec)

	if s.Phase() != PhaseNoQuestions {
		t.Fatalf("expected PhaseNoQuestions, got %v", s.Phase())
	}
	if _, ok := s.Question(); ok {
		t.Error("no question expected")
	}
	if _, ok := s.Answer(0); ok {
		t.Error("answer should be rejected")
	}
	if len(rec.results) != 0 {
		t.Errorf("no result should be recorded, got %d", len(rec.results))
	}
}

func TestSessionAnswerPhaseGuards(t *testing.T) {
	s := NewSession(fiveQuestions(), nil)

	if _, ok := s.Answer(99); ok {
		t.Error("out-of-range choice accepted")
	}

	if _, ok := s.Answer(0); !ok {
		t.Fatal("valid answer rejected")
	}
	// Double submit while revealed
	if _, ok := s.Answer(0); ok {
		t.Error("answer accepted outside PhaseAwaiting")
	}
	if s.Score() != 1 {
		t.Errorf("double submit changed score: %d", s.Score())
	}

	// A stale advance after completion is a no-op
	for s.Phase() == PhaseAnswered || s.Phase() == PhaseAwaiting {
		if s.Phase() == PhaseAwaiting {
			s.Answer(0)
		}
		s.Advance()
	}
	s.Advance()
	if s.Phase() != PhaseComplete {
		t.Errorf("stale advance moved state: %v", s.Phase())
	}
}

func TestBadgeFor(t *testing.T) {
	tests := []struct {
		score, total int
		want         string
	}{
		{5, 5, BadgeGold},
		{4, 5, BadgeGold},
		{3, 5, BadgeSilver},
		{2, 5, BadgeBronze},
		{0, 5, BadgeBronze},
		{0, 0, BadgeBronze},
	}
	for _, tt := range tests {
		if got := BadgeFor(tt.score, tt.total); got != tt.want {
			t.Errorf("BadgeFor(%d,%d) = %s, want %s", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestGenerateDemo(t *testing.T) {
	facts := make([]catalog.Item, 0, 10)
	for i := 0; i < 10; i++ {
		facts = append(facts, catalog.NewItem(catalog.KindFacts, "f", "A fact title", "body"))
	}

	questions := GenerateDemo(facts)
	if len(questions) != 8 {
		t.Fatalf("expected cap of 8 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Correct != 0 || len(q.Options) != 2 {
			t.Errorf("unexpected demo question: %+v", q)
		}
	}

	if got := GenerateDemo(nil); len(got) != 0 {
		t.Errorf("expected no questions from no facts, got %d", len(got))
	}
}

func TestSessionPersistsToSQLite(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	s := NewSession(fiveQuestions(), st)
	for s.Phase() == PhaseAwaiting {
		s.Answer(0)
		s.Advance()
	}

	results, err := st.QuizResults()
	if err != nil {
		t.Fatalf("QuizResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 persisted result, got %d", len(results))
	}
	if results[0].Badge != BadgeGold {
		t.Errorf("expected gold for perfect score, got %s", results[0].Badge)
	}
}
