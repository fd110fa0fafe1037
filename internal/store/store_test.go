package store

import (
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestToggleFavorite(t *testing.T) {
	s := openTestStore(t)

	member, err := s.ToggleFavorite("facts", "f1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !member {
		t.Error("first toggle should add")
	}

	member, err = s.ToggleFavorite("facts", "f1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if member {
		t.Error("second toggle should remove")
	}

	// Toggle twice restores original membership
	ids, err := s.Favorites("facts")
	if err != nil {
		t.Fatalf("Favorites failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected empty set after toggle pair, got %v", ids)
	}
}

func TestFavoritesNamespacesIsolated(t *testing.T) {
	s := openTestStore(t)

	s.ToggleFavorite("facts", "x")
	s.ToggleFavorite("images", "x")
	s.ToggleFavorite("images", "y")

	facts, _ := s.Favorites("facts")
	images, _ := s.Favorites("images")

	if len(facts) != 1 || len(images) != 2 {
		t.Errorf("namespace isolation broken: facts=%v images=%v", facts, images)
	}

	if ok, _ := s.IsFavorite("breeds", "x"); ok {
		t.Error("breeds namespace should be empty")
	}
}

func TestFavoritesEmptyNamespaceReadsAsEmptySet(t *testing.T) {
	s := openTestStore(t)

	ids, err := s.Favorites("facts")
	if err != nil {
		t.Fatalf("Favorites failed: %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", ids)
	}
}

func TestQuizResultsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		err := s.SaveQuizResult(QuizResult{
			Score:   i,
			Total:   5,
			Badge:   "bronze",
			TakenAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	results, err := s.QuizResults()
	if err != nil {
		t.Fatalf("QuizResults failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Score != 2 || results[2].Score != 0 {
		t.Errorf("expected newest first, got scores %d,%d,%d",
			results[0].Score, results[1].Score, results[2].Score)
	}
	if results[0].ID == "" {
		t.Error("expected generated id")
	}
}

func TestChatHistoryCapped(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 60; i++ {
		if err := s.AppendChatMessage("user", fmt.Sprintf("message %d", i)); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	msgs, err := s.ChatHistory()
	if err != nil {
		t.Fatalf("ChatHistory failed: %v", err)
	}
	if len(msgs) != chatHistoryLimit {
		t.Fatalf("expected %d messages, got %d", chatHistoryLimit, len(msgs))
	}
	// Oldest surviving entry is message 10
	if msgs[0].Text != "message 10" {
		t.Errorf("expected oldest to be message 10, got %q", msgs[0].Text)
	}
	if msgs[len(msgs)-1].Text != "message 59" {
		t.Errorf("expected newest to be message 59, got %q", msgs[len(msgs)-1].Text)
	}
}

func TestClearChatHistory(t *testing.T) {
	s := openTestStore(t)

	s.AppendChatMessage("user", "hello")
	if err := s.ClearChatHistory(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	msgs, _ := s.ChatHistory()
	if len(msgs) != 0 {
		t.Errorf("expected empty transcript, got %d", len(msgs))
	}
}

func TestCounters(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		s.BumpCounter("viewed", "f1")
	}
	s.BumpCounter("viewed", "f2")
	s.BumpCounter("shared", "f1")

	n, err := s.CounterDistinct("viewed")
	if err != nil {
		t.Fatalf("CounterDistinct failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 distinct viewed, got %d", n)
	}

	top, err := s.TopCounters("viewed", 5)
	if err != nil {
		t.Fatalf("TopCounters failed: %v", err)
	}
	if len(top) != 2 || top[0].ItemID != "f1" || top[0].Count != 3 {
		t.Errorf("unexpected top counters: %+v", top)
	}
}

func TestProfileKV(t *testing.T) {
	s := openTestStore(t)

	if v, err := s.Profile("missing"); err != nil || v != "" {
		t.Errorf("missing key should read as empty, got %q err=%v", v, err)
	}

	s.SetProfile("name", "Demo User")
	s.SetProfile("name", "Renamed")

	v, err := s.Profile("name")
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if v != "Renamed" {
		t.Errorf("expected last write to win, got %q", v)
	}

	if err := s.DeleteProfile("name"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if v, _ := s.Profile("name"); v != "" {
		t.Errorf("expected empty after delete, got %q", v)
	}

	// Deleting an absent key is a no-op
	if err := s.DeleteProfile("name"); err != nil {
		t.Errorf("delete of absent key should not error: %v", err)
	}
}
