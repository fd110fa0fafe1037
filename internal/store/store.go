// Package store provides SQLite persistence for TrustCat: favorites,
// quiz history, the chat transcript, per-fact counters, and the profile
// key-value bag.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// chatHistoryLimit caps the persisted transcript to the most recent entries.
const chatHistoryLimit = 50

// QuizResult is one completed quiz attempt.
type QuizResult struct {
	ID              string
	Score           int
	Total           int
	Badge           string
	DurationSeconds int
	TakenAt         time.Time
}

// ChatMessage is one transcript entry. Role is "user" or "assistant".
type ChatMessage struct {
	ID        string
	Role      string
	Text      string
	CreatedAt time.Time
}

// CounterEntry is one per-item counter row.
type CounterEntry struct {
	ItemID string
	Count  int
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS favorites (
		namespace TEXT NOT NULL,
		item_id TEXT NOT NULL,
		added_at DATETIME NOT NULL,
		PRIMARY KEY (namespace, item_id)
	);

	CREATE TABLE IF NOT EXISTS quiz_results (
		id TEXT PRIMARY KEY,
		score INTEGER NOT NULL,
		total INTEGER NOT NULL,
		badge TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		taken_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_quiz_results_taken ON quiz_results(taken_at DESC);

	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		role TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		seq INTEGER
	);

	CREATE TABLE IF NOT EXISTS counters (
		kind TEXT NOT NULL,
		item_id TEXT NOT NULL,
		count INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (kind, item_id)
	);

	CREATE TABLE IF NOT EXISTS profile (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// --- Favorites ---

// ToggleFavorite flips membership of id in the namespace and returns the new
// membership. Adding an existing id or removing an absent one is a no-op in
// effect; last write wins across processes.
func (s *Store) ToggleFavorite(namespace, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var exists int
	err := s.db.QueryRow(
		"SELECT COUNT(1) FROM favorites WHERE namespace = ? AND item_id = ?",
		namespace, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}

	if exists > 0 {
		if _, err := s.db.Exec(
			"DELETE FROM favorites WHERE namespace = ? AND item_id = ?",
			namespace, id,
		); err != nil {
			return false, fmt.Errorf("remove favorite: %w", err)
		}
		return false, nil
	}

	if _, err := s.db.Exec(
		"INSERT OR IGNORE INTO favorites (namespace, item_id, added_at) VALUES (?, ?, ?)",
		namespace, id, time.Now(),
	); err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	return true, nil
}

// IsFavorite reports whether id is in the namespace's set.
func (s *Store) IsFavorite(namespace, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists int
	err := s.db.QueryRow(
		"SELECT COUNT(1) FROM favorites WHERE namespace = ? AND item_id = ?",
		namespace, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return exists > 0, nil
}

// Favorites returns the namespace's ids in insertion order.
func (s *Store) Favorites(namespace string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT item_id FROM favorites WHERE namespace = ? ORDER BY added_at",
		namespace,
	)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// --- Quiz results ---

// SaveQuizResult appends one attempt. A zero ID gets a generated one.
func (s *Store) SaveQuizResult(r QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.TakenAt.IsZero() {
		r.TakenAt = time.Now()
	}

	_, err := s.db.Exec(
		"INSERT INTO quiz_results (id, score, total, badge, duration_seconds, taken_at) VALUES (?, ?, ?, ?, ?, ?)",
		r.ID, r.Score, r.Total, r.Badge, r.DurationSeconds, r.TakenAt,
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

// QuizResults returns attempts most-recent-first.
func (s *Store) QuizResults() ([]QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, score, total, badge, duration_seconds, taken_at FROM quiz_results ORDER BY taken_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	defer rows.Close()

	results := make([]QuizResult, 0)
	for rows.Next() {
		var r QuizResult
		if err := rows.Scan(&r.ID, &r.Score, &r.Total, &r.Badge, &r.DurationSeconds, &r.TakenAt); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// --- Chat transcript ---

// AppendChatMessage adds one entry and trims the transcript to the most
// recent entries.
func (s *Store) AppendChatMessage(role, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO chat_messages (id, role, text, created_at, seq) VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM chat_messages))",
		uuid.NewString(), role, text, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("append chat message: %w", err)
	}

	_, err = s.db.Exec(
		`DELETE FROM chat_messages WHERE id NOT IN (
			SELECT id FROM chat_messages ORDER BY seq DESC LIMIT ?
		)`, chatHistoryLimit,
	)
	if err != nil {
		return fmt.Errorf("trim chat history: %w", err)
	}
	return nil
}

// ChatHistory returns the transcript oldest-first.
func (s *Store) ChatHistory() ([]ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT id, role, text, created_at FROM chat_messages ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	defer rows.Close()

	msgs := make([]ChatMessage, 0)
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.Role, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// ClearChatHistory removes the whole transcript.
func (s *Store) ClearChatHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM chat_messages"); err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	return nil
}

// --- Counters ---

// BumpCounter increments one per-item counter (kinds: viewed, shared, printed).
func (s *Store) BumpCounter(kind, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO counters (kind, item_id, count) VALUES (?, ?, 1)
		 ON CONFLICT(kind, item_id) DO UPDATE SET count = count + 1`,
		kind, itemID,
	)
	if err != nil {
		return fmt.Errorf("bump counter: %w", err)
	}
	return nil
}

// CounterDistinct returns how many distinct items have a counter of the kind.
func (s *Store) CounterDistinct(kind string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRow("SELECT COUNT(1) FROM counters WHERE kind = ?", kind).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count counters: %w", err)
	}
	return n, nil
}

// TopCounters returns the n highest-count items of the kind.
func (s *Store) TopCounters(kind string, n int) ([]CounterEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT item_id, count FROM counters WHERE kind = ? ORDER BY count DESC, item_id LIMIT ?",
		kind, n,
	)
	if err != nil {
		return nil, fmt.Errorf("top counters: %w", err)
	}
	defer rows.Close()

	entries := make([]CounterEntry, 0, n)
	for rows.Next() {
		var e CounterEntry
		if err := rows.Scan(&e.ItemID, &e.Count); err != nil {
			return nil, fmt.Errorf("scan counter: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// --- Profile KV ---

// SetProfile stores one profile value (auth token, display name, avatar).
func (s *Store) SetProfile(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO profile (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set profile %s: %w", key, err)
	}
	return nil
}

// Profile reads one profile value; a missing key reads as "".
func (s *Store) Profile(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM profile WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get profile %s: %w", key, err)
	}
	return value, nil
}

// DeleteProfile removes one profile key. Deleting an absent key is a no-op.
func (s *Store) DeleteProfile(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM profile WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete profile %s: %w", key, err)
	}
	return nil
}
