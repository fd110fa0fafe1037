package auth

import (
	"testing"

	"trustcat/internal/store"
)

func newTestAuth(t *testing.T) *Auth {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(s)
}

func TestLoginDemoAccount(t *testing.T) {
	a := newTestAuth(t)

	user, err := a.Login("demo@trustcat.test", "password")
	if err != nil {
		t.Fatalf("demo login failed: %v", err)
	}
	if user.Name != "Demo User" {
		t.Errorf("expected demo display name, got %q", user.Name)
	}
	if !a.IsAuthenticated() {
		t.Error("expected authenticated after login")
	}
}

func TestLoginDemoAccountWrongPassword(t *testing.T) {
	a := newTestAuth(t)

	if _, err := a.Login("demo@trustcat.test", "wrong"); err == nil {
		t.Error("expected error for wrong demo password")
	}
	if a.IsAuthenticated() {
		t.Error("should not be authenticated")
	}
}

func TestLoginAnyNonEmptyPair(t *testing.T) {
	a := newTestAuth(t)

	user, err := a.Login("alex@example.com", "anything")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Name != "alex" {
		t.Errorf("expected name from email local part, got %q", user.Name)
	}

	current, ok := a.Current()
	if !ok || current.Email != "alex@example.com" {
		t.Errorf("Current() = %+v, %v", current, ok)
	}
}

func TestLoginEmptyRejected(t *testing.T) {
	a := newTestAuth(t)

	if _, err := a.Login("", "password"); err == nil {
		t.Error("expected error for empty email")
	}
	if _, err := a.Login("x@y.z", ""); err == nil {
		t.Error("expected error for empty password")
	}
}

func TestLogout(t *testing.T) {
	a := newTestAuth(t)

	a.Login("demo@trustcat.test", "password")
	if err := a.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if a.IsAuthenticated() {
		t.Error("still authenticated after logout")
	}
	if _, ok := a.Current(); ok {
		t.Error("Current should be empty after logout")
	}

	// Logout while signed out is a no-op
	if err := a.Logout(); err != nil {
		t.Errorf("second logout errored: %v", err)
	}
}
