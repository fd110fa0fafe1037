// Package auth implements the demo-only local sign-in: an opaque token and
// display name in the profile store. There is no real authentication or
// authorization here; it gates favoriting in the UI and nothing else.
package auth

import (
	"fmt"
	"strings"

	"trustcat/internal/store"
)

const (
	keyToken = "auth_token"
	keyEmail = "auth_email"
	keyName  = "auth_name"

	demoEmail    = "demo@trustcat.test"
	demoName     = "Demo User"
	demoPassword = "password"
	demoToken    = "demo-token-12345"
)

// User is the signed-in identity.
type User struct {
	Email string
	Name  string
}

// Auth wraps the profile store with the mock sign-in flow.
type Auth struct {
	store *store.Store
}

// New creates an Auth over the given store.
func New(s *store.Store) *Auth {
	return &Auth{store: s}
}

// Login accepts the demo account or any non-empty pair, and persists the
// session. Returns the signed-in user.
func (a *Auth) Login(email, password string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return User{}, fmt.Errorf("invalid credentials for demo")
	}
	if email == demoEmail && password != demoPassword {
		return User{}, fmt.Errorf("invalid credentials for demo")
	}

	name := demoName
	if email != demoEmail {
		name = email
		if i := strings.Index(email, "@"); i > 0 {
			name = email[:i]
		}
	}

	if err := a.store.SetProfile(keyToken, demoToken); err != nil {
		return User{}, fmt.Errorf("persist session: %w", err)
	}
	if err := a.store.SetProfile(keyEmail, email); err != nil {
		return User{}, fmt.Errorf("persist session: %w", err)
	}
	if err := a.store.SetProfile(keyName, name); err != nil {
		return User{}, fmt.Errorf("persist session: %w", err)
	}

	return User{Email: email, Name: name}, nil
}

// Logout clears the persisted session. Logging out while signed out is a no-op.
func (a *Auth) Logout() error {
	for _, key := range []string{keyToken, keyEmail, keyName} {
		if err := a.store.DeleteProfile(key); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}

// IsAuthenticated reports whether a session token is present.
func (a *Auth) IsAuthenticated() bool {
	token, err := a.store.Profile(keyToken)
	return err == nil && token != ""
}

// Current returns the signed-in user, if any.
func (a *Auth) Current() (User, bool) {
	if !a.IsAuthenticated() {
		return User{}, false
	}
	email, _ := a.store.Profile(keyEmail)
	name, _ := a.store.Profile(keyName)
	return User{Email: email, Name: name}, true
}
