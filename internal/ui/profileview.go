package ui

import (
	"fmt"
	"strings"

	"trustcat/internal/auth"
	"trustcat/internal/catalog"
	"trustcat/internal/quiz"
	"trustcat/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// profileModel shows the login form when signed out, and the account page
// with usage stats and earned badges when signed in.
type profileModel struct {
	store *store.Store
	auth  *auth.Auth

	// lookupFact resolves a fact id to its item for the stats panel.
	lookupFact func(string) (catalog.Item, bool)

	email    textinput.Model
	password textinput.Model
	focused  int // 0 email, 1 password
	loginErr string

	width int
}

func newProfileModel(st *store.Store, a *auth.Auth, lookupFact func(string) (catalog.Item, bool)) profileModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 80
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 80
	password.Width = 40
	password.EchoMode = textinput.EchoPassword

	return profileModel{store: st, auth: a, lookupFact: lookupFact, email: email, password: password}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd, string) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, ""
	}

	if m.auth.IsAuthenticated() {
		if keyMsg.String() == "l" {
			if err := m.auth.Logout(); err != nil {
				return m, nil, "Logout failed"
			}
			m.email.SetValue("")
			m.password.SetValue("")
			m.focused = 0
			return m, m.email.Focus(), "Logged out"
		}
		return m, nil, ""
	}

	switch keyMsg.String() {
	case "tab":
		m.focused = 1 - m.focused
		if m.focused == 0 {
			m.password.Blur()
			return m, m.email.Focus(), ""
		}
		m.email.Blur()
		return m, m.password.Focus(), ""

	case "enter":
		user, err := m.auth.Login(m.email.Value(), m.password.Value())
		if err != nil {
			m.loginErr = err.Error()
			return m, nil, ""
		}
		m.loginErr = ""
		return m, nil, "Welcome, " + user.Name
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd, ""
}

func (m profileModel) View() string {
	if !m.auth.IsAuthenticated() {
		return m.renderLogin()
	}
	return m.renderAccount()
}

func (m profileModel) renderLogin() string {
	var b strings.Builder
	b.WriteString(CardTitle.Render("Sign in") + "\n\n")
	b.WriteString("email:    " + m.email.View() + "\n")
	b.WriteString("password: " + m.password.View() + "\n\n")
	if m.loginErr != "" {
		b.WriteString(WrongStyle.Render(m.loginErr) + "\n\n")
	}
	b.WriteString(HelpStyle.Render("tab switch field · enter sign in") + "\n")
	b.WriteString(MetaText.Render("demo account: demo@trustcat.test / password") + "\n")
	return b.String()
}

func (m profileModel) renderAccount() string {
	user, _ := m.auth.Current()

	var b strings.Builder
	b.WriteString(CardTitle.Render(user.Name) + "\n")
	b.WriteString(MetaText.Render(user.Email) + "\n\n")

	b.WriteString("Favorites\n")
	for _, ns := range []struct{ label, key string }{
		{"facts", "facts"},
		{"images", "images"},
		{"breeds", "breeds"},
	} {
		ids, err := m.store.Favorites(ns.key)
		if err != nil {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-8s %d\n", ns.label, len(ids)))
	}

	b.WriteString("\nActivity\n")
	for _, c := range []struct{ label, kind string }{
		{"viewed", "viewed"},
		{"shared", "shared"},
		{"printed", "printed"},
	} {
		n, err := m.store.CounterDistinct(c.kind)
		if err != nil {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-8s %d facts\n", c.label, n))
	}

	b.WriteString(m.renderTopViewed())

	b.WriteString("\nQuiz badges\n")
	b.WriteString(m.renderBadges())

	b.WriteString("\n" + HelpStyle.Render("l logout") + "\n")
	return b.String()
}

// renderTopViewed lists the most-opened facts. Facts no longer in the
// current batch show their raw id.
func (m profileModel) renderTopViewed() string {
	top, err := m.store.TopCounters("viewed", 5)
	if err != nil || len(top) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nMost viewed facts\n")
	for _, entry := range top {
		label := entry.ItemID
		if m.lookupFact != nil {
			if it, ok := m.lookupFact(entry.ItemID); ok && it.Title != "" {
				label = it.Title
			}
		}
		if len([]rune(label)) > 60 {
			label = string([]rune(label)[:57]) + "..."
		}
		b.WriteString(fmt.Sprintf("  %2d× %s\n", entry.Count, label))
	}
	return b.String()
}

func (m profileModel) renderBadges() string {
	results, err := m.store.QuizResults()
	if err != nil || len(results) == 0 {
		return MetaText.Render("  none yet - take a quiz!") + "\n"
	}

	counts := map[string]int{}
	best := 0
	for _, r := range results {
		counts[r.Badge]++
		if r.Total > 0 && r.Score*100/r.Total > best {
			best = r.Score * 100 / r.Total
		}
	}

	var b strings.Builder
	for _, badge := range []string{quiz.BadgeGold, quiz.BadgeSilver, quiz.BadgeBronze} {
		if counts[badge] == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("  %s × %d\n", badgeLabel(badge), counts[badge]))
	}
	b.WriteString(MetaText.Render(fmt.Sprintf("  best score: %d%% over %d quizzes", best, len(results))) + "\n")
	return b.String()
}
