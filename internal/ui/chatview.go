package ui

import (
	"strings"

	"trustcat/internal/responder"
	"trustcat/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// chatModel is the keyword-responder chat page. The transcript is persisted
// so it survives restarts; the store caps its length.
type chatModel struct {
	store     *store.Store
	responder *responder.Responder

	input    textinput.Model
	messages []store.ChatMessage

	width, height int
}

func newChatModel(st *store.Store, r *responder.Responder) chatModel {
	input := textinput.New()
	input.Placeholder = "ask about cats..."
	input.CharLimit = 200
	input.Width = 50
	input.Focus()

	m := chatModel{store: st, responder: r, input: input}
	m.reload()
	return m
}

func (m *chatModel) reload() {
	history, err := m.store.ChatHistory()
	if err != nil {
		return
	}
	m.messages = history
}

// send persists both sides of an exchange and refreshes the transcript.
func (m *chatModel) send(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	reply := m.responder.Respond(text)
	if err := m.store.AppendChatMessage("user", text); err != nil {
		return
	}
	m.store.AppendChatMessage("assistant", reply)
	m.reload()
}

func (m chatModel) Update(msg tea.Msg) (chatModel, tea.Cmd, string) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, ""
	}

	switch keyMsg.String() {
	case "enter":
		m.send(m.input.Value())
		m.input.SetValue("")
		return m, nil, ""
	case "ctrl+l":
		if err := m.store.ClearChatHistory(); err != nil {
			return m, nil, "Clear failed"
		}
		m.messages = nil
		return m, nil, "Chat history cleared"
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, ""
}

func (m chatModel) View() string {
	var b strings.Builder

	if len(m.messages) == 0 {
		b.WriteString(ChatAssistant.Render("Cat Assistant: ") +
			"Hi! Ask me about cat behavior, health, breeds or history.\n")
	}

	// Show only the tail that fits on screen.
	visible := m.messages
	maxLines := m.height - 8
	if maxLines > 0 && len(visible) > maxLines {
		visible = visible[len(visible)-maxLines:]
	}

	for _, msg := range visible {
		switch msg.Role {
		case "user":
			b.WriteString(ChatUser.Render("You: ") + msg.Text + "\n")
		default:
			b.WriteString(ChatAssistant.Render("Cat Assistant: ") + msg.Text + "\n")
		}
	}

	b.WriteString("\n" + m.input.View() + "\n")
	b.WriteString(HelpStyle.Render("enter send · ctrl+l clear history") + "\n")
	return b.String()
}
