// Package responder implements the chat assistant's matching brain: a
// longest-relative-match lookup over a fixed keyword dictionary. It is not
// language understanding; it is deterministic and side-effect-free.
package responder

import "strings"

// DefaultResponse is returned when no keyword matches.
const DefaultResponse = "I'm not sure about that, but I'd love to help you with questions about cat behavior, health, breeds, or care!"

// Entry pairs one keyword with its canned response.
type Entry struct {
	Keyword  string
	Response string
}

// Responder matches free-text input against an ordered keyword list.
// Definition order breaks score ties (first wins), which is why the
// knowledge base is a slice rather than a map.
type Responder struct {
	entries []Entry
	def     string
}

// New creates a responder over the given entries. Keywords are matched
// lowercase; entries are normalized at construction.
func New(entries []Entry, defaultResponse string) *Responder {
	normalized := make([]Entry, len(entries))
	for i, e := range entries {
		normalized[i] = Entry{
			Keyword:  strings.ToLower(e.Keyword),
			Response: e.Response,
		}
	}
	if defaultResponse == "" {
		defaultResponse = DefaultResponse
	}
	return &Responder{entries: normalized, def: defaultResponse}
}

// Default returns a responder over the built-in cat knowledge base.
func Default() *Responder {
	return New(knowledgeBase, DefaultResponse)
}

// Respond returns the response for the best-matching keyword, scored by
// keyword length relative to input length. Strictly-greater comparison
// keeps the first keyword on ties. No match returns the default response.
func (r *Responder) Respond(input string) string {
	query := strings.ToLower(input)
	if strings.TrimSpace(query) == "" {
		return r.def
	}

	best := ""
	bestScore := 0.0
	for _, e := range r.entries {
		if e.Keyword == "" || !strings.Contains(query, e.Keyword) {
			continue
		}
		score := float64(len(e.Keyword)) / float64(len(query))
		if score > bestScore {
			bestScore = score
			best = e.Response
		}
	}

	if best == "" {
		return r.def
	}
	return best
}
