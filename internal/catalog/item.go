// Package catalog implements the collection view engine behind the facts,
// gallery and breeds pages: a batch of normalized items plus the current
// query, categorical filters, sort key and reveal window.
package catalog

import "time"

// Kind identifies which collection an item belongs to. It doubles as the
// favorites namespace in the store.
type Kind string

const (
	KindFacts  Kind = "facts"
	KindImages Kind = "images"
	KindBreeds Kind = "breeds"
)

// Item is one normalized record from any source.
// This is the unified type that flows through the pipeline.
type Item struct {
	ID       string
	Kind     Kind
	Title    string
	Text     string            // Primary text: fact body, breed description, image caption
	Category string            // Derived bucket: fact topic, breed origin group, image tag
	Length   int               // Rune count of Text, derived at ingestion
	Date     time.Time         // Published/fetched timestamp, zero if unknown
	Fields   map[string]string // Source-specific extras (src, tags, origin, temperament, ...)
}

// Field returns a named extra field, or "" when absent.
func (it Item) Field(key string) string {
	if it.Fields == nil {
		return ""
	}
	return it.Fields[key]
}

// NewItem builds an item and derives Length from the text.
func NewItem(kind Kind, id, title, text string) Item {
	return Item{
		ID:     id,
		Kind:   kind,
		Title:  title,
		Text:   text,
		Length: len([]rune(text)),
	}
}
