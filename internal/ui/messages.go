// Package ui provides the Bubble Tea TUI for TrustCat.
package ui

import (
	"trustcat/internal/catalog"
	"trustcat/internal/sources"
)

// BatchFetched is sent when a collection fetch (or its fallback) resolves.
// Seq lets the engine discard responses from superseded requests.
type BatchFetched struct {
	Kind   catalog.Kind
	Seq    uint64
	Result sources.Result
}

// AdvanceTick fires after the quiz answer-reveal delay. Gen is compared to
// the current timer generation so a cancelled timer is a no-op.
type AdvanceTick struct {
	Gen int
}

// SlideshowTick advances the gallery slideshow. Gen is the slideshow
// generation at scheduling time; a stale tick is dropped.
type SlideshowTick struct {
	Gen int
}

// ToastExpired clears the transient notice line.
type ToastExpired struct {
	Gen int
}
