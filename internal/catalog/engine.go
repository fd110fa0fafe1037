package catalog

// Engine holds the presentation state for one collection page: the raw
// batch, the active query/filters/sort, and the reveal window. One engine
// per page, passed explicitly to the view. Not safe for concurrent use;
// all transitions happen on the UI event loop.
type Engine struct {
	kind         Kind
	searchFields []string // Extra Fields keys included in text search

	raw     []Item
	query   string
	filters map[string]string
	sortKey SortKey

	pageSize int
	visible  int
	showAll  bool

	// Fetch sequencing: responses older than the latest issued request are
	// discarded so a slow response cannot overwrite a newer batch.
	issuedSeq  uint64
	appliedSeq uint64
	live       bool
}

// View is the computed window handed to the renderer.
type View struct {
	Items   []Item // The visible slice, filtered and sorted
	Visible int    // len(Items)
	Matched int    // Items passing filters and search
	Total   int    // Raw batch size
	HasMore bool   // More matched items beyond the window
	Live    bool   // False while showing fallback data
	Query   string
	SortKey SortKey
}

// NewEngine creates an engine for one collection.
// extraSearchFields names Fields keys also covered by text search
// (e.g. origin and temperament for breeds).
func NewEngine(kind Kind, pageSize int, extraSearchFields ...string) *Engine {
	if pageSize <= 0 {
		pageSize = 6
	}
	return &Engine{
		kind:         kind,
		searchFields: extraSearchFields,
		filters:      make(map[string]string),
		sortKey:      SortDate,
		pageSize:     pageSize,
		visible:      pageSize,
	}
}

// Kind returns the collection this engine serves.
func (e *Engine) Kind() Kind { return e.kind }

// NextSeq reserves a sequence number for a fetch about to be issued.
func (e *Engine) NextSeq() uint64 {
	e.issuedSeq++
	return e.issuedSeq
}

// SetItems replaces the raw batch wholesale. Returns false (and changes
// nothing) if a newer fetch has been issued since seq was reserved.
func (e *Engine) SetItems(seq uint64, items []Item, live bool) bool {
	if seq < e.issuedSeq {
		return false
	}
	e.raw = items
	e.appliedSeq = seq
	e.live = live
	e.resetReveal()
	return true
}

// SetQuery updates the search query and resets the reveal window.
func (e *Engine) SetQuery(q string) {
	if e.query == q {
		return
	}
	e.query = q
	e.resetReveal()
}

// Query returns the current search query.
func (e *Engine) Query() string { return e.query }

// SetFilter updates one categorical filter and resets the reveal window.
// Value "all" or "" deactivates the filter.
func (e *Engine) SetFilter(key, value string) {
	if e.filters[key] == value {
		return
	}
	if value == "" || value == FilterAll {
		delete(e.filters, key)
	} else {
		e.filters[key] = value
	}
	e.resetReveal()
}

// Filter returns the active value for a filter key, or "all".
func (e *Engine) Filter(key string) string {
	if v, ok := e.filters[key]; ok {
		return v
	}
	return FilterAll
}

// SetSort updates the sort key and resets the reveal window.
func (e *Engine) SetSort(key SortKey) {
	if e.sortKey == key {
		return
	}
	e.sortKey = key
	e.resetReveal()
}

// Sort returns the active sort key.
func (e *Engine) Sort() SortKey { return e.sortKey }

// Reveal grows the visible window by n. The window is clamped to the
// matched count at view time, so over-revealing is harmless.
func (e *Engine) Reveal(n int) {
	if n <= 0 || e.showAll {
		return
	}
	e.visible += n
}

// LoadMore reveals one more page.
func (e *Engine) LoadMore() { e.Reveal(e.pageSize) }

// SetShowAll toggles the unbounded window. Turning it off resets to one page.
func (e *Engine) SetShowAll(on bool) {
	e.showAll = on
	if !on {
		e.visible = e.pageSize
	}
}

// resetReveal returns the window to the configured page size. Called on
// every query/filter/sort/batch change so the window never references a
// stale filtered index.
func (e *Engine) resetReveal() {
	if !e.showAll {
		e.visible = e.pageSize
	}
}

// matched runs the pipeline in its fixed order:
// categorical filters, then text search, then sort.
func (e *Engine) matched() []Item {
	items := ApplyFilters(e.raw, e.filters)
	items = ApplySearch(items, e.query, e.searchFields...)
	return SortItems(items, e.sortKey)
}

// View computes the current visible window. The reveal count is clamped to
// [0, matched] here rather than asserted: an out-of-range window is a
// recoverable UI condition, not a programming error.
func (e *Engine) View() View {
	matched := e.matched()

	visible := e.visible
	if e.showAll || visible > len(matched) {
		visible = len(matched)
	}
	if visible < 0 {
		visible = 0
	}

	return View{
		Items:   matched[:visible],
		Visible: visible,
		Matched: len(matched),
		Total:   len(e.raw),
		HasMore: visible < len(matched),
		Live:    e.live,
		Query:   e.query,
		SortKey: e.sortKey,
	}
}

// Items returns a copy of the raw batch, unfiltered.
func (e *Engine) Items() []Item {
	out := make([]Item, len(e.raw))
	copy(out, e.raw)
	return out
}

// Find returns the raw item with the given id.
func (e *Engine) Find(id string) (Item, bool) {
	for _, it := range e.raw {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
