package ui

import (
	"fmt"
	"strings"

	"trustcat/internal/auth"
	"trustcat/internal/catalog"
	"trustcat/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// collectionConfig is the per-kind presentation setup.
type collectionConfig struct {
	title         string
	filterKey     string   // The cycled categorical filter ("length", "size", "category")
	filterOptions []string // Options after "all"; may be replaced per batch
	dynamicFilter bool     // Derive options from batch categories (gallery)
}

// collectionModel renders one engine: search bar, filter/sort state, the
// visible card window and a load-more footer. The engine owns the state;
// this model only reads views and forwards commands.
type collectionModel struct {
	cfg    collectionConfig
	engine *catalog.Engine
	store  *store.Store
	auth   *auth.Auth

	search    textinput.Model
	searching bool

	cursor   int
	detail   bool
	fetching bool

	filterIdx int // Index into "all"+filterOptions

	favorites map[string]bool

	width, height int
}

func newCollectionModel(cfg collectionConfig, engine *catalog.Engine, st *store.Store, a *auth.Auth) collectionModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 80
	search.Width = 30

	return collectionModel{
		cfg:       cfg,
		engine:    engine,
		store:     st,
		auth:      a,
		search:    search,
		favorites: make(map[string]bool),
	}
}

// setBatch installs a fetched batch and reloads favorites for the kind.
func (m *collectionModel) setBatch(seq uint64, items []catalog.Item, live bool) {
	if !m.engine.SetItems(seq, items, live) {
		return
	}
	m.fetching = false
	m.cursor = 0
	m.detail = false
	m.reloadFavorites()
	if m.cfg.dynamicFilter {
		// The old category values may not exist in the new batch; drop any
		// active filter along with the rebuilt options.
		m.cfg.filterOptions = distinctCategories(items)
		m.filterIdx = 0
		m.engine.SetFilter(m.cfg.filterKey, catalog.FilterAll)
	}
}

func (m *collectionModel) reloadFavorites() {
	m.favorites = make(map[string]bool)
	ids, err := m.store.Favorites(string(m.engine.Kind()))
	if err != nil {
		return
	}
	for _, id := range ids {
		m.favorites[id] = true
	}
}

// distinctCategories collects category values in first-seen order.
func distinctCategories(items []catalog.Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		c := it.Category
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// filterOptionAt maps the cycle index to a filter value; index 0 is "all".
func (m *collectionModel) filterOptionAt(idx int) string {
	if idx <= 0 || idx > len(m.cfg.filterOptions) {
		return catalog.FilterAll
	}
	return m.cfg.filterOptions[idx-1]
}

// selected returns the item under the cursor.
func (m *collectionModel) selected() (catalog.Item, bool) {
	view := m.engine.View()
	if m.cursor < 0 || m.cursor >= len(view.Items) {
		return catalog.Item{}, false
	}
	return view.Items[m.cursor], true
}

// clampCursor keeps the cursor inside the visible window.
func (m *collectionModel) clampCursor() {
	view := m.engine.View()
	if m.cursor >= view.Visible {
		m.cursor = view.Visible - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles keys for this collection. Returns an optional toast line.
func (m collectionModel) Update(msg tea.Msg) (collectionModel, tea.Cmd, string) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, ""
	}

	if m.searching {
		switch keyMsg.String() {
		case "esc", "enter":
			m.searching = false
			m.search.Blur()
			return m, nil, ""
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.engine.SetQuery(m.search.Value())
			m.clampCursor()
			return m, cmd, ""
		}
	}

	switch keyMsg.String() {
	case "/":
		m.searching = true
		m.detail = false
		return m, m.search.Focus(), ""

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil, ""

	case "down", "j":
		view := m.engine.View()
		if m.cursor < view.Visible-1 {
			m.cursor++
		}
		return m, nil, ""

	case "enter":
		it, ok := m.selected()
		if !ok {
			return m, nil, ""
		}
		m.detail = !m.detail
		if m.detail && it.Kind == catalog.KindFacts {
			m.store.BumpCounter("viewed", it.ID)
		}
		return m, nil, ""

	case "esc":
		m.detail = false
		return m, nil, ""

	case "f":
		return m.toggleFavorite()

	case "s":
		m.engine.SetSort(nextSort(m.engine.Sort()))
		m.clampCursor()
		return m, nil, fmt.Sprintf("Sorted by %s", m.engine.Sort())

	case "c":
		if m.cfg.filterKey == "" || len(m.cfg.filterOptions) == 0 {
			return m, nil, ""
		}
		m.filterIdx = (m.filterIdx + 1) % (len(m.cfg.filterOptions) + 1)
		value := m.filterOptionAt(m.filterIdx)
		m.engine.SetFilter(m.cfg.filterKey, value)
		m.clampCursor()
		return m, nil, fmt.Sprintf("Filter %s: %s", m.cfg.filterKey, value)

	case "m":
		m.engine.LoadMore()
		return m, nil, ""

	case "a":
		view := m.engine.View()
		m.engine.SetShowAll(view.HasMore)
		m.clampCursor()
		if m.engine.View().HasMore {
			return m, nil, "Showing one page"
		}
		return m, nil, "Showing all"
	}

	return m, nil, ""
}

// toggleFavorite flips the selected item's membership, gated on login.
func (m collectionModel) toggleFavorite() (collectionModel, tea.Cmd, string) {
	it, ok := m.selected()
	if !ok {
		return m, nil, ""
	}
	if !m.auth.IsAuthenticated() {
		return m, nil, "Please login to favorite (profile page)"
	}

	member, err := m.store.ToggleFavorite(string(it.Kind), it.ID)
	if err != nil {
		return m, nil, "Favorite failed"
	}
	m.favorites[it.ID] = member
	if member {
		return m, nil, "Added to favorites"
	}
	return m, nil, "Removed from favorites"
}

func nextSort(key catalog.SortKey) catalog.SortKey {
	switch key {
	case catalog.SortDate:
		return catalog.SortLength
	case catalog.SortLength:
		return catalog.SortAlpha
	default:
		return catalog.SortDate
	}
}

// View renders the collection page.
func (m collectionModel) View() string {
	var b strings.Builder

	view := m.engine.View()

	b.WriteString(CardTitle.Render(m.cfg.title) + "\n")

	// Control line: search, sort, filter, counts
	controls := fmt.Sprintf("sort:%s", view.SortKey)
	if m.cfg.filterKey != "" {
		controls += fmt.Sprintf("  %s:%s", m.cfg.filterKey, m.engine.Filter(m.cfg.filterKey))
	}
	controls += fmt.Sprintf("  showing %d of %d (batch %d)", view.Visible, view.Matched, view.Total)
	b.WriteString(MetaText.Render(controls))
	b.WriteString("\n")

	if m.searching || view.Query != "" {
		b.WriteString("search: " + m.search.View() + "\n")
	}

	if !view.Live && view.Total > 0 {
		b.WriteString(FallbackNotice.Render("⚠ remote API unavailable - showing demo data") + "\n")
	}
	if view.Visible == 0 {
		b.WriteString("\n" + MetaText.Render("  nothing to show") + "\n")
		return b.String()
	}

	for i, it := range view.Items {
		b.WriteString(m.renderCard(it, i == m.cursor))
		b.WriteString("\n")
	}

	if view.HasMore {
		b.WriteString(MetaText.Render(fmt.Sprintf("  %d more - press m to load more, a to show all", view.Matched-view.Visible)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderCard draws one item; the selected card in detail mode expands.
func (m collectionModel) renderCard(it catalog.Item, selected bool) string {
	style := CardNormal
	if selected {
		style = CardSelected
	}

	title := it.Title
	if title == "" {
		title = it.ID
	}
	header := CardTitle.Render(title)
	if m.favorites[it.ID] {
		header += " " + FavoriteMark.Render("♥")
	}
	if it.Category != "" {
		header += " " + CategoryTag.Render(it.Category)
	}

	lines := []string{header}

	body := it.Text
	if !selected || !m.detail {
		body = truncate(body, 120)
	}
	if body != "" && body != title {
		lines = append(lines, body)
	}

	meta := []string{}
	if src := it.Field("source"); src != "" {
		meta = append(meta, "source: "+src)
	}
	if it.Kind == catalog.KindFacts {
		meta = append(meta, fmt.Sprintf("%d characters", it.Length))
	}
	if !it.Date.IsZero() {
		meta = append(meta, it.Date.Format("2006-01-02"))
	}
	if len(meta) > 0 {
		lines = append(lines, MetaText.Render(strings.Join(meta, " · ")))
	}

	if selected && m.detail {
		lines = append(lines, m.renderDetail(it)...)
	}

	width := m.width - 4
	if width < 20 {
		width = 76
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// renderDetail adds kind-specific expanded info.
func (m collectionModel) renderDetail(it catalog.Item) []string {
	var lines []string
	switch it.Kind {
	case catalog.KindBreeds:
		if origin := it.Field("origin"); origin != "" {
			lines = append(lines, "origin: "+origin)
		}
		if temp := it.Field("temperament"); temp != "" {
			lines = append(lines, "temperament: "+temp)
		}
		if span := it.Field("life_span"); span != "" {
			lines = append(lines, "life span: "+span+" years")
		}
		if w := it.Field("weight"); w != "" {
			lines = append(lines, "weight: "+w+" kg")
		}
		for _, rating := range []struct{ label, key string }{
			{"adaptability", "adaptability"},
			{"affection", "affection_level"},
			{"child friendly", "child_friendly"},
			{"energy", "energy_level"},
			{"intelligence", "intelligence"},
		} {
			if v := it.Field(rating.key); v != "" {
				lines = append(lines, fmt.Sprintf("%-14s %s", rating.label, RatingBar(atoiSafe(v))))
			}
		}
	case catalog.KindImages:
		if src := it.Field("src"); src != "" {
			lines = append(lines, "url: "+src)
		}
		if size := it.Field("size"); size != "" && size != "0x0" {
			lines = append(lines, "size: "+size)
		}
		if tags := it.Field("tags"); tags != "" {
			lines = append(lines, "tags: "+tags)
		}
	}
	if len(lines) == 0 {
		return nil
	}
	styled := make([]string, len(lines))
	for i, l := range lines {
		styled[i] = lipgloss.NewStyle().Foreground(colorSecondary).Render(l)
	}
	return styled
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
