package ui

import (
	"strings"
	"testing"

	"trustcat/internal/catalog"
	"trustcat/internal/config"
	"trustcat/internal/responder"
	"trustcat/internal/sources"
	"trustcat/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func testApp(t *testing.T) *App {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	app := NewApp(config.DefaultConfig(), st)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return model.(*App)
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// loadFacts applies a demo batch to the facts page with a valid sequence.
func loadFacts(app *App) {
	seq := app.facts.engine.NextSeq()
	items := sources.Fallback(catalog.KindFacts)
	model, _ := app.Update(BatchFetched{
		Kind:   catalog.KindFacts,
		Seq:    seq,
		Result: sources.Result{Items: items, Live: true},
	})
	*app = *model.(*App)
}

func TestAppInit(t *testing.T) {
	app := testApp(t)

	if cmd := app.Init(); cmd == nil {
		t.Fatal("Init should return the initial fetch commands")
	}
}

func TestAppBatchFetched(t *testing.T) {
	app := testApp(t)
	loadFacts(app)

	view := app.facts.engine.View()
	if view.Total == 0 {
		t.Fatal("batch should populate the facts engine")
	}
	if !view.Live {
		t.Error("live batch should keep Live true")
	}
}

func TestAppStaleBatchDropped(t *testing.T) {
	app := testApp(t)

	stale := app.facts.engine.NextSeq()
	fresh := app.facts.engine.NextSeq()

	model, _ := app.Update(BatchFetched{
		Kind:   catalog.KindFacts,
		Seq:    fresh,
		Result: sources.Result{Items: sources.Fallback(catalog.KindFacts), Live: true},
	})
	app = model.(*App)
	total := app.facts.engine.View().Total

	model, _ = app.Update(BatchFetched{
		Kind:   catalog.KindFacts,
		Seq:    stale,
		Result: sources.Result{Items: nil, Live: false},
	})
	app = model.(*App)

	if got := app.facts.engine.View().Total; got != total {
		t.Errorf("stale batch should be dropped, total changed %d -> %d", total, got)
	}
}

func TestAppNavigation(t *testing.T) {
	app := testApp(t)
	loadFacts(app)

	model, _ := app.Update(keyRunes('j'))
	app = model.(*App)
	if app.facts.cursor != 1 {
		t.Errorf("j should move cursor to 1, got %d", app.facts.cursor)
	}

	model, _ = app.Update(keyRunes('k'))
	app = model.(*App)
	if app.facts.cursor != 0 {
		t.Errorf("k should move cursor to 0, got %d", app.facts.cursor)
	}

	model, _ = app.Update(keyRunes('k'))
	app = model.(*App)
	if app.facts.cursor != 0 {
		t.Errorf("k at top should keep cursor at 0, got %d", app.facts.cursor)
	}
}

func TestAppTabSwitchesPages(t *testing.T) {
	app := testApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	if app.page != pageGallery {
		t.Errorf("tab should move to gallery, got %v", app.page)
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	app = model.(*App)
	if app.page != pageFacts {
		t.Errorf("shift+tab should move back to facts, got %v", app.page)
	}
}

func TestAppFavoriteRequiresLogin(t *testing.T) {
	app := testApp(t)
	loadFacts(app)

	model, _ := app.Update(keyRunes('f'))
	app = model.(*App)

	if !strings.Contains(app.toast, "login") {
		t.Errorf("favorite while signed out should prompt for login, toast %q", app.toast)
	}
	ids, err := app.store.Favorites("facts")
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("no favorite should be stored, got %d", len(ids))
	}
}

func TestAppFavoriteWhenLoggedIn(t *testing.T) {
	app := testApp(t)
	loadFacts(app)

	if _, err := app.auth.Login("demo@trustcat.test", "password"); err != nil {
		t.Fatalf("login: %v", err)
	}

	model, _ := app.Update(keyRunes('f'))
	app = model.(*App)

	ids, err := app.store.Favorites("facts")
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected 1 favorite, got %d", len(ids))
	}
	it, _ := app.facts.selected()
	if ids[0] != it.ID {
		t.Errorf("favorite should be the selected item, got %q want %q", ids[0], it.ID)
	}
}

func TestAppShareBumpsCounter(t *testing.T) {
	app := testApp(t)
	loadFacts(app)

	model, _ := app.Update(keyRunes('S'))
	app = model.(*App)

	n, err := app.store.CounterDistinct("shared")
	if err != nil {
		t.Fatalf("counter: %v", err)
	}
	if n != 1 {
		t.Errorf("share should record one distinct fact, got %d", n)
	}
}

func TestAppToastExpiry(t *testing.T) {
	app := testApp(t)
	loadFacts(app)

	model, _ := app.Update(keyRunes('f')) // Sets the login toast
	app = model.(*App)
	if app.toast == "" {
		t.Fatal("expected a toast")
	}
	gen := app.toastGen

	// Stale expiry must not clear a newer toast
	model, _ = app.Update(ToastExpired{Gen: gen - 1})
	app = model.(*App)
	if app.toast == "" {
		t.Error("stale expiry should not clear the toast")
	}

	model, _ = app.Update(ToastExpired{Gen: gen})
	app = model.(*App)
	if app.toast != "" {
		t.Errorf("toast should clear on matching expiry, got %q", app.toast)
	}
}

func TestAppSlideshowToggle(t *testing.T) {
	app := testApp(t)
	app.page = pageGallery

	seq := app.gallery.engine.NextSeq()
	model, _ := app.Update(BatchFetched{
		Kind:   catalog.KindImages,
		Seq:    seq,
		Result: sources.Result{Items: sources.Fallback(catalog.KindImages), Live: false},
	})
	app = model.(*App)

	model, cmd := app.Update(keyRunes('o'))
	app = model.(*App)
	if !app.slideshowOn {
		t.Fatal("o should start the slideshow")
	}
	if cmd == nil {
		t.Fatal("starting the slideshow should schedule a tick")
	}
	gen := app.slideshowGen

	model, _ = app.Update(SlideshowTick{Gen: gen})
	app = model.(*App)
	if app.gallery.cursor != 1 {
		t.Errorf("tick should advance the cursor, got %d", app.gallery.cursor)
	}

	// Leaving the page stops the slideshow and invalidates pending ticks
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	if app.slideshowOn {
		t.Error("switching pages should stop the slideshow")
	}
	model, _ = app.Update(SlideshowTick{Gen: gen})
	app = model.(*App)
	if app.gallery.cursor != 1 {
		t.Error("stale tick should not advance the cursor")
	}
}

func TestAppGalleryFilterResetOnNewBatch(t *testing.T) {
	app := testApp(t)
	app.page = pageGallery

	seq := app.gallery.engine.NextSeq()
	model, _ := app.Update(BatchFetched{
		Kind:   catalog.KindImages,
		Seq:    seq,
		Result: sources.Result{Items: sources.Fallback(catalog.KindImages), Live: true},
	})
	app = model.(*App)
	if len(app.gallery.cfg.filterOptions) == 0 {
		t.Fatal("batch should derive category options")
	}

	// Activate the first category filter
	model, _ = app.Update(keyRunes('c'))
	app = model.(*App)
	if app.gallery.engine.Filter("category") == catalog.FilterAll {
		t.Fatal("c should activate a category filter")
	}

	// A refreshed batch with different categories must not keep the old
	// filter active while the cycle index reads "all"
	seq = app.gallery.engine.NextSeq()
	fresh := []catalog.Item{
		{ID: "img-a", Kind: catalog.KindImages, Category: "tabby"},
		{ID: "img-b", Kind: catalog.KindImages, Category: "calico"},
	}
	model, _ = app.Update(BatchFetched{
		Kind:   catalog.KindImages,
		Seq:    seq,
		Result: sources.Result{Items: fresh, Live: true},
	})
	app = model.(*App)

	if got := app.gallery.engine.Filter("category"); got != catalog.FilterAll {
		t.Errorf("new batch should clear the category filter, still %q", got)
	}
	if app.gallery.filterIdx != 0 {
		t.Errorf("cycle index should reset to all, got %d", app.gallery.filterIdx)
	}
	if got := app.gallery.engine.View().Visible; got != 2 {
		t.Errorf("all fresh items should be visible, got %d", got)
	}
}

func TestAppChatSend(t *testing.T) {
	app := testApp(t)
	app.page = pageChat

	// The input must accept keystrokes as soon as the page is shown
	for _, r := range "hello there" {
		model, _ := app.Update(keyRunes(r))
		app = model.(*App)
	}
	if got := app.chat.input.Value(); got != "hello there" {
		t.Fatalf("chat input should capture typed text, holds %q", got)
	}

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	if app.chat.input.Value() != "" {
		t.Error("input should clear after sending")
	}
	history, err := app.store.ChatHistory()
	if err != nil {
		t.Fatalf("chat history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected a user+assistant pair, got %d messages", len(history))
	}
	if history[0].Role != "user" || history[0].Text != "hello there" {
		t.Errorf("first message should be the user's, got %q %q", history[0].Role, history[0].Text)
	}
	want := responder.Default().Respond("hello there")
	if history[1].Role != "assistant" || history[1].Text != want {
		t.Errorf("reply should match the responder, got %q %q", history[1].Role, history[1].Text)
	}
}

func TestAppChatClear(t *testing.T) {
	app := testApp(t)
	app.page = pageChat

	model, _ := app.Update(keyRunes('h'))
	app = model.(*App)
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	app = model.(*App)

	history, err := app.store.ChatHistory()
	if err != nil {
		t.Fatalf("chat history: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("ctrl+l should clear the transcript, %d messages remain", len(history))
	}
}

func TestAppQuizFlow(t *testing.T) {
	app := testApp(t)
	app.page = pageQuiz

	model, _ := app.Update(keyRunes('n'))
	app = model.(*App)
	if app.quiz.session == nil {
		t.Fatal("n should start a session")
	}

	model, cmd := app.Update(keyRunes('1'))
	app = model.(*App)
	if cmd == nil {
		t.Fatal("answering should schedule the advance tick")
	}
	gen := app.quiz.gen
	index := app.quiz.session.Index()

	// Leaving the page cancels the pending advance
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	model, _ = app.Update(AdvanceTick{Gen: gen})
	app = model.(*App)
	if app.quiz.session.Index() != index {
		t.Error("cancelled tick should not advance the session")
	}

	// Returning reschedules it
	app.switchPage(pageQuiz)
	model, _ = app.Update(AdvanceTick{Gen: app.quiz.gen})
	app = model.(*App)
	if app.quiz.session.Index() != index+1 {
		t.Errorf("resumed tick should advance to question %d, got %d", index+1, app.quiz.session.Index())
	}
}

func TestAppGeneratedQuizNeedsFacts(t *testing.T) {
	app := testApp(t)
	app.page = pageQuiz

	model, _ := app.Update(keyRunes('g'))
	app = model.(*App)
	if app.quiz.session != nil {
		t.Fatal("g with no facts loaded should not start a session")
	}

	loadFacts(app)
	model, _ = app.Update(keyRunes('g'))
	app = model.(*App)
	if app.quiz.session == nil {
		t.Fatal("g should build a quiz from the loaded facts")
	}
	if app.quiz.session.Total() == 0 {
		t.Error("generated quiz should have questions")
	}
}

func TestAppQuit(t *testing.T) {
	app := testApp(t)

	_, cmd := app.Update(keyRunes('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestAppQuitCtrlC(t *testing.T) {
	app := testApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should return tea.Quit")
	}
}

func TestAppViewNotReady(t *testing.T) {
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	app := NewApp(config.DefaultConfig(), st)
	if app.View() != "loading..." {
		t.Errorf("View before the first WindowSizeMsg should be the loading line, got %q", app.View())
	}
}

func TestAppViewRendersActivePage(t *testing.T) {
	app := testApp(t)
	loadFacts(app)

	view := app.View()
	if view == "" {
		t.Fatal("View should not be empty")
	}
	if !strings.Contains(view, "Facts") {
		t.Error("view should include the tab bar")
	}
}
