package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trustcat/internal/auth"
	"trustcat/internal/catalog"
	"trustcat/internal/config"
	"trustcat/internal/logging"
	"trustcat/internal/responder"
	"trustcat/internal/sources"
	"trustcat/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"
)

type page int

const (
	pageFacts page = iota
	pageGallery
	pageBreeds
	pageQuiz
	pageChat
	pageProfile
)

var pageNames = []string{"Facts", "Gallery", "Breeds", "Quiz", "Chat", "Profile"}

const toastDuration = 2500 * time.Millisecond

// App is the root model. It owns the page switcher, dispatches fetches and
// routes messages to the active page model.
type App struct {
	cfg   *config.Config
	store *store.Store
	auth  *auth.Auth

	facts   collectionModel
	gallery collectionModel
	breeds  collectionModel
	quiz    quizModel
	chat    chatModel
	profile profileModel

	factsSource  sources.Source
	imagesSource sources.Source
	breedsSource sources.Source

	page page

	// Manual refreshes are throttled so a held-down key can't hammer the
	// remote APIs.
	refreshLimiter *rate.Limiter

	spinner spinner.Model

	slideshowOn  bool
	slideshowGen int

	toast    string
	toastGen int

	width, height int
	ready         bool
}

// NewApp wires the page models, sources and engines from the config.
func NewApp(cfg *config.Config, st *store.Store) *App {
	a := auth.New(st)
	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	answerDelay := time.Duration(cfg.UI.AnswerDelayMs) * time.Millisecond

	factsEngine := catalog.NewEngine(catalog.KindFacts, cfg.UI.PageSize)
	imagesEngine := catalog.NewEngine(catalog.KindImages, cfg.UI.PageSize, "breed", "tags")
	breedsEngine := catalog.NewEngine(catalog.KindBreeds, cfg.UI.PageSize, "origin", "temperament")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = MetaText

	app := &App{
		cfg:   cfg,
		store: st,
		auth:  a,

		facts: newCollectionModel(collectionConfig{
			title:         "Cat Facts",
			filterKey:     "length",
			filterOptions: []string{"short", "medium", "long"},
		}, factsEngine, st, a),

		gallery: newCollectionModel(collectionConfig{
			title:         "Gallery",
			filterKey:     "category",
			dynamicFilter: true,
		}, imagesEngine, st, a),

		breeds: newCollectionModel(collectionConfig{
			title:         "Breeds",
			filterKey:     "size",
			filterOptions: []string{"small", "medium", "large"},
		}, breedsEngine, st, a),

		quiz:    newQuizModel(st, answerDelay, factsEngine.Items),
		chat:    newChatModel(st, responder.Default()),
		profile: newProfileModel(st, a, factsEngine.Find),

		factsSource:  sources.NewFacts(cfg.API.FactsURL, cfg.API.FetchLimit, cfg.API.MaxFactLength, timeout),
		imagesSource: sources.NewImages(cfg.API.ImagesURL, cfg.API.FetchLimit, timeout),
		breedsSource: sources.NewBreeds(cfg.API.BreedsURL, timeout),

		refreshLimiter: rate.NewLimiter(rate.Every(5*time.Second), 1),
		spinner:        sp,
	}
	return app
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.fetchCmd(catalog.KindFacts),
		a.fetchCmd(catalog.KindImages),
		a.fetchCmd(catalog.KindBreeds),
		a.spinner.Tick,
	)
}

// collectionFor returns the page model owning the given kind.
func (a *App) collectionFor(kind catalog.Kind) *collectionModel {
	switch kind {
	case catalog.KindImages:
		return &a.gallery
	case catalog.KindBreeds:
		return &a.breeds
	default:
		return &a.facts
	}
}

func (a *App) sourceFor(kind catalog.Kind) sources.Source {
	switch kind {
	case catalog.KindImages:
		return a.imagesSource
	case catalog.KindBreeds:
		return a.breedsSource
	default:
		return a.factsSource
	}
}

// fetchCmd issues a sequenced fetch; stale responses are dropped on arrival.
func (a *App) fetchCmd(kind catalog.Kind) tea.Cmd {
	col := a.collectionFor(kind)
	col.fetching = true
	seq := col.engine.NextSeq()
	src := a.sourceFor(kind)
	timeout := time.Duration(a.cfg.API.TimeoutSeconds) * time.Second

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result := sources.FetchOrFallback(ctx, src, sources.Fallback(kind))
		return BatchFetched{Kind: kind, Seq: seq, Result: result}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ready = true
		for _, col := range []*collectionModel{&a.facts, &a.gallery, &a.breeds} {
			col.width, col.height = msg.Width, msg.Height
		}
		a.quiz.width = msg.Width
		a.chat.width, a.chat.height = msg.Width, msg.Height
		a.profile.width = msg.Width
		return a, nil

	case BatchFetched:
		col := a.collectionFor(msg.Kind)
		col.fetching = false
		col.setBatch(msg.Seq, msg.Result.Items, msg.Result.Live)
		logging.Debug("batch applied", "kind", msg.Kind, "items", len(msg.Result.Items), "live", msg.Result.Live)
		return a, nil

	case spinner.TickMsg:
		if !a.fetching() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case ToastExpired:
		if msg.Gen == a.toastGen {
			a.toast = ""
		}
		return a, nil

	case SlideshowTick:
		if msg.Gen != a.slideshowGen || !a.slideshowOn || a.page != pageGallery {
			return a, nil
		}
		a.advanceSlideshow()
		return a, a.slideshowCmd()

	case AdvanceTick:
		var cmd tea.Cmd
		var toast string
		a.quiz, cmd, toast = a.quiz.Update(msg)
		return a, a.withToast(toast, cmd)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a.routeToPage(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// While a search box or the chat/login inputs own the keyboard, only
	// page-local handling applies. shift+tab stays global so every page
	// has a way out.
	typing := a.typing()

	if key == "shift+tab" {
		return a, a.switchPage(page((int(a.page) + len(pageNames) - 1) % len(pageNames)))
	}
	if key == "tab" && (!typing || a.page == pageChat) {
		return a, a.switchPage(page((int(a.page) + 1) % len(pageNames)))
	}

	if !typing {
		switch key {
		case "q":
			return a, tea.Quit

		case "r":
			if a.page == pageFacts || a.page == pageGallery || a.page == pageBreeds {
				return a.refresh()
			}

		case "o":
			if a.page == pageGallery {
				return a.toggleSlideshow()
			}

		case "S":
			if a.page == pageFacts {
				return a.shareFact()
			}

		case "p":
			if a.page == pageFacts {
				return a.exportFacts()
			}
		}
	}

	return a.routeToPage(msg)
}

// fetching reports whether any collection has a fetch in flight.
func (a *App) fetching() bool {
	return a.facts.fetching || a.gallery.fetching || a.breeds.fetching
}

// typing reports whether the focused page currently captures plain keys.
func (a *App) typing() bool {
	switch a.page {
	case pageFacts:
		return a.facts.searching
	case pageGallery:
		return a.gallery.searching
	case pageBreeds:
		return a.breeds.searching
	case pageChat:
		return true
	case pageProfile:
		return !a.auth.IsAuthenticated()
	}
	return false
}

// switchPage changes the active page, stopping timers owned by the page
// being left. Returning to the quiz mid-reveal reschedules the advance.
func (a *App) switchPage(p page) tea.Cmd {
	if p == a.page {
		return nil
	}
	switch a.page {
	case pageGallery:
		a.slideshowOn = false
		a.slideshowGen++
	case pageQuiz:
		a.quiz.cancelPending()
	}
	a.page = p
	if p == pageQuiz {
		return a.quiz.resumePending()
	}
	return nil
}

func (a *App) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var toast string

	switch a.page {
	case pageFacts:
		a.facts, cmd, toast = a.facts.Update(msg)
	case pageGallery:
		a.gallery, cmd, toast = a.gallery.Update(msg)
	case pageBreeds:
		a.breeds, cmd, toast = a.breeds.Update(msg)
	case pageQuiz:
		a.quiz, cmd, toast = a.quiz.Update(msg)
	case pageChat:
		a.chat, cmd, toast = a.chat.Update(msg)
	case pageProfile:
		a.profile, cmd, toast = a.profile.Update(msg)
	}
	return a, a.withToast(toast, cmd)
}

// refresh re-fetches the active collection, rate limited.
func (a *App) refresh() (tea.Model, tea.Cmd) {
	if !a.refreshLimiter.Allow() {
		return a, a.withToast("Refreshing too fast - try again shortly", nil)
	}
	var kind catalog.Kind
	switch a.page {
	case pageGallery:
		kind = catalog.KindImages
	case pageBreeds:
		kind = catalog.KindBreeds
	default:
		kind = catalog.KindFacts
	}
	logging.Info("manual refresh", "kind", kind)
	return a, tea.Batch(a.fetchCmd(kind), a.spinner.Tick, a.withToast("Refreshing...", nil))
}

func (a *App) toggleSlideshow() (tea.Model, tea.Cmd) {
	a.slideshowOn = !a.slideshowOn
	a.slideshowGen++
	if !a.slideshowOn {
		return a, a.withToast("Slideshow stopped", nil)
	}
	return a, tea.Batch(a.slideshowCmd(), a.withToast("Slideshow started", nil))
}

func (a *App) slideshowCmd() tea.Cmd {
	gen := a.slideshowGen
	delay := time.Duration(a.cfg.UI.SlideshowDelayMs) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SlideshowTick{Gen: gen}
	})
}

// advanceSlideshow steps the gallery cursor, wrapping over the visible set.
func (a *App) advanceSlideshow() {
	view := a.gallery.engine.View()
	if view.Visible == 0 {
		return
	}
	a.gallery.cursor = (a.gallery.cursor + 1) % view.Visible
	a.gallery.detail = true
}

// shareFact records a share for the selected fact. There is no clipboard in
// scope, so the share target is the log.
func (a *App) shareFact() (tea.Model, tea.Cmd) {
	it, ok := a.facts.selected()
	if !ok {
		return a, nil
	}
	a.store.BumpCounter("shared", it.ID)
	logging.Info("fact shared", "id", it.ID)
	return a, a.withToast("Fact marked as shared", nil)
}

// exportFacts writes the currently visible facts to a text file, the
// terminal stand-in for printing.
func (a *App) exportFacts() (tea.Model, tea.Cmd) {
	view := a.facts.engine.View()
	if view.Visible == 0 {
		return a, a.withToast("Nothing to export", nil)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("TrustCat facts export - %s\n\n", time.Now().Format(time.RFC1123)))
	for i, it := range view.Items {
		b.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, it.Text))
		a.store.BumpCounter("printed", it.ID)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return a, a.withToast("Export failed", nil)
	}
	path := filepath.Join(home, ".trustcat", "facts-export.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		logging.Error("export failed", "error", err)
		return a, a.withToast("Export failed", nil)
	}
	return a, a.withToast("Exported to "+path, nil)
}

// withToast shows a transient status line and schedules its expiry.
func (a *App) withToast(text string, cmd tea.Cmd) tea.Cmd {
	if text == "" {
		return cmd
	}
	a.toast = text
	a.toastGen++
	gen := a.toastGen
	expire := tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpired{Gen: gen}
	})
	if cmd == nil {
		return expire
	}
	return tea.Batch(cmd, expire)
}

func (a *App) View() string {
	if !a.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(TitleBar.Render("🐱 TrustCat") + "\n")
	b.WriteString(a.renderTabs())
	if a.fetching() {
		b.WriteString("  " + a.spinner.View() + MetaText.Render(" fetching"))
	}
	b.WriteString("\n\n")

	switch a.page {
	case pageFacts:
		b.WriteString(a.facts.View())
	case pageGallery:
		b.WriteString(a.gallery.View())
		if a.slideshowOn {
			b.WriteString(MetaText.Render("slideshow on") + "\n")
		}
	case pageBreeds:
		b.WriteString(a.breeds.View())
	case pageQuiz:
		b.WriteString(a.quiz.View())
	case pageChat:
		b.WriteString(a.chat.View())
	case pageProfile:
		b.WriteString(a.profile.View())
	}

	b.WriteString("\n")
	if a.toast != "" {
		b.WriteString(ToastStyle.Render(a.toast) + "\n")
	}
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a *App) renderTabs() string {
	var tabs []string
	for i, name := range pageNames {
		if page(i) == a.page {
			tabs = append(tabs, TabActive.Render(name))
		} else {
			tabs = append(tabs, TabInactive.Render(name))
		}
	}
	return strings.Join(tabs, " ")
}

func (a *App) renderStatusBar() string {
	hints := "tab pages · q quit"
	switch a.page {
	case pageFacts:
		hints = "/ search · s sort · c filter · f fav · S share · p export · r refresh · " + hints
	case pageGallery:
		hints = "/ search · c filter · f fav · o slideshow · r refresh · " + hints
	case pageBreeds:
		hints = "/ search · s sort · c filter · f fav · r refresh · " + hints
	case pageQuiz:
		hints = "n new quiz · g facts quiz · 1-4 answer · " + hints
	case pageChat:
		hints = "enter send · ctrl+l clear · " + hints
	case pageProfile:
		if a.auth.IsAuthenticated() {
			hints = "l logout · " + hints
		} else {
			hints = "tab field · enter sign in · shift+tab pages"
		}
	}
	return StatusBar.Render(StatusBarText.Render(hints))
}
