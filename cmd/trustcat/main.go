// TrustCat - cat facts, gallery, breeds, quiz and chat in the terminal.
//
// Layout:
//   internal/catalog   - filter/search/sort engine over fetched batches
//   internal/sources   - remote APIs with built-in demo fallback
//   internal/store     - SQLite persistence (favorites, quiz, chat, counters)
//   internal/ui        - Bubble Tea pages
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"trustcat/internal/config"
	"trustcat/internal/logging"
	"trustcat/internal/store"
	"trustcat/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	logging.Info("TrustCat starting")

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory: %v", err)
	}
	dataDir := filepath.Join(homeDir, ".trustcat")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fatal("Failed to create data directory: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Warn("Using default config", "error", err)
	}

	dbPath := filepath.Join(dataDir, "trustcat.db")
	st, err := store.Open(dbPath)
	if err != nil {
		fatal("Failed to initialize store: %v", err)
	}
	defer st.Close()
	logging.Info("Store initialized", "path", dbPath)

	app := ui.NewApp(cfg, st)

	p := tea.NewProgram(app, tea.WithAltScreen())

	logging.Info("Starting UI")
	if _, err := p.Run(); err != nil {
		logging.Error("Application error", "error", err)
		fatal("Error: %v", err)
	}

	logging.Info("TrustCat exiting normally")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
