package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskdeck/internal/api"
	"taskdeck/internal/config"
	"taskdeck/internal/state"
	"taskdeck/internal/ui"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("taskdeck %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	configPath, err := config.DefaultPath()
	if err != nil {
		logger.Fatal("resolving config path", "err", err)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		logger.Fatal("loading config", "path", configPath, "err", err)
	}

	client := api.New(cfg.ServerURL)
	tasks := state.NewTaskStore(client)
	comments := state.NewCommentStore(client)

	app := ui.NewApp(tasks, comments)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Fatal("running application", "err", err)
	}
}
