package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"emotetop/internal/client"
	"emotetop/internal/config"
	"emotetop/internal/query"
	"emotetop/internal/tui"
)

func runDashboard(cfg config.Config, seed query.Seed) {
	state := query.NewState(seed)
	state.PerPage = cfg.DefaultPerPage

	fetcher := client.New(cfg.APIURL, cfg.CacheTTL())
	model := tui.NewModel(state, fetcher)

	program := tea.NewProgram(model, tea.WithAltScreen())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("TUI error: %v", err)
	}
}
