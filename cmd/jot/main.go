package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/dukerupert/jot/internal/config"
	"github.com/dukerupert/jot/internal/database"
	"github.com/dukerupert/jot/internal/flow"
	"github.com/dukerupert/jot/internal/logging"
	"github.com/dukerupert/jot/internal/store"
	"github.com/dukerupert/jot/internal/tui"
	"github.com/dukerupert/jot/internal/viewmodel"
)

func main() {
	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()
	logger := logging.Setup(cfg.LogLevel, logFile)

	authDB, err := database.Open(cfg.AuthDBPath, database.SetAuth)
	if err != nil {
		log.Fatalf("open auth database: %v", err)
	}
	defer authDB.Close()

	notesDB, err := database.Open(cfg.NotesDBPath, database.SetNotes)
	if err != nil {
		log.Fatalf("open notes database: %v", err)
	}
	defer notesDB.Close()

	creds := store.NewCredentialStore(authDB)
	notes := store.NewNoteStore(notesDB)
	auth := flow.NewAuth(creds, logger)
	list := viewmodel.NewNoteList(notes)

	app := tui.NewApp(auth, notes, list, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
