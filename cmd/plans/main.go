package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/plans/internal/cli"
	"github.com/alexanderramin/plans/internal/db"
	"github.com/alexanderramin/plans/internal/repository"
	"github.com/alexanderramin/plans/internal/service"
	"github.com/alexanderramin/plans/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.plans/plans.db
	dbPath := os.Getenv("PLANS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".plans", "plans.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// One document holds all planning data; load it up front so every
	// service shares the same in-memory copy.
	st := store.New(repository.NewSQLiteDocumentRepo(database)).
		WithUnitOfWork(db.NewSQLiteUnitOfWork(database))
	if err := st.Load(context.Background()); err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	app := &cli.App{
		Goals: service.NewGoalService(st),
		Week:  service.NewWeekService(st),
		Today: service.NewTodayService(st),
		Notes: service.NewNoteService(st),
		Data:  service.NewDataService(st),
		Now:   time.Now,
	}

	// A new calendar day clears yesterday's checkmarks. Run the rollover
	// before any command executes so even non-today paths (export, the
	// settings view) see the current day's state.
	if _, err := app.Today.EnsureRollover(context.Background()); err != nil {
		return fmt.Errorf("rolling over today list: %w", err)
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
