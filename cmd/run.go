package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lexiq/lexiq/internal/app"
	"github.com/lexiq/lexiq/internal/engine"
	"github.com/lexiq/lexiq/internal/itembank"
	"github.com/lexiq/lexiq/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the engine, and launches the TUI.
// startPlacement skips the home menu and goes straight into a session.
func runApp(cmd *cobra.Command, startPlacement bool) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	pool, err := resolvePool(cmd)
	if err != nil {
		return err
	}

	logger, closeLog := openLogger(dbPath)
	defer closeLog()

	eng, err := engine.New(engine.Config{
		Source:    pool,
		Events:    eventRepo,
		Snapshots: st.SnapshotRepo(),
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	// Bring back any sessions suspended on a previous exit.
	if err := eng.Restore(ctx); err != nil {
		logger.Warn("restore sessions", "error", err)
	}

	runErr := app.Run(app.Options{
		Engine:         eng,
		EventRepo:      eventRepo,
		StartPlacement: startPlacement,
	})

	// Persist in-flight sessions so they survive the restart.
	if err := eng.Suspend(ctx); err != nil {
		logger.Warn("suspend sessions", "error", err)
	}

	return runErr
}

// resolvePool loads the bank named by --bank, falling back to the
// bundled starter bank.
func resolvePool(cmd *cobra.Command) (*itembank.Pool, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		pool, err := itembank.LoadBank(p)
		if err != nil {
			return nil, fmt.Errorf("load bank: %w", err)
		}
		return pool, nil
	}
	return itembank.DefaultPool()
}

// openLogger writes structured logs to a file beside the database.
// Logging to stderr would tear up the TUI, and losing logs beats that.
func openLogger(dbPath string) (*slog.Logger, func()) {
	logPath := filepath.Join(filepath.Dir(dbPath), "lexiq.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }
}
