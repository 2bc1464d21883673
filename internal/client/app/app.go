// Package app wires configuration, storage, the API client, services and the
// TUI into a runnable client.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mogligram/mogligram/internal/client/api"
	"github.com/mogligram/mogligram/internal/client/config"
	"github.com/mogligram/mogligram/internal/client/services"
	"github.com/mogligram/mogligram/internal/client/state"
	"github.com/mogligram/mogligram/internal/client/storage"
	"github.com/mogligram/mogligram/internal/client/tui"
	"github.com/mogligram/mogligram/internal/logging"
)

// ErrNotATerminal is returned when stdout is not an interactive terminal.
// The client is a full-screen TUI; there is nothing useful it can do piped.
var ErrNotATerminal = errors.New("standard output is not a terminal")

// App owns the process-lifetime resources: the log file, the embedded store
// and the bubbletea program.
type App struct {
	cfg     *config.Config
	log     logging.Logger
	store   storage.Store
	logFile *os.File
	program *tea.Program
}

// NewApp builds the full dependency graph from cfg. Logs go to a file under
// the data directory so the alternate screen stays clean.
func NewApp(cfg *config.Config) (*App, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotATerminal
	}

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(cfg.DataDir, "mogligram.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log := logging.NewTextLogger(logFile, slog.LevelInfo)

	store, err := storage.OpenBadger(filepath.Join(cfg.DataDir, "db"))
	if err != nil {
		logFile.Close()
		return nil, err
	}

	st := state.New()
	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)

	deps := tui.Deps{
		State:       st,
		Auth:        services.NewAuthService(st, store, log),
		Profile:     services.NewProfileService(st, store, log),
		Content:     services.NewContentService(st, client, log),
		Hydrator:    services.NewHydrator(st, store, log),
		Log:         log,
		SplashDelay: cfg.SplashDelay,
		LoginDelay:  800 * time.Millisecond,
	}

	program := tea.NewProgram(tui.New(deps), tea.WithAltScreen())

	return &App{cfg: cfg, log: log, store: store, logFile: logFile, program: program}, nil
}

// Run blocks until the TUI exits, then releases the store and the log file.
func (a *App) Run(ctx context.Context) error {
	a.log.Info(ctx, "starting client",
		"data_dir", a.cfg.DataDir, "api_base_url", a.cfg.APIBaseURL)
	defer a.close(ctx)

	if _, err := a.program.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

func (a *App) close(ctx context.Context) {
	if err := a.store.Close(); err != nil {
		a.log.Warn(ctx, "failed to close store", "error", err)
	}
	a.logFile.Close()
}
