package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/reshuffle/admin/internal/app"
	"github.com/reshuffle/admin/internal/cascade"
	"github.com/reshuffle/admin/internal/config"
	"github.com/reshuffle/admin/internal/logging"
	"github.com/reshuffle/admin/internal/screen"
	"github.com/reshuffle/admin/internal/screens/home"
	"github.com/reshuffle/admin/internal/store"
	"github.com/reshuffle/admin/internal/validation"
)

// runtime holds the dependencies shared by commands that talk to the
// validation endpoints.
type runtime struct {
	cfg     config.Config
	logger  *slog.Logger
	store   *store.Store
	fetcher validation.Fetcher
	logFile io.Closer
}

// setup loads config, opens the log file and the store, and builds the
// recording validation client.
func setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logPath := cfg.LogFile
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	logger, logFile, err := logging.OpenFile(logPath, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	client := validation.NewClient(cfg.Endpoint)

	logger.Info("reshuffle-admin starting",
		"version", version,
		"endpoint", cfg.Endpoint.BaseURL,
		"db", dbPath,
	)

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		store:   st,
		fetcher: validation.WithRecording(client, st.EventRepo()),
		logFile: logFile,
	}, nil
}

func (r *runtime) Close() {
	if err := r.store.Close(); err != nil {
		r.logger.Warn("close store", "error", err)
	}
	r.logFile.Close()
}

// cascadeOptions configures controllers from the loaded config.
func (r *runtime) cascadeOptions() []cascade.ControllerOption {
	return []cascade.ControllerOption{
		cascade.WithDebounce(r.cfg.Debounce),
		cascade.WithLogger(r.logger),
	}
}

// runApp launches the TUI. open, when non-nil, builds a screen to show
// above the home menu.
func runApp(cmd *cobra.Command, open func(*runtime) screen.Screen) error {
	rt, err := setup(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	opts := app.Options{
		Home: home.Deps{
			Fetcher:   rt.fetcher,
			EventRepo: rt.store.EventRepo(),
			Options:   rt.cascadeOptions(),
		},
		Endpoint: rt.cfg.Endpoint.BaseURL,
	}
	if open != nil {
		opts.Open = open(rt)
	}

	if err := app.Run(opts); err != nil {
		rt.logger.Error("tui exited", "error", err)
		return err
	}
	return nil
}
