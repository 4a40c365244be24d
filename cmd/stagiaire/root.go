package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/amishk599/stagiaire/internal/api"
	"github.com/amishk599/stagiaire/internal/config"
	"github.com/amishk599/stagiaire/internal/portal"
	"github.com/amishk599/stagiaire/internal/render"
	"github.com/amishk599/stagiaire/internal/search"
	"github.com/amishk599/stagiaire/internal/session"
)

var (
	cfgPath   string
	debug     bool
	ephemeral bool
	format    string

	// fullscreen is set by commands that own the terminal; searches then
	// only open a browser or report the URL, never print it.
	fullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "stagiaire",
	Short: "Trainee portal client",
	Long: "stagiaire talks to the internship platform: log in, upload a CV, browse and apply to offers,\n" +
		"see recommendations and application statistics.",
	SilenceUsage: true,
	// Default to the dashboard so that `stagiaire` with no args loads the page once.
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: STAGIAIRE_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep the session in memory only")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: terminal or html (overrides output.format)")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > STAGIAIRE_CONFIG env var > "./config.yaml"
// Only the implicit default may be missing.
func loadConfig(path string) (*config.Config, error) {
	optional := false
	if path == "" {
		if env := os.Getenv("STAGIAIRE_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
			optional = true
		}
	}
	return config.Load(path, optional)
}

func setupLogger(cfg config.LogConfig, dbg bool) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.Level)); err != nil {
		logLevel = slog.LevelInfo
	}
	if dbg {
		logLevel = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: logLevel}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// app is what every subcommand needs: config, logger, session store and the
// portal built on top of them.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  session.Store
	portal *portal.Portal
	close  func() error
}

func newApp(opts ...portal.Option) (*app, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return nil, err
	}
	if format != "" {
		cfg.Output.Format = format
	}
	logger := setupLogger(cfg.Log, debug)

	store, closeFn, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open session store", "path", cfg.Session.Path, "error", err)
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	client := api.NewClient(cfg.API.BaseURL, httpClient, logger)

	var nav search.Navigator
	switch {
	case cfg.Search.OpenBrowser:
		nav = search.BrowserNavigator{}
	case !fullscreen:
		nav = search.PrintNavigator{W: os.Stdout}
	}
	opts = append([]portal.Option{portal.WithNavigator(nav, cfg.Search.ResultsPage)}, opts...)

	p := portal.New(client, store, render.NewPage(), render.New(cfg.Output.Format), logger, opts...)
	logger.Debug("config loaded",
		"base_url", cfg.API.BaseURL,
		"timeout", cfg.API.Timeout.String(),
		"session", sessionLabel(cfg),
		"format", cfg.Output.Format,
	)
	return &app{cfg: cfg, logger: logger, store: store, portal: p, close: closeFn}, nil
}

func openStore(cfg *config.Config, logger *slog.Logger) (session.Store, func() error, error) {
	if ephemeral {
		logger.Debug("ephemeral session, nothing will be persisted")
		return session.NewMemoryStore(), func() error { return nil }, nil
	}
	sqlStore, err := session.NewSQLiteStore(cfg.Session.Path)
	if err != nil {
		return nil, nil, err
	}
	return sqlStore, sqlStore.Close, nil
}

func sessionLabel(cfg *config.Config) string {
	if ephemeral {
		return "memory"
	}
	return cfg.Session.Path
}

func (a *app) Close() {
	if err := a.close(); err != nil {
		a.logger.Warn("closing session store", "error", err)
	}
}

// print writes the given regions to stdout.
func (a *app) print(names ...string) {
	if err := a.portal.Page().Print(os.Stdout, names...); err != nil {
		a.logger.Error("writing output", "error", err)
	}
}

// signalContext is cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// interactive reports whether stdin is a terminal we can prompt on.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var errMissingInput = errors.New("missing input and stdin is not a terminal")
