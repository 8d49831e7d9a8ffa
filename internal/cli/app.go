package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/roster/internal/config"
	"github.com/roach88/roster/internal/slot"
	"github.com/roach88/roster/internal/store"
	"github.com/roach88/roster/internal/validation"
)

// app is what every command works against: the resolved config, the open
// store and the caller-side validator.
type app struct {
	cfg       config.Config
	slot      *slot.SQLite
	store     *store.Store
	validator *validation.Validator
	out       *OutputFormatter
}

// newFormatter builds the formatter for a command. Warnings and verbose
// output go to stderr so JSON on stdout stays parseable.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// newLogger configures logging based on the verbose flag.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// loadConfig resolves settings: --config if given, else roster.yaml when
// present, else defaults. --db overrides the database path.
func loadConfig(opts *RootOptions) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath)
	}
	if err != nil {
		return config.Config{}, err
	}

	if opts.Database != "" {
		cfg.Database = opts.Database
	}
	return cfg, nil
}

// openApp loads config, opens the database and hydrates the store.
// Failures are reported through the formatter and returned as ExitErrors.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	out := newFormatter(opts, cmd)
	logger := newLogger(opts, cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, out.Fail(ExitCommandError, ErrCodeConfig, "failed to load config", err)
	}

	out.VerboseLog("opening database %s", cfg.Database)
	sl, err := slot.OpenSQLite(cfg.Database)
	if err != nil {
		return nil, out.Fail(ExitCommandError, ErrCodeDatabase, "failed to open database", err)
	}

	st, err := store.Open(commandContext(cmd), sl,
		store.WithKey(cfg.Key),
		store.WithLogger(logger),
		store.WithSeed(cfg.SeedRecords()),
	)
	if err != nil {
		sl.Close()
		return nil, out.Fail(ExitCommandError, ErrCodeDatabase, "failed to open store", err)
	}

	v, err := validation.New(cfg.RequirePhoto)
	if err != nil {
		sl.Close()
		return nil, out.Fail(ExitCommandError, ErrCodeGeneric, "failed to load validation schema", err)
	}

	out.VerboseLog("loaded %d employee(s)", st.Count())
	return &app{cfg: cfg, slot: sl, store: st, validator: v, out: out}, nil
}

// Close releases the database.
func (a *app) Close() error {
	return a.slot.Close()
}

// persistWarnings reports a swallowed write failure from the last mutation.
// The CLI exits right after, so such a change is lost.
func (a *app) persistWarnings() []string {
	if err := a.store.LastPersistError(); err != nil {
		return []string{"change was not saved to disk: " + err.Error()}
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
