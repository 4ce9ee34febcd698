package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dshills/chord/internal/app"
	"github.com/dshills/chord/internal/config"
	"github.com/dshills/chord/internal/input/keymap"
	"github.com/dshills/chord/internal/input/source"
	"github.com/dshills/chord/internal/log"
	"github.com/dshills/chord/internal/renderer/backend"
)

var errNotTerminal = errors.New("stdin is not a terminal")

type rootOptions struct {
	file       string
	configFile string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "chord",
		Short: "A modal terminal text editor",
		Long: `chord is a small modal text editor. Keys are resolved through
per-mode binding tries, so multi-key sequences, repeat counts and
user-defined bindings all go through the same path.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEditor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "file to edit")

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/chord/config.yaml)")
	pf.String("keymap", "", "binding override file (.toml, .yaml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-file", "", "log file (default: $TMPDIR/chord.log)")
	pf.Duration("key-timeout", 0, "how long a pending key sequence waits")

	cmd.AddCommand(newKeysCmd(&opts))
	return cmd
}

// loadSettings resolves the configuration with cmd's flags on top.
func loadSettings(cmd *cobra.Command, opts rootOptions) (config.Config, error) {
	return config.Load(config.Options{File: opts.configFile, Flags: cmd.Flags()})
}

// buildKeymap binds the defaults followed by the override file, if any.
// It returns the keymap and every binding in the order applied.
func buildKeymap(cfg config.Config) (*keymap.Keymap, []keymap.Binding, error) {
	bindings := keymap.DefaultBindings()
	if cfg.Keymap.File != "" {
		overrides, err := keymap.LoadFile(cfg.Keymap.File)
		if err != nil {
			return nil, nil, err
		}
		bindings = append(bindings, overrides...)
	}

	km := keymap.New()
	if err := km.BindAll(bindings); err != nil {
		return nil, nil, err
	}
	return km, bindings, nil
}

func runEditor(cmd *cobra.Command, opts rootOptions) (err error) {
	cfg, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := log.New(log.Config{Level: cfg.LogLevel(), File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	km, _, err := buildKeymap(cfg)
	if err != nil {
		return err
	}

	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNotTerminal
	}

	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	guard, err := backend.Acquire(term)
	if err != nil {
		return err
	}
	defer guard.Release()

	// Restore the terminal before the panic is reported on stderr.
	defer func() {
		if r := recover(); r != nil {
			guard.Release()
			perr := app.NewRecoveredPanicError(r, string(debug.Stack()))
			logger.Error("panic", "value", r)
			err = perr
		}
	}()

	editor, err := app.New(app.Options{
		Backend: term,
		Config:  &cfg,
		Logger:  logger,
		Keymap:  km,
		File:    opts.file,
	})
	if err != nil {
		return err
	}

	src := source.New(term, editor.Queue(),
		source.WithInterval(cfg.Input.PollInterval),
		source.WithLogger(logger),
	)
	src.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	if err := editor.Loop(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
